package progmem

import (
	"fmt"
)

const (
	WORD_BITS = 24                      // Bits used by an instruction.
	WORD_MASK = uint32(1<<WORD_BITS - 1) // Mask of the used bits.
)

// Word is a single 24-bit instruction, stored in the low bits of a uint32.
type Word uint32

// NOP is the all-zeroes instruction, and the content of every unused slot.
const NOP = Word(0)

// MakeWord creates a word from the low 24 bits of value.
func MakeWord(value uint32) Word {
	return Word(value & WORD_MASK)
}

// Valid reports whether the upper 8 bits of the storage are clear.
func (w Word) Valid() bool {
	return uint32(w) & ^WORD_MASK == 0
}

func (w Word) String() string {
	return fmt.Sprintf("0x%06x", uint32(w))
}
