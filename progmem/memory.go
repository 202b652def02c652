// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package progmem

import (
	"iter"
)

const (
	CAPACITY      = 1024               // Backing slots in the ROM.
	ADDRESS_WIDTH = 8                  // Bits in the program counter.
	ADDRESS_LIMIT = 1 << ADDRESS_WIDTH // Slots reachable by the program counter.
)

// Address is any integer type usable as a program counter.
type Address interface {
	~uint8 | ~uint16 | ~uint32 | ~int
}

// Start addresses of the program.
const (
	ADDR_RESET_VECT = 0x00
	ADDR_MAIN       = 0x08
	ADDR_MAIN_LOOP  = 0x0d
	ADDR_END        = 0x11
)

// PORTB bit numbers of the three LEDs.
const (
	LED1 = 0
	LED2 = 1
	LED3 = 2
)

// data is the ROM image. It is never written after initialization, and
// never handed out by reference.
var data = [CAPACITY]Word{
	// RESET_vect
	0x160800, // 0x00 JMP main
	0x000000, // 0x01 NOP
	0x000000, // 0x02 NOP
	0x000000, // 0x03 NOP
	0x000000, // 0x04 NOP
	0x000000, // 0x05 NOP
	0x000000, // 0x06 NOP
	0x000000, // 0x07 NOP

	// main
	0x011007, // 0x08 LDI R16, (1 << LED1) | (1 << LED2) | (1 << LED3)
	0x030010, // 0x09 OUT DDRB, R16
	0x011001, // 0x0a LDI R16, (1 << LED1)
	0x011102, // 0x0b LDI R17, (1 << LED2)
	0x011204, // 0x0c LDI R18, (1 << LED3)

	// main_loop
	0x030110, // 0x0d OUT PORTB, R16
	0x030111, // 0x0e OUT PORTB, R17
	0x030112, // 0x0f OUT PORTB, R18
	0x160d00, // 0x10 JMP main_loop
}

// inRange reports whether address indexes the ROM image.
func inRange[A Address](address A) bool {
	// Widen first so that negative ints wrap out of range.
	return uint64(address) < CAPACITY
}

// Read returns the instruction at address, or NOP if the address is past
// the end of the ROM.
func Read[A Address](address A) Word {
	if !inRange(address) {
		return NOP
	}

	return data[int(address)] & Word(WORD_MASK)
}

// Listing returns the programmed words, from the reset vector up to ADDR_END.
func Listing() iter.Seq2[uint16, Word] {
	return func(yield func(address uint16, word Word) bool) {
		for address := range uint16(ADDR_END) {
			if !yield(address, Read(address)) {
				return
			}
		}
	}
}
