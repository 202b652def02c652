package progmem

import (
	"fmt"
	"iter"
)

// UNKNOWN is the name of any address outside the known subroutines.
const UNKNOWN = "Unknown"

// Subroutine is a named, half-open [Start, End) range of ROM addresses.
type Subroutine struct {
	Name  string // Label of the subroutine.
	Start uint16 // First address.
	End   uint16 // One past the last address.
}

// Contains reports whether address lies in the subroutine.
func (sub Subroutine) Contains(address uint64) bool {
	return address >= uint64(sub.Start) && address < uint64(sub.End)
}

// Len returns the number of addresses in the subroutine.
func (sub Subroutine) Len() int {
	if sub.End <= sub.Start {
		return 0
	}
	return int(sub.End - sub.Start)
}

func (sub Subroutine) String() string {
	return fmt.Sprintf("%v [0x%02x, 0x%02x)", sub.Name, sub.Start, sub.End)
}

// subroutines is searched in order, and the first match wins. Keep it
// sorted and disjoint; see Validate.
var subroutines = [...]Subroutine{
	{Name: "RESET_vect", Start: ADDR_RESET_VECT, End: ADDR_MAIN},
	{Name: "main", Start: ADDR_MAIN, End: ADDR_END},
}

// Subroutines returns the subroutine table in declaration order.
func Subroutines() iter.Seq[Subroutine] {
	return func(yield func(sub Subroutine) bool) {
		for _, sub := range subroutines {
			if !yield(sub) {
				return
			}
		}
	}
}

// Debug locates an address inside a subroutine.
type Debug struct {
	*Subroutine     // Containing subroutine, nil if none.
	Offset      int // Offset of the address from the subroutine start.
}

func locate(table []Subroutine, address uint64) (dbg Debug) {
	for n := range table {
		if table[n].Contains(address) {
			sub := table[n]
			dbg = Debug{
				Subroutine: &sub,
				Offset:     int(address - uint64(sub.Start)),
			}
			break
		}
	}

	return
}

// Locate returns the subroutine containing address, and the offset into it.
func Locate[A Address](address A) Debug {
	return locate(subroutines[:], uint64(address))
}

// SubroutineName returns the name of the subroutine containing address,
// or UNKNOWN.
func SubroutineName[A Address](address A) string {
	dbg := Locate(address)
	if dbg.Subroutine == nil {
		return UNKNOWN
	}

	return dbg.Name
}

// Symbolize returns address in trace form, such as "main" or "main+0x5".
func Symbolize[A Address](address A) string {
	dbg := Locate(address)
	switch {
	case dbg.Subroutine == nil:
		return UNKNOWN
	case dbg.Offset == 0:
		return dbg.Name
	default:
		return fmt.Sprintf("%v+0x%x", dbg.Name, dbg.Offset)
	}
}

// Validate checks that a subroutine table is usable by the in-order
// lookup: every range is non-empty and inside the ROM, and the ranges
// are sorted by start address without overlapping.
func Validate(table []Subroutine) (err error) {
	for n, sub := range table {
		if sub.Start >= sub.End {
			err = &ErrRange{Subroutine: sub, Err: ErrRangeEmpty}
			return
		}
		if sub.End > CAPACITY {
			err = &ErrRange{Subroutine: sub, Err: ErrRangeCapacity}
			return
		}
		if n == 0 {
			continue
		}
		prev := table[n-1]
		if sub.Start < prev.Start {
			err = &ErrRange{Subroutine: sub, Err: ErrRangeOrder}
			return
		}
		if sub.Start < prev.End {
			err = &ErrRange{Subroutine: sub, Err: ErrRangeOverlap(prev.Name)}
			return
		}
	}

	return
}
