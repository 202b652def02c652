// Package progmem implements the instruction ROM of the 24-bit LED CPU.
//
// The ROM holds CAPACITY instruction words, of which the 8-bit program
// counter can reach the first ADDRESS_LIMIT. The content is fixed when the
// program is built: there is no loader and nothing can write to it.
//
// Both queries are total. Read returns NOP for any address past the end of
// the table, and SubroutineName returns UNKNOWN for any address outside the
// named subroutine ranges. Everything in the package is safe for concurrent
// use without locking.
package progmem
