// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/ezrec/progmem/progmem"
)

func main() {
	var address string
	var ranges bool
	var defines bool
	var verbose bool

	flag.StringVar(&address, "a", "", "Address expression to look up")
	flag.BoolVar(&ranges, "r", false, "Print the subroutine table")
	flag.BoolVar(&defines, "d", false, "Print the ROM defines")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var err error
	switch {
	case len(address) != 0:
		err = lookup(os.Stdout, address)
	case ranges:
		err = dumpRanges(os.Stdout)
	case defines:
		err = dumpDefines(os.Stdout)
	default:
		err = dumpListing(os.Stdout, verbose)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// lookup prints the word and symbol at an address expression.
func lookup(w io.Writer, expr string) (err error) {
	address, err := progmem.Eval(expr)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(w, "0x%03x %v %v\n", address, progmem.Read(address), progmem.Symbolize(address))
	return
}

func dumpRanges(w io.Writer) (err error) {
	for sub := range progmem.Subroutines() {
		_, err = fmt.Fprintf(w, "%v\n", sub)
		if err != nil {
			return
		}
	}

	return
}

func dumpDefines(w io.Writer) (err error) {
	defines := map[string]string{}
	keys := []string{}
	for key, value := range progmem.Defines() {
		defines[key] = value
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		_, err = fmt.Fprintf(w, "%v=%v\n", key, defines[key])
		if err != nil {
			return
		}
	}

	return
}

// dumpListing prints the programmed words. With verbose set, the rest of the
// slots reachable by the program counter are printed as well.
func dumpListing(w io.Writer, verbose bool) (err error) {
	limit := progmem.ADDR_END
	if verbose {
		limit = progmem.ADDRESS_LIMIT
	}

	for address := range limit {
		_, err = fmt.Fprintf(w, "0x%02x %v %v\n", address, progmem.Read(address), progmem.Symbolize(address))
		if err != nil {
			return
		}
	}

	return
}
