package progmem

import (
	"fmt"
	"iter"
	"maps"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/progmem/internal"
)

var _address_defines = map[string]string{
	"RESET_vect": fmt.Sprintf("%#x", ADDR_RESET_VECT),
	"main":       fmt.Sprintf("%#x", ADDR_MAIN),
	"main_loop":  fmt.Sprintf("%#x", ADDR_MAIN_LOOP),
	"end":        fmt.Sprintf("%#x", ADDR_END),
}

var _port_defines = map[string]string{
	"LED1": fmt.Sprintf("%v", LED1),
	"LED2": fmt.Sprintf("%v", LED2),
	"LED3": fmt.Sprintf("%v", LED3),
}

var _rom_defines = map[string]string{
	"CAPACITY":      fmt.Sprintf("%v", CAPACITY),
	"ADDRESS_LIMIT": fmt.Sprintf("%v", ADDRESS_LIMIT),
}

// Defines returns the symbols of the ROM image: the program labels, the
// LED port bits, and the ROM geometry.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_address_defines),
		maps.All(_port_defines),
		maps.All(_rom_defines),
	)
}

// Eval evaluates an integer expression, such as "main_loop + 2", over the
// ROM defines.
func Eval(expr string) (value uint32, err error) {
	thread := starlark.Thread{Name: "progmem"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range Defines() {
		var value64 uint64
		value64, err = strconv.ParseUint(str, 0, 32)
		if err != nil {
			return
		}
		pred[key] = starlark.MakeUint64(value64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffffffff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_uint64)
	return
}
