package progmem

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubroutineName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("RESET_vect", SubroutineName(uint8(0)))

	for address := range uint8(8) {
		assert.Equal("RESET_vect", SubroutineName(address), "address %v", address)
	}

	for address := uint8(8); address < 17; address++ {
		assert.Equal("main", SubroutineName(address), "address %v", address)
	}

	for address := range 256 {
		if address < 17 {
			continue
		}
		assert.Equal(UNKNOWN, SubroutineName(uint8(address)), "address %v", address)
	}
}

func TestSubroutineName_Wide(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("main", SubroutineName(uint16(ADDR_MAIN_LOOP)))
	assert.Equal(UNKNOWN, SubroutineName(uint16(CAPACITY)))
	assert.Equal(UNKNOWN, SubroutineName(uint32(0x10008)))
	assert.Equal(UNKNOWN, SubroutineName(-1))
}

func TestSubroutineName_Idempotent(t *testing.T) {
	assert := assert.New(t)

	for address := range 256 {
		first := SubroutineName(uint8(address))
		assert.Equal(first, SubroutineName(uint8(address)))
	}
}

func TestSubroutines(t *testing.T) {
	assert := assert.New(t)

	subs := slices.Collect(Subroutines())
	assert.Equal([]Subroutine{
		{Name: "RESET_vect", Start: 0x00, End: 0x08},
		{Name: "main", Start: 0x08, End: 0x11},
	}, subs)

	// Copies handed out cannot change the table.
	subs[0].End = 0x20
	assert.Equal("main", SubroutineName(uint8(0x08)))
}

func TestSubroutines_Valid(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Validate(subroutines[:]))
	assert.NoError(Validate(slices.Collect(Subroutines())))
}

func TestSubroutine_Contains(t *testing.T) {
	assert := assert.New(t)

	sub := Subroutine{Name: "main", Start: 0x08, End: 0x11}
	assert.False(sub.Contains(0x07))
	assert.True(sub.Contains(0x08))
	assert.True(sub.Contains(0x10))
	assert.False(sub.Contains(0x11))
	assert.Equal(9, sub.Len())
	assert.Equal("main [0x08, 0x11)", sub.String())

	empty := Subroutine{Name: "empty", Start: 0x04, End: 0x04}
	assert.False(empty.Contains(0x04))
	assert.Equal(0, empty.Len())
}

func TestLocate(t *testing.T) {
	assert := assert.New(t)

	dbg := Locate(uint8(0x00))
	assert.NotNil(dbg.Subroutine)
	assert.Equal("RESET_vect", dbg.Name)
	assert.Equal(0, dbg.Offset)

	dbg = Locate(uint8(ADDR_MAIN_LOOP))
	assert.NotNil(dbg.Subroutine)
	assert.Equal("main", dbg.Name)
	assert.Equal(ADDR_MAIN_LOOP-ADDR_MAIN, dbg.Offset)

	dbg = Locate(uint8(ADDR_END))
	assert.Nil(dbg.Subroutine)
	assert.Equal(0, dbg.Offset)
}

func TestLocate_FirstMatchWins(t *testing.T) {
	assert := assert.New(t)

	table := []Subroutine{
		{Name: "outer", Start: 0x00, End: 0x10},
		{Name: "inner", Start: 0x04, End: 0x08},
	}
	assert.Error(Validate(table))

	dbg := locate(table, 0x05)
	assert.Equal("outer", dbg.Name)
	assert.Equal(5, dbg.Offset)

	dbg = locate(table, 0x10)
	assert.Nil(dbg.Subroutine)
}

func TestSymbolize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("RESET_vect", Symbolize(uint8(0)))
	assert.Equal("RESET_vect+0x7", Symbolize(uint8(7)))
	assert.Equal("main", Symbolize(uint8(ADDR_MAIN)))
	assert.Equal("main+0x5", Symbolize(uint8(ADDR_MAIN_LOOP)))
	assert.Equal(UNKNOWN, Symbolize(uint8(ADDR_END)))
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		table []Subroutine
		err   error
	}){
		{"nil", nil, nil},
		{"gap", []Subroutine{{"a", 0, 4}, {"b", 8, 12}}, nil},
		{"adjacent", []Subroutine{{"a", 0, 4}, {"b", 4, 8}}, nil},
		{"empty", []Subroutine{{"a", 4, 4}}, ErrRangeEmpty},
		{"reversed", []Subroutine{{"a", 8, 4}}, ErrRangeEmpty},
		{"capacity", []Subroutine{{"a", 0x3f0, CAPACITY + 1}}, ErrRangeCapacity},
		{"order", []Subroutine{{"a", 8, 12}, {"b", 0, 4}}, ErrRangeOrder},
		{"overlap", []Subroutine{{"a", 0, 8}, {"b", 7, 12}}, ErrRangeOverlap("a")},
	}

	for _, entry := range table {
		err := Validate(entry.table)
		if entry.err == nil {
			assert.NoError(err, entry.name)
			continue
		}
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestValidate_Overlap(t *testing.T) {
	assert := assert.New(t)

	err := Validate([]Subroutine{
		{Name: "RESET_vect", Start: 0x00, End: 0x09},
		{Name: "main", Start: 0x08, End: 0x11},
	})

	var range_err *ErrRange
	assert.True(errors.As(err, &range_err))
	assert.Equal("main", range_err.Subroutine.Name)

	var overlap ErrRangeOverlap
	assert.True(errors.As(err, &overlap))
	assert.Equal(ErrRangeOverlap("RESET_vect"), overlap)
	assert.Equal("range main [0x08, 0x11) overlaps RESET_vect", err.Error())
}
