package progmem

import (
	"errors"

	"github.com/ezrec/progmem/translate"
)

var f = translate.From

var (
	// Subroutine table errors
	ErrRangeEmpty    = errors.New(f("range empty"))
	ErrRangeCapacity = errors.New(f("range past end of rom"))
	ErrRangeOrder    = errors.New(f("range out of order"))
)

// ErrRangeOverlap names the earlier range that a subroutine overlaps.
type ErrRangeOverlap string

func (err ErrRangeOverlap) Error() string {
	return f("overlaps %v", string(err))
}

func (err ErrRangeOverlap) Is(target error) (ok bool) {
	_, ok = target.(ErrRangeOverlap)
	return
}

// ErrRange identifies the subroutine that failed validation.
type ErrRange struct {
	Subroutine Subroutine
	Err        error
}

func (err *ErrRange) Error() string {
	return f("range %v %v", err.Subroutine.String(), err.Err)
}

func (err *ErrRange) Unwrap() error {
	return err.Err
}

// ErrParseExpression is an expression that does not yield an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not an integer expression", string(err))
}
