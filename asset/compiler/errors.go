package compiler

import (
	"errors"
	"fmt"

	"github.com/achilleasa/meshc/asset/wavefront/parser"
)

var (
	ErrIndexOutOfRange   = errors.New("compiler: index out of range")
	ErrMissingObjectName = errors.New("compiler: object statement without a name")
	ErrMalformedData     = errors.New("compiler: malformed statement data")
)

// Error annotates a compilation failure with the location of the statement
// that caused it.
type Error struct {
	Line      int
	Column    int
	Statement parser.StatementType
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] compile error in %s statement: %s", e.Line, e.Column, e.Statement, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}
