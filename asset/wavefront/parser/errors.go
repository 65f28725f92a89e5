package parser

import (
	"fmt"

	"github.com/achilleasa/meshc/asset/wavefront/lexer"
)

// Error describes a grammar violation at a particular token.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] parse error: %s", e.Line, e.Column, e.Msg)
}

func unexpectedToken(tok lexer.Token, expected lexer.TokenType) *Error {
	return &Error{
		Line:   tok.Line,
		Column: tok.Column,
		Msg:    fmt.Sprintf("unexpected token %s; expected %s", tok.Type, expected),
	}
}
