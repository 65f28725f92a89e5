package parser

import (
	"fmt"

	"github.com/achilleasa/meshc/asset/wavefront/lexer"
)

// The fields that follow a statement header. Each field is preceded by a
// separator and the statement is closed by a line break.
type statementRule struct {
	fieldType lexer.TokenType
	arity     int
}

var statementRules = map[StatementType]statementRule{
	Comment:  {arity: 0},
	MtlLib:   {fieldType: lexer.String, arity: 1},
	Object:   {fieldType: lexer.String, arity: 1},
	UseMtl:   {fieldType: lexer.String, arity: 1},
	Vertex:   {fieldType: lexer.Number, arity: 3},
	Normal:   {fieldType: lexer.Number, arity: 3},
	TexCoord: {fieldType: lexer.Number, arity: 2},
	Illum:    {fieldType: lexer.Number, arity: 1},
	Face:     {fieldType: lexer.Polygon, arity: 3},
}

// Parser assembles tokens into statements. Tokens are fed one at a time via
// Next; each call yields at most one statement.
type Parser struct {
	// The statement being assembled; nil while waiting for a header.
	cur  *Statement
	rule statementRule

	numbers    []float64
	polygons   []lexer.PolygonIndex
	fieldCount int

	expect lexer.TokenType
}

// Create a new parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts a complete token list into statements.
func Parse(tokens []lexer.Token) ([]Statement, error) {
	p := New()
	statements := make([]Statement, 0)
	for _, tok := range tokens {
		stmt, err := p.Next(tok)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			statements = append(statements, *stmt)
		}
	}

	stmt, err := p.Close()
	if err != nil {
		return nil, err
	}
	if stmt != nil {
		statements = append(statements, *stmt)
	}
	return statements, nil
}

// Next consumes a token and returns the statement it completes, if any.
func (p *Parser) Next(tok lexer.Token) (*Statement, error) {
	if p.cur == nil {
		return nil, p.openStatement(tok)
	}

	if tok.Type != p.expect {
		return nil, unexpectedToken(tok, p.expect)
	}

	switch tok.Type {
	case lexer.Separator:
		p.expect = p.rule.fieldType
	case lexer.LineBreak:
		return p.emit(), nil
	default:
		p.collectField(tok)
	}
	return nil, nil
}

// Close signals the end of the token stream. A statement that only lacks its
// terminating line break is returned; a statement with missing fields is an
// error.
func (p *Parser) Close() (*Statement, error) {
	if p.cur == nil {
		return nil, nil
	}

	if p.expect != lexer.LineBreak {
		return nil, &Error{
			Line:   p.cur.Line,
			Column: p.cur.Column,
			Msg:    fmt.Sprintf("unexpected end of input in %s statement; expected %s", p.cur.Type, p.expect),
		}
	}
	return p.emit(), nil
}

func (p *Parser) openStatement(tok lexer.Token) error {
	if tok.Type == lexer.Separator || tok.Type == lexer.LineBreak {
		return nil
	}

	stmtType, ok := statementTypeFor(tok.Type)
	if !ok {
		return &Error{
			Line:   tok.Line,
			Column: tok.Column,
			Msg:    fmt.Sprintf("expected statement start; got %s", tok.Type),
		}
	}

	p.cur = &Statement{
		Type:   stmtType,
		Line:   tok.Line,
		Column: tok.Column,
	}
	if stmtType == Comment {
		p.cur.Text = tok.Text
	}

	p.rule = statementRules[stmtType]
	p.fieldCount = 0
	p.numbers = p.numbers[:0]
	p.polygons = p.polygons[:0]
	p.expectNextField()
	return nil
}

func (p *Parser) collectField(tok lexer.Token) {
	switch tok.Type {
	case lexer.Number:
		p.numbers = append(p.numbers, tok.Number)
	case lexer.Polygon:
		p.polygons = append(p.polygons, tok.Polygon)
	case lexer.String:
		p.cur.Text = tok.Text
	}

	p.fieldCount++
	p.expectNextField()
}

func (p *Parser) expectNextField() {
	if p.fieldCount < p.rule.arity {
		p.expect = lexer.Separator
	} else {
		p.expect = lexer.LineBreak
	}
}

// Finalize the statement payload and reset to the awaiting header state.
func (p *Parser) emit() *Statement {
	stmt := p.cur
	switch p.rule.fieldType {
	case lexer.Number:
		stmt.Numbers = append([]float64(nil), p.numbers...)
	case lexer.Polygon:
		for i, poly := range p.polygons {
			copy(stmt.Face[i*3:], poly[:])
		}
	}

	p.cur = nil
	return stmt
}
