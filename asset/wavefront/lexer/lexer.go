package lexer

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type lexerState uint8

const (
	stateInitial lexerState = iota
	stateToken
	stateLineBreak
	stateSeparator
	stateComment
)

type lexer struct {
	in *bufio.Reader

	// Pending characters and their count in runes.
	buf    strings.Builder
	bufLen int

	// Runes consumed on the current line.
	column int
	line   int

	state  lexerState
	tokens []Token
}

// Lex reads the stream until it is exhausted and returns the classified
// tokens. Unrecognized text is returned as String tokens so the only errors
// reported are read errors from the underlying reader.
func Lex(r io.Reader) ([]Token, error) {
	l := &lexer{
		in:     bufio.NewReader(r),
		line:   1,
		state:  stateInitial,
		tokens: make([]Token, 0),
	}

	for {
		ch, _, err := l.in.ReadRune()
		if err == io.EOF {
			l.flush()
			return l.tokens, nil
		} else if err != nil {
			return nil, err
		}

		if next, changed := l.transition(ch); changed {
			l.flush()
			l.state = next
		}

		l.buf.WriteRune(ch)
		l.bufLen++
		l.column++
	}
}

// Detect whether ch ends the pending character run. A transition into the
// current state is still reported as a change when the pending run must be
// flushed (consecutive line breaks).
func (l *lexer) transition(ch rune) (lexerState, bool) {
	isLineEnding := ch == '\n' || ch == '\r'
	isWhitespace := !isLineEnding && unicode.IsSpace(ch)

	switch {
	case isLineEnding:
		// "\n\r" is folded into a single line break.
		if l.state == stateLineBreak && ch == '\r' && l.buf.String() == "\n" {
			return l.state, false
		}
		return stateLineBreak, true
	case l.state == stateComment:
		return l.state, false
	case isWhitespace:
		return stateSeparator, l.state != stateSeparator
	case ch == '#':
		return stateComment, true
	}
	return stateToken, l.state != stateToken
}

// Classify the pending character run and append it to the token list.
func (l *lexer) flush() {
	if l.bufLen == 0 {
		return
	}

	text := l.buf.String()
	tok := Token{
		Line:   l.line,
		Column: l.column - l.bufLen + 1,
	}
	l.buf.Reset()
	l.bufLen = 0

	switch l.state {
	case stateComment:
		tok.Type = Comment
		tok.Text = text
	case stateLineBreak:
		tok.Type = LineBreak
		tok.Text = text
		l.line++
		l.column = 0
	case stateSeparator:
		tok.Type = Separator
	default:
		classify(text, &tok)
	}

	l.tokens = append(l.tokens, tok)
}

// Classify a token run as a keyword, number, polygon or plain string, in that
// order of precedence.
func classify(text string, tok *Token) {
	if kw, isKeyword := keywords[text]; isKeyword {
		tok.Type = kw
		return
	}

	if v, ok := parseNumber(text); ok {
		tok.Type = Number
		tok.Number = v
		return
	}

	if p, ok := parsePolygon(text); ok {
		tok.Type = Polygon
		tok.Polygon = p
		return
	}

	tok.Type = String
	tok.Text = text
}

// Parse a finite decimal floating point value. NaN and infinities never make
// it into the geometry pipeline and hex floats are not valid OBJ numbers.
func parseNumber(text string) (float64, bool) {
	digits := strings.TrimLeft(text, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Parse a face vertex reference. The following formats are supported:
// - p/t
// - p/t/n
// - p//n
// - p/t/
// Empty and missing trailing indices are reported as 0.
func parsePolygon(text string) (PolygonIndex, bool) {
	var out PolygonIndex

	fields := strings.Split(text, "/")
	if len(fields) < 2 || len(fields) > 3 {
		return out, false
	}

	for idx, field := range fields {
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return out, false
		}
		out[idx] = v
	}
	return out, true
}
