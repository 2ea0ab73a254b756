package decl

import "fmt"

// SyntaxError is a hard parse failure. Span points at the offending token, or
// at the last consumed token when the failure is about what should follow it.
type SyntaxError struct {
	Expected string
	Found    string
	Span     Span
}

func (e *SyntaxError) Error() string {
	if e.Found != "" {
		return fmt.Sprintf("%s: %s, found %q", e.Span, e.Expected, e.Found)
	}
	return fmt.Sprintf("%s: %s", e.Span, e.Expected)
}

// Parser is a cursor over the non-trivia tokens of a declaration.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(input []byte, file string) *Parser {
	lexer := NewLexer(input, file)
	var tokens []Token
	for _, tok := range lexer.Tokenize() {
		if tok.IsTrivia() {
			continue
		}
		tokens = append(tokens, tok)
	}
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

// Pos returns the cursor position; unit parsers that report no-match leave it unchanged.
func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) AtEOF() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) EatKeyword(keyword string) bool {
	tok := p.peek()
	if tok.Kind != TokenIdent || tok.Literal != keyword {
		return false
	}
	p.next()
	return true
}

func (p *Parser) EatIdent() (string, bool) {
	tok := p.peek()
	if tok.Kind != TokenIdent {
		return "", false
	}
	p.next()
	return tok.Literal, true
}

func (p *Parser) EatPunct(kind TokenKind) bool {
	if p.peek().Kind != kind {
		return false
	}
	p.next()
	return true
}

func (p *Parser) LastSpan() (Span, bool) {
	if p.pos == 0 {
		return Span{}, false
	}
	return p.tokens[p.pos-1].Span, true
}

// Error reports a failure at the next token. At end of input the span of
// the last consumed token is used instead.
func (p *Parser) Error(expected string) *SyntaxError {
	tok := p.peek()
	if tok.Kind == TokenEOF {
		if span, ok := p.LastSpan(); ok {
			return &SyntaxError{Expected: expected, Span: span}
		}
		return &SyntaxError{Expected: expected, Span: tok.Span}
	}
	return &SyntaxError{Expected: expected, Found: tok.Literal, Span: tok.Span}
}

// ErrorAfter reports a failure at the last consumed token.
func (p *Parser) ErrorAfter(expected string) *SyntaxError {
	span, ok := p.LastSpan()
	if !ok {
		return p.Error(expected)
	}
	return &SyntaxError{Expected: expected, Span: span}
}

// unitParser returns the parsed value and true on a match, false with a nil
// error when its first token does not match, or an error once committed.
type unitParser[T any] func(p *Parser) (T, bool, error)

func parseMany[T any](p *Parser, unit unitParser[T]) ([]T, error) {
	var items []T
	for {
		item, ok, err := unit(p)
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
		items = append(items, item)
	}
}
