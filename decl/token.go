package decl

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return s.Start.String()
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment

	TokenIdent

	TokenSemicolon
	TokenDot
	TokenLBrace
	TokenRBrace
	TokenStar
	TokenComma
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenError:       "Error",
	TokenWhitespace:  "Whitespace",
	TokenComment:     "Comment",
	TokenLineComment: "LineComment",
	TokenIdent:       "Identifier",
	TokenSemicolon:   ";",
	TokenDot:         ".",
	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenStar:        "*",
	TokenComma:       ",",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var punctuation = map[byte]TokenKind{
	';': TokenSemicolon,
	'.': TokenDot,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'*': TokenStar,
	',': TokenComma,
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

// IsTrivia reports whether the parser skips the token.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case TokenWhitespace, TokenComment, TokenLineComment:
		return true
	}
	return false
}
