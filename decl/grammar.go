package decl

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarSource string

// GrammarSource returns the EBNF of the declaration language.
func GrammarSource() string {
	return grammarSource
}

// Grammar parses and verifies the declaration grammar, starting at Declaration.
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(grammar, "Declaration"); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return grammar, nil
}
