package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jbind/decl"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of declaration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), decl.GrammarSource())
			return err
		},
	}
}
