package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jbind/decl"
	"github.com/dhamidi/jbind/format"
)

func newParseCmd() *cobra.Command {
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <declaration>",
		Short: "Parse a declaration file and dump it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decl.ParseFile(args[0])
			if err != nil {
				return err
			}
			enc := format.NewDeclarationJSONEncoder(cmd.OutOrStdout(), includePositions)
			if err := enc.Encode(d); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includePositions, "positions", false, "include source positions")

	return cmd
}
