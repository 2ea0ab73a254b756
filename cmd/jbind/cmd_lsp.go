package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/jbind/classinfo"
	"github.com/dhamidi/jbind/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var facts *classinfo.FactBase
			if len(cfg.Facts) > 0 {
				var err error
				facts, err = loadFacts(cmd.Context())
				if err != nil {
					return err
				}
			}
			server := lsp.NewServer(version, facts)
			return server.RunStdio()
		},
	}
}
