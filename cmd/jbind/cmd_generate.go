package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jbind/codegen"
	"github.com/dhamidi/jbind/decl"
)

func newGenerateCmd() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "generate <declaration>...",
		Short: "Generate Go bindings for the classes named in declaration files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			facts, err := loadFacts(cmd.Context())
			if err != nil {
				return err
			}

			d := &decl.Declaration{}
			for _, path := range args {
				parsed, err := decl.ParseFile(path)
				if err != nil {
					return err
				}
				d.Packages = append(d.Packages, parsed.Packages...)
			}

			gen := codegen.NewGenerator(facts, codegen.Options{
				ImportRoot: cfg.Module,
				Runtime:    cfg.Runtime,
			})
			files, err := gen.Generate(d)
			if err != nil {
				return err
			}

			for _, f := range files {
				if toStdout {
					if _, err := os.Stdout.Write(f.Source); err != nil {
						return err
					}
					continue
				}
				if err := f.Write(cfg.Output); err != nil {
					return fmt.Errorf("write %s: %w", f.Path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), f.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print generated files instead of writing them")

	return cmd
}
