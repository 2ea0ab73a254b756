package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jbind/classinfo"
	"github.com/dhamidi/jbind/format"
)

func newFactsCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "facts [class]...",
		Short: "Dump the class metadata loaded from the configured fact sources",
		Long: `Dump the class metadata loaded from the configured fact sources.

With no arguments every loaded class is written. The yaml format can be fed
back to jbind as a fact file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Facts) == 0 {
				return fmt.Errorf("no fact sources configured")
			}
			facts, err := loadFacts(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) > 0 {
				selected := classinfo.NewFactBase()
				for _, name := range args {
					info, ok := facts.Lookup(name)
					if !ok {
						return fmt.Errorf("no class metadata for %s", name)
					}
					selected.Add(info)
				}
				facts = selected
			}

			out := cmd.OutOrStdout()
			if outputFormat == "yaml" {
				return facts.WriteYAML(out)
			}
			enc, err := format.NewEncoder(outputFormat, out)
			if err != nil {
				return err
			}
			for _, info := range facts.Classes() {
				if err := enc.Encode(info); err != nil {
					return fmt.Errorf("encode %s: %w", info.Name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "output format (yaml, json, or java)")

	return cmd
}
