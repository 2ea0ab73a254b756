package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/jbind/classinfo"
	"github.com/dhamidi/jbind/config"
	"github.com/dhamidi/jbind/maven"
)

const version = "0.1.0"

var log = commonlog.GetLogger("jbind")

// cfg is loaded before any subcommand runs.
var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jbind",
		Short:         "Generate Go bindings for Java classes",
		Version:       version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err = config.Load(dir, cmd.Flags())
			if err != nil {
				return err
			}
			var logFile *string
			if cfg.Log.File != "" {
				logFile = &cfg.Log.File
			}
			commonlog.Configure(cfg.Log.Verbosity, logFile)
			return nil
		},
	}
	config.Flags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFactsCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

// loadFacts loads the configured fact sources, downloading maven: sources
// into the jar cache first.
func loadFacts(ctx context.Context) (*classinfo.FactBase, error) {
	cache := cfg.Maven.Cache
	if cache == "" {
		var err error
		cache, err = maven.DefaultCacheDir()
		if err != nil {
			return nil, err
		}
	}
	fetcher := maven.NewFetcher(cfg.Maven.Repository, cache)
	sources, err := fetcher.Resolve(ctx, cfg.Facts)
	if err != nil {
		return nil, err
	}
	facts, err := classinfo.Load(sources...)
	if err != nil {
		return nil, fmt.Errorf("load facts: %w", err)
	}
	log.Infof("loaded %d classes", facts.Len())
	return facts, nil
}
