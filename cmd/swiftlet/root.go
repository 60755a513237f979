package main

import (
	"github.com/spf13/cobra"

	"github.com/ltungv/swiftlet/internal/config"
)

var (
	cfgFile    string
	showTokens bool
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "swiftlet",
	Short: "Parser and interpreter for the swiftlet language",
	Long: `swiftlet parses and evaluates programs written in a small Swift-like
language. Without a subcommand it starts an interactive prompt.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if showTokens {
			loaded.ShowTokens = true
		}
		cfg = loaded
		return nil
	},
	RunE: runRepl,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVar(&showTokens, "tokens", false, "print scanned tokens before parsing")
}
