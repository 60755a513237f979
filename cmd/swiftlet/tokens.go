package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/swiftlet/internal/swiftlet"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the tokens of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		reporter := swiftlet.NewSimpleReporter(cmd.ErrOrStderr())
		for _, tok := range swiftlet.NewScanner([]rune(string(src)), reporter).Scan() {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		if reporter.HadError() {
			return &exitError{exitDataErr}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
