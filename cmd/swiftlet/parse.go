package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ltungv/swiftlet/internal/swiftlet"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Print the syntax tree of each file",
	Long: `Parse every file and print its top-level nodes as S-expressions.

Files are parsed concurrently, output keeps the order of the arguments.
A file that cannot be read counts as failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

type parseResult struct {
	tree  string
	diags bytes.Buffer
	ok    bool
}

func runParse(cmd *cobra.Command, args []string) error {
	results := make([]parseResult, len(args))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			res := &results[i]
			src, err := os.ReadFile(path)
			if err != nil {
				// the other files are still printed
				fmt.Fprintln(&res.diags, err)
				return nil
			}
			reporter := swiftlet.NewSimpleReporter(&res.diags)
			var tokensOut io.Writer
			if cfg.ShowTokens {
				tokensOut = &res.diags
			}
			nodes, ok := compile(string(src), reporter, tokensOut)
			if ok {
				res.tree = new(swiftlet.AstPrinter).PrintAll(nodes)
			}
			res.ok = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for i := range results {
		res := &results[i]
		if len(args) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "; %s\n", args[i])
		}
		cmd.ErrOrStderr().Write(res.diags.Bytes())
		fmt.Fprint(cmd.OutOrStdout(), res.tree)
		failed = failed || !res.ok
	}
	if failed {
		return &exitError{exitDataErr}
	}
	return nil
}
