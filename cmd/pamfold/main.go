// Package main implements pamfold, a language server and CLI that derives
// collapsible line ranges from Pamcrash input decks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"pamfold/internal/lsp"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	listen  string
	logfile string
	verbose int
)

var rootCmd = &cobra.Command{
	Use:   "pamfold",
	Short: "Language server for Pamcrash input decks",
	Long: `pamfold recognizes the card lines of a Pamcrash input deck and serves
collapsible fold ranges for them.

Without a subcommand it runs as an LSP server on stdio, answering
textDocument/foldingRange for the decks the editor opens.`,
	RunE: runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pamfold version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "raise log verbosity")
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "append logs to this file instead of stderr")
	rootCmd.Flags().StringVar(&listen, "listen", "", "serve LSP over TCP on this address instead of stdio")
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	configureLogging()

	server := lsp.NewServer(verbose > 1)
	if listen != "" {
		return server.RunTCP(listen)
	}
	return server.RunStdio()
}

func configureLogging() {
	var path *string
	if logfile != "" {
		path = &logfile
	}
	commonlog.Configure(verbose, path)
}
