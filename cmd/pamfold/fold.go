package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"pamfold/pkg/fold"
)

var (
	foldFormat string
	foldWatch  bool
)

var foldCmd = &cobra.Command{
	Use:   "fold FILE",
	Short: "Print the fold ranges of a deck file",
	Long: `Read a Pamcrash input deck and print its fold ranges.

Examples:
  # zero-based start/end plus keyword, one fold per line
  pamfold fold bumper.pc

  # command sequence for a 1-based host such as vim
  pamfold fold --format vim bumper.pc

  # re-print whenever the file is written
  pamfold fold --watch bumper.pc`,
	Args: cobra.ExactArgs(1),
	RunE: runFold,
}

func init() {
	foldCmd.Flags().StringVar(&foldFormat, "format", "text", "output format: text, vim or json")
	foldCmd.Flags().BoolVar(&foldWatch, "watch", false, "keep running and re-print folds on file writes")
}

func runFold(cmd *cobra.Command, args []string) error {
	configureLogging()

	path := args[0]
	if err := printFolds(cmd.OutOrStdout(), path); err != nil {
		return err
	}
	if !foldWatch {
		return nil
	}
	return watchFolds(cmd.OutOrStdout(), path)
}

func printFolds(w io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	list := fold.NewList()
	if err := list.Rebuild(strings.Split(string(content), "\n")); err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}
	folds := list.Export()

	switch foldFormat {
	case "text":
		for _, f := range folds {
			fmt.Fprintf(w, "%d %d %s\n", f.Start, f.End, f.Kind)
		}
	case "vim":
		for _, c := range fold.Commands(folds) {
			fmt.Fprintln(w, c)
		}
	case "json":
		type jsonFold struct {
			Start int    `json:"start"`
			End   int    `json:"end"`
			Kind  string `json:"kind"`
		}
		out := make([]jsonFold, len(folds))
		for i, f := range folds {
			out[i] = jsonFold{Start: f.Start, End: f.End, Kind: f.Kind.String()}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", foldFormat)
	}
	return nil
}

// watchFolds re-prints the folds whenever the file is written. The watch is
// on the parent directory because editors commonly replace the file on
// save, which would kill a watch on the file itself.
func watchFolds(w io.Writer, path string) error {
	log := commonlog.GetLogger("pamfold.watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("unable to watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := printFolds(w, path); err != nil {
				log.Errorf("rescan %s: %s", path, err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err.Error())
		}
	}
}
