package fold

import "fmt"

// Commands renders folds as a command sequence for a 1-based, inclusive
// host such as vim: first a command clearing all existing folds, then one
// create command per fold in the given order. Line numbers are shifted from
// the zero-based Fold ranges to the host's 1-based counting.
func Commands(folds []Fold) []string {
	cmds := make([]string, 0, len(folds)+1)
	cmds = append(cmds, "normal! zE")
	for _, f := range folds {
		cmds = append(cmds, fmt.Sprintf("%d,%dfo", f.Start+1, f.End+1))
	}
	return cmds
}
