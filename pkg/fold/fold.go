// Package fold derives collapsible line ranges from a classified Pamcrash
// deck. A fold is a contiguous inclusive range of lines sharing one card
// keyword; the List owns all folds of a single buffer.
package fold

import (
	"errors"
	"sort"

	"pamfold/pkg/card"
)

var (
	// ErrDuplicateFold is returned by Insert when the (start, end) key is
	// already present. Rebuild never produces this: its single forward pass
	// emits strictly increasing ranges.
	ErrDuplicateFold = errors.New("fold already in fold list")
	// ErrFoldNotFound is returned by Remove when the key is missing.
	ErrFoldNotFound = errors.New("fold not found in fold list")
)

// Fold is an inclusive line range (zero-based, Start < End) with the card
// keyword shared by its lines.
type Fold struct {
	Start int
	End   int
	Kind  card.Keyword
}

type key struct{ a, b int }

// List holds the folds of one buffer in two views of the same set, keyed
// (start, end) and (end, start). Every mutation updates both views or
// neither. A List is owned by a single session; it does no locking.
type List struct {
	folds    map[key]card.Keyword // keyed (start, end)
	foldsInv map[key]card.Keyword // keyed (end, start)
}

// NewList creates an empty List.
func NewList() *List {
	return &List{
		folds:    make(map[key]card.Keyword),
		foldsInv: make(map[key]card.Keyword),
	}
}

// Clear empties both views.
func (l *List) Clear() {
	clear(l.folds)
	clear(l.foldsInv)
}

// Len returns the number of folds.
func (l *List) Len() int {
	return len(l.folds)
}

// Insert records a fold in both views. It returns ErrDuplicateFold if the
// (start, end) key is already present; the fold then needs to be removed
// before it can be inserted again. On error the List is unchanged.
func (l *List) Insert(start, end int, kind card.Keyword) error {
	k := key{start, end}
	if _, occupied := l.folds[k]; occupied {
		return ErrDuplicateFold
	}
	l.folds[k] = kind
	l.foldsInv[key{end, start}] = kind
	return nil
}

// CheckedInsert inserts a fold unless its span is less than two lines, in
// which case it silently does nothing. Single-line candidates are expected
// output of the scanner, not an error.
func (l *List) CheckedInsert(start, end int, kind card.Keyword) error {
	if start >= end {
		return nil
	}
	return l.Insert(start, end, kind)
}

// Remove deletes a fold from both views. It returns ErrFoldNotFound if the
// key is missing from either view; in that case nothing is deleted.
func (l *List) Remove(start, end int) error {
	if _, ok := l.folds[key{start, end}]; !ok {
		return ErrFoldNotFound
	}
	if _, ok := l.foldsInv[key{end, start}]; !ok {
		return ErrFoldNotFound
	}
	delete(l.folds, key{start, end})
	delete(l.foldsInv, key{end, start})
	return nil
}

// Kind looks a fold up by its (start, end) key.
func (l *List) Kind(start, end int) (card.Keyword, bool) {
	kind, ok := l.folds[key{start, end}]
	return kind, ok
}

// KindByEnd looks a fold up in the inverse view, by its (end, start) key.
func (l *List) KindByEnd(end, start int) (card.Keyword, bool) {
	kind, ok := l.foldsInv[key{end, start}]
	return kind, ok
}

// Export returns the current folds sorted by (start, end). The List is left
// intact.
func (l *List) Export() []Fold {
	folds := make([]Fold, 0, len(l.folds))
	for k, kind := range l.folds {
		folds = append(folds, Fold{Start: k.a, End: k.b, Kind: kind})
	}
	sort.Slice(folds, func(i, j int) bool {
		if folds[i].Start != folds[j].Start {
			return folds[i].Start < folds[j].Start
		}
		return folds[i].End < folds[j].End
	})
	return folds
}
