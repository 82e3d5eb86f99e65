package fold_test

import (
	"errors"
	"reflect"
	"testing"

	"pamfold/pkg/card"
	"pamfold/pkg/fold"
)

func TestInsertDuplicate(t *testing.T) {
	list := fold.NewList()

	if err := list.Insert(1, 5, card.Node); err != nil {
		t.Fatalf("Insert(1, 5) error = %v", err)
	}
	err := list.Insert(1, 5, card.Shell)
	if !errors.Is(err, fold.ErrDuplicateFold) {
		t.Fatalf("Insert duplicate error = %v, want ErrDuplicateFold", err)
	}

	// the failed insert must not have touched either view
	if kind, ok := list.Kind(1, 5); !ok || kind != card.Node {
		t.Errorf("Kind(1, 5) = %v, %v, want NODE, true", kind, ok)
	}
	if kind, ok := list.KindByEnd(5, 1); !ok || kind != card.Node {
		t.Errorf("KindByEnd(5, 1) = %v, %v, want NODE, true", kind, ok)
	}
	if got := list.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestCheckedInsert(t *testing.T) {
	list := fold.NewList()

	// spans below two lines are silently dropped
	if err := list.CheckedInsert(3, 3, card.Node); err != nil {
		t.Fatalf("CheckedInsert(3, 3) error = %v", err)
	}
	if err := list.CheckedInsert(4, 2, card.Node); err != nil {
		t.Fatalf("CheckedInsert(4, 2) error = %v", err)
	}
	if got := list.Len(); got != 0 {
		t.Fatalf("Len() after dropped inserts = %d, want 0", got)
	}

	if err := list.CheckedInsert(1, 2, card.Node); err != nil {
		t.Fatalf("CheckedInsert(1, 2) error = %v", err)
	}
	if err := list.CheckedInsert(1, 2, card.Node); !errors.Is(err, fold.ErrDuplicateFold) {
		t.Errorf("CheckedInsert duplicate error = %v, want ErrDuplicateFold", err)
	}

	// comment folds are insertable; only the span rule filters
	if err := list.CheckedInsert(4, 6, card.Comment); err != nil {
		t.Errorf("CheckedInsert(4, 6, Comment) error = %v", err)
	}
}

func TestRemove(t *testing.T) {
	list := fold.NewList()

	if err := list.Remove(2, 3); !errors.Is(err, fold.ErrFoldNotFound) {
		t.Fatalf("Remove on empty list error = %v, want ErrFoldNotFound", err)
	}

	if err := list.Insert(1, 2, card.Node); err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	if err := list.Remove(1, 2); err != nil {
		t.Fatalf("Remove(1, 2) error = %v", err)
	}
	if _, ok := list.Kind(1, 2); ok {
		t.Error("Kind(1, 2) found after Remove")
	}
	if _, ok := list.KindByEnd(2, 1); ok {
		t.Error("KindByEnd(2, 1) found after Remove")
	}
	if err := list.Remove(1, 2); !errors.Is(err, fold.ErrFoldNotFound) {
		t.Errorf("second Remove error = %v, want ErrFoldNotFound", err)
	}
}

func TestExportOrder(t *testing.T) {
	list := fold.NewList()
	inserts := []fold.Fold{
		{Start: 10, End: 14, Kind: card.Shell},
		{Start: 0, End: 3, Kind: card.Node},
		{Start: 17, End: 19, Kind: card.Node},
		{Start: 4, End: 8, Kind: card.Beam},
	}
	for _, f := range inserts {
		if err := list.Insert(f.Start, f.End, f.Kind); err != nil {
			t.Fatalf("Insert(%d, %d) error = %v", f.Start, f.End, err)
		}
	}

	want := []fold.Fold{
		{Start: 0, End: 3, Kind: card.Node},
		{Start: 4, End: 8, Kind: card.Beam},
		{Start: 10, End: 14, Kind: card.Shell},
		{Start: 17, End: 19, Kind: card.Node},
	}
	if got := list.Export(); !reflect.DeepEqual(got, want) {
		t.Errorf("Export() = %v, want %v", got, want)
	}

	// Export is a view, not a drain
	if got := list.Len(); got != len(want) {
		t.Errorf("Len() after Export = %d, want %d", got, len(want))
	}
}

func TestDualViewSync(t *testing.T) {
	list := fold.NewList()

	ops := []struct {
		remove     bool
		start, end int
		kind       card.Keyword
	}{
		{false, 0, 3, card.Node},
		{false, 5, 9, card.Shell},
		{false, 12, 13, card.Beam},
		{true, 5, 9, 0},
		{false, 5, 7, card.Solid},
		{true, 0, 3, 0},
		{false, 20, 25, card.Node},
	}
	for _, op := range ops {
		var err error
		if op.remove {
			err = list.Remove(op.start, op.end)
		} else {
			err = list.Insert(op.start, op.end, op.kind)
		}
		if err != nil {
			t.Fatalf("op %+v error = %v", op, err)
		}
	}

	// both views must describe exactly the exported set
	folds := list.Export()
	if len(folds) != list.Len() {
		t.Fatalf("Export() has %d folds, Len() = %d", len(folds), list.Len())
	}
	for _, f := range folds {
		kind, ok := list.Kind(f.Start, f.End)
		if !ok || kind != f.Kind {
			t.Errorf("Kind(%d, %d) = %v, %v, want %v, true", f.Start, f.End, kind, ok, f.Kind)
		}
		kind, ok = list.KindByEnd(f.End, f.Start)
		if !ok || kind != f.Kind {
			t.Errorf("KindByEnd(%d, %d) = %v, %v, want %v, true", f.End, f.Start, kind, ok, f.Kind)
		}
	}
}

func TestClear(t *testing.T) {
	list := fold.NewList()
	if err := list.Insert(0, 1, card.Node); err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	list.Clear()
	if got := list.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
	if _, ok := list.KindByEnd(1, 0); ok {
		t.Error("KindByEnd found a fold after Clear")
	}
}
