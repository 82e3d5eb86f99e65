package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var deck = strings.Join([]string{
	"NODE  /        1              0.             0.5              0.",
	"NODE  /        2              0.             0.5              0.",
	"#Comment",
	"NODE  /        3              0.             0.5              0.",
	"invalid line here",
	"SHELL /     3129       1       1    2967    2971    2970",
	"SHELL /     3130       1       1    2967    2971    2970",
}, "\n")

func writeDeck(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.pc")
	if err := os.WriteFile(path, []byte(deck), 0644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func TestPrintFoldsText(t *testing.T) {
	foldFormat = "text"
	path := writeDeck(t)

	var out strings.Builder
	if err := printFolds(&out, path); err != nil {
		t.Fatalf("printFolds() error = %v", err)
	}

	want := "0 3 NODE\n5 6 SHELL\n"
	if got := out.String(); got != want {
		t.Errorf("printFolds() output = %q, want %q", got, want)
	}
}

func TestPrintFoldsVim(t *testing.T) {
	foldFormat = "vim"
	path := writeDeck(t)

	var out strings.Builder
	if err := printFolds(&out, path); err != nil {
		t.Fatalf("printFolds() error = %v", err)
	}

	want := "normal! zE\n1,4fo\n6,7fo\n"
	if got := out.String(); got != want {
		t.Errorf("printFolds() output = %q, want %q", got, want)
	}
}

func TestPrintFoldsJSON(t *testing.T) {
	foldFormat = "json"
	path := writeDeck(t)

	var out strings.Builder
	if err := printFolds(&out, path); err != nil {
		t.Fatalf("printFolds() error = %v", err)
	}

	var folds []struct {
		Start int    `json:"start"`
		End   int    `json:"end"`
		Kind  string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(out.String()), &folds); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(folds) != 2 {
		t.Fatalf("got %d folds, want 2", len(folds))
	}
	if folds[0].Start != 0 || folds[0].End != 3 || folds[0].Kind != "NODE" {
		t.Errorf("first fold = %+v, want {0 3 NODE}", folds[0])
	}
}

func TestPrintFoldsUnknownFormat(t *testing.T) {
	foldFormat = "yaml"
	path := writeDeck(t)

	var out strings.Builder
	if err := printFolds(&out, path); err == nil {
		t.Error("printFolds() error = nil, want error")
	}
}

func TestPrintFoldsMissingFile(t *testing.T) {
	foldFormat = "text"
	var out strings.Builder
	if err := printFolds(&out, filepath.Join(t.TempDir(), "missing.pc")); err == nil {
		t.Error("printFolds() error = nil, want error")
	}
}
