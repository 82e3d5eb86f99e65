// Package document tracks the open deck buffers of one editor session and
// the fold list derived from each of them.
package document

import (
	"fmt"
	"strings"
	"sync"

	"pamfold/pkg/fold"
)

// Position is a (line, character) location as reported by the host,
// zero-based.
type Position struct {
	Line      uint32
	Character uint32
}

// Change is one incremental edit: the half-open range [Start, End) is
// replaced by Text.
type Change struct {
	Start Position
	End   Position
	Text  string
}

type document struct {
	content string
	folds   *fold.List
}

// rescan rebuilds the document's fold list from its current content. Lines
// are split on '\n' and kept verbatim; a trailing '\r' never reaches the
// keyword prefix or the comment marker, so it cannot change a
// classification.
func (d *document) rescan() error {
	return d.folds.Rebuild(strings.Split(d.content, "\n"))
}

// Manager holds the open documents, keyed by URI. The mutex serializes host
// callbacks; each fold list itself stays single-owner and lock-free. A
// rescan always runs to completion under the lock, so no caller can observe
// a partially rebuilt fold list.
type Manager struct {
	docs map[string]*document
	mu   sync.Mutex
}

// NewManager creates a Manager with no open documents.
func NewManager() *Manager {
	return &Manager{
		docs: make(map[string]*document),
	}
}

// Open registers a document and computes its initial folds. Opening a URI
// twice is an error.
func (m *Manager) Open(uri string, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[uri]; exists {
		return fmt.Errorf("document already open: %s", uri)
	}

	doc := &document{content: content, folds: fold.NewList()}
	if err := doc.rescan(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", uri, err)
	}
	m.docs[uri] = doc
	return nil
}

// Replace swaps the whole content of an open document and rescans it.
func (m *Manager) Replace(uri string, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.docs[uri]
	if !exists {
		return fmt.Errorf("document not found: %s", uri)
	}
	doc.content = content
	if err := doc.rescan(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", uri, err)
	}
	return nil
}

// ApplyChanges splices incremental edits into an open document, then
// rescans the updated line sequence.
func (m *Manager) ApplyChanges(uri string, changes []Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.docs[uri]
	if !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	for _, change := range changes {
		start := offsetOf(doc.content, change.Start)
		end := offsetOf(doc.content, change.End)
		if end < start {
			return fmt.Errorf("invalid change range in %s: %d-%d", uri, start, end)
		}
		doc.content = doc.content[:start] + change.Text + doc.content[end:]
	}

	if err := doc.rescan(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", uri, err)
	}
	return nil
}

// Close drops a document and its fold list.
func (m *Manager) Close(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}
	delete(m.docs, uri)
	return nil
}

// Folds returns the current folds of an open document, ordered by
// (start, end).
func (m *Manager) Folds(uri string) ([]fold.Fold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.docs[uri]
	if !exists {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	return doc.folds.Export(), nil
}

// Lines returns the current line sequence of an open document.
func (m *Manager) Lines(uri string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.docs[uri]
	if !exists {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	return strings.Split(doc.content, "\n"), nil
}

// Len returns the number of open documents.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

// offsetOf converts a (line, character) position to a byte offset into
// content, clamping positions past the end.
func offsetOf(content string, pos Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		nl := strings.IndexByte(content[offset:], '\n')
		if nl < 0 {
			return len(content)
		}
		offset += nl + 1
	}
	offset += int(pos.Character)
	if offset > len(content) {
		offset = len(content)
	}
	return offset
}
