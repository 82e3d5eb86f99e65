package fold

import "pamfold/pkg/card"

// scanner is the forward pass that turns classified lines into folds. It is
// a two-state machine: seeking the first card line of the next fold, or
// extending a fold of keyword active. While extending, lastMatch is the
// last line that actually carried the active keyword; comment lines are
// carried along provisionally and only become part of the fold when the
// active keyword reappears behind them.
type scanner struct {
	list      *List
	extending bool
	active    card.Keyword
	start     int
	lastMatch int
}

// step consumes one classified line.
func (s *scanner) step(i int, c card.Class) error {
	if !s.extending {
		if kw, ok := c.Card(); ok {
			s.extending = true
			s.active = kw
			s.start = i
			s.lastMatch = i
		}
		return nil
	}

	switch kw, ok := c.Card(); {
	case c.IsComment():
		// provisional; absorbed only if active reappears
	case !ok:
		// an unrecognized line is a hard break
		if err := s.close(); err != nil {
			return err
		}
		s.extending = false
	case kw == s.active:
		s.lastMatch = i
	default:
		if err := s.close(); err != nil {
			return err
		}
		s.active = kw
		s.start = i
		s.lastMatch = i
	}
	return nil
}

// finish handles end-of-input, which closes the active fold exactly like a
// differing classification would.
func (s *scanner) finish() error {
	if !s.extending {
		return nil
	}
	s.extending = false
	return s.close()
}

// close commits the active fold at its last matching line. Comment lines
// after lastMatch are dropped; single-line candidates vanish in
// CheckedInsert.
func (s *scanner) close() error {
	return s.list.CheckedInsert(s.start, s.lastMatch, s.active)
}

// Rebuild empties the List, classifies lines one by one and repopulates the
// List with the folds of the whole sequence. A run of one keyword
// interrupted by comment lines becomes a single fold iff the same keyword
// reappears after the comments; otherwise the comments belong to no fold.
// Rebuild runs to completion synchronously, so no partial state is ever
// observable. The only possible error is ErrDuplicateFold, which the single
// forward pass cannot produce; it escaping Rebuild means the List was
// corrupted elsewhere.
func (l *List) Rebuild(lines []string) error {
	l.Clear()
	s := scanner{list: l}
	for i, line := range lines {
		if err := s.step(i, card.Classify(line)); err != nil {
			return err
		}
	}
	return s.finish()
}
