package vocabulary

import (
	"bufio"
	"os"
	"strings"

	"vocabpopup/internal/domain"

	"go.uber.org/zap"
)

// Store holds an immutable bidirectional term mapping.
// Keys are matched case-insensitively; entries keep their insertion order
// so that fuzzy iteration is deterministic. The store is read-only after
// construction.
type Store struct {
	entries []domain.Entry
	index   map[string]int
}

func newStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Build constructs a store from explicit pairs, inserting both directions
// for each pair
func Build(pairs []domain.Entry) *Store {
	s := newStore()
	for _, p := range pairs {
		s.add(p.Term, p.Translation)
	}
	return s
}

// Load reads the vocabulary resource at path and builds the store.
// Blank lines and lines starting with '#' are skipped; valid lines have the
// form "term = translation" (split on the first '=', both sides trimmed and
// non-empty) and insert both directions. A later line overwrites an earlier
// key. A missing file falls back to the built-in defaults; a read failure
// mid-parse keeps whatever was parsed before it, without the defaults.
func Load(path string, logger *zap.Logger) *Store {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Vocabulary file unavailable, using built-in defaults",
			zap.String("path", path),
			zap.Error(err),
		)
		return Build(defaultPairs)
	}
	defer f.Close()

	s := newStore()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		term, translation, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		s.add(term, translation)
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("Vocabulary read interrupted, keeping entries parsed so far",
			zap.String("path", path),
			zap.Int("entries", s.Len()),
			zap.Error(err),
		)
	}
	return s
}

// parseLine extracts a term-translation pair from one resource line.
// Returns ok=false for comments, blanks and malformed lines.
func parseLine(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	term, translation, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}
	term = strings.TrimSpace(term)
	translation = strings.TrimSpace(translation)
	if term == "" || translation == "" {
		return "", "", false
	}
	return term, translation, true
}

// add inserts both directions of a pair. The last occurrence of a key wins;
// an overwritten key keeps its original position.
func (s *Store) add(term, translation string) {
	s.insert(term, translation)
	s.insert(translation, term)
}

func (s *Store) insert(key, value string) {
	lk := strings.ToLower(key)
	if pos, ok := s.index[lk]; ok {
		s.entries[pos].Translation = value
		return
	}
	s.index[lk] = len(s.entries)
	s.entries = append(s.entries, domain.Entry{Term: key, Translation: value})
}

// Lookup returns the translation for term, matched case-insensitively
func (s *Store) Lookup(term string) (string, bool) {
	pos, ok := s.index[strings.ToLower(term)]
	if !ok {
		return "", false
	}
	return s.entries[pos].Translation, true
}

// Entries returns the store's entries in insertion order.
// The returned slice must not be modified.
func (s *Store) Entries() []domain.Entry {
	return s.entries
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	return len(s.entries)
}
