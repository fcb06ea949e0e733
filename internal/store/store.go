package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jeanpaul/studentdb/internal/schema"
	"github.com/jeanpaul/studentdb/internal/student"
)

// DefaultPath is the backing file used when none is configured.
const DefaultPath = "students.json"

// Store owns the ordered list of student records and mirrors it to a JSON
// file after every successful mutation. It is not safe for concurrent use.
type Store struct {
	path      string
	records   []student.Record
	logger    *zap.Logger
	validator *schema.Validator
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithValidator(v *schema.Validator) Option {
	return func(s *Store) {
		if v != nil {
			s.validator = v
		}
	}
}

// New opens the store at path and loads whatever records it already holds.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{
		path:      path,
		logger:    zap.NewNop(),
		validator: schema.NewValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.records = s.Load()
	return s
}

func (s *Store) Path() string { return s.path }

func (s *Store) Len() int { return len(s.records) }

// Records returns a copy of the current sequence.
func (s *Store) Records() []student.Record {
	out := make([]student.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Load reads the backing file. A missing, unreadable or malformed file
// yields an empty sequence; the store never refuses to start.
func (s *Store) Load() []student.Record {
	log := s.logger.With(zap.String("path", s.path))

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("Discarding unreadable data file", zap.Error(err))
		}
		return []student.Record{}
	}

	if err := s.validator.ValidateRecords(data); err != nil {
		log.Warn("Discarding malformed data file", zap.Error(err))
		return []student.Record{}
	}

	var records []student.Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn("Discarding malformed data file", zap.Error(err))
		return []student.Record{}
	}
	if records == nil {
		records = []student.Record{}
	}
	log.Debug("Loaded records", zap.Int("count", len(records)))
	return records
}

// Save overwrites the backing file with the full sequence. The write is
// not atomic: a crash mid-write can leave a truncated file.
func (s *Store) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s.records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.logger.Debug("Saved records", zap.String("path", s.path), zap.Int("count", len(s.records)))
	return nil
}

// IsUnique reports whether no record carries id.
func (s *Store) IsUnique(id string) bool {
	for _, r := range s.records {
		if r.ID == id {
			return false
		}
	}
	return true
}

// Add appends a new record and persists it.
func (s *Store) Add(id, name, grade string) error {
	r := student.Record{ID: id, Name: name, Grade: grade}
	if !r.Valid() {
		return fmt.Errorf("add %q: %w", id, student.ErrInvalidText)
	}
	if !s.IsUnique(id) {
		return fmt.Errorf("add %q: %w", id, student.ErrDuplicateID)
	}
	s.records = append(s.records, r)
	s.logger.Info("Added student", zap.String("id", id))
	return s.Save()
}

// Update applies p to the first record matching id and persists.
// Later records sharing the id, if any, are left alone.
func (s *Store) Update(id string, p student.Patch) error {
	if !utf8.ValidString(id) || !p.Valid() {
		return fmt.Errorf("update %q: %w", id, student.ErrInvalidText)
	}
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		p.Apply(&s.records[i])
		s.logger.Info("Updated student", zap.String("id", id))
		return s.Save()
	}
	return fmt.Errorf("update %q: %w", id, student.ErrNotFound)
}

// Delete removes every record matching id and returns how many went.
func (s *Store) Delete(id string) (int, error) {
	kept := make([]student.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	removed := len(s.records) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("delete %q: %w", id, student.ErrNotFound)
	}
	s.records = kept
	s.logger.Info("Deleted student", zap.String("id", id), zap.Int("removed", removed))
	return removed, s.Save()
}
