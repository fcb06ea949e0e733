package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/studentdb/internal/student"
)

// Adder is the store operation imports go through, so the uniqueness rule
// still applies to imported records.
type Adder interface {
	Add(id, name, grade string) error
}

// Summary reports what an import did.
type Summary struct {
	Files      []string
	Added      int
	Duplicates []string
}

// Expand resolves doublestar patterns such as "classes/**/*.xlsx" into a
// de-duplicated list of files. A pattern without matches is kept as a
// literal path so that reading it reports the real error.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// ReadFile decodes the records in path, choosing the decoder by extension.
// Records with a blank id get a generated one, whatever the format.
func ReadFile(path string) ([]student.Record, error) {
	records, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	fillBlankIDs(records)
	return records, nil
}

func fillBlankIDs(records []student.Record) {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
}

func decodeFile(path string) ([]student.Record, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if format == FormatXLSX {
		records, err := readXLSX(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return records, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []student.Record
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &records)
	case FormatYAML:
		err = yaml.Unmarshal(data, &records)
	default:
		return nil, fmt.Errorf("%s: cannot import %s files", path, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Import reads every file matched by patterns and adds the records to a
// in order. Records whose id is already taken are counted in
// Summary.Duplicates and skipped; any other add error stops the import.
func Import(a Adder, patterns []string) (Summary, error) {
	var sum Summary

	files, err := Expand(patterns)
	if err != nil {
		return sum, err
	}
	sum.Files = files

	for _, file := range files {
		records, err := ReadFile(file)
		if err != nil {
			return sum, err
		}
		for _, r := range records {
			if err := a.Add(r.ID, r.Name, r.Grade); err != nil {
				if errors.Is(err, student.ErrDuplicateID) {
					sum.Duplicates = append(sum.Duplicates, r.ID)
					continue
				}
				return sum, err
			}
			sum.Added++
		}
	}
	return sum, nil
}
