// Package exchange moves student records in and out of the store in the
// formats people actually pass around: JSON, YAML, spreadsheets and
// Markdown tables.
package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/studentdb/internal/student"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXLSX     Format = "xlsx"
	FormatMarkdown Format = "md"
)

// ParseFormat accepts a format name or a common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (must be json, yaml, xlsx, or md)", s)
}

// Export writes records to w in the given format.
func Export(w io.Writer, records []student.Record, format Format) error {
	if records == nil {
		records = []student.Record{}
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatXLSX:
		return writeXLSX(w, records)
	case FormatMarkdown:
		_, err := io.WriteString(w, MarkdownTable(records))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// writeJSON uses the same layout as the store's backing file.
func writeJSON(w io.Writer, records []student.Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
