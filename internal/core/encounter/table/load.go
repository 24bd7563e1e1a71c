package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/encounter-xp/internal/platform/errors"
)

// Format is the encoding of a table document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the table at path, or returns Default when path is empty.
func Load(path string) (Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and decodes the table file at path. An empty path is not
// special: it fails like any other missing file.
//
// A missing file fails with CodeTableNotFound, any other read failure with
// CodeTableIO, and an undecodable or incomplete document with
// CodeTableMalformed. No fallback table is returned on error.
func LoadFile(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, apperrors.WrapWithMetadata(
				apperrors.CodeTableNotFound,
				fmt.Sprintf("encounter table not found at: %s, please check path", path),
				map[string]string{"path": path},
				err,
			)
		}
		return Table{}, apperrors.WrapWithMetadata(
			apperrors.CodeTableIO,
			fmt.Sprintf("read encounter table: %v", err),
			map[string]string{"path": path},
			err,
		)
	}

	t, err := Decode(raw, FormatForPath(path))
	if err != nil {
		return Table{}, err
	}
	return t, nil
}

// tableDocument mirrors Table with pointer fields so absent tiers can be
// told apart from empty ones.
type tableDocument struct {
	Easy   *[]uint32 `yaml:"easy"`
	Medium *[]uint32 `yaml:"medium"`
	Hard   *[]uint32 `yaml:"hard"`
	Deadly *[]uint32 `yaml:"deadly"`
}

// Decode parses a table document. Field names match exactly, unknown fields
// are ignored, a repeated field is rejected and each of the four tiers must
// be present.
func Decode(raw []byte, format Format) (Table, error) {
	var doc tableDocument
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	default:
		doc, err = decodeJSONDocument(raw)
	}
	if err != nil {
		return Table{}, malformed(format, err)
	}

	fields := []struct {
		name  string
		value *[]uint32
	}{
		{"easy", doc.Easy},
		{"medium", doc.Medium},
		{"hard", doc.Hard},
		{"deadly", doc.Deadly},
	}
	for _, f := range fields {
		if f.value == nil {
			return Table{}, malformed(format, fmt.Errorf("missing field `%s`", f.name))
		}
	}

	return Table{
		Easy:   *doc.Easy,
		Medium: *doc.Medium,
		Hard:   *doc.Hard,
		Deadly: *doc.Deadly,
	}, nil
}

// decodeJSONDocument walks the top-level object itself: encoding/json folds
// key case when filling structs and keeps the last of repeated keys.
func decodeJSONDocument(raw []byte) (tableDocument, error) {
	var syntax any
	if err := json.Unmarshal(raw, &syntax); err != nil {
		return tableDocument{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return tableDocument{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return tableDocument{}, fmt.Errorf("cannot unmarshal %s into an encounter table object", jsonKind(tok))
	}

	fields := make(map[string]json.RawMessage, 4)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return tableDocument{}, err
		}
		key, _ := tok.(string)
		if _, seen := fields[key]; seen {
			return tableDocument{}, fmt.Errorf("duplicate field `%s`", key)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return tableDocument{}, err
		}
		fields[key] = value
	}

	var doc tableDocument
	targets := []struct {
		name string
		dst  **[]uint32
	}{
		{"easy", &doc.Easy},
		{"medium", &doc.Medium},
		{"hard", &doc.Hard},
		{"deadly", &doc.Deadly},
	}
	for _, target := range targets {
		value, ok := fields[target.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target.dst); err != nil {
			return tableDocument{}, fmt.Errorf("field `%s`: %w", target.name, err)
		}
	}
	return doc, nil
}

func jsonKind(tok json.Token) string {
	switch tok.(type) {
	case json.Delim:
		return "array"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "bool"
	default:
		return "null"
	}
}

func malformed(format Format, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeTableMalformed,
		fmt.Sprintf("unable to construct encounter table from %s, error received:\n%v", strings.ToUpper(string(format)), cause),
		map[string]string{"format": string(format)},
		cause,
	)
}
