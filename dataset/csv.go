package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/obralens/obralens/engine"
	"github.com/obralens/obralens/interpreter"
)

// ============================================================================
// CSV LOADER — Parses spreadsheet exports into engine Records
// ============================================================================
// The caller reads the CSV from wherever it lives; this package converts the
// raw bytes into generic Records and adds the derived normalized-project
// dimension used for all filtering. Datasets are immutable once loaded.
// ============================================================================

// ParseCSV parses CSV bytes into Records using the collection's schema.
// Headers are snake_cased; columns named in sch.Measures become numeric
// measures, all others become string dimensions. When the header carries the
// project column, every row gains ProjectNormColumn (empty string when the
// row's project cell is blank) — the derived column is never absent.
func ParseCSV(data []byte, sch Schema) ([]engine.Record, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s headers: %w", sch.Name, err)
	}

	keys := make([]string, len(headers))
	hasProject := false
	for i, h := range headers {
		keys[i] = toSnakeCase(strings.TrimSpace(h))
		if keys[i] == ProjectColumn {
			hasProject = true
		}
	}

	var records []engine.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		rec := engine.Record{
			Dimensions: make(map[string]string),
			Measures:   make(map[string]float64),
		}

		for i, val := range row {
			if i >= len(keys) {
				break
			}
			val = strings.TrimSpace(val)

			if sch.Measures[keys[i]] {
				if f, err := strconv.ParseFloat(val, 64); err == nil {
					rec.Measures[keys[i]] = f
				}
			} else {
				rec.Dimensions[keys[i]] = val
			}
		}

		if hasProject {
			rec.Dimensions[ProjectNormColumn] = interpreter.Normalize(rec.Dimensions[ProjectColumn])
		}

		records = append(records, rec)
	}

	return records, nil
}

// ParseCSVView parses CSV into a RecordView (convenience wrapper).
func ParseCSVView(data []byte, sch Schema) (engine.RecordView, error) {
	records, err := ParseCSV(data, sch)
	if err != nil {
		return nil, err
	}
	return engine.NewSliceView(records), nil
}

// LoadDir loads the six conventional CSV files from a directory into
// engine.Sources. A missing file leaves its view nil — the executor treats
// that as an empty dataset. Unreadable or unparsable files are an error.
func LoadDir(dir string) (engine.Sources, error) {
	var src engine.Sources

	for _, sch := range Schemas() {
		path := filepath.Join(dir, sch.FileName)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return engine.Sources{}, fmt.Errorf("read %s: %w", path, err)
		}

		view, err := ParseCSVView(data, sch)
		if err != nil {
			return engine.Sources{}, fmt.Errorf("parse %s: %w", path, err)
		}
		setSource(&src, sch.Name, view)
	}

	return src, nil
}

// LoadFiles loads explicitly configured paths (collection name → CSV path).
// Entries with empty paths are skipped.
func LoadFiles(paths map[Name]string) (engine.Sources, error) {
	var src engine.Sources

	for _, sch := range Schemas() {
		path := paths[sch.Name]
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return engine.Sources{}, fmt.Errorf("read %s: %w", path, err)
		}
		view, err := ParseCSVView(data, sch)
		if err != nil {
			return engine.Sources{}, fmt.Errorf("parse %s: %w", path, err)
		}
		setSource(&src, sch.Name, view)
	}

	return src, nil
}

func setSource(src *engine.Sources, name Name, view engine.RecordView) {
	switch name {
	case Progress:
		src.Progress = view
	case Responsible:
		src.Responsible = view
	case Restrictions:
		src.Restrictions = view
	case Sustainability:
		src.Sustainability = view
	case DesignProgress:
		src.DesignProgress = view
	case DesignInventory:
		src.DesignInventory = view
	}
}

// toSnakeCase converts "Tipo Restriccion" → "tipo_restriccion". Headers may
// arrive accented; normalization strips the marks first.
func toSnakeCase(s string) string {
	s = interpreter.Normalize(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
