// Package data loads observation series from JSON and CSV files.
package data

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"market-intel/internal/model"
)

// DefaultKey is the JSON object key (or CSV column) read when none is given.
const DefaultKey = "series"

// LoadSeries reads a series from path. JSON files hold either a bare array
// or an object whose key field is an array. CSV files are read by column
// name when the first row is a header, otherwise the last column is used.
// Non-numeric entries are dropped.
func LoadSeries(path, key string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []float64
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		out, err = ReadJSONSeries(f, key)
	case ".csv":
		out, err = ReadCSVSeries(f, key)
	default:
		return nil, fmt.Errorf("unsupported series file %s: want .json or .csv", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func ReadJSONSeries(r io.Reader, key string) ([]float64, error) {
	if key == "" {
		key = DefaultKey
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	switch v := doc.(type) {
	case []any:
		return model.CoerceSeries(v), nil
	case map[string]any:
		raw, ok := v[key].([]any)
		if !ok {
			return nil, fmt.Errorf("key %q is missing or not an array", key)
		}
		return model.CoerceSeries(raw), nil
	default:
		return nil, errors.New("want a JSON array or object")
	}
}

func ReadCSVSeries(r io.Reader, column string) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := -1
	if isHeader(rows[0]) {
		header := rows[0]
		rows = rows[1:]
		want := column
		if want == "" {
			want = DefaultKey
		}
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), want) {
				col = i
				break
			}
		}
		if col < 0 {
			if column != "" {
				return nil, fmt.Errorf("column %q not found", column)
			}
			col = len(header) - 1
		}
	}

	raw := make([]any, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		i := col
		if i < 0 {
			i = len(row) - 1
		}
		if i < len(row) {
			raw = append(raw, row[i])
		}
	}
	return model.CoerceSeries(raw), nil
}

// isHeader treats a first row with any non-numeric, non-blank cell as a header.
func isHeader(row []string) bool {
	for _, cell := range row {
		s := strings.TrimSpace(cell)
		if s == "" {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return true
		}
	}
	return false
}
