package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Record is one data row keyed by header name
type Record map[string]any

var floatPattern = regexp.MustCompile(`^\s*-?(\d+\.?|\.\d+|\d+\.\d+)([eE][-+]?\d+)?\s*$`)

const maxSafeInteger = 1<<53 - 1

// Parse reads comma-delimited text with a header row. Empty lines are skipped.
// Cells missing from short rows are left out of the record; extra cells are ignored.
func Parse(r io.Reader) ([]Record, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true
	head, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	out := []Record{}
	for {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, err
		}
		if isBlank(row) {
			continue
		}
		rec := make(Record, len(head))
		for i, h := range head {
			if i >= len(row) {
				break
			}
			rec[h] = Coerce(row[i])
		}
		out = append(out, rec)
	}
	return out, nil
}

// Coerce converts a raw cell into float64, bool, nil or the original string
func Coerce(s string) any {
	switch s {
	case "":
		return nil
	case "true", "TRUE", "True":
		return true
	case "false", "FALSE", "False":
		return false
	}
	if floatPattern.MatchString(s) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && math.Abs(f) <= maxSafeInteger {
			return f
		}
	}
	return s
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
