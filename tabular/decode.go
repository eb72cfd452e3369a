package tabular

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode maps records onto T using its mapstructure tags. Numbers and strings
// are converted into each other as needed. A row that fails to decode is kept
// with the fields that did decode; the failures are returned joined.
func Decode[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	var errs []error
	for i, rec := range records {
		var v T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &v,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(map[string]any(rec)); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+2, err))
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}
