package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// readCSV returns the header and data rows of a comma-separated file.
// Ragged rows are allowed; a leading UTF-8 byte order mark is dropped.
func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse %s: %w", ErrIO, path, err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	header := all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return header, all[1:], nil
}
