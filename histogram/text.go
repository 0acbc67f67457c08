package histogram

import (
	"fmt"
	"io"
	"strings"
)

// Text prints bins as horizontal bars, the longest bar width runes wide.
//
//	  4.00 -   6.00 | ████████████ 2
func Text(w io.Writer, bins []Bin, width int) error {
	if len(bins) == 0 {
		return ErrNoData
	}
	if width <= 0 {
		width = 40
	}

	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}

	for _, b := range bins {
		bar := 0
		if peak > 0 {
			bar = b.Count * width / peak
		}
		if _, err := fmt.Fprintf(w, "%7.2f - %7.2f | %s %d\n",
			b.Min, b.Max, strings.Repeat("█", bar), b.Count); err != nil {
			return err
		}
	}

	return nil
}
