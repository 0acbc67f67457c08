// Package histogram renders a journey-time distribution.
//
// Bins and Render share one binning, gonum's plotter.NewHist: n equal-width
// bins spanning [min, max], the maximum landing in the last bin. The values
// are read, never reordered or modified.
package histogram

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultBins is the bin count used when none is set.
	DefaultBins = 20
	// Title is the plot heading.
	Title = "Histogram of Journey Times"
	// XLabel and YLabel name the axes.
	XLabel = "Journey Time (minutes)"
	YLabel = "Frequency"
)

var (
	// ErrNoData indicates an empty distribution.
	ErrNoData = errors.New("histogram: no values to plot")
	// ErrBadBins indicates a non-positive bin count.
	ErrBadBins = errors.New("histogram: bin count must be positive")
	// ErrFormat indicates an unsupported image format.
	ErrFormat = errors.New("histogram: unsupported image format")
)

// Bin is one bar of the histogram: values in [Min, Max).
type Bin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Option tunes a rendered plot.
type Option func(*options)

type options struct {
	bins          int
	width, height vg.Length
	format        string
	title         string
}

func defaults() options {
	return options{
		bins:   DefaultBins,
		width:  6 * vg.Inch,
		height: 4 * vg.Inch,
		format: "png",
		title:  Title,
	}
}

// WithBins sets the number of bins. Non-positive n is rejected at render time.
func WithBins(n int) Option {
	return func(o *options) { o.bins = n }
}

// WithSize sets the image size.
func WithSize(width, height vg.Length) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithFormat selects the Render output format: png, svg, pdf, jpg, tiff or eps.
// Save derives the format from the file extension instead.
func WithFormat(format string) Option {
	return func(o *options) { o.format = strings.ToLower(format) }
}

// WithTitle overrides the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

var formats = map[string]bool{"png": true, "svg": true, "pdf": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true, "eps": true}

// Bins splits values into n equal-width bins.
func Bins(values []float64, n int) ([]Bin, error) {
	h, err := newHist(values, n)
	if err != nil {
		return nil, err
	}

	out := make([]Bin, len(h.Bins))
	for i, b := range h.Bins {
		out[i] = Bin{Min: b.Min, Max: b.Max, Count: int(b.Weight)}
	}

	return out, nil
}

// Render draws the histogram of values to w.
func Render(values []float64, w io.Writer, opts ...Option) error {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}
	if !formats[o.format] {
		return fmt.Errorf("%w: %q", ErrFormat, o.format)
	}

	p, err := build(values, o)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.width, o.height, o.format)
	if err != nil {
		return fmt.Errorf("histogram: encode %s: %w", o.format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("histogram: write: %w", err)
	}

	return nil
}

// Save draws the histogram of values to path. The extension picks the format.
func Save(values []float64, path string, opts ...Option) error {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}
	if ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); !formats[ext] {
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}

	p, err := build(values, o)
	if err != nil {
		return err
	}
	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("histogram: save %s: %w", path, err)
	}

	return nil
}

func build(values []float64, o options) (*plot.Plot, error) {
	h, err := newHist(values, o.bins)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(h)

	return p, nil
}

func newHist(values []float64, n int) (*plotter.Histogram, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBins, n)
	}

	h, err := plotter.NewHist(plotter.Values(values), n)
	if err != nil {
		return nil, fmt.Errorf("histogram: bin values: %w", err)
	}

	return h, nil
}
