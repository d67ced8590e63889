// Package chart renders the biodegradable / non-biodegradable doughnut chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"smartbin/internal/feature/classification/domain/entity"
)

// Format is the output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

const (
	// NonBioColor is the slice color for non-biodegradable waste.
	NonBioColor = "#e74c3c"
	// BioColor is the slice color for biodegradable waste.
	BioColor = "#2ecc71"

	defaultSize = 300
)

var (
	// ErrEmptyChart is returned when both buckets are zero (nothing to draw).
	ErrEmptyChart = errors.New("chart has no data")
	// ErrUnsupportedFormat is returned for formats other than png and svg.
	ErrUnsupportedFormat = errors.New("unsupported chart format")
)

// ParseFormat converts a query value to a Format. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// RenderDonut draws the two-slice doughnut (Non-Biodegradable first) to w.
// Zero or non-finite buckets are left out.
func RenderDonut(w io.Writer, agg entity.BinaryAggregate, format Format) error {
	values := make([]gochart.Value, 0, 2)
	add := func(label string, v float64, color string) {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s %.1f%%", label, v),
			Value: v,
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(color, "#")),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	add(string(entity.NonBiodegradable), agg.NonBiodegradable, NonBioColor)
	add(string(entity.Biodegradable), agg.Biodegradable, BioColor)

	if len(values) == 0 {
		return ErrEmptyChart
	}

	var rp gochart.RendererProvider
	switch format {
	case FormatPNG, "":
		rp = gochart.PNG
	case FormatSVG:
		rp = gochart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	donut := gochart.DonutChart{
		Width:  defaultSize,
		Height: defaultSize,
		Values: values,
	}
	if err := donut.Render(rp, w); err != nil {
		return fmt.Errorf("render donut: %w", err)
	}
	return nil
}
