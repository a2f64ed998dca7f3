// Package plot renders a scalar function as an ASCII chart. *Plotter
// satisfies rootfind.Plotter, so it can be handed to rootfind.Solve through
// rootfind.WithPlotter.
//
// Layout:
//
//	f(x) on [lo, hi], y in [ymin, ymax]
//	  |    *
//	  |  *
//	--+*------
//	 *|
//
//   - '*' one sample per column,
//   - '-' the x-axis when 0 lies within the sampled y-range,
//   - '|' the y-axis when 0 lies within [lo, hi],
//   - '+' where the axes cross.
//
// Non-finite samples are skipped.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/rootfind"
)

// Defaults for the chart size, in characters.
const (
	DefaultWidth  = 64
	DefaultHeight = 20
)

const panicSizeInvalid = "plot: WithSize: width and height must be >= 2"

var (
	// ErrBadInterval indicates lo > hi or a non-finite endpoint.
	ErrBadInterval = errors.New("plot: invalid interval")

	// ErrNoFiniteSamples indicates f was not finite anywhere on the grid.
	ErrNoFiniteSamples = errors.New("plot: no finite samples")
)

// Option configures a Plotter.
type Option func(*Plotter)

// WithSize sets the chart width and height. Panics when either is < 2.
func WithSize(width, height int) Option {
	if width < 2 || height < 2 {
		panic(panicSizeInvalid)
	}

	return func(p *Plotter) { p.width, p.height = width, height }
}

// Plotter writes ASCII charts to an io.Writer.
type Plotter struct {
	w      io.Writer
	width  int
	height int
}

// New returns a Plotter writing to w.
func New(w io.Writer, opts ...Option) *Plotter {
	p := &Plotter{w: w, width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Plot samples f at p.width evenly spaced points of [lo, hi] and writes the chart.
func (p *Plotter) Plot(f rootfind.Func, lo, hi float64) error {
	if lo > hi || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: [%g, %g]", ErrBadInterval, lo, hi)
	}

	var (
		xs         = make([]float64, p.width)
		ys         = make([]float64, p.width)
		ymin, ymax = math.Inf(1), math.Inf(-1)
		step       = (hi - lo) / float64(p.width-1)
	)
	for i := range xs {
		xs[i] = lo + float64(i)*step
		ys[i] = f(xs[i])
		if isFinite(ys[i]) {
			ymin = math.Min(ymin, ys[i])
			ymax = math.Max(ymax, ys[i])
		}
	}
	if ymin > ymax {
		return ErrNoFiniteSamples
	}
	header := fmt.Sprintf("f(x) on [%g, %g], y in [%g, %g]\n", lo, hi, ymin, ymax)
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}

	grid := make([][]byte, p.height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", p.width))
	}

	col0, hasYAxis := -1, lo <= 0 && 0 <= hi
	if hasYAxis {
		col0 = scale(0, lo, hi, p.width)
		for r := range grid {
			grid[r][col0] = '|'
		}
	}
	if ymin <= 0 && 0 <= ymax {
		row0 := p.height - 1 - scale(0, ymin, ymax, p.height)
		for c := range grid[row0] {
			grid[row0][c] = '-'
		}
		if hasYAxis {
			grid[row0][col0] = '+'
		}
	}
	for i, y := range ys {
		if !isFinite(y) {
			continue
		}
		grid[p.height-1-scale(y, ymin, ymax, p.height)][i] = '*'
	}

	var sb strings.Builder
	sb.WriteString(header)
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, sb.String())

	return err
}

// scale maps v from [lo, hi] onto the cell index range [0, n-1].
func scale(v, lo, hi float64, n int) int {
	if hi == lo {
		return 0
	}

	return int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
