// Package charts renders the analysis figures as PNG files.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ekaya-inc/genre-ratings/pkg/apperrors"
	"github.com/ekaya-inc/genre-ratings/pkg/config"
	"github.com/ekaya-inc/genre-ratings/pkg/genres"
	"github.com/ekaya-inc/genre-ratings/pkg/models"
)

const (
	HistogramFile = "rating_histogram.png"
	BoxPlotFile   = "genre_boxplots.png"
	TrendFile     = "genre_trends.png"
)

// Renderer writes charts into a single directory.
type Renderer struct {
	cfg    config.ChartConfig
	logger *zap.Logger
}

// NewRenderer creates a Renderer for cfg.Dir.
func NewRenderer(cfg config.ChartConfig, logger *zap.Logger) *Renderer {
	return &Renderer{
		cfg:    cfg,
		logger: logger.Named("charts"),
	}
}

// Histogram draws the distribution of all ratings.
func (r *Renderer) Histogram(values []float64) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("%w: no ratings to plot", apperrors.ErrEmptyDataset)
	}

	p := plot.New()
	p.Title.Text = "Rating distribution"
	p.X.Label.Text = "Rating"
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(values), r.cfg.HistogramBins)
	if err != nil {
		return "", fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(h)

	return r.save(p, HistogramFile)
}

// BoxPlots draws one horizontal box per genre, top to bottom in the given order.
// Genres without ratings keep their slot but get no box.
func (r *Renderer) BoxPlots(names []genres.Genre, subsets [][]float64) (string, error) {
	if len(names) != len(subsets) {
		return "", fmt.Errorf("box plots: %d names for %d subsets", len(names), len(subsets))
	}

	p := plot.New()
	p.Title.Text = "Ratings by genre"
	p.X.Label.Text = "Rating"

	width := vg.Points(12)
	labels := make([]string, len(names))
	for i, name := range names {
		// Nominal axes count from the bottom; place the first genre on top.
		loc := float64(len(names) - 1 - i)
		labels[len(names)-1-i] = string(name)

		if len(subsets[i]) == 0 {
			r.logger.Debug("Skipping empty genre box", zap.String("genre", string(name)))
			continue
		}
		b, err := plotter.NewBoxPlot(width, loc, plotter.Values(subsets[i]))
		if err != nil {
			return "", fmt.Errorf("failed to build box plot for %s: %w", name, err)
		}
		b.Horizontal = true
		p.Add(b)
	}
	p.NominalY(labels...)

	return r.save(p, BoxPlotFile)
}

// TrendLines draws one line per genre column of table. Missing cells are skipped, not zero-filled.
func (r *Renderer) TrendLines(table models.YearTable) (string, error) {
	p := plot.New()
	p.Title.Text = "Mean rating by year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Mean rating"
	p.Legend.Top = true

	var lines []interface{}
	for j, g := range table.Genres {
		points := table.Column(j)
		if len(points) == 0 {
			r.logger.Debug("Genre has no points in range", zap.String("genre", string(g)))
			continue
		}
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = float64(pt.Year)
			xys[i].Y = pt.Mean
		}
		lines = append(lines, string(g), xys)
	}

	if len(lines) > 0 {
		if err := plotutil.AddLinePoints(p, lines...); err != nil {
			return "", fmt.Errorf("failed to build trend lines: %w", err)
		}
	}

	return r.save(p, TrendFile)
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	if err := os.MkdirAll(r.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	path := filepath.Join(r.cfg.Dir, name)
	width := vg.Length(r.cfg.WidthInches) * vg.Inch
	height := vg.Length(r.cfg.HeightInches) * vg.Inch
	if err := p.Save(width, height, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}

	r.logger.Info("Chart written", zap.String("path", path))
	return path, nil
}
