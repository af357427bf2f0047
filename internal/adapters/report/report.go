// Package report builds the yearly summary artifact: a language
// distribution pie and a tasks-per-month bar, composed into one PNG under
// the year's Visualizations directory.
package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/averost/focustick/internal/adapters/storage"
)

const chartWidth, chartHeight = 640, 480

// Generator renders aggregate charts from the persisted record tree.
type Generator struct {
	store *storage.Store
}

// New creates a generator reading from the given store.
func New(store *storage.Store) *Generator {
	return &Generator{store: store}
}

// ArtifactPath returns where the year's visualization is written.
func (g *Generator) ArtifactPath(year int) string {
	return filepath.Join(g.store.YearDir(year), "Visualizations",
		fmt.Sprintf("TaskVisualization_%d.png", year))
}

// Generate reads every record for the year and writes the summary PNG.
// A year with no directory or no readable records is a silent no-op.
func (g *Generator) Generate(year int) error {
	if !g.store.YearExists(year) {
		return nil
	}

	records, err := g.store.ReadYear(year)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	pie, err := renderLanguagePie(records, year)
	if err != nil {
		return fmt.Errorf("failed to render language chart: %w", err)
	}
	bar, err := renderMonthlyBar(records, year)
	if err != nil {
		return fmt.Errorf("failed to render monthly chart: %w", err)
	}

	combined, err := composeSideBySide(pie, bar)
	if err != nil {
		return fmt.Errorf("failed to compose charts: %w", err)
	}

	path := g.ArtifactPath(year)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create visualization directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create visualization file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, combined); err != nil {
		return fmt.Errorf("failed to encode visualization: %w", err)
	}
	return nil
}

func renderLanguagePie(records []storage.Record, year int) (image.Image, error) {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		lang := string(r.Language)
		if _, seen := counts[lang]; !seen {
			order = append(order, lang)
		}
		counts[lang]++
	}

	values := make([]chart.Value, 0, len(order))
	for _, lang := range order {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", lang, counts[lang]),
			Value: float64(counts[lang]),
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("Language Distribution %d", year),
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	return renderToImage(pie.Render)
}

func renderMonthlyBar(records []storage.Record, year int) (image.Image, error) {
	counts := make(map[time.Month]int)
	for _, r := range records {
		counts[r.Date.Month()]++
	}

	bars := make([]chart.Value, 0, 12)
	for m := time.January; m <= time.December; m++ {
		bars = append(bars, chart.Value{
			Label: m.String()[:3],
			Value: float64(counts[m]),
		})
	}

	bar := chart.BarChart{
		Title:    fmt.Sprintf("Tasks per Month %d", year),
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 30,
		Bars:     bars,
	}
	return renderToImage(bar.Render)
}

func renderToImage(render func(chart.RendererProvider, io.Writer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// composeSideBySide places the two charts next to each other on a white
// canvas, mirroring the original two-panel figure.
func composeSideBySide(left, right image.Image) (image.Image, error) {
	lb, rb := left.Bounds(), right.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}
	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, lb, left, lb.Min, draw.Over)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Over)
	return canvas, nil
}
