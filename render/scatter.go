package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/quantlab/dataset"
	"github.com/katalvlaran/quantlab/pca"
)

// ErrNotTwoDimensional indicates a fit over anything but exactly two
// features; the scatter is a 2-D artifact by definition.
var ErrNotTwoDimensional = errors.New("render: scatter needs exactly two features")

// Options tunes the rendered artifact. The zero value is usable: the title
// falls back to the dataset name.
type Options struct {
	Title string
}

// Scatter builds the centered-cloud-plus-principal-axes plot for a 2-D fit.
// The observations are drawn centered (mean at the origin) so the component
// vectors radiate from the middle of the cloud.
func Scatter(ds *dataset.Dataset, res *pca.Result, opts Options) (*plot.Plot, error) {
	if ds == nil || res == nil {
		return nil, fmt.Errorf("render: nil dataset or result: %w", ErrNotTwoDimensional)
	}
	if len(res.Means) != 2 || len(ds.Features) != 2 {
		return nil, ErrNotTwoDimensional
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = ds.Name
	}
	p.X.Label.Text = ds.Features[0] + " (centered)"
	p.Y.Label.Text = ds.Features[1] + " (centered)"
	p.Add(plotter.NewGrid())

	// Centered observations.
	rows := res.Centered.Rows()
	pts := make(plotter.XYs, rows)
	for i := 0; i < rows; i++ {
		row := res.Centered.Row(i)
		pts[i].X, pts[i].Y = row[0], row[1]
	}
	cloud, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("render: scatter: %w", err)
	}
	cloud.GlyphStyle.Radius = vg.Points(3)
	p.Add(cloud)
	p.Legend.Add(ds.Name, cloud)

	// Principal axes from the origin, scaled by one standard deviation.
	for k := 0; k < res.Components.Cols(); k++ {
		axis := res.Components.Col(k)
		scale := math.Sqrt(math.Max(res.Eigenvalues[k], 0))
		line, lineErr := plotter.NewLine(plotter.XYs{
			{X: 0, Y: 0},
			{X: scale * axis[0], Y: scale * axis[1]},
		})
		if lineErr != nil {
			return nil, fmt.Errorf("render: axis %d: %w", k+1, lineErr)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotutil.Color(k)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("PC%d (λ=%.4f)", k+1, res.Eigenvalues[k]), line)
	}
	p.Legend.Top = true

	return p, nil
}

// SavePNG renders the plot to a square PNG at path.
func SavePNG(p *plot.Plot, size vg.Length, path string) error {
	if size <= 0 {
		size = 6 * vg.Inch
	}
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
