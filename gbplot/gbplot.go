//Package gbplot draws quick diagnostic plots of per-atom scalar fields,
//typically to eyeball a centro-symmetry distribution before picking a
//selection threshold.
package gbplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//FieldHistogram plots a histogram of the field values with the given
//number of bins and saves it as plotname.png.
func FieldHistogram(field []float64, bins int, title, plotname string) error {
	if len(field) == 0 {
		return fmt.Errorf("gbplot.FieldHistogram: given empty field data")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Field value"
	p.Y.Label.Text = "Atoms"
	h, err := plotter.NewHist(plotter.Values(field), bins)
	if err != nil {
		return err
	}
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
