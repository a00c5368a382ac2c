package selection

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestExtent(Te *testing.T) {
	xyz := mat.NewDense(3, 3, []float64{
		0.5, 1.25, -1.0,
		2.0, 3.5, 0.75,
		4.125, 0.25, 2.5,
	})
	lo, hi := Extent(xyz, 0)
	if lo != 0.5 || hi != 4.125 {
		Te.Errorf("x extent: %v %v", lo, hi)
	}
	lo, hi = Extent(xyz, 2)
	if lo != -1.0 || hi != 2.5 {
		Te.Errorf("z extent: %v %v", lo, hi)
	}
	if lo, hi = Extent(nil, 0); lo != 0 || hi != 0 {
		Te.Errorf("nil extent: %v %v", lo, hi)
	}
}

func TestMedian(Te *testing.T) {
	field := []float64{0.0, 1.0, 2.0, 3.0, 4.0, 5.0, 10.0, 12.0}
	xyz := mat.NewDense(len(field), 3, make([]float64, 3*len(field)))
	types := make([]int, len(field))
	sel := Median(xyz, field, types)
	fmt.Println("median selection:", sel)
	if len(sel) != 2 || sel[0] != 6 || sel[1] != 7 {
		Te.Errorf("median selection: %v", sel)
	}
	//a larger cut multiplier can only shrink the selection
	if wide := Median(xyz, field, types, 1e6); len(wide) != 0 {
		Te.Errorf("selection with huge cut: %v", wide)
	}
	if sel = Median(xyz, nil, types); sel != nil {
		Te.Errorf("empty field selection: %v", sel)
	}
}

func TestCNAMax(Te *testing.T) {
	field := []float64{1, 1, 1, 5, 1, 3}
	xyz := mat.NewDense(len(field), 3, make([]float64, 3*len(field)))
	types := make([]int, len(field))
	sel := CNAMax(xyz, field, types)
	fmt.Println("cna selection:", sel)
	if len(sel) != 2 || sel[0] != 3 || sel[1] != 5 {
		Te.Errorf("cna selection: %v", sel)
	}
}
