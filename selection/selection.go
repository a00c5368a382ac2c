/*
 * selection.go, part of gblearn.
 *
 * Copyright 2019 The gblearn developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package selection holds the algorithms that pick, out of a full
//timestep, the atoms that appear to lie on a grain boundary. Every
//selector takes the positions, a per-atom scalar field and the atom
//types, and returns indices into the timestep's atom arrays.
package selection

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//Extent returns the lo and hi bounds of the positions along the given
//axis (0, 1 or 2). Both returns are zero for an empty position set.
func Extent(xyz *mat.Dense, axis int) (lo, hi float64) {
	if xyz == nil {
		return 0, 0
	}
	col := mat.Col(nil, axis, xyz)
	if len(col) == 0 {
		return 0, 0
	}
	return floats.Min(col), floats.Max(col)
}

//Median selects the atoms whose field value lies above the median of the
//field by more than cut times the interquartile range. For a
//centro-symmetry-like field, where bulk atoms cluster near a common low
//value, that keeps the structurally disordered atoms of the boundary.
//opts may carry the cut multiplier; it defaults to 1.
func Median(xyz *mat.Dense, field []float64, types []int, opts ...float64) []int {
	cut := 1.0
	if len(opts) > 0 {
		cut = opts[0]
	}
	if len(field) == 0 {
		return nil
	}
	sorted := make([]float64, len(field))
	copy(sorted, field)
	sort.Float64s(sorted)
	med := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)
	threshold := med + cut*iqr
	var sel []int
	for i, v := range field {
		if v > threshold {
			sel = append(sel, i)
		}
	}
	return sel
}

//CNAMax selects the atoms whose common-neighbor-analysis code differs
//from the modal code of the field. In a bicrystal the modal code is the
//bulk lattice signature, so everything else belongs to the boundary (or
//to other defects). The field values are compared exactly; CNA codes
//are small integers even when stored as floats.
func CNAMax(xyz *mat.Dense, field []float64, types []int, opts ...float64) []int {
	if len(field) == 0 {
		return nil
	}
	counts := make(map[float64]int)
	for _, v := range field {
		counts[v]++
	}
	modal := field[0]
	for v, n := range counts {
		if n > counts[modal] {
			modal = v
		}
	}
	var sel []int
	for i, v := range field {
		if v != modal {
			sel = append(sel, i)
		}
	}
	return sel
}
