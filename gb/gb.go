/*
 * gb.go, part of gblearn.
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

//Package gb builds grain-boundary structures from the atoms a selection
//method picked out of a full timestep.
package gb

import (
	"fmt"

	gblearn "github.com/leilakhalili87/gblearn"
	"github.com/leilakhalili87/gblearn/lammps"
	"gonum.org/v1/gonum/mat"
)

//GrainBoundary holds the subset of a timestep's atoms that lie on the
//boundary, with the originating box and the element species needed by
//downstream descriptor code.
type GrainBoundary struct {
	XYZ    *mat.Dense //n x 3 positions; nil when the selection is empty
	Types  []int
	Box    [3][2]float64
	Z      int //atomic number of the element species
	Extras map[string][]float64
}

//Len returns the number of atoms in the boundary.
func (g *GrainBoundary) Len() int {
	return len(g.Types)
}

//Error is the error type for grain-boundary construction. It fulfills
//gblearn.Error and gblearn.KindError.
type Error struct {
	message string
	kind    string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("grain boundary error: %s", err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Kind returns the broad failure kind of the error.
func (err Error) Kind() string { return err.kind }

//FromTimestep selects the boundary atoms of t with the named method over
//the named extra column (see lammps.Timestep.GBIndices) and builds a
//GrainBoundary from them. z, the atomic number of the element species,
//is required and can not be inferred from the dump file; a zero or
//negative z is a MissingParameter failure. With withExtras, the selected
//rows of every extra column are carried along as floats. opts are passed
//through to the selection function.
func FromTimestep(t *lammps.Timestep, z int, method, pattr string, withExtras bool, opts ...float64) (*GrainBoundary, error) {
	if z <= 0 {
		return nil, Error{"z is a required parameter for constructing a GrainBoundary", gblearn.MissingParameter, []string{"FromTimestep"}}
	}
	ids, err := t.GBIndices(method, pattr, opts...)
	if err != nil {
		return nil, err
	}
	g := &GrainBoundary{Box: t.Box, Z: z}
	if len(ids) > 0 {
		xyz := make([]float64, 0, 3*len(ids))
		g.Types = make([]int, 0, len(ids))
		for _, i := range ids {
			xyz = append(xyz, t.XYZ.At(i, 0), t.XYZ.At(i, 1), t.XYZ.At(i, 2))
			g.Types = append(g.Types, t.Types[i])
		}
		g.XYZ = mat.NewDense(len(ids), 3, xyz)
	}
	if withExtras {
		g.Extras = make(map[string][]float64, len(t.Extras))
		for _, name := range t.Extras {
			full, err := t.Field(name)
			if err != nil {
				return nil, err
			}
			sub := make([]float64, 0, len(ids))
			for _, i := range ids {
				sub = append(sub, full[i])
			}
			g.Extras[name] = sub
		}
	}
	return g, nil
}
