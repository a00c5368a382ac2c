/*
 * lammps.go, part of gblearn.
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

//Package lammps reads and writes LAMMPS text dump files, which hold one or
//more sequential timesteps, each with a simulation box and a table of
//per-atom quantities. A whole file is read through Open into a Dump; a
//single timestep is read through ReadStep. Both share the same timestep
//parser, driven against one Cursor.
package lammps

import (
	"io"
	"log"
	"strconv"
	"strings"

	gblearn "github.com/leilakhalili87/gblearn"
	"github.com/leilakhalili87/gblearn/selection"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Timestep is a single snapshot from a dump file: atom ids, types and
//positions, the simulation box, per-axis periodicity, and any extra
//per-atom columns declared by the file's ATOMS header, in declaration
//order.
type Timestep struct {
	FileName string
	Index    int
	IDs      []int
	Types    []int
	XYZ      *mat.Dense //n x 3 positions; nil when the timestep has no atoms
	Box      [3][2]float64
	Periodic [3]bool
	Extras   []string //extra column names, in the order declared by the file
	Extra    map[string]*Column
}

//Len returns the number of atoms in the timestep.
func (t *Timestep) Len() int {
	return len(t.IDs)
}

//Field returns the values of the named extra column as floats, whatever
//the column's kind.
func (t *Timestep) Field(name string) ([]float64, error) {
	col, ok := t.Extra[name]
	if !ok {
		return nil, Error{NoSuchField + ": " + name, gblearn.MissingParameter, t.FileName, 0, []string{"Field"}, true}
	}
	f := make([]float64, col.Len())
	for i := range f {
		f[i] = col.Float(i)
	}
	return f, nil
}

//Equal returns true if both timesteps hold the same atoms, box and
//periodicity, with positions, box bounds and float columns compared to
//within tol. The step indices are deliberately not compared, so
//renumbered trajectories can still compare equal content-wise.
func (t *Timestep) Equal(o *Timestep, tol float64) bool {
	if o == nil || t.Len() != o.Len() {
		return false
	}
	for i, id := range t.IDs {
		if id != o.IDs[i] || t.Types[i] != o.Types[i] {
			return false
		}
	}
	if t.XYZ != nil && !mat.EqualApprox(t.XYZ, o.XYZ, tol) {
		return false
	}
	for i := 0; i < 3; i++ {
		if t.Periodic[i] != o.Periodic[i] {
			return false
		}
		for j := 0; j < 2; j++ {
			if diff := t.Box[i][j] - o.Box[i][j]; diff > tol || diff < -tol {
				return false
			}
		}
	}
	if len(t.Extras) != len(o.Extras) {
		return false
	}
	for i, name := range t.Extras {
		if name != o.Extras[i] {
			return false
		}
		a, b := t.Extra[name], o.Extra[name]
		if a.Kind != b.Kind || a.Len() != b.Len() {
			return false
		}
		if a.Kind == ColInt {
			for j, v := range a.Ints {
				if v != b.Ints[j] {
					return false
				}
			}
		} else if !floats.EqualApprox(a.Floats, b.Floats, tol) {
			return false
		}
	}
	return true
}

//GBIndices returns the indices of the atoms that appear to lie on the
//grain boundary, selected by the named method over the named extra
//column. The method must be one of "median" or "cna"; any other name is
//an UnknownMethod error rather than an empty selection. opts are passed
//through to the selection function.
func (t *Timestep) GBIndices(method, pattr string, opts ...float64) ([]int, error) {
	field, err := t.Field(pattr)
	if err != nil {
		return nil, errDecorate(err, "GBIndices")
	}
	switch method {
	case "median":
		return selection.Median(t.XYZ, field, t.Types, opts...), nil
	case "cna":
		return selection.CNAMax(t.XYZ, field, t.Types, opts...), nil
	}
	return nil, Error{NoSuchMethod + ": '" + method + "'", gblearn.UnknownMethod, t.FileName, 0, []string{"GBIndices"}, true}
}

//stepSeek carries the skip policy of one timestep read. With hasTarget,
//the parser discards timesteps below target and stops at the first one
//above it: on a shared cursor the overshooting header is pushed back so
//the next read starts exactly there; on an exclusive cursor the read
//just aborts, since nobody will come back for the remaining bytes.
type stepSeek struct {
	target    int
	hasTarget bool
	shared    bool
	filter    map[int]bool //nil means no filtering
}

//readStep consumes one timestep from the cursor. It returns a
//gblearn.LastStepError when the stream has no further (complete)
//timesteps; that is the normal termination of a scan.
func readStep(c *Cursor, seek stepSeek) (*Timestep, error) {
	for {
		header, err := c.ReadLine()
		if err == io.EOF {
			return nil, newLastStepError(c.Name(), "readStep")
		}
		if err != nil {
			return nil, errDecorate(err, "readStep")
		}
		if !strings.Contains(header, "ITEM: TIMESTEP") {
			//junk between records is tolerated, like any other
			//unrecognized line.
			continue
		}
		valueLine, err := c.ReadLine()
		if err == io.EOF {
			return nil, newLastStepError(c.Name(), "readStep")
		}
		if err != nil {
			return nil, errDecorate(err, "readStep")
		}
		index, err := intLine(valueLine, c)
		if err != nil {
			return nil, errDecorate(err, "readStep")
		}
		skip := false
		switch {
		case seek.filter != nil && !seek.filter[index]:
			skip = true
		case seek.hasTarget && index > seek.target:
			//the target can not be reached from here
			if seek.shared {
				c.PushBack(header, valueLine)
			}
			return nil, newLastStepError(c.Name(), "readStep")
		case seek.hasTarget && index < seek.target:
			skip = true
		}
		t := &Timestep{FileName: c.Name(), Index: index, Extra: make(map[string]*Column)}
		complete, err := t.readBody(c)
		if err != nil {
			return nil, errDecorate(err, "readStep")
		}
		if !complete {
			return nil, newLastStepError(c.Name(), "readStep")
		}
		if skip {
			//sections were tokenized to keep the cursor aligned,
			//but the values are dropped.
			continue
		}
		return t, nil
	}
}

//readBody consumes the NUMBER OF ATOMS, BOX BOUNDS and ATOMS sections of
//one timestep. It returns false if the stream ran out before the record
//was structurally complete.
func (t *Timestep) readBody(c *Cursor) (bool, error) {
	var gotCount, gotBox, gotAtoms bool
	declared := -1
	var xyz []float64
	for !gotAtoms {
		line, err := c.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
		switch {
		case strings.Contains(line, "ITEM: TIMESTEP"):
			//the record ended early; leave the header for the next read
			c.PushBack(line)
			return false, nil
		case strings.Contains(line, "ITEM: NUMBER OF ATOMS"):
			vl, err := c.ReadLine()
			if err == io.EOF {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			if declared, err = intLine(vl, c); err != nil {
				return false, err
			}
			gotCount = true
		case strings.Contains(line, "ITEM: BOX BOUNDS"):
			t.readPeriodic(line)
			for i := 0; i < 3; i++ {
				bl, err := c.ReadLine()
				if err == io.EOF {
					return false, nil
				}
				if err != nil {
					return false, err
				}
				if t.Box[i][0], t.Box[i][1], err = floatPair(bl, c); err != nil {
					return false, err
				}
			}
			gotBox = true
		case strings.Contains(line, "ITEM: ATOMS"):
			if err := t.readAtoms(c, line, &xyz); err != nil {
				return false, err
			}
			gotAtoms = true
		}
	}
	if !gotCount || !gotBox {
		return false, nil
	}
	if n := t.Len(); n > 0 {
		t.XYZ = mat.NewDense(n, 3, xyz)
	}
	if declared != t.Len() {
		log.Printf("File %s did not have as many atoms (%d/%d) as specified.", t.FileName, t.Len(), declared)
	}
	return true, nil
}

//readPeriodic derives the per-axis periodicity flags from the tokens
//following the BOX BOUNDS keyword ("pp" marks a periodic axis). With no
//tokens, all three axes default to non-periodic.
func (t *Timestep) readPeriodic(header string) {
	rest := header[strings.Index(header, "BOX BOUNDS")+len("BOX BOUNDS"):]
	toks := strings.Fields(rest)
	for i := 0; i < 3; i++ {
		t.Periodic[i] = i < len(toks) && toks[i] == "pp"
	}
}

//readAtoms consumes the ATOMS header and the atom lines that follow it,
//stopping, without consuming it, at the next section header or at the
//end of the stream. The header's first five names are the fixed columns
//id, type, x, y, z; the remaining names declare the extra columns.
func (t *Timestep) readAtoms(c *Cursor, header string, xyz *[]float64) error {
	names := strings.Fields(header)[2:]
	if len(names) > 5 {
		t.Extras = append(t.Extras, names[5:]...)
		for _, name := range t.Extras {
			t.Extra[name] = new(Column)
		}
	}
	for {
		line, err := c.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.Contains(line, "ITEM:") {
			c.PushBack(line)
			return nil
		}
		vals := strings.Fields(line)
		if len(vals) == 0 {
			continue
		}
		if len(vals) < 5 {
			return Error{WrongFormat + ": atom line needs at least five fields", gblearn.MalformedRecord, c.Name(), c.Line(), nil, true}
		}
		id, err := strconv.Atoi(vals[0])
		if err != nil {
			return badToken(vals[0], "atom id", c)
		}
		typ, err := strconv.Atoi(vals[1])
		if err != nil {
			return badToken(vals[1], "atom type", c)
		}
		t.IDs = append(t.IDs, id)
		t.Types = append(t.Types, typ)
		for i := 2; i < 5; i++ {
			v, err := strconv.ParseFloat(vals[i], 64)
			if err != nil {
				return badToken(vals[i], "coordinate", c)
			}
			*xyz = append(*xyz, v)
		}
		for i, tok := range vals[5:] {
			if i >= len(t.Extras) {
				break
			}
			if err := t.Extra[t.Extras[i]].append(tok, c); err != nil {
				return err
			}
		}
	}
}

//ReadStep reads the timestep with the given index from the named file,
//using a cursor of its own. Timesteps below target are skipped; if a
//timestep above target is found first, the target is unreachable and a
//gblearn.LastStepError is returned. An optional stepfilter restricts
//parsing to the listed indices, as in Open.
func ReadStep(name string, target int, stepfilter ...int) (*Timestep, error) {
	c, err := NewCursor(name)
	if err != nil {
		return nil, errDecorate(err, "ReadStep")
	}
	defer c.Close()
	t, err := readStep(c, stepSeek{target: target, hasTarget: true, shared: false, filter: filterSet(stepfilter)})
	if err != nil {
		if _, ok := err.(gblearn.LastStepError); ok {
			return nil, err
		}
		return nil, errDecorate(err, "ReadStep")
	}
	return t, nil
}

//Dump is an ordered collection of the timesteps read from one dump file,
//keyed by their own step indices, in the order the file declared them.
type Dump struct {
	FileName string
	order    []int
	steps    map[int]*Timestep
}

//Open reads every timestep of the named dump file through one shared
//cursor and returns the collection. With a stepfilter, only the listed
//step indices are kept; the others are consumed, to keep the cursor
//aligned, and dropped.
func Open(name string, stepfilter ...int) (*Dump, error) {
	c, err := NewCursor(name)
	if err != nil {
		return nil, errDecorate(err, "Open")
	}
	defer c.Close()
	d := &Dump{FileName: name, steps: make(map[int]*Timestep)}
	seek := stepSeek{shared: true, filter: filterSet(stepfilter)}
	for {
		t, err := readStep(c, seek)
		if err != nil {
			if _, ok := err.(gblearn.LastStepError); ok {
				break
			}
			return nil, errDecorate(err, "Open")
		}
		d.Append(t)
	}
	return d, nil
}

func filterSet(stepfilter []int) map[int]bool {
	if len(stepfilter) == 0 {
		return nil
	}
	f := make(map[int]bool, len(stepfilter))
	for _, v := range stepfilter {
		f[v] = true
	}
	return f
}

//Append adds a timestep parsed elsewhere to the collection, keyed by its
//own index. This is the only mutation a Dump supports after Open; a step
//with an already-present index replaces the old one without disturbing
//the iteration order.
func (d *Dump) Append(t *Timestep) {
	if _, seen := d.steps[t.Index]; !seen {
		d.order = append(d.order, t.Index)
	}
	d.steps[t.Index] = t
}

//Len returns the number of timesteps in the collection.
func (d *Dump) Len() int {
	return len(d.order)
}

//Contains returns whether a timestep with the given index was read.
func (d *Dump) Contains(index int) bool {
	_, ok := d.steps[index]
	return ok
}

//Step returns the timestep with the given index, or nil if the dump has
//no such step.
func (d *Dump) Step(index int) *Timestep {
	return d.steps[index]
}

//Indices returns the step indices in the order they appeared in the file.
func (d *Dump) Indices() []int {
	out := make([]int, len(d.order))
	copy(out, d.order)
	return out
}

//Steps returns the timesteps in the order they appeared in the file.
func (d *Dump) Steps() []*Timestep {
	out := make([]*Timestep, 0, len(d.order))
	for _, i := range d.order {
		out = append(out, d.steps[i])
	}
	return out
}

//Equal compares both collections step by step in insertion order, with
//Timestep.Equal and the given tolerance. Step indices are not compared,
//only the zipped values, so trajectories with renumbered steps can still
//compare equal.
func (d *Dump) Equal(o *Dump, tol float64) bool {
	if o == nil || d.Len() != o.Len() {
		return false
	}
	os := o.Steps()
	for i, t := range d.Steps() {
		if !t.Equal(os[i], tol) {
			return false
		}
	}
	return true
}
