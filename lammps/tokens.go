package lammps

import (
	"strconv"
	"strings"

	gblearn "github.com/leilakhalili87/gblearn"
)

//Kind of the values held by an extra per-atom column. It is decided once,
//when the first value of the column is seen, and fixed for the lifetime
//of the column; the writer formats from this tag instead of inspecting
//values at runtime.
type ColKind int

const (
	ColInt ColKind = iota
	ColFloat
)

//Column is one dynamically discovered per-atom quantity. Only the slice
//matching Kind is populated.
type Column struct {
	Kind   ColKind
	Ints   []int
	Floats []float64
}

//Len returns the number of atoms with a value in the column.
func (col *Column) Len() int {
	if col.Kind == ColInt {
		return len(col.Ints)
	}
	return len(col.Floats)
}

//Float returns the i-th value of the column as a float64, whatever
//its kind.
func (col *Column) Float(i int) float64 {
	if col.Kind == ColInt {
		return float64(col.Ints[i])
	}
	return col.Floats[i]
}

//append parses one raw token into the column. The first token ever seen
//decides the kind; after that, a token that does not parse as the fixed
//kind is a malformed record.
func (col *Column) append(tok string, c *Cursor) error {
	if col.Len() == 0 {
		if _, err := strconv.Atoi(tok); err == nil {
			col.Kind = ColInt
		} else {
			col.Kind = ColFloat
		}
	}
	if col.Kind == ColInt {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return badToken(tok, "integer column value", c)
		}
		col.Ints = append(col.Ints, v)
		return nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return badToken(tok, "float column value", c)
	}
	col.Floats = append(col.Floats, v)
	return nil
}

func badToken(tok, want string, c *Cursor) error {
	return Error{WrongFormat + ": can't parse '" + tok + "' as " + want, gblearn.MalformedRecord, c.Name(), c.Line(), nil, true}
}

//intLine casts a whole line to a single integer (the TIMESTEP and
//NUMBER OF ATOMS sections).
func intLine(line string, c *Cursor) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, badToken(strings.TrimSpace(line), "integer", c)
	}
	return v, nil
}

//floatPair casts a line of the BOX BOUNDS section to its (lo, hi) floats.
func floatPair(line string, c *Cursor) (lo, hi float64, err error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return 0, 0, Error{WrongFormat + ": box bounds line needs two fields", gblearn.MalformedRecord, c.Name(), c.Line(), nil, true}
	}
	if lo, err = strconv.ParseFloat(f[0], 64); err != nil {
		return 0, 0, badToken(f[0], "float", c)
	}
	if hi, err = strconv.ParseFloat(f[1], 64); err != nil {
		return 0, 0, badToken(f[1], "float", c)
	}
	return lo, hi, nil
}
