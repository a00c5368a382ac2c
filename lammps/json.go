package lammps

import (
	json "github.com/goccy/go-json"
	gblearn "github.com/leilakhalili87/gblearn"
)

//StepSummary is a ready-to-serialize container for the metadata of one
//timestep, for calling programs that want to inspect a trajectory
//without carrying the atom table around.
type StepSummary struct {
	FileName string
	Index    int
	NAtoms   int
	Box      [3][2]float64
	Periodic [3]bool
	Extras   []string
}

//Summary returns the serializable metadata of the timestep.
func (t *Timestep) Summary() *StepSummary {
	return &StepSummary{
		FileName: t.FileName,
		Index:    t.Index,
		NAtoms:   t.Len(),
		Box:      t.Box,
		Periodic: t.Periodic,
		Extras:   t.Extras,
	}
}

//MarshalSummary serializes the timestep's metadata.
func (t *Timestep) MarshalSummary() ([]byte, error) {
	b, err := json.Marshal(t.Summary())
	if err != nil {
		return nil, Error{err.Error(), gblearn.IOFailure, t.FileName, 0, []string{"MarshalSummary"}, true}
	}
	return b, nil
}

//MarshalSummary serializes the metadata of every timestep in the
//collection, in insertion order.
func (d *Dump) MarshalSummary() ([]byte, error) {
	steps := d.Steps()
	sums := make([]*StepSummary, len(steps))
	for i, t := range steps {
		sums[i] = t.Summary()
	}
	b, err := json.Marshal(sums)
	if err != nil {
		return nil, Error{err.Error(), gblearn.IOFailure, d.FileName, 0, []string{"MarshalSummary"}, true}
	}
	return b, nil
}
