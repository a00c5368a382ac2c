package lammps

import (
	"fmt"

	gblearn "github.com/leilakhalili87/gblearn"
)

//errDecorate is a helper function that asserts that the error
//implements gblearn.Error and decorates the error with the caller's name
//before returning it. If used with a non-gblearn.Error error, it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(gblearn.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for LAMMPS dump errors. It fulfills
//gblearn.Error, gblearn.DumpError and gblearn.KindError.
type Error struct {
	message  string
	kind     string //one of the gblearn kind constants
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based line where consumption failed, or 0 if not line-bound
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("lammps dump file %s, line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("lammps dump file %s error: %s", err.filename, err.message)
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

//Kind returns the broad failure kind of the error, one of the
//gblearn kind constants.
func (err Error) Kind() string { return err.kind }

//FileName returns the file to which the failing dump was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "lammps") associated to the error
func (err Error) Format() string { return "lammps" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen   = "Unable to open file"
	UnableToWrite  = "Unable to write file"
	WrongFormat    = "Wrong format in the dump file or timestep"
	NoSuchField    = "No such per-atom field in this timestep"
	NoSuchMethod   = "Unknown boundary selection method"
	MissingSpecies = "An element species Z is required to build a grain boundary"
	EOF            = "EOF"
)

//lastStepError implements gblearn.LastStepError. It signals that the dump
//has no further timesteps, which is the normal termination of a scan, not
//a failure.
type lastStepError struct {
	deco     []string
	fileName string
}

//lastStepError does nothing
func (E lastStepError) NormalLastStepTermination() {}

func (E lastStepError) FileName() string { return E.fileName }

func (E lastStepError) Error() string { return "EOF" }

func (E lastStepError) Critical() bool { return false }

func (E lastStepError) Format() string { return "lammps" }

func (E lastStepError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newLastStepError(filename string, caller string) *lastStepError {
	e := new(lastStepError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
