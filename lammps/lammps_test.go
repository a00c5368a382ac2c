package lammps

import (
	"fmt"
	"strings"
	"testing"

	gblearn "github.com/leilakhalili87/gblearn"
)

const tol = 1e-8

//Tests a plain sequential scan of a multi-timestep file.
func TestDumpRead(Te *testing.T) {
	fmt.Println("Dump read test!")
	d, err := Open("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	if d.Len() != 3 {
		Te.Errorf("expected 3 timesteps, got %d", d.Len())
	}
	for i, want := range []int{3, 4, 5} {
		if !d.Contains(i) {
			Te.Fatalf("timestep %d missing", i)
		}
		if got := d.Step(i).Len(); got != want {
			Te.Errorf("timestep %d: expected %d atoms, got %d", i, want, got)
		}
	}
	order := d.Indices()
	for i, v := range order {
		if v != i {
			Te.Errorf("unexpected insertion order %v", order)
			break
		}
	}
	t1 := d.Step(1)
	if t1.Periodic != [3]bool{true, true, false} {
		Te.Errorf("periodic flags: %v", t1.Periodic)
	}
	if len(t1.Extras) != 2 || t1.Extras[0] != "c_csd" || t1.Extras[1] != "c_cna" {
		Te.Errorf("extra columns: %v", t1.Extras)
	}
	if t1.Extra["c_csd"].Kind != ColFloat || t1.Extra["c_cna"].Kind != ColInt {
		Te.Error("extra column kinds not discovered from first values")
	}
	if t1.Extra["c_cna"].Ints[3] != 5 {
		Te.Errorf("c_cna values: %v", t1.Extra["c_cna"].Ints)
	}
	if x := t1.XYZ.At(3, 0); x != 6.5 {
		Te.Errorf("atom 3 x: %v", x)
	}
	if t1.Box[2][0] != -5.0 || t1.Box[2][1] != 5.0 {
		Te.Errorf("z box bounds: %v", t1.Box[2])
	}
	fmt.Println("Dump read!", d.Indices())
}

//Tests that an allow-list keeps only the listed indices while the rest
//of the file is still consumed in order.
func TestStepFilter(Te *testing.T) {
	d, err := Open("../test/lammps.dump", 0, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if d.Len() != 2 {
		Te.Errorf("expected 2 timesteps after filtering, got %d", d.Len())
	}
	if !d.Contains(0) || !d.Contains(2) || d.Contains(1) {
		Te.Errorf("filtered indices: %v", d.Indices())
	}
	if d.Step(2).Len() != 5 {
		Te.Errorf("filtered scan misaligned: step 2 has %d atoms", d.Step(2).Len())
	}
}

//Tests that seeking an index the file can not provide yields the
//normal-termination sentinel, not a failure.
func TestForwardSeekSentinel(Te *testing.T) {
	//all indices below the target: the scan runs off the end
	if _, err := ReadStep("../test/lammps.dump", 5); err == nil {
		Te.Error("expected a sentinel for an absent target")
	} else if _, ok := err.(gblearn.LastStepError); !ok {
		Te.Errorf("expected LastStepError, got %v", err)
	}
	//first index already above the target: unreachable, abort at once
	if _, err := ReadStep("../test/mismatch.dump", 5); err == nil {
		Te.Error("expected a sentinel for an overshot target")
	} else if _, ok := err.(gblearn.LastStepError); !ok {
		Te.Errorf("expected LastStepError, got %v", err)
	}
}

func TestTargetRead(Te *testing.T) {
	t, err := ReadStep("../test/lammps.dump", 1)
	if err != nil {
		Te.Fatal(err)
	}
	if t.Index != 1 || t.Len() != 4 {
		Te.Errorf("target read got index %d with %d atoms", t.Index, t.Len())
	}
}

//Tests the shared-cursor lookahead protocol: overshooting a target must
//push the header back so the following read starts exactly there.
func TestSharedRewind(Te *testing.T) {
	c, err := NewCursor("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	defer c.Close()
	t, err := readStep(c, stepSeek{target: 2, hasTarget: true, shared: true})
	if err != nil {
		Te.Fatal(err)
	}
	if t.Index != 2 {
		Te.Fatalf("expected step 2, got %d", t.Index)
	}
	//rewind: a fresh cursor stopped by an overshoot must leave the
	//overshooting record intact for the next call
	c2, err := NewCursor("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	defer c2.Close()
	//step 0 is consumed and discarded; step 1 overshoots and is pushed back
	if _, err := readStep(c2, stepSeek{target: 0, hasTarget: true, shared: true}); err != nil {
		Te.Fatal(err)
	}
	if _, err := readStep(c2, stepSeek{target: 0, hasTarget: true, shared: true}); err == nil {
		Te.Fatal("expected sentinel when overshooting")
	}
	t1, err := readStep(c2, stepSeek{target: 1, hasTarget: true, shared: true})
	if err != nil {
		Te.Fatal(err)
	}
	if t1.Index != 1 || t1.Len() != 4 {
		Te.Errorf("lost bytes across the rewind: index %d, %d atoms", t1.Index, t1.Len())
	}
}

//Tests the header-count soft invariant and the tokenless BOX BOUNDS
//default.
func TestCountMismatch(Te *testing.T) {
	d, err := Open("../test/mismatch.dump")
	if err != nil {
		Te.Fatal(err)
	}
	if d.Len() != 1 {
		Te.Fatalf("expected 1 timestep, got %d", d.Len())
	}
	t := d.Step(7)
	if t == nil || t.Len() != 9 {
		Te.Error("actual atom count must win over the declared one")
	}
	if t.Periodic != [3]bool{false, false, false} {
		Te.Errorf("tokenless box bounds must default to non-periodic: %v", t.Periodic)
	}
	if len(t.Extras) != 0 {
		Te.Errorf("unexpected extra columns: %v", t.Extras)
	}
}

//A timestep with zero atoms but a valid box is a real record, not the
//end-of-data sentinel.
func TestEmptyStep(Te *testing.T) {
	d, err := Open("../test/empty.dump")
	if err != nil {
		Te.Fatal(err)
	}
	if d.Len() != 1 {
		Te.Fatalf("expected 1 timestep, got %d", d.Len())
	}
	t := d.Step(100)
	if t == nil || t.Len() != 0 {
		Te.Fatal("zero-atom timestep not parsed")
	}
	if t.Periodic != [3]bool{true, true, true} {
		Te.Errorf("periodic flags: %v", t.Periodic)
	}
}

func roundTrip(Te *testing.T, out string) {
	d, err := Open("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	if err := d.WriteAll(out, true, false); err != nil {
		Te.Fatal(err)
	}
	d2, err := Open(out)
	if err != nil {
		Te.Fatal(err)
	}
	if !d.Equal(d2, tol) {
		Te.Errorf("round trip through %s lost information", out)
	}
}

//Tests write-then-reparse equality, plain and compressed.
func TestRoundTrip(Te *testing.T) {
	fmt.Println("Round trip test!")
	roundTrip(Te, "../test/out.dump")
	roundTrip(Te, "../test/out.dump.gz")
	roundTrip(Te, "../test/out.dump.zst")
}

//Tests that rebox tightens the written box to the position extents.
func TestRebox(Te *testing.T) {
	d, err := Open("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	w, err := NewWriter("../test/rebox.dump", true)
	if err != nil {
		Te.Fatal(err)
	}
	if err := w.WriteStep(d.Step(0), true); err != nil {
		Te.Fatal(err)
	}
	w.Close()
	t, err := ReadStep("../test/rebox.dump", 0)
	if err != nil {
		Te.Fatal(err)
	}
	want := [3][2]float64{{0.5, 4.125}, {0.25, 3.5}, {-1.0, 2.5}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if diff := t.Box[i][j] - want[i][j]; diff > 1e-4 || diff < -1e-4 {
				Te.Fatalf("reboxed bounds %v, want %v", t.Box, want)
			}
		}
	}
}

//An unrecognized selection method must fail loudly, naming the method.
func TestUnknownMethod(Te *testing.T) {
	d, err := Open("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	_, err = d.Step(0).GBIndices("centroid", "c_csd")
	if err == nil {
		Te.Fatal("expected an error for an unknown method")
	}
	ke, ok := err.(gblearn.KindError)
	if !ok || ke.Kind() != gblearn.UnknownMethod {
		Te.Errorf("expected an UnknownMethod kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "centroid") {
		Te.Errorf("error does not name the method: %v", err)
	}
}

func TestGBIndices(Te *testing.T) {
	d, err := Open("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	t2 := d.Step(2)
	ids, err := t2.GBIndices("median", "c_csd")
	if err != nil {
		Te.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != 4 {
		Te.Errorf("median selection: %v", ids)
	}
	ids, err = t2.GBIndices("cna", "c_cna")
	if err != nil {
		Te.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != 4 {
		Te.Errorf("cna selection: %v", ids)
	}
	if _, err = t2.GBIndices("median", "nope"); err == nil {
		Te.Error("expected an error for a missing field")
	}
}

func TestMarshalSummary(Te *testing.T) {
	d, err := Open("../test/lammps.dump")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := d.MarshalSummary()
	if err != nil {
		Te.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{`"Index":0`, `"Index":2`, `"NAtoms":5`, `"c_csd"`} {
		if !strings.Contains(s, want) {
			Te.Errorf("summary %s misses %s", s, want)
		}
	}
	fmt.Println("Dump summary:", s)
}
