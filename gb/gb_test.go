package gb

import (
	"fmt"
	"testing"

	gblearn "github.com/leilakhalili87/gblearn"
	"github.com/leilakhalili87/gblearn/lammps"
)

//The species can not be inferred from a dump file, so omitting it is the
//one fatal parameter failure of boundary extraction.
func TestMissingSpecies(Te *testing.T) {
	t, err := lammps.ReadStep("../test/lammps.dump", 2)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = FromTimestep(t, 0, "median", "c_csd", false)
	if err == nil {
		Te.Fatal("expected an error without a species")
	}
	ke, ok := err.(gblearn.KindError)
	if !ok || ke.Kind() != gblearn.MissingParameter {
		Te.Errorf("expected a MissingParameter kind, got %v", err)
	}
}

func TestFromTimestep(Te *testing.T) {
	t, err := lammps.ReadStep("../test/lammps.dump", 2)
	if err != nil {
		Te.Fatal(err)
	}
	g, err := FromTimestep(t, 28, "cna", "c_cna", true)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("boundary atoms:", g.Len())
	if g.Len() != 1 || g.Types[0] != 2 {
		Te.Fatalf("boundary selection: %d atoms, types %v", g.Len(), g.Types)
	}
	if x := g.XYZ.At(0, 0); x != 8.125 {
		Te.Errorf("boundary atom x: %v", x)
	}
	if g.Z != 28 {
		Te.Errorf("species: %d", g.Z)
	}
	if csd := g.Extras["c_csd"]; len(csd) != 1 || csd[0] != 50.0 {
		Te.Errorf("carried extras: %v", g.Extras)
	}
	//an unknown method propagates the registry failure
	if _, err := FromTimestep(t, 28, "voronoi", "c_csd", false); err == nil {
		Te.Error("expected an error for an unknown method")
	}
}
