package lammps

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	gblearn "github.com/leilakhalili87/gblearn"
	"github.com/leilakhalili87/gblearn/selection"
)

//DumpWriter appends timesteps to a dump file. Like the Cursor, it
//compresses transparently when the file name ends in .gz, .zst or .zstd.
type DumpWriter struct {
	f         *os.File
	z         io.WriteCloser //compressor, nil for plain files
	name      string
	writeable bool
}

//NewWriter opens the named dump file for writing. The file is appended
//to unless truncate is given, which clears it before the first write.
func NewWriter(name string, truncate bool) (*DumpWriter, error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if truncate {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	w := new(DumpWriter)
	w.name = name
	var err error
	w.f, err = os.OpenFile(name, flag, 0644)
	if err != nil {
		return nil, Error{UnableToWrite + ": " + err.Error(), gblearn.IOFailure, name, 0, []string{"NewWriter"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		w.z = gzip.NewWriter(w.f)
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		enc, err := zstd.NewWriter(w.f)
		if err != nil {
			w.f.Close()
			return nil, Error{UnableToWrite + ": " + err.Error(), gblearn.IOFailure, name, 0, []string{"NewWriter"}, true}
		}
		w.z = enc
	}
	w.writeable = true
	return w, nil
}

//WriteStep appends one timestep to the file.
func (w *DumpWriter) WriteStep(t *Timestep, rebox bool) error {
	if !w.writeable {
		return Error{UnableToWrite + ": writer is closed", gblearn.IOFailure, w.name, 0, []string{"WriteStep"}, true}
	}
	var out io.Writer = w.f
	if w.z != nil {
		out = w.z
	}
	if err := t.Write(out, rebox); err != nil {
		return errDecorate(err, "WriteStep")
	}
	return nil
}

//Close flushes and closes the writer. It can not be used after this call.
func (w *DumpWriter) Close() {
	if w == nil || !w.writeable {
		return
	}
	if w.z != nil {
		w.z.Close()
	}
	w.f.Close()
	w.writeable = false
}

//Write appends the timestep's full text representation to w, in the
//grammar order of the dump format. With rebox, the box bounds of each
//axis are recomputed as the extent of the current positions on that
//axis, which tightens the box after a position-filtered subset has been
//taken; otherwise the stored box is written verbatim. Box bounds are
//rendered with 4 decimals, positions with 5; integer extra columns are
//written as plain decimals and float ones in 5-decimal scientific
//notation, in the column order captured at parse time.
func (t *Timestep) Write(w io.Writer, rebox bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ITEM: TIMESTEP\n%d\n", t.Index)
	fmt.Fprintf(bw, "ITEM: NUMBER OF ATOMS\n%d\n", t.Len())
	ptoks := make([]string, 3)
	for i, p := range t.Periodic {
		if p {
			ptoks[i] = "pp"
		} else {
			ptoks[i] = "ss"
		}
	}
	fmt.Fprintf(bw, "ITEM: BOX BOUNDS %s\n", strings.Join(ptoks, " "))
	box := t.Box
	if rebox && t.XYZ != nil {
		for i := 0; i < 3; i++ {
			box[i][0], box[i][1] = selection.Extent(t.XYZ, i)
		}
	}
	for i := 0; i < 3; i++ {
		fmt.Fprintf(bw, "%.4f %.4f\n", box[i][0], box[i][1])
	}
	header := "ITEM: ATOMS id type x y z"
	if len(t.Extras) > 0 {
		header += " " + strings.Join(t.Extras, " ")
	}
	fmt.Fprintf(bw, "%s\n", header)
	for i := 0; i < t.Len(); i++ {
		fmt.Fprintf(bw, "%d %d %.5f %.5f %.5f", t.IDs[i], t.Types[i], t.XYZ.At(i, 0), t.XYZ.At(i, 1), t.XYZ.At(i, 2))
		for _, name := range t.Extras {
			col := t.Extra[name]
			if col.Kind == ColInt {
				fmt.Fprintf(bw, " %d", col.Ints[i])
			} else {
				fmt.Fprintf(bw, " %.5e", col.Floats[i])
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return Error{UnableToWrite + ": " + err.Error(), gblearn.IOFailure, t.FileName, 0, []string{"Write"}, true}
	}
	return nil
}

//AppendTo appends the timestep to the named dump file, creating it if
//needed.
func (t *Timestep) AppendTo(name string, rebox bool) error {
	w, err := NewWriter(name, false)
	if err != nil {
		return errDecorate(err, "AppendTo")
	}
	defer w.Close()
	return w.WriteStep(t, rebox)
}

//WriteAll writes every timestep of the collection, in insertion order,
//to the named dump file. With truncate, the target file is cleared
//before the first write; otherwise the collection is appended.
func (d *Dump) WriteAll(name string, truncate, rebox bool) error {
	w, err := NewWriter(name, truncate)
	if err != nil {
		return errDecorate(err, "WriteAll")
	}
	defer w.Close()
	for _, t := range d.Steps() {
		if err := w.WriteStep(t, rebox); err != nil {
			return errDecorate(err, "WriteAll")
		}
	}
	return nil
}
