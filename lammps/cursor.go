package lammps

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	gblearn "github.com/leilakhalili87/gblearn"
)

//Cursor owns the line-level read state of one dump stream. It is the only
//mutable state shared between successive timestep reads: a Dump hands the
//same Cursor to every read of a sequential scan, while a single-step read
//opens and closes a private one. Rewinding is done by returning whole lines
//to the cursor, never by seeking bytes, so it works the same on plain,
//gzip and zstd streams.
type Cursor struct {
	f       *os.File
	z       io.ReadCloser //decompressor, nil for plain files
	r       *bufio.Reader
	name    string
	line    int      //1-based number of the last line handed out
	pending []string //lines returned via PushBack, consumed LIFO
}

//NewCursor opens the named dump file for reading. Files ending in .gz,
//.zst or .zstd are decompressed transparently.
func NewCursor(name string) (*Cursor, error) {
	c := new(Cursor)
	c.name = name
	var err error
	c.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), gblearn.IOFailure, name, 0, []string{"NewCursor"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(c.f)
		if err != nil {
			c.f.Close()
			return nil, Error{WrongFormat + ": " + err.Error(), gblearn.IOFailure, name, 0, []string{"NewCursor"}, true}
		}
		c.z = gz
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		zr, err := zstd.NewReader(c.f)
		if err != nil {
			c.f.Close()
			return nil, Error{WrongFormat + ": " + err.Error(), gblearn.IOFailure, name, 0, []string{"NewCursor"}, true}
		}
		c.z = zr.IOReadCloser()
	}
	if c.z != nil {
		c.r = bufio.NewReader(c.z)
	} else {
		c.r = bufio.NewReader(c.f)
	}
	return c, nil
}

//Name returns the path of the backing file.
func (c *Cursor) Name() string { return c.name }

//Line returns the 1-based number of the last line handed out, for error
//reporting.
func (c *Cursor) Line() int { return c.line }

//ReadLine returns the next line of the stream, without its trailing
//newline. At the end of the stream it returns io.EOF.
func (c *Cursor) ReadLine() (string, error) {
	if n := len(c.pending); n > 0 {
		s := c.pending[n-1]
		c.pending = c.pending[:n-1]
		c.line++
		return s, nil
	}
	s, err := c.r.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if s == "" {
				return "", io.EOF
			}
			//last line of a file with no final newline
		} else {
			return "", Error{err.Error(), gblearn.IOFailure, c.name, c.line, []string{"ReadLine"}, true}
		}
	}
	c.line++
	return strings.TrimSuffix(s, "\n"), nil
}

//PushBack returns lines to the cursor. The lines must be given in the
//order they were originally read; the following ReadLine calls will yield
//them again in that same order. This replaces byte-level seeking for the
//one-record lookahead the parser needs.
func (c *Cursor) PushBack(lines ...string) {
	for i := len(lines) - 1; i >= 0; i-- {
		c.pending = append(c.pending, lines[i])
		c.line--
	}
}

//Close closes the cursor and the backing file. The cursor can not be
//used after this call.
func (c *Cursor) Close() {
	if c.f == nil {
		return
	}
	if c.z != nil {
		c.z.Close()
	}
	c.f.Close()
	c.f = nil
}
