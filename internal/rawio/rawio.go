// Package rawio reads and writes grids as headerless little-endian float64
// streams, the only on-disk format the command line tool understands.
package rawio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-localortho/dsp/core"
	"github.com/cwbudde/algo-localortho/dsp/grid"
)

// Errors returned when the stream length does not match the shape.
var (
	ErrShortRead = fmt.Errorf("%w: rawio: stream shorter than shape", core.ErrConfiguration)
	ErrLongRead  = fmt.Errorf("%w: rawio: stream longer than shape", core.ErrConfiguration)
)

// Read decodes grid.Size(shape) samples from r. The stream must end right
// after the last sample; a longer stream is rejected rather than cropped.
func Read(r io.Reader, shape ...int) (*grid.Grid, error) {
	if err := grid.ValidateShape(shape); err != nil {
		return nil, err
	}
	g := grid.New(shape...)
	br := bufio.NewReader(r)
	if err := binary.Read(br, binary.LittleEndian, g.Data); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: want %d samples", ErrShortRead, g.Len())
		}
		return nil, fmt.Errorf("rawio: %w", err)
	}
	switch _, err := br.Peek(1); {
	case err == nil:
		return nil, fmt.Errorf("%w: trailing data after %d samples of shape %v", ErrLongRead, g.Len(), shape)
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("rawio: %w", err)
	}
	return g, nil
}

// Write encodes the samples of g to w.
func Write(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, g.Data); err != nil {
		return fmt.Errorf("rawio: %w", err)
	}
	return bw.Flush()
}

// ReadFile reads a grid from path.
func ReadFile(path string, shape ...int) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, shape...)
}

// WriteFile writes g to path, replacing any existing file.
func WriteFile(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseInts parses a comma separated list such as "300,80" or "20,20,1".
func ParseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("rawio: invalid list %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
