// Package linereader selects an inclusive line range from a text file.
package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidRange is returned when a range fails validation.
var ErrInvalidRange = errors.New("invalid line range")

// ToEOF as Range.End means "read until end of file".
const ToEOF = -1

// Range is an inclusive, 0-based [Start, End] window of a file.
// End == ToEOF means everything from Start to the last line.
type Range struct {
	Start int
	End   int
}

func (r Range) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("%w: start %d is negative", ErrInvalidRange, r.Start)
	}
	if r.End != ToEOF && r.End < r.Start {
		return fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Bounded reports whether the range has an explicit end line.
func (r Range) Bounded() bool { return r.End != ToEOF }

// Line is a single selected line with its original 0-based line number.
type Line struct {
	Num  int
	Text string
}

// Read opens path and returns the lines inside r, in file order. Each call
// reopens the file, so reads are restartable. Lines are trimmed of
// surrounding whitespace but blank lines are kept, so a bounded range that
// fits inside the file yields exactly End-Start+1 lines.
func Read(path string, r Range) ([]Line, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var (
		lines []Line
		num   int
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		if num >= r.Start && (!r.Bounded() || num <= r.End) {
			lines = append(lines, Line{Num: num, Text: strings.TrimSpace(sc.Text())})
		}
		num++
		if r.Bounded() && num > r.End {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return lines, nil
}
