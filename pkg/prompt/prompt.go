// Package prompt implements the line-based prompting the interactive
// menu is built on. All parsing and range validation happens here, so
// services only ever see already-validated values.
//
// The reader is injected, which keeps the menu layer testable with a
// scripted strings.Reader.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zackariya14/databasteknik-uppgift-2/pkg/apperr"
)

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints label and returns the next input line, trimmed.
// Returns io.EOF when the input stream ends.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Int prompts for an integer. Non-numeric input is InvalidInput.
func (p *Prompter) Int(label string) (int, error) {
	line, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, apperr.InvalidInput("%q is not a number", line)
	}
	return n, nil
}

// Float prompts for a decimal number. Non-numeric input is
// InvalidInput, as are "nan" and "inf", which ParseFloat would accept.
func (p *Prompter) Float(label string) (float64, error) {
	line, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, apperr.InvalidInput("%q is not a number", line)
	}
	return f, nil
}

// SelectIndex prompts for a 1-based index into a list of n entries and
// returns the zero-based position. Anything outside [1, n] is
// InvalidInput and nothing has been selected.
func (p *Prompter) SelectIndex(label string, n int) (int, error) {
	idx, err := p.Int(label)
	if err != nil {
		return 0, err
	}
	if idx < 1 || idx > n {
		return 0, apperr.InvalidInput("index %d out of range [1, %d]", idx, n)
	}
	return idx - 1, nil
}
