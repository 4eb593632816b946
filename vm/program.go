package vm

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Program is a parsed Intcode program: an ordered sequence of signed 64-bit
// integers. A Program is inert; execution state lives in a Machine.
type Program []int64

// Parse reads a comma-separated list of base-10 signed integers. Arbitrary
// whitespace around each number (and the whole text) is permitted; any other
// punctuation is a parse error.
func Parse(source string) (Program, error) {
	fields := strings.Split(strings.TrimSpace(source), ",")
	program := make(Program, 0, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("vm: bad value %q at position %d: %w", field, i, err)
		}
		program = append(program, value)
	}
	return program, nil
}

// MustParse is like Parse but panics on malformed source. Intended for
// fixed, known-good program text.
func MustParse(source string) Program {
	program, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return program
}

// Clone returns an independent copy of the program.
func (p Program) Clone() Program {
	return slices.Clone(p)
}

// Patch overwrites the value at the given address. Used to alter fixed
// inputs embedded in a program (e.g. a noun/verb pair) before execution.
func (p Program) Patch(address int, value int64) {
	p[address] = value
}

// String re-encodes the program as comma-separated source text.
func (p Program) String() string {
	var sb strings.Builder
	for i, value := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(value, 10))
	}
	return sb.String()
}
