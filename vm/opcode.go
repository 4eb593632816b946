package vm

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Opcode definitions
// ---------------------------------------------------------------------------

// Opcode is the operation selector encoded in the low two decimal digits of
// an instruction word.
type Opcode int64

const (
	OpAdd        Opcode = 1  // mem[out] = p0 + p1
	OpMul        Opcode = 2  // mem[out] = p0 * p1
	OpInput      Opcode = 3  // mem[out] = next queued input
	OpOutput     Opcode = 4  // emit p0
	OpJumpTrue   Opcode = 5  // if p0 != 0, ip = p1
	OpJumpFalse  Opcode = 6  // if p0 == 0, ip = p1
	OpLessThan   Opcode = 7  // mem[out] = p0 < p1
	OpEquals     Opcode = 8  // mem[out] = p0 == p1
	OpAdjustBase Opcode = 9  // relative base += p0
	OpHalt       Opcode = 99 // stop execution
)

// OpcodeInfo holds metadata about an opcode.
type OpcodeInfo struct {
	Name     string // human-readable name
	Operands int    // number of operands
	Writes   bool   // final operand is a write target
}

// opcodeTable maps opcodes to their metadata.
var opcodeTable = map[Opcode]OpcodeInfo{
	OpAdd:        {"ADD", 3, true},
	OpMul:        {"MUL", 3, true},
	OpInput:      {"INPUT", 1, true},
	OpOutput:     {"OUTPUT", 1, false},
	OpJumpTrue:   {"JUMP_TRUE", 2, false},
	OpJumpFalse:  {"JUMP_FALSE", 2, false},
	OpLessThan:   {"LESS_THAN", 3, true},
	OpEquals:     {"EQUALS", 3, true},
	OpAdjustBase: {"ADJUST_BASE", 1, false},
	OpHalt:       {"HALT", 0, false},
}

// Info returns the metadata for an opcode.
func (op Opcode) Info() OpcodeInfo {
	if info, ok := opcodeTable[op]; ok {
		return info
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN_%d", int64(op))}
}

// Name returns the human-readable name for an opcode.
func (op Opcode) Name() string {
	return op.Info().Name
}

// Operands returns the number of operands for an opcode.
func (op Opcode) Operands() int {
	return op.Info().Operands
}

// String implements the Stringer interface.
func (op Opcode) String() string {
	return op.Name()
}

// DecodeOpcode extracts the opcode from an instruction word. Unknown codes
// are rejected rather than defaulted.
func DecodeOpcode(word int64) (Opcode, error) {
	op := Opcode(word % 100)
	if _, ok := opcodeTable[op]; !ok {
		return op, fmt.Errorf("vm: unknown opcode %d in instruction word %d", int64(op), word)
	}
	return op, nil
}

// ---------------------------------------------------------------------------
// Parameter modes
// ---------------------------------------------------------------------------

// Mode is a per-operand addressing mode, encoded in the instruction word's
// leading digits (units digit of word/100 is the first operand's mode).
type Mode int64

const (
	ModePosition  Mode = 0 // operand is an address
	ModeImmediate Mode = 1 // operand is the value itself
	ModeRelative  Mode = 2 // operand is an offset from the relative base
)

// String implements the Stringer interface.
func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "POS"
	case ModeImmediate:
		return "IMM"
	case ModeRelative:
		return "REL"
	}
	return fmt.Sprintf("UNKNOWN_%d", int64(m))
}

// DecodeMode extracts the addressing mode for the zero-indexed operand from
// an instruction word. A missing digit is ModePosition; an unknown digit is
// rejected.
func DecodeMode(word int64, operand int) (Mode, error) {
	digits := word / 100
	for i := 0; i < operand; i++ {
		digits /= 10
	}
	m := Mode(digits % 10)
	switch m {
	case ModePosition, ModeImmediate, ModeRelative:
		return m, nil
	}
	return m, fmt.Errorf("vm: unknown parameter mode %d for operand %d in instruction word %d", int64(m), operand, word)
}

// ---------------------------------------------------------------------------
// Instruction: a single decoded instruction word
// ---------------------------------------------------------------------------

// instruction pairs an instruction word with its decoded opcode. Instructions
// are re-decoded from memory on every use; nothing is cached across steps.
type instruction struct {
	word int64
	op   Opcode
}

func decodeInstruction(word int64, ip int64) instruction {
	op, err := DecodeOpcode(word)
	if err != nil {
		panic(fmt.Sprintf("vm: %v at ip=%d", err, ip))
	}
	return instruction{word: word, op: op}
}

// mode returns the addressing mode for the zero-indexed operand.
func (in instruction) mode(operand int, ip int64) Mode {
	m, err := DecodeMode(in.word, operand)
	if err != nil {
		panic(fmt.Sprintf("vm: %v at ip=%d", err, ip))
	}
	return m
}

func (in instruction) isHalt() bool {
	return in.op == OpHalt
}

func (in instruction) isInput() bool {
	return in.op == OpInput
}

// String renders the instruction with its operand modes, e.g. "ADD [POS IMM POS]".
func (in instruction) String() string {
	info := in.op.Info()
	if info.Operands == 0 {
		return info.Name
	}
	modes := make([]string, info.Operands)
	for i := range modes {
		m, err := DecodeMode(in.word, i)
		if err != nil {
			modes[i] = "?"
			continue
		}
		modes[i] = m.String()
	}
	return fmt.Sprintf("%s [%s]", info.Name, strings.Join(modes, " "))
}
