package vm

import (
	"strings"
	"testing"
)

func TestOpcodeInfo(t *testing.T) {
	tests := []struct {
		op       Opcode
		name     string
		operands int
		writes   bool
	}{
		{OpAdd, "ADD", 3, true},
		{OpMul, "MUL", 3, true},
		{OpInput, "INPUT", 1, true},
		{OpOutput, "OUTPUT", 1, false},
		{OpJumpTrue, "JUMP_TRUE", 2, false},
		{OpJumpFalse, "JUMP_FALSE", 2, false},
		{OpLessThan, "LESS_THAN", 3, true},
		{OpEquals, "EQUALS", 3, true},
		{OpAdjustBase, "ADJUST_BASE", 1, false},
		{OpHalt, "HALT", 0, false},
	}

	for _, tt := range tests {
		info := tt.op.Info()
		if info.Name != tt.name {
			t.Errorf("%d: Name = %q, want %q", int64(tt.op), info.Name, tt.name)
		}
		if info.Operands != tt.operands {
			t.Errorf("%s: Operands = %d, want %d", tt.op, info.Operands, tt.operands)
		}
		if info.Writes != tt.writes {
			t.Errorf("%s: Writes = %v, want %v", tt.op, info.Writes, tt.writes)
		}
	}
}

func TestUnknownOpcode(t *testing.T) {
	op := Opcode(42)
	if !strings.HasPrefix(op.Info().Name, "UNKNOWN_") {
		t.Errorf("unknown opcode name = %q, want UNKNOWN_ prefix", op.Info().Name)
	}
	if _, err := DecodeOpcode(42); err == nil {
		t.Error("DecodeOpcode(42) should fail")
	}
}

func TestDecodeOpcode(t *testing.T) {
	tests := []struct {
		word int64
		want Opcode
	}{
		{1, OpAdd},
		{1002, OpMul},
		{3, OpInput},
		{104, OpOutput},
		{1105, OpJumpTrue},
		{1006, OpJumpFalse},
		{21107, OpLessThan},
		{1008, OpEquals},
		{109, OpAdjustBase},
		{99, OpHalt},
	}

	for _, tt := range tests {
		got, err := DecodeOpcode(tt.word)
		if err != nil {
			t.Errorf("DecodeOpcode(%d): %v", tt.word, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeOpcode(%d) = %s, want %s", tt.word, got, tt.want)
		}
	}
}

func TestDecodeMode(t *testing.T) {
	tests := []struct {
		word    int64
		operand int
		want    Mode
	}{
		{1002, 0, ModePosition},
		{1002, 1, ModeImmediate},
		{1002, 2, ModePosition},
		{104, 0, ModeImmediate},
		{204, 0, ModeRelative},
		{21101, 0, ModeImmediate},
		{21101, 1, ModeImmediate},
		{21101, 2, ModeRelative},
		{99, 0, ModePosition}, // absent digit defaults to position
	}

	for _, tt := range tests {
		got, err := DecodeMode(tt.word, tt.operand)
		if err != nil {
			t.Errorf("DecodeMode(%d, %d): %v", tt.word, tt.operand, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeMode(%d, %d) = %s, want %s", tt.word, tt.operand, got, tt.want)
		}
	}
}

func TestDecodeModeUnknownDigit(t *testing.T) {
	if _, err := DecodeMode(302, 0); err == nil {
		t.Error("DecodeMode(302, 0) should reject mode digit 3")
	}
}

func TestInstructionString(t *testing.T) {
	in := decodeInstruction(21101, 0)
	if got := in.String(); got != "ADD [IMM IMM REL]" {
		t.Errorf("String() = %q, want %q", got, "ADD [IMM IMM REL]")
	}

	halt := decodeInstruction(99, 0)
	if got := halt.String(); got != "HALT" {
		t.Errorf("String() = %q, want %q", got, "HALT")
	}
}
