package vm

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Disassembly
// ---------------------------------------------------------------------------

// formatOperand renders an operand under its addressing mode: "@n" for
// position, "#n" for immediate, "r+n"/"r-n" for relative.
func formatOperand(mode Mode, value int64) string {
	switch mode {
	case ModeImmediate:
		return fmt.Sprintf("#%d", value)
	case ModeRelative:
		return fmt.Sprintf("r%+d", value)
	default:
		return fmt.Sprintf("@%d", value)
	}
}

// disassembleAt disassembles the instruction at pos, returning its string
// representation and the number of words consumed. Words that do not decode
// as instructions are rendered as DATA and consumed one at a time.
func disassembleAt(program Program, pos int) (string, int) {
	word := program[pos]
	op, err := DecodeOpcode(word)
	if err != nil {
		return fmt.Sprintf("%04d  DATA %d", pos, word), 1
	}
	info := op.Info()
	if pos+info.Operands >= len(program) && info.Operands > 0 {
		// Truncated instruction at the end of the program: data.
		return fmt.Sprintf("%04d  DATA %d", pos, word), 1
	}

	operands := make([]string, 0, info.Operands)
	for i := 0; i < info.Operands; i++ {
		mode, err := DecodeMode(word, i)
		if err != nil {
			return fmt.Sprintf("%04d  DATA %d", pos, word), 1
		}
		if info.Writes && i == info.Operands-1 {
			if mode == ModeImmediate {
				// Illegal write target; treat the word as data.
				return fmt.Sprintf("%04d  DATA %d", pos, word), 1
			}
			operands = append(operands, "-> "+formatOperand(mode, program[pos+1+i]))
			continue
		}
		operands = append(operands, formatOperand(mode, program[pos+1+i]))
	}

	text := fmt.Sprintf("%04d  %s", pos, info.Name)
	if len(operands) > 0 {
		text += " " + strings.Join(operands, " ")
	}
	return text, 1 + info.Operands
}

// Disassemble renders a program as one instruction per line. Intcode does
// not separate code from data, so the listing is a best-effort linear sweep:
// words that cannot decode are shown as DATA.
func Disassemble(program Program) string {
	var sb strings.Builder
	for pos := 0; pos < len(program); {
		line, consumed := disassembleAt(program, pos)
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		pos += consumed
	}
	return sb.String()
}
