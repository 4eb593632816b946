package vm

import (
	"fmt"
	"iter"
	"strings"
)

// ---------------------------------------------------------------------------
// Machine: a live Intcode interpreter
// ---------------------------------------------------------------------------

// Machine executes an Intcode Program. Its instruction pointer, relative
// base, memory and input queue are the entire continuation: Run returns at
// every pause condition and re-entering Run resumes exactly where execution
// left off. A Machine is exclusively owned by one caller; it holds no
// goroutines, callbacks or locks.
type Machine struct {
	ip      int64   // instruction pointer
	relBase int64   // relative base register
	memory  []int64 // growable, zero-filled beyond the program
	input   []int64 // pending input values, oldest first

	tracer Tracer
}

// NewMachine creates a Machine with an independent copy of the program as
// its initial memory.
func NewMachine(program Program) *Machine {
	return &Machine{memory: program.Clone()}
}

// NewMachineFromSource parses Intcode source text and creates a Machine
// for it.
func NewMachineFromSource(source string) (*Machine, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return NewMachine(program), nil
}

// WithInput creates a Machine with the given values already buffered as
// input, oldest first.
func WithInput(program Program, inputs ...int64) *Machine {
	m := NewMachine(program)
	for _, v := range inputs {
		m.Input(v)
	}
	return m
}

// SetTracer installs a Tracer observing each executed instruction and each
// produced output. A nil tracer disables tracing.
func (m *Machine) SetTracer(t Tracer) {
	m.tracer = t
}

// ---------------------------------------------------------------------------
// Execution
// ---------------------------------------------------------------------------

// stepAction is the next action for the run loop after one instruction.
type stepAction int

const (
	actionContinue stepAction = iota
	actionPause               // halted, or input requested with an empty queue
	actionOutput
)

// Run executes instructions until a pause condition is reached:
//
//   - Halt: returns (0, false). Further calls keep returning (0, false);
//     IsHalted reports true.
//   - Input requested with no buffered input: returns (0, false) with the
//     instruction pointer unmoved; IsAwaitingInput reports true, and
//     supplying input then calling Run resumes from this exact point.
//   - Output produced: returns (value, true) with the instruction pointer
//     already advanced past the Output instruction.
func (m *Machine) Run() (int64, bool) {
	for {
		action, value := m.step()
		switch action {
		case actionContinue:
		case actionPause:
			return 0, false
		case actionOutput:
			return value, true
		}
	}
}

// RunWithInput buffers one input value and then calls Run.
func (m *Machine) RunWithInput(value int64) (int64, bool) {
	m.Input(value)
	return m.Run()
}

// Outputs returns a lazy sequence of successive output values, calling Run
// until the machine pauses without output. The sequence is resumable: a new
// call continues from the machine's current state.
func (m *Machine) Outputs() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for {
			value, ok := m.Run()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// RunASCII runs until the machine pauses without output, collecting output
// values as a string of character codes.
func (m *Machine) RunASCII() string {
	var sb strings.Builder
	for value := range m.Outputs() {
		sb.WriteByte(byte(value))
	}
	return sb.String()
}

// Input buffers a value for consumption by a future Input instruction.
func (m *Machine) Input(value int64) {
	m.input = append(m.input, value)
}

// InputLine buffers each character of the line followed by a newline
// terminator, for programs speaking a text protocol.
func (m *Machine) InputLine(line string) {
	for i := 0; i < len(line); i++ {
		m.Input(int64(line[i]))
	}
	m.Input('\n')
}

// IsHalted reports whether the current instruction is Halt.
func (m *Machine) IsHalted() bool {
	return m.currentInstruction().isHalt()
}

// IsAwaitingInput reports whether the current instruction is Input. After a
// Run that returned no output, this distinguishes input starvation from a
// true halt.
func (m *Machine) IsAwaitingInput() bool {
	return m.currentInstruction().isInput()
}

// currentInstruction re-decodes the instruction at the instruction pointer.
func (m *Machine) currentInstruction() instruction {
	return decodeInstruction(m.Read(m.ip), m.ip)
}

// step decodes and executes a single instruction.
func (m *Machine) step() (stepAction, int64) {
	in := m.currentInstruction()
	if m.tracer != nil {
		m.tracer.Step(m.ip, in.word, m.relBase)
	}

	switch in.op {
	case OpHalt:
		return actionPause, 0

	case OpAdd:
		m.execBinary(in, func(a, b int64) int64 { return a + b })
	case OpMul:
		m.execBinary(in, func(a, b int64) int64 { return a * b })
	case OpLessThan:
		m.execBinary(in, func(a, b int64) int64 {
			if a < b {
				return 1
			}
			return 0
		})
	case OpEquals:
		m.execBinary(in, func(a, b int64) int64 {
			if a == b {
				return 1
			}
			return 0
		})

	case OpJumpTrue:
		m.execJump(in, func(v int64) bool { return v != 0 })
	case OpJumpFalse:
		m.execJump(in, func(v int64) bool { return v == 0 })

	case OpInput:
		if len(m.input) == 0 {
			// Leave the instruction pointer on the Input instruction so
			// the caller can buffer input and resume.
			return actionPause, 0
		}
		value := m.input[0]
		m.input = m.input[1:]
		m.writeOperand(in, 0, value)
		m.ip += 2

	case OpOutput:
		value := m.readOperand(in, 0)
		m.ip += 2
		if m.tracer != nil {
			m.tracer.Output(m.ip, value)
		}
		return actionOutput, value

	case OpAdjustBase:
		m.relBase += m.readOperand(in, 0)
		m.ip += 2
	}
	return actionContinue, 0
}

// execBinary executes a three-operand instruction: read two values, store
// the combined result through the final operand.
func (m *Machine) execBinary(in instruction, op func(a, b int64) int64) {
	a := m.readOperand(in, 0)
	b := m.readOperand(in, 1)
	m.writeOperand(in, 2, op(a, b))
	m.ip += 4
}

// execJump executes a two-operand conditional jump.
func (m *Machine) execJump(in instruction, taken func(v int64) bool) {
	if taken(m.readOperand(in, 0)) {
		m.ip = m.readOperand(in, 1)
	} else {
		m.ip += 3
	}
}

// ---------------------------------------------------------------------------
// Operand resolution
// ---------------------------------------------------------------------------

// readOperand resolves the zero-indexed operand as a value.
func (m *Machine) readOperand(in instruction, operand int) int64 {
	value := m.Read(m.ip + int64(operand) + 1)
	switch in.mode(operand, m.ip) {
	case ModeImmediate:
		return value
	case ModeRelative:
		return m.Read(m.relBase + value)
	default:
		return m.Read(value)
	}
}

// writeOperand resolves the zero-indexed operand as a write target and
// stores value there. Immediate mode has no address to write through.
func (m *Machine) writeOperand(in instruction, operand int, value int64) {
	offset := m.Read(m.ip + int64(operand) + 1)
	var address int64
	switch in.mode(operand, m.ip) {
	case ModePosition:
		address = offset
	case ModeRelative:
		address = m.relBase + offset
	case ModeImmediate:
		panic(fmt.Sprintf("vm: write target in immediate mode for %s at ip=%d", in.op, m.ip))
	}
	m.Write(address, value)
}

// ---------------------------------------------------------------------------
// Memory access
// ---------------------------------------------------------------------------

// Read returns the value at the given address. Memory is conceptually
// infinite and zero-initialized: any address at or beyond the current
// length reads as zero.
func (m *Machine) Read(address int64) int64 {
	if address < 0 {
		panic(fmt.Sprintf("vm: read at negative address %d (ip=%d)", address, m.ip))
	}
	if address >= int64(len(m.memory)) {
		return 0
	}
	return m.memory[address]
}

// Write stores a value at the given address, growing memory with zero fill
// if the address is beyond the current length.
func (m *Machine) Write(address int64, value int64) {
	if address < 0 {
		panic(fmt.Sprintf("vm: write at negative address %d (ip=%d)", address, m.ip))
	}
	if address >= int64(len(m.memory)) {
		grown := make([]int64, address+1)
		copy(grown, m.memory)
		m.memory = grown
	}
	m.memory[address] = value
}

// Memory returns a snapshot copy of the entire current memory contents.
func (m *Machine) Memory() []int64 {
	snapshot := make([]int64, len(m.memory))
	copy(snapshot, m.memory)
	return snapshot
}
