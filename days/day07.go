package days

import (
	"strconv"

	"github.com/chazu/intcode/vm"
)

func init() {
	register(7, "Amplification Circuit", solveDay07)
}

// amplifierChain is a series of machines, each seeded with a phase setting,
// passing a signal from one to the next.
type amplifierChain struct {
	machines []*vm.Machine
}

func newAmplifierChain(program vm.Program, phases []int64) *amplifierChain {
	chain := &amplifierChain{machines: make([]*vm.Machine, len(phases))}
	for i, phase := range phases {
		chain.machines[i] = vm.WithInput(program, phase)
	}
	return chain
}

// runSignal feeds the signal through every amplifier once. An amplifier
// that pauses without output leaves the signal unchanged.
func (c *amplifierChain) runSignal(signal int64) int64 {
	for _, m := range c.machines {
		if value, ok := m.RunWithInput(signal); ok {
			signal = value
		}
	}
	return signal
}

// run passes a zero signal through the chain once.
func (c *amplifierChain) run() int64 {
	return c.runSignal(0)
}

// runFeedback loops the last amplifier's output back to the first until the
// chain halts.
func (c *amplifierChain) runFeedback() int64 {
	signal := int64(0)
	for !c.isHalted() {
		signal = c.runSignal(signal)
	}
	return signal
}

func (c *amplifierChain) isHalted() bool {
	return c.machines[len(c.machines)-1].IsHalted()
}

// maxSignal tries every permutation of the phase settings.
func maxSignal(program vm.Program, phases []int64, run func(*amplifierChain) int64) int64 {
	best := int64(0)
	for _, perm := range permutations(phases) {
		if signal := run(newAmplifierChain(program, perm)); signal > best {
			best = signal
		}
	}
	return best
}

func maxThrusterSignal(program vm.Program) int64 {
	return maxSignal(program, []int64{0, 1, 2, 3, 4}, (*amplifierChain).run)
}

func maxFeedbackThrusterSignal(program vm.Program) int64 {
	return maxSignal(program, []int64{5, 6, 7, 8, 9}, (*amplifierChain).runFeedback)
}

// permutations generates every ordering of values (Heap's algorithm).
func permutations(values []int64) [][]int64 {
	var out [][]int64
	current := append([]int64(nil), values...)

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			out = append(out, append([]int64(nil), current...))
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				current[i], current[k-1] = current[k-1], current[i]
			} else {
				current[0], current[k-1] = current[k-1], current[0]
			}
		}
	}
	generate(len(current))
	return out
}

func solveDay07(input string) (string, string, error) {
	program, err := vm.Parse(input)
	if err != nil {
		return "", "", err
	}
	part1 := maxThrusterSignal(program)
	part2 := maxFeedbackThrusterSignal(program)
	return strconv.FormatInt(part1, 10), strconv.FormatInt(part2, 10), nil
}
