package vm

import (
	"github.com/tliron/commonlog"
)

// Tracer observes machine execution. Step is called before each instruction
// executes; Output is called after an Output instruction, with the
// instruction pointer already advanced.
//
// Tracers must not mutate the machine.
type Tracer interface {
	Step(ip int64, word int64, relBase int64)
	Output(ip int64, value int64)
}

var log = commonlog.GetLogger("intcode.vm")

// LogTracer logs every instruction and output through the "intcode.vm"
// logger at debug level. Install with Machine.SetTracer for verbose runs.
type LogTracer struct{}

// Step implements Tracer.
func (LogTracer) Step(ip int64, word int64, relBase int64) {
	in := decodeInstruction(word, ip)
	log.Debugf("@%d: %d => %s (base=%d)", ip, word, in, relBase)
}

// Output implements Tracer.
func (LogTracer) Output(ip int64, value int64) {
	log.Debugf("@%d: output %d", ip, value)
}
