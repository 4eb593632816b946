// Package trace records machine execution as a stream of structured events.
//
// Records are encoded as canonical CBOR and written through a zstd
// compressor, so long runs stay cheap to keep around. A trace is a
// debugging artifact: it describes what a machine did, not enough to
// reconstruct one.
package trace

import (
	"github.com/chazu/intcode/vm"
)

// Kind discriminates trace records.
type Kind int

const (
	KindStep   Kind = 0 // an instruction is about to execute
	KindOutput Kind = 1 // an output value was produced
)

// Record is a single trace event.
type Record struct {
	Kind    Kind   `cbor:"k"`
	IP      int64  `cbor:"ip"`
	Word    int64  `cbor:"w,omitempty"`
	Op      string `cbor:"op,omitempty"`
	RelBase int64  `cbor:"rb,omitempty"`
	Value   int64  `cbor:"v,omitempty"`
}

// Recorder implements vm.Tracer by appending a Record per event to a sink.
type Recorder struct {
	sink func(Record)
}

// NewRecorder creates a Recorder delivering each record to sink.
func NewRecorder(sink func(Record)) *Recorder {
	return &Recorder{sink: sink}
}

// Step implements vm.Tracer.
func (r *Recorder) Step(ip int64, word int64, relBase int64) {
	record := Record{Kind: KindStep, IP: ip, Word: word, RelBase: relBase}
	if op, err := vm.DecodeOpcode(word); err == nil {
		record.Op = op.Name()
	}
	r.sink(record)
}

// Output implements vm.Tracer.
func (r *Recorder) Output(ip int64, value int64) {
	r.sink(Record{Kind: KindOutput, IP: ip, Value: value})
}
