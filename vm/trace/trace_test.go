package trace

import (
	"bytes"
	"io"
	"testing"

	"github.com/chazu/intcode/vm"
)

func TestRecorderCapturesStepsAndOutputs(t *testing.T) {
	var records []Record
	m := vm.NewMachine(vm.MustParse("104,7,99"))
	m.SetTracer(NewRecorder(func(r Record) { records = append(records, r) }))

	if value, ok := m.Run(); !ok || value != 7 {
		t.Fatalf("Run() = %d, %v, want 7, true", value, ok)
	}
	m.Run()

	want := []Record{
		{Kind: KindStep, IP: 0, Word: 104, Op: "OUTPUT"},
		{Kind: KindOutput, IP: 2, Value: 7},
		{Kind: KindStep, IP: 2, Word: 99, Op: "HALT"},
	}
	if len(records) != len(want) {
		t.Fatalf("recorded %d events, want %d: %v", len(records), len(want), records)
	}
	for i, r := range records {
		if r != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestRecordWireRoundTrip(t *testing.T) {
	in := Record{Kind: KindStep, IP: 12, Word: 21101, Op: "ADD", RelBase: -3}
	data, err := MarshalRecord(&in)
	if err != nil {
		t.Fatalf("MarshalRecord: %v", err)
	}
	out, err := UnmarshalRecord(data)
	if err != nil {
		t.Fatalf("UnmarshalRecord: %v", err)
	}
	if *out != in {
		t.Errorf("round trip = %+v, want %+v", *out, in)
	}
}

func TestMarshalRecordIsDeterministic(t *testing.T) {
	r := Record{Kind: KindOutput, IP: 4, Value: 42}
	a, err := MarshalRecord(&r)
	if err != nil {
		t.Fatalf("MarshalRecord: %v", err)
	}
	b, err := MarshalRecord(&r)
	if err != nil {
		t.Fatalf("MarshalRecord: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("canonical encoding should be deterministic")
	}
}

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	// Record a full quine run through the stream.
	m := vm.NewMachine(vm.MustParse("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"))
	m.SetTracer(NewRecorder(func(r Record) {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}))
	var outputs int
	for range m.Outputs() {
		outputs++
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	var steps, outs int
	for {
		record, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		switch record.Kind {
		case KindStep:
			steps++
		case KindOutput:
			outs++
		}
	}
	if outs != outputs {
		t.Errorf("trace has %d outputs, machine produced %d", outs, outputs)
	}
	if steps == 0 {
		t.Error("trace should contain step records")
	}
}
