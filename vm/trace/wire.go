package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// Canonical mode keeps the encoding deterministic, so traces of identical
// runs are byte-identical.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalRecord serializes a Record to CBOR bytes.
func MarshalRecord(r *Record) ([]byte, error) {
	return cborEncMode.Marshal(r)
}

// UnmarshalRecord deserializes a Record from CBOR bytes.
func UnmarshalRecord(data []byte) (*Record, error) {
	var r Record
	if err := cbor.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("trace: unmarshal record: %w", err)
	}
	return &r, nil
}

// ---------------------------------------------------------------------------
// Streaming writer / reader
// ---------------------------------------------------------------------------

// Writer streams Records as zstd-compressed CBOR.
type Writer struct {
	zw  *zstd.Encoder
	enc *cbor.Encoder
}

// NewWriter creates a Writer over w. Close flushes the compressor; it does
// not close w.
func NewWriter(w io.Writer) (*Writer, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("trace: create zstd writer: %w", err)
	}
	return &Writer{zw: zw, enc: cborEncMode.NewEncoder(zw)}, nil
}

// Write appends one record to the stream.
func (w *Writer) Write(r Record) error {
	if err := w.enc.Encode(&r); err != nil {
		return fmt.Errorf("trace: encode record: %w", err)
	}
	return nil
}

// Close flushes and closes the compressed stream.
func (w *Writer) Close() error {
	return w.zw.Close()
}

// Reader streams Records back out of a compressed trace.
type Reader struct {
	zr  *zstd.Decoder
	dec *cbor.Decoder
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) (*Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("trace: create zstd reader: %w", err)
	}
	return &Reader{zr: zr, dec: cbor.NewDecoder(zr)}, nil
}

// Next returns the next record, or io.EOF at the end of the trace.
func (r *Reader) Next() (*Record, error) {
	var record Record
	if err := r.dec.Decode(&record); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("trace: decode record: %w", err)
	}
	return &record, nil
}

// Close releases the decompressor.
func (r *Reader) Close() {
	r.zr.Close()
}
