// Package vm implements the Intcode virtual machine.
//
// This package contains:
//   - Program parsing from comma-separated source text
//   - Opcode and addressing-mode decoding
//   - The resumable decode/execute loop with its three pause conditions
//     (halt, input starvation, output produced)
//   - Growable zero-filled memory
//   - A disassembler and an execution tracing hook
package vm
