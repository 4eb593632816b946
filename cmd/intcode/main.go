// intcode runs, disassembles and traces Intcode programs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/vm"
	"github.com/chazu/intcode/vm/trace"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	disassemble := flag.Bool("d", false, "Disassemble the program instead of running it")
	inputs := flag.String("in", "", "Comma-separated input values to buffer before running")
	traceFile := flag.String("t", "", "Write a compressed execution trace to this file")
	ascii := flag.Bool("ascii", false, "Run as an ASCII console (line input, character output)")
	verbose := flag.Bool("v", false, "Log every executed instruction")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: intcode [options] <program file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  intcode boost.txt -in 1       # Run with one buffered input\n")
		fmt.Fprintf(os.Stderr, "  intcode -d boost.txt          # Disassemble\n")
		fmt.Fprintf(os.Stderr, "  intcode -ascii adventure.txt  # Play a text adventure\n")
		fmt.Fprintf(os.Stderr, "  intcode -t run.trace day9.txt # Record an execution trace\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	program, err := vm.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *disassemble {
		fmt.Println(vm.Disassemble(program))
		return
	}

	machine := vm.NewMachine(program)
	for _, field := range splitInputs(*inputs) {
		var value int64
		if _, err := fmt.Sscanf(field, "%d", &value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad input value %q\n", field)
			os.Exit(1)
		}
		machine.Input(value)
	}

	closeTrace := func() {}
	if *traceFile != "" {
		closeTrace, err = attachTrace(machine, *traceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else if *verbose {
		machine.SetTracer(vm.LogTracer{})
	}

	if *ascii {
		runConsole(machine)
		closeTrace()
		return
	}

	for value := range machine.Outputs() {
		fmt.Println(value)
	}
	closeTrace()
	if machine.IsAwaitingInput() {
		fmt.Fprintln(os.Stderr, "Error: program needs more input (use -in)")
		os.Exit(1)
	}
}

func splitInputs(list string) []string {
	if list == "" {
		return nil
	}
	fields := strings.Split(list, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// runConsole drives the machine like a terminal: printable output goes to
// stdout, each input pause reads one line from stdin.
func runConsole(machine *vm.Machine) {
	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(machine.RunASCII())
		if machine.IsHalted() {
			return
		}
		if !stdin.Scan() {
			return
		}
		machine.InputLine(stdin.Text())
	}
}

func attachTrace(machine *vm.Machine, path string) (func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	writer, err := trace.NewWriter(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	machine.SetTracer(trace.NewRecorder(func(record trace.Record) {
		if err := writer.Write(record); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing trace: %v\n", err)
			os.Exit(1)
		}
	}))
	return func() {
		if err := writer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: closing trace: %v\n", err)
		}
		file.Close()
	}, nil
}
