package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/grimdork/climate/paths"

	"github.com/Urethramancer/hack/cpu"
	"github.com/Urethramancer/hack/disassembler"
	"github.com/Urethramancer/hack/internal/atomicfile"
	"github.com/Urethramancer/hack/internal/cli"
)

const prog = "hackdis"

func main() {
	os.Exit(hackdis())
}

func hackdis() int {
	opt := arg.New(prog)
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "out", "Write the listing to a file instead of stdout.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log verbosity, 0 to 2.", 0, false, arg.VarInt, nil)
	opt.SetPositional("INPUT", "Machine code in .hack text format.", "", true, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil && !errors.Is(err, arg.ErrNoArgs) {
		cli.Report(os.Stderr, prog, "", fmt.Errorf("%w: %w", cli.ErrArgument, err))
		return 1
	}

	input := opt.GetPosString("INPUT")
	if input == "" {
		cli.Report(os.Stderr, prog, "", fmt.Errorf("%w: missing INPUT file", cli.ErrArgument))
		opt.PrintHelp()
		return 1
	}

	cli.Logging(opt.GetInt("verbose"))
	defer glog.Flush()

	text, err := disassemble(input)
	if err != nil {
		cli.Report(os.Stderr, prog, input, err)
		return 1
	}

	out := opt.GetString("out")
	if out == "" {
		fmt.Print(text)
		return 0
	}

	if err := atomicfile.WriteFile(out, []byte(text), 0644); err != nil {
		cli.Report(os.Stderr, prog, input, fmt.Errorf("%w: %w", cli.ErrIO, err))
		return 1
	}
	fmt.Printf("Disassembly written to %s\n", out)
	return 0
}

func disassemble(input string) (string, error) {
	if !paths.FileExists(input) {
		return "", fmt.Errorf("%w: %s is not a file", cli.ErrIO, input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", cli.ErrIO, err)
	}

	code, err := cpu.ParseProgram(string(data))
	if err != nil {
		return "", err
	}
	glog.V(1).Infof("%s: %d words", input, len(code))

	return disassembler.Disassemble(code)
}
