package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/grimdork/climate/paths"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
	"github.com/Urethramancer/hack/internal/cli"
)

const prog = "hackrun"

type config struct {
	input  string
	cycles int
	ram    int
	from   int
	dump   bool
}

// This program loads a .hack (or .asm) program, runs it, and prints the
// registers and a window of RAM.
func main() {
	os.Exit(hackrun())
}

func hackrun() int {
	opt := arg.New(prog)
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "c", "cycles", "Maximum number of instructions to execute.", 100000, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "r", "ram", "Number of RAM words to print.", 16, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "", "from", "First RAM address to print.", 0, false, arg.VarInt, nil)
	opt.SetFlag(arg.GroupDefault, "d", "dump", "Pretty-print the final register state.")
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log verbosity, 0 to 2.", 0, false, arg.VarInt, nil)
	opt.SetPositional("INPUT", "Program in .hack text format, or .asm source.", "", true, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil && !errors.Is(err, arg.ErrNoArgs) {
		cli.Report(os.Stderr, prog, "", fmt.Errorf("%w: %w", cli.ErrArgument, err))
		return 1
	}

	cfg := config{
		input:  opt.GetPosString("INPUT"),
		cycles: opt.GetInt("cycles"),
		ram:    opt.GetInt("ram"),
		from:   opt.GetInt("from"),
		dump:   opt.GetBool("dump"),
	}
	if cfg.input == "" {
		cli.Report(os.Stderr, prog, "", fmt.Errorf("%w: missing INPUT file", cli.ErrArgument))
		opt.PrintHelp()
		return 1
	}

	cli.Logging(opt.GetInt("verbose"))
	defer glog.Flush()

	if err := run(cfg); err != nil {
		cli.Report(os.Stderr, prog, cfg.input, err)
		return 1
	}
	return 0
}

func run(cfg config) error {
	if cfg.from < 0 || cfg.ram < 0 || cfg.from+cfg.ram > cpu.RAMSize {
		return fmt.Errorf("%w: RAM window %d+%d is outside 0..%d", cli.ErrArgument, cfg.from, cfg.ram, cpu.RAMSize)
	}

	code, err := load(cfg.input)
	if err != nil {
		return err
	}

	c := cpu.New()
	c.LoadCode(code)
	n, err := c.Run(cfg.cycles)
	if err != nil {
		return err
	}
	glog.V(1).Infof("executed %d instructions, halted=%v", n, c.Halted)

	fmt.Printf("A=%d D=%d PC=%d cycles=%d", c.A, c.D, c.PC, c.Cycles)
	if c.Halted {
		fmt.Print(" (halted)")
	}
	fmt.Println()

	for addr := cfg.from; addr < cfg.from+cfg.ram; addr++ {
		fmt.Printf("RAM[%d] = %d\n", addr, int16(c.RAM[addr]))
	}

	if cfg.dump {
		pp.Println(c.Registers())
	}
	return nil
}

// load reads machine code, assembling it first when the input is .asm source.
func load(input string) ([]uint16, error) {
	if !paths.FileExists(input) {
		return nil, fmt.Errorf("%w: %s is not a file", cli.ErrIO, input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrIO, err)
	}

	if strings.EqualFold(filepath.Ext(input), ".asm") {
		return assembler.New().AssembleWords(assembler.Lines(string(data)))
	}
	return cpu.ParseProgram(string(data))
}
