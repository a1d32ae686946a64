package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/grimdork/climate/cfmt"
	"github.com/grimdork/climate/env"
	"github.com/grimdork/climate/human"
	"github.com/grimdork/climate/paths"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/internal/atomicfile"
	"github.com/Urethramancer/hack/internal/cli"
)

const prog = "hackasm"

type config struct {
	source    string
	out       string
	keepGoing bool
	symbols   bool
}

func main() {
	os.Exit(hackasm())
}

func hackasm() int {
	opt := arg.New(prog)
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "out", "Output file. Defaults to SOURCE with a .hack extension.", "", false, arg.VarString, nil)
	opt.SetFlag(arg.GroupDefault, "k", "keep-going", "Report every error instead of stopping at the first.")
	opt.SetFlag(arg.GroupDefault, "s", "symbols", "Print the symbol table after assembly.")
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log verbosity, 0 to 2.", 0, false, arg.VarInt, nil)
	opt.SetPositional("SOURCE", "Hack assembly source file.", "", true, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil && !errors.Is(err, arg.ErrNoArgs) {
		cli.Report(os.Stderr, prog, "", fmt.Errorf("%w: %w", cli.ErrArgument, err))
		return 1
	}

	cfg := config{
		source:    opt.GetPosString("SOURCE"),
		out:       opt.GetString("out"),
		keepGoing: opt.GetBool("keep-going"),
		symbols:   opt.GetBool("symbols"),
	}
	if cfg.source == "" {
		cli.Report(os.Stderr, prog, "", fmt.Errorf("%w: missing SOURCE file", cli.ErrArgument))
		opt.PrintHelp()
		return 1
	}

	cli.Logging(opt.GetInt("verbose"))
	defer glog.Flush()

	if err := run(cfg); err != nil {
		cli.Report(os.Stderr, prog, cfg.source, err)
		return 1
	}
	return 0
}

// run assembles cfg.source and writes the result. Nothing is written when assembly fails.
func run(cfg config) error {
	if paths.DirExists(cfg.source) {
		return fmt.Errorf("%w: %s is a directory", cli.ErrIO, cfg.source)
	}

	data, err := os.ReadFile(cfg.source)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrIO, err)
	}

	asm := assembler.New()
	asm.KeepGoing = cfg.keepGoing
	code, err := asm.Assemble(string(data))
	if err != nil {
		return err
	}

	if cfg.symbols {
		pp.Println(asm.Symbols().Symbols())
	}

	text := assembler.Text(code)
	out := outputPath(cfg)
	if filepath.Clean(out) == filepath.Clean(cfg.source) {
		return fmt.Errorf("%w: output would overwrite %s", cli.ErrArgument, cfg.source)
	}
	if err := atomicfile.WriteFile(out, []byte(text), 0644); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrIO, err)
	}

	glog.V(1).Infof("wrote %s", out)
	cfmt.Print("%green Assembled%reset: " + fmt.Sprintf("%d instructions (%s) to %s",
		len(code), human.UInt(uint64(len(text)), false), out))
	return nil
}

// outputPath picks the output file: the -o option, else SOURCE renamed to .hack,
// moved into $HACKASM_OUTDIR when that is set.
func outputPath(cfg config) string {
	if cfg.out != "" {
		return cfg.out
	}

	name := strings.TrimSuffix(cfg.source, filepath.Ext(cfg.source)) + ".hack"
	if dir := env.Get("HACKASM_OUTDIR", ""); dir != "" {
		return filepath.Join(dir, filepath.Base(name))
	}
	return name
}
