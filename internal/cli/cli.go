// Package cli holds the reporting and logging setup shared by the command-line tools.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/grimdork/climate/cfmt"

	"github.com/Urethramancer/hack/assembler"
)

var (
	// ErrArgument marks missing or invalid command-line input.
	ErrArgument = errors.New("invalid arguments")
	// ErrIO marks a failure to read input or write output.
	ErrIO = errors.New("i/o error")
)

// Logging sends glog output to stderr at the given verbosity.
func Logging(verbose int) {
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(verbose))
}

// Report prints err to w. Assembly errors are printed one per line, prefixed
// with the source name and line number and followed by the offending text.
func Report(w io.Writer, prog, source string, err error) {
	var list assembler.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			reportOne(w, prog, source, e)
		}
		return
	}

	reportOne(w, prog, source, err)
}

func reportOne(w io.Writer, prog, source string, err error) {
	var le *assembler.LineError
	if errors.As(err, &le) {
		fmt.Fprintf(w, "%s%s:%d:%s %v\n", cfmt.Bold, source, le.Line, cfmt.Reset, le.Err)
		fmt.Fprintf(w, "    %s%s%s\n", cfmt.Red, strings.TrimSpace(le.Text), cfmt.Reset)
		glog.V(1).Infof("%s:%d: %v", source, le.Line, le.Err)
		return
	}

	fmt.Fprintf(w, "%s%s:%s %v\n", cfmt.Bold, prog, cfmt.Reset, err)
}
