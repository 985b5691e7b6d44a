// Package prog provides the entry point for command-line programs. It parses
// flags common to all programs, sets up logging, and translates errors
// returned by a Program to exit statuses.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pbtkit/shrinktree/pkg/logutil"
)

// Version identifies the version of the programs.
const Version = "v0.1.0"

// Program represents a program run by Run.
type Program interface {
	// RegisterFlags registers the flags specific to the program.
	RegisterFlags(fs *FlagSet)
	// Run runs the program with the non-flag arguments.
	Run(fds [3]*os.File, args []string) error
}

type commonFlags struct {
	log           string
	help, version bool
}

func newFlagSet(name string, f *commonFlags) *FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.log, "log", "", "a file to write debug log to")
	fs.BoolVar(&f.help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.version, "version", false, "show version and quit")
	return &FlagSet{FlagSet: fs}
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintf(out, "Usage: %s [flags] [args]\n", fs.Name())
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &commonFlags{}
	fs := newFlagSet(filepath.Base(args[0]), f)
	p.RegisterFlags(fs)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. We define -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.log != "" {
		err = logutil.SetOutputFile(f.log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.help {
		usage(fds[1], fs)
		return 0
	}
	if f.version {
		fmt.Fprintln(fds[1], Version)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.exit
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	if errors.As(err, &badUsage) {
		usage(fds[2], fs)
	}
	return 2
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
