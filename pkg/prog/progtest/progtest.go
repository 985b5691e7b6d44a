// Package progtest contains utilities for testing [prog.Program]
// implementations by running them with captured output.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pbtkit/shrinktree/pkg/prog"
)

// Name is the program name passed as the first argument to [prog.Run].
const Name = "shrinkview"

// Case is a test case to be used in Test.
type Case struct {
	args      []string
	ttyStdout bool
	want      result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func quote(s string) string {
	if s == "" {
		return "empty text"
	}
	return "\n" + s
}

// ThatShrinkview returns a new Case with the specified CLI arguments.
//
// The new Case expects the program to exit with 0 and write nothing to
// stdout and stderr; use the methods of Case to change the expectations.
func ThatShrinkview(args ...string) Case {
	return Case{args: append([]string{Name}, args...)}
}

// WithTTYStdout returns an altered Case that connects the stdout of the
// program to a pseudo-terminal. Carriage returns the terminal inserts before
// newlines are removed from the captured output. On platforms without
// pseudo-terminals, the case is skipped.
func (c Case) WithTTYStdout() Case {
	c.ttyStdout = true
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatShrinkview("-log", "log").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to return with
// the specified exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the specified text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{s, false}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the specified text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{s, true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the specified text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{s, false}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the specified text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{s, true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r, err := run(p, c)
			if err != nil {
				if c.ttyStdout {
					t.Skip("cannot set up pseudo-terminal:", err)
				}
				t.Fatal(err)
			}
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %v, want %v", r.stdout, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %v, want %v", r.stderr, c.want.stderr)
			}
		})
	}
}

// Run runs a program with the given arguments, and returns its exit code,
// stdout and stderr. It is useful for tests that need to inspect the output
// in ways not covered by Test.
func Run(p prog.Program, args ...string) (int, string, string, error) {
	r, err := run(p, ThatShrinkview(args...))
	return r.exitCode, r.stdout.content, r.stderr.content, err
}

func run(p prog.Program, c Case) (result, error) {
	stdin, err := os.Open(os.DevNull)
	if err != nil {
		return result{}, err
	}
	defer stdin.Close()

	var r1, w1 *os.File
	if c.ttyStdout {
		r1, w1, err = openTTY()
	} else {
		r1, w1, err = os.Pipe()
	}
	if err != nil {
		return result{}, err
	}
	defer r1.Close()
	r2, w2, err := os.Pipe()
	if err != nil {
		w1.Close()
		return result{}, err
	}
	defer r2.Close()

	// Read concurrently so that programs writing more than a pipe buffer
	// don't block.
	stdout, stderr := readAll(r1), readAll(r2)
	exitCode := prog.Run([3]*os.File{stdin, w1, w2}, c.args, p)
	w1.Close()
	w2.Close()

	out := <-stdout
	if c.ttyStdout {
		out = strings.ReplaceAll(out, "\r\n", "\n")
	}
	return result{exitCode, output{content: out}, output{content: <-stderr}}, nil
}

func readAll(r io.Reader) <-chan string {
	ch := make(chan string, 1)
	go func() {
		// Reading from a pseudo-terminal whose other end has been closed
		// errors with EIO; whatever was read before that is still useful.
		data, _ := io.ReadAll(r)
		ch <- string(data)
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
