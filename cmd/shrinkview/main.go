// Shrinkview shows the shrink trees of values given on the command line, and
// can search them for minimal values the way a property-based test runner
// does. It is a debugging aid for shrink tree combinators.
package main

import (
	"os"

	"github.com/pbtkit/shrinktree/pkg/prog"
	"github.com/pbtkit/shrinktree/pkg/treeview"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, &treeview.Program{}))
}
