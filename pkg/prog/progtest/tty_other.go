//go:build !unix

package progtest

import (
	"errors"
	"os"
)

func openTTY() (*os.File, *os.File, error) {
	return nil, nil, errors.New("pseudo-terminals not supported")
}
