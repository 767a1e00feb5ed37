// Released under an MIT license. See LICENSE.

// Package history loads and saves the line editor's history file.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const name = ".bs_history"

// Load calls read with the history file. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Save calls write with a newly truncated history file.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

//nolint:gochecknoglobals
var home = os.UserHomeDir

func file(op func(string) (*os.File, error)) (*os.File, error) {
	dir, err := home()
	if err != nil {
		return nil, err
	}

	return op(filepath.Join(dir, name))
}
