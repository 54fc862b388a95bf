package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// readSource reads path, or in when path is "-". A missing file reads as
// empty so that edit can create it.
func readSource(path string, in io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(data), nil
}

func writeSource(path, text string) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	return errors.Wrapf(os.WriteFile(path, []byte(text), mode), "failed to write %s", path)
}
