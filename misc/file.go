package misc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile replaces fileName with contents. See WriteFileWith.
func WriteFile(fileName string, contents []byte) (int, error) {
	var bytesWritten int
	err := WriteFileWith(fileName, func(w io.Writer) error {
		var err error
		bytesWritten, err = w.Write(contents)
		return err
	})
	return bytesWritten, err
}

// WriteFileWith streams write into a temporary file next to fileName and renames it into place once write and
// close both succeed, so fileName never holds a partial file.
func WriteFileWith(fileName string, write func(w io.Writer) error) error {
	if fileName == "" {
		return errors.New("no filename supplied")
	}
	// create a temporary file in the target directory so the rename stays on one filesystem
	file, err := os.CreateTemp(filepath.Dir(fileName), "."+filepath.Base(fileName)+".*")
	if err != nil {
		return fmt.Errorf("unable to create file %s - %w", fileName, err)
	}
	tempName := file.Name()
	// write contents to open file
	if err := write(file); err != nil {
		file.Close()
		os.Remove(tempName)
		return fmt.Errorf("unable to write file %s - %w", fileName, err)
	}
	// close file
	if err := file.Close(); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("unable to close file %s - %w", fileName, err)
	}
	if err := os.Rename(tempName, fileName); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("unable to move file into %s - %w", fileName, err)
	}
	return nil
}
