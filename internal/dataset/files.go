package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to a file name to form its backup path.
const BackupSuffix = ".bak"

// FileOptions configures FilterFile.
type FileOptions struct {
	Input  string
	Output string // empty or equal to Input means in-place

	// Backup copies the input to Input+BackupSuffix before an in-place run
	// and reads from the copy. Without it an in-place run writes a temporary
	// file and renames it over the input.
	Backup bool
}

// InPlace reports whether the run rewrites the input file.
func (o FileOptions) InPlace() bool {
	return o.Output == "" || filepath.Clean(o.Output) == filepath.Clean(o.Input)
}

// FilterFile runs the pipeline from one file to another, or in place.
// A missing input returns ErrInputNotFound and an input without a header
// returns ErrEmptyInput; in both cases no output file is written.
func (p *Pipeline) FilterFile(opts FileOptions) (*Summary, error) {
	if err := checkInput(opts.Input); err != nil {
		return nil, err
	}

	if !opts.InPlace() {
		sum, err := p.filterTo(opts.Input, opts.Output)
		if sum != nil {
			sum.Input, sum.Output = opts.Input, opts.Output
		}
		return sum, err
	}

	if opts.Backup {
		backup, err := Backup(opts.Input)
		if err != nil {
			return nil, err
		}
		p.logger.Info("backed up input", "path", opts.Input, "backup", backup)

		sum, err := p.filterTo(backup, opts.Input)
		if sum != nil {
			sum.Input, sum.Output, sum.Backup = opts.Input, opts.Input, backup
		}
		return sum, err
	}

	var sum *Summary
	err := ReplaceFile(opts.Input, func(w io.Writer) error {
		in, err := os.Open(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = in.Close() }()

		rd := NewReader(in)
		header, err := rd.ReadHeader()
		if err != nil {
			return err
		}
		sum, err = p.Process(rd, header, NewWriter(w))
		return err
	})
	if sum != nil {
		sum.Input, sum.Output = opts.Input, opts.Input
	}
	return sum, err
}

// filterTo streams src into a newly created dst. dst is only created once a
// header has been read from src.
func (p *Pipeline) filterTo(src, dst string) (*Summary, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	rd := NewReader(in)
	header, err := rd.ReadHeader()
	if err != nil {
		return nil, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	sum, err := p.Process(rd, header, NewWriter(out))
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close output: %w", cerr)
	}
	return sum, err
}

// checkInput maps a missing or unusable input path to a descriptive error.
func checkInput(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, fs.ErrNotExist)
	}
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input is a directory: %s", path)
	}
	return nil
}
