package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FixResult reports the outcome of a trailing-delimiter cleanup.
type FixResult struct {
	Path    string `json:"path"`
	Backup  string `json:"backup,omitempty"`
	Lines   int    `json:"lines"`
	Changed int    `json:"changed"`
}

// StripTrailingDelimiters copies r to w, removing every run of trailing
// delimiters at the end of each line. Line terminators are preserved.
func StripTrailingDelimiters(r io.Reader, w io.Writer) (lines, changed int, err error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return lines, changed, fmt.Errorf("failed to read line %d: %w", lines+1, rerr)
		}
		if line == "" && rerr != nil {
			break
		}
		lines++

		body, eol := splitEOL(line)
		trimmed := strings.TrimRight(body, string(Delimiter))
		if trimmed != body {
			changed++
		}
		if _, err := bw.WriteString(trimmed + eol); err != nil {
			return lines, changed, err
		}

		if rerr != nil {
			break
		}
	}
	return lines, changed, bw.Flush()
}

// FixFile strips trailing delimiters from path in place. With backup set
// the original is first copied to path+BackupSuffix and read from there.
func FixFile(path string, backup bool) (*FixResult, error) {
	if err := checkInput(path); err != nil {
		return nil, err
	}
	res := &FixResult{Path: path}

	if !backup {
		err := ReplaceFile(path, func(w io.Writer) error {
			in, err := os.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()
			res.Lines, res.Changed, err = StripTrailingDelimiters(in, w)
			return err
		})
		return res, err
	}

	bak, err := Backup(path)
	if err != nil {
		return nil, err
	}
	res.Backup = bak

	in, err := os.Open(bak)
	if err != nil {
		return res, fmt.Errorf("failed to open backup: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(path)
	if err != nil {
		return res, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	res.Lines, res.Changed, err = StripTrailingDelimiters(in, out)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return res, err
}

func splitEOL(line string) (body, eol string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}
