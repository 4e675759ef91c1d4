// Package dataset reads, filters and writes pipe-delimited vocabulary files.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/vocabclean/pkg/classify"
)

// Delimiter separates fields in the dataset files.
const Delimiter = '|'

// Reader reads pipe-delimited rows, one row per physical line. Quotes have
// no special meaning and a blank line is a row with one empty field.
type Reader struct {
	br   *bufio.Reader
	line int
}

// NewReader creates a row reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadHeader reads the first row. It returns ErrEmptyInput when there is none.
func (r *Reader) ReadHeader() (classify.Row, error) {
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return header, nil
}

// Read returns the next row, or io.EOF when the input is exhausted.
// A final line without a terminator is still returned.
func (r *Reader) Read() (classify.Row, error) {
	line, err := r.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if line == "" && err != nil {
		return nil, io.EOF
	}
	r.line++

	body, _ := splitEOL(line)
	return classify.Row(strings.Split(body, string(Delimiter))), nil
}

// Line returns the input line of the most recently read row.
func (r *Reader) Line() int {
	return r.line
}

// Writer writes pipe-delimited rows verbatim, one per line. Every row goes
// straight to the underlying writer so output already written survives a
// later failure.
type Writer struct {
	w io.Writer
}

// NewWriter creates a row writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes one row followed by a newline.
func (w *Writer) Write(row classify.Row) error {
	_, err := io.WriteString(w.w, strings.Join(row, string(Delimiter))+"\n")
	return err
}
