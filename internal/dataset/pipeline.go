package dataset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/vocabclean/pkg/classify"
)

// DroppedRow records a row removed by the classifier.
type DroppedRow struct {
	Line   int          `json:"line"`
	Row    classify.Row `json:"row"`
	RuleID string       `json:"rule_id"`
	Reason string       `json:"reason"`
}

// Summary reports the outcome of a pipeline run.
// Read always equals Dropped + Kept; the header is not counted.
type Summary struct {
	Input       string         `json:"input,omitempty"`
	Output      string         `json:"output,omitempty"`
	Backup      string         `json:"backup,omitempty"`
	HeaderWidth int            `json:"header_width"`
	Read        int            `json:"read"`
	Dropped     int            `json:"dropped"`
	Kept        int            `json:"kept"`
	ByRule      map[string]int `json:"by_rule"`
	DroppedRows []DroppedRow   `json:"dropped_rows,omitempty"`
}

// Pipeline streams rows through a classifier.
type Pipeline struct {
	classifier  *classify.Classifier
	logger      *slog.Logger
	recordDrops bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for per-row debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDroppedRows makes the summary list every dropped row.
func WithDroppedRows(record bool) Option {
	return func(p *Pipeline) {
		p.recordDrops = record
	}
}

// NewPipeline creates a pipeline around the classifier.
func NewPipeline(c *classify.Classifier, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: c,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads a header and rows from r and writes the header and kept rows to w.
// Nothing is written when r has no header.
func (p *Pipeline) Run(r io.Reader, w io.Writer) (*Summary, error) {
	rd := NewReader(r)
	header, err := rd.ReadHeader()
	if err != nil {
		return nil, err
	}
	return p.Process(rd, header, NewWriter(w))
}

// Process writes header verbatim, then classifies every remaining row of rd
// against the header width and writes the kept rows, width-normalized.
func (p *Pipeline) Process(rd *Reader, header classify.Row, w *Writer) (*Summary, error) {
	width := len(header)
	sum := &Summary{
		HeaderWidth: width,
		ByRule:      make(map[string]int),
	}

	if err := w.Write(header); err != nil {
		return sum, fmt.Errorf("failed to write header: %w", err)
	}

	for {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("failed to read row: %w", err)
		}
		sum.Read++

		d := p.classifier.Classify(row, width)
		if d.Dropped() {
			sum.Dropped++
			sum.ByRule[d.RuleID]++
			line := rd.Line()
			p.logger.Debug("dropped row",
				slog.Int("line", line),
				slog.String("rule", d.RuleID),
				slog.String("reason", d.Reason),
				slog.String("id", row.Field(classify.FieldID)))
			if p.recordDrops {
				sum.DroppedRows = append(sum.DroppedRows, DroppedRow{
					Line:   line,
					Row:    row,
					RuleID: d.RuleID,
					Reason: d.Reason,
				})
			}
			continue
		}

		if err := w.Write(classify.NormalizeWidth(row, width)); err != nil {
			return sum, fmt.Errorf("failed to write row: %w", err)
		}
		sum.Kept++
	}

	p.logger.Info("filtered rows",
		slog.Int("read", sum.Read),
		slog.Int("dropped", sum.Dropped),
		slog.Int("kept", sum.Kept))

	return sum, nil
}
