// Package output writes game reports and analysis results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteGame writes a game summary.
	WriteGame(report *GameReport) error

	// WriteAnalysis writes the analysis of one position.
	WriteAnalysis(line *AnalysisLine) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewReportWriter returns a JSON writer when jsonFormat is set and a
// text writer otherwise.
func NewReportWriter(w io.Writer, jsonFormat, showBoard bool) ReportWriter {
	if jsonFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, showBoard)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w         io.Writer
	showBoard bool
}

// NewTextWriter creates a new text writer. With showBoard set, game
// reports start with a diagram of the final position.
func NewTextWriter(w io.Writer, showBoard bool) *TextWriter {
	return &TextWriter{
		w:         w,
		showBoard: showBoard,
	}
}

// WriteGame writes the final position, status and any recommendation.
func (tw *TextWriter) WriteGame(r *GameReport) error {
	if tw.showBoard {
		if _, err := fmt.Fprintln(tw.w, r.Board); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw.w, "FEN: %s\n", r.FinalFEN); err != nil {
		return err
	}

	var err error
	switch {
	case r.Winner != "":
		_, err = fmt.Fprintf(tw.w, "Status: %s, %s wins\n", r.Status, r.Winner)
	case r.ToMove == "":
		_, err = fmt.Fprintf(tw.w, "Status: %s, draw\n", r.Status)
	default:
		_, err = fmt.Fprintf(tw.w, "Status: %s, %s to move\n", r.Status, r.ToMove)
	}
	if err != nil || r.BestMove == nil {
		return err
	}
	b := r.BestMove
	_, err = fmt.Fprintf(tw.w, "Best move: %s (score %d, depth %d, %d nodes)\n", b.Move, b.Score, b.Depth, b.Nodes)
	return err
}

// WriteAnalysis writes one tab-separated line: FEN, move, score, depth;
// or FEN and the error.
func (tw *TextWriter) WriteAnalysis(l *AnalysisLine) error {
	if l.Error != "" {
		_, err := fmt.Fprintf(tw.w, "%s\terror: %s\n", l.FEN, l.Error)
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%s\t%s\t%d\t%d\n", l.FEN, l.BestMove, l.Score, l.Depth)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput is the document written by JSONWriter.
type JSONOutput struct {
	Games    []*GameReport   `json:"games,omitempty"`
	Analysis []*AnalysisLine `json:"analysis,omitempty"`
}

// JSONWriter buffers reports and writes them as one JSON document on
// Flush or Close.
type JSONWriter struct {
	w   io.Writer
	out JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game report.
func (jw *JSONWriter) WriteGame(r *GameReport) error {
	jw.out.Games = append(jw.out.Games, r)
	return nil
}

// WriteAnalysis buffers an analysis line.
func (jw *JSONWriter) WriteAnalysis(l *AnalysisLine) error {
	jw.out.Analysis = append(jw.out.Analysis, l)
	return nil
}

// Flush writes all buffered reports as a JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.out.Games) == 0 && len(jw.out.Analysis) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&jw.out)

	// Clear buffer after writing
	jw.out = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
