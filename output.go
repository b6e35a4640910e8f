package xlsx2json

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/signadot/xlsx2json/encode"
	"github.com/signadot/xlsx2json/validate"
)

// StdoutDir is the output directory that sends documents to standard
// output.
const StdoutDir = "-"

// Output writes built documents.
type Output struct {
	// Dir receives <stem>.json and, when there are validation errors,
	// <stem>.error.log.
	Dir string

	// Stdout receives documents when Dir is StdoutDir.
	Stdout io.Writer
	// Colors, if set, colors documents written to Stdout and diffs.
	Colors *encode.Colors

	// Diff reports what a document changes in an existing output file
	// before overwriting it.
	Diff bool
	// DiffOut receives the line diff when Diff is set.
	DiffOut io.Writer

	Log *slog.Logger
}

func (o *Output) log() *slog.Logger {
	if o.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Log
}

// Path returns where the document named stem is written, or "" for
// standard output.
func (o *Output) Path(stem string) string {
	if o.Dir == StdoutDir {
		return ""
	}
	return filepath.Join(o.Dir, stem+".json")
}

// Write writes res as the document named stem.  Validation errors are
// logged and, unless writing to standard output, written to the error
// log.  The document itself is written whether or not it is valid.
func (o *Output) Write(stem string, res *Result) error {
	log := o.log()
	for _, e := range res.Errors {
		log.Warn("validation error", "document", stem, "error", e.String())
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(res.Doc, buf); err != nil {
		return fmt.Errorf("%w %s: %w", ErrOutput, stem, err)
	}
	if o.Dir == StdoutDir {
		return o.writeStdout(stem, res, buf.Bytes())
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	p := o.Path(stem)
	if o.Diff {
		o.diff(p, buf.Bytes())
	}
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	log.Info("wrote document", "path", p)
	lp, err := validate.WriteLog(o.Dir, stem, res.Errors)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if lp != "" {
		log.Info("wrote validation errors", "path", lp, "count", len(res.Errors))
	}
	return nil
}

func (o *Output) writeStdout(stem string, res *Result, d []byte) error {
	w := o.Stdout
	if w == nil {
		w = os.Stdout
	}
	if o.Colors == nil {
		_, err := w.Write(d)
		return err
	}
	if err := encode.Encode(res.Doc, w, encode.EncodeColors(o.Colors)); err != nil {
		return fmt.Errorf("%w %s: %w", ErrOutput, stem, err)
	}
	return nil
}

// diff logs the changes from the file at p to d.  A missing or unreadable
// previous file is not an error.
func (o *Output) diff(p string, d []byte) {
	log := o.log()
	prev, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("new document", "path", p)
		return
	}
	if err != nil {
		log.Warn("cannot read previous output", "path", p, "error", err)
		return
	}
	patch, err := encode.Changes(prev, d)
	if err != nil {
		log.Warn("cannot compare with previous output", "path", p, "error", err)
		return
	}
	if patch == nil {
		log.Info("document unchanged", "path", p)
		return
	}
	log.Info("document changed", "path", p, "merge-patch", string(patch))
	if o.DiffOut != nil {
		fmt.Fprint(o.DiffOut, encode.Diff(prev, d, o.Colors))
	}
}
