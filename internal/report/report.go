// Package report renders extraction results as the JSON document printed on
// stdout.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gitlab.com/tozd/go/errors"

	"github.com/dusk-indust/archpy/internal/extract"
)

// ErrNoPaths is the batch input error reported when no file was given.
var ErrNoPaths = errors.Base("No file paths provided")

// Report is the top-level success document.
type Report struct {
	Files []extract.SourceFile `json:"files"`
}

// Write encodes files as {"files": [...]} indented by two spaces.
func Write(w io.Writer, files []extract.SourceFile) error {
	if files == nil {
		files = []extract.SourceFile{}
	}
	return encode(w, Report{Files: files})
}

// WriteError writes err as a single-line {"error": "..."} document.
func WriteError(w io.Writer, err error) error {
	var msg bytes.Buffer
	if encErr := newEncoder(&msg).Encode(err.Error()); encErr != nil {
		return errors.Errorf("encode error report: %w", encErr)
	}
	_, werr := fmt.Fprintf(w, "{\"error\": %s}\n", bytes.TrimRight(msg.Bytes(), "\n"))
	if werr != nil {
		return errors.Errorf("write error report: %w", werr)
	}
	return nil
}

func encode(w io.Writer, v any) error {
	enc := newEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Errorf("encode report: %w", err)
	}
	return nil
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
