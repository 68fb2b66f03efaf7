package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/dusk-indust/archpy/internal/extract"
)

func TestWrite_Shape(t *testing.T) {
	f := extract.New().Extract(context.Background(), "svc.py", []byte(
		"class Store(Protocol):\n    def get(self) -> bytes: ...\n"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []extract.SourceFile{f}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"files\": [\n    {\n      \"filePath\": \"svc.py\","), out)
	assert.Contains(t, out, `"definition": "{get() -> bytes}"`, "arrows are not HTML escaped")
	assert.NotContains(t, out, "parseError")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.JSONEq(t, `{"files": []}`, buf.String())
}

func TestWrite_ParseError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []extract.SourceFile{extract.Failed("x.py", ErrNoPaths)}))
	assert.Contains(t, buf.String(), `"parseError": "No file paths provided"`)
	assert.Contains(t, buf.String(), `"classes": []`)
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, ErrNoPaths))
	assert.Equal(t, "{\"error\": \"No file paths provided\"}\n", buf.String())
}

func TestWriteError_EscapesMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, errors.New(`bad "path" <x>`)))
	assert.Equal(t, "{\"error\": \"bad \\\"path\\\" <x>\"}\n", buf.String())
}
