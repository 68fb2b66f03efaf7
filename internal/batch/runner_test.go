package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS returns an in-memory file system holding files.
func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestRunner_ErrorIsolation(t *testing.T) {
	fs := memFS(t, map[string]string{
		"a.py": "class A:\n    pass\n",
		"b.py": "def broken(:\n    pass\n",
		"c.py": "def c():\n    pass\n",
	})

	results := NewRunner(fs, 2, nil).Run(context.Background(), []string{"a.py", "b.py", "c.py"})
	require.Len(t, results, 3)

	assert.Equal(t, "a.py", results[0].FilePath)
	assert.Empty(t, results[0].ParseError)
	require.Len(t, results[0].Classes, 1)
	assert.Equal(t, "A", results[0].Classes[0].Name)

	assert.Equal(t, "b.py", results[1].FilePath)
	assert.Contains(t, results[1].ParseError, "Syntax error at line 1")
	assert.Empty(t, results[1].Functions)

	assert.Equal(t, "c.py", results[2].FilePath)
	assert.Empty(t, results[2].ParseError)
	require.Len(t, results[2].Functions, 1)
	assert.Equal(t, "c", results[2].Functions[0].Name)
}

func TestRunner_MissingFile(t *testing.T) {
	fs := memFS(t, map[string]string{"ok.py": "import os\n"})

	results := NewRunner(fs, 0, nil).Run(context.Background(), []string{"missing.py", "ok.py"})
	require.Len(t, results, 2)

	assert.Equal(t, "missing.py", results[0].FilePath)
	assert.Contains(t, results[0].ParseError, "read missing.py")
	assert.NotNil(t, results[0].Imports)

	assert.Empty(t, results[1].ParseError)
	assert.Len(t, results[1].Imports, 1)
}

func TestRunner_PreservesInputOrder(t *testing.T) {
	files := make(map[string]string)
	var paths []string
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("m%02d.py", i)
		files[name] = fmt.Sprintf("def f%d():\n    pass\n", i)
		paths = append(paths, name)
	}
	// Duplicates get their own slot.
	paths = append(paths, "m00.py")

	results := NewRunner(memFS(t, files), 8, nil).Run(context.Background(), paths)
	require.Len(t, results, len(paths))
	for i, path := range paths {
		assert.Equal(t, path, results[i].FilePath)
		require.Len(t, results[i].Functions, 1)
	}
	assert.Equal(t, "f0", results[len(paths)-1].Functions[0].Name)
}

func TestRunner_CanceledContext(t *testing.T) {
	fs := memFS(t, map[string]string{"a.py": "x = 1\n", "b.py": "y = 2\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewRunner(fs, 1, nil).Run(ctx, []string{"a.py", "b.py"})
	require.Len(t, results, 2)
	for i, path := range []string{"a.py", "b.py"} {
		assert.Equal(t, path, results[i].FilePath)
		assert.Equal(t, context.Canceled.Error(), results[i].ParseError)
	}
}

func TestRunner_EmptyInput(t *testing.T) {
	results := NewRunner(afero.NewMemMapFs(), 4, nil).Run(context.Background(), nil)
	assert.Empty(t, results)
}

func TestRunner_ProgressEvents(t *testing.T) {
	fs := memFS(t, map[string]string{"good.py": "x = 1\n", "bad.py": "def (:\n"})

	var mu sync.Mutex
	byPath := make(map[string][]Status)
	onProgress := func(ev ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		byPath[ev.Path] = append(byPath[ev.Path], ev.Status)
	}

	NewRunner(fs, 2, onProgress).Run(context.Background(), []string{"good.py", "bad.py"})

	assert.Equal(t, []Status{StatusPending, StatusWorking, StatusComplete}, byPath["good.py"])
	assert.Equal(t, []Status{StatusPending, StatusWorking, StatusDegraded}, byPath["bad.py"])
}

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		ev   ProgressEvent
		want string
	}{
		{ProgressEvent{Path: "a.py", Status: StatusPending}, "  ○ a.py (pending)"},
		{ProgressEvent{Path: "a.py", Status: StatusWorking}, "  ● a.py..."},
		{ProgressEvent{Path: "a.py", Status: StatusComplete}, "  ✓ a.py"},
		{ProgressEvent{Path: "a.py", Status: StatusDegraded, Message: "boom"}, "  ✗ a.py: boom"},
		{ProgressEvent{Path: "a.py", Status: "weird"}, "  ? a.py (unknown status)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.ev.Status), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProgress(tt.ev))
		})
	}
}
