package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/project")
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
	assert.True(t, cfg.Color())
}

func TestLoad_YML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/archpy.yml", []byte(`
workers: 4
verbose: true
logColor: false
mcpAddr: localhost:8080
`), 0o644))

	cfg, err := Load(fs, "/project")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Color())
	assert.Equal(t, "localhost:8080", cfg.MCPAddr)
}

func TestLoad_YAMLFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/archpy.yaml", []byte("mcpAddr: stdio\n"), 0o644))

	cfg, err := Load(fs, "/project")
	require.NoError(t, err)
	assert.Equal(t, "stdio", cfg.MCPAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative workers", "workers: -1\n", "invalid"},
		{"too many workers", "workers: 5000\n", "invalid"},
		{"bad mcp address", "mcpAddr: not an address\n", "invalid"},
		{"malformed yaml", "workers: [1\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/p/archpy.yml", []byte(tt.content), 0o644))

			_, err := Load(fs, "/p")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
