package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/formal/internal/types"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigPartial(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "formal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 5\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, config.Iterations)
	assert.Equal(t, "formal", config.Name)
	assert.Equal(t, uint64(1), config.Seed)
	assert.NotNil(t, config.Rules)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "formal.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown key":      "iteratons: 5\n",
		"unknown severity": "rules:\n  point-lemma:\n    severity: loud\n",
		"malformed":        "rules: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "formal.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "formal.yaml")
	config := DefaultConfig()
	config.Seed = 42
	config.FailFast = true
	config.Rules["account-withdraw"] = tt.ConfigRule{Severity: tt.SeverityWarning, Iterations: 200}
	config.Rules["point-lemma"] = tt.ConfigRule{Severity: tt.SeverityOff}

	require.NoError(t, WriteConfig(path, config))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
