package rclusterconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions("10.0.0.1:6379")
	assert.Equal(t, []string{"10.0.0.1:6379"}, opts.AddNodes)
	assert.Equal(t, defaultConnectTimeout, opts.ConnectTimeout)
	assert.Equal(t, defaultCommandTimeout, opts.CommandTimeout)
	assert.Equal(t, defaultMaxRetryCount, opts.MaxRetryCount)
}

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
add_nodes:
  - "10.0.0.1:6379"
  - "10.0.0.2:6379"
max_retry_count: 3
`), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1:6379", "10.0.0.2:6379"}, opts.AddNodes)
	assert.Equal(t, 3, opts.MaxRetryCount)
	assert.Equal(t, defaultConnectTimeout, opts.ConnectTimeout)
}

func TestLoadRejectsMissingSeeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("command_timeout: 1s\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadParsesDurations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
add_nodes: ["a:1"]
connect_timeout: 2s
command_timeout: 250ms
`), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, opts.ConnectTimeout)
	assert.Equal(t, 250*time.Millisecond, opts.CommandTimeout)
}

func TestValidateRequiresSeeds(t *testing.T) {
	opts := &Options{}
	assert.Error(t, opts.Validate())
	opts.AddNodes = []string{"a:1"}
	assert.NoError(t, opts.Validate())
}
