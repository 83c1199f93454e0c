package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/solid/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// missingConfig keeps tests away from the user's real config file.
func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestRoot_NoDemosIsSilent(t *testing.T) {
	out, err := execute(t, "--config", missingConfig(t))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_DIP(t *testing.T) {
	out, err := execute(t, "--config", missingConfig(t), "--demo", "dip")
	require.NoError(t, err)
	assert.Contains(t, out, "Toggling the switch.\nLight is On!\n")
}

func TestRoot_ConfigFileSelectsDemos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demos: [lsp]\nvariant: before\n"), 0644))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "violation: penguin fly")
	assert.NotContains(t, out, "swim")
}

func TestRoot_FlagBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`demos = ["lsp"]`+"\n"+`variant = "before"`), 0644))

	out, err := execute(t, "--config", path, "--variant", "after")
	require.NoError(t, err)
	assert.Contains(t, out, "Penguins can't fly, but they swim!")
	assert.NotContains(t, out, "violation")
}

func TestRoot_UnknownDemo(t *testing.T) {
	_, err := execute(t, "--config", missingConfig(t), "--demo", "kiss")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "\n"))
	assert.Contains(t, out, "dip  Dependency Inversion")
}

func TestArea(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"area", "rectangle", "3", "4"}, want: "12.000\n"},
		{args: []string{"area", "circle", "2"}, want: "12.566\n"},
		{args: []string{"area", "triangle", "3", "4"}, want: "6.000\n"},
		{args: []string{"area", "rectangle", "-3", "4"}, want: "-12.000\n"},
		{args: []string{"area", "circle", "-2"}, want: "12.566\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestArea_Errors(t *testing.T) {
	_, err := execute(t, "area", "hexagon", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownShape)

	_, err = execute(t, "area", "circle")
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)

	_, err = execute(t, "area", "circle", "wide")
	assert.Error(t, err)

	for _, dim := range []string{"NaN", "Inf", "-Inf"} {
		out, err := execute(t, "area", "circle", dim)
		assert.ErrorIs(t, err, domain.ErrInvalidDimensions, dim)
		assert.Empty(t, out, dim)
	}
}

func TestArea_Help(t *testing.T) {
	out, err := execute(t, "area", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Known shapes: circle, rectangle, triangle")
}

func TestRoot_DemoFlagBeatsEnvAll(t *testing.T) {
	t.Setenv("SOLID_ALL", "1")

	out, err := execute(t, "--config", missingConfig(t), "--demo", "dip")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "== "))
	assert.Contains(t, out, "(dip)")
}

func TestRoot_DemoFlagBeatsFileAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("all = true\n"), 0644))

	out, err := execute(t, "--config", path, "--demo", "dip")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "== "))
}

// syncBuffer lets the test read output while the watch loop writes it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRoot_WatchRerunsOnConfigChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`demos = ["dip"]`+"\n"), 0644))

	var stdout, stderr syncBuffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--config", path, "--watch", "--watch-debounce", "10ms"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "(dip)")
	}, 2*time.Second, 10*time.Millisecond)

	// Rewrite until the watcher is registered and picks the change up.
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(`demos = ["lsp"]`+"\n"), 0644); err != nil {
			return false
		}
		return strings.Contains(stdout.String(), "(lsp)")
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Contains(t, stdout.String(), "Penguins can't fly, but they swim!")
}
