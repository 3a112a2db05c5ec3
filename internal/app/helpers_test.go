package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// writeTemp writes content to name inside a fresh temp dir.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// setupAppTest builds an App whose output and logs are captured.
func setupAppTest(t *testing.T, cfg Config) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &SafeBuffer{}
	validated, err := NewConfig(cfg)
	require.NoError(t, err)
	a, err := NewApp(out, logs, validated)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("JSPCOMPILE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

func ptr[T any](v T) *T { return &v }
