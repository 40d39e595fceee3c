package hotreload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/glsamples/content"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAsset struct {
	sources []string
	err     error
	calls   int
}

func (f *fakeAsset) Sources() []string { return f.sources }

func (f *fakeAsset) Reload() error {
	f.calls++
	return f.err
}

func setup(t *testing.T) (string, *Watcher) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "effects"), 0o755))
	for _, name := range []string{"a.vert", "a.frag", "b.frag"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "effects", name), []byte("// v1"), 0o644))
	}

	w, err := New(content.Open(dir))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return dir, w
}

func start(t *testing.T, w *Watcher) {
	t.Helper()
	g := game.New(nil)
	g.Register(w)
	require.NoError(t, g.Initialize())
}

func TestReloadOnChange(t *testing.T) {
	dir, w := setup(t)

	a := &fakeAsset{sources: []string{"effects/a.vert", "effects/a.frag"}}
	b := &fakeAsset{sources: []string{"effects/b.frag"}}
	require.NoError(t, w.Watch(a))
	require.NoError(t, w.Watch(b))
	start(t, w)

	w.Update(gametime.GameTime{})
	assert.Zero(t, a.calls, "nothing changed yet")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "effects", "a.frag"), []byte("// v2"), 0o644))

	require.Eventually(t, func() bool {
		w.Update(gametime.GameTime{})
		return a.calls > 0
	}, 5*time.Second, 10*time.Millisecond)

	assert.Zero(t, b.calls, "unrelated asset is not reloaded")
	assert.Equal(t, a.calls, w.Reloads())
}

func TestFailedReloadIsNotCounted(t *testing.T) {
	dir, w := setup(t)

	broken := &fakeAsset{sources: []string{"effects/b.frag"}, err: errors.New("compile failed")}
	require.NoError(t, w.Watch(broken))
	start(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "effects", "b.frag"), []byte("broken"), 0o644))

	require.Eventually(t, func() bool {
		w.Update(gametime.GameTime{})
		return broken.calls > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Zero(t, w.Reloads())
}

func TestWatchErrors(t *testing.T) {
	_, err := New(content.Embedded())
	assert.ErrorIs(t, err, ErrEmbedded)

	_, w := setup(t)
	err = w.Watch(&fakeAsset{sources: []string{"missing/x.vert"}})
	assert.Error(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "close is idempotent")
}
