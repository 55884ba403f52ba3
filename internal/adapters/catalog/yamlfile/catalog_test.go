package yamlfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/logger"
)

func TestDefault_SeedIsValid(t *testing.T) {
	items, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, items)

	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Luna", items[0].Name)
	assert.Equal(t, pets.AgeYoung, items[0].AgeCategory)
	assert.Equal(t, "Happy Paws Rescue", items[0].Shelter.Name)
	assert.True(t, items[0].Traits.GoodWithKids)

	for _, p := range items {
		assert.Contains(t, []pets.AgeCategory{pets.AgeYoung, pets.AgeAdult, pets.AgeSenior}, p.AgeCategory, "pet %s", p.ID)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"missing id":    "pets:\n  - name: A\n",
		"duplicate id":  "pets:\n  - id: a\n  - id: \" a \"\n",
		"unknown field": "pets:\n  - id: a\n    colour: brown\n",
		"bad yaml":      "pets: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	items, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type recordingTarget struct {
	mu    sync.Mutex
	items []pets.Pet
	calls int
}

func (r *recordingTarget) Replace(items []pets.Pet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	r.calls++
}

func (r *recordingTarget) snapshot() ([]pets.Pet, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items, r.calls
}

func TestWatcher_Reload_KeepsLastGoodCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pets:\n  - id: a\n    name: Ada\n"), 0o644))

	core, logs := observer.New(zapcore.DebugLevel)
	target := &recordingTarget{}
	w := NewWatcher(path, target, logger.NewFromZap(zap.New(core)))

	require.NoError(t, w.Reload())
	items, calls := target.snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 1, calls)

	require.NoError(t, os.WriteFile(path, []byte("pets:\n  - name: no id\n"), 0o644))
	assert.Error(t, w.Reload())

	items, calls = target.snapshot()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, 1, logs.FilterMessage("catalog reload failed; keeping previous catalog").Len())
}

func TestWatcher_Run_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pets:\n  - id: a\n"), 0o644))

	target := &recordingTarget{}
	w := NewWatcher(path, target, nil)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// escribir hasta que el watcher esté activo y recargue
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("pets:\n  - id: a\n  - id: b\n"), 0o644)
		items, _ := target.snapshot()
		return len(items) == 2
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
