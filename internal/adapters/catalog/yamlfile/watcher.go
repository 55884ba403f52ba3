package yamlfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/metrics"
	"pet-adoption/internal/platform/logger"
)

// Replacer recibe el catálogo recargado (memory.PetRepo lo implementa).
type Replacer interface {
	Replace(items []pets.Pet)
}

// Watcher recarga el archivo de catálogo cuando cambia en disco. Si el nuevo
// contenido no parsea, se loguea y se conserva el último catálogo válido.
type Watcher struct {
	path     string
	target   Replacer
	log      logger.Logger
	debounce time.Duration
}

func NewWatcher(path string, target Replacer, log logger.Logger) *Watcher {
	if log == nil {
		log = logger.NewNop()
	}
	path = filepath.Clean(path)
	return &Watcher{
		path:     path,
		target:   target,
		log:      log.With(map[string]any{"component": "catalog_watcher", "path": path}),
		debounce: 200 * time.Millisecond, // los editores suelen disparar varias escrituras seguidas
	}
}

// Run bloquea hasta que ctx se cancela. Se vigila el directorio y no el
// archivo para sobrevivir a editores que reemplazan el archivo con rename.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("catalog watcher: watch %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching catalog file", nil)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("catalog watcher error", map[string]any{"err": err})

		case <-fire:
			fire = nil
			_ = w.Reload()
		}
	}
}

// Reload relee el archivo y, si es válido, reemplaza el catálogo.
func (w *Watcher) Reload() error {
	items, err := LoadFile(w.path)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		w.log.Error("catalog reload failed; keeping previous catalog", map[string]any{"err": err})
		return err
	}

	w.target.Replace(items)
	metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	w.log.Info("catalog reloaded", map[string]any{"pets": len(items)})
	return nil
}
