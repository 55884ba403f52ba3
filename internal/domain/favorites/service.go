package favorites

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-adoption/internal/metrics"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/kv"
)

// DefaultKey es la clave bajo la que se persiste el set de favoritos.
const DefaultKey = "bolt_favorites"

type Options struct {
	// Clave del registro en el kv.Store. Vacío = DefaultKey.
	Key string

	// Timeout por operación. 0 = sin timeout: un storage colgado cuelga la llamada.
	Timeout time.Duration

	// OnFault recibe cada falla de persistencia enmascarada (además del log).
	OnFault func(*Fault)
}

// Service es el store de favoritos: un set ordenado de pet IDs persistido como
// un único array JSON en un kv.Store.
//
// Política fail-open: ninguna operación devuelve error. Las fallas se loguean,
// se reportan a OnFault y se sustituyen por un default seguro (set vacío en
// lecturas, no-op en escrituras).
//
// Las mutaciones (Add/Remove/Toggle) corren serializadas dentro de un mismo
// Service, así que read-modify-write nunca se intercalan.
type Service struct {
	store   kv.Store
	log     logger.Logger
	key     string
	timeout time.Duration
	onFault func(*Fault)

	mu      sync.Mutex
	version uint64

	subs subscribers
}

func NewService(store kv.Store, log logger.Logger, opts Options) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	key := strings.TrimSpace(opts.Key)
	if key == "" {
		key = DefaultKey
	}
	return &Service{
		store:   store,
		log:     log.With(map[string]any{"component": "favorites", "key": key}),
		key:     key,
		timeout: opts.Timeout,
		onFault: opts.OnFault,
		subs:    subscribers{fns: map[int]func(Change){}},
	}
}

// Key devuelve la clave de persistencia en uso.
func (s *Service) Key() string { return s.key }

// List devuelve un snapshot de los favoritos, en orden de inserción.
// Sin registro, o ante cualquier falla, devuelve un slice vacío.
func (s *Service) List(ctx context.Context) []string {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	ids, f := s.read(ctx, OpList)
	if f != nil {
		s.fault(f)
		s.done(OpList, false)
		return []string{}
	}
	s.done(OpList, true)
	return ids
}

// IsFavorite lee el set actual y testea membresía. Falla = false.
func (s *Service) IsFavorite(ctx context.Context, petID string) bool {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	ids, f := s.read(ctx, OpCheck)
	if f != nil {
		s.fault(f)
		s.done(OpCheck, false)
		return false
	}
	s.done(OpCheck, true)
	return contains(ids, petID)
}

// Add agrega petID al final si no está. Si ya está, no escribe nada.
func (s *Service) Add(ctx context.Context, petID string) {
	s.mutate(ctx, OpAdd, petID, func(ids []string) ([]string, bool) {
		if contains(ids, petID) {
			return ids, false
		}
		return append(ids, petID), true
	})
}

// Remove quita todas las ocurrencias de petID y escribe siempre, aunque no estuviera.
func (s *Service) Remove(ctx context.Context, petID string) {
	s.mutate(ctx, OpRemove, petID, func(ids []string) ([]string, bool) {
		return without(ids, petID), true
	})
}

// Toggle invierte la membresía de petID en un único read-modify-write atómico
// y devuelve el estado resultante. Si la persistencia falla, devuelve el
// estado que se pudo leer (sin cambios).
func (s *Service) Toggle(ctx context.Context, petID string) bool {
	ids := s.mutate(ctx, OpToggle, petID, func(ids []string) ([]string, bool) {
		if contains(ids, petID) {
			return without(ids, petID), true
		}
		return append(ids, petID), true
	})
	return contains(ids, petID)
}

// mutate aplica fn al set actual bajo el lock y persiste si fn lo pide.
// Devuelve el set que quedó persistido (o el leído, si no se pudo escribir).
// Con el storage inaccesible no escribe nada, a diferencia de tratar la lectura
// fallida como set vacío y pisar el registro.
func (s *Service) mutate(ctx context.Context, op Op, petID string, fn func([]string) ([]string, bool)) []string {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.mu.Lock()

	current, f := s.read(ctx, op)
	if f != nil {
		s.fault(f)
		if f.Kind == FaultRead {
			// storage inaccesible: no pisamos un registro que puede estar sano
			s.mu.Unlock()
			s.done(op, false)
			return []string{}
		}
		// registro corrupto: se trata como vacío y la escritura lo reemplaza
		current = []string{}
	}
	healthy := f == nil

	next, write := fn(current)
	if !write {
		s.mu.Unlock()
		s.done(op, healthy)
		return current
	}

	if err := s.write(ctx, next); err != nil {
		s.mu.Unlock()
		s.fault(&Fault{Op: op, Kind: FaultWrite, Err: err})
		s.done(op, false)
		return current
	}

	s.version++
	change := Change{
		Op:       op,
		PetID:    petID,
		Favorite: contains(next, petID),
		IDs:      append([]string(nil), next...),
		Version:  s.version,
	}
	s.mu.Unlock()

	s.done(op, healthy)
	s.subs.publish(change)
	return next
}

func (s *Service) read(ctx context.Context, op Op) ([]string, *Fault) {
	raw, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, &Fault{Op: op, Kind: FaultRead, Err: err}
	}
	if !found {
		return []string{}, nil
	}
	ids, err := decode(raw)
	if err != nil {
		return nil, &Fault{Op: op, Kind: FaultDecode, Err: err}
	}
	return ids, nil
}

func (s *Service) write(ctx context.Context, ids []string) error {
	raw, err := encode(ids)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.key, raw)
}

func (s *Service) fault(f *Fault) {
	s.log.Error("favorites: persistence fault", map[string]any{
		"op":   string(f.Op),
		"kind": string(f.Kind),
		"err":  f.Err,
	})
	metrics.FavoritesFaultsTotal.WithLabelValues(string(f.Op), string(f.Kind)).Inc()
	if s.onFault != nil {
		s.onFault(f)
	}
}

func (s *Service) done(op Op, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "fault"
	}
	metrics.FavoritesOpsTotal.WithLabelValues(string(op), outcome).Inc()
}

func (s *Service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}
