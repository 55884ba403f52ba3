package favorites

import "sync"

type subscribers struct {
	mu   sync.RWMutex
	next int
	fns  map[int]func(Change)
}

// Subscribe registra fn para recibir un Change después de cada escritura.
// fn se llama sincrónicamente, fuera del lock del store, en el goroutine que
// escribió; si dos escrituras compiten, Change.Version ordena los eventos.
// Devuelve la función para desuscribirse.
func (s *Service) Subscribe(fn func(Change)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.subs.mu.Lock()
	id := s.subs.next
	s.subs.next++
	s.subs.fns[id] = fn
	s.subs.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subs.mu.Lock()
			delete(s.subs.fns, id)
			s.subs.mu.Unlock()
		})
	}
}

func (s *subscribers) publish(c Change) {
	s.mu.RLock()
	fns := make([]func(Change), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}
