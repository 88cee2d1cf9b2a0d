// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ErrUnknownBackend is returned by ByName for names that were never registered.
var ErrUnknownBackend = errors.New("backend: unknown backend")

// holder boxes the interface value so it can live behind an atomic pointer.
type holder struct{ b Backend }

var (
	active atomic.Pointer[holder]

	mu       sync.RWMutex
	registry = map[string]Backend{}
	logger   = zerolog.Nop()
)

func init() {
	Register(Gonum())
	Register(Reference())
	active.Store(&holder{b: defaultBackend()})
}

// SetLogger replaces the logger used for backend selection events.
// The default discards everything.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Register makes b available through ByName. A later registration under the same
// name replaces the earlier one.
func Register(b Backend) {
	mu.Lock()
	registry[b.Name()] = b
	mu.Unlock()
}

// ByName returns the registered backend with the given name.
func ByName(name string) (Backend, error) {
	mu.RLock()
	b, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownBackend)
	}

	return b, nil
}

// Names lists registered backends in lexical order.
func Names() []string {
	mu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	mu.RUnlock()
	sort.Strings(names)

	return names
}

// Current returns the process-wide backend. Operations read it once per call.
func Current() Backend {
	return active.Load().b
}

// Use installs b as the process-wide backend and returns the previous one,
// so tests can restore it with defer backend.Use(backend.Use(x)).
// A nil b is ignored and the current backend is returned unchanged.
func Use(b Backend) Backend {
	if b == nil {
		return Current()
	}
	prev := active.Swap(&holder{b: b}).b

	l := currentLogger()
	l.Debug().
		Str("backend", b.Name()).
		Str("previous", prev.Name()).
		Msg("dense backend selected")

	return prev
}

func currentLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// rejected logs an invalid-argument status at Debug and returns it unchanged.
func rejected(routine string, info int) int {
	l := currentLogger()
	l.Debug().
		Err(StatusError(routine, info)).
		Int("info", info).
		Msg("dense kernel rejected arguments")

	return info
}
