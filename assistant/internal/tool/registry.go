package tool

import (
	"encoding/json"
	"sort"
	"sync"
)

// Handler is one callable tool. Each tool defines its own argument struct
// via DecodeArg and returns a JSON-encodable result from Call.
type Handler interface {
	DecodeArg(raw json.RawMessage) (any, error)
	Call(arg any) (any, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]Handler{}
)

func Register(name string, h Handler) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = h
}

func Get(name string) (Handler, bool) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
