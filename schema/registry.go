package schema

import (
	"reflect"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type][]reflect.Type{}
)

// Register adds member types to the command group identified by the interface type iface.
// Member types are structs or pointers to structs; registering a type twice has no effect.
// Registration invalidates every cached schema.
func Register(iface reflect.Type, members ...reflect.Type) {
	registryMu.Lock()
	existing := registry[iface]
	for _, m := range members {
		found := false
		for _, e := range existing {
			if e == m {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, m)
		}
	}
	registry[iface] = existing
	registryMu.Unlock()

	Reset()
}

// IsGroup reports whether t is a registered command group
func IsGroup(t reflect.Type) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[t]
	return ok
}

func registered(iface reflect.Type) []reflect.Type {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]reflect.Type(nil), registry[iface]...)
}
