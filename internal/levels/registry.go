package levels

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered pack.
type Info struct {
	Name        string
	Description string
	Levels      int
}

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same name is already registered.
func Register(p Pack) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.Name]; exists {
		panic(fmt.Sprintf("levels: pack %q already registered", p.Name))
	}
	packs[p.Name] = p
}

// List returns information about all registered packs, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(packs))
	for _, p := range packs {
		result = append(result, Info{
			Name:        p.Name,
			Description: p.Description,
			Levels:      p.Len(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns a registered pack by name.
// Returns an error if the name is not registered.
func Get(name string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[name]
	if !ok {
		return Pack{}, fmt.Errorf("levels: unknown pack %q", name)
	}
	return p, nil
}

// Exists checks if a pack with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[name]
	return ok
}
