// Package registry provides a global registry of targeting policies.
// Policies register themselves in init() functions, so the CLI can pick one
// by name without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/fleetsim/internal/combat"
)

// ErrUnknownPolicy is returned by Create for names nobody registered.
var ErrUnknownPolicy = errors.New("registry: unknown policy")

// Deps holds the shared services a policy may draw on.
type Deps struct {
	Roller combat.Roller
}

// Factory builds a policy from its dependencies.
type Factory func(Deps) combat.TargetPolicy

// PolicyInfo contains metadata about a registered policy.
type PolicyInfo struct {
	Name        string
	Description string
}

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PolicyInfo)
	mu        sync.RWMutex
)

// Register adds a policy factory to the registry.
// Panics if a policy with the same name is already registered.
func Register(info PolicyInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.Name]; exists {
		panic(fmt.Sprintf("registry: policy %q already registered", info.Name))
	}

	factories[info.Name] = f
	infos[info.Name] = info
}

// List returns information about all registered policies, sorted by name.
func List() []PolicyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PolicyInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a policy by name.
func Create(name string, deps Deps) (combat.TargetPolicy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}

	return f(deps), nil
}

// Exists checks if a policy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
