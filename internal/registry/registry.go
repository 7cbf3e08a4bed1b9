// Package registry provides a global registry for word list factories.
// Word lists register themselves in init() functions, allowing the CLI
// to discover and load lists by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// WordList is a static word list usable as both dictionary and secret source.
type WordList interface {
	// Name returns the registry identifier (e.g., "standard").
	Name() string

	// Len returns the number of words in the list.
	Len() int

	// Contains reports exact, case-insensitive membership.
	Contains(word string) bool

	// Pick returns a uniformly chosen word.
	Pick(rng *rand.Rand) (string, error)

	// Words returns the list in load order.
	Words() []string
}

// Info contains metadata about a registered word list.
type Info struct {
	Name  string
	Title string
}

// Factory builds a word list instance.
type Factory func() (WordList, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a word list factory to the registry.
// Panics if a list with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: word list %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns information about all registered word lists, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds a word list by name.
// Returns an error if the name is not registered or the factory fails.
func Create(name string) (WordList, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown word list %q", name)
	}

	wl, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: load word list %q: %w", name, err)
	}
	return wl, nil
}

// Exists checks if a word list with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
