// Package registry provides a global registry of board variants.
// Variants register themselves in init(), allowing the CLI and the SSH
// server to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-gomoku/internal/gomoku"
)

// Variant describes a named board configuration.
// Every variant uses the same five-in-a-row rule; only the board differs.
type Variant struct {
	ID    string
	Title string
	Size  int
}

// NewEngine creates a fresh engine for this variant.
func (v Variant) NewEngine() *gomoku.Engine {
	return gomoku.NewEngine(v.Size)
}

// WithSize returns v unchanged when size is zero or matches v.Size, and the
// custom variant of that size otherwise.
func (v Variant) WithSize(size int) Variant {
	if size == 0 || size == v.Size {
		return v
	}
	return Custom(size)
}

// DefaultVariant is the ID used when none is given.
const DefaultVariant = "freestyle"

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

func init() {
	Register(Variant{ID: "freestyle", Title: "Freestyle Gomoku (15x15)", Size: gomoku.DefaultSize})
	Register(Variant{ID: "go19", Title: "Gomoku on a Go board (19x19)", Size: 19})
	Register(Variant{ID: "mini", Title: "Mini Gomoku (9x9)", Size: 9})
}

// Register adds a variant to the registry.
// Panics if the ID is already registered or the board cannot hold a winning line.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Size < gomoku.WinLength {
		panic(fmt.Sprintf("registry: variant %q board size %d is smaller than %d", v.ID, v.Size, gomoku.WinLength))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sortByID(result)
	return result
}

// ListWith returns List plus the custom variants named by ids, sorted by ID.
// Registered, repeated and unrecognised IDs are skipped.
func ListWith(ids ...string) []Variant {
	list := List()
	seen := make(map[string]bool, len(list)+len(ids))
	for _, v := range list {
		seen[v.ID] = true
	}

	for _, id := range ids {
		if seen[id] {
			continue
		}
		v, ok := parseCustom(id)
		if !ok {
			continue
		}
		seen[id] = true
		list = append(list, v)
	}

	sortByID(list)
	return list
}

func sortByID(list []Variant) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Custom returns an unregistered variant for an arbitrary board size,
// used when the configuration overrides the size.
func Custom(size int) Variant {
	return Variant{
		ID:    fmt.Sprintf("custom%d", size),
		Title: fmt.Sprintf("Custom Gomoku (%dx%d)", size, size),
		Size:  size,
	}
}

// Resolve returns the registered variant with the given ID, or the custom
// variant a "customN" ID names.
func Resolve(id string) (Variant, error) {
	if v, err := Lookup(id); err == nil {
		return v, nil
	}
	if v, ok := parseCustom(id); ok {
		return v, nil
	}
	return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
}

func parseCustom(id string) (Variant, bool) {
	digits, ok := strings.CutPrefix(id, "custom")
	if !ok {
		return Variant{}, false
	}
	size, err := strconv.Atoi(digits)
	if err != nil || size < gomoku.WinLength {
		return Variant{}, false
	}
	v := Custom(size)
	// Rejects spellings such as "custom011" or "custom+9".
	if v.ID != id {
		return Variant{}, false
	}
	return v, true
}
