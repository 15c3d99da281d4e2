// widgets/widget.go
package widgets

import (
	"context"
	"sync"

	dashgate_errors "github.com/rohanverma/dashgate/errors"
)

// Widget is the capability interface every widget type implements. A widget
// value renders the content of one widget instance; it carries no identity
// of its own.
type Widget interface {
	Title() string
	Height() int
	Width() int
	RenderContent(ctx context.Context) (string, error)
	EventData() map[string]interface{}
}

// Factory builds a fresh widget value for one render.
type Factory func() Widget

var (
	mu       sync.RWMutex
	registry = make(map[string]Factory)
)

// Register binds a widget type identifier to its factory. Registration
// happens at process start, before any request is served.
func Register(typeID string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[typeID] = factory
}

// New builds a widget for a registered type.
func New(typeID string) (Widget, error) {
	mu.RLock()
	factory, exists := registry[typeID]
	mu.RUnlock()
	if !exists {
		return nil, dashgate_errors.ErrUnknownWidgetType
	}
	return factory(), nil
}

// Registered reports whether a widget type is known.
func Registered(typeID string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, exists := registry[typeID]
	return exists
}

// Types returns the registered widget type identifiers.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()
	types := make([]string, 0, len(registry))
	for typeID := range registry {
		types = append(types, typeID)
	}
	return types
}
