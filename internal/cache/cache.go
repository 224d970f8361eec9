// Package cache holds the in-memory entity collections that mirror the
// document store. Each collection is bulk-loaded once at startup and patched
// after every successful write, so reads (and the whole reporting engine)
// never touch the store. Last write wins; there is no reconciliation with
// writes made by other processes.
package cache

import "sync"

// Coleccion is an id-indexed snapshot of one store collection. Iteration
// order is insertion order — rankings rely on it for stable tie-breaks.
type Coleccion[T any] struct {
	mu    sync.RWMutex
	clave func(T) string
	items map[string]T
	orden []string
}

func New[T any](clave func(T) string) *Coleccion[T] {
	return &Coleccion[T]{clave: clave, items: make(map[string]T)}
}

// Cargar replaces the whole snapshot, preserving the given order.
func (c *Coleccion[T]) Cargar(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T, len(items))
	c.orden = c.orden[:0]
	for _, it := range items {
		id := c.clave(it)
		if _, ok := c.items[id]; !ok {
			c.orden = append(c.orden, id)
		}
		c.items[id] = it
	}
}

// Poner inserts or replaces one record. Existing records keep their position.
func (c *Coleccion[T]) Poner(it T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.clave(it)
	if _, ok := c.items[id]; !ok {
		c.orden = append(c.orden, id)
	}
	c.items[id] = it
}

// Quitar removes a record by id; unknown ids are a no-op.
func (c *Coleccion[T]) Quitar(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, o := range c.orden {
		if o == id {
			c.orden = append(c.orden[:i], c.orden[i+1:]...)
			break
		}
	}
}

func (c *Coleccion[T]) Obtener(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[id]
	return it, ok
}

// Lista returns a copy of the snapshot in insertion order.
func (c *Coleccion[T]) Lista() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.orden))
	for _, id := range c.orden {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Coleccion[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
