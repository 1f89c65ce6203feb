// Package clock abstrae la hora actual para que la lógica con TTL y duraciones sea testeable.
package clock

import (
	"sync"
	"time"
)

// Clock devuelve el instante actual.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System devuelve el reloj del sistema.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FakeClock reloj manual para tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock crea un reloj detenido en t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance mueve el reloj d hacia adelante (o atrás si d es negativo).
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set fija el reloj en t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
