//go:build goexperiment.arenas

package mem

import (
	"arena"
)

// Manager carries an optional arena and one reusable Scratch bundle.
type Manager struct {
	A  *arena.Arena
	Sc *Scratch
}

func newArenaScratch(a *arena.Arena) *Scratch {
	n := MaxScratchPixels * ScratchChannels
	return &Scratch{
		Line: arena.MakeSlice[float64](a, n, n),
	}
}

// NewManager returns an arena backed Manager.
func NewManager() Manager {
	a := arena.NewArena()
	return Manager{A: a, Sc: newArenaScratch(a)}
}

// Scratch returns the reusable scratch bundle.
func (m Manager) Scratch() *Scratch { return m.Sc }

// IsZero reports whether the Manager was never initialised.
func (m Manager) IsZero() bool { return m.Sc == nil }

// Close frees the arena. Nothing allocated from it may be used after.
func (m Manager) Close() { m.FreeAll() }

func (m Manager) FreeAll() {
	if m.A != nil {
		m.A.Free()
	}
}
