//go:build !goexperiment.arenas

// SPDX-License-Identifier: MIT
package mem

import "sync"

var heapScratchPool = sync.Pool{
	New: func() any { return newHeapScratch() },
}

func newHeapScratch() *Scratch {
	return &Scratch{
		Line: make([]float64, MaxScratchPixels*ScratchChannels),
	}
}

// Manager hands out Scratch bundles from a pool in this build.
type Manager struct {
	Sc *Scratch
}

// NewManager returns a Manager holding a pooled Scratch.
func NewManager() Manager {
	return Manager{Sc: heapScratchPool.Get().(*Scratch)}
}

// Scratch returns the reusable scratch bundle.
func (m Manager) Scratch() *Scratch { return m.Sc }

// IsZero reports whether the Manager was never initialised.
func (m Manager) IsZero() bool { return m.Sc == nil }

// Close returns the Scratch to the pool. The Manager must not be used after.
func (m Manager) Close() {
	if m.Sc != nil {
		heapScratchPool.Put(m.Sc)
	}
}
