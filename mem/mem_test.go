package mem

import "testing"

func TestZeroManager(t *testing.T) {
	var m Manager
	if !m.IsZero() {
		t.Error("zero Manager reports initialised")
	}
}

func TestNewManagerScratch(t *testing.T) {
	m := NewManager()
	defer m.Close()
	if m.IsZero() {
		t.Fatal("NewManager returned a zero Manager")
	}
	sc := m.Scratch()
	if got, want := len(sc.Line), MaxScratchPixels*ScratchChannels; got != want {
		t.Errorf("len(Line) = %d, want %d", got, want)
	}
	for i := range sc.Line {
		sc.Line[i] = float64(i)
	}
}

func TestManagersDoNotShare(t *testing.T) {
	a := NewManager()
	b := NewManager()
	defer a.Close()
	defer b.Close()
	if &a.Scratch().Line[0] == &b.Scratch().Line[0] {
		t.Error("two live Managers share a line buffer")
	}
}
