package godcs

import (
	"fmt"
	"testing"
)

func TestVersion(t *testing.T) {
	want := fmt.Sprintf("%d.%d.%d", DCSVersionMajor, DCSVersionMinor, DCSVersionPatch)
	if got := Version(); got != want {
		t.Errorf("Version() = %q, want %q", got, want)
	}
}
