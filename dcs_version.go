// dcs_version.go (in package godcs)
package godcs

import "fmt"

// Library version, reported by the dcs-shift version command.
const (
	DCSVersionMajor = 1
	DCSVersionMinor = 0
	DCSVersionPatch = 0
)

// Version returns the library version as major.minor.patch.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", DCSVersionMajor, DCSVersionMinor, DCSVersionPatch)
}
