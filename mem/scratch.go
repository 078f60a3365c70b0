// SPDX-License-Identifier: MIT
package mem

// Pixels a Scratch line buffer holds before a row is processed in pieces.
const MaxScratchPixels = 1024

// Colour channels stored per pixel in Line.
const ScratchChannels = 3

// Scratch holds reusable working buffers for the pixel hot path.
type Scratch struct {
	Line []float64 // decoded linear values, ScratchChannels per pixel
}
