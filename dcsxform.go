package godcs

import (
	"math"
	"runtime"
	"sync"

	"github.com/yzigangirova/dcs-go/mem"
)

// checkDimensions validates a packed RGBA buffer against its geometry.
func checkDimensions(n, width, height int) error {
	bad := width < 0 || height < 0 || n%bytesPerPixel != 0
	if !bad && width > 0 && height > math.MaxInt/bytesPerPixel/width {
		bad = true
	}
	if !bad && n != bytesPerPixel*width*height {
		bad = true
	}
	if bad {
		return dcsSignalError(&DimensionError{Len: n, Width: width, Height: height})
	}
	return nil
}

// Transform routines ----------------------------------------------------------------------------------------------------------

// unrollRGBA8 decodes the colour channels of n pixels into linear light.
func unrollRGBA8(line []float64, px []byte, lut *GammaTable, n int) {
	for i := 0; i < n; i++ {
		o := i * colorChannels
		p := i * bytesPerPixel
		line[o+0] = lut[px[p+0]]
		line[o+1] = lut[px[p+1]]
		line[o+2] = lut[px[p+2]]
	}
}

// packRGBA8 maps n decoded pixels through t and writes them back encoded.
// Alpha bytes are not touched.
func packRGBA8(px []byte, line []float64, t *Transformer, n int) {
	var in, out Color
	for i := 0; i < n; i++ {
		o := i * colorChannels
		p := i * bytesPerPixel
		dcsVEC3init(&in, line[o+0], line[o+1], line[o+2])
		dcsMAT3eval(&out, t, &in)
		px[p+0] = dcsEncodeByte(out.N[VX])
		px[p+1] = dcsEncodeByte(out.N[VY])
		px[p+2] = dcsEncodeByte(out.N[VZ])
	}
}

// DoTransform rewrites every pixel of a packed RGBA buffer in place. A zero
// Manager gets a temporary one. len(buf) must be a multiple of 4.
func DoTransform(mm mem.Manager, t *Transformer, lut *GammaTable, buf []byte) {
	n := len(buf) / bytesPerPixel
	if n == 0 {
		return
	}
	DoTransformLineStride(mm, t, lut, buf, n, 1, n*bytesPerPixel)
}

// DoTransformLineStride rewrites lineCount rows of pixelsPerLine RGBA pixels,
// rows starting bytesPerLine apart. Padding between rows is left alone.
func DoTransformLineStride(mm mem.Manager,
	t *Transformer,
	lut *GammaTable,
	buf []byte,
	pixelsPerLine int,
	lineCount int,
	bytesPerLine int) {

	if pixelsPerLine <= 0 || lineCount <= 0 {
		return
	}
	rowBytes := pixelsPerLine * bytesPerPixel
	if bytesPerLine < rowBytes || len(buf) < (lineCount-1)*bytesPerLine+rowBytes {
		panic("DoTransformLineStride: buffer too small for given geometry")
	}
	if mm.IsZero() {
		mm = mem.NewManager()
		defer mm.Close()
	}
	line := mm.Scratch().Line
	chunk := len(line) / colorChannels

	for y := 0; y < lineCount; y++ {
		row := buf[y*bytesPerLine : y*bytesPerLine+rowBytes]
		for x0 := 0; x0 < pixelsPerLine; x0 += chunk {
			n := min(chunk, pixelsPerLine-x0)
			px := row[x0*bytesPerPixel : (x0+n)*bytesPerPixel]
			unrollRGBA8(line, px, lut, n)
			packRGBA8(px, line, t, n)
		}
	}
}

// fanOut splits [0, total) into at most workers contiguous ranges and runs
// fn on each in its own goroutine.
func fanOut(total, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}
	chunk := (total + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < total; lo += chunk {
		hi := min(lo+chunk, total)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// DoTransformParallel is DoTransform with the pixels split into disjoint
// ranges, each handled by its own goroutine and Manager. workers <= 0 means
// one per CPU. The output is identical to DoTransform.
func DoTransformParallel(t *Transformer, lut *GammaTable, buf []byte, workers int) {
	pixels := len(buf) / bytesPerPixel
	if pixels == 0 {
		return
	}
	fanOut(pixels, workers, func(lo, hi int) {
		m := mem.NewManager()
		defer m.Close()
		DoTransform(m, t, lut, buf[lo*bytesPerPixel:hi*bytesPerPixel])
	})
}

// DoTransformLineStrideParallel is DoTransformLineStride with the rows split
// across goroutines.
func DoTransformLineStrideParallel(t *Transformer,
	lut *GammaTable,
	buf []byte,
	pixelsPerLine int,
	lineCount int,
	bytesPerLine int,
	workers int) {

	if pixelsPerLine <= 0 || lineCount <= 0 {
		return
	}
	rowBytes := pixelsPerLine * bytesPerPixel
	fanOut(lineCount, workers, func(lo, hi int) {
		m := mem.NewManager()
		defer m.Close()
		start := lo * bytesPerLine
		end := (hi-1)*bytesPerLine + rowBytes
		DoTransformLineStride(m, t, lut, buf[start:end], pixelsPerLine, hi-lo, bytesPerLine)
	})
}

// Shift rewrites buf, a packed width x height RGBA buffer, to what an
// observer moving at velocity would see. Nothing is written unless the
// arguments are valid. workers <= 0 means one per CPU, 1 runs inline.
func (c *Composer) Shift(buf []byte, width, height int, velocity float64, workers int) error {
	if err := checkDimensions(len(buf), width, height); err != nil {
		return err
	}
	t, err := c.Transform(velocity)
	if err != nil {
		return err
	}
	lut := NewGammaTable()
	if workers == 1 {
		DoTransform(mem.Manager{}, &t, lut, buf)
		return nil
	}
	DoTransformParallel(&t, lut, buf, workers)
	return nil
}

// ApplyShift rewrites the R, G and B channels of every pixel in buf in place,
// alpha untouched, as seen by an observer moving at velocity (a fraction of
// the speed of light). buf must hold exactly width*height RGBA pixels.
// Runs on the calling goroutine.
func ApplyShift(buf []byte, width, height int, velocity float64) error {
	if err := checkDimensions(len(buf), width, height); err != nil {
		return err
	}
	t, err := BuildTransform(velocity)
	if err != nil {
		return err
	}
	DoTransform(mem.Manager{}, &t, NewGammaTable(), buf)
	return nil
}

// ApplyShiftParallel is ApplyShift spread over workers goroutines.
func ApplyShiftParallel(buf []byte, width, height int, velocity float64, workers int) error {
	if err := checkDimensions(len(buf), width, height); err != nil {
		return err
	}
	if err := CheckVelocity(velocity); err != nil {
		return err
	}
	c, err := NewComposer(DefaultModel())
	if err != nil {
		return err
	}
	return c.Shift(buf, width, height, velocity, workers)
}
