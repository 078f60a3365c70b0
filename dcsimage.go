package godcs

import (
	"image"
	"image/draw"

	"github.com/yzigangirova/dcs-go/mem"
)

// pixRegion returns the bytes img.Rect covers, from its first pixel to the
// last byte of its last row.
func pixRegion(pix []byte, off, stride, width, height int) ([]byte, error) {
	rowBytes := width * bytesPerPixel
	end := off + (height-1)*stride + rowBytes
	if off < 0 || stride < rowBytes || end > len(pix) {
		return nil, dcsSignalError(&DimensionError{Len: len(pix), Width: width, Height: height})
	}
	return pix[off:end], nil
}

// ShiftImage rewrites img in place as seen by an observer moving at
// velocity. Sub-images are honoured: only pixels inside img.Rect change.
// workers <= 0 means one per CPU, 1 runs inline.
func (c *Composer) ShiftImage(img *image.NRGBA, velocity float64, workers int) error {
	if err := CheckVelocity(velocity); err != nil {
		return err
	}
	r := img.Rect
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	region, err := pixRegion(img.Pix, img.PixOffset(r.Min.X, r.Min.Y), img.Stride, w, h)
	if err != nil {
		return err
	}
	t, err := c.Transform(velocity)
	if err != nil {
		return err
	}
	lut := NewGammaTable()
	if workers == 1 {
		DoTransformLineStride(mem.Manager{}, &t, lut, region, w, h, img.Stride)
		return nil
	}
	DoTransformLineStrideParallel(&t, lut, region, w, h, img.Stride, workers)
	return nil
}

// ShiftRGBA is ShiftImage for alpha-premultiplied images. Opaque images are
// rewritten directly; anything translucent goes through a straight alpha
// copy first so colour channels are shifted before premultiplication.
func (c *Composer) ShiftRGBA(img *image.RGBA, velocity float64, workers int) error {
	if err := CheckVelocity(velocity); err != nil {
		return err
	}
	r := img.Rect
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	region, err := pixRegion(img.Pix, img.PixOffset(r.Min.X, r.Min.Y), img.Stride, w, h)
	if err != nil {
		return err
	}
	opaque := true
	for y := 0; y < h && opaque; y++ {
		opaque = dcsAllOpaque(region[y*img.Stride : y*img.Stride+w*bytesPerPixel])
	}
	if opaque {
		return c.ShiftImage(&image.NRGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}, velocity, workers)
	}

	straight := image.NewNRGBA(r)
	draw.Draw(straight, r, img, r.Min, draw.Src)
	if err := c.ShiftImage(straight, velocity, workers); err != nil {
		return err
	}
	draw.Draw(img, r, straight, r.Min, draw.Src)
	return nil
}

// ShiftImage is Composer.ShiftImage on the default model, run inline.
func ShiftImage(img *image.NRGBA, velocity float64) error {
	if err := CheckVelocity(velocity); err != nil {
		return err
	}
	c, err := NewComposer(DefaultModel())
	if err != nil {
		return err
	}
	return c.ShiftImage(img, velocity, 1)
}
