// Package imgio converts image files to and from the [N, C, H, W] float
// tensors consumed by the augmentation engine. Decoding goes through
// disintegration/imaging with an explicit WebP fallback, since WebP is not
// registered with image.Decode by default.
package imgio

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/born-ml/augment/internal/tensor"
)

// Load reads an image file and returns it as a [1, 3, H, W] tensor with
// values scaled to [0, 1].
func Load(path string) (*tensor.Tensor[float32], error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Open decodes an image file, falling back to an explicit WebP decode when
// the registered decoders cannot handle it.
func Open(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("imgio: unknown or unsupported image format: %s", path)
}

// FromImage converts an image to a [1, 3, H, W] tensor with values in
// [0, 1].
func FromImage(img image.Image) *tensor.Tensor[float32] {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	t := tensor.New[float32](tensor.Shape{1, 3, h, w})
	data := t.Data()
	plane := h * w

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := y*w + x
			data[i] = float32(r) / 0xffff
			data[plane+i] = float32(g) / 0xffff
			data[2*plane+i] = float32(bl) / 0xffff
		}
	}
	return t
}

// ToImage converts one sample of a [N, 3, H, W] tensor back to an image.
// Values are clamped to [0, 1] before quantization.
func ToImage(t *tensor.Tensor[float32], sample int) (image.Image, error) {
	s := t.Shape()
	if len(s) != 4 || s[1] != 3 {
		return nil, fmt.Errorf("imgio: expected [N, 3, H, W] tensor, got shape %v", s)
	}
	if sample < 0 || sample >= s[0] {
		return nil, fmt.Errorf("imgio: sample %d out of range for batch of %d", sample, s[0])
	}

	h, w := s[2], s[3]
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: quantize(t.At(sample, 0, y, x)),
				G: quantize(t.At(sample, 1, y, x)),
				B: quantize(t.At(sample, 2, y, x)),
				A: 0xff,
			})
		}
	}
	return img, nil
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// Fit downscales img so that its longest side is at most maxDim, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func Fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}

	var dw, dh int
	if w >= h {
		dw = maxDim
		dh = h * maxDim / w
	} else {
		dh = maxDim
		dw = w * maxDim / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// Save writes img to path, choosing the encoder from the file extension.
// WebP goes through chai2010/webp; everything else through imaging.Save.
func Save(img image.Image, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("imgio: create %s: %w", path, err)
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Quality: 90})
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("imgio: save %s: %w", path, err)
	}
	return nil
}
