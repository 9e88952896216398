package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhiteMaskIsolatesWhitePixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 250, G: 250, B: 250, A: 255}) // badge digit
	img.Set(1, 0, color.NRGBA{R: 200, G: 40, B: 40, A: 255})   // badge background

	masked := whiteMask(img)

	// White input becomes ink, colored input becomes paper.
	assert.Equal(t, uint8(0), masked.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(255), masked.NRGBAAt(1, 0).R)
}

func TestDilateInkGrowsStrokes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.Set(1, 1, color.NRGBA{A: 255}) // single ink pixel

	out := dilateInk(img, 1)

	assert.Equal(t, uint8(0), out.NRGBAAt(1, 1).R)
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 1).R)
	assert.Equal(t, uint8(0), out.NRGBAAt(1, 0).R)
	// Diagonal neighbor stays paper with a 4-neighborhood kernel.
	assert.Equal(t, uint8(255), out.NRGBAAt(0, 0).R)
}

func TestPrepareBadgeUpscalesSmallCrops(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	out := prepareBadge(img)

	assert.GreaterOrEqual(t, out.Bounds().Dx(), minBadgeSize)
	assert.GreaterOrEqual(t, out.Bounds().Dy(), minBadgeSize)
}

func TestOtsuThresholdKeepsDarkTextOnLight(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 1))
	for x := 0; x < 10; x++ {
		v := uint8(230) // light paper
		if x < 3 {
			v = 20 // dark ink
		}
		img.Set(x, 0, color.NRGBA{R: v, G: v, B: v, A: 255})
	}

	out := otsuThreshold(img)

	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(255), out.NRGBAAt(9, 0).R)
}
