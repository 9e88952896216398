package vision

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// scaleAbs applies y = clamp(contrast*x + brightness) per pixel on a
// grayscale image.
func scaleAbs(img image.Image, contrast float64, brightness int) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			gray := float64((r+g+bb)/3>>8)*contrast + float64(brightness)
			v := clampU8(int(gray))
			out.Set(x-b.Min.X, y-b.Min.Y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}

// otsuThreshold binarizes a grayscale image using Otsu's method, then flips
// the polarity if the text ends up light on dark.
func otsuThreshold(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	var hist [256]int
	total := b.Dx() * b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[img.NRGBAAt(x, y).R]++
		}
	}

	var sum float64
	for i, c := range hist {
		sum += float64(i * c)
	}

	var sumB, wB float64
	var maxVar float64
	threshold := 127
	for i := 0; i < 256; i++ {
		wB += float64(hist[i])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(i * hist[i])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > maxVar {
			maxVar = between
			threshold = i
		}
	}

	out := image.NewNRGBA(b)
	darkCount := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var v uint8
			if int(img.NRGBAAt(x, y).R) > threshold {
				v = 255
			} else {
				darkCount++
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	// Tesseract wants dark text on a light background.
	if darkCount > total/2 {
		return imaging.Invert(out)
	}
	return out
}

// prepareStats produces the binarized variant tuned for the stats panel.
func prepareStats(img image.Image) *image.NRGBA {
	return otsuThreshold(scaleAbs(imaging.Grayscale(img), statsContrast, statsBrightness))
}

// prepareCardNames produces the binarized variant tuned for card name text.
func prepareCardNames(img image.Image) *image.NRGBA {
	return otsuThreshold(scaleAbs(imaging.Grayscale(img), cardContrast, cardBrightness))
}

// preparePlain is a plain grayscale Otsu pass used as a third opinion on the
// equipment zone.
func preparePlain(img image.Image) *image.NRGBA {
	return otsuThreshold(imaging.Clone(imaging.Grayscale(img)))
}

// whiteMask isolates near-white pixels (low saturation, high value), the
// color of level badge digits, producing black digits on white.
func whiteMask(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			r8, g8, b8 := int(r>>8), int(g>>8), int(bb>>8)
			maxC := max3(r8, g8, b8)
			minC := min3(r8, g8, b8)

			sat := 0
			if maxC > 0 {
				sat = 255 * (maxC - minC) / maxC
			}

			// White pixel becomes black ink for OCR.
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if sat < maskMaxSaturation && maxC > maskMinValue {
				c = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
			}
			out.Set(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}

// dilateInk grows black regions by one pixel per iteration to reconnect
// fragmented digit strokes.
func dilateInk(img *image.NRGBA, iterations int) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	cur := img
	for it := 0; it < iterations; it++ {
		next := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				ink := false
				for _, d := range [][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					x2, y2 := x+d[0], y+d[1]
					if x2 < 0 || y2 < 0 || x2 >= w || y2 >= h {
						continue
					}
					if cur.NRGBAAt(x2, y2).R == 0 {
						ink = true
						break
					}
				}
				if ink {
					next.Set(x, y, color.NRGBA{0, 0, 0, 255})
				}
			}
		}
		cur = next
	}
	return cur
}

// prepareBadge runs the full badge pipeline: white mask, dilation, and an
// upscale when the crop is too small for reliable OCR.
func prepareBadge(img image.Image) *image.NRGBA {
	masked := dilateInk(whiteMask(img), 1)

	w := masked.Bounds().Dx()
	h := masked.Bounds().Dy()
	if w == 0 || h == 0 {
		return masked
	}
	if w < minBadgeSize || h < minBadgeSize {
		scale := 2.0
		if s := float64(minBadgeSize) / float64(w); s > scale {
			scale = s
		}
		if s := float64(minBadgeSize) / float64(h); s > scale {
			scale = s
		}
		masked = imaging.Resize(masked, int(float64(w)*scale), int(float64(h)*scale), imaging.Lanczos)
	}
	return masked
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
