package vision

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"strconv"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Lestat2Lioncourt/discord-bot/internal/catalog"
	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

func TestExtractUndecodableImage(t *testing.T) {
	e := NewEngine(catalog.NewResolver())

	result, err := e.Extract(context.Background(), []byte("not an image"))
	require.NoError(t, err)

	assert.Zero(t, result.Confidence)
	assert.Contains(t, result.Warnings, WarnUnreadableImage)
}

func TestExtractCleanStatCardRoundTrip(t *testing.T) {
	requireTesseract(t)

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, renderStatCard(), imaging.PNG))

	e := NewEngine(catalog.NewResolver())
	result, err := e.Extract(context.Background(), buf.Bytes())
	require.NoError(t, err)

	require.NotNil(t, result.CharacterName)
	assert.Equal(t, "Florence", *result.CharacterName)
	require.NotNil(t, result.CharacterLevel)
	assert.Equal(t, 14, *result.CharacterLevel)
	require.NotNil(t, result.TrophyPoints)
	assert.Equal(t, 1770, *result.TrophyPoints)
	require.NotNil(t, result.GlobalPower)
	assert.Equal(t, 78, *result.GlobalPower)

	wantAttrs := [6]int{60, 55, 70, 52, 64, 58}
	for i, attr := range result.Attributes() {
		require.NotNil(t, attr, domain.AttributeNames[i])
		assert.Equal(t, wantAttrs[i], *attr, domain.AttributeNames[i])
	}

	wantCards := map[int]struct {
		name  string
		level int
	}{
		domain.SlotRacket:    {"Samourai", 12},
		domain.SlotGrip:      {"Katana", 11},
		domain.SlotShoes:     {"Plume", 10},
		domain.SlotWristband: {"Kodiak", 9},
		domain.SlotNutrition: {"Vegan", 13},
		domain.SlotWorkout:   {"Sprint", 15},
	}
	for slot, want := range wantCards {
		item := result.EquipmentBySlot(slot)
		require.NotNil(t, item, "slot %d", slot)
		assert.Equal(t, want.name, item.Name)
		require.NotNil(t, item.Level)
		assert.Equal(t, want.level, *item.Level)
	}

	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1.0, result.Confidence)
}

// requireTesseract skips when the Tesseract runtime or the eng+fra language
// data is not installed.
func requireTesseract(t *testing.T) {
	t.Helper()

	client := gosseract.NewClient()
	defer client.Close()

	langs, err := client.GetAvailableLanguages()
	if err != nil {
		t.Skipf("tesseract not available: %v", err)
	}
	available := make(map[string]bool, len(langs))
	for _, lang := range langs {
		available[lang] = true
	}
	if !available["eng"] || !available["fra"] {
		t.Skipf("tesseract language data incomplete: %v", langs)
	}
}

// renderStatCard draws a clean synthetic profile screenshot with known
// ground-truth values: a stats panel in the top half and the 4x2 equipment
// grid with level badges in the bottom half.
func renderStatCard() *image.NRGBA {
	const width, height = 800, 1600
	paper := color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	ink := color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	badgeFill := color.NRGBA{R: 40, G: 60, B: 170, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), paper)

	statLines := []string{
		"Florence - 1770",
		"PUISSANCE GLOBALE 78",
		"AGILITE 60",
		"ENDURANCE 55",
		"SERVICE 70",
		"VOLEE 52",
		"COUP DROIT 64",
		"REVERS 58",
	}
	for i, line := range statLines {
		drawText(img, line, 60, 60+i*80, 4, ink)
	}

	cardNames := map[int]string{
		1: "Samourai",
		2: "Katana",
		3: "Plume",
		4: "Kodiak",
		5: "Vegan",
		6: "Sprint",
	}
	cardLevels := map[int]int{0: 14, 1: 12, 2: 11, 3: 10, 4: 9, 5: 13, 6: 15}

	equip := equipmentRegion(img.Bounds())
	for _, cell := range cardGrid {
		cellBounds := cellRegion(equip, cell)

		if name, ok := cardNames[cell.Slot]; ok {
			label := name + " " + strconv.Itoa(cardLevels[cell.Slot])
			drawText(img, label, cellBounds.Min.X+10, cellBounds.Min.Y+40, 2, ink)
		}

		badge := badgeRegion(cellBounds, cell.Badge)
		fillRect(img, badge, badgeFill)
		drawText(img, strconv.Itoa(cardLevels[cell.Slot]), badge.Min.X+6, badge.Min.Y+badge.Dy()/3, 2, white)
	}

	return img
}

func fillRect(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, c)
		}
	}
}

// drawText rasterizes s with the basic 7x13 face, upscales it, and stamps
// the glyph pixels onto dst in the given color.
func drawText(dst *image.NRGBA, s string, x, y, scale int, c color.NRGBA) {
	face := basicfont.Face7x13
	tmp := image.NewNRGBA(image.Rect(0, 0, face.Advance*len(s)+2, face.Height+4))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
		Dot:  fixed.P(1, face.Ascent+1),
	}
	d.DrawString(s)

	scaled := imaging.Resize(tmp,
		tmp.Bounds().Dx()*scale, tmp.Bounds().Dy()*scale, imaging.NearestNeighbor)
	for yy := 0; yy < scaled.Bounds().Dy(); yy++ {
		for xx := 0; xx < scaled.Bounds().Dx(); xx++ {
			if scaled.NRGBAAt(xx, yy).A > 128 {
				dst.SetNRGBA(x+xx, y+yy, c)
			}
		}
	}
}
