package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Face is the bitmap font shared by every screen.
var Face = text.NewGoXFace(bitmapfont.Face)

// DrawTextAt draws str with its left edge at x, vertically centred on y.
// size is the glyph height in pixels; the bitmap face is 16px tall.
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0
	scaledHeight := 16.0 * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-scaledHeight/2)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(screen, str, Face, op)
}

// DrawTextCentered draws str centred horizontally on cx.
func DrawTextCentered(screen *ebiten.Image, str string, cx, y float64, size float64, clr color.Color) {
	width := text.Advance(str, Face) * size / 16.0
	DrawTextAt(screen, str, cx-width/2, y, size, clr)
}
