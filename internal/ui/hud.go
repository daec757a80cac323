//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifeview/internal/session"
)

const (
	hudPadding    = 4
	hudLineHeight = 14
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	hudRunning    = color.RGBA{R: 120, G: 220, B: 230, A: 255}
	hudPaused     = color.RGBA{R: 230, G: 200, B: 90, A: 255}
	hudHelp       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD draws the run state, generation and live-cell count in the top-left
// corner of the window.
type HUD struct {
	status session.Status
	pixel  *ebiten.Image
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// SetStatus records the state shown on the next Draw.
func (h *HUD) SetStatus(st session.Status) {
	if h == nil {
		return
	}
	h.status = st
}

// Draw paints the HUD over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	line := StatusText(h.status)
	width := (max(len(line), len(Help)) * face.Advance) + 2*hudPadding
	h.fillRect(screen, image.Rect(0, 0, width, 2*hudLineHeight+2*hudPadding), hudBackground)

	fg := hudPaused
	if h.status.Active {
		fg = hudRunning
	}
	text.Draw(screen, line, face, hudPadding, hudPadding+face.Ascent, fg)
	text.Draw(screen, Help, face, hudPadding, hudPadding+hudLineHeight+face.Ascent, hudHelp)
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, bg color.RGBA) {
	if rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	dst.DrawImage(h.pixel, op)
}
