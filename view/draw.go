package view

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/debugview/assets"
	"github.com/meghashyamc/debugview/geometry"
	"github.com/meghashyamc/debugview/scene"
)

const (
	logPanelWidth   = 320
	logPanelPadding = 10
	lineSpacing     = 1.3
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorLine       = color.RGBA{90, 90, 90, 255}
	colorSegment    = color.RGBA{255, 255, 255, 255}
	colorPoint      = color.RGBA{255, 0, 0, 255}
	colorProjection = color.RGBA{255, 255, 0, 255}
	colorSelected   = color.RGBA{0, 200, 255, 255}
	colorLabel      = color.RGBA{0, 255, 0, 255}
	colorWarning    = color.RGBA{255, 80, 80, 255}
	colorPanel      = color.RGBA{30, 30, 30, 230}
)

func (v *DistanceView) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	m := v.scene.Measure()

	v.drawLine(screen, m)
	v.drawHandles(screen)
	v.drawLabels(screen, m)
	v.drawLogPanel(screen)
	v.drawHelp(screen)
}

func (v *DistanceView) drawLine(screen *ebiten.Image, m scene.Measurement) {
	start, end, point := v.scene.LineStart, v.scene.LineEnd, v.scene.Point

	if !m.Degenerate {
		// Extend past both endpoints far enough to leave the screen.
		dir := end.Sub(start).Normalize()
		reach := math.Hypot(float64(v.width), float64(v.height))
		far0 := start.Sub(dir.Scale(reach))
		far1 := start.Add(dir.Scale(reach))
		strokeLine(screen, far0, far1, 1, colorLine)
	}

	strokeLine(screen, start, end, 2, colorSegment)
	strokeLine(screen, point, m.Projection, 2, colorProjection)
	vector.DrawFilledCircle(screen, float32(m.Projection.X), float32(m.Projection.Y), 4, colorProjection, true)
}

func (v *DistanceView) drawHandles(screen *ebiten.Image) {
	for _, h := range []scene.Handle{scene.HandleLineStart, scene.HandleLineEnd, scene.HandlePoint} {
		pos, _ := v.scene.Position(h)

		fill := colorSegment
		radius := float32(v.handleRadius) / 2
		if h == scene.HandlePoint {
			fill = colorPoint
			radius = float32(v.handleRadius)
		}

		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, fill, true)
		if h == v.selected {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(v.handleRadius)+4, 2, colorSelected, true)
		}
	}
}

func (v *DistanceView) drawLabels(screen *ebiten.Image, m scene.Measurement) {
	projectionLabel, distanceLabel := m.Labels()

	drawText(screen, projectionLabel, assets.LabelFont, m.Projection.Add(geometry.Vector{X: 8, Y: 8}), colorLabel)

	mid := v.scene.Point.Add(m.Projection).Scale(0.5)
	distanceColor := colorLabel
	if m.Degenerate {
		distanceColor = colorWarning
	}
	drawText(screen, distanceLabel, assets.LabelFont, mid.Add(geometry.Vector{X: 12, Y: 0}), distanceColor)

	if !v.statusTimer.IsReady() {
		drawText(screen, v.status, assets.LabelFont, geometry.Vector{X: 20, Y: 20}, colorSelected)
	}
}

func (v *DistanceView) drawLogPanel(screen *ebiten.Image) {
	x := float64(v.width - logPanelWidth)
	vector.DrawFilledRect(screen, float32(x), 0, logPanelWidth, float32(v.height), colorPanel, false)

	header := "Log"
	if v.logFilter != "" {
		header += " [filter: " + v.logFilter + "]"
	}
	drawText(screen, header, assets.LogFont, geometry.Vector{X: x + logPanelPadding, Y: logPanelPadding}, colorSegment)

	rowHeight := assets.LogFontSize * lineSpacing
	maxRows := int((float64(v.height) - 3*logPanelPadding - rowHeight) / rowHeight)

	y := 2*logPanelPadding + rowHeight
	for _, entry := range v.log.Tail(maxRows, v.logFilter) {
		drawText(screen, entry.String(), assets.LogFont, geometry.Vector{X: x + logPanelPadding, Y: y}, colorLabel)
		y += rowHeight
	}
}

func (v *DistanceView) drawHelp(screen *ebiten.Image) {
	help := "Drag points with the mouse, Tab selects, arrows nudge (Shift x10)\nR reset  S save  L load  C clear log  F filter log"
	drawText(screen, help, assets.LogFont, geometry.Vector{X: 20, Y: float64(v.height) - 40}, colorSegment)
}

func strokeLine(screen *ebiten.Image, from, to geometry.Vector, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), width, clr, true)
}

func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, at geometry.Vector, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Size * lineSpacing
	text.Draw(screen, s, face, op)
}
