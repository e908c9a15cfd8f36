package view

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/debugview/config"
	"github.com/meghashyamc/debugview/eventlog"
	"github.com/meghashyamc/debugview/geometry"
	"github.com/meghashyamc/debugview/logger"
	"github.com/meghashyamc/debugview/scene"
)

const (
	statusDuration  = 2 * time.Second
	projectionTag   = "projection"
	fastNudgeFactor = 10
)

// DistanceView shows a line, a query point and the point's orthogonal
// projection onto the line. The three points can be dragged with the mouse
// or nudged with the arrow keys.
type DistanceView struct {
	cfg          *config.Config
	scene        *scene.Scene
	store        *scene.Store
	log          *eventlog.Log
	logger       logger.Logger
	width        int
	height       int
	dragStep     float64
	handleRadius float64
	selected     scene.Handle
	dragging     scene.Handle
	logFilter    string
	status       string
	statusTimer  *Timer
}

func New(cfg *config.Config) (*DistanceView, error) {
	width, height := cfg.GetWindowWidth(), cfg.GetWindowHeight()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}

	v := &DistanceView{
		cfg:          cfg,
		scene:        scene.New(cfg.GetLineStart(), cfg.GetLineEnd(), cfg.GetQueryPoint()),
		store:        scene.NewStore(cfg.GetDataDir(), cfg.GetSceneFilename()),
		log:          eventlog.New(cfg.GetLogCapacity()),
		logger:       logger.New(cfg.GetLogLevel()),
		width:        width,
		height:       height,
		dragStep:     cfg.GetDragStep(),
		handleRadius: cfg.GetHandleRadius(),
		selected:     scene.HandlePoint,
		dragging:     scene.HandleNone,
		statusTimer:  NewTimer(statusDuration),
	}

	v.scene.Subscribe(v.onSceneEvent)
	v.loadScene()

	v.logger.Info("view initialized", "width", width, "height", height, "scene_file", v.store.Path())
	return v, nil
}

func (v *DistanceView) Run() error {
	v.logger.Info("starting view")
	v.setupWindow()

	// Running the view calls Update() on every 'tick'
	return ebiten.RunGame(v)
}

func (v *DistanceView) setupWindow() {
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(v.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (v *DistanceView) Update() error {
	v.statusTimer.Update()
	v.updateMouse()
	v.updateKeys()
	return nil
}

func (v *DistanceView) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.width, v.height
}

func (v *DistanceView) updateMouse() {
	cursor := v.cursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if h := v.scene.HandleAt(cursor, v.handleRadius); h != scene.HandleNone {
			v.dragging = h
			v.selected = h
			v.logger.Debug("drag started", "handle", h.String(), "cursor", cursor)
		}
	}

	if v.dragging != scene.HandleNone && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if current, _ := v.scene.Position(v.dragging); current != cursor {
			v.scene.Move(v.dragging, cursor)
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = scene.HandleNone
	}
}

func (v *DistanceView) updateKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.selected = v.selected.Next()
		v.setStatus(fmt.Sprintf("selected %s", v.selected))
	}

	step := v.dragStep
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step *= fastNudgeFactor
	}

	switch {
	case repeatingKeyPressed(ebiten.KeyArrowLeft):
		v.scene.Nudge(v.selected, -step, 0)
	case repeatingKeyPressed(ebiten.KeyArrowRight):
		v.scene.Nudge(v.selected, step, 0)
	case repeatingKeyPressed(ebiten.KeyArrowUp):
		v.scene.Nudge(v.selected, 0, -step)
	case repeatingKeyPressed(ebiten.KeyArrowDown):
		v.scene.Nudge(v.selected, 0, step)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.scene.Reset()
		v.setStatus("scene reset")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.saveScene()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.loadScene()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.log.Clear()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if v.logFilter == "" {
			v.logFilter = projectionTag
		} else {
			v.logFilter = ""
		}
	}
}

func (v *DistanceView) onSceneEvent(e scene.Event) {
	v.log.Add(e.String())
	v.logger.Debug("scene event", "event", e.String())

	m := v.scene.Measure()
	if m.Degenerate {
		v.log.Add("line endpoints coincide, distance undefined")
		return
	}
	v.log.Addf("%s (%.2f, %.2f) distance %.2f", projectionTag, m.Projection.X, m.Projection.Y, m.LineDistance)
}

func (v *DistanceView) saveScene() {
	if err := v.store.Save(v.scene.Snapshot()); err != nil {
		v.logger.Error("failed to save scene", "err", err, "path", v.store.Path())
		v.setStatus("save failed")
		return
	}

	v.scene.NotifySaved()
	v.setStatus("scene saved")
}

func (v *DistanceView) loadScene() {
	snap, ok, err := v.store.Load()
	if err != nil {
		v.logger.Warn("failed to load scene, keeping current one", "err", err, "path", v.store.Path())
		v.setStatus("load failed")
		return
	}
	if !ok {
		return
	}

	v.scene.Restore(snap)
	v.setStatus("scene loaded")
}

func (v *DistanceView) setStatus(message string) {
	v.status = message
	v.statusTimer.Reset()
}

func (v *DistanceView) cursorPosition() geometry.Vector {
	pos := getCurrentMousePosition()
	return geometry.Vector{
		X: clampValue(pos.X, 0, float64(v.width)),
		Y: clampValue(pos.Y, 0, float64(v.height)),
	}
}
