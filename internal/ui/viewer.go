package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/hailam/chessalgebra/internal/anim"
	"github.com/hailam/chessalgebra/internal/plot"
	"github.com/hailam/chessalgebra/internal/scene"
	"github.com/hailam/chessalgebra/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 700
	PanelWidth   = 280
	StageWidth   = ScreenWidth - PanelWidth
)

var (
	panelBg    = color.RGBA{34, 38, 46, 255}
	panelText  = color.RGBA{222, 226, 232, 255}
	panelDim   = color.RGBA{150, 156, 165, 255}
	panelTitle = color.RGBA{126, 200, 227, 255}
)

// Viewer is the interactive scene browser. It implements ebiten.Game.
type Viewer struct {
	scenes  []*scene.Scene
	current int
	theme   *plot.Theme

	frames []*ebiten.Image // nil until the current scene is prepared
	frame  int
	tick   int
	paused bool

	showPanel bool

	store  *storage.Storage // may be nil
	status string
}

// NewViewer builds a viewer over the full scene catalog. The storage handle
// is optional; without it, preferences and the render manifest are skipped.
func NewViewer(store *storage.Storage) *Viewer {
	v := &Viewer{
		scenes:    scene.All(),
		theme:     plot.DefaultTheme(),
		store:     store,
		showPanel: true,
	}

	if store != nil {
		if prefs, err := store.LoadPreferences(); err == nil {
			v.showPanel = prefs.ShowLabels
			for i, s := range v.scenes {
				if s.Name == prefs.LastScene {
					v.current = i
					break
				}
			}
		} else {
			log.Printf("Failed to load preferences: %v", err)
		}
	}

	v.prepare()
	return v
}

// prepare renders the current scene's frames (or its still, for still-only
// scenes) into ebiten images.
func (v *Viewer) prepare() {
	s := v.scenes[v.current]
	v.frames = nil
	v.frame = 0
	v.tick = 0

	var (
		imgs []*image.RGBA
		err  error
	)
	if s.Animated() {
		imgs, err = s.RenderFrames(v.theme)
	} else {
		var still *image.RGBA
		still, err = s.RenderStill(v.theme)
		if still != nil {
			imgs = []*image.RGBA{still}
		}
	}
	if err != nil {
		log.Printf("Failed to render scene %s: %v", s.Name, err)
		v.status = fmt.Sprintf("render failed: %v", err)
		return
	}

	for _, img := range imgs {
		v.frames = append(v.frames, ebiten.NewImageFromImage(img))
	}
	v.status = ""
}

// switchScene moves the catalog cursor by delta, wrapping around.
func (v *Viewer) switchScene(delta int) {
	n := len(v.scenes)
	v.current = ((v.current+delta)%n + n) % n
	v.prepare()

	if v.store != nil {
		prefs, err := v.store.LoadPreferences()
		if err != nil {
			log.Printf("Failed to load preferences: %v", err)
			return
		}
		prefs.LastScene = v.scenes[v.current].Name
		if err := v.store.SavePreferences(prefs); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
	}
}

// saveCurrent writes the current scene's still, animation, and exports to
// the output directory and records them in the manifest.
func (v *Viewer) saveCurrent() {
	s := v.scenes[v.current]
	outDir, err := storage.GetOutputDir()
	if err != nil {
		v.status = fmt.Sprintf("save failed: %v", err)
		return
	}

	var saved []string
	still, err := s.RenderStill(v.theme)
	if err == nil {
		name := s.Name + ".png"
		if err = plot.SavePNG(filepath.Join(outDir, name), still); err == nil {
			saved = append(saved, name)
			v.record(s.Name, name, 1)
		}
	}
	if err == nil && s.Animated() {
		var frames []*image.RGBA
		frames, err = s.RenderFrames(v.theme)
		if err == nil {
			name := s.Name + ".gif"
			if err = anim.SaveGIF(filepath.Join(outDir, name), frames, s.FPS); err == nil {
				saved = append(saved, name)
				v.record(s.Name, name, len(frames))
			}
		}
	}
	if err == nil && s.Export != nil {
		err = s.Export(outDir, v.theme)
	}

	if err != nil {
		log.Printf("Failed to save scene %s: %v", s.Name, err)
		v.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	v.status = "saved " + strings.Join(saved, ", ")
}

func (v *Viewer) record(sceneName, file string, frames int) {
	if v.store == nil {
		return
	}
	err := v.store.RecordRender(storage.RenderRecord{
		Scene:  sceneName,
		File:   file,
		Frames: frames,
	})
	if err != nil {
		log.Printf("Failed to record render: %v", err)
	}
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.switchScene(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.switchScene(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		v.saveCurrent()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		v.showPanel = !v.showPanel
		v.savePanelPref()
	}

	s := v.scenes[v.current]
	if s.Animated() && !v.paused && len(v.frames) > 1 {
		fps := s.FPS
		if fps <= 0 {
			fps = anim.DefaultFPS
		}
		v.tick++
		// Ebiten ticks at 60 TPS; advance the frame at the scene's rate.
		if v.tick >= 60/fps {
			v.tick = 0
			v.frame = (v.frame + 1) % len(v.frames)
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(panelBg)

	if len(v.frames) > 0 {
		img := v.frames[v.frame]
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		scale := min(float64(StageWidth)/float64(w), float64(ScreenHeight)/float64(h))
		if scale > 1 {
			scale = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(
			(float64(StageWidth)-float64(w)*scale)/2,
			(float64(ScreenHeight)-float64(h)*scale)/2,
		)
		screen.DrawImage(img, op)
	}

	if v.showPanel {
		v.drawPanel(screen)
	}
}

func (v *Viewer) savePanelPref() {
	if v.store == nil {
		return
	}
	prefs, err := v.store.LoadPreferences()
	if err != nil {
		log.Printf("Failed to load preferences: %v", err)
		return
	}
	prefs.ShowLabels = v.showPanel
	if err := v.store.SavePreferences(prefs); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

func (v *Viewer) drawPanel(screen *ebiten.Image) {
	s := v.scenes[v.current]
	x := float64(StageWidth) + 20
	y := 24.0

	drawText(screen, fmt.Sprintf("Scene %d/%d", v.current+1, len(v.scenes)), x, y, GetFaceWithSize(12), panelDim)
	y += 26
	drawText(screen, s.Title, x, y, GetBoldFace(), panelTitle)
	y += 30

	for _, line := range wrapText(s.Description, PanelWidth-40, GetRegularFace()) {
		drawText(screen, line, x, y, GetRegularFace(), panelText)
		y += 20
	}
	y += 10

	if len(s.Concepts) > 0 {
		drawText(screen, "Concepts: "+strings.Join(s.Concepts, ", "), x, y, GetFaceWithSize(12), panelDim)
		y += 26
	}

	if s.Animated() {
		state := "playing"
		if v.paused {
			state = "paused"
		}
		drawText(screen, fmt.Sprintf("Frame %d/%d (%s)", v.frame+1, len(v.frames), state),
			x, y, GetFaceWithSize(12), panelDim)
		y += 26
	}

	y = ScreenHeight - 130
	for _, line := range []string{
		"left/right  switch scene",
		"space  pause",
		"S  save PNG/GIF",
		"L  toggle this panel",
	} {
		drawText(screen, line, x, y, GetFaceWithSize(12), panelDim)
		y += 20
	}

	if v.status != "" {
		drawText(screen, v.status, x, ScreenHeight-30, GetFaceWithSize(12), panelTitle)
	}
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func drawText(dst *ebiten.Image, s string, x, y float64, face *text.GoTextFace, col color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, face, op)
}

// wrapText splits s into lines no wider than maxWidth.
func wrapText(s string, maxWidth int, face *text.GoTextFace) []string {
	words := strings.Fields(s)
	var lines []string
	var cur string
	for _, w := range words {
		candidate := w
		if cur != "" {
			candidate = cur + " " + w
		}
		if width, _ := MeasureText(candidate, face); width > float64(maxWidth) && cur != "" {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = candidate
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
