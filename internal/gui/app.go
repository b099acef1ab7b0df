//go:build cgo
// +build cgo

package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/sapling/internal/parser"
	"github.com/appengine-ltd/sapling/internal/plant"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	PresetQuery string
	RulesSpec   string
	Axiom       string
	Iterations  int
	Seed        int64
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newPlantUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

type plantUI struct {
	cfg    AppConfig
	width  int32
	height int32

	presets   []plant.Preset
	presetIdx int
	session   *plant.Session

	status      string
	statusUntil time.Time
	lastTick    time.Time
	quit        bool
}

func newPlantUI(cfg AppConfig) (*plantUI, error) {
	ui := &plantUI{
		cfg:    cfg,
		width:  1024,
		height: 768,
	}

	ui.presets = plant.BuiltInPresets()
	custom, _ := loadCustomPresets(defaultCustomPresetsFile)
	ui.presets = append(ui.presets, custom...)

	if cfg.RulesSpec != "" {
		adhoc, err := adHocPreset(cfg)
		if err != nil {
			return nil, err
		}
		ui.presets = append(ui.presets, adhoc)
		ui.presetIdx = len(ui.presets) - 1
	} else if cfg.PresetQuery != "" {
		idx, err := resolvePreset(ui.presets, cfg.PresetQuery)
		if err != nil {
			return nil, err
		}
		ui.presetIdx = idx
	}

	if err := ui.rebuildSession(cfg.Iterations); err != nil {
		return nil, err
	}
	ui.lastTick = time.Now()
	return ui, nil
}

// adHocPreset wraps a -rules/-axiom command line into a selectable preset.
func adHocPreset(cfg AppConfig) (plant.Preset, error) {
	rules, err := parser.ParseRules(cfg.RulesSpec)
	if err != nil {
		return plant.Preset{}, fmt.Errorf("invalid -rules: %w", err)
	}
	stringRules := make(map[string]string, len(rules))
	for sym, rhs := range rules {
		stringRules[string(sym)] = rhs
	}
	axiom := cfg.Axiom
	if axiom == "" {
		axiom = "X"
	}
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = 3
	}
	return plant.Preset{
		ID:          "custom",
		Name:        "Custom Rules",
		Axiom:       axiom,
		Rules:       stringRules,
		Iterations:  iterations,
		TurnAngle:   25,
		StepLength:  10,
		LengthFac:   0.8,
		StrokeWidth: 4,
	}, nil
}

// resolvePreset fuzzy-matches the query against preset IDs and names.
func resolvePreset(presets []plant.Preset, query string) (int, error) {
	reg := parser.NewRegistry()
	for _, p := range presets {
		reg.Register(p.ID, p.Name)
	}
	m, ok := reg.Match(query)
	if !ok {
		return 0, fmt.Errorf("unknown preset %q (try: %s)", query, presetIDs(presets))
	}
	for i, p := range presets {
		if p.ID == m.Canonical {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown preset %q", query)
}

func presetIDs(presets []plant.Preset) string {
	out := ""
	for i, p := range presets {
		if i > 0 {
			out += ", "
		}
		out += p.ID
	}
	return out
}

func (ui *plantUI) rebuildSession(iterations int) error {
	preset := ui.presets[ui.presetIdx]
	if iterations > 0 {
		preset.Iterations = iterations
	}
	cfg, err := preset.Config(float64(ui.width), float64(ui.height), ui.cfg.Seed)
	if err != nil {
		return err
	}
	session, err := plant.NewSession(cfg)
	if err != nil {
		return err
	}
	ui.session = session
	return nil
}

func (ui *plantUI) Run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "sapling")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *plantUI) update(delta time.Duration) {
	// Growth stages fire from the session's own interval accumulator; the
	// frame rate only controls how smoothly time is fed in.
	ui.session.Tick(delta.Seconds())

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		ui.quit = true
	case rl.IsKeyPressed(rl.KeyB):
		ui.activate(plant.PartBranch)
	case rl.IsKeyPressed(rl.KeyL):
		ui.activate(plant.PartLeaf)
	case rl.IsKeyPressed(rl.KeyG):
		ui.activate(plant.PartRoot)
	case rl.IsKeyPressed(rl.KeyR):
		ui.regenerate(ui.session.Config().Iterations)
	}

	if n, ok := digitPressed(); ok {
		ui.regenerate(n)
	}
	if dir := cycleDirection(); dir != 0 {
		ui.presetIdx = (ui.presetIdx + dir + len(ui.presets)) % len(ui.presets)
		if err := ui.rebuildSession(0); err != nil {
			ui.setStatus(err.Error())
			return
		}
		ui.setStatus(fmt.Sprintf("preset: %s", ui.presets[ui.presetIdx].Name))
	}
}

func (ui *plantUI) activate(part plant.PartType) {
	if err := ui.session.ActivateGrowth(part); err != nil {
		ui.setStatus(err.Error())
		return
	}
	ui.setStatus(fmt.Sprintf("%s growth activated", part))
}

func (ui *plantUI) regenerate(iterations int) {
	if err := ui.session.RegenerateWithIteration(iterations); err != nil {
		ui.setStatus(err.Error())
		return
	}
	ui.setStatus(fmt.Sprintf("regenerated at depth %d", iterations))
}

func (ui *plantUI) setStatus(msg string) {
	ui.status = msg
	ui.statusUntil = time.Now().Add(3 * time.Second)
}
