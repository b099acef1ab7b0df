package gui

import (
	"encoding/json"
	"os"

	"github.com/appengine-ltd/sapling/internal/plant"
)

const defaultCustomPresetsFile = "sapling-presets.json"

type presetLibrary struct {
	FormatVersion int            `json:"format_version"`
	Presets       []plant.Preset `json:"presets,omitempty"`
}

// loadCustomPresets reads a user preset library next to the binary. A
// missing file is normal and returns nothing; entries without an ID or
// axiom are skipped rather than failing the whole library.
func loadCustomPresets(path string) ([]plant.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var lib presetLibrary
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, err
	}

	items := make([]plant.Preset, 0, len(lib.Presets))
	for _, p := range lib.Presets {
		if p.ID == "" || p.Axiom == "" {
			continue
		}
		items = append(items, p)
	}
	return items, nil
}
