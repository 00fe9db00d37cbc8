package config

import "sort"

// Preset is a named Gray-Scott kinetic regime. Feed/kill pairs follow
// the classic Pearson parameter map.
type Preset struct {
	Feed          float64
	Kill          float64
	DiffusionRate float64
	Description   string
}

var Presets = map[string]Preset{
	"solitons": {
		Feed: 0.030, Kill: 0.062, DiffusionRate: 0.7,
		Description: "self-replicating spots",
	},
	"mitosis": {
		Feed: 0.0367, Kill: 0.0649, DiffusionRate: 0.7,
		Description: "dividing cell-like blobs",
	},
	"coral": {
		Feed: 0.0545, Kill: 0.062, DiffusionRate: 0.7,
		Description: "branching coral growth",
	},
	"worms": {
		Feed: 0.078, Kill: 0.061, DiffusionRate: 0.7,
		Description: "crawling worm filaments",
	},
	"waves": {
		Feed: 0.014, Kill: 0.045, DiffusionRate: 0.9,
		Description: "unstable traveling waves",
	},
	"maze": {
		Feed: 0.029, Kill: 0.057, DiffusionRate: 0.7,
		Description: "labyrinthine stripes",
	},
}

// PresetNames returns the preset names in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
