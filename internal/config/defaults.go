package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in snake configuration: a 640x480 canvas of
// 20 pixel cells, ten ticks per second and a three-segment snake heading right.
func Default() Settings {
	return Settings{
		Canvas:   CanvasSettings{Width: 640, Height: 480},
		CellSize: 20,
		TickRate: 10,
		Colors: ColorSettings{
			Background: "#000000",
			Border:     "#5dd8e4",
			Food:       "#ff0000",
			Snake:      "#00ff00",
		},
		Snake: SnakeSettings{
			InitialBody: []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
			Direction:   "right",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
