package embedded

import (
	_ "embed"
)

// Built-in exercise presets, seeded into the database and available to the CLI
//
//go:embed data/presets.yaml
var PresetsYAML []byte
