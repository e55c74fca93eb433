// Package catalog loads the injected configuration tables: the selectable
// activities, the six level stages of a month, and the advice pool. The
// engine treats all of these as data supplied from outside.
package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"habitquest/internal/models"
)

// Catalog bundles the static configuration the engine consumes.
type Catalog struct {
	Activities []models.Activity `toml:"activity"`
	Levels     LevelConfig       `toml:"levels"`
	Advice     []string          `toml:"advice"`
}

// LevelConfig describes the six narrative stages of a month.
type LevelConfig struct {
	Names         []string  `toml:"names"`
	StagePercents []float64 `toml:"stage_percents"`
	Backgrounds   []string  `toml:"backgrounds"`
}

// Load reads a catalog from a TOML file. A missing file yields the built-in
// defaults; a present but invalid file is an error.
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return &c, nil
}

// Validate checks the structural invariants of the catalog.
func (c *Catalog) Validate() error {
	if len(c.Activities) == 0 {
		return fmt.Errorf("no activities defined")
	}

	seen := make(map[string]bool, len(c.Activities))
	for _, a := range c.Activities {
		if a.Label == "" {
			return fmt.Errorf("activity with empty label")
		}
		if a.Points <= 0 {
			return fmt.Errorf("activity %q has non-positive points %d", a.Label, a.Points)
		}
		if seen[a.Label] {
			return fmt.Errorf("duplicate activity label %q", a.Label)
		}
		seen[a.Label] = true
	}

	if len(c.Levels.Names) != 6 {
		return fmt.Errorf("expected 6 level names, got %d", len(c.Levels.Names))
	}
	if len(c.Levels.StagePercents) != 6 {
		return fmt.Errorf("expected 6 stage percents, got %d", len(c.Levels.StagePercents))
	}
	if len(c.Levels.Backgrounds) != 6 {
		return fmt.Errorf("expected 6 level backgrounds, got %d", len(c.Levels.Backgrounds))
	}

	return nil
}

// Find returns the activity with the given label, or false when unknown.
func (c *Catalog) Find(label string) (models.Activity, bool) {
	for _, a := range c.Activities {
		if a.Label == label {
			return a, true
		}
	}
	return models.Activity{}, false
}

// Icon returns the icon of the labeled activity, or a fallback star for
// labels no longer present in the configuration.
func (c *Catalog) Icon(label string) string {
	if a, ok := c.Find(label); ok {
		return a.Icon
	}
	return "⭐"
}

// Default returns the built-in catalog used when no file is supplied.
func Default() *Catalog {
	return &Catalog{
		Activities: []models.Activity{
			{Label: "Entrené", Points: 10, Icon: "🏋️‍♂️"},
			{Label: "Caminé 30 min", Points: 5, Icon: "🚶"},
			{Label: "Comí saludable", Points: 5, Icon: "🥗"},
			{Label: "Dormí 7h+", Points: 5, Icon: "😴"},
			{Label: "Sin pantallas", Points: 5, Icon: "📵"},
			{Label: "Reflexioné", Points: 5, Icon: "📝"},
			{Label: "Tarea laboral", Points: 10, Icon: "💼"},
			{Label: "Aprendí algo", Points: 5, Icon: "📚"},
			{Label: "Mejoré proceso", Points: 10, Icon: "⚙️"},
		},
		Levels: LevelConfig{
			Names: []string{
				"El llamado a la aventura",
				"Primeros pasos",
				"El camino de las pruebas",
				"Frente al abismo",
				"Salto de fe",
				"La gloria eterna",
			},
			StagePercents: []float64{0.8, 0.9, 1.0, 1.1, 1.2, 1.0},
			Backgrounds: []string{
				"bg1_forest",
				"bg2_village",
				"bg3_mountain",
				"bg4_cave",
				"bg5_castle",
				"bg6_legend",
			},
		},
		Advice: []string{
			"Probá sumar 10' sin pantallas después de comer.",
			"Dormir 7h+ hoy te acerca a tu mejor versión.",
			"Pequeño sprint: completá una tarea laboral clave.",
			"Caminata de 30' = foco + creatividad.",
			"Micro-diario: 3 líneas de gratitud hoy.",
			"Si ya entrenaste, hidratate y estirá 5'.",
		},
	}
}
