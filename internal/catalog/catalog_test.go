package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(c.Activities) != 9 {
		t.Errorf("expected 9 default activities, got %d", len(c.Activities))
	}
	if len(c.Advice) == 0 {
		t.Error("default catalog has no advice pool")
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() of missing file returned error: %v", err)
	}
	if len(c.Activities) != len(Default().Activities) {
		t.Errorf("expected default activities, got %d", len(c.Activities))
	}
}

func TestLoadParsesFile(t *testing.T) {
	content := `
advice = ["tip"]

[[activity]]
label = "Entrené"
points = 10
icon = "🏋️"

[[activity]]
label = "Caminé 30 min"
points = 5
icon = "🚶"

[levels]
names = ["a", "b", "c", "d", "e", "f"]
stage_percents = [0.8, 0.9, 1.0, 1.1, 1.2, 1.0]
backgrounds = ["1", "2", "3", "4", "5", "6"]
`
	path := filepath.Join(t.TempDir(), "activities.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(c.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(c.Activities))
	}
	if a, ok := c.Find("Entrené"); !ok || a.Points != 10 {
		t.Errorf("Find(Entrené) = %+v, %v", a, ok)
	}
	if c.Icon("unknown label") != "⭐" {
		t.Errorf("Icon() fallback = %v, want ⭐", c.Icon("unknown label"))
	}
	if len(c.Advice) != 1 || c.Advice[0] != "tip" {
		t.Errorf("Advice = %v, want [tip]", c.Advice)
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{
			name:   "no activities",
			mutate: func(c *Catalog) { c.Activities = nil },
		},
		{
			name:   "zero points",
			mutate: func(c *Catalog) { c.Activities[0].Points = 0 },
		},
		{
			name:   "duplicate label",
			mutate: func(c *Catalog) { c.Activities[1].Label = c.Activities[0].Label },
		},
		{
			name:   "wrong level name count",
			mutate: func(c *Catalog) { c.Levels.Names = c.Levels.Names[:5] },
		},
		{
			name:   "wrong stage percent count",
			mutate: func(c *Catalog) { c.Levels.StagePercents = append(c.Levels.StagePercents, 1.5) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() accepted an invalid catalog")
			}
		})
	}
}
