package models

// Activity is one selectable habit button: a label, the points it awards, and
// a display icon. The label is the unique key. Activities are injected
// configuration; the engine never hardcodes the table.
type Activity struct {
	Label  string `toml:"label" json:"label"`
	Points int    `toml:"points" json:"points"`
	Icon   string `toml:"icon" json:"icon"`
}
