package service

import (
	"sort"
	"time"

	"habitquest/internal/catalog"
	"habitquest/internal/datekey"
	"habitquest/internal/models"
)

// FrequencyStat is one row of the habit-frequency view: how often an activity
// was tapped in the rolling 7-day and 30-day windows ending today.
type FrequencyStat struct {
	Label   string `json:"label"`
	Count7  int    `json:"count7"`
	Count30 int    `json:"count30"`
	Icon    string `json:"icon"`
}

// AggregateFrequency counts events per label inside the [today-7, today] and
// [today-30, today] windows, both inclusive. Rows are sorted by the 30-day
// count descending; ties keep the order in which a label first appears in the
// log. An empty log yields an empty slice, which callers render as "no data
// yet" rather than an error.
func AggregateFrequency(log models.ActionLog, cat *catalog.Catalog, now time.Time) []FrequencyStat {
	cutoff7 := datekey.DayKey(now.AddDate(0, 0, -7))
	cutoff30 := datekey.DayKey(now.AddDate(0, 0, -30))

	byLabel := make(map[string]*FrequencyStat)
	var order []string

	for e := range log.EventsSince(cutoff30) {
		stat, ok := byLabel[e.Label]
		if !ok {
			stat = &FrequencyStat{Label: e.Label, Icon: cat.Icon(e.Label)}
			byLabel[e.Label] = stat
			order = append(order, e.Label)
		}
		stat.Count30++
		if e.Date >= cutoff7 {
			stat.Count7++
		}
	}

	stats := make([]FrequencyStat, 0, len(order))
	for _, label := range order {
		stats = append(stats, *byLabel[label])
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count30 > stats[j].Count30
	})

	return stats
}
