// Package observability exposes the engine's Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TapsTotal counts activity taps by label.
	TapsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "habitquest",
		Name:      "taps_total",
		Help:      "Number of activity taps, by activity label.",
	}, []string{"label"})

	// PointsEarnedTotal counts all points ever earned.
	PointsEarnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "habitquest",
		Name:      "points_earned_total",
		Help:      "Total points earned across all activities.",
	})

	// ResetsTotal counts confirmed rollover resets by kind.
	ResetsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "habitquest",
		Name:      "resets_total",
		Help:      "Number of confirmed rollover resets, by kind.",
	}, []string{"kind"})

	// ClearTodayTotal counts clear-today operations.
	ClearTodayTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "habitquest",
		Name:      "clear_today_total",
		Help:      "Number of times today's entries were cleared.",
	})

	// DailyPoints mirrors the current daily point total.
	DailyPoints = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "habitquest",
		Name:      "daily_points",
		Help:      "Current daily point total.",
	})

	// CurrentStreak mirrors the current consecutive-day streak.
	CurrentStreak = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "habitquest",
		Name:      "current_streak_days",
		Help:      "Current consecutive-day streak.",
	})
)
