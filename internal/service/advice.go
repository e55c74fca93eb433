package service

import "math/rand"

// Fixed insights used at the edges of the daily target.
const (
	adviceBehind = "Vas bien; sumar una caminata de 30' o reflexión te acerca al objetivo de hoy."
	adviceDone   = "¡Objetivo diario cumplido! Probá una recompensa breve para consolidar el hábito."
)

// PickAdvice returns the insight line for the current daily progress. Below
// 40% of the target it nudges, at or past the target it congratulates, and in
// between it picks from the pool deterministically for a given seed.
func PickAdvice(seed int64, pool []string, dailyPoints, target int) string {
	if target > 0 && float64(dailyPoints) < float64(target)*0.4 {
		return adviceBehind
	}
	if target > 0 && dailyPoints >= target {
		return adviceDone
	}
	if len(pool) == 0 {
		return adviceBehind
	}

	rng := rand.New(rand.NewSource(seed))
	return pool[rng.Intn(len(pool))]
}
