// Package reporting derives dashboard statistics from logs at read time.
// Nothing here is stored; every figure is recomputed per request.
package reporting

import (
	"math"
	"strings"

	"coachmarket/internal/domain"
)

// ProgressWindowDays is the fixed denominator of the client-side progress figure.
// The coach side uses the program's cycle length instead; the two are kept
// apart on purpose.
const ProgressWindowDays = 30

// UnnamedClient is shown when a client has neither a full name nor a username.
const UnnamedClient = "Unnamed Client"

// MacroAverages are per-meal means over a set of meal logs.
type MacroAverages struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// AverageCalories is round(sum(calories) / len(meals)), or 0 without meals.
func AverageCalories(meals []domain.MealLog) int {
	return AverageMacros(meals).Calories
}

// AverageMacros averages every macro over meals, 0 for each without meals.
func AverageMacros(meals []domain.MealLog) MacroAverages {
	if len(meals) == 0 {
		return MacroAverages{}
	}
	var cal, protein, carbs, fats float64
	for _, m := range meals {
		cal += m.Calories
		protein += m.Protein
		carbs += m.Carbs
		fats += m.Fats
	}
	n := float64(len(meals))
	return MacroAverages{
		Calories: round(cal / n),
		Protein:  round(protein / n),
		Carbs:    round(carbs / n),
		Fats:     round(fats / n),
	}
}

// ProgressVs30Days is round(100 * totalWorkouts / 30). It is not capped at 100.
func ProgressVs30Days(totalWorkouts int) int {
	return round(100 * float64(totalWorkouts) / ProgressWindowDays)
}

// ProgramCompletion is round(100 * workoutCount / max(cycleLength, 1)).
func ProgramCompletion(workoutCount, cycleLength int) int {
	return round(100 * float64(workoutCount) / float64(max(cycleLength, 1)))
}

// WorkoutFrequency is workoutCount / max(cycleLength, 1) rounded to two decimals.
func WorkoutFrequency(workoutCount, cycleLength int) float64 {
	return math.Round(float64(workoutCount)/float64(max(cycleLength, 1))*100) / 100
}

// ClientDisplayName falls back from the full name to the local part of the
// username, then to UnnamedClient. It never returns an empty string.
func ClientDisplayName(fullName, username string) string {
	if name := strings.TrimSpace(fullName); name != "" {
		return name
	}
	if local, _, _ := strings.Cut(strings.TrimSpace(username), "@"); local != "" {
		return local
	}
	return UnnamedClient
}

// ProgramTypeHistogram counts programs per type. Every known type is present,
// possibly with a zero count.
func ProgramTypeHistogram(programs []domain.Program) map[domain.ProgramType]int {
	hist := map[domain.ProgramType]int{
		domain.ProgramTypeLifting: 0,
		domain.ProgramTypeDiet:    0,
		domain.ProgramTypePosing:  0,
	}
	for _, p := range programs {
		hist[p.Type]++
	}
	return hist
}

// round is half-away-from-zero, matching what dashboards display.
func round(v float64) int {
	return int(math.Round(v))
}
