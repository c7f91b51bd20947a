package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The validators below accept loosely typed JSON values (as produced by
// encoding/json into `any`) and either return a typed value or a
// *ValidationError naming every offending field.

func ValidateMealPlan(obj any) (MealPlan, error) {
	r, verr := newFieldReader(obj)
	if verr != nil {
		return MealPlan{}, verr
	}
	plan := MealPlan{
		MealName:        r.requiredString("mealName"),
		TargetCalories:  r.requiredNumber("targetCalories"),
		TargetProtein:   r.requiredNumber("targetProtein"),
		TargetCarbs:     r.requiredNumber("targetCarbs"),
		TargetFats:      r.requiredNumber("targetFats"),
		Notes:           r.requiredString("notes"),
		FoodSuggestions: r.requiredStringArray("foodSuggestions"),
	}
	if err := r.errs.OrNil(); err != nil {
		return MealPlan{}, err
	}
	return plan, nil
}

func ValidatePosingPlan(obj any) (PosingPlan, error) {
	r, verr := newFieldReader(obj)
	if verr != nil {
		return PosingPlan{}, verr
	}
	plan := PosingPlan{
		Bio:     r.requiredString("bio"),
		Details: r.requiredString("details"),
	}
	pref := CommunicationPreference(r.requiredString("communicationPreference"))
	switch pref {
	case CommunicationEmail, CommunicationChat, CommunicationVideo:
		plan.CommunicationPreference = pref
	case "":
	default:
		r.errs.Add("communicationPreference", "must be one of email, chat, video")
	}
	if err := r.errs.OrNil(); err != nil {
		return PosingPlan{}, err
	}
	return plan, nil
}

// ValidateRoutine validates a fully identified routine, as carried by
// enrollment customizations.
func ValidateRoutine(obj any) (Routine, error) {
	r, verr := newFieldReader(obj)
	if verr != nil {
		return Routine{}, verr
	}
	routine := Routine{
		ID:           r.requiredObjectID("id"),
		Name:         r.nonBlankString("name"),
		OrderInCycle: r.requiredInt("orderInCycle", 1),
		DayOfWeek:    r.optionalDayOfWeek("dayOfWeek"),
		Notes:        r.optionalString("notes"),
	}
	items := r.requiredArray("exercises")
	routine.Exercises = make([]Exercise, 0, len(items))
	positions := make(map[int]bool, len(items))
	for i, item := range items {
		er, everr := newFieldReader(item)
		path := fmt.Sprintf("exercises[%d]", i)
		if everr != nil {
			r.errs.Merge(path, everr)
			continue
		}
		ex := Exercise{
			ID:             er.requiredObjectID("id"),
			RoutineID:      routine.ID,
			Name:           er.nonBlankString("name"),
			Sets:           er.requiredInt("sets", 1),
			Reps:           er.requiredString("reps"),
			OrderInRoutine: er.requiredInt("orderInRoutine", 1),
			Description:    er.optionalString("description"),
			RestTime:       er.optionalString("restTime"),
			Notes:          er.optionalString("notes"),
		}
		// orderInRoutine is unique within one routine.
		if ex.OrderInRoutine > 0 {
			if positions[ex.OrderInRoutine] {
				er.errs.Add("orderInRoutine", "must be unique")
			}
			positions[ex.OrderInRoutine] = true
		}
		r.errs.Merge(path, er.errs)
		routine.Exercises = append(routine.Exercises, ex)
	}
	if err := r.errs.OrNil(); err != nil {
		return Routine{}, err
	}
	return routine, nil
}

// ValidateWorkoutDay validates one authoring-time routine draft (no ids, no
// positions; those are assigned on insert).
func ValidateWorkoutDay(obj any) (WorkoutDay, error) {
	r, verr := newFieldReader(obj)
	if verr != nil {
		return WorkoutDay{}, verr
	}
	day := WorkoutDay{
		Name:      r.nonBlankString("name"),
		DayOfWeek: r.optionalDayOfWeek("dayOfWeek"),
		Notes:     r.optionalString("notes"),
	}
	items := r.optionalArray("exercises")
	day.Exercises = make([]ExerciseDraft, 0, len(items))
	for i, item := range items {
		er, everr := newFieldReader(item)
		path := fmt.Sprintf("exercises[%d]", i)
		if everr != nil {
			r.errs.Merge(path, everr)
			continue
		}
		ex := ExerciseDraft{
			Name:        er.nonBlankString("name"),
			Sets:        er.requiredInt("sets", 1),
			Reps:        er.requiredString("reps"),
			Description: er.optionalString("description"),
			RestTime:    er.optionalString("restTime"),
			Notes:       er.optionalString("notes"),
		}
		r.errs.Merge(path, er.errs)
		day.Exercises = append(day.Exercises, ex)
	}
	if err := r.errs.OrNil(); err != nil {
		return WorkoutDay{}, err
	}
	return day, nil
}

func ValidateMealPlans(obj any) ([]MealPlan, error) {
	return validateList(obj, ValidateMealPlan)
}

func ValidateRoutines(obj any) ([]Routine, error) {
	routines, err := validateList(obj, ValidateRoutine)
	if err != nil {
		return nil, err
	}
	// orderInCycle must be unique within one routine set.
	verr := &ValidationError{}
	seen := make(map[int]bool, len(routines))
	for i, rt := range routines {
		if seen[rt.OrderInCycle] {
			verr.Add(fmt.Sprintf("[%d].orderInCycle", i), "must be unique")
		}
		seen[rt.OrderInCycle] = true
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return routines, nil
}

func ValidateWorkoutDays(obj any) ([]WorkoutDay, error) {
	return validateList(obj, ValidateWorkoutDay)
}

func validateList[T any](obj any, validate func(any) (T, error)) ([]T, error) {
	items, ok := obj.([]any)
	if !ok {
		return nil, NewValidationError("", "must be an array")
	}
	verr := &ValidationError{}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := validate(item)
		if err != nil {
			if ve, ok := err.(*ValidationError); ok {
				verr.Merge(fmt.Sprintf("[%d]", i), ve)
				continue
			}
			verr.Add(fmt.Sprintf("[%d]", i), err.Error())
			continue
		}
		out = append(out, v)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

type fieldReader struct {
	obj  map[string]any
	errs *ValidationError
}

func newFieldReader(obj any) (fieldReader, *ValidationError) {
	m, ok := obj.(map[string]any)
	if !ok {
		return fieldReader{}, NewValidationError("", "must be an object")
	}
	return fieldReader{obj: m, errs: &ValidationError{}}, nil
}

func (r fieldReader) requiredString(key string) string {
	v, ok := r.obj[key]
	if !ok || v == nil {
		r.errs.Add(key, "is required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.errs.Add(key, "must be a string")
		return ""
	}
	return s
}

// nonBlankString is requiredString for names: whitespace-only values are rejected.
func (r fieldReader) nonBlankString(key string) string {
	v, ok := r.obj[key]
	if !ok || v == nil {
		r.errs.Add(key, "is required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.errs.Add(key, "must be a string")
		return ""
	}
	if strings.TrimSpace(s) == "" {
		r.errs.Add(key, "must not be empty")
		return ""
	}
	return s
}

func (r fieldReader) optionalString(key string) string {
	v, ok := r.obj[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.errs.Add(key, "must be a string")
		return ""
	}
	return s
}

func (r fieldReader) requiredNumber(key string) float64 {
	v, ok := r.obj[key]
	if !ok || v == nil {
		r.errs.Add(key, "is required")
		return 0
	}
	n, ok := toFloat(v)
	if !ok {
		r.errs.Add(key, "must be a number")
		return 0
	}
	return n
}

func (r fieldReader) requiredInt(key string, min int) int {
	v, ok := r.obj[key]
	if !ok || v == nil {
		r.errs.Add(key, "is required")
		return 0
	}
	n, ok := toFloat(v)
	if !ok {
		r.errs.Add(key, "must be a number")
		return 0
	}
	if n != math.Trunc(n) {
		r.errs.Add(key, "must be an integer")
		return 0
	}
	if int(n) < min {
		r.errs.Add(key, fmt.Sprintf("must be >= %d", min))
		return 0
	}
	return int(n)
}

func (r fieldReader) optionalDayOfWeek(key string) *int {
	v, ok := r.obj[key]
	if !ok || v == nil {
		return nil
	}
	n, ok := toFloat(v)
	if !ok || n != math.Trunc(n) || n < 1 || n > 7 {
		r.errs.Add(key, "must be an integer between 1 and 7")
		return nil
	}
	day := int(n)
	return &day
}

func (r fieldReader) requiredObjectID(key string) primitive.ObjectID {
	s := r.requiredString(key)
	if s == "" {
		return primitive.NilObjectID
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		r.errs.Add(key, "must be a valid id")
		return primitive.NilObjectID
	}
	return id
}

func (r fieldReader) requiredArray(key string) []any {
	v, ok := r.obj[key]
	if !ok || v == nil {
		r.errs.Add(key, "is required")
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.errs.Add(key, "must be an array")
		return nil
	}
	return items
}

func (r fieldReader) optionalArray(key string) []any {
	v, ok := r.obj[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.errs.Add(key, "must be an array")
		return nil
	}
	return items
}

func (r fieldReader) requiredStringArray(key string) []string {
	items := r.requiredArray(key)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			r.errs.Add(fmt.Sprintf("%s[%d]", key, i), "must be a string")
			continue
		}
		out = append(out, s)
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
