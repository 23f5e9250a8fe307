package workout

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortSpec is a parsed "field:direction" sort parameter.
type SortSpec struct {
	Field      string
	Descending bool
}

// ParseSort splits "field:asc|desc". Anything other than "desc" sorts ascending.
func ParseSort(raw string) SortSpec {
	parts := strings.Split(raw, ":")
	return SortSpec{Field: parts[0], Descending: len(parts) > 1 && parts[1] == "desc"}
}

// numericFields compare by value; textFields compare with an English collator.
var (
	numericFields = map[string]func(Workout) float64{
		"duration":       func(w Workout) float64 { return w.Duration },
		"caloriesBurned": func(w Workout) float64 { return w.CaloriesBurned },
	}
	textFields = map[string]func(Workout) string{
		"id":       func(w Workout) string { return w.ID },
		"ownerId":  func(w Workout) string { return w.OwnerID },
		"date":     func(w Workout) string { return w.Date },
		"exercise": func(w Workout) string { return w.Exercise },
		"notes":    func(w Workout) string { return w.Notes },
	}
)

// sortWorkouts orders workouts in place. Unknown fields keep the stored order.
func sortWorkouts(workouts []Workout, spec SortSpec) {
	var cmp func(a, b Workout) int

	if num, ok := numericFields[spec.Field]; ok {
		cmp = func(a, b Workout) int {
			x, y := num(a), num(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	} else if text, ok := textFields[spec.Field]; ok {
		// Collator keeps internal buffers, one per sort call.
		col := collate.New(language.English)
		cmp = func(a, b Workout) int {
			return col.CompareString(text(a), text(b))
		}
	} else {
		return
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		if spec.Descending {
			return cmp(workouts[j], workouts[i]) < 0
		}
		return cmp(workouts[i], workouts[j]) < 0
	})
}

func filter(workouts []Workout, keep func(Workout) bool) []Workout {
	out := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
