package recipe

import (
	"fmt"
	"strings"
)

// CostBreakdown is what the cost calculator shows for one recipe.
type CostBreakdown struct {
	Total     float64
	Remaining float64
	Saved     float64
}

// Costs computes the total, the amount still to spend given the available
// ingredients, and the difference between the two.
func Costs(r *Recipe, available Set) CostBreakdown {
	total := r.TotalCost()
	remaining := r.RemainingCost(available)
	return CostBreakdown{
		Total:     total,
		Remaining: remaining,
		Saved:     total - remaining,
	}
}

// NameFromLabel recovers an ingredient name from a label produced by
// Ingredient.String. It keeps the legacy behaviour: only the word after the
// last space survives, so "1 tsp Black Pepper - ₱8.00" yields "pepper" and
// never matches an ingredient named "Black Pepper".
func NameFromLabel(label string) string {
	name, _, _ := strings.Cut(label, " - ")
	if i := strings.LastIndex(name, " "); i > 0 {
		name = name[i+1:]
	}
	return strings.TrimSpace(strings.ToLower(name))
}

// AvailableFromLabels builds an availability set from display labels using
// NameFromLabel.
func AvailableFromLabels(labels []string) Set {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, NameFromLabel(l))
	}
	return NewNameSet(names...)
}

// AvailableFromIndexes builds an availability set from positions in the
// recipe's ingredient list, so multi-word names match exactly.
func AvailableFromIndexes(r *Recipe, indexes []int) (Set, error) {
	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(r.ingredients) {
			return nil, fmt.Errorf("ingredient index %d out of range [0,%d)", idx, len(r.ingredients))
		}
		names = append(names, strings.ToLower(r.ingredients[idx].Name))
	}
	return NewNameSet(names...), nil
}

// AvailableFromNames lower-cases and trims names before building the set.
func AvailableFromNames(names []string) Set {
	normalised := make([]string, 0, len(names))
	for _, n := range names {
		normalised = append(normalised, strings.ToLower(strings.TrimSpace(n)))
	}
	return NewNameSet(normalised...)
}
