package service

import (
	"fmt"
	"strings"
)

// RecipeRequestParams is the validated input for prompt construction.
// Callers must reject empty lists and zero headcounts before building;
// BuildPrompt itself never fails.
type RecipeRequestParams struct {
	IngredientsList string
	EquipmentList   string
	NumAdults       int
	NumChildren     int
	Meal            string
}

const systemRole = "You are a pragmatic home chef. You favor recipes that " +
	"use as few ingredients as possible and are simple to assemble. Keep " +
	"suggestions practical, with clear steps and no unnecessary flourishes."

// SystemRole returns the fixed system message establishing the assistant
// persona. Not parameterized.
func SystemRole() string {
	return systemRole
}

// BuildPrompt renders the user instruction for a suggestion request. It is
// deterministic and embeds the ingredient and equipment lists verbatim.
func BuildPrompt(params RecipeRequestParams) string {
	var b strings.Builder

	b.WriteString("Suggest a recipe for ")
	b.WriteString(params.Meal)
	if clause := HouseholdClause(params.NumAdults, params.NumChildren); clause != "" {
		b.WriteString(" for a household of ")
		b.WriteString(clause)
	}
	b.WriteString(".\n\n")

	b.WriteString("Available ingredients: ")
	b.WriteString(params.IngredientsList)
	b.WriteString("\n")
	b.WriteString("Available equipment: ")
	b.WriteString(params.EquipmentList)
	b.WriteString("\n\n")

	b.WriteString("Use only the ingredients and equipment listed above. ")
	b.WriteString("You do not have to use every item, but never assume ")
	b.WriteString("anything not listed is available. ")
	b.WriteString("If no viable recipe can be made from these ingredients ")
	b.WriteString("(for example, there is no protein), say that no viable ")
	b.WriteString("recipe is possible instead of inventing ingredients.")

	return b.String()
}

// HouseholdClause renders the household description: "2 adults and 3
// children", "1 adult", "1 child", or "" when both counts are zero.
func HouseholdClause(adults, children int) string {
	var parts []string
	if adults > 0 {
		parts = append(parts, countNoun(adults, "adult", "adults"))
	}
	if children > 0 {
		parts = append(parts, countNoun(children, "child", "children"))
	}
	return strings.Join(parts, " and ")
}

func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
