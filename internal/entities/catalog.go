package entities

import "slices"

// Categories is the fixed set of browseable book categories.
var Categories = []string{
	"Picture Books",
	"Early Readers",
	"Middle Grade",
	"Adventure",
	"Fantasy",
	"Educational",
	"Science Fiction",
	"Mystery",
	"Biography",
	"Fairy Tales",
	"Bedtime Stories",
}

// AgeRanges is the fixed set of reader age brackets.
var AgeRanges = []string{
	"0-2 years",
	"3-5 years",
	"6-8 years",
	"9-12 years",
}

func IsKnownCategory(category string) bool {
	return slices.Contains(Categories, category)
}

func IsKnownAgeRange(ageRange string) bool {
	return slices.Contains(AgeRanges, ageRange)
}
