package iotesting

import (
	"github.com/brianvoe/gofakeit/v6"
)

// Seed keeps generated data stable between runs.
const Seed = 42

// NewFaker returns a deterministic data generator.
func NewFaker() *gofakeit.Faker {
	return gofakeit.New(Seed)
}

// IngredientNames generates n distinct ingredient-like names made of
// letters and spaces, such as "Crunchy Mango".
func IngredientNames(f *gofakeit.Faker, n int) []string {
	seen := make(map[string]struct{})
	res := make([]string, 0, n)
	for len(res) < n {
		item := f.Fruit()
		if f.Bool() {
			item = f.Vegetable()
		}
		name := f.AdjectiveDescriptive() + " " + item
		if _, ok := seen[name]; ok || !lettersSpaces(name) {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res
}

func lettersSpaces(s string) bool {
	for _, r := range s {
		if r != ' ' && !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return s != ""
}
