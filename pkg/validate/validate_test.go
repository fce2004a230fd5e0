package validate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/gnames/pantry/pkg/errcode"
	"github.com/gnames/pantry/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyCoversFields(t *testing.T) {
	fields := []validate.Field{
		validate.UserName, validate.Email, validate.Password,
		validate.CountryName, validate.FoodName, validate.RecipeName,
		validate.IngredientName, validate.Description, validate.Instructions,
		validate.PrepTime, validate.CookTime, validate.FamilyNotes,
		validate.Unit, validate.Servings, validate.Quantity,
	}
	for _, v := range fields {
		assert.NotEmpty(t, validate.Policy[v], string(v))
	}
}

func TestField(t *testing.T) {
	v := validate.New()
	tests := []struct {
		msg   string
		field validate.Field
		value string
		ok    bool
		text  string
	}{
		{"username", validate.UserName, "ama_k", true, ""},
		{"short username", validate.UserName, "am", false,
			"Username must be at least 3 characters long"},
		{"username spaces", validate.UserName, "ama k", false,
			"Username can only contain letters, digits, '_', '.' and '-'"},
		{"email", validate.Email, "ama@example.com", true, ""},
		{"bad email", validate.Email, "ama.example.com", false,
			"Please enter a valid email address"},
		{"password", validate.Password, "secret", true, ""},
		{"short password", validate.Password, "12345", false,
			"Password must be at least 6 characters long"},
		{"longest password", validate.Password, strings.Repeat("a", 72), true, ""},
		{"long password", validate.Password, strings.Repeat("a", 73), false,
			"Password must be at most 72 characters long"},
		{"password over 72 bytes", validate.Password, strings.Repeat("ж", 40), false,
			"Password must be at most 72 bytes long"},
		{"food name", validate.FoodName, "Jollof Rice", true, ""},
		{"short food name", validate.FoodName, "Pie", false,
			"Food name must be at least 4 characters long"},
		{"food name digits", validate.FoodName, "Rice 2", false,
			"Food name can only contain letters and spaces"},
		{"food name accents", validate.FoodName, "Crème Brûlée", true, ""},
		{"only spaces", validate.CountryName, "    ", false,
			"Country name can only contain letters and spaces"},
		{"empty country", validate.CountryName, "", false,
			"Country name is required"},
		{"empty description", validate.Description, "", true, ""},
		{"numeric description", validate.Description, "12345", false,
			"Description must contain letters, not only numbers or symbols"},
		{"instructions", validate.Instructions, "Simmer for 1 hour", true, ""},
		{"instructions required", validate.Instructions, "", false,
			"Instructions is required"},
		{"prep time with digits", validate.PrepTime, "30 minutes", true, ""},
		{"prep time only digits", validate.PrepTime, "30", false,
			"Preparation time must contain letters, not only numbers or symbols"},
		{"empty unit", validate.Unit, "", true, ""},
		{"unit", validate.Unit, "cups", true, ""},
		{"long unit", validate.Unit, strings.Repeat("a", 31), false,
			"Unit must be at most 30 characters long"},
	}

	for _, tt := range tests {
		err := v.Field(tt.field, tt.value)
		if tt.ok {
			assert.NoError(t, err, tt.msg)
			continue
		}
		require.Error(t, err, tt.msg)
		assert.True(t, errcode.Is(err, errcode.ValidationError), tt.msg)
		assert.Equal(t, tt.text, validate.Message(err), tt.msg)
	}
}

func TestServings(t *testing.T) {
	v := validate.New()
	tests := []struct {
		msg   string
		input string
		res   int
		text  string
	}{
		{"number", "4", 4, ""},
		{"spaces", " 6 ", 6, ""},
		{"zero", "0", 0, "Servings must be greater than 0"},
		{"negative", "-2", 0, "Servings must be greater than 0"},
		{"decimal", "2.5", 0, "Servings must be a whole number"},
		{"text", "four", 0, "Servings must be a whole number"},
	}

	for _, tt := range tests {
		res, err := v.Servings(tt.input)
		assert.Equal(t, tt.res, res, tt.msg)
		if tt.text == "" {
			assert.NoError(t, err, tt.msg)
			continue
		}
		assert.Equal(t, tt.text, validate.Message(err), tt.msg)
	}
}

func TestQuantity(t *testing.T) {
	v := validate.New()
	tests := []struct {
		msg   string
		input string
		res   float64
		text  string
	}{
		{"whole", "2", 2, ""},
		{"decimal", "0.25", 0.25, ""},
		{"zero", "0", 0, "Quantity must be greater than 0"},
		{"text", "two", 0, "Quantity must be a number"},
		{"nan", "NaN", 0, "Quantity must be a number"},
		{"inf", "Inf", 0, "Quantity must be a number"},
	}

	for _, tt := range tests {
		res, err := v.Quantity(tt.input)
		assert.Equal(t, tt.res, res, tt.msg)
		if tt.text == "" {
			assert.NoError(t, err, tt.msg)
			continue
		}
		assert.True(t, errcode.Is(err, errcode.ValidationError), tt.msg)
		assert.Equal(t, tt.text, validate.Message(err), tt.msg)
	}
}

func TestAmount(t *testing.T) {
	v := validate.New()
	assert.NoError(t, v.Amount(1.5))
	assert.Equal(t, "Quantity must be greater than 0",
		validate.Message(v.Amount(-1)))
	assert.Equal(t, "Quantity must be a number",
		validate.Message(v.Amount(math.NaN())))
}
