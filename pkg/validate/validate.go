// Package validate holds the single input validation policy of pantry.
// Every free-text field the user types is checked against the same
// table of go-playground/validator rules before it reaches a repository.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Field names an input field of the policy table.
type Field string

const (
	UserName       Field = "Username"
	Email          Field = "Email"
	Password       Field = "Password"
	CountryName    Field = "Country name"
	FoodName       Field = "Food name"
	RecipeName     Field = "Recipe name"
	IngredientName Field = "Ingredient name"
	Description    Field = "Description"
	Instructions   Field = "Instructions"
	PrepTime       Field = "Preparation time"
	CookTime       Field = "Cooking time"
	FamilyNotes    Field = "Family notes"
	Unit           Field = "Unit"
	Servings       Field = "Servings"
	Quantity       Field = "Quantity"
)

// Policy maps every field to its validation rule.
var Policy = map[Field]string{
	UserName:       "required,min=3,max=50,username",
	Email:          "required,max=255,email",
	Password:       "required,min=6,max=72,bcrypt_len",
	CountryName:    "required,min=2,max=100,letters_spaces",
	FoodName:       "required,min=4,max=100,letters_spaces",
	RecipeName:     "required,min=4,max=100,letters_spaces",
	IngredientName: "required,min=2,max=100,letters_spaces",
	Description:    "omitempty,max=1000,has_letter",
	Instructions:   "required,max=5000,has_letter",
	PrepTime:       "omitempty,max=50,has_letter",
	CookTime:       "omitempty,max=50,has_letter",
	FamilyNotes:    "omitempty,max=2000,has_letter",
	Unit:           "omitempty,max=30,letters_spaces",
	Servings:       "gt=0",
	Quantity:       "gt=0",
}

// Validator checks values against the policy table.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with pantry's custom rules registered.
func New() *Validator {
	v := validator.New()
	rules := map[string]validator.Func{
		"letters_spaces": lettersSpaces,
		"has_letter":     hasLetter,
		"username":       userName,
		"bcrypt_len":     bcryptLen,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("cannot register %s rule: %v", tag, err))
		}
	}
	return &Validator{v: v}
}

// Field validates a text value of the given field.
func (v *Validator) Field(f Field, value string) error {
	return v.check(f, value)
}

// Servings parses a positive whole number.
func (v *Validator) Servings(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ValidationError(Servings,
			"Servings must be a whole number", err)
	}
	if err = v.check(Servings, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Amount checks a quantity that is already a number.
func (v *Validator) Amount(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return ValidationError(Quantity, "Quantity must be a number",
			errors.New("not a finite number"))
	}
	return v.check(Quantity, q)
}

// Quantity parses a positive decimal number.
func (v *Validator) Quantity(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil && (math.IsNaN(n) || math.IsInf(n, 0)) {
		err = errors.New("not a finite number")
	}
	if err != nil {
		return 0, ValidationError(Quantity,
			"Quantity must be a number", err)
	}
	if err = v.check(Quantity, n); err != nil {
		return 0, err
	}
	return n, nil
}

func (v *Validator) check(f Field, value any) error {
	tag, ok := Policy[f]
	if !ok {
		return ValidationError(f, fmt.Sprintf("%s has no validation rule", f),
			errors.New("unknown field"))
	}

	err := v.v.Var(value, tag)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return ValidationError(f, message(f, errs[0]), err)
	}
	return ValidationError(f, fmt.Sprintf("%s is not valid", f), err)
}

func message(f Field, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", f, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", f, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f, fe.Param())
	case "email":
		return "Please enter a valid email address"
	case "letters_spaces":
		return fmt.Sprintf("%s can only contain letters and spaces", f)
	case "has_letter":
		return fmt.Sprintf("%s must contain letters, not only numbers or symbols", f)
	case "username":
		return fmt.Sprintf("%s can only contain letters, digits, '_', '.' and '-'", f)
	case "bcrypt_len":
		return fmt.Sprintf("%s must be at most %d bytes long", f, maxHashBytes)
	default:
		return fmt.Sprintf("%s is not valid", f)
	}
}

func lettersSpaces(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	var letters int
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ':
		default:
			return false
		}
	}
	return letters > 0
}

func hasLetter(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsLetter) >= 0
}

// maxHashBytes is the longest input bcrypt accepts.
const maxHashBytes = 72

func bcryptLen(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxHashBytes
}

func userName(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		case r == '_', r == '.', r == '-':
		default:
			return false
		}
	}
	return true
}
