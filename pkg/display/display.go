package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gnames/pantry/pkg/pantry"
)

// DescriptionWidth is the longest description shown in tables.
const DescriptionWidth = 50

// Truncate shortens s to at most n characters for display, replacing
// the tail with "...". Stored text is never truncated.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// FormatQuantity prints a quantity in its shortest form: 2, 0.5, 1.25.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Banner prints a framed block of lines.
func (p *Printer) Banner(title string, lines ...string) {
	rule := strings.Repeat("=", 60)
	p.Println()
	p.Println(rule)
	p.Println(p.s.title.Render(title))
	p.Println(rule)
	for _, v := range lines {
		p.Println(v)
	}
	p.Println(rule)
}

// Heading prints a section title underlined with dashes.
func (p *Printer) Heading(title string, width int) {
	p.Println()
	p.Println(p.s.title.Render(title))
	p.Println(strings.Repeat("-", width))
}

// Success prints a line marked with a check.
func (p *Printer) Success(format string, a ...any) {
	icon := p.s.success.Render(string(IconSuccess))
	p.Printf("%s %s\n", icon, fmt.Sprintf(format, a...))
}

// Failure prints a line marked with a cross.
func (p *Printer) Failure(format string, a ...any) {
	icon := p.s.failure.Render(string(IconError))
	p.Printf("%s %s\n", icon, fmt.Sprintf(format, a...))
}

// Options prints a two-column menu of choices.
func (p *Printer) Options(header string, rows [][2]string) {
	data := make([][]string, len(rows))
	for i, v := range rows {
		data[i] = []string{v[0], v[1]}
	}
	p.Println(p.table([]string{"Option", header}, data))
}

// Foods prints a table of foods under title.
func (p *Printer) Foods(title string, foods []pantry.Food) {
	if len(foods) == 0 {
		p.Printf("\nNo %s found.\n", strings.ToLower(title))
		return
	}

	rows := make([][]string, len(foods))
	for i, v := range foods {
		rows[i] = []string{
			strconv.FormatInt(v.ID, 10),
			v.Name,
			orDefault(v.Country, "Unknown"),
			Truncate(v.Description, DescriptionWidth),
		}
	}
	p.titled(title, 60)
	p.Println(p.table([]string{"ID", "Name", "Country", "Description"}, rows))
}

// Recipes prints a table of recipes under title.
func (p *Printer) Recipes(title string, recipes []pantry.Recipe) {
	if len(recipes) == 0 {
		p.Printf("\nNo %s found.\n", strings.ToLower(title))
		return
	}

	rows := make([][]string, len(recipes))
	for i, v := range recipes {
		rows[i] = []string{
			strconv.FormatInt(v.ID, 10),
			v.Name,
			orDefault(v.Country, "Unknown"),
			orDefault(v.PrepTime, "N/A"),
			orDefault(v.CookTime, "N/A"),
			servings(v.Servings),
		}
	}
	p.titled(title, 70)
	headers := []string{
		"ID", "Recipe Name", "Country", "Prep Time", "Cook Time", "Servings",
	}
	p.Println(p.table(headers, rows))
}

// Ingredients prints a table of ingredients.
func (p *Printer) Ingredients(ingredients []pantry.Ingredient) {
	if len(ingredients) == 0 {
		p.Println("\nNo ingredients found.")
		return
	}

	rows := make([][]string, len(ingredients))
	for i, v := range ingredients {
		rows[i] = []string{strconv.FormatInt(v.ID, 10), v.Name}
	}
	p.titled("All Ingredients", 40)
	p.Println(p.table([]string{"ID", "Ingredient Name"}, rows))
}

// FoodDetails prints one food with its ingredients.
func (p *Printer) FoodDetails(f pantry.FoodDetails) {
	p.titled(f.Name, 50)
	p.Printf("Country: %s\n", orDefault(f.Country, "Unknown"))
	p.Printf("Description: %s\n",
		orDefault(f.Description, "No description available"))

	if len(f.Ingredients) > 0 {
		p.ingredientLines(f.Ingredients)
	} else {
		p.Println("\nNo ingredients information available")
	}
	p.Println(strings.Repeat("-", 50))
}

// RecipeDetails prints one recipe with its ingredients and notes.
func (p *Printer) RecipeDetails(r pantry.RecipeDetails) {
	p.titled(r.Name, 50)
	p.Printf("Country: %s\n", orDefault(r.Country, "Unknown"))
	p.Printf("Prep Time: %s\n", orDefault(r.PrepTime, "N/A"))
	p.Printf("Cook Time: %s\n", orDefault(r.CookTime, "N/A"))
	p.Printf("Servings: %s\n", servings(r.Servings))

	if len(r.Ingredients) > 0 {
		p.ingredientLines(r.Ingredients)
	} else {
		p.Println("\nNo ingredients listed")
	}

	p.Println("\nInstructions:")
	p.Println(orDefault(r.Instructions, "No instructions provided"))

	if r.FamilyNotes != "" {
		p.Println("\nFamily Notes:")
		p.Println(r.FamilyNotes)
	}
	p.Println(strings.Repeat("-", 50))
}

// Amount joins a quantity and its unit, "2 cups".
func Amount(quantity float64, unit string) string {
	return strings.TrimSpace(FormatQuantity(quantity) + " " + unit)
}

func (p *Printer) ingredientLines(lines []pantry.IngredientLine) {
	p.Println("\nIngredients:")
	bullet := p.s.muted.Render(string(IconBullet))
	for _, v := range lines {
		p.Printf("  %s %s - %s\n", bullet, v.Name, Amount(v.Quantity, v.Unit))
	}
}

func (p *Printer) titled(title string, width int) {
	p.Println()
	p.Println(p.s.title.Render(title))
	p.Println(strings.Repeat("=", width))
}

func (p *Printer) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.s.header
			}
			return p.s.cell
		})
	return t.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func servings(n *int) string {
	if n == nil {
		return "N/A"
	}
	return strconv.Itoa(*n)
}
