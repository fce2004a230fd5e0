// Package iocli runs the interactive menu loop of pantry over an
// injected reader and writer.
package iocli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gnames/pantry/pkg/display"
	"github.com/gnames/pantry/pkg/pantry"
	"github.com/gnames/pantry/pkg/validate"
)

// errDone ends the session on the user's request.
var errDone = errors.New("exit requested")

// CLI is the interactive controller. It owns one Session.
type CLI struct {
	store *pantry.Store
	sess  *pantry.Session
	val   *validate.Validator
	out   *display.Printer
	in    *input
}

// New creates a controller that reads answers from r and writes to w.
func New(store *pantry.Store, r io.Reader, w io.Writer) *CLI {
	return &CLI{
		store: store,
		sess:  pantry.NewSession(),
		val:   validate.New(),
		out:   display.New(w),
		in:    newInput(r),
	}
}

// Session returns the session of the controller.
func (c *CLI) Session() *pantry.Session {
	return c.sess
}

// Run shows the welcome banner and loops over the menus until the user
// exits, the input ends or ctx is canceled. Repository errors are
// reported to the user and do not stop the loop.
func (c *CLI) Run(ctx context.Context) error {
	defer c.in.close()
	slog.Info("interactive session started")

	c.out.Banner(
		"WELCOME TO PANTRY - FOOD MANAGEMENT SYSTEM",
		"Discover foods from Rwanda, Ghana, Nigeria, Kenya & more!",
		"Manage your recipes and explore culinary traditions.",
	)

	for {
		var err error
		if _, ok := c.sess.Current(); ok {
			err = c.mainMenu(ctx)
		} else {
			err = c.authMenu(ctx)
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, errDone):
			c.out.Println("\nThank you for using Pantry! Goodbye!")
		case errors.Is(err, errExit):
			c.out.Println("\nGoodbye!")
		default:
			return err
		}
		c.sess.Logout()
		slog.Info("interactive session ended")
		return nil
	}
}

func (c *CLI) authMenu(ctx context.Context) error {
	c.out.Heading("AUTHENTICATION", 40)
	c.out.Options("Action", [][2]string{
		{"1", "Login"},
		{"2", "Register New Account"},
		{"3", "Exit"},
	})

	n, err := c.choose(ctx, "Enter your choice: ", 1, 3)
	if err != nil {
		return err
	}
	switch n {
	case 1:
		return c.login(ctx)
	case 2:
		return c.register(ctx)
	default:
		return errDone
	}
}

func (c *CLI) mainMenu(ctx context.Context) error {
	u, _ := c.sess.Current()
	c.out.Heading("MAIN MENU", 40)
	c.out.Printf("Logged in as: %s\n", u.UserName)
	c.out.Options("Action", [][2]string{
		{"1", "Browse Foods by Country"},
		{"2", "View All Foods"},
		{"3", "View Food Details"},
		{"4", "Add New Food"},
		{"5", "Recipes Menu"},
		{"6", "Ingredients Menu"},
		{"7", "Logout"},
		{"8", "Exit Program"},
	})

	n, err := c.choose(ctx, "Enter your choice: ", 1, 8)
	if err != nil {
		return err
	}

	switch n {
	case 1:
		err = c.browseByCountry(ctx)
	case 2:
		err = c.viewFoods(ctx)
	case 3:
		err = c.foodDetails(ctx)
	case 4:
		err = c.addFood(ctx)
	case 5:
		return c.recipesMenu(ctx)
	case 6:
		return c.ingredientsMenu(ctx)
	case 7:
		c.logout()
		return nil
	default:
		return errDone
	}
	if err != nil {
		return err
	}
	return c.pause(ctx)
}

func (c *CLI) recipesMenu(ctx context.Context) error {
	for {
		c.out.Heading("RECIPES MENU", 40)
		c.out.Options("Action", [][2]string{
			{"1", "View All Recipes"},
			{"2", "View Recipe Details"},
			{"3", "Add New Recipe"},
			{"4", "Delete My Recipe"},
			{"5", "Back to Main Menu"},
		})

		n, err := c.choose(ctx, "Enter your choice: ", 1, 5)
		if err != nil {
			return err
		}

		switch n {
		case 1:
			err = c.viewRecipes(ctx)
		case 2:
			err = c.recipeDetails(ctx)
		case 3:
			err = c.addRecipe(ctx)
		case 4:
			err = c.deleteRecipe(ctx)
		default:
			return nil
		}
		if err == nil {
			err = c.pause(ctx)
		}
		if err != nil {
			return err
		}
	}
}

func (c *CLI) ingredientsMenu(ctx context.Context) error {
	for {
		c.out.Heading("INGREDIENTS MENU", 40)
		c.out.Options("Action", [][2]string{
			{"1", "View All Ingredients"},
			{"2", "Add New Ingredient"},
			{"3", "Back to Main Menu"},
		})

		n, err := c.choose(ctx, "Enter your choice: ", 1, 3)
		if err != nil {
			return err
		}

		switch n {
		case 1:
			err = c.viewIngredients(ctx)
		case 2:
			err = c.addIngredient(ctx)
		default:
			return nil
		}
		if err == nil {
			err = c.pause(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// prompt prints label and returns the trimmed answer.
func (c *CLI) prompt(ctx context.Context, label string) (string, error) {
	c.out.Printf("%s", label)
	s, err := c.in.read(ctx, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// secret reads an answer without echo when possible. Passwords are not
// trimmed.
func (c *CLI) secret(ctx context.Context, label string) (string, error) {
	c.out.Printf("%s", label)
	s, err := c.in.read(ctx, true)
	if err != nil {
		return "", err
	}
	if c.in.masksInput() {
		c.out.Println()
	}
	return s, nil
}

// field prompts until the answer passes the rule of f.
func (c *CLI) field(
	ctx context.Context,
	label string,
	f validate.Field,
) (string, error) {
	for {
		s, err := c.prompt(ctx, label)
		if err != nil {
			return "", err
		}
		if err = c.val.Field(f, s); err != nil {
			c.out.Failure("%s", validate.Message(err))
			continue
		}
		return s, nil
	}
}

// choose prompts until the answer is a number from lo to hi.
func (c *CLI) choose(ctx context.Context, label string, lo, hi int) (int, error) {
	for {
		s, err := c.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			c.out.Failure("Please enter a number.")
			continue
		}
		if n < lo || n > hi {
			c.out.Failure("Please enter a valid choice: %s", choices(lo, hi))
			continue
		}
		return n, nil
	}
}

// askID prompts for a numeric id. The bool is false when the user
// typed "back".
func (c *CLI) askID(
	ctx context.Context,
	label, invalid string,
) (int64, bool, error) {
	for {
		s, err := c.prompt(ctx, label)
		if err != nil {
			return 0, false, err
		}
		if strings.EqualFold(s, "back") {
			return 0, false, nil
		}
		if id, ok := parseID(s); ok {
			return id, true, nil
		}
		c.out.Failure("%s", invalid)
	}
}

func (c *CLI) pause(ctx context.Context) error {
	_, err := c.prompt(ctx, "\nPress Enter to continue...")
	return err
}

func choices(lo, hi int) string {
	res := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		res = append(res, strconv.Itoa(i))
	}
	return strings.Join(res, ", ")
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil
}
