package iocli_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/gnames/pantry/internal/iocli"
	"github.com/gnames/pantry/internal/iodb"
	"github.com/gnames/pantry/internal/iorepo"
	"github.com/gnames/pantry/internal/ioschema"
	"github.com/gnames/pantry/internal/iotesting"
	"github.com/gnames/pantry/pkg/pantry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *pantry.Store {
	ctx := context.Background()
	cfg := iotesting.SQLiteConfig(t)
	op := iodb.NewOperator(cfg)
	require.NoError(t, op.Connect(ctx, cfg))
	t.Cleanup(func() { op.Close() })
	require.NoError(t, ioschema.NewManager(op).Create(ctx))
	return iorepo.New(op)
}

// session runs the controller over the given answers, one per line,
// and returns everything it printed.
func session(t *testing.T, store *pantry.Store, answers ...string) string {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	cli := iocli.New(store, in, &out)
	require.NoError(t, cli.Run(context.Background()))
	return out.String()
}

func register(t *testing.T, store *pantry.Store, name string) pantry.User {
	u, err := store.Users.Register(context.Background(), pantry.NewUser{
		UserName: name,
		Email:    name + "@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	return u
}

func TestExit(t *testing.T) {
	store := newStore(t)
	tests := []struct {
		msg, input, out string
	}{
		{"exit", "3\n", "Thank you for using Pantry! Goodbye!"},
		{"eof", "", "Goodbye!"},
		{"eof in prompt", "1\nalice\n", "Goodbye!"},
	}

	for _, v := range tests {
		var out bytes.Buffer
		cli := iocli.New(store, strings.NewReader(v.input), &out)
		err := cli.Run(context.Background())
		assert.Nil(t, err, v.msg)
		assert.Contains(t, out.String(), "WELCOME TO PANTRY", v.msg)
		assert.Contains(t, out.String(), v.out, v.msg)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cli := iocli.New(newStore(t), strings.NewReader("1\n"), &out)
	assert.Nil(t, cli.Run(ctx))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestChoices(t *testing.T) {
	out := session(t, newStore(t), "9", "abc", "3")
	assert.Contains(t, out, "Please enter a valid choice: 1, 2, 3")
	assert.Contains(t, out, "Please enter a number.")
	assert.Contains(t, out, "Thank you for using Pantry!")
}

func TestLogin(t *testing.T) {
	store := newStore(t)
	register(t, store, "alice")

	out := session(t, store,
		"1", "alice", "wrong-pass",
		"1", "nobody", "password1",
		"1", "alice", "password1",
		"7", "3",
	)
	assert.Equal(t, 2, strings.Count(out, "Invalid username or password."))
	assert.Contains(t, out, "Welcome back, alice!")
	assert.Contains(t, out, "Logged in as: alice")
	assert.Contains(t, out, "Goodbye, alice!")
	assert.Contains(t, out, "AUTHENTICATION")
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	ghana, err := store.Countries.Add(ctx, "Ghana")
	require.NoError(t, err)
	register(t, store, "bob")

	out := session(t, store,
		"2", "ab", "alice", "not-an-email", "alice@example.com",
		"short", "secret1", "secret2",
		"2", "alice", "alice@example.com", "secret1", "secret1", "1",
		"8",
	)
	assert.Contains(t, out, "Username must be at least 3 characters long")
	assert.Contains(t, out, "Please enter a valid email address")
	assert.Contains(t, out, "Password must be at least 6 characters long")
	assert.Contains(t, out, "Passwords do not match.")
	assert.Contains(t, out, "Select your country (optional):")
	assert.Contains(t, out, "Welcome, alice! You are now logged in.")

	u, err := store.Users.Authenticate(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotNil(t, u.CountryID)
	assert.Equal(t, ghana.ID, *u.CountryID)

	out = session(t, store,
		"2", "bob", "bob2@example.com", "secret1", "secret1", "0", "3",
	)
	assert.Contains(t, out, "Username bob already exists.")
}

func TestFoods(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	register(t, store, "alice")
	_, err := store.Countries.Add(ctx, "Italy")
	require.NoError(t, err)

	out := session(t, store,
		"1", "alice", "password1",
		"4", "Jollof Rice", "2", "Ghana", "Spicy rice dish", "",
		"4", "Risotto", "2", "", "",
		"1", "1", "",
		"3", "xyz", "999", "",
		"8",
	)
	assert.Contains(t, out, "Country 'Ghana' added successfully!")
	assert.Contains(t, out, "Food 'Jollof Rice' added successfully!")
	assert.Contains(t, out, "Food 'Risotto' added successfully!")
	assert.Contains(t, out, "Foods from Ghana")
	assert.Contains(t, out, "Please enter a valid numeric food ID.")
	assert.Contains(t, out, "Food not found.")

	foods, err := store.Foods.List(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Jollof Rice", foods[0].Name)
	assert.Equal(t, "Ghana", foods[0].Country)
	assert.Equal(t, "Italy", foods[1].Country)

	id := strconv.FormatInt(foods[0].ID, 10)
	out = session(t, store, "1", "alice", "password1", "3", id, "", "8")
	assert.Contains(t, out, "Description: Spicy rice dish")
	assert.Contains(t, out, "No ingredients information available")
}

func TestRecipes(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	alice := register(t, store, "alice")
	bob := register(t, store, "bob")
	_, err := store.Countries.Add(ctx, "Ghana")
	require.NoError(t, err)

	bobsID, err := store.Recipes.Add(ctx, pantry.UserActor(bob.ID),
		pantry.NewRecipe{Name: "Waakye", Instructions: "Boil beans."})
	require.NoError(t, err)

	out := session(t, store,
		"1", "alice", "password1",
		"5", "4", "",
		"3", "Grandmas Jollof", "1",
		"Cook slowly", "30 minutes", "45 minutes", "zero", "4", "Sunday lunch",
		"Rice", "many", "2", "cups",
		"Rice", "1", "cups",
		"",
		"",
		"4", strconv.FormatInt(bobsID, 10), "",
		"5", "8",
	)
	assert.Contains(t, out, "You have no recipes to delete.")
	assert.Contains(t, out, "Recipe 'Grandmas Jollof' added successfully!")
	assert.Contains(t, out, "Servings must be a whole number")
	assert.Contains(t, out, "Quantity must be a number")
	assert.Contains(t, out, "Added 2 cups Rice to recipe.")
	assert.Contains(t, out, "Rice is already in this recipe.")
	assert.Contains(t, out, "All ingredients added!")
	assert.Contains(t, out, "You can only delete your own recipes.")

	mine, err := store.Recipes.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	r, err := store.Recipes.Get(ctx, mine[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Ghana", r.Country)
	require.NotNil(t, r.Servings)
	assert.Equal(t, 4, *r.Servings)
	assert.Equal(t, []pantry.IngredientLine{
		{Name: "Rice", Quantity: 2, Unit: "cups"},
	}, r.Ingredients)

	id := strconv.FormatInt(mine[0].ID, 10)
	out = session(t, store,
		"1", "alice", "password1",
		"5", "2", id, "",
		"4", "Back", "",
		"4", "BACK", "",
		"4", id, "",
		"5", "8",
	)
	assert.NotContains(t, out, "Invalid recipe ID.")
	assert.Contains(t, out, "Family Notes:")
	assert.Contains(t, out, "Sunday lunch")
	assert.Contains(t, out, "Recipe deleted successfully!")

	_, err = store.Recipes.Get(ctx, mine[0].ID)
	assert.Error(t, err)
	_, err = store.Recipes.Get(ctx, bobsID)
	assert.NoError(t, err)
}

func TestIngredients(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	register(t, store, "alice")

	out := session(t, store,
		"1", "alice", "password1",
		"6", "1", "",
		"2", "123", "Plantain", "",
		"2", "Plantain", "",
		"1", "",
		"3", "8",
	)
	assert.Contains(t, out, "No ingredients found.")
	assert.Contains(t, out, "Ingredient name can only contain letters and spaces")
	assert.Contains(t, out, "Ingredient 'Plantain' added successfully!")
	assert.Contains(t, out, "Ingredient Name")

	res, err := store.Ingredients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}
