package iocli

import (
	"context"
	"strconv"

	"github.com/gnames/pantry/pkg/errcode"
	"github.com/gnames/pantry/pkg/pantry"
	"github.com/gnames/pantry/pkg/validate"
)

func (c *CLI) login(ctx context.Context) error {
	c.out.Heading("USER LOGIN", 40)
	name, err := c.prompt(ctx, "Username: ")
	if err != nil {
		return err
	}
	password, err := c.secret(ctx, "Password: ")
	if err != nil {
		return err
	}

	c.out.Println("Authenticating...")
	u, err := c.store.Users.Authenticate(ctx, name, password)
	if err != nil {
		if errcode.Is(err, errcode.AuthenticationError) {
			c.sess.Logger().Warn("login refused", "user", name)
			c.out.Failure("Invalid username or password.")
			return nil
		}
		c.report(err)
		return nil
	}

	c.sess.Login(u)
	c.out.Success("Welcome back, %s!", u.UserName)
	return nil
}

func (c *CLI) register(ctx context.Context) error {
	c.out.Heading("USER REGISTRATION", 40)
	name, err := c.field(ctx, "Choose a username: ", validate.UserName)
	if err != nil {
		return err
	}
	email, err := c.field(ctx, "Enter your email: ", validate.Email)
	if err != nil {
		return err
	}

	var password string
	for {
		password, err = c.secret(ctx, "Choose a password (min 6 characters): ")
		if err != nil {
			return err
		}
		if err = c.val.Field(validate.Password, password); err != nil {
			c.out.Failure("%s", validate.Message(err))
			continue
		}
		break
	}
	confirm, err := c.secret(ctx, "Confirm password: ")
	if err != nil {
		return err
	}
	if confirm != password {
		c.out.Failure("Passwords do not match.")
		return nil
	}

	countryID, err := c.optionalCountry(ctx)
	if err != nil {
		return err
	}

	c.out.Println("Registering user...")
	u, err := c.store.Users.Register(ctx, pantry.NewUser{
		UserName:  name,
		Email:     email,
		Password:  password,
		CountryID: countryID,
	})
	if err != nil {
		c.report(err)
		return nil
	}

	c.out.Success("User '%s' registered successfully!", u.UserName)
	c.sess.Login(u)
	c.out.Printf("Welcome, %s! You are now logged in.\n", u.UserName)
	return nil
}

// optionalCountry lets a new user pick a country or skip with 0.
func (c *CLI) optionalCountry(ctx context.Context) (*int64, error) {
	countries, err := c.store.Countries.List(ctx)
	if err != nil {
		c.report(err)
		return nil, nil
	}
	if len(countries) == 0 {
		return nil, nil
	}

	c.out.Println("\nSelect your country (optional):")
	rows := [][2]string{{"0", "Skip (no country)"}}
	for i, v := range countries {
		rows = append(rows, [2]string{strconv.Itoa(i + 1), v.Name})
	}
	c.out.Options("Country", rows)

	n, err := c.choose(ctx, "Select country: ", 0, len(countries))
	if err != nil || n == 0 {
		return nil, err
	}
	id := countries[n-1].ID
	return &id, nil
}

func (c *CLI) logout() {
	u, _ := c.sess.Current()
	c.sess.Logout()
	c.out.Printf("\nGoodbye, %s!\n", u.UserName)
}
