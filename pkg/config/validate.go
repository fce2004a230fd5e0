package config

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/pkg/errcode"
)

// Validate checks that all settings needed to open a database are present.
// For PostgreSQL the host, user, password and database name have no
// defaults and must come from config.yaml or PANTRY_* environment
// variables. For SQLite only the file path is required.
func (c *Config) Validate() error {
	var missing []string
	db := c.Database
	switch db.Driver {
	case "sqlite":
		if db.Path == "" {
			missing = append(missing, setting("database.path"))
		}
	default:
		if db.Host == "" {
			missing = append(missing, setting("database.host"))
		}
		if db.User == "" {
			missing = append(missing, setting("database.user"))
		}
		if db.Password == "" {
			missing = append(missing, setting("database.password"))
		}
		if db.Database == "" {
			missing = append(missing, setting("database.database"))
		}
	}
	if len(missing) == 0 {
		return nil
	}

	keys := strings.Join(missing, ", ")
	return &gn.Error{
		Code: errcode.ConfigMissingError,
		Msg:  "Missing database settings: <em>%s</em>",
		Vars: []any{keys},
		Err:  fmt.Errorf("missing configuration: %s", keys),
	}
}

// setting names a config.yaml key together with its environment variable.
func setting(key string) string {
	env := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("%s (%s_%s)", key, strings.ToUpper(AppName), env)
}
