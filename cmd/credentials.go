package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

const defaultCredentialsFile = "credentials.json"

// Credentials identify the Monarch Money account to log into.
type Credentials struct {
	Email    string
	Password string
}

// loadCredentials resolves credentials from the JSON file at path. The
// MONARCH_EMAIL and MONARCH_PASSWORD environment variables fill in only
// the values the file does not provide, so a present file always wins.
func loadCredentials(path string) (Credentials, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Credentials{}, fmt.Errorf("cannot read credentials file %q: %w", path, err)
	}

	c := Credentials{
		Email:    v.GetString("email"),
		Password: v.GetString("password"),
	}
	if c.Email == "" {
		c.Email = os.Getenv("MONARCH_EMAIL")
	}
	if c.Password == "" {
		c.Password = os.Getenv("MONARCH_PASSWORD")
	}
	if c.Email == "" || c.Password == "" {
		return Credentials{}, fmt.Errorf(
			"credentials not found: create %s with {\"email\":...,\"password\":...} or set MONARCH_EMAIL and MONARCH_PASSWORD",
			path,
		)
	}
	return c, nil
}
