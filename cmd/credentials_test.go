package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCredentials_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	err := os.WriteFile(path, []byte(`{"email":"user@example.com","password":"hunter2"}`), 0600)
	if err != nil {
		t.Fatal(err)
	}

	c, err := loadCredentials(path)
	if err != nil {
		t.Fatalf("loadCredentials() error = %v", err)
	}
	if c.Email != "user@example.com" || c.Password != "hunter2" {
		t.Errorf("credentials = %+v", c)
	}
}

func TestLoadCredentials_Env(t *testing.T) {
	t.Setenv("MONARCH_EMAIL", "env@example.com")
	t.Setenv("MONARCH_PASSWORD", "s3cret")

	c, err := loadCredentials(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatalf("loadCredentials() error = %v", err)
	}
	if c.Email != "env@example.com" || c.Password != "s3cret" {
		t.Errorf("credentials = %+v", c)
	}
}

func TestLoadCredentials_FileOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	err := os.WriteFile(path, []byte(`{"email":"file@example.com","password":"filepass"}`), 0600)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("MONARCH_EMAIL", "env@example.com")
	t.Setenv("MONARCH_PASSWORD", "envpass")

	c, err := loadCredentials(path)
	if err != nil {
		t.Fatalf("loadCredentials() error = %v", err)
	}
	if c.Email != "file@example.com" || c.Password != "filepass" {
		t.Errorf("credentials = %+v, want the file to win over the environment", c)
	}
}

func TestLoadCredentials_EnvFillsMissingFileKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(`{"email":"file@example.com"}`), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MONARCH_EMAIL", "env@example.com")
	t.Setenv("MONARCH_PASSWORD", "envpass")

	c, err := loadCredentials(path)
	if err != nil {
		t.Fatalf("loadCredentials() error = %v", err)
	}
	if c.Email != "file@example.com" {
		t.Errorf("Email = %q, want the file value", c.Email)
	}
	if c.Password != "envpass" {
		t.Errorf("Password = %q, want the environment fallback", c.Password)
	}
}

func TestLoadCredentials_Missing(t *testing.T) {
	_, err := loadCredentials(filepath.Join(t.TempDir(), "credentials.json"))
	if err == nil {
		t.Fatal("loadCredentials() succeeded with no file and no environment")
	}
	if !strings.Contains(err.Error(), "MONARCH_EMAIL") {
		t.Errorf("error does not mention the environment fallback: %v", err)
	}
}

func TestLoadCredentials_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadCredentials(path); err == nil {
		t.Fatal("loadCredentials() accepted invalid JSON")
	}
}
