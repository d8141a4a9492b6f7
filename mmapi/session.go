package mmapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// The session is the auth token persisted between runs, so that fetch
// commands do not re-authenticate (and re-trigger MFA) every time.

const defaultSessionPath = ".mm/session.json"

type sessionData struct {
	Token string `json:"token"`
}

// SaveSession writes the auth token to the session file (0600, dir 0700).
func (c *Client) SaveSession() error {
	if c.token == "" {
		return fmt.Errorf("no token to save")
	}
	if dir := filepath.Dir(c.sessionPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	data, err := json.Marshal(sessionData{Token: c.token})
	if err != nil {
		return err
	}
	return os.WriteFile(c.sessionPath, data, 0600)
}

// LoadSession reads a previously saved auth token. It returns false when
// no usable session exists, which is not an error.
func (c *Client) LoadSession() (bool, error) {
	raw, err := os.ReadFile(c.sessionPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var sd sessionData
	if err := json.Unmarshal(raw, &sd); err != nil {
		return false, fmt.Errorf("cannot parse session file %q: %w", c.sessionPath, err)
	}
	if sd.Token == "" {
		return false, nil
	}
	c.token = sd.Token
	return true, nil
}

// DeleteSession removes the session file. A missing file is not an error.
func (c *Client) DeleteSession() error {
	err := os.Remove(c.sessionPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
