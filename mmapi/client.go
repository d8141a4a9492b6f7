// Package mmapi provides an HTTP client for the Monarch Money API.
//
// Authentication is a token obtained either from the login endpoint
// (email/password, with an optional TOTP code when the server demands
// multi-factor authentication) or pasted in from a browser session.
// The token can be persisted to a session file between runs.
package mmapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.monarch.com"
	userAgent      = "MonarchMoneyAPI (https://github.com/hammem/monarchmoney)"
)

// ErrMFARequired is returned by Login when the server demands a
// multi-factor code. Callers should prompt for a TOTP and retry once.
var ErrMFARequired = errors.New("multi-factor authentication required")

// Client holds auth state and HTTP configuration for the Monarch Money API.
type Client struct {
	token       string
	baseURL     string
	sessionPath string
	httpClient  *http.Client
	log         *logrus.Logger
}

// New creates a Client with a 30-second timeout and the default session path.
func New() *Client {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &Client{
		baseURL:     defaultBaseURL,
		sessionPath: defaultSessionPath,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
}

// SetToken sets the auth token directly (e.g. extracted from a browser).
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current auth token.
func (c *Client) Token() string { return c.token }

// SetBaseURL overrides the API endpoint. Intended for tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimSuffix(u, "/") }

// SetSessionPath overrides where the session token is persisted.
func (c *Client) SetSessionPath(path string) { c.sessionPath = path }

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(log *logrus.Logger) { c.log = log }

type loginRequest struct {
	Password      string `json:"password"`
	SupportsMFA   bool   `json:"supports_mfa"`
	TrustedDevice bool   `json:"trusted_device"`
	Username      string `json:"username"`
	TOTP          string `json:"totp,omitempty"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates with email and password. A non-empty totp is sent
// along for the MFA flow. If the server responds 403, ErrMFARequired is
// returned and the caller is expected to retry with a code.
func (c *Client) Login(email, password, totp string) error {
	payload, err := json.Marshal(loginRequest{
		Password:      password,
		SupportsMFA:   true,
		TrustedDevice: false,
		Username:      email,
		TOTP:          totp,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/auth/login/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()
	c.log.WithField("status", resp.Status).Debug("login response")

	if resp.StatusCode == http.StatusForbidden {
		return ErrMFARequired
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login failed (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("cannot decode login response: %w", err)
	}
	if lr.Token == "" {
		return fmt.Errorf("no token in login response")
	}
	c.token = lr.Token
	return nil
}

// graphqlRequest is the payload sent to the GraphQL endpoint.
type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// GraphQLCall sends a GraphQL query and returns the parsed "data" object.
// The first GraphQL-level error, if any, is returned as a Go error.
func (c *Client) GraphQLCall(operationName, query string, variables map[string]any) (map[string]json.RawMessage, error) {
	if c.token == "" {
		return nil, fmt.Errorf("not authenticated: login first or load a session")
	}
	if variables == nil {
		variables = map[string]any{}
	}

	payload, err := json.Marshal(graphqlRequest{
		Query:         query,
		OperationName: operationName,
		Variables:     variables,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql request failed: %w", err)
	}
	defer resp.Body.Close()
	c.log.WithFields(logrus.Fields{
		"operation": operationName,
		"status":    resp.Status,
	}).Debug("graphql response")

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("graphql HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var envelope struct {
		Data   map[string]json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("cannot decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	return envelope.Data, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Client-Platform", "web")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
}
