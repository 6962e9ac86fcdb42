package audible

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// LoginOptions tunes the login flow. The zero value is what the CLI uses.
type LoginOptions struct {
	// WithUsername selects the legacy username login endpoint instead of
	// the Amazon account flow. Off by default.
	WithUsername bool

	// HTTPClient overrides the HTTP client used for the login request.
	HTTPClient *http.Client

	// BaseURL overrides the marketplace auth host (used for testing).
	BaseURL string
}

// loginRequest is the payload sent to the login endpoint.
type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	MarketplaceID string `json:"marketplace_id"`
	WithUsername  bool   `json:"with_username"`
}

// loginResponse is the credential bundle returned on successful login.
type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	DeviceKey    string `json:"device_private_key"`
	AdpToken     string `json:"adp_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Login authenticates a username/password pair against the marketplace
// selected by countryCode and returns a credential for API calls.
//
// Authorization and device registration happen in one step; the returned
// credential is ready to persist with ToFile. A rejected login is returned
// as a *Error for which IsAuthError reports true.
func Login(ctx context.Context, username, password, countryCode string) (*Credential, error) {
	return LoginWithOptions(ctx, username, password, countryCode, LoginOptions{})
}

// LoginWithOptions is Login with explicit options.
func LoginWithOptions(ctx context.Context, username, password, countryCode string, opts LoginOptions) (*Credential, error) {
	loc, err := LocaleFor(countryCode)
	if err != nil {
		return nil, fmt.Errorf("audible: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = loc.AuthURL()
	}

	req := loginRequest{
		Username:      username,
		Password:      password,
		MarketplaceID: loc.MarketplaceID,
		WithUsername:  opts.WithUsername,
	}

	var resp loginResponse
	if err := postJSON(ctx, httpClient, baseURL+"/auth/register", req, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, &Error{StatusCode: http.StatusOK, Message: "login response carried no access token"}
	}

	return &Credential{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		DeviceKey:    resp.DeviceKey,
		AdpToken:     resp.AdpToken,
		Locale:       countryCode,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}, nil
}
