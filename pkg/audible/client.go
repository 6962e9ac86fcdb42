package audible

import (
	"fmt"
	"net/http"
)

// Config holds client configuration.
type Config struct {
	Credential *Credential  // Required: credential from Login or CredentialFromFile
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL    string       // Optional: API base URL (defaults to the credential's marketplace, used for testing)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Audible API operations.
type Client struct {
	credential *Credential
	httpClient *http.Client
	baseURL    string
	logger     Logger

	library *LibraryService
}

// NewClient creates a new Audible API client.
//
// Returns an error if no credential is provided or the credential's locale
// is not a known marketplace.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Credential == nil {
		return nil, ErrNoCredential
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		loc, err := LocaleFor(cfg.Credential.Locale)
		if err != nil {
			return nil, fmt.Errorf("audible: %w", err)
		}
		baseURL = loc.APIURL()
	}

	c := &Client{
		credential: cfg.Credential,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}

	c.library = &LibraryService{client: c}

	return c, nil
}

// Library returns the library service.
func (c *Client) Library() *LibraryService {
	return c.library
}

// Credential returns the credential the client was created with.
func (c *Client) Credential() *Credential {
	return c.credential
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
