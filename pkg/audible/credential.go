package audible

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"
)

// Credential is the opaque authentication state issued at login time.
//
// It is tied to one account and one marketplace and is required for all
// subsequent API calls. Treat the whole bundle as a secret: it is written
// to disk with owner-only permissions where the platform supports them.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	DeviceKey    string    `json:"device_private_key"`
	AdpToken     string    `json:"adp_token"`
	Locale       string    `json:"locale"`
	ExpiresAt    time.Time `json:"expires"`
}

// CredentialError wraps a failure to read or decode a persisted credential.
type CredentialError struct {
	Path string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("audible: credential file %s: %v", e.Path, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// CredentialFromFile loads a credential previously written by ToFile.
//
// A missing, unreadable, or malformed file is reported as a *CredentialError;
// IsAuthError returns true for it.
func CredentialFromFile(path string) (*Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CredentialError{Path: path, Err: err}
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, &CredentialError{Path: path, Err: err}
	}

	if cred.AccessToken == "" {
		return nil, &CredentialError{Path: path, Err: fmt.Errorf("missing access token")}
	}

	return &cred, nil
}

// ToFile serializes the credential to path.
//
// The file is created with owner-only permissions, and an explicit chmod is
// applied afterwards in case path already existed with a wider mode. On
// platforms without POSIX permission bits the chmod is skipped.
func (c *Credential) ToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("audible: encoding credential: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("audible: writing credential file: %w", err)
	}

	if supportsFileModes() {
		// Best effort: a failed chmod leaves a usable credential behind.
		_ = os.Chmod(path, 0600)
	}

	return nil
}

// supportsFileModes reports whether the platform honors POSIX permission bits.
func supportsFileModes() bool {
	return runtime.GOOS != "windows"
}
