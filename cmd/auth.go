package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfmyers9/audiblex/internal/config"
	"github.com/jfmyers9/audiblex/pkg/audible"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Audible",
	Long: `Authenticate with Audible and store the credential for export runs.

This command will prompt for your Audible username and password, log in
against the marketplace configured by 'locale' (default: us), and save
the resulting credential to the auth file. The password prompt does not
echo. On platforms with POSIX permissions the credential file is
restricted to owner read/write.

The username and password are used once for the login call and are not
stored anywhere.`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	username, password, err := promptCredentials(os.Stdin)
	if err != nil {
		return err
	}

	fmt.Println("\nLogging in to Audible...")
	cred, err := audible.Login(ctx, username, password, cfg.Locale)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	// Ensure the auth directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.AuthFile), 0700); err != nil {
		return fmt.Errorf("failed to create auth directory: %w", err)
	}

	if err := cred.ToFile(cfg.AuthFile); err != nil {
		return fmt.Errorf("failed to write authentication file: %w", err)
	}

	fmt.Printf("\n✓ Authentication successful!\n")
	fmt.Printf("✓ Credential saved to %s\n", cfg.AuthFile)
	fmt.Println("\nYou can now use 'audiblex export' to export your library.")

	return nil
}

// promptCredentials reads the username (echoed) and the password (no echo)
// from stdin. Both are trimmed; either being empty is a validation error,
// reported before any network call is made.
func promptCredentials(stdin *os.File) (username, password string, err error) {
	reader := bufio.NewReader(stdin)

	fmt.Print("User: ")
	username, err = reader.ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("failed to read username: %w", err)
	}

	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", "", fmt.Errorf("no terminal available for the password prompt")
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	username, password, err = validateCredentials(username, string(passwordBytes))
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}

// validateCredentials trims both inputs and rejects empty values.
func validateCredentials(username, password string) (string, string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return "", "", fmt.Errorf("username and password cannot be empty")
	}

	return username, password, nil
}
