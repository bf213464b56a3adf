package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// authCmd runs the interactive TMDb authentication flow
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Obtain a TMDb session id",
	Long: `Run the TMDb authentication flow: request a token, wait for you to
approve it at themoviedb.org, then exchange it for a session id.

Store the printed session id as tmdb.session_id in your config file to use
the list commands without re-authenticating.`,
	RunE: runAuth,
}

var authGuestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Create a guest session",
	RunE:  runAuthGuest,
}

func init() {
	authCmd.AddCommand(authGuestCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	token, err := client.GetRequestToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get request token: %w", err)
	}
	if !token.Success || token.Token == "" {
		return fmt.Errorf("TMDb did not issue a request token")
	}

	fmt.Printf("Approve the token at:\n\n  https://www.themoviedb.org/authenticate/%s\n\n", token.Token)
	fmt.Print("Press Enter once approved: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	session, err := client.GetSessionToken(ctx, token.Token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Printf("\nSession id: %s\n", session.SessionID)
	fmt.Println("Add it to your config as tmdb.session_id to persist it.")
	return nil
}

func runAuthGuest(cmd *cobra.Command, args []string) error {
	session, err := client.GetGuestSessionToken(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create guest session: %w", err)
	}

	fmt.Printf("Guest session id: %s", session.GuestSessionID)
	if session.ExpiresAt != "" {
		fmt.Printf(" (expires %s)", session.ExpiresAt)
	}
	fmt.Println()
	fmt.Println("Note: guest sessions cannot use the list commands.")
	return nil
}
