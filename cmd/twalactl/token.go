package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jwtmw "twala_backend/internal/platform/jwt"
)

func newTokenCmd(c *cli) *cobra.Command {
	var (
		userID uint
		email  string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Sign a bearer token for manual QA against a local server",
		GroupID: "dev",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == 0 {
				return fmt.Errorf("--user is required")
			}
			if c.cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			tok, err := jwtmw.NewGenerator(c.cfg.JWTSecret, ttl).GenerateToken(userID, email)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOutput {
				data, err := json.MarshalIndent(map[string]any{
					"token":      tok,
					"user_id":    userID,
					"expires_in": int64(ttl.Seconds()),
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, tok)
			return nil
		},
	}
	cmd.Flags().UintVar(&userID, "user", 0, "user id for the sub claim")
	cmd.Flags().StringVar(&email, "email", "", "optional email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
