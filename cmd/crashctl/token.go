package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viadata/crashdb/pkg/config"
	"github.com/viadata/crashdb/pkg/server/middleware"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Issue a bearer token for API access",
	Long: `Issue a signed bearer token for API access.

The token is signed with CRASHDB_TOKEN_SECRET and is valid for the
configured token lifetime.

Example:
  crashctl token data-pipeline`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		secret := os.Getenv("CRASHDB_TOKEN_SECRET")
		if secret == "" {
			fmt.Fprintln(os.Stderr, "CRASHDB_TOKEN_SECRET environment variable is required")
			os.Exit(1)
		}

		auth := middleware.NewBearerAuthenticator([]byte(secret))
		token, err := auth.IssueToken(args[0], config.Get().TokenLifetime())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
