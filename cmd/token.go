package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/barkoapp/barko/internal/config"
	"github.com/barkoapp/barko/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed API token for development",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().String("user", "", "User id (subject); a fresh UUID when empty")
	tokenCmd.Flags().String("email", "dev@example.com", "Email claim")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	userID, _ := cmd.Flags().GetString("user")
	email, _ := cmd.Flags().GetString("email")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	if userID == "" {
		userID = uuid.New().String()
	}

	token, err := server.SignToken(cfg.JWTSecret, userID, email, ttl)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Println("user:", userID)
	fmt.Println(token)
	return nil
}
