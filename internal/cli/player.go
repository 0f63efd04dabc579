package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerGuestCmd())
	cmd.AddCommand(newPlayerMeCmd())
	cmd.AddCommand(newPlayerProfileCmd())

	return cmd
}

func newPlayerGuestCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Create a guest player and save its session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"display_name": name}
			var result AuthResult

			if err := client.Post("/api/v1/players/guest", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to Guest)")

	return cmd
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show current player info",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/me", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerProfileCmd() *cobra.Command {
	var (
		favorites []string
		brands    []string
		history   []string
		eco       bool
		style     string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Set the profile used to personalize clues",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := Profile{
				FavoriteCategories: favorites,
				PurchaseHistory:    history,
				PreferredBrands:    brands,
				IsEcoConscious:     eco,
				StylePreference:    style,
			}
			var result Player

			if err := client.Put("/api/v1/players/me/profile", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&favorites, "favorite", nil, "Favorite category (repeatable)")
	cmd.Flags().StringSliceVar(&brands, "brand", nil, "Preferred brand (repeatable)")
	cmd.Flags().StringSliceVar(&history, "purchased", nil, "Previously purchased product ID (repeatable)")
	cmd.Flags().BoolVar(&eco, "eco", false, "Prefer eco-friendly products")
	cmd.Flags().StringVar(&style, "style", "", "Style preference: casual, formal, streetwear, athletic, luxury")

	return cmd
}
