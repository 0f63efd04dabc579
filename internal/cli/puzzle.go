package cli

import (
	"github.com/spf13/cobra"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Play today's puzzle",
	}

	cmd.AddCommand(newPuzzleShowCmd())
	cmd.AddCommand(newPuzzleRevealCmd())
	cmd.AddCommand(newPuzzleGuessCmd())
	cmd.AddCommand(newPuzzleAmendCmd())
	cmd.AddCommand(newPuzzleResetCmd())

	return cmd
}

func newPuzzleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle

			if err := client.Get("/api/v1/puzzle/today", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPuzzleRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the next clue",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle

			if err := client.Post("/api/v1/puzzle/today/reveal", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPuzzleGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <product-id>",
		Short: "Guess today's product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"product_id": args[0]}
			var result GuessResult

			if err := client.Post("/api/v1/puzzle/today/guess", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPuzzleAmendCmd() *cobra.Command {
	var image, canonicalID string

	cmd := &cobra.Command{
		Use:   "amend",
		Short: "Replace today's product image or canonical ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if cmd.Flags().Changed("image") {
				req["image"] = image
			}
			if cmd.Flags().Changed("canonical-id") {
				req["canonical_id"] = canonicalID
			}
			var result Puzzle

			if err := client.Patch("/api/v1/puzzle/today/product", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "New product image URL")
	cmd.Flags().StringVar(&canonicalID, "canonical-id", "", "Canonical product ID also accepted as a correct guess")
	cmd.MarkFlagsOneRequired("image", "canonical-id")

	return cmd
}

func newPuzzleResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete your stored stats and puzzle progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/puzzle/data"); err != nil {
				return err
			}

			output(cmd).PrintMessage("Puzzle data reset")
			return nil
		},
	}
}
