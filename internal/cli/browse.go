package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/casebook/internal/core/submission"
	"github.com/example/casebook/internal/wire"
)

// BrowseCmd returns the browse command
func BrowseCmd() *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse approved use cases",
		Long: `List approved use cases. --search matches titles and descriptions
case-insensitively; --category matches the category name exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := wire.Session(cmd.Context())
			if err != nil {
				return err
			}
			_, err = wire.SubmissionAdapter(ctrl).Browse(cmd.Context(), search, category)
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by text in title or description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")

	return cmd
}

// SubmitCmd returns the submit command
func SubmitCmd() *cobra.Command {
	var draft submission.Draft

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Share an AI use case for review",
		Long: `Submit a use case. It stays pending until an administrator approves it.

Examples:
  casebook submit --title "Contract Review" --description "Flags risky clauses" \
    --use-case "NDA triage" --by "Ada"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := wire.Session(cmd.Context())
			if err != nil {
				return err
			}
			return wire.SubmissionAdapter(ctrl).Submit(cmd.Context(), draft)
		},
	}

	cmd.Flags().StringVarP(&draft.Title, "title", "t", "", "Use case title")
	cmd.Flags().StringVarP(&draft.Description, "description", "d", "", "What the tool does")
	cmd.Flags().StringVarP(&draft.UseCase, "use-case", "u", "", "How it is used in practice")
	cmd.Flags().StringVar(&draft.SubmittedBy, "by", "", "Your name")

	return cmd
}

// CategoriesCmd returns the categories command
func CategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := wire.Session(cmd.Context())
			if err != nil {
				return err
			}
			_, err = wire.CategoryAdapter(ctrl).List(cmd.Context())
			return err
		},
	}
}
