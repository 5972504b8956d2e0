package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/casebook/internal/adapters/cli"
	"github.com/example/casebook/internal/app"
	"github.com/example/casebook/internal/wire"
)

// AdminCmd returns the admin command
func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Review submissions and manage categories",
		Long: `Administrative commands. Every subcommand logs in through the admin gate
first: pass --password or answer the prompt.`,
	}

	cmd.PersistentFlags().StringP("password", "p", "", "Admin password (prompted when omitted)")

	cmd.AddCommand(adminPendingCmd())
	cmd.AddCommand(adminApprovedCmd())
	cmd.AddCommand(adminApproveCmd())
	cmd.AddCommand(adminRejectCmd())
	cmd.AddCommand(adminDeleteCmd())
	cmd.AddCommand(adminCategoryCmd())

	return cmd
}

// adminSession loads a session and logs it in.
func adminSession(cmd *cobra.Command) (*app.Controller, *cliadapter.SubmissionAdapter, error) {
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "Admin password: ")
		if err != nil {
			return nil, nil, err
		}
	}

	ctrl, err := wire.Session(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	adapter := wire.SubmissionAdapter(ctrl)
	if err := adapter.Login(cmd.Context(), password); err != nil {
		return nil, nil, err
	}
	return ctrl, adapter, nil
}

func adminPendingCmd() *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List submissions awaiting review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adapter, err := adminSession(cmd)
			if err != nil {
				return err
			}
			_, err = adapter.Pending(cmd.Context(), search, category)
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by text in title or description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")

	return cmd
}

func adminApprovedCmd() *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "approved",
		Short: "List approved submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adapter, err := adminSession(cmd)
			if err != nil {
				return err
			}
			_, err = adapter.Approved(cmd.Context(), search, category)
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by text in title or description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")

	return cmd
}

func adminApproveCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "approve [submission-id]",
		Short: "Approve a pending submission under a category",
		Long: `Approve a pending submission. The category is required.

Examples:
  casebook admin approve 3f2c... --category Litigation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adapter, err := adminSession(cmd)
			if err != nil {
				return err
			}
			return adapter.Approve(cmd.Context(), args[0], category)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category to file the submission under")

	return cmd
}

func adminRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject [submission-id]",
		Short: "Reject a pending submission (deletes it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adapter, err := adminSession(cmd)
			if err != nil {
				return err
			}
			return adapter.Reject(cmd.Context(), args[0])
		},
	}
}

func adminDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [submission-id]",
		Short: "Permanently delete a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adapter, err := adminSession(cmd)
			if err != nil {
				return err
			}

			confirmed := yes
			if !confirmed {
				sub, err := adapter.Find(args[0])
				if err != nil {
					return err
				}
				confirmed, err = confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete %q permanently?", sub.Title))
				if err != nil {
					return err
				}
			}

			_, err = adapter.Delete(cmd.Context(), args[0], confirmed)
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func adminCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Add or delete categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _, err := adminSession(cmd)
			if err != nil {
				return err
			}
			_, err = wire.CategoryAdapter(ctrl).Add(cmd.Context(), args[0])
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [name]",
		Short: "Delete every category with this name",
		Long: `Delete a category by name. Submissions filed under it keep their category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _, err := adminSession(cmd)
			if err != nil {
				return err
			}
			return wire.CategoryAdapter(ctrl).Delete(cmd.Context(), args[0])
		},
	})

	return cmd
}
