package cli

import (
	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/cli/formatter"
	"github.com/alexanderramin/rutero/internal/contract"
	"github.com/spf13/cobra"
)

func newOverridesCmd(a *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "overrides <vendor>",
		Short: "List the stored overrides of a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.Routes.Overrides(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewOverrideResponses(records), func() string {
				return formatter.FormatOverrides(args[0], records)
			})
		},
	}
}

func newAuditCmd(a *App, flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit <vendor>",
		Short: "Show recent route changes, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewAuditTrailRequest(args[0])
			if cmd.Flags().Changed("limit") {
				req.Limit = limit
			}

			entries, err := a.Routes.AuditTrail(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewAuditEntryResponses(entries), func() string {
				return formatter.FormatAuditTrail(args[0], entries, a.now())
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries to show (0 for all)")
	return cmd
}
