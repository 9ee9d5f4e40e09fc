package cli

import (
	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/cli/formatter"
	"github.com/alexanderramin/rutero/internal/contract"
	"github.com/spf13/cobra"
)

func newListCmd(a *App, flags *rootFlags) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "list <vendor> <weekday>",
		Short: "Show the ordered clients of one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Routes.ListDay(cmd.Context(), app.ListDayRequest{
				VendorCode: args[0],
				Weekday:    args[1],
				Mode:       mode,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewDayResponse(view), func() string {
				return formatter.FormatDayView(view)
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "custom", "View mode: natural or custom")
	return cmd
}

func newCountsCmd(a *App, flags *rootFlags) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "counts <vendor>",
		Short: "Show how many clients each day has",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Routes.Counts(cmd.Context(), app.CountsRequest{VendorCode: args[0], Mode: mode})
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewCountsResponse(view), func() string {
				return formatter.FormatCounts(view)
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "custom", "View mode: natural or custom")
	return cmd
}

func newMoveCmd(a *App, flags *rootFlags) *cobra.Command {
	var position string

	cmd := &cobra.Command{
		Use:   "move <vendor> <client> <from-day> <to-day>",
		Short: "Move or reorder a client",
		Long: "Place a client on a day at a position. Moving within the same day reorders it.\n" +
			"A client holds one placed day at a time: it leaves every other day it was placed on,\n" +
			"and every other natural day it is visited on, even when the move only reorders it.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Routes.Move(cmd.Context(), app.MoveRequest{
				VendorCode: args[0],
				ClientCode: args[1],
				FromDay:    args[2],
				ToDay:      args[3],
				Position:   position,
				Actor:      flags.actor,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewMutationResponse(res), func() string {
				return formatter.FormatPlacementResult(res)
			})
		},
	}

	cmd.Flags().StringVar(&position, "position", "end", "start, end or an integer position")
	return cmd
}

func newRestoreCmd(a *App, flags *rootFlags) *cobra.Command {
	var position string

	cmd := &cobra.Command{
		Use:   "restore <vendor> <client> <weekday>",
		Short: "Put a removed client back on a day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Routes.Restore(cmd.Context(), app.RestoreRequest{
				VendorCode: args[0],
				ClientCode: args[1],
				ToDay:      args[2],
				Position:   position,
				Actor:      flags.actor,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewMutationResponse(res), func() string {
				return formatter.FormatPlacementResult(res)
			})
		},
	}

	cmd.Flags().StringVar(&position, "position", "start", "start, end or an integer position")
	return cmd
}

func newBlockCmd(a *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "block <vendor> <client> <weekday>",
		Short: "Remove a client from a day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Routes.Block(cmd.Context(), app.BlockRequest{
				VendorCode: args[0],
				ClientCode: args[1],
				Weekday:    args[2],
				Actor:      flags.actor,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewMutationResponse(res), func() string {
				return formatter.FormatPlacementResult(res)
			})
		},
	}
}

func newResetDayCmd(a *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-day <vendor> <weekday>",
		Short: "Drop every override of a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Routes.ResetDay(cmd.Context(), app.ResetDayRequest{
				VendorCode: args[0],
				Weekday:    args[1],
				Actor:      flags.actor,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, flags, contract.NewResetResponse(res), func() string {
				return formatter.FormatResetResult(res)
			})
		},
	}
}
