package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/rutero/internal/contract"
	"github.com/alexanderramin/rutero/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and terminal facts the commands need.
type App struct {
	Routes service.RouteService

	// IsTerminal reports whether stdout is a terminal. When it returns
	// false, commands print JSON unless told otherwise. Nil means terminal.
	IsTerminal func() bool
	// Now is the reference time for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

type rootFlags struct {
	json  bool
	actor string
}

// NewRootCmd creates the top-level "rutero" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "rutero",
		Short:         "Weekly visit route planner for the sales force",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "Print JSON instead of tables (default when stdout is not a terminal)")
	root.PersistentFlags().StringVar(&flags.actor, "actor", "", "Name recorded in the audit log for changes")

	root.AddCommand(
		newListCmd(app, flags),
		newCountsCmd(app, flags),
		newMoveCmd(app, flags),
		newRestoreCmd(app, flags),
		newBlockCmd(app, flags),
		newResetDayCmd(app, flags),
		newOverridesCmd(app, flags),
		newAuditCmd(app, flags),
	)

	return root
}

// Run executes the command tree and reports a failure on stderr. The
// returned value is the process exit code.
func Run(ctx context.Context, app *App, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		asJSON, _ := root.PersistentFlags().GetBool("json")
		writeError(stderr, err, asJSON || !app.terminal())
		return exitCode(err)
	}
	return 0
}

func (a *App) terminal() bool {
	return a.IsTerminal == nil || a.IsTerminal()
}

// useJSON decides the output form for one invocation.
func (a *App) useJSON(flags *rootFlags) bool {
	return flags.json || !a.terminal()
}

// render prints either the wire form of a result or its table rendering.
func (a *App) render(cmd *cobra.Command, flags *rootFlags, wire any, text func() string) error {
	out := cmd.OutOrStdout()
	if a.useJSON(flags) {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(wire)
	}
	_, err := fmt.Fprint(out, text())
	return err
}

func writeError(w io.Writer, err error, asJSON bool) {
	resp := contract.NewErrorResponse(err)
	if asJSON {
		if resp.Kind == "INTERNAL" {
			resp.Message = err.Error()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(resp)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
