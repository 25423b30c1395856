package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carrozzeria/internal/dashboard"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type dashboardOptions struct {
	api      apiFlags
	interval time.Duration
	plain    bool
	once     bool
}

func newDashboardCmd() *cobra.Command {
	opts := dashboardOptions{}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show who is working on what, refreshed periodically",
		Long: `dashboard polls GET /v1/dashboard. On a terminal it opens an
interactive board (r refresh, +/- interval, p pause, q quit); otherwise it
prints a plain table on every refresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}

	f := cmd.Flags()
	opts.api.bind(f)
	f.DurationVar(&opts.interval, "interval", dashboard.DefaultInterval, "refresh interval, clamped to 5s..60s")
	f.BoolVar(&opts.plain, "plain", false, "force plain output even on a terminal")
	f.BoolVar(&opts.once, "once", false, "print a single snapshot and exit")
	return cmd
}

func runDashboard(cmd *cobra.Command, opts dashboardOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := dashboard.ClampInterval(opts.interval)
	if interval != opts.interval {
		fmt.Fprintf(cmd.ErrOrStderr(), "interval %s out of range, using %s\n", opts.interval, interval)
	}

	client := opts.api.client(ctx)
	out := cmd.OutOrStdout()

	if opts.once {
		snap, err := client.Snapshot(ctx)
		if err != nil {
			return err
		}
		return dashboard.RenderPlain(out, snap)
	}
	if !opts.plain && isTerminal(cmd.OutOrStdout()) {
		return dashboard.RunInteractive(ctx, client, interval)
	}
	return dashboard.RunPlain(ctx, client, interval, out)
}

// isTerminal is false for anything that is not an *os.File, which covers
// writers installed with SetOut/SetIn.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
