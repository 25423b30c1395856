package dashboard

import (
	"context"
	"fmt"
	"io"
	"time"

	response "carrozzeria/internal/adapter/http/dto/response"

	tea "github.com/charmbracelet/bubbletea"
)

// Source returns the current dashboard snapshot.
type Source interface {
	Snapshot(ctx context.Context) (response.DashboardResponse, error)
}

// RunInteractive shows the live board until the user quits.
func RunInteractive(ctx context.Context, src Source, interval time.Duration) error {
	var p *tea.Program
	sub := NewSubscription(interval, func(ctx context.Context) {
		snap, err := src.Snapshot(ctx)
		p.Send(SnapshotMsg{Snapshot: snap, Err: err, At: time.Now()})
	})
	p = tea.NewProgram(NewModel(sub), tea.WithAltScreen(), tea.WithContext(ctx))

	sub.Start(ctx)
	defer sub.Stop()

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// RunPlain prints one board per tick until ctx is cancelled.
func RunPlain(ctx context.Context, src Source, interval time.Duration, out io.Writer) error {
	sub := NewSubscription(interval, func(ctx context.Context) {
		snap, err := src.Snapshot(ctx)
		if err != nil {
			if ctx.Err() == nil {
				fmt.Fprintf(out, "fetch failed: %v\n", err)
			}
			return
		}
		_ = RenderPlain(out, snap)
		fmt.Fprintln(out)
	})
	sub.Start(ctx)
	<-ctx.Done()
	sub.Stop()
	return nil
}
