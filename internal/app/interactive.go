package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/timebar/internal/adapters/tui"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.trai.ch/zerr"
)

// InteractiveOptions configures the terminal time bar.
type InteractiveOptions struct {
	Source
	// OutPath, when set, receives the snapshot left on quit.
	OutPath string
}

// Interactive runs the terminal time bar until the user quits.
func (a *App) Interactive(ctx context.Context, opts InteractiveOptions) (timebar.Outcome, error) {
	if !a.interactive() {
		return timebar.Outcome{}, domain.ErrNotATerminal
	}

	sched := tui.NewScheduler()
	s, err := a.open(ctx, opts.Source, "", timebar.WithScheduler(sched))
	if err != nil {
		return timebar.Outcome{}, err
	}
	defer s.bar.Destroy()

	model := tui.NewModel(s.bar, sched)
	s.start()

	programOpts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, a.teaOptions...)

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		if ctx.Err() == nil {
			return timebar.Outcome{}, zerr.Wrap(err, "interactive session failed")
		}
	}

	if opts.OutPath != "" {
		if err := a.writeSnapshot(s, opts.OutPath); err != nil {
			return timebar.Outcome{}, err
		}
	}
	return s.last, nil
}
