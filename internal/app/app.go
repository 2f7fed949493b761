package app

import (
	"context"
	"fmt"
	"time"

	"github.com/barcal/barcal/internal/config"
	"github.com/barcal/barcal/internal/utils"
	"github.com/barcal/barcal/pkg/agenda"
	"github.com/barcal/barcal/pkg/event"
	"github.com/barcal/barcal/pkg/render"
	"github.com/kballard/go-shellquote"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, clock, the external agenda tool, and
// the renderer into one single-shot pipeline.
type Application struct {
	cfg      config.Application
	clock    utils.Clock
	invoker  agenda.Invoker
	renderer *render.Renderer
	loc      *time.Location
}

// NewApplication constructs the pipeline from configuration, ready to
// Run() once.
func NewApplication() (*Application, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}

	argv, err := shellquote.Split(cfg.Command)
	if err != nil {
		return nil, fmt.Errorf("invalid command %q: %w", cfg.Command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("command is empty")
	}

	loc := time.Local
	if cfg.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("could not load location for timezone %s: %w", cfg.Timezone, err)
		}
	}

	return &Application{
		cfg:      cfg,
		clock:    utils.SystemClock{},
		invoker:  agenda.NewExecInvoker(argv[0], argv[1:]),
		renderer: render.New(cfg.Color),
		loc:      loc,
	}, nil
}

// Run executes one invocation of the pipeline and returns the line to
// print. The instant and zone are captured once up front so classification
// and rendering cannot disagree across the imminence boundary. Failures
// never escape: they are logged and collapse into the fallback line.
func (a *Application) Run(ctx context.Context, extraArgs []string) string {
	now := a.clock.Now().In(a.loc)

	args := append(agenda.QueryArgs(now), extraArgs...)
	out, err := a.invoker.Agenda(ctx, args)
	if err != nil {
		log.Errorf("agenda tool failed: %v", err)
		return a.fallback(err)
	}

	line := agenda.CandidateLine(now, out)
	next, err := event.Parse(a.loc, line)
	if err != nil {
		log.Debugf("no parseable event: %v", err)
		return a.fallback(err)
	}
	log.Debugf("next event %q starts in %s", next.Description, next.StartsIn(now))

	return a.renderer.Render(now, next)
}

func (a *Application) fallback(err error) string {
	if a.cfg.Diagnostics {
		return err.Error()
	}
	return a.cfg.Fallback
}
