// Package engine replays navigation scenarios through the transition
// orchestrator at a fixed frame rate and reports what happened.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/routemotion/internal/config"
	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/orchestrator"
	"github.com/ivlev/routemotion/internal/policy"
	"github.com/ivlev/routemotion/internal/scenario"
	"github.com/ivlev/routemotion/internal/system"
)

// RendererFactory returns the renderer for the i-th scenario, or nil for
// none. It is called from worker goroutines.
type RendererFactory func(i int, s *scenario.Scenario) (orchestrator.Renderer, error)

// Report summarises one scenario run.
type Report struct {
	Scenario    string
	Frames      int
	Transitions int
	Settles     int
	Forced      int
	Final       navigation.State
	SettledAt   []time.Duration // simulated time of every settle
	Elapsed     time.Duration   // wall time
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d frames, %d transitions, %d settled (%d forced), final %s",
		r.Scenario, r.Frames, r.Transitions, r.Settles, r.Forced, r.Final)
}

type Project struct {
	Config    *config.Config
	Resolver  *policy.Resolver
	Table     *policy.Table
	Scenarios []*scenario.Scenario
	Renderers RendererFactory
	Out       io.Writer

	frames      atomic.Int64
	transitions atomic.Int64
	done        atomic.Int32
	outMu       sync.Mutex
}

// NewProject builds a project whose policy comes from cfg.
func NewProject(cfg *config.Config, scenarios []*scenario.Scenario) (*Project, error) {
	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, err
	}
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	return &Project{
		Config:    cfg,
		Resolver:  resolver,
		Table:     table,
		Scenarios: scenarios,
		Out:       os.Stdout,
	}, nil
}

// Run simulates every scenario, at most Config.Workers at a time. The
// reports are in scenario order. The first failing scenario cancels the
// others.
func (p *Project) Run(ctx context.Context) ([]Report, error) {
	if len(p.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to run")
	}
	startTime := time.Now()

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.DefaultWorkers()
	}
	if workers > len(p.Scenarios) {
		workers = len(p.Scenarios)
	}

	p.printf("--- [ROUTEMOTION: SIMULATION] ---\n")
	p.printf("[*] Scenarios: %d | Workers: %d | Model: %s\n", len(p.Scenarios), workers, p.Table.Model())

	reports := make([]Report, len(p.Scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range p.Scenarios {
		g.Go(func() error {
			var renderer orchestrator.Renderer
			if p.Renderers != nil {
				r, err := p.Renderers(i, s)
				if err != nil {
					return fmt.Errorf("scenario %s: renderer: %w", s.Name, err)
				}
				renderer = r
			}

			report, err := p.Simulate(ctx, s, renderer)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			reports[i] = report
			p.printf("[>] Ready: %d/%d %s\n", p.done.Inc(), len(p.Scenarios), report)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.Config.ShowStats {
		p.writeStats(time.Since(startTime))
	}
	return reports, nil
}

// Simulate replays one scenario. Events scheduled at a time t are
// delivered before the frame that starts at t is ticked.
func (p *Project) Simulate(ctx context.Context, s *scenario.Scenario, renderer orchestrator.Renderer) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	startTime := time.Now()

	opts := []orchestrator.Option{orchestrator.WithMaxDuration(p.Config.MaxDuration)}
	if renderer != nil {
		opts = append(opts, orchestrator.WithRenderer(renderer))
	}
	machine := navigation.New(s.Initial)
	o := orchestrator.New(machine, p.Resolver, p.Table, opts...)

	step := time.Second / time.Duration(s.FPS)
	frames := s.Frames()
	report := Report{Scenario: s.Name}

	next := 0
	for i := 0; i < frames; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}

		now := time.Duration(i) * time.Second / time.Duration(s.FPS)
		for next < len(s.Events) && s.FrameOf(s.Events[next].At) <= i {
			e := s.Events[next]
			if e.Back {
				o.Back()
			} else {
				o.Navigate(e.Route)
			}
			next++
		}

		settled := o.Stats().Settled
		o.Tick(step)
		if o.Stats().Settled > settled {
			report.SettledAt = append(report.SettledAt, now+step)
		}
		report.Frames++
	}

	stats := o.Stats()
	report.Transitions = stats.Started
	report.Settles = stats.Settled
	report.Forced = stats.Forced
	report.Final = machine.State()
	report.Elapsed = time.Since(startTime)

	p.frames.Add(int64(report.Frames))
	p.transitions.Add(int64(report.Transitions))
	system.Logger().Info("scenario simulated",
		"scenario", s.Name,
		"frames", report.Frames,
		"transitions", report.Transitions,
		"forced", report.Forced,
		"final", report.Final.String())
	return report, nil
}

func (p *Project) printf(format string, args ...any) {
	if p.Out == nil {
		return
	}
	p.outMu.Lock()
	defer p.outMu.Unlock()
	fmt.Fprintf(p.Out, format, args...)
}

func (p *Project) writeStats(total time.Duration) {
	frames := p.frames.Load()
	fps := float64(frames) / total.Seconds()

	host, err := system.CollectHostStats()
	if err != nil {
		system.Logger().Warn("host stats unavailable", "err", err)
	}

	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Host: %s\n"+
			"Total Time: %.3fs\n"+
			"Frames: %d\n"+
			"Transitions: %d\n"+
			"Effective FPS: %.0f\n"+
			"----------------------------\n",
		p.Config.BuildVersion, host, total.Seconds(), frames, p.transitions.Load(), fps,
	)
	p.printf("%s", report)

	if p.Config.StatsLog == "" {
		return
	}
	logEntry := fmt.Sprintf("[%s] Build: %s | Scenarios: %d | Frames: %d | Total: %.3fs | FPS: %.0f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		len(p.Scenarios),
		frames,
		total.Seconds(),
		fps,
	)

	if dir := filepath.Dir(p.Config.StatsLog); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			p.printf("[!] Failed to create %s: %v\n", dir, err)
			return
		}
	}
	f, err := os.OpenFile(p.Config.StatsLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		p.printf("[!] Failed to write %s: %v\n", p.Config.StatsLog, err)
	}
}
