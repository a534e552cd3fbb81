package services

import (
	"commute-monitor/internal/domain"
	"commute-monitor/internal/platform/obs"
	"commute-monitor/internal/ports"
	"context"
	"fmt"
	"time"
)

// Endpoint is one end of the commute: a stable label plus the free-text
// address it resolves from.
type Endpoint struct {
	Label   string
	Address string
}

// Pipeline runs one sampling invocation: pick a direction from the local
// clock, resolve both endpoints, fetch route alternatives, normalize them
// and commit the batch. It is synchronous and run-to-completion; an
// external scheduler invokes it periodically.
type Pipeline struct {
	Home   Endpoint
	Work   Endpoint
	Local  *time.Location
	Forced domain.Direction

	Resolver *LocationResolver
	Routes   ports.RouteProvider
	Writer   *BatchWriter

	// Overridable in tests.
	clock func() time.Time
}

func NewPipeline(
	home, work Endpoint,
	local *time.Location,
	forced domain.Direction,
	resolver *LocationResolver,
	routes ports.RouteProvider,
	writer *BatchWriter,
) *Pipeline {
	return &Pipeline{
		Home:     home,
		Work:     work,
		Local:    local,
		Forced:   forced,
		Resolver: resolver,
		Routes:   routes,
		Writer:   writer,
		clock:    time.Now,
	}
}

// Result describes one completed invocation. A skipped run has Direction
// Skip and nothing else set.
type Result struct {
	Direction   domain.Direction
	BatchID     string
	OriginLabel string
	DestLabel   string
	Metrics     []domain.SampleMetrics
}

// Run executes one invocation. Every error aborts the whole run with
// nothing persisted; recovery is the scheduler's next tick.
func (p *Pipeline) Run(ctx context.Context) (_ *Result, err error) {
	defer obs.Time(ctx, "pipeline.run")(&err)

	now := p.clock().In(p.Local)
	direction := domain.ChooseDirection(now, p.Forced)
	if direction == domain.Skip {
		return &Result{Direction: domain.Skip}, nil
	}

	origin, dest := p.Home, p.Work
	if direction == domain.WorkToHome {
		origin, dest = p.Work, p.Home
	}

	originCoord, err := p.Resolver.Resolve(ctx, origin.Label, origin.Address)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: origin: %w", err)
	}

	destCoord, err := p.Resolver.Resolve(ctx, dest.Label, dest.Address)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: destination: %w", err)
	}

	raw, err := p.Routes.GetRoutes(ctx, originCoord, destCoord)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}

	metrics := make([]domain.SampleMetrics, 0, len(raw))
	for _, rt := range raw {
		m, err := ExtractMetrics(rt)
		if err != nil {
			return nil, fmt.Errorf("run pipeline: %w", err)
		}
		metrics = append(metrics, m)
	}

	batchID, err := p.Writer.Commit(ctx, origin.Label, dest.Label, metrics)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}

	return &Result{
		Direction:   direction,
		BatchID:     batchID,
		OriginLabel: origin.Label,
		DestLabel:   dest.Label,
		Metrics:     metrics,
	}, nil
}
