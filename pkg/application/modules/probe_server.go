package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"sc2ladder/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	Readiness     probe.ReadinessChecker
}

// Run is a no-op when ListenAddress is empty.
func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	if p.ListenAddress == "" {
		logger(ctx).Debug("probe server disabled")

		return
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		p.Readiness,
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
