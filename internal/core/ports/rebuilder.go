package ports

import (
	"context"

	"go.trai.ch/weld/internal/core/domain"
)

// Rebuilder is an external clear-then-build collaborator triggered after
// reconciliation. It owns its own consistency; weld attempts no partial-state
// recovery on failure.
//
//go:generate mockgen -source=rebuilder.go -destination=mocks/mock_rebuilder.go -package=mocks
type Rebuilder interface {
	// Name identifies the rebuilder in error reports.
	Name() string

	// Clear discards the rebuilder's previous output.
	Clear(ctx context.Context) error

	// Build regenerates the rebuilder's output.
	Build(ctx context.Context) error
}

// RebuilderFactory constructs Rebuilders from configured command lines.
type RebuilderFactory interface {
	// New returns a rebuilder running the given commands in workdir.
	New(name string, commands domain.RebuildCommands, workdir string) Rebuilder
}
