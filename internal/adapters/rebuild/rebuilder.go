// Package rebuild runs the external repository and discovery rebuilders as
// configured clear/build commands.
package rebuild

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// Rebuilder implements ports.Rebuilder by executing configured command lines
// in the project root. An empty command line is a no-op, so projects without
// a discovery index simply leave those commands unset.
type Rebuilder struct {
	name     string
	commands domain.RebuildCommands
	workdir  string
	logger   ports.Logger
}

var _ ports.Rebuilder = (*Rebuilder)(nil)

// Name identifies the rebuilder in error reports.
func (r *Rebuilder) Name() string {
	return r.name
}

// Clear discards the rebuilder's previous output.
func (r *Rebuilder) Clear(ctx context.Context) error {
	return r.run(ctx, r.commands.Clear)
}

// Build regenerates the rebuilder's output.
func (r *Rebuilder) Build(ctx context.Context) error {
	return r.run(ctx, r.commands.Build)
}

func (r *Rebuilder) run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	//nolint:gosec // Commands come from the project configuration
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.workdir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		detail := strings.Join(argv, " ")
		if out := strings.TrimSpace(output.String()); out != "" {
			detail += ": " + out
		}
		return zerr.Wrap(err, detail)
	}

	if out := strings.TrimSpace(output.String()); out != "" {
		r.logger.Info(fmt.Sprintf("%s: %s", r.name, out))
	}

	return nil
}

// Factory implements ports.RebuilderFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new rebuilder factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New returns a rebuilder running the given commands in workdir.
func (f *Factory) New(name string, commands domain.RebuildCommands, workdir string) ports.Rebuilder {
	return &Rebuilder{
		name:     name,
		commands: commands,
		workdir:  workdir,
		logger:   f.logger,
	}
}
