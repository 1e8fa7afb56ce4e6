package rebuild_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/adapters/rebuild"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newFactory(t *testing.T) *rebuild.Factory {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return rebuild.NewFactory(logger)
}

func TestRebuilder_Name(t *testing.T) {
	rb := newFactory(t).New("repository", domain.RebuildCommands{}, ".")
	assert.Equal(t, "repository", rb.Name())
}

func TestRebuilder_EmptyCommandsAreNoOps(t *testing.T) {
	rb := newFactory(t).New("discovery", domain.RebuildCommands{}, ".")

	require.NoError(t, rb.Clear(context.Background()))
	require.NoError(t, rb.Build(context.Background()))
}

func TestRebuilder_RunsInWorkdir(t *testing.T) {
	workdir := t.TempDir()
	rb := newFactory(t).New("repository", domain.RebuildCommands{
		Build: []string{"touch", "built.marker"},
	}, workdir)

	require.NoError(t, rb.Build(context.Background()))

	_, err := os.Stat(filepath.Join(workdir, "built.marker"))
	assert.NoError(t, err)
}

func TestRebuilder_ClearThenBuildAreDistinctCommands(t *testing.T) {
	workdir := t.TempDir()
	rb := newFactory(t).New("repository", domain.RebuildCommands{
		Clear: []string{"touch", "cleared.marker"},
		Build: []string{"touch", "built.marker"},
	}, workdir)

	require.NoError(t, rb.Clear(context.Background()))
	require.NoError(t, rb.Build(context.Background()))

	_, err := os.Stat(filepath.Join(workdir, "cleared.marker"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(workdir, "built.marker"))
	assert.NoError(t, err)
}

func TestRebuilder_FailureCapturesCommandAndOutput(t *testing.T) {
	rb := newFactory(t).New("repository", domain.RebuildCommands{
		Build: []string{"sh", "-c", "echo broken index >&2; exit 3"},
	}, t.TempDir())

	err := rb.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "echo broken index")
	assert.Contains(t, err.Error(), "broken index")
}

func TestRebuilder_MissingBinary(t *testing.T) {
	rb := newFactory(t).New("discovery", domain.RebuildCommands{
		Build: []string{"definitely-not-a-real-binary-xyz"},
	}, t.TempDir())

	require.Error(t, rb.Build(context.Background()))
}

func TestRebuilder_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rb := newFactory(t).New("repository", domain.RebuildCommands{
		Build: []string{"sleep", "10"},
	}, t.TempDir())

	require.Error(t, rb.Build(ctx))
}
