package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports/mocks"
	"go.trai.ch/weld/internal/engine/reconcile"
	"go.uber.org/mock/gomock"
)

const tag = "weld"

func newEngine(ctrl *gomock.Controller) (*reconcile.Engine, *mocks.MockLogger) {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return reconcile.New(logger), logger
}

func TestReconcile_EndToEnd(t *testing.T) {
	// Resolver reports {A, B}; registry holds {A, C} tagged weld and D tagged
	// other. Expect C removed, B installed, D untouched.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	snap.EXPECT().ListPackages().Return([]domain.ResolvedPackage{
		{Name: "acme/a", InstallPath: "/vendor/acme/a"},
		{Name: "acme/b", InstallPath: "/vendor/acme/b"},
	}, nil)

	registry.EXPECT().ByInstaller(tag).Return([]domain.ManagedPackage{
		{Name: "acme/a", InstallPath: "/vendor/acme/a", InstallerTag: tag},
		{Name: "acme/c", InstallPath: "/vendor/acme/c", InstallerTag: tag},
	}, nil)
	registry.EXPECT().Remove("acme/c").Return(nil)
	registry.EXPECT().IsInstalledAtPath("/vendor/acme/a").Return(true, nil)
	registry.EXPECT().IsInstalledAtPath("/vendor/acme/b").Return(false, nil)
	registry.EXPECT().Install("/vendor/acme/b", "acme/b", tag).Return(nil)

	result, err := engine.Reconcile(context.Background(), snap, registry, tag)
	require.NoError(t, err)

	require.Len(t, result.Removed, 1)
	assert.Equal(t, "acme/c", result.Removed[0].Name)
	require.Len(t, result.Installed, 1)
	assert.Equal(t, "acme/b", result.Installed[0].Name)
	assert.Equal(t, tag, result.Installed[0].InstallerTag)
}

func TestReconcile_StableResolutionIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	snap.EXPECT().ListPackages().Return([]domain.ResolvedPackage{
		{Name: "acme/a", InstallPath: "/vendor/acme/a"},
	}, nil).Times(2)
	registry.EXPECT().ByInstaller(tag).Return([]domain.ManagedPackage{
		{Name: "acme/a", InstallPath: "/vendor/acme/a", InstallerTag: tag},
	}, nil).Times(2)
	registry.EXPECT().IsInstalledAtPath("/vendor/acme/a").Return(true, nil).Times(2)

	for range 2 {
		result, err := engine.Reconcile(context.Background(), snap, registry, tag)
		require.NoError(t, err)
		assert.False(t, result.Changed())
	}
}

func TestReconcile_AliasesCollapse(t *testing.T) {
	// Two aliases of the same target must not produce two installs.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	target := domain.ResolvedPackage{Name: "acme/real", InstallPath: "/vendor/acme/real"}
	aliasOne := domain.ResolvedPackage{Name: "acme/alias1", IsAlias: true, AliasOf: "acme/real"}
	aliasTwo := domain.ResolvedPackage{Name: "acme/alias2", IsAlias: true, AliasOf: "acme/real"}

	snap.EXPECT().ListPackages().Return([]domain.ResolvedPackage{aliasOne, target, aliasTwo}, nil)
	snap.EXPECT().ResolveAlias(aliasOne).Return(target, nil)
	snap.EXPECT().ResolveAlias(aliasTwo).Return(target, nil)

	registry.EXPECT().ByInstaller(tag).Return(nil, nil)
	registry.EXPECT().IsInstalledAtPath("/vendor/acme/real").Return(false, nil)
	registry.EXPECT().Install("/vendor/acme/real", "acme/real", tag).Return(nil)

	result, err := engine.Reconcile(context.Background(), snap, registry, tag)
	require.NoError(t, err)
	require.Len(t, result.Installed, 1)
}

func TestReconcile_ForeignInstallerUntouched(t *testing.T) {
	// ByInstaller scopes the removal pass; packages tagged by other tools are
	// never even listed, so an empty resolution removes nothing foreign.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	snap.EXPECT().ListPackages().Return(nil, nil)
	registry.EXPECT().ByInstaller(tag).Return(nil, nil)

	result, err := engine.Reconcile(context.Background(), snap, registry, tag)
	require.NoError(t, err)
	assert.False(t, result.Changed())
}

func TestReconcile_RemovalsRunBeforeInstalls(t *testing.T) {
	// A renamed dependency reuses the old install path. The removal must land
	// first so the path-membership test does not skip the new package.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	snap.EXPECT().ListPackages().Return([]domain.ResolvedPackage{
		{Name: "acme/renamed", InstallPath: "/vendor/acme/pkg"},
	}, nil)
	registry.EXPECT().ByInstaller(tag).Return([]domain.ManagedPackage{
		{Name: "acme/old", InstallPath: "/vendor/acme/pkg", InstallerTag: tag},
	}, nil)

	remove := registry.EXPECT().Remove("acme/old").Return(nil)
	lookup := registry.EXPECT().IsInstalledAtPath("/vendor/acme/pkg").Return(false, nil).After(remove)
	registry.EXPECT().Install("/vendor/acme/pkg", "acme/renamed", tag).Return(nil).After(lookup)

	result, err := engine.Reconcile(context.Background(), snap, registry, tag)
	require.NoError(t, err)
	assert.Len(t, result.Removed, 1)
	assert.Len(t, result.Installed, 1)
}

func TestReconcile_RemoveFailureStopsPassAndReportsPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	snap.EXPECT().ListPackages().Return(nil, nil)
	registry.EXPECT().ByInstaller(tag).Return([]domain.ManagedPackage{
		{Name: "acme/one", InstallPath: "/vendor/acme/one", InstallerTag: tag},
		{Name: "acme/two", InstallPath: "/vendor/acme/two", InstallerTag: tag},
	}, nil)
	registry.EXPECT().Remove("acme/one").Return(nil)
	registry.EXPECT().Remove("acme/two").Return(errors.New("disk full"))

	result, err := engine.Reconcile(context.Background(), snap, registry, tag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrPackageRemoveFailed.Error())
	assert.Contains(t, err.Error(), "acme/two")

	// The first removal already applied and must be reported.
	require.Len(t, result.Removed, 1)
	assert.Equal(t, "acme/one", result.Removed[0].Name)
}

func TestReconcile_InstallFailureSurfacesPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	snap.EXPECT().ListPackages().Return([]domain.ResolvedPackage{
		{Name: "acme/new", InstallPath: "/vendor/acme/new"},
	}, nil)
	registry.EXPECT().ByInstaller(tag).Return(nil, nil)
	registry.EXPECT().IsInstalledAtPath("/vendor/acme/new").Return(false, nil)
	registry.EXPECT().Install("/vendor/acme/new", "acme/new", tag).Return(errors.New("readonly registry"))

	result, err := engine.Reconcile(context.Background(), snap, registry, tag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrPackageInstallFailed.Error())
	assert.Contains(t, err.Error(), "acme/new")
	assert.Empty(t, result.Installed)
}

func TestReconcile_AliasTargetMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newEngine(ctrl)
	snap := mocks.NewMockResolutionSnapshot(ctrl)
	registry := mocks.NewMockPackageRegistry(ctrl)

	alias := domain.ResolvedPackage{Name: "acme/alias", IsAlias: true, AliasOf: "acme/gone"}
	snap.EXPECT().ListPackages().Return([]domain.ResolvedPackage{alias}, nil)
	snap.EXPECT().ResolveAlias(alias).Return(domain.ResolvedPackage{}, domain.ErrAliasTargetMissing)

	_, err := engine.Reconcile(context.Background(), snap, registry, tag)
	require.ErrorIs(t, err, domain.ErrAliasTargetMissing)
}
