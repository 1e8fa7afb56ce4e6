// Package app implements the application layer for weld.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/engine/manifest"
	"go.trai.ch/weld/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// App orchestrates the lifecycle hooks: reconciliation and rebuilds on
// install, manifest injection on autoload generation.
type App struct {
	configLoader ports.ConfigLoader
	snapshots    ports.SnapshotLoader
	registries   ports.RegistryOpener
	rebuilders   ports.RebuilderFactory
	watcher      ports.Watcher
	logger       ports.Logger
	reconciler   *reconcile.Engine
	patcher      *manifest.Patcher
	tracer       trace.Tracer
	guard        *hookGuard
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	snapshots ports.SnapshotLoader,
	registries ports.RegistryOpener,
	rebuilders ports.RebuilderFactory,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		snapshots:    snapshots,
		registries:   registries,
		rebuilders:   rebuilders,
		watcher:      watcher,
		logger:       log,
		reconciler:   reconcile.New(log),
		patcher:      manifest.NewPatcher(),
		tracer:       otel.Tracer("weld"),
		guard:        newHookGuard(),
	}
}

// RunInstall handles the post-install/update lifecycle hook: reconcile the
// registry against the resolver snapshot, propagate the root package name,
// then trigger the repository and discovery rebuilds.
func (a *App) RunInstall(ctx context.Context, cwd string) error {
	if !a.guard.admitOnce(domain.HookInstall) {
		a.logger.Info("install hook already ran, skipping duplicate invocation")
		return nil
	}

	ctx, span := a.tracer.Start(ctx, "weld.install")
	defer span.End()

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return err
	}

	return a.sync(ctx, cfg)
}

// RunAutoload handles the post-autoload-generation lifecycle hook: inject the
// factory-class constant into the bootstrap manifest and the factory entry
// into the class-map manifest.
func (a *App) RunAutoload(ctx context.Context, cwd string) error {
	if !a.guard.admitOnce(domain.HookAutoload) {
		a.logger.Info("autoload hook already ran, skipping duplicate invocation")
		return nil
	}

	_, span := a.tracer.Start(ctx, "weld.autoload")
	defer span.End()

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return err
	}

	snap, err := a.snapshots.Load(cfg.SnapshotPath, cfg.Root)
	if err != nil {
		return err
	}

	// Generated-file locations are configuration-provided, made absolute
	// against the resolver's working directory.
	workdir := snap.WorkingDir()
	bootstrap := absAgainst(workdir, cfg.BootstrapFile)
	classMap := absAgainst(workdir, cfg.ClassMapFile)
	factoryFile := absAgainst(workdir, cfg.FactoryFilePath)
	baseDir := absAgainst(workdir, cfg.ClassMapBaseDir)

	if err := a.patcher.InjectConstant(bootstrap, domain.FactoryConstantName, cfg.FactoryClassName); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("injected %s into %s", domain.FactoryConstantName, cfg.BootstrapFile))

	rel, err := filepath.Rel(baseDir, factoryFile)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	expr := manifest.TableValueExpr(domain.ClassMapBaseVar, rel)
	if err := a.patcher.InjectTableEntry(classMap, cfg.FactoryClassName, expr); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("injected %s into %s", cfg.FactoryClassName, cfg.ClassMapFile))

	return nil
}

// Watch re-runs reconciliation and the rebuilds whenever the resolver
// snapshot changes. The manifest patcher is never invoked from watch mode:
// injection is only safe under the per-process hook guard.
func (a *App) Watch(ctx context.Context, cwd string) error {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return err
	}

	snap, err := a.snapshots.Load(cfg.SnapshotPath, cfg.Root)
	if err != nil {
		return err
	}
	lastDigest := snap.Digest()

	if err := a.watcher.Start(ctx, filepath.Dir(cfg.SnapshotPath)); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info(fmt.Sprintf("watching %s", cfg.SnapshotPath))

	for event := range a.watcher.Events() {
		if event.Path != cfg.SnapshotPath || event.Operation == ports.OpRemove {
			continue
		}

		snap, err := a.snapshots.Load(cfg.SnapshotPath, cfg.Root)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if snap.Digest() == lastDigest {
			continue
		}
		lastDigest = snap.Digest()

		if err := a.sync(ctx, cfg); err != nil {
			a.logger.Error(err)
		}
	}

	return ctx.Err()
}

// sync reconciles the registry against the current snapshot, propagates the
// root package name, and triggers both external rebuilds in order.
func (a *App) sync(ctx context.Context, cfg *domain.Config) error {
	ctx, span := a.tracer.Start(ctx, "weld.sync")
	defer span.End()

	snap, err := a.snapshots.Load(cfg.SnapshotPath, cfg.Root)
	if err != nil {
		return err
	}

	registry, err := a.registries.Open(cfg.RegistryPath, cfg.Root)
	if err != nil {
		return err
	}

	result, err := a.reconciler.Reconcile(ctx, snap, registry, cfg.InstallerTag)
	if result.Changed() {
		a.logger.Info(fmt.Sprintf(
			"reconciled packages (%d registered, %d removed)",
			len(result.Installed), len(result.Removed),
		))
	}
	if err != nil {
		return err
	}

	if name := snap.RootPackageName(); name != "" {
		if err := registry.SetRootPackageName(name); err != nil {
			return err
		}
	}

	if err := a.rebuild(ctx, "repository", cfg.Repository, cfg.Root); err != nil {
		return err
	}
	return a.rebuild(ctx, "discovery", cfg.Discovery, cfg.Root)
}

// rebuild runs one external rebuilder's clear-then-build sequence. Clear and
// build failures are not distinguished; both surface as a single rebuild
// failure naming the rebuilder.
func (a *App) rebuild(ctx context.Context, name string, commands domain.RebuildCommands, workdir string) error {
	rb := a.rebuilders.New(name, commands, workdir)

	if err := rb.Clear(ctx); err != nil {
		return zerr.Wrap(err, fmt.Sprintf("%s: %s", domain.ErrRebuildFailed.Error(), rb.Name()))
	}
	if err := rb.Build(ctx); err != nil {
		return zerr.Wrap(err, fmt.Sprintf("%s: %s", domain.ErrRebuildFailed.Error(), rb.Name()))
	}

	a.logger.Info(fmt.Sprintf("rebuilt %s", rb.Name()))
	return nil
}

func absAgainst(workdir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workdir, path)
}
