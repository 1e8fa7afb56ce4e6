// Package reconcile computes and applies the diff between the resolver's
// package set and the managed-package registry.
package reconcile

import (
	"context"
	"fmt"
	"sort"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result reports the packages a reconciliation run installed and removed.
// Both lists may be partially populated when an error is returned.
type Result struct {
	Installed []domain.ManagedPackage
	Removed   []domain.ManagedPackage
}

// Changed reports whether the run mutated the registry.
func (r Result) Changed() bool {
	return len(r.Installed) > 0 || len(r.Removed) > 0
}

// Engine reconciles the registry against a resolution snapshot.
type Engine struct {
	logger ports.Logger
}

// New creates a new reconciliation engine.
func New(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Reconcile brings the set of packages owned by installerTag in line with the
// snapshot. Removals run before installations so an install path reused by a
// renamed dependency is not skipped as already installed. A stable resolution
// is a no-op. On a registry persistence failure the current pass stops and the
// partial result is returned alongside the error.
func (e *Engine) Reconcile(
	ctx context.Context,
	snapshot ports.ResolutionSnapshot,
	registry ports.PackageRegistry,
	installerTag string,
) (Result, error) {
	var result Result

	targets, err := e.collectTargets(snapshot)
	if err != nil {
		return result, err
	}

	managed, err := registry.ByInstaller(installerTag)
	if err != nil {
		return result, err
	}

	// Removal pass. Packages installed by a different tool are never
	// inspected: ByInstaller already scopes to installerTag.
	for _, pkg := range managed {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if _, ok := targets[pkg.Name]; ok {
			continue
		}
		if err := registry.Remove(pkg.Name); err != nil {
			return result, zerr.Wrap(err,
				fmt.Sprintf("%s %s", domain.ErrPackageRemoveFailed.Error(), pkg.Name))
		}
		result.Removed = append(result.Removed, pkg)
		e.logger.Info(fmt.Sprintf("removed %s", pkg.Name))
	}

	// Installation pass, in sorted name order for deterministic output.
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		target := targets[name]
		installed, err := registry.IsInstalledAtPath(target.InstallPath)
		if err != nil {
			return result, err
		}
		if installed {
			continue
		}
		if err := registry.Install(target.InstallPath, target.Name, installerTag); err != nil {
			return result, zerr.Wrap(err,
				fmt.Sprintf("%s %s", domain.ErrPackageInstallFailed.Error(), target.Name))
		}
		managedPkg := domain.ManagedPackage{
			Name:         target.Name,
			InstallPath:  target.InstallPath,
			InstallerTag: installerTag,
		}
		result.Installed = append(result.Installed, managedPkg)
		e.logger.Info(fmt.Sprintf("registered %s", target.Name))
	}

	if !result.Changed() {
		e.logger.Info("packages already in sync")
	}

	return result, nil
}

// collectTargets builds the target set by name, resolving each alias to its
// underlying package first. Two aliases of the same target collapse to one
// entry.
func (e *Engine) collectTargets(snapshot ports.ResolutionSnapshot) (map[string]domain.ResolvedPackage, error) {
	resolved, err := snapshot.ListPackages()
	if err != nil {
		return nil, err
	}

	targets := make(map[string]domain.ResolvedPackage, len(resolved))
	for _, pkg := range resolved {
		if pkg.IsAlias {
			target, err := snapshot.ResolveAlias(pkg)
			if err != nil {
				return nil, err
			}
			pkg = target
		}
		targets[pkg.Name] = pkg
	}

	return targets, nil
}
