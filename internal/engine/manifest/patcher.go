// Package manifest injects generated declarations into generated autoload
// manifests at stable structural anchors.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/zerr"
)

// lastReturnPattern matches a top-level return statement at the start of a line.
var lastReturnPattern = regexp.MustCompile(`(?m)^return\b`)

// Patcher inserts generated fragments into manifest files. Insertion is not
// self-idempotent: the same operation invoked twice inserts the fragment
// twice. Callers guarantee single invocation per build via the lifecycle
// guard, or pre-check for existing occurrences.
type Patcher struct{}

// NewPatcher creates a new manifest patcher.
func NewPatcher() *Patcher {
	return &Patcher{}
}

// InjectConstant inserts a constant definition immediately before the last
// top-level return statement of the bootstrap manifest. Surrounding content
// is preserved byte for byte.
func (p *Patcher) InjectConstant(file, constantName, value string) error {
	fragment := fmt.Sprintf("define(%s, %s);\n\n", StringLiteral(constantName), StringLiteral(value))
	return p.insertBefore(file, fragment, findLastReturn, "return statement")
}

// InjectTableEntry inserts a key => expression entry immediately before the
// closing delimiter of the last table literal in the class-map manifest.
// valueExpr is inserted verbatim; keys are quoted.
func (p *Patcher) InjectTableEntry(file, key, valueExpr string) error {
	fragment := fmt.Sprintf("    %s => %s,\n", StringLiteral(key), valueExpr)
	return p.insertBefore(file, fragment, findLastClosing, "closing table delimiter")
}

func (p *Patcher) insertBefore(file, fragment string, anchor func([]byte) int, marker string) error {
	content, err := os.ReadFile(file) //nolint:gosec // Path comes from the project configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(domain.ErrManifestMissing, fmt.Sprintf("cannot patch %s", file))
		}
		return zerr.Wrap(err, domain.ErrManifestMissing.Error())
	}

	at := anchor(content)
	if at < 0 {
		return zerr.Wrap(domain.ErrManifestMalformed, fmt.Sprintf("%s has no %s", file, marker))
	}

	patched := make([]byte, 0, len(content)+len(fragment))
	patched = append(patched, content[:at]...)
	patched = append(patched, fragment...)
	patched = append(patched, content[at:]...)

	mode := fs.FileMode(domain.FilePerm)
	if info, err := os.Stat(file); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(file, patched, mode); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	return nil
}

// findLastReturn returns the byte offset of the last top-level return
// statement, or -1 if none exists.
func findLastReturn(content []byte) int {
	locs := lastReturnPattern.FindAllIndex(content, -1)
	if len(locs) == 0 {
		return -1
	}
	return locs[len(locs)-1][0]
}

// findLastClosing returns the byte offset of the closing delimiter of the
// last table literal, or -1 if none exists.
func findLastClosing(content []byte) int {
	return bytes.LastIndex(content, []byte(");"))
}
