package manifest

import (
	"path/filepath"
	"strings"
)

// literalEscaper escapes the two characters significant inside a single-quoted
// PHP string literal, matching var_export output.
var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// StringLiteral renders a value as a single-quoted PHP string literal.
func StringLiteral(value string) string {
	return "'" + literalEscaper.Replace(value) + "'"
}

// TableValueExpr renders a class-map value as a base-directory concatenation
// expression, e.g. $baseDir . '/src/Factory.php'. relPath is normalized to
// forward slashes.
func TableValueExpr(baseVar, relPath string) string {
	return baseVar + " . " + StringLiteral("/"+filepath.ToSlash(relPath))
}
