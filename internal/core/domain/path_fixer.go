package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var ErrInvalidReplacement = errors.New("invalid replacement character")

// windowsIllegalChars may not appear in any Windows path component.
const windowsIllegalChars = ":*?\"<>|\n\r\t\v"

var reservedDeviceName = regexp.MustCompile(`(?i)^(aux|con|nul|prn|com[0-9]|lpt[0-9])(\..+)?$`)

// FixOptions controls FixPath.
type FixOptions struct {
	// AllowLeadingPeriod keeps components such as ".config" untouched.
	AllowLeadingPeriod bool
	// Replacement substitutes illegal content. Zero means '_'.
	Replacement rune
}

func DefaultFixOptions() FixOptions {
	return FixOptions{AllowLeadingPeriod: true, Replacement: '_'}
}

func (o FixOptions) replacement() (string, error) {
	r := o.Replacement
	if r == 0 {
		r = '_'
	}
	if r == '/' || r == '\\' || r == '.' || unicode.IsControl(r) || strings.ContainsRune(windowsIllegalChars, r) {
		return "", fmt.Errorf("%w: %q", ErrInvalidReplacement, r)
	}
	return string(r), nil
}

// FixPath rewrites every component of path so that it is a legal file name
// under flavor, keeping the number and order of components. Anchors such as
// "/", "C:\" and "\\server\share\" are never rewritten. A drive-relative
// "C:" is not an anchor and becomes "C_". FixPath is idempotent.
func FixPath(path string, flavor Flavor, opts FixOptions) (string, error) {
	replacement, err := opts.replacement()
	if err != nil {
		return "", err
	}

	parts := SplitPath(path, flavor)
	for i, part := range parts {
		if i == 0 && isAnchor(part, flavor) {
			continue
		}
		if !opts.AllowLeadingPeriod {
			part = replaceLeadingPeriod(part, replacement)
		}
		switch flavor {
		case Posix:
			part = strings.ReplaceAll(part, ":", replacement)
		case Windows:
			part = replaceWindowsIllegalChars(part, replacement)
			part = replaceTrailingPeriod(part, replacement)
			part = escapeReservedDeviceName(part, replacement)
		}
		parts[i] = part
	}
	return JoinPath(parts, flavor), nil
}

// FixPathForCurrentOS applies FixPath with the flavor of the running system.
func FixPathForCurrentOS(path string, opts FixOptions) (string, error) {
	return FixPath(path, CurrentFlavor(), opts)
}

func isDotEntry(part string) bool {
	return part == "." || part == ".."
}

func replaceLeadingPeriod(part, replacement string) string {
	if isDotEntry(part) || !strings.HasPrefix(part, ".") {
		return part
	}
	return replacement + part[1:]
}

func replaceWindowsIllegalChars(part, replacement string) string {
	var b strings.Builder
	for _, r := range part {
		if strings.ContainsRune(windowsIllegalChars, r) {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func replaceTrailingPeriod(part, replacement string) string {
	if isDotEntry(part) || !strings.HasSuffix(part, ".") {
		return part
	}
	return part[:len(part)-1] + replacement
}

// escapeReservedDeviceName turns "con.txt" into "con_.txt".
func escapeReservedDeviceName(part, replacement string) string {
	match := reservedDeviceName.FindStringSubmatchIndex(part)
	if match == nil {
		return part
	}
	end := match[3]
	return part[:end] + replacement + part[end:]
}
