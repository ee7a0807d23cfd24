package domain

import (
	"fmt"
	"runtime"
	"strings"
)

// Flavor selects the path syntax and filename rules of a platform.
type Flavor int

const (
	Posix Flavor = iota
	Windows
)

func (f Flavor) String() string {
	switch f {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// ParseFlavor accepts "posix" or "windows" (case-insensitive).
func ParseFlavor(name string) (Flavor, error) {
	switch strings.ToLower(name) {
	case "posix":
		return Posix, nil
	case "windows":
		return Windows, nil
	default:
		return 0, fmt.Errorf("unknown path flavor '%s' (expected posix or windows)", name)
	}
}

// CurrentFlavor returns the flavor of the running operating system.
func CurrentFlavor() Flavor {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

func (f Flavor) separator() string {
	if f == Windows {
		return `\`
	}
	return "/"
}

// SplitPath returns the components of path: an optional anchor (root or
// drive) followed by each non-empty segment. "." and ".." are kept.
func SplitPath(path string, flavor Flavor) []string {
	var parts []string
	anchor, rest := splitAnchor(path, flavor)
	if anchor != "" {
		parts = append(parts, anchor)
	}
	for _, segment := range strings.Split(rest, flavor.separator()) {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	return parts
}

// JoinPath is the inverse of SplitPath.
func JoinPath(parts []string, flavor Flavor) string {
	if len(parts) == 0 {
		return ""
	}
	if isAnchor(parts[0], flavor) {
		return parts[0] + strings.Join(parts[1:], flavor.separator())
	}
	return strings.Join(parts, flavor.separator())
}

func splitAnchor(path string, flavor Flavor) (string, string) {
	if flavor == Posix {
		if strings.HasPrefix(path, "/") {
			return "/", strings.TrimLeft(path, "/")
		}
		return "", path
	}

	path = strings.ReplaceAll(path, "/", `\`)
	if strings.HasPrefix(path, `\\`) {
		// \\server\share\
		segments := strings.SplitN(path[2:], `\`, 3)
		if len(segments) >= 2 && segments[0] != "" && segments[1] != "" {
			anchor := `\\` + segments[0] + `\` + segments[1] + `\`
			if len(segments) == 3 {
				return anchor, segments[2]
			}
			return anchor, ""
		}
	}
	// Only "C:\" is a drive anchor; "C:" and "C:x" are plain names.
	if isDriveLetter(path) && len(path) > 2 && path[2] == '\\' {
		return path[:3], strings.TrimLeft(path[3:], `\`)
	}
	if strings.HasPrefix(path, `\`) {
		return `\`, strings.TrimLeft(path, `\`)
	}
	return "", path
}

func isAnchor(part string, flavor Flavor) bool {
	if flavor == Posix {
		return part == "/"
	}
	return strings.HasSuffix(part, `\`)
}

func isDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Suffix returns the final extension of name including its period.
// A name whose only period is the leading one (".bashrc") has no suffix.
func Suffix(name string) string {
	i := strings.LastIndex(name, ".")
	if 0 < i && i < len(name)-1 {
		return name[i:]
	}
	return ""
}

// Stem returns name without its Suffix.
func Stem(name string) string {
	return strings.TrimSuffix(name, Suffix(name))
}
