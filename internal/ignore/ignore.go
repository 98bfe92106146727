// Package ignore implements .seekrignore matching. Patterns are one glob per
// line, gitignore-flavored: a trailing slash marks a directory pattern, `#`
// starts a comment, blank lines are skipped.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds the parsed patterns of one ignore file.
type Matcher struct {
	globs []string
	dirs  []string
}

// Load reads the ignore file at path. A missing file yields an empty matcher
// and the underlying error; callers typically treat that as "nothing ignored".
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
			continue
		}
		m.globs = append(m.globs, line)
	}
	return m, sc.Err()
}

// Match reports whether the slash-relative path is ignored.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, d := range m.dirs {
		for _, seg := range strings.Split(rel, "/") {
			if ok, _ := doublestar.Match(d, seg); ok {
				return true
			}
		}
	}
	base := filepath.Base(rel)
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns at all.
func (m Matcher) Empty() bool { return len(m.globs) == 0 && len(m.dirs) == 0 }
