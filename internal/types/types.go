package types

import "fmt"

// Mode selects what is enumerated and how candidates are matched.
// It is fixed for the lifetime of a search invocation.
type Mode string

const (
	// ModeContent matches keywords as substrings of file contents.
	ModeContent Mode = "content"
	// ModeFileName matches keywords against file base names.
	ModeFileName Mode = "filename"
	// ModeDirName matches keywords against directory base names.
	ModeDirName Mode = "dirname"
)

// ParseMode converts a user-supplied mode string into a Mode.
// It accepts a few common aliases so CLI input stays forgiving.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "content", "text":
		return ModeContent, nil
	case "filename", "file", "name":
		return ModeFileName, nil
	case "dirname", "dir", "directory":
		return ModeDirName, nil
	}
	return "", fmt.Errorf("unknown mode %q (want content, filename or dirname)", s)
}

// Match is one confirmed (path, keyword) hit. A candidate matching several
// keywords produces one Match per keyword, in request order.
type Match struct {
	Path    string `json:"path"`
	Keyword string `json:"keyword"`
}
