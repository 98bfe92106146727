package types

import "testing"

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"content":   ModeContent,
		"text":      ModeContent,
		"filename":  ModeFileName,
		"file":      ModeFileName,
		"name":      ModeFileName,
		"dirname":   ModeDirName,
		"dir":       ModeDirName,
		"directory": ModeDirName,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q)=%q want %q", in, got, want)
		}
	}
}

func TestParseMode_Unknown(t *testing.T) {
	if _, err := ParseMode("regex"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
