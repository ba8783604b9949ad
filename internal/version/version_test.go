package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch format", info.Platform)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		Commit:    "abcdef1234567890",
		Date:      "2025-01-01",
		GoVersion: "go1.24",
		Platform:  "linux/amd64",
	}

	s := info.String()
	if !strings.Contains(s, "1.2.3") {
		t.Errorf("String() = %q, missing version", s)
	}
	// Commit is shortened to 8 characters
	if !strings.Contains(s, "abcdef12") || strings.Contains(s, "abcdef1234") {
		t.Errorf("String() = %q, want short commit abcdef12", s)
	}
}

func TestInfoShort(t *testing.T) {
	info := Info{Version: "1.2.3"}
	if info.Short() != "1.2.3" {
		t.Errorf("Short() = %q, want %q", info.Short(), "1.2.3")
	}
}
