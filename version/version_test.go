package version

import (
	"strings"
	"testing"
	"time"
)

func saveAndRestore() func() {
	v, c, b := Version, GitCommit, BuildTime
	return func() {
		Version, GitCommit, BuildTime = v, c, b
	}
}

func TestGetUsesLinkerValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.4.0"
	GitCommit = "abc1234def"
	BuildTime = "2026-01-15T10:30:00Z"

	info := Get()
	if info.Version != "1.4.0" {
		t.Errorf("expected '1.4.0', got %q", info.Version)
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected truncated commit 'abc1234', got %q", info.GitCommit)
	}
	want := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	if !info.BuildDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, info.BuildDate)
	}
}

func TestGetInvalidBuildTime(t *testing.T) {
	defer saveAndRestore()()
	BuildTime = "yesterday"
	Get()
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "dev"}, "dev"},
		{Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestOr(t *testing.T) {
	defer saveAndRestore()()
	Version = "2.0.0"

	if got := Or("1.2.3"); got != "1.2.3" {
		t.Errorf("expected configured version, got %q", got)
	}
	if got := Or(""); !strings.HasPrefix(got, "2.0.0") {
		t.Errorf("expected build version prefix '2.0.0', got %q", got)
	}
}
