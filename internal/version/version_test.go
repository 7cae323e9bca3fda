package version

import "testing"

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.0", Commit: "abc1234", BuildDate: "2026-01-02T03:04:05Z", GoVersion: "go1.25.5"}
	want := "quizapp v1.2.0 (commit=abc1234, built=2026-01-02T03:04:05Z, go=go1.25.5)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGetReadsBuildVars(t *testing.T) {
	if got := Get(); got.Version != Version || got.Commit != Commit || got.GoVersion != GoVersion {
		t.Errorf("Get() = %+v, does not match the build vars", got)
	}
}
