package mdpane

import "testing"

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestBuildInfo_String(t *testing.T) {
	cases := []struct {
		info BuildInfo
		want string
	}{
		{BuildInfo{Version: "v0.1.0", Commit: "unknown", Date: "unknown"}, "v0.1.0"},
		{BuildInfo{Version: "v0.1.0"}, "v0.1.0"},
		{BuildInfo{Version: "v1.0.0", Commit: "abc123", Date: "2026-01-02"}, "v1.0.0 (abc123) built 2026-01-02"},
	}
	for _, tc := range cases {
		if got := tc.info.String(); got != tc.want {
			t.Fatalf("String(%+v): got %q, want %q", tc.info, got, tc.want)
		}
	}
}

func TestIsSemver(t *testing.T) {
	cases := map[string]bool{
		"0.1.0":         true,
		"1.2.3-alpha.1": true,
		"2.0.0+build.7": true,
		"v1.2.3":        false,
		"1.2":           false,
		"01.2.3":        false,
	}
	for v, want := range cases {
		if got := IsSemver(v); got != want {
			t.Fatalf("IsSemver(%q): got %v, want %v", v, got, want)
		}
	}
}
