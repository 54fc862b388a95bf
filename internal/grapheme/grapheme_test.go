package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "b"
	got := Split(text)
	if len(got) != 3 {
		t.Fatalf("split len=%d, want %d", len(got), 3)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if c := Count(text); c != 3 {
		t.Fatalf("count=%d, want %d", c, 3)
	}
}

func TestClusterLen_CombiningMarks(t *testing.T) {
	text := []rune("xe\u0301")
	if got, want := LastClusterLen(text), 2; got != want {
		t.Fatalf("last cluster len=%d, want %d", got, want)
	}
	if got, want := FirstClusterLen(text), 1; got != want {
		t.Fatalf("first cluster len=%d, want %d", got, want)
	}
	if got := LastClusterLen(nil); got != 0 {
		t.Fatalf("empty last cluster len=%d, want 0", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		col     int
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "テ", want: 2},
		{cluster: "\t", col: 0, want: 4},
		{cluster: "\t", col: 3, want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster, tc.col, 4); got != tc.want {
			t.Fatalf("Width(%q, %d): got %d, want %d", tc.cluster, tc.col, got, tc.want)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsSpaceRune('\u00a0') {
		t.Fatalf("nbsp should be space")
	}
}
