package dup

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one\n", []string{"one"}},
		{"one\ntwo\n", []string{"one", "two"}},
		{"one\n\ntwo\n", []string{"one", "", "two"}},
	}
	for _, c := range cases {
		got := splitLines(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("splitLines(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIndexFileSkipsBlankAndTrims(t *testing.T) {
	f := fileLines{name: "f.txt", lines: []string{"  alpha  ", "", "   ", "alpha", "beta"}}
	index := indexFile(f)

	if len(index) != 2 {
		t.Fatalf("got %d keys, want 2: %v", len(index), index)
	}
	alpha := index["alpha"]
	if len(alpha) != 2 || alpha[0] != (Location{File: "f.txt", Line: 1}) || alpha[1] != (Location{File: "f.txt", Line: 4}) {
		t.Errorf("alpha locations = %v, want f.txt:1 and f.txt:4", alpha)
	}
	if len(index["beta"]) != 1 {
		t.Errorf("beta locations = %v, want one entry", index["beta"])
	}
}

func TestFoldLocalIndexes(t *testing.T) {
	results := make(chan lineIndex, 2)
	results <- lineIndex{
		"shared": {{File: "a.txt", Line: 1}},
		"only-a": {{File: "a.txt", Line: 2}},
	}
	results <- lineIndex{
		"shared": {{File: "b.txt", Line: 7}},
	}
	close(results)

	merged := foldLineIndexes(results)
	if len(merged) != 2 {
		t.Fatalf("got %d keys, want 2: %v", len(merged), merged)
	}
	if len(merged["shared"]) != 2 {
		t.Errorf("shared locations = %v, want union of both workers", merged["shared"])
	}
	if len(merged["only-a"]) != 1 {
		t.Errorf("only-a locations = %v, want single entry", merged["only-a"])
	}
}

func TestFilterDuplicates(t *testing.T) {
	index := lineIndex{
		"twice": {{File: "a", Line: 1}, {File: "b", Line: 2}},
		"once":  {{File: "a", Line: 3}},
	}
	dups := filterDuplicates(index)
	if _, ok := dups["twice"]; !ok {
		t.Error("expected 'twice' to survive the duplicate filter")
	}
	if _, ok := dups["once"]; ok {
		t.Error("'once' should not survive the duplicate filter")
	}
}
