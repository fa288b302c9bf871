package format

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/dhamidi/junparse/java/tree"
)

var testFilter string

func init() {
	flag.StringVar(&testFilter, "filter", "", "filter testdata trees by substring match on filename")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// TestRoundTrip_Testdata renders every testdata/*.json tree, compares the
// result with the .java file next to it and checks that the tree survives a
// trip through the JSON codec unchanged.
// Use -filter to select trees: go test ./format -filter=Matrix
func TestRoundTrip_Testdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.json"))
	if err != nil {
		t.Fatalf("failed to list testdata: %v", err)
	}
	if len(files) == 0 {
		t.Skip("no .json trees found in testdata")
	}

	for _, file := range files {
		if testFilter != "" && !strings.Contains(file, testFilter) {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(file), ".json")
		t.Run(name, func(t *testing.T) {
			runRoundTripTest(t, file)
		})
	}
}

func runRoundTripTest(t *testing.T, filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read tree: %v", err)
	}
	want, err := os.ReadFile(strings.TrimSuffix(filename, ".json") + ".java")
	if err != nil {
		t.Fatalf("failed to read expected source: %v", err)
	}

	orig, err := tree.Unmarshal(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	first, err := Render(orig)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first+"\n" != string(want) {
		t.Errorf("rendered source differs from %s\n=== got ===\n%s\n=== want ===\n%s", filename, first, want)
	}

	encoded, err := tree.Marshal(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := tree.Unmarshal(encoded)
	if err != nil {
		t.Fatalf("decode re-encoded tree: %v\n%s", err, encoded)
	}

	diffs := compareNodeCounts(tree.CountKinds(orig), tree.CountKinds(again))
	if len(diffs) > 0 {
		t.Errorf("node count mismatch after JSON round trip:\n\n%s", formatDiffs(diffs))
	}

	second, err := Render(again)
	if err != nil {
		t.Fatalf("render re-decoded tree: %v", err)
	}
	if second != first {
		t.Errorf("rendering is not stable across the JSON round trip\n=== first ===\n%s\n=== second ===\n%s", first, second)
	}
}

// NodeCountDiff is a difference in node counts between two trees.
type NodeCountDiff struct {
	Kind     tree.Kind
	Original int
	Decoded  int
}

func compareNodeCounts(original, decoded map[tree.Kind]int) []NodeCountDiff {
	var diffs []NodeCountDiff

	allKinds := make(map[tree.Kind]bool)
	for k := range original {
		allKinds[k] = true
	}
	for k := range decoded {
		allKinds[k] = true
	}

	for kind := range allKinds {
		if original[kind] != decoded[kind] {
			diffs = append(diffs, NodeCountDiff{Kind: kind, Original: original[kind], Decoded: decoded[kind]})
		}
	}

	sort.Slice(diffs, func(i, j int) bool {
		return diffs[i].Kind.String() < diffs[j].Kind.String()
	})
	return diffs
}

func formatDiffs(diffs []NodeCountDiff) string {
	var sb strings.Builder
	sb.WriteString("Kind                          Original  Decoded  Delta\n")
	sb.WriteString("----------------------------------------------------------\n")
	for _, d := range diffs {
		delta := d.Decoded - d.Original
		sign := "+"
		if delta < 0 {
			sign = ""
		}
		sb.WriteString(fmt.Sprintf("%-30s %8d  %7d  %s%d\n", d.Kind.String(), d.Original, d.Decoded, sign, delta))
	}
	return sb.String()
}
