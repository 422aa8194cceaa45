package hostapi

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/lixenwraith/word-mole"

// moduleImports returns the non-test imports of the package in dir
func moduleImports(t *testing.T, root, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(root, dir))
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	fset := token.NewFileSet()
	var imports []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(root, dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s/%s: %v", dir, name, err)
		}
		for _, spec := range f.Imports {
			path, _ := strconv.Unquote(spec.Path.Value)
			imports = append(imports, path)
		}
	}
	return imports
}

// TestHeadlessBinariesSkipAudio walks the module import graph of the host and sim binaries
// and fails if either reaches the audio package or the speaker stack behind it
func TestHeadlessBinariesSkipAudio(t *testing.T) {
	root, err := filepath.Abs("..")
	if err != nil {
		t.Fatal(err)
	}

	for _, start := range []string{"cmd/word-mole-host", "cmd/word-mole-sim"} {
		seen := map[string]bool{start: true}
		queue := []string{start}
		for len(queue) > 0 {
			dir := queue[0]
			queue = queue[1:]
			for _, imp := range moduleImports(t, root, dir) {
				if strings.HasPrefix(imp, "github.com/gopxl/") || imp == modulePath+"/audio" {
					t.Errorf("%s: %s imports %s", start, dir, imp)
					continue
				}
				rel, ok := strings.CutPrefix(imp, modulePath+"/")
				if !ok || seen[rel] {
					continue
				}
				seen[rel] = true
				queue = append(queue, rel)
			}
		}
		if !seen["round"] || !seen["core"] {
			t.Errorf("%s: expected round and core in the import graph, got %v", start, seen)
		}
	}
}
