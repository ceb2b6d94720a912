package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

type importRef struct {
	file string
	imp  string
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)

	type violation struct {
		importRef
		rule string
	}
	var violations []violation

	walkImports(t, root, func(ref importRef) {
		for _, bad := range disallowedImports(modulePath, layerFor(ref.file)) {
			if matchesPrefix(ref.imp, bad) {
				violations = append(violations, violation{importRef: ref, rule: bad})
				return
			}
		}
	})

	if len(violations) > 0 {
		var b strings.Builder
		b.WriteString("import boundary violations:\n")
		for _, v := range violations {
			fmt.Fprintf(&b, "- %s imports %q (disallowed: %q)\n", v.file, v.imp, v.rule)
		}
		t.Fatal(b.String())
	}
}

// Infrastructure clients are constructed by the app wiring and handed down.
func TestClientsOnlyImportedByApp(t *testing.T) {
	root, modulePath := moduleRoot(t)
	prefix := modulePath + "/internal/clients/"

	var violations []importRef
	walkImports(t, root, func(ref importRef) {
		if !strings.HasPrefix(ref.imp, prefix) {
			return
		}
		if strings.HasPrefix(ref.file, "internal/app/") || strings.HasPrefix(ref.file, "internal/clients/") {
			return
		}
		violations = append(violations, ref)
	})

	if len(violations) > 0 {
		var b strings.Builder
		b.WriteString("internal/clients imports found outside internal/app:\n")
		for _, v := range violations {
			fmt.Fprintf(&b, "- %s imports %q\n", v.file, v.imp)
		}
		t.Fatal(b.String())
	}
}

func layerFor(rel string) string {
	for _, layer := range []string{"domain", "platform", "recommend", "ics", "data", "services", "jobs"} {
		if strings.HasPrefix(rel, "internal/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func disallowedImports(modulePath string, layer string) []string {
	internal := func(pkgs ...string) []string {
		out := make([]string, 0, len(pkgs))
		for _, p := range pkgs {
			out = append(out, modulePath+"/internal/"+p)
		}
		return out
	}
	switch layer {
	case "domain":
		return internal("data", "recommend", "services", "http", "jobs", "app")
	case "platform":
		return internal("domain", "data", "recommend", "services", "http", "jobs", "app")
	case "recommend":
		// The engine only sees its ports.
		return append(internal("data", "services", "http", "jobs", "app"), "gorm.io")
	case "ics":
		return append(internal("domain", "data", "recommend", "services", "http", "jobs", "app"), "gorm.io")
	case "data":
		return internal("services", "http", "jobs", "app")
	case "services":
		return internal("http", "jobs", "app")
	case "jobs":
		return internal("http", "app")
	default:
		return nil
	}
}

// matchesPrefix reports whether imp is pkg or one of its subpackages.
func matchesPrefix(imp, pkg string) bool {
	return imp == pkg || strings.HasPrefix(imp, pkg+"/")
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := findModuleRoot(start)
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return root, modulePath
}

// walkImports calls fn for every import of every .go file under internal/.
func walkImports(t *testing.T, root string, fn func(importRef)) {
	t.Helper()
	fset := token.NewFileSet()
	walkErr := filepath.WalkDir(filepath.Join(root, "internal"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "vendor", "node_modules", ".gocache":
				return filepath.SkipDir
			default:
				return nil
			}
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			if spec == nil || spec.Path == nil {
				continue
			}
			imp, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}
			fn(importRef{file: rel, imp: imp})
		}
		return nil
	})
	if walkErr != nil {
		t.Fatalf("walk internal/: %v", walkErr)
	}
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found from %s", start)
		}
		dir = parent
	}
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		mp := strings.TrimSpace(strings.TrimPrefix(line, "module "))
		if mp == "" {
			return "", fmt.Errorf("empty module path in %s", goModPath)
		}
		return mp, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
