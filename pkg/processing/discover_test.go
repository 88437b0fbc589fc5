package processing

import (
	"os"
	"path/filepath"
	"testing"
)

const validComponent = `
id: count-letters
name: count_letters
apiVersion: v1
inputs:
  - name: input_file
    type: string
outputs:
  - name: output_file
    type: string
container:
  image: example/count-letters:latest
`

func setupDiscoverTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"count.component.yaml":                validComponent,
		"nested/concat.component.yaml":        validComponent,
		"nested/deeper/broken.component.yaml": "id: broken\n",
		"nested/notes.yaml":                   "not a manifest",
	}
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestDiscoverComponents_DefaultPattern(t *testing.T) {
	root := setupDiscoverTree(t)

	paths, err := DiscoverComponents(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(root, "count.component.yaml"),
		filepath.Join(root, "nested", "concat.component.yaml"),
		filepath.Join(root, "nested", "deeper", "broken.component.yaml"),
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestDiscoverComponents_OverlappingPatterns(t *testing.T) {
	root := setupDiscoverTree(t)

	paths, err := DiscoverComponents(root, []string{"*.component.yaml", "**/count.component.yaml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 deduplicated path, got %v", paths)
	}
}

func TestDiscoverComponents_BadPattern(t *testing.T) {
	root := setupDiscoverTree(t)

	if _, err := DiscoverComponents(root, []string{"[unclosed"}); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestValidateComponents(t *testing.T) {
	root := setupDiscoverTree(t)

	paths, err := DiscoverComponents(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	components, failures := ValidateComponents(paths)
	if len(components) != 2 {
		t.Errorf("expected 2 valid components, got %d", len(components))
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %v", failures)
	}
	if _, ok := failures[filepath.Join(root, "nested", "deeper", "broken.component.yaml")]; !ok {
		t.Errorf("expected broken manifest to fail, got %v", failures)
	}
}
