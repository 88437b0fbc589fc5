package api

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadComponent_Valid(t *testing.T) {
	content := `
id: concat-files
name: concat_files
apiVersion: v1
inputs:
  - name: input_file_1
    type: string
  - name: input_file_2
    type: string
outputs:
  - name: output_file
    type: string
container:
  dockerfile: Dockerfile
  image: example/concat-files:latest
  command: ["/usr/local/bin/concat-files"]
`
	dir := t.TempDir()
	f := filepath.Join(dir, "concat.component.yaml")
	if err := os.WriteFile(f, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadComponent(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(c.Inputs))
	}
	if c.FilePath != f {
		t.Fatalf("expected FilePath=%q, got %q", f, c.FilePath)
	}
	if c.Container.Dockerfile != "Dockerfile" {
		t.Fatalf("expected dockerfile, got %q", c.Container.Dockerfile)
	}
}

func TestLoadComponent_FileNotFound(t *testing.T) {
	_, err := LoadComponent("/nonexistent/x.component.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading component file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadComponent_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "x.component.yaml")
	if err := os.WriteFile(f, []byte("{{invalid"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadComponent(f)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing component file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadComponent_ValidationFails(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "x.component.yaml")
	if err := os.WriteFile(f, []byte("id: x\nname: x\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadComponent(f)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validating component") {
		t.Fatalf("unexpected error: %v", err)
	}
}
