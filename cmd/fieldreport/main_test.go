package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const reminderDoc = `kind: reminder
header:
  title: Reminder
tasks:
  - id: T-1
    title: Fix the gate
    description: Hinge is loose.
    due: "2024-03-01"
    images: [missing.jpg]
`

func TestRunWritesPDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.yaml")
	out := filepath.Join(dir, "out.pdf")
	cfg := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(in, []byte(reminderDoc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg, []byte("document:\n  id: DOC-1\n  created: \"2024-03-02\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-in", in, "-out", out, "-config", cfg, "-v"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
	log := stderr.String()
	if !strings.Contains(log, "skipping image") {
		t.Errorf("expected a warning for the missing image:\n%s", log)
	}
	if !strings.Contains(log, "report written") || !strings.Contains(log, "kind=reminder") {
		t.Errorf("expected a summary log line:\n%s", log)
	}
}

func TestRunStdout(t *testing.T) {
	in := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(in, []byte(`{"kind":"checklist","tasks":[{"id":"a","title":"A"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-in", in}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	if !bytes.HasPrefix(stdout.Bytes(), []byte("%PDF")) {
		t.Fatal("stdout does not start with %PDF header")
	}
}

func TestRunErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("kind: reminder\ntasks: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no input", nil, 2},
		{"bad flag", []string{"-nope"}, 2},
		{"watch without out", []string{"-in", bad, "-watch"}, 2},
		{"missing file", []string{"-in", filepath.Join(t.TempDir(), "none.yaml")}, 1},
		{"invalid sequence", []string{"-in", bad}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("exit code %d, want %d; stderr:\n%s", code, tt.code, stderr.String())
			}
			if stdout.Len() != 0 {
				t.Error("unexpected output on stdout")
			}
		})
	}
}
