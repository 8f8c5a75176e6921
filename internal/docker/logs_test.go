package docker

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docker/docker/pkg/stdcopy"
)

func writeJSONLog(t *testing.T, dir, id string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, id), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, id, id+"-json.log"), []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
}

func TestFileLogSource_StripsJSONEnvelope(t *testing.T) {
	dir := t.TempDir()
	writeJSONLog(t, dir, "abc",
		`{"log":"hello\n","stream":"stdout","time":"2024-01-01T00:00:00Z"}`,
		`{"log":"oops\n","stream":"stderr","time":"2024-01-01T00:00:01Z"}`,
	)

	src := NewFileLogSource(dir, 0)
	got, err := src.ReadLogs(context.Background(), "abc")
	if err != nil {
		t.Fatalf("ReadLogs failed: %v", err)
	}
	if got != "hello\noops" {
		t.Fatalf("expected stripped log text, got %q", got)
	}
}

func TestFileLogSource_KeepsTail(t *testing.T) {
	dir := t.TempDir()
	writeJSONLog(t, dir, "abc",
		`{"log":"1\n"}`, `{"log":"2\n"}`, `{"log":"3\n"}`, `{"log":"4\n"}`,
	)

	got, err := NewFileLogSource(dir, 2).ReadLogs(context.Background(), "abc")
	if err != nil {
		t.Fatalf("ReadLogs failed: %v", err)
	}
	if got != "3\n4" {
		t.Fatalf("expected last two lines, got %q", got)
	}
}

func TestFileLogSource_KeepsUnparseableLines(t *testing.T) {
	dir := t.TempDir()
	writeJSONLog(t, dir, "abc", `{"log":"ok\n"}`, `not json`)

	got, err := NewFileLogSource(dir, 0).ReadLogs(context.Background(), "abc")
	if err != nil {
		t.Fatalf("ReadLogs failed: %v", err)
	}
	if got != "ok\nnot json" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFileLogSource_MissingFile(t *testing.T) {
	_, err := NewFileLogSource(t.TempDir(), 0).ReadLogs(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error for missing log file")
	}
}

func TestFileLogSource_RejectsPathTraversal(t *testing.T) {
	src := NewFileLogSource(t.TempDir(), 0)
	for _, id := range []string{"", "..", "../etc", "a/b"} {
		if _, err := src.Path(id); err == nil {
			t.Errorf("expected error for id %q", id)
		}
	}
}

func TestFileLogSource_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeJSONLog(t, dir, "abc", `{"log":"1\n"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFileLogSource(dir, 0).ReadLogs(ctx, "abc"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestDemuxLogs(t *testing.T) {
	var raw bytes.Buffer
	stdout := stdcopy.NewStdWriter(&raw, stdcopy.Stdout)
	stderr := stdcopy.NewStdWriter(&raw, stdcopy.Stderr)
	_, _ = stdout.Write([]byte("out line\n"))
	_, _ = stderr.Write([]byte("err line\n"))

	if got := demuxLogs(raw.Bytes()); got != "out line\nerr line" {
		t.Fatalf("unexpected demux output %q", got)
	}

	// TTY 容器的日志没有多路复用头部
	if got := demuxLogs([]byte("plain text\n")); got != "plain text" {
		t.Fatalf("expected raw passthrough, got %q", got)
	}
}

func TestAPILogSource_NilClient(t *testing.T) {
	var src *APILogSource
	if _, err := src.ReadLogs(context.Background(), "abc"); err == nil {
		t.Fatal("expected error for nil source")
	}
}
