package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/shell"
	"github.com/funvibe/funsh/internal/source"
)

var (
	srcTag  = source.NewSpan(3, 10)
	dstTag  = source.NewSpan(11, 20)
	nameTag = source.NewSpan(0, 2)
)

func mkFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mkDir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func mustNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("%s still exists", path)
	}
}

func runMove(cwd, srcPattern, dst string) *diagnostics.DiagnosticError {
	ctx := &RunContext{Name: nameTag, Shell: shell.New(cwd)}
	return move(ctx, Value{Str: srcPattern, Tag: srcTag}, Value{Str: dst, Tag: dstTag})
}

// ---------------------------------------------------------------------------
// Single-match branch
// ---------------------------------------------------------------------------

func TestMoveFileIntoExistingDirectory(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "a.txt"), "payload")
	mkDir(t, filepath.Join(tmp, "dest"))

	if err := runMove(tmp, "a.txt", "dest"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "dest", "a.txt")); got != "payload" {
		t.Fatalf("moved file has content %q", got)
	}
	mustNotExist(t, filepath.Join(tmp, "a.txt"))
}

func TestMoveFileToNewPath(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "a.txt"), "bytes")

	if err := runMove(tmp, "a.txt", "b.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "b.txt")); got != "bytes" {
		t.Fatalf("renamed file has content %q", got)
	}
	mustNotExist(t, filepath.Join(tmp, "a.txt"))
}

func TestMoveFileToDotMeansCwd(t *testing.T) {
	tmp := t.TempDir()
	mkDir(t, filepath.Join(tmp, "sub"))
	mkFile(t, filepath.Join(tmp, "sub", "a.txt"), "x")

	if err := runMove(tmp, filepath.Join("sub", "a.txt"), "."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "a.txt")); got != "x" {
		t.Fatalf("moved file has content %q", got)
	}
}

func TestMoveDirectoryIntoExistingDirectory(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "src", "a.txt"), "A")
	mkFile(t, filepath.Join(tmp, "src", "sub", "b.txt"), "B")
	mkDir(t, filepath.Join(tmp, "dst"))

	if err := runMove(tmp, "src", "dst"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "dst", "src", "a.txt")); got != "A" {
		t.Fatalf("a.txt content %q", got)
	}
	if got := readFile(t, filepath.Join(tmp, "dst", "src", "sub", "b.txt")); got != "B" {
		t.Fatalf("b.txt content %q", got)
	}
	mustNotExist(t, filepath.Join(tmp, "src"))
}

func TestMoveDirectoryToNewName(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "old", "f.txt"), "f")

	if err := runMove(tmp, "old", "new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "new", "f.txt")); got != "f" {
		t.Fatalf("f.txt content %q", got)
	}
	mustNotExist(t, filepath.Join(tmp, "old"))
}

func TestRenameFailureMessageFormat(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "a.txt"), "x")

	// Destination parent does not exist, so the OS rename fails.
	err := runMove(tmp, "a.txt", filepath.Join("missing", "deep", "b.txt"))
	if err == nil {
		t.Fatal("expected a rename failure")
	}
	if err.Code != diagnostics.ErrM004 {
		t.Fatalf("expected M004, got %s (%s)", err.Code, err.Message)
	}
	wantPrefix := fmt.Sprintf("Rename %q to %q aborted. ", "a.txt", "b.txt")
	if len(err.Message) <= len(wantPrefix) || err.Message[:len(wantPrefix)] != wantPrefix {
		t.Fatalf("message %q does not start with %q", err.Message, wantPrefix)
	}
	if err.Label != err.Message {
		t.Fatalf("label %q differs from message %q", err.Label, err.Message)
	}
	if err.Span != nameTag {
		t.Fatalf("OS-level failure should be tagged at the invocation name, got %s", err.Span)
	}
}

// ---------------------------------------------------------------------------
// Pattern and destination shape errors
// ---------------------------------------------------------------------------

func TestInvalidPattern(t *testing.T) {
	tmp := t.TempDir()
	err := runMove(tmp, "[", "dest")
	if err == nil || err.Code != diagnostics.ErrM001 {
		t.Fatalf("expected M001, got %v", err)
	}
	if err.Message != "Invalid pattern." {
		t.Fatalf("unexpected message %q", err.Message)
	}
	if err.Span != srcTag {
		t.Fatalf("pattern error should be tagged at the source operand, got %s", err.Span)
	}
}

func TestInvalidDestinationRoot(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "a.txt"), "x")

	err := runMove(tmp, "a.txt", "/")
	if err == nil || err.Code != diagnostics.ErrM002 {
		t.Fatalf("expected M002, got %v", err)
	}
	if err.Span != dstTag {
		t.Fatalf("destination error should be tagged at the destination operand, got %s", err.Span)
	}
	// The source must be untouched.
	if readFile(t, filepath.Join(tmp, "a.txt")) != "x" {
		t.Fatal("source was modified by a failed destination check")
	}
}

// ---------------------------------------------------------------------------
// Multi-match branch
// ---------------------------------------------------------------------------

func TestMultiMatchIntoExistingDirectory(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "one.log"), "1")
	mkFile(t, filepath.Join(tmp, "two.log"), "2")
	mkDir(t, filepath.Join(tmp, "logs"))

	if err := runMove(tmp, "*.log", "logs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if readFile(t, filepath.Join(tmp, "logs", "one.log")) != "1" {
		t.Fatal("one.log not moved")
	}
	if readFile(t, filepath.Join(tmp, "logs", "two.log")) != "2" {
		t.Fatal("two.log not moved")
	}
	mustNotExist(t, filepath.Join(tmp, "one.log"))
	mustNotExist(t, filepath.Join(tmp, "two.log"))
}

func TestMultiMatchDestinationMissing(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "one.log"), "1")
	mkFile(t, filepath.Join(tmp, "two.log"), "2")

	err := runMove(tmp, "*.log", "nowhere")
	if err == nil || err.Code != diagnostics.ErrM005 {
		t.Fatalf("expected M005, got %v", err)
	}
	want := fmt.Sprintf("Rename aborted. (Does %q exist?)", "nowhere")
	if err.Message != want {
		t.Fatalf("message %q, want %q", err.Message, want)
	}
	if err.Span != dstTag {
		t.Fatalf("expected destination tag, got %s", err.Span)
	}
	// Every matched file remains in place.
	if readFile(t, filepath.Join(tmp, "one.log")) != "1" || readFile(t, filepath.Join(tmp, "two.log")) != "2" {
		t.Fatal("sources were touched despite the missing destination")
	}
}

func TestMultiMatchRejectsDirectories(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "thing_a"), "a")
	mkDir(t, filepath.Join(tmp, "thing_b"))
	mkDir(t, filepath.Join(tmp, "dest"))

	err := runMove(tmp, "thing_*", "dest")
	if err == nil || err.Code != diagnostics.ErrM006 {
		t.Fatalf("expected M006, got %v", err)
	}
	if err.Span != srcTag {
		t.Fatalf("expected source tag, got %s", err.Span)
	}
	// Nothing moved, including the regular file.
	if readFile(t, filepath.Join(tmp, "thing_a")) != "a" {
		t.Fatal("file moved despite the directory in the match set")
	}
	mustNotExist(t, filepath.Join(tmp, "dest", "thing_a"))
}

func TestZeroMatchesWithExistingDestinationIsNoop(t *testing.T) {
	tmp := t.TempDir()
	mkDir(t, filepath.Join(tmp, "dest"))

	if err := runMove(tmp, "*.absent", "dest"); err != nil {
		t.Fatalf("expected a no-op, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Full protocol path
// ---------------------------------------------------------------------------

func TestMoveThroughBindAndRun(t *testing.T) {
	tmp := t.TempDir()
	mkFile(t, filepath.Join(tmp, "a.txt"), "via protocol")
	mkDir(t, filepath.Join(tmp, "dest"))

	ci := &CallInfo{
		NameSpan: nameTag,
		Positional: []Value{
			{Str: "a.txt", Tag: srcTag},
			{Str: "dest", Tag: dstTag},
		},
	}
	mv := &Move{}
	bound, bindErr := Bind(mv.Signature(), ci)
	if bindErr != nil {
		t.Fatalf("bind failed: %v", bindErr)
	}
	ctx := &RunContext{Name: ci.NameSpan, Shell: shell.New(tmp)}
	out, err := mv.Run(ctx, bound, Value{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("mv should produce no output values, got %d", len(out))
	}
	if readFile(t, filepath.Join(tmp, "dest", "a.txt")) != "via protocol" {
		t.Fatal("file not moved")
	}
}
