package kv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) *SQLite {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLite(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create kv: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	v, ok, err := s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Errorf("expected absent, got %q", v)
	}
}

func TestSetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	if err := s.Set(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(v, []byte("one")) {
		t.Errorf("expected 'one', got %q", v)
	}

	if err := s.Set(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = s.Get(ctx, "k")
	if !bytes.Equal(v, []byte("two")) {
		t.Errorf("expected 'two' after overwrite, got %q", v)
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("create kv: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestValueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("create kv: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("persisted")); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s2, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(v) != "persisted" {
		t.Errorf("expected 'persisted', got %q", v)
	}
}
