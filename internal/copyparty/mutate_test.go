// ABOUTME: Tests for mkdir, delete, batch delete, move, and copy.
// ABOUTME: Batch delete must report per-path outcomes without aborting.

package copyparty

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestMkdirSendsForm(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	c := newTestClient(t, ts, "")

	if err := c.Mkdir(context.Background(), "/docs", "reports"); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	last := ts.last.Load()
	if last.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", last.Method)
	}
	if got := last.Form.Get("act"); got != "mkdir" {
		t.Errorf("expected act=mkdir, got %q", got)
	}
	if got := last.Form.Get("name"); got != "reports" {
		t.Errorf("expected name=reports, got %q", got)
	}
}

func TestMkdirValidation(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newTestClient(t, ts, "")

	var ve *ValidationError
	if err := c.Mkdir(context.Background(), "/docs", ""); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for empty name, got %v", err)
	}
	if n := ts.calls.Load(); n != 0 {
		t.Errorf("expected 0 network calls, got %d", n)
	}
}

func TestDeleteQuery(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newTestClient(t, ts, "")

	if err := c.Delete(context.Background(), "/old.txt"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !ts.last.Load().URL.Query().Has("delete") {
		t.Error("expected delete query parameter")
	}
}

func TestDeleteAllPartialFailure(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "missing") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
	})
	c := newTestClient(t, ts, "")

	paths := []string{"/a.txt", "/missing.txt", "/b.txt"}
	results, err := c.DeleteAll(context.Background(), paths)
	if err != nil {
		t.Fatalf("batch delete failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected one result per path, got %d", len(results))
	}
	if !results[0].OK || results[1].OK || !results[2].OK {
		t.Errorf("unexpected outcomes: %+v", results)
	}
	if results[1].Error == "" {
		t.Error("failed path must carry an error message")
	}
	// The not-found in the middle must not stop the batch.
	if n := ts.calls.Load(); n != 3 {
		t.Errorf("expected 3 network calls, got %d", n)
	}
}

func TestDeleteAllEmptyInput(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newTestClient(t, ts, "")

	var ve *ValidationError
	if _, err := c.DeleteAll(context.Background(), nil); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestMoveAndCopyQuery(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newTestClient(t, ts, "")

	if err := c.Move(context.Background(), "/a.txt", "/archive/a.txt"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	last := ts.last.Load()
	if last.URL.Path != "/a.txt" || last.URL.Query().Get("move") != "/archive/a.txt" {
		t.Errorf("unexpected move request: %s %v", last.URL.Path, last.URL.Query())
	}

	if err := c.Copy(context.Background(), "/a.txt", "/backup/a.txt"); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if got := ts.last.Load().URL.Query().Get("copy"); got != "/backup/a.txt" {
		t.Errorf("expected copy destination, got %q", got)
	}
}
