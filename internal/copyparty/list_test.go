// ABOUTME: Tests for directory listings and recent uploads.
// ABOUTME: Covers ordering, the dotfiles flag, and wire decoding.

package copyparty

import (
	"context"
	"net/http"
	"testing"
)

const listingJSON = `{
	"dirs": [
		{"href": "music/", "sz": 0, "ts": 1700000000},
		{"href": "pics/", "sz": 0, "ts": 1700000100}
	],
	"files": [
		{"href": "zebra.txt", "sz": 10, "ts": 1700000200},
		{"href": "alpha.txt", "sz": 20, "ts": 1700000300},
		{"href": "song.flac", "sz": 900, "ts": 1700000400, "tags": {"artist": "daft punk"}}
	]
}`

func TestListPreservesServerOrder(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingJSON))
	})
	c := newTestClient(t, ts, "")

	listing, err := c.List(context.Background(), "/", false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// zebra before alpha: server order, not sorted
	if listing.Files[0].Name != "zebra.txt" || listing.Files[1].Name != "alpha.txt" {
		t.Errorf("expected server order preserved, got %q then %q", listing.Files[0].Name, listing.Files[1].Name)
	}
	if listing.Dirs[0].Name != "music" {
		t.Errorf("expected trailing slash trimmed, got %q", listing.Dirs[0].Name)
	}
	if !listing.Dirs[0].IsDir {
		t.Error("expected dir entry marked as dir")
	}
	if listing.Files[2].Tags["artist"] != "daft punk" {
		t.Errorf("expected tags relayed, got %v", listing.Files[2].Tags)
	}
	if listing.Files[0].Modified.Unix() != 1700000200 {
		t.Errorf("expected mtime from ts, got %v", listing.Files[0].Modified)
	}
}

func TestListDotfilesFlag(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dirs":[],"files":[]}`))
	})
	c := newTestClient(t, ts, "")

	if _, err := c.List(context.Background(), "/", false); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	q := ts.last.Load().URL.Query()
	if !q.Has("ls") {
		t.Error("expected ls query parameter")
	}
	if q.Has("dots") {
		t.Error("dots must be absent when dotfiles are off")
	}

	if _, err := c.List(context.Background(), "/", true); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !ts.last.Load().URL.Query().Has("dots") {
		t.Error("expected dots query parameter when dotfiles are on")
	}
}

func TestRecentUploads(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ups":[{"vp":"/inbox/a.pdf","sz":1234,"at":1700000000,"ip":"10.0.0.5"}]}`))
	})
	c := newTestClient(t, ts, "")

	ups, err := c.RecentUploads(context.Background(), "inbox", false)
	if err != nil {
		t.Fatalf("recent uploads failed: %v", err)
	}
	if len(ups) != 1 || ups[0].Path != "/inbox/a.pdf" {
		t.Fatalf("unexpected uploads: %+v", ups)
	}

	q := ts.last.Load().URL.Query()
	if !q.Has("ups") || q.Get("filter") != "inbox" {
		t.Errorf("unexpected query: %v", q)
	}
	if q.Has("all") {
		t.Error("all must be absent for own uploads")
	}

	if _, err := c.RecentUploads(context.Background(), "", true); err != nil {
		t.Fatalf("all uploads failed: %v", err)
	}
	if !ts.last.Load().URL.Query().Has("all") {
		t.Error("expected all query parameter for admin view")
	}
}
