// ABOUTME: Tests for downloads, uploads, archives, thumbnails, and tail.
// ABOUTME: Includes the upload/download round trip and enum validation.

package copyparty

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestUploadDownloadRoundTrip(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x01}
	var stored []byte

	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("bad multipart body: %v", err)
			}
			f, _, err := r.FormFile("f")
			if err != nil {
				t.Fatalf("missing file field: %v", err)
			}
			stored, _ = io.ReadAll(f)
			w.Write([]byte(`{"name":"img.png","sz":7}`))
		case http.MethodGet:
			w.Header().Set("Content-Type", "image/png")
			w.Write(stored)
		}
	})
	c := newTestClient(t, ts, "")

	receipt, err := c.Upload(context.Background(), "/pics", "img.png", content, false)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if receipt.Filename != "img.png" || receipt.Size != 7 {
		t.Errorf("unexpected receipt: %+v", receipt)
	}

	got, contentType, err := c.Fetch(context.Background(), "/pics/img.png")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("round trip mismatch: sent %v, got %v", content, got)
	}
	if contentType != "image/png" {
		t.Errorf("expected content type image/png, got %q", contentType)
	}
}

func TestUploadQueryFlags(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	c := newTestClient(t, ts, "")

	if _, err := c.Upload(context.Background(), "/docs", "a.txt", []byte("hi"), false); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	q := ts.last.Load().URL.Query()
	if !q.Has("j") {
		t.Error("expected j query parameter")
	}
	if q.Has("replace") {
		t.Error("replace must be absent unless requested")
	}

	if _, err := c.Upload(context.Background(), "/docs", "a.txt", []byte("hi"), true); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !ts.last.Load().URL.Query().Has("replace") {
		t.Error("expected replace query parameter")
	}
}

func TestFetchTextRejectsBinary(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xff, 0xfe, 0x00})
	})
	c := newTestClient(t, ts, "")

	_, err := c.FetchText(context.Background(), "/blob.bin")
	var te *NotTextError
	if !errors.As(err, &te) {
		t.Fatalf("expected NotTextError, got %T (%v)", err, err)
	}
}

func TestArchiveSpecValidation(t *testing.T) {
	bad := []ArchiveSpec{
		{Format: "rar"},
		{Format: "tar", Compression: "zstd"},
		{Format: "tar", Compression: "gz", Level: 10},
		{Format: "tar", Compression: "bz2", Level: 3},
		{Format: "zip", Compression: "gz"},
	}
	for _, spec := range bad {
		err := spec.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Validate(%+v) = %v, want ValidationError", spec, err)
		}
	}

	good := []ArchiveSpec{
		{Format: "tar"},
		{Format: "tar", Compression: "gz", Level: 9},
		{Format: "tar", Compression: "xz", Level: 1},
		{Format: "tar", Compression: "bz2"},
		{Format: "zip", UTF8: true},
	}
	for _, spec := range good {
		if err := spec.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", spec, err)
		}
	}
}

func TestArchiveInvalidSpecNeverHitsNetwork(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newTestClient(t, ts, "")

	_, err := c.Archive(context.Background(), "/docs", ArchiveSpec{Format: "rar"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if n := ts.calls.Load(); n != 0 {
		t.Errorf("expected 0 network calls, got %d", n)
	}
}

func TestArchiveQueryEncoding(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tarball"))
	})
	c := newTestClient(t, ts, "")

	if _, err := c.Archive(context.Background(), "/docs", ArchiveSpec{Format: "tar", Compression: "gz", Level: 9}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if got := ts.last.Load().URL.Query().Get("tar"); got != "gz:9" {
		t.Errorf("expected tar=gz:9, got %q", got)
	}

	if _, err := c.Archive(context.Background(), "/docs", ArchiveSpec{Format: "zip", UTF8: true}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if got := ts.last.Load().URL.Query().Get("zip"); got != "utf8" {
		t.Errorf("expected zip=utf8, got %q", got)
	}
}

func TestThumbnailFormatValidation(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		w.Write([]byte("thumb"))
	})
	c := newTestClient(t, ts, "")

	_, _, err := c.Thumbnail(context.Background(), "/pics/cat.jpg", "bmp")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad format, got %T", err)
	}
	if n := ts.calls.Load(); n != 0 {
		t.Errorf("expected 0 network calls, got %d", n)
	}

	data, contentType, err := c.Thumbnail(context.Background(), "/pics/cat.jpg", "w")
	if err != nil {
		t.Fatalf("thumbnail failed: %v", err)
	}
	if string(data) != "thumb" || contentType != "image/webp" {
		t.Errorf("unexpected thumbnail: %q %q", data, contentType)
	}
	if got := ts.last.Load().URL.Query().Get("th"); got != "w" {
		t.Errorf("expected th=w, got %q", got)
	}
}

func TestTailBoundedByWindow(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fl := w.(http.Flusher)
		w.Write([]byte("line one\n"))
		fl.Flush()
		// Keep the stream open past the client's window.
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	c := newTestClient(t, ts, "")

	start := time.Now()
	data, err := c.Tail(context.Background(), "/log.txt", 1024, 300*time.Millisecond)
	if err != nil {
		t.Fatalf("tail failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("tail did not respect the window, took %v", elapsed)
	}
	if string(data) != "line one\n" {
		t.Errorf("expected collected bytes, got %q", data)
	}
}

func TestTailBoundedByMaxBytes(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte("x"), 100))
	})
	c := newTestClient(t, ts, "")

	data, err := c.Tail(context.Background(), "/log.txt", 10, 2*time.Second)
	if err != nil {
		t.Fatalf("tail failed: %v", err)
	}
	if len(data) != 10 {
		t.Errorf("expected 10 bytes, got %d", len(data))
	}
}
