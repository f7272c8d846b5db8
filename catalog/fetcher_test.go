package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleCSV = `Reincarnated.Store,Type,Name,SKU,Regular.price,In.stock,Description,Image.front,Audio.URL
store,Full Disclosure,Opening Statement,FD-001,,,First track,https://cdn.example.com/fd.jpg,https://cdn.example.com/fd1.mp3

store,Posters,Truth Poster,PO-001,15.00,40,Wall poster,https://cdn.example.com/poster.jpg,
store,Single,Lone Wolf,SG-001,,,Standalone single,https://cdn.example.com/lw.jpg,https://cdn.example.com/lw.mp3
`

func TestParseRowsNormalizesHeaders(t *testing.T) {
	rows, err := ParseRows(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (empty line skipped), got %d", len(rows))
	}

	first := rows[0]
	if first["Regular_price"] != "" {
		t.Errorf("expected empty Regular_price, got %q", first["Regular_price"])
	}
	if _, ok := first["Regular.price"]; ok {
		t.Errorf("dotted header keys must be rewritten to underscores")
	}
	if first["Audio_URL"] != "https://cdn.example.com/fd1.mp3" {
		t.Errorf("unexpected Audio_URL: %q", first["Audio_URL"])
	}
	if first[fieldType] != "Full Disclosure" {
		t.Errorf("unexpected Type: %q", first[fieldType])
	}
}

func TestParseRowsPreservesRowOrder(t *testing.T) {
	rows, err := ParseRows(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	wantNames := []string{"Opening Statement", "Truth Poster", "Lone Wolf"}
	for i, want := range wantNames {
		if rows[i][fieldName] != want {
			t.Errorf("row %d: expected name %q, got %q", i, want, rows[i][fieldName])
		}
	}
}

func TestParseRowsMalformedCSV(t *testing.T) {
	// unclosed quote mid-file: all-or-nothing, no partial rows
	malformed := "Type,Name\nSingle,\"Lone Wolf\nSingle,Night Watch\n\"broken"
	rows, err := ParseRows(strings.NewReader(malformed))
	if err == nil {
		t.Fatalf("expected parse error, got %d rows", len(rows))
	}
}

func TestParseRowsEmptyInput(t *testing.T) {
	if _, err := ParseRows(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty CSV")
	}
}

func TestFetchRowsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := FetchRows(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestFetchRowsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the request

	if _, err := FetchRows(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for unreachable source")
	}
}

func serveCSV(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestImporterRunAllBranches(t *testing.T) {
	imp, albums, tracks, merch := newTestImporter()
	srv := serveCSV(t, sampleCSV)

	sum, err := imp.Run(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// one trilogy album, one singles collection, one poster
	if sum.AlbumsCreated != 2 || len(albums.created) != 2 {
		t.Errorf("expected 2 albums, got summary %d / created %d", sum.AlbumsCreated, len(albums.created))
	}
	if sum.TracksCreated != 2 || len(tracks.created) != 2 {
		t.Errorf("expected 2 tracks, got summary %d / created %d", sum.TracksCreated, len(tracks.created))
	}
	if sum.MerchCreated != 1 || len(merch.created) != 1 {
		t.Errorf("expected 1 merch item, got summary %d / created %d", sum.MerchCreated, len(merch.created))
	}
	if sum.RowErrors != 0 {
		t.Errorf("expected no row errors, got %d", sum.RowErrors)
	}
}

func TestImporterRerunDuplicatesRecords(t *testing.T) {
	imp, albums, tracks, merch := newTestImporter()
	srv := serveCSV(t, sampleCSV)

	for i := 0; i < 2; i++ {
		if _, err := imp.Run(context.Background(), srv.URL); err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
	}

	// at-least-once import: identical reruns append, they never merge
	if len(albums.created) != 4 {
		t.Errorf("expected album count doubled to 4, got %d", len(albums.created))
	}
	if len(tracks.created) != 4 {
		t.Errorf("expected track count doubled to 4, got %d", len(tracks.created))
	}
	if len(merch.created) != 2 {
		t.Errorf("expected merch count doubled to 2, got %d", len(merch.created))
	}
}

func TestImporterRunFetchFailureAborts(t *testing.T) {
	imp, albums, tracks, merch := newTestImporter()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := imp.Run(context.Background(), srv.URL); err == nil {
		t.Fatal("expected fetch failure to abort the run")
	}
	if len(albums.created)+len(tracks.created)+len(merch.created) != 0 {
		t.Errorf("a failed fetch must not write any records")
	}
}
