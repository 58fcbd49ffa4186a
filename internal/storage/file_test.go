package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/games/jettyboot"
)

func TestFileStoreMissing(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "jb.txt"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on a missing file failed: %v", err)
	}
	if rec.Name != "" || rec.HighScore != 0 {
		t.Errorf("Expected empty name and zero score, got %+v", rec)
	}
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "jb.txt")
	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	if err := store.Save(jettyboot.Record{Name: "Ada", HighScore: 42}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "Ada\n42" {
		t.Errorf("file contents = %q, want %q", data, "Ada\n42")
	}

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rec.Name != "Ada" || rec.HighScore != 42 {
		t.Errorf("Expected Ada/42, got %+v", rec)
	}

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the record file, found %d entries", len(entries))
	}
}

func TestFileStoreNameWithNewline(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "jb.txt"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	if err := store.Save(jettyboot.Record{Name: "a\nb", HighScore: 5}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rec.Name != "a b" || rec.HighScore != 5 {
		t.Errorf("Expected a b/5, got %+v", rec)
	}
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantScore int
		malformed bool
	}{
		{"well formed", "Ada\n42", "Ada", 42, false},
		{"trailing newline", "Ada\n42\n", "Ada", 42, false},
		{"windows line endings", "Ada\r\n42\r\n", "Ada", 42, false},
		{"padded score", "Ada\n  7 ", "Ada", 7, false},
		{"empty name", "\n3", "", 3, false},
		{"garbage score", "Ada\nlots", "Ada", 0, true},
		{"negative score", "Ada\n-1", "Ada", 0, true},
		{"missing score line", "Ada", "Ada", 0, true},
		{"empty file", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := parseRecord(tt.text)
			if tt.malformed != errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("err = %v, malformed expected %v", err, tt.malformed)
			}
			if !tt.malformed && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Name != tt.wantName || rec.HighScore != tt.wantScore {
				t.Errorf("got %+v, want %q/%d", rec, tt.wantName, tt.wantScore)
			}
		})
	}
}

func TestFileStoreMalformedKeepsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jb.txt")
	if err := os.WriteFile(path, []byte("Zed\nnot-a-number"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	rec, err := store.Load()
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Expected ErrMalformedRecord, got %v", err)
	}
	if rec.Name != "Zed" || rec.HighScore != 0 {
		t.Errorf("Expected Zed/0, got %+v", rec)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		path    string
		wantErr bool
	}{
		{config.BackendFile, filepath.Join(dir, "jb.txt"), false},
		{config.BackendSQLite, filepath.Join(dir, "jb.db"), false},
		{"", filepath.Join(dir, "plain.txt"), false},
		{"redis", filepath.Join(dir, "x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, err := Open(tt.backend, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer store.Close()

			if err := store.Save(jettyboot.Record{Name: "Ada", HighScore: 1}); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			rec, err := store.Load()
			if err != nil || rec.Name != "Ada" || rec.HighScore != 1 {
				t.Errorf("Load() = %+v, %v", rec, err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	if DefaultPath(config.BackendSQLite) != DefaultSQLitePath {
		t.Errorf("sqlite default = %q", DefaultPath(config.BackendSQLite))
	}
	if DefaultPath(config.BackendFile) != DefaultFilePath {
		t.Errorf("file default = %q", DefaultPath(config.BackendFile))
	}
}

func TestSessionWithFileStore(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "jb.txt"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	s := jettyboot.NewSession(config.DefaultJettyConfig(), store, nil, nil)
	if s.Record() != (jettyboot.Record{}) {
		t.Errorf("Expected empty record, got %+v", s.Record())
	}
}
