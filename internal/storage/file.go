package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/jetty-boot/internal/games/jettyboot"
)

// FileStore keeps the record in a text file: the name on the first line and
// the high score on the second.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// OpenFile prepares a file store at path. The file itself is created on the
// first Save.
func OpenFile(path string) (*FileStore, error) {
	path, err := preparePath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the record. A missing file is an empty record, not an error.
// A malformed score returns the name with a zero score and ErrMalformedRecord.
func (s *FileStore) Load() (jettyboot.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return jettyboot.Record{}, nil
	}
	if err != nil {
		return jettyboot.Record{}, fmt.Errorf("storage: cannot read record: %w", err)
	}
	return parseRecord(string(data))
}

func parseRecord(text string) (jettyboot.Record, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.SplitN(text, "\n", 3)

	rec := jettyboot.Record{Name: lines[0]}
	if len(lines) < 2 {
		return rec, fmt.Errorf("%w: missing score line", ErrMalformedRecord)
	}

	score, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil || score < 0 {
		return rec, fmt.Errorf("%w: %q", ErrMalformedRecord, lines[1])
	}
	rec.HighScore = score
	return rec, nil
}

// Save replaces the record. The write goes through a temporary file so a
// crash never leaves a half-written record.
func (s *FileStore) Save(rec jettyboot.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.NewReplacer("\r", " ", "\n", " ").Replace(rec.Name)
	body := name + "\n" + strconv.Itoa(rec.HighScore)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".jb-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *FileStore) Close() error {
	return nil
}

var _ RecordStore = (*FileStore)(nil)
