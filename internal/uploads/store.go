package uploads

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Store writes uploaded files into one flat directory
type Store struct {
	dir string
	now func() time.Time

	mu   sync.Mutex
	last int64
}

// NewStore creates dir if needed and returns a store writing into it
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir returns the directory files are written to
func (s *Store) Dir() string {
	return s.dir
}

// nextStamp returns a millisecond timestamp strictly greater than the previous one
func (s *Store) nextStamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp := s.now().UnixMilli()
	if stamp <= s.last {
		stamp = s.last + 1
	}
	s.last = stamp
	return stamp
}

// Save copies every file verbatim and returns the generated names in input order.
// Files written before a failure stay on disk.
func (s *Store) Save(headers []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(headers))
	for _, fh := range headers {
		name, err := s.saveOne(fh)
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *Store) saveOne(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	for {
		name := strconv.FormatInt(s.nextStamp(), 10) + ext
		dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			// left over from a previous process run
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			return "", fmt.Errorf("write %s: %w", name, err)
		}
		if err := dst.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", name, err)
		}
		return name, nil
	}
}
