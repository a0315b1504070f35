package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru"
)

// Cache memoizes Load results. Entries are keyed by a fingerprint of the
// report directory's file contents, not by path: re-loading a directory
// whose files changed is always a miss, so a cached report can never go
// stale. Old fingerprints fall out via LRU eviction; there is no other
// invalidation.
type Cache struct {
	entries *lru.Cache
}

// NewCache returns a cache holding at most size parsed reports.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Load returns the parsed report for dir, reusing a cached result when
// the directory's content fingerprint matches a previous load.
func (c *Cache) Load(dir string) (*Report, error) {
	fp, err := Fingerprint(dir)
	if err != nil {
		return nil, err
	}
	if v, ok := c.entries.Get(fp); ok {
		return v.(*Report), nil
	}
	rep, err := Load(dir)
	if err != nil {
		return nil, err
	}
	c.entries.Add(fp, rep)
	return rep, nil
}

// Fingerprint hashes the contents of every known report file in dir.
// Missing files contribute their name only, so adding a file later
// produces a different fingerprint.
func Fingerprint(dir string) (string, error) {
	files := []string{
		FileStandardElements, FilePrivateElements, FileDateTimeElements,
		FileModalities, FileSOPClasses, FileStudies,
		FileCounts, FileCreators,
		FileStandardSequences, FilePrivateSequences,
		FileLargeElements, FileScanSummary,
	}

	h := sha256.New()
	for _, name := range files {
		fmt.Fprintf(h, "%s\x00", name)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", err
		}
		h.Write(data)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
