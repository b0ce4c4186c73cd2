// Package storage defines the hymn library file-system abstraction.
package storage

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/cifra/internal/models"
)

// HymnExt is the extension of hymn files in the library.
const HymnExt = ".json"

// AudioDir is the library subdirectory holding hymn recordings. Hymn
// listings skip it.
const AudioDir = "audio"

// Provider is the interface for hymn library file operations.
type Provider interface {
	// List returns metadata for every hymn file under dir (relative to the library root).
	List(dir string) ([]models.HymnMetadata, error)
	// Read returns the raw bytes of the file at path (relative to the library root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the library root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the library root).
	Delete(path string) error
	// Move renames oldPath to newPath (both relative to the library root).
	Move(oldPath, newPath string) error
}

// AudioFile describes one recording in the audio directory.
type AudioFile struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AudioStore stores hymn recordings. Files are streamed as-is.
type AudioStore interface {
	ListAudio() ([]AudioFile, error)
	OpenAudio(name string) (io.ReadSeekCloser, AudioFile, error)
	SaveAudio(name string, r io.Reader) (AudioFile, error)
}

// HymnPath returns the library-relative path of the hymn with the given code.
func HymnPath(code string) string {
	return code + HymnExt
}

// CodeFromPath returns the hymn code encoded in a library-relative path.
func CodeFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), HymnExt)
}

// IsHymnFile reports whether path names a hymn file outside the audio
// directory. Hidden files (including in-flight temp files) are skipped.
func IsHymnFile(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	if strings.HasPrefix(base, ".") || !strings.HasSuffix(base, HymnExt) {
		return false
	}
	return rel != AudioDir && !strings.HasPrefix(rel, AudioDir+"/")
}
