package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/starford/cifra/internal/checksum"
	"github.com/starford/cifra/internal/models"
)

// AudioExts lists the recording formats the library accepts.
var AudioExts = []string{".mp3", ".m4a", ".ogg", ".wav"}

// ErrAudioName is returned for audio names that are not a plain file name
// with a supported extension.
var ErrAudioName = errors.New("storage: invalid audio file name")

const tmpPattern = ".cifra-tmp-*"

// FS implements Provider and AudioStore backed by the local file system.
type FS struct {
	root string // absolute path to the library directory
}

var (
	_ Provider   = (*FS)(nil)
	_ AudioStore = (*FS)(nil)
)

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute library directory.
func (f *FS) Root() string { return f.root }

// safePath resolves a relative path against the library root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes library root: %s", rel)
	}
	return abs, nil
}

// List walks dir (relative to root) and returns metadata for every hymn
// file. The audio directory is not descended into.
func (f *FS) List(dir string) ([]models.HymnMetadata, error) {
	base, err := f.safePath(dir)
	if err != nil {
		return nil, err
	}
	var out []models.HymnMetadata
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, _ := filepath.Rel(f.root, p)
		if d.IsDir() {
			if filepath.ToSlash(rel) == AudioDir {
				return fs.SkipDir
			}
			return nil
		}
		if !IsHymnFile(rel) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		out = append(out, models.HymnMetadata{
			Path:      rel,
			Checksum:  checksum.Sum(data),
			UpdatedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	return out, nil
}

// Read returns the raw bytes of a library file.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file → fsync → rename.
func (f *FS) Write(path string, content []byte) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	return writeAtomic(abs, func(w io.Writer) error {
		_, err := w.Write(content)
		return err
	})
}

// writeAtomic streams fill into a temp file next to abs, then renames it
// into place.
func writeAtomic(abs string, fill func(io.Writer) error) error {
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := fill(tmp); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Delete removes a file from the library.
func (f *FS) Delete(path string) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("storage: delete %s: %w", path, err)
	}
	return nil
}

// Move renames a file within the library.
func (f *FS) Move(oldPath, newPath string) error {
	absOld, err := f.safePath(oldPath)
	if err != nil {
		return err
	}
	absNew, err := f.safePath(newPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(absNew), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir for move: %w", err)
	}
	if err := os.Rename(absOld, absNew); err != nil {
		return fmt.Errorf("storage: move: %w", err)
	}
	return nil
}

// audioPath validates an audio file name and returns its absolute path.
func (f *FS) audioPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrAudioName, name)
	}
	if !slices.Contains(AudioExts, strings.ToLower(filepath.Ext(name))) {
		return "", fmt.Errorf("%w: %q", ErrAudioName, name)
	}
	return f.safePath(filepath.Join(AudioDir, name))
}

// ListAudio returns the recordings in the audio directory, sorted by name.
// A missing directory yields an empty list.
func (f *FS) ListAudio() ([]AudioFile, error) {
	entries, err := os.ReadDir(filepath.Join(f.root, AudioDir))
	if errors.Is(err, fs.ErrNotExist) {
		return []AudioFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: list audio: %w", err)
	}
	out := make([]AudioFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(AudioExts, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, AudioFile{Name: e.Name(), Size: info.Size(), UpdatedAt: info.ModTime()})
	}
	return out, nil
}

// OpenAudio opens a recording for streaming. The caller closes it.
func (f *FS) OpenAudio(name string) (io.ReadSeekCloser, AudioFile, error) {
	abs, err := f.audioPath(name)
	if err != nil {
		return nil, AudioFile{}, err
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, AudioFile{}, fmt.Errorf("storage: open audio %s: %w", name, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, AudioFile{}, fmt.Errorf("storage: stat audio %s: %w", name, err)
	}
	return file, AudioFile{Name: name, Size: info.Size(), UpdatedAt: info.ModTime()}, nil
}

// SaveAudio atomically stores r under name in the audio directory,
// replacing any existing recording with the same name.
func (f *FS) SaveAudio(name string, r io.Reader) (AudioFile, error) {
	abs, err := f.audioPath(name)
	if err != nil {
		return AudioFile{}, err
	}
	var size int64
	err = writeAtomic(abs, func(w io.Writer) error {
		n, err := io.Copy(w, r)
		size = n
		return err
	})
	if err != nil {
		return AudioFile{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return AudioFile{}, fmt.Errorf("storage: stat audio %s: %w", name, err)
	}
	return AudioFile{Name: name, Size: size, UpdatedAt: info.ModTime()}, nil
}
