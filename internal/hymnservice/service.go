// Package hymnservice coordinates the hymn library, the catalogue index and
// the chord engine for the API and MCP layers.
package hymnservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/starford/cifra/internal/apperr"
	"github.com/starford/cifra/internal/checksum"
	"github.com/starford/cifra/internal/chord"
	"github.com/starford/cifra/internal/index"
	"github.com/starford/cifra/internal/models"
	"github.com/starford/cifra/internal/parser"
	"github.com/starford/cifra/internal/storage"
	"github.com/starford/cifra/internal/tone"
	"github.com/starford/cifra/internal/transpose"
)

// ChordDiagram pairs a chord of the hymn with its fretboard shape.
type ChordDiagram struct {
	Name       string      `json:"name"`
	Shape      chord.Shape `json:"shape"`
	HasDiagram bool        `json:"has_diagram"`
}

// StanzaLayout is a stanza with its lines padded for display.
type StanzaLayout struct {
	Code  string            `json:"code,omitempty"`
	Type  models.StanzaType `json:"type"`
	Lines []string          `json:"lines"`
}

// HymnDetail is a hymn prepared for display in a given key.
type HymnDetail struct {
	Path     string             `json:"path"`
	Checksum string             `json:"checksum"`
	Hymn     models.Hymn        `json:"hymn"`
	Key      string             `json:"key"`
	Capo     int                `json:"capo"`
	Chords   []ChordDiagram     `json:"chords"`
	Groups   []parser.RootGroup `json:"groups"`
	Layout   []StanzaLayout     `json:"layout"`
	Dangling []int              `json:"dangling_refs,omitempty"`
}

// Service coordinates storage and index operations.
type Service struct {
	store  storage.Provider
	db     index.HymnIndex
	logger *slog.Logger
	strict bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithStrictTranspose makes persisted transpositions fail when a chord
// cannot be transposed, instead of writing it unchanged.
func WithStrictTranspose(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// NewService creates a new hymn service.
func NewService(store storage.Provider, db index.HymnIndex, opts ...Option) *Service {
	s := &Service{store: store, db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get loads a hymn and prepares it for display. With a non-empty key the
// hymn is transposed to that key first; nothing is written.
func (s *Service) Get(_ context.Context, code, key string) (*HymnDetail, error) {
	path, data, err := s.load(code)
	if err != nil {
		return nil, err
	}
	h, err := models.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidHymn, err)
	}
	if key != "" {
		if h, err = transpose.Hymn(h, key, transpose.WithLogger(s.logger)); err != nil {
			return nil, err
		}
	}
	return buildDetail(path, checksum.Sum(data), h), nil
}

// Step returns the display view one half step up (dir > 0) or down from
// key, or from the hymn's current key when key is empty.
func (s *Service) Step(ctx context.Context, code, key string, dir int) (*HymnDetail, error) {
	if key == "" {
		cur, err := s.Get(ctx, code, "")
		if err != nil {
			return nil, err
		}
		key = cur.Key
	}
	next, err := tone.Step(key, dir)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, code, next)
}

// Create validates and writes a new hymn, then indexes it. A hymn without
// a code gets a generated one.
func (s *Service) Create(_ context.Context, h models.Hymn) (*HymnDetail, error) {
	if h.Code == "" {
		h.Code = uuid.NewString()
	}
	h = prepare(h)
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidHymn, err)
	}

	path := storage.HymnPath(h.Code)
	if _, err := s.db.GetHymn(h.Code); err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	if _, err := s.store.Read(path); err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	return s.save(path, h)
}

// Update replaces a hymn with optimistic concurrency: ifMatch, when set,
// must match the checksum of the stored file.
func (s *Service) Update(_ context.Context, code string, h models.Hymn, ifMatch string) (*HymnDetail, error) {
	path, existing, err := s.load(code)
	if err != nil {
		return nil, err
	}
	if !checksum.Match(ifMatch, checksum.Sum(existing)) {
		return nil, apperr.ErrConflict
	}
	if h.Code == "" {
		h.Code = code
	}
	if h.Code != code {
		return nil, fmt.Errorf("%w: code %q does not match %q", apperr.ErrInvalidHymn, h.Code, code)
	}
	h = prepare(h)
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidHymn, err)
	}
	return s.save(path, h)
}

// Delete removes a hymn from the library and the catalogue.
func (s *Service) Delete(_ context.Context, code string) error {
	path, _, err := s.load(code)
	if err != nil {
		return err
	}
	if err := s.store.Delete(path); err != nil {
		return err
	}
	return s.db.DeleteByPath(path)
}

// Transpose rewrites the stored hymn in key and persists it. The original
// key is kept. In strict mode a chord that cannot be transposed aborts the
// operation with ErrInvalidHymn.
func (s *Service) Transpose(_ context.Context, code, key, ifMatch string) (*HymnDetail, error) {
	path, data, err := s.load(code)
	if err != nil {
		return nil, err
	}
	if !checksum.Match(ifMatch, checksum.Sum(data)) {
		return nil, apperr.ErrConflict
	}
	h, err := models.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidHymn, err)
	}

	opts := []transpose.Option{transpose.WithLogger(s.logger)}
	if s.strict {
		opts = append(opts, transpose.WithStrict())
	}
	out, err := transpose.Hymn(h, key, opts...)
	if errors.Is(err, chord.ErrMalformedChord) {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidHymn, err)
	}
	if err != nil {
		return nil, err
	}
	return s.save(path, out)
}

// List returns one page of the catalogue.
func (s *Service) List(_ context.Context, limit, offset int, rhythm, sort string) ([]index.HymnRow, int, error) {
	rows, total, err := s.db.ListHymns(limit, offset, rhythm, sort)
	if err != nil {
		return nil, 0, err
	}
	return nonNilSlice(rows), total, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	res, err := s.db.Search(query, limit)
	return nonNilSlice(res), err
}

// HymnsWithChord lists the hymns that use a chord, in any spelling.
func (s *Service) HymnsWithChord(_ context.Context, name string) ([]index.HymnRow, error) {
	rows, err := s.db.HymnsWithChord(name)
	return nonNilSlice(rows), err
}

// ChordUsage reports how many hymns use each chord.
func (s *Service) ChordUsage(_ context.Context) ([]index.ChordCount, error) {
	usage, err := s.db.ChordUsage()
	return nonNilSlice(usage), err
}

// IndexFile decodes data and upserts it into the catalogue.
func (s *Service) IndexFile(path string, data []byte) error {
	_, err := index.IndexFile(s.db, path, data, s.logger)
	return err
}

// load finds the file of a hymn and reads it. Unknown or malformed codes
// yield ErrNotFound.
func (s *Service) load(code string) (string, []byte, error) {
	if !models.ValidCode(code) {
		return "", nil, apperr.ErrNotFound
	}
	path := storage.HymnPath(code)
	row, err := s.db.GetHymn(code)
	switch {
	case err == nil:
		path = row.Path
	case !errors.Is(err, apperr.ErrNotFound):
		return "", nil, err
	}
	data, err := s.store.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil, apperr.ErrNotFound
	}
	if err != nil {
		return "", nil, err
	}
	return path, data, nil
}

func (s *Service) save(path string, h models.Hymn) (*HymnDetail, error) {
	data, err := models.Encode(h)
	if err != nil {
		return nil, err
	}
	if err := s.store.Write(path, data); err != nil {
		return nil, err
	}
	if err := s.IndexFile(path, data); err != nil {
		return nil, err
	}
	return buildDetail(path, checksum.Sum(data), h), nil
}

// prepare defaults the selected key and resolves stanza references.
func prepare(h models.Hymn) models.Hymn {
	if h.Tone.Selected == "" {
		h.Tone.Selected = h.Tone.Original
	}
	return models.ResolveRefs(h)
}

func buildDetail(path, sum string, h models.Hymn) *HymnDetail {
	key := h.Tone.Current()
	chords := parser.CollectChords(h.Score.Introduction, h.Lines())

	diagrams := make([]ChordDiagram, 0, len(chords))
	for _, name := range chords {
		shape := chord.GuitarChordData(name)
		diagrams = append(diagrams, ChordDiagram{Name: name, Shape: shape, HasDiagram: !shape.IsFallback()})
	}

	layout := make([]StanzaLayout, 0, len(h.Score.Stanzas))
	for _, st := range h.Score.Stanzas {
		layout = append(layout, StanzaLayout{
			Code:  st.Code,
			Type:  st.Type,
			Lines: nonNilSlice(parser.PadLines(st.Text)),
		})
	}

	return &HymnDetail{
		Path:     path,
		Checksum: sum,
		Hymn:     h,
		Key:      key,
		Capo:     tone.CapoPosition(tone.Canonical(h.Tone.Original), tone.Canonical(key)),
		Chords:   diagrams,
		Groups:   nonNilSlice(parser.GroupByRoot(chords)),
		Layout:   layout,
		Dangling: models.DanglingRefs(h),
	}
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
