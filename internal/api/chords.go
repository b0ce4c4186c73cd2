package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/starford/cifra/internal/chord"
	"github.com/starford/cifra/internal/parser"
	"github.com/starford/cifra/internal/tone"
)

// chordParam extracts the chord name from the URL. Clients encode "#" and
// "/" (e.g. C%23m7, C%2FE).
func chordParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListChords handles GET /chords.
//
//	@Summary		List the chord dictionary and catalogue usage
//	@Tags			chords
//	@Produce		json
//	@Success		200	{object}	ChordListResponse
//	@Security		BearerAuth
//	@Router			/chords [get]
func (h *Handler) ListChords(w http.ResponseWriter, r *http.Request) {
	usage, err := h.svc.ChordUsage(r.Context())
	if err != nil {
		writeError(w, "chord usage", err)
		return
	}
	writeJSON(w, http.StatusOK, ChordListResponse{Dictionary: chord.Names(), Usage: usage})
}

// GetChord handles GET /chords/{name}.
//
//	@Summary		Get the fingering of a chord and the hymns using it
//	@Tags			chords
//	@Produce		json
//	@Param			name	path		string	true	"Chord name, any spelling"
//	@Success		200		{object}	ChordResponse
//	@Security		BearerAuth
//	@Router			/chords/{name} [get]
func (h *Handler) GetChord(w http.ResponseWriter, r *http.Request) {
	name := chordParam(r)
	if chord.IsPlaceholder(chord.CleanName(name)) {
		writeJSON(w, http.StatusBadRequest, errorBody("chord name is required"))
		return
	}
	hymns, err := h.svc.HymnsWithChord(r.Context(), name)
	if err != nil {
		writeError(w, "hymns with chord", err)
		return
	}
	shape := chord.GuitarChordData(name)
	writeJSON(w, http.StatusOK, ChordResponse{
		Name:       name,
		Normalized: chord.Normalize(chord.CleanName(name)),
		Shape:      shape,
		HasDiagram: !shape.IsFallback(),
		Hymns:      hymns,
	})
}

// Capo handles GET /capo.
//
//	@Summary		Capo fret for playing selected-key shapes in the original key
//	@Tags			chords
//	@Produce		json
//	@Param			original	query		string	true	"Original key"	Enums(Ab, A, Bb, B, C, Db, D, Eb, E, F, Gb, G)
//	@Param			selected	query		string	true	"Selected key"	Enums(Ab, A, Bb, B, C, Db, D, Eb, E, F, Gb, G)
//	@Success		200			{object}	CapoResponse
//	@Security		BearerAuth
//	@Router			/capo [get]
func Capo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	original, selected := q.Get("original"), q.Get("selected")
	writeJSON(w, http.StatusOK, CapoResponse{
		Original: original,
		Selected: selected,
		Capo:     tone.CapoPosition(original, selected),
	})
}

// Pad handles POST /pad.
//
//	@Summary		Pad lyric words so they are at least as wide as their chords
//	@Tags			chords
//	@Accept			json
//	@Produce		json
//	@Param			body	body		PadRequest	true	"Lines to pad"
//	@Success		200		{object}	PadResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/pad [post]
func Pad(w http.ResponseWriter, r *http.Request) {
	var req PadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	lines := parser.PadLines(req.Lines)
	if lines == nil {
		lines = []string{}
	}
	writeJSON(w, http.StatusOK, PadResponse{Lines: lines})
}
