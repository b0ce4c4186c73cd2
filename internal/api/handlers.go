package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/cifra/internal/checksum"
	"github.com/starford/cifra/internal/hymnservice"
	"github.com/starford/cifra/internal/models"
)

// Handler holds hymn route handlers.
type Handler struct {
	svc *hymnservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *hymnservice.Service) *Handler {
	return &Handler{svc: svc}
}

func writeDetail(w http.ResponseWriter, status int, d *HymnDetail) {
	w.Header().Set("ETag", checksum.ETag(d.Checksum))
	writeJSON(w, status, d)
}

// ListHymns handles GET /hymns.
//
//	@Summary		List the hymn catalogue with pagination and filtering
//	@Tags			hymns
//	@Produce		json
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Param			rhythm	query		string	false	"Filter by rhythm"
//	@Param			sort	query		string	false	"Sort field"	Enums(title, code, updated)
//	@Success		200		{object}	HymnListResponse
//	@Security		BearerAuth
//	@Router			/hymns [get]
func (h *Handler) ListHymns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	sort := q.Get("sort")
	switch sort {
	case "", "title", "code", "updated":
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("sort must be one of title, code, updated"))
		return
	}

	items, total, err := h.svc.List(r.Context(), limit, offset, q.Get("rhythm"), sort)
	if err != nil {
		writeError(w, "list hymns", err)
		return
	}
	writeJSON(w, http.StatusOK, HymnListResponse{Hymns: items, Total: total})
}

// GetHymn handles GET /hymns/{code}.
//
//	@Summary		Get a hymn prepared for display, optionally in another key
//	@Tags			hymns
//	@Produce		json
//	@Param			code	path		string	true	"Hymn code"
//	@Param			key		query		string	false	"Display key"	Enums(Ab, A, Bb, B, C, Db, D, Eb, E, F, Gb, G)
//	@Success		200		{object}	HymnDetail
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/hymns/{code} [get]
func (h *Handler) GetHymn(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context(), chi.URLParam(r, "code"), r.URL.Query().Get("key"))
	if err != nil {
		writeError(w, "get hymn", err)
		return
	}
	writeDetail(w, http.StatusOK, d)
}

// CreateHymn handles POST /hymns.
//
//	@Summary		Create a new hymn
//	@Tags			hymns
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.Hymn	true	"Hymn to create; code is generated when empty"
//	@Success		201		{object}	HymnDetail
//	@Failure		400		{object}	errResponse
//	@Failure		409		{object}	errResponse
//	@Failure		422		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/hymns [post]
func (h *Handler) CreateHymn(w http.ResponseWriter, r *http.Request) {
	var hymn models.Hymn
	if !decodeJSON(w, r, &hymn) {
		return
	}
	d, err := h.svc.Create(r.Context(), hymn)
	if err != nil {
		writeError(w, "create hymn", err)
		return
	}
	writeDetail(w, http.StatusCreated, d)
}

// UpdateHymn handles PUT /hymns/{code}.
//
//	@Summary		Replace a hymn with optimistic concurrency
//	@Tags			hymns
//	@Accept			json
//	@Produce		json
//	@Param			code		path		string		true	"Hymn code"
//	@Param			If-Match	header		string		false	"ETag or SHA-256 checksum of the stored file"
//	@Param			body		body		models.Hymn	true	"Updated hymn"
//	@Success		200			{object}	HymnDetail
//	@Failure		400			{object}	errResponse
//	@Failure		404			{object}	errResponse
//	@Failure		409			{object}	errResponse
//	@Failure		422			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/hymns/{code} [put]
func (h *Handler) UpdateHymn(w http.ResponseWriter, r *http.Request) {
	var hymn models.Hymn
	if !decodeJSON(w, r, &hymn) {
		return
	}
	d, err := h.svc.Update(r.Context(), chi.URLParam(r, "code"), hymn, r.Header.Get("If-Match"))
	if err != nil {
		writeError(w, "update hymn", err)
		return
	}
	writeDetail(w, http.StatusOK, d)
}

// DeleteHymn handles DELETE /hymns/{code}.
//
//	@Summary		Delete a hymn
//	@Tags			hymns
//	@Param			code	path	string	true	"Hymn code"
//	@Success		204		"Hymn deleted"
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/hymns/{code} [delete]
func (h *Handler) DeleteHymn(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		writeError(w, "delete hymn", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TransposeHymn handles POST /hymns/{code}/transpose.
//
//	@Summary		Rewrite a stored hymn in another key
//	@Tags			hymns
//	@Accept			json
//	@Produce		json
//	@Param			code		path		string				true	"Hymn code"
//	@Param			If-Match	header		string				false	"ETag or SHA-256 checksum of the stored file"
//	@Param			body		body		TransposeRequest	true	"Target key"
//	@Success		200			{object}	HymnDetail
//	@Failure		400			{object}	errResponse
//	@Failure		404			{object}	errResponse
//	@Failure		409			{object}	errResponse
//	@Failure		422			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/hymns/{code}/transpose [post]
func (h *Handler) TransposeHymn(w http.ResponseWriter, r *http.Request) {
	var req TransposeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("key is required"))
		return
	}
	d, err := h.svc.Transpose(r.Context(), chi.URLParam(r, "code"), req.Key, r.Header.Get("If-Match"))
	if err != nil {
		writeError(w, "transpose hymn", err)
		return
	}
	writeDetail(w, http.StatusOK, d)
}

// StepHymn handles POST /hymns/{code}/step.
//
//	@Summary		Display a hymn one half step up or down
//	@Tags			hymns
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string		true	"Hymn code"
//	@Param			body	body		StepRequest	true	"Current key and direction"
//	@Success		200		{object}	HymnDetail
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/hymns/{code}/step [post]
func (h *Handler) StepHymn(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Dir != 1 && req.Dir != -1 {
		writeJSON(w, http.StatusBadRequest, errorBody("dir must be 1 or -1"))
		return
	}
	d, err := h.svc.Step(r.Context(), chi.URLParam(r, "code"), req.Key, req.Dir)
	if err != nil {
		writeError(w, "step hymn", err)
		return
	}
	writeDetail(w, http.StatusOK, d)
}

// Search handles GET /search.
//
//	@Summary		Full-text search across hymn titles and lyrics
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		writeError(w, "search", err)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}
