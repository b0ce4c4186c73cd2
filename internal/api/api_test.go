package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/cifra/internal/checksum"
	"github.com/starford/cifra/internal/hymnservice"
	"github.com/starford/cifra/internal/models"
	"github.com/starford/cifra/internal/testutil"
)

// testEnv sets up a temp library, SQLite DB, service, and router for testing.
// An empty authToken means disabled mode.
func testEnv(t *testing.T, authToken string) (*hymnservice.Service, http.Handler) {
	t.Helper()
	svc, router, _ := testEnvWithLibrary(t, authToken != "", authToken, nil)
	return svc, router
}

func testEnvWithLibrary(t *testing.T, authEnabled bool, authToken string, sseHandler http.Handler) (*hymnservice.Service, http.Handler, string) {
	t.Helper()
	dir, store := testutil.TestLibrary(t)
	db := testutil.TestDB(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := hymnservice.NewService(store, db, hymnservice.WithLogger(logger))
	router := NewRouter(svc, store, authEnabled, authToken, sseHandler)
	return svc, router, dir
}

func do(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createHymn(t *testing.T, router http.Handler, code string) HymnDetail {
	t.Helper()
	w := do(t, router, http.MethodPost, "/hymns", testutil.SampleHymn(code))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var d HymnDetail
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestCreateAndGetHymn(t *testing.T) {
	_, router := testEnv(t, "")
	created := createHymn(t, router, "042")

	w := do(t, router, http.MethodGet, "/hymns/042", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if got := w.Header().Get("ETag"); got != checksum.ETag(created.Checksum) {
		t.Errorf("ETag = %q, want %q", got, checksum.ETag(created.Checksum))
	}
	var d HymnDetail
	_ = json.Unmarshal(w.Body.Bytes(), &d)
	if d.Hymn.Title != "Santo, Santo, Santo" {
		t.Errorf("title = %q", d.Hymn.Title)
	}
	if d.Key != "G" || d.Capo != 0 {
		t.Errorf("key = %q, capo = %d", d.Key, d.Capo)
	}
}

func TestGetHymn_InAnotherKey(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "042")

	w := do(t, router, http.MethodGet, "/hymns/042?key=A", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", w.Code, w.Body.String())
	}
	var d HymnDetail
	_ = json.Unmarshal(w.Body.Bytes(), &d)
	if d.Key != "A" || d.Capo != 10 {
		t.Errorf("key = %q, capo = %d, want A/10", d.Key, d.Capo)
	}
	if got := d.Hymn.Score.Stanzas[0].Text[0]; got != "[A]Santo, santo, [E]santo" {
		t.Errorf("line = %q", got)
	}
}

func TestGetHymn_InvalidKey(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "042")

	w := do(t, router, http.MethodGet, "/hymns/042?key=H", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid key = %d, want 400", w.Code)
	}
}

func TestGetHymn_NotFound(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/hymns/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing hymn = %d, want 404", w.Code)
	}
}

func TestCreateDuplicate(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "dup")

	w := do(t, router, http.MethodPost, "/hymns", testutil.SampleHymn("dup"))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create = %d, want 409", w.Code)
	}
}

func TestCreateInvalid(t *testing.T) {
	_, router := testEnv(t, "")

	h := testutil.SampleHymn("bad")
	h.Tone.Original = "X"
	w := do(t, router, http.MethodPost, "/hymns", h)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid hymn = %d, want 422", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/hymns", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("broken JSON = %d, want 400", rec.Code)
	}
}

func TestUpdateWithOptimisticLocking(t *testing.T) {
	_, router := testEnv(t, "")
	created := createHymn(t, router, "lock")

	update := testutil.SampleHymn("lock")
	update.Title = "Santo (v2)"
	body, _ := json.Marshal(update)

	req := httptest.NewRequest(http.MethodPut, "/hymns/lock", bytes.NewReader(body))
	req.Header.Set("If-Match", checksum.ETag(created.Checksum))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update with correct checksum = %d, body = %s", w.Code, w.Body.String())
	}

	// Stale checksum.
	req = httptest.NewRequest(http.MethodPut, "/hymns/lock", bytes.NewReader(body))
	req.Header.Set("If-Match", created.Checksum)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("update with stale checksum = %d, want 409", w.Code)
	}
}

func TestUpdateWithoutIfMatch(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "nolock")

	w := do(t, router, http.MethodPut, "/hymns/nolock", testutil.SampleHymn("nolock"))
	if w.Code != http.StatusOK {
		t.Errorf("update without If-Match = %d, want 200", w.Code)
	}
}

func TestUpdateHymn_NotFound(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodPut, "/hymns/ghost", testutil.SampleHymn("ghost"))
	if w.Code != http.StatusNotFound {
		t.Errorf("update missing = %d, want 404", w.Code)
	}
}

func TestDeleteHymn(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "bye")

	w := do(t, router, http.MethodDelete, "/hymns/bye", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete = %d, want 204", w.Code)
	}

	w = do(t, router, http.MethodGet, "/hymns/bye", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", w.Code)
	}
}

func TestTransposeHymn(t *testing.T) {
	_, router, dir := testEnvWithLibrary(t, false, "", nil)
	createHymn(t, router, "tr")

	w := do(t, router, http.MethodPost, "/hymns/tr/transpose", TransposeRequest{Key: "A"})
	if w.Code != http.StatusOK {
		t.Fatalf("transpose = %d, body = %s", w.Code, w.Body.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "tr.json"))
	if err != nil {
		t.Fatal(err)
	}
	h, err := models.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if h.Tone.Selected != "A" || h.Tone.Original != "G" {
		t.Errorf("tone = %+v", h.Tone)
	}
	if got := h.Score.Stanzas[1].Text[0]; got != "[D]Glória a [A]Deus, [E7|x2]amém" {
		t.Errorf("chorus = %q", got)
	}

	w = do(t, router, http.MethodPost, "/hymns/tr/transpose", TransposeRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing key = %d, want 400", w.Code)
	}
}

func TestStepHymn(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "st")

	w := do(t, router, http.MethodPost, "/hymns/st/step", StepRequest{Key: "G", Dir: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("step = %d, body = %s", w.Code, w.Body.String())
	}
	var d HymnDetail
	_ = json.Unmarshal(w.Body.Bytes(), &d)
	if d.Key != "Ab" {
		t.Errorf("key = %q, want Ab", d.Key)
	}

	w = do(t, router, http.MethodPost, "/hymns/st/step", StepRequest{Key: "G", Dir: 2})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad dir = %d, want 400", w.Code)
	}
}

func TestListHymns(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "a")
	createHymn(t, router, "b")

	w := do(t, router, http.MethodGet, "/hymns?limit=10&sort=code", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var resp HymnListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total != 2 || len(resp.Hymns) != 2 {
		t.Fatalf("total = %d, len = %d, want 2", resp.Total, len(resp.Hymns))
	}
	if resp.Hymns[0].Code != "a" {
		t.Errorf("first = %q, want a", resp.Hymns[0].Code)
	}

	w = do(t, router, http.MethodGet, "/hymns?sort=bogus", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad sort = %d, want 400", w.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "find")

	w := do(t, router, http.MethodGet, "/search?q=onipotente", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search = %d, body = %s", w.Code, w.Body.String())
	}
	var resp SearchResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Results) != 1 || resp.Results[0].Code != "find" {
		t.Errorf("results = %+v", resp.Results)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/search", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("search no query = %d, want 400", w.Code)
	}
}

func TestChordEndpoints(t *testing.T) {
	_, router := testEnv(t, "")
	createHymn(t, router, "c1")

	w := do(t, router, http.MethodGet, "/chords", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("chords = %d", w.Code)
	}
	var list ChordListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Dictionary) == 0 || len(list.Usage) == 0 {
		t.Errorf("chords = %d dictionary, %d usage", len(list.Dictionary), len(list.Usage))
	}

	w = do(t, router, http.MethodGet, "/chords/Em", nil)
	var c ChordResponse
	_ = json.Unmarshal(w.Body.Bytes(), &c)
	if !c.HasDiagram || len(c.Hymns) != 1 || c.Hymns[0].Code != "c1" {
		t.Errorf("Em = %+v", c)
	}

	w = do(t, router, http.MethodGet, "/chords/Dbm7", nil)
	c = ChordResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &c)
	if c.Normalized != "C#m7" || !c.HasDiagram {
		t.Errorf("Dbm7 = %+v", c)
	}

	w = do(t, router, http.MethodGet, "/chords/C%2FE", nil)
	c = ChordResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &c)
	if c.Name != "C/E" {
		t.Errorf("name = %q, want C/E", c.Name)
	}
}

func TestCapoAndPad(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/capo?original=D&selected=C", nil)
	var capo CapoResponse
	_ = json.Unmarshal(w.Body.Bytes(), &capo)
	if capo.Capo != 2 {
		t.Errorf("capo = %d, want 2", capo.Capo)
	}

	w = do(t, router, http.MethodPost, "/pad", PadRequest{Lines: []string{"[C7M]a b"}})
	var pad PadResponse
	_ = json.Unmarshal(w.Body.Bytes(), &pad)
	if len(pad.Lines) != 1 || pad.Lines[0] != "[C7M]a__ b" {
		t.Errorf("pad = %q", pad.Lines)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	body, _ := json.Marshal(testutil.SampleHymn("auth"))
	req := httptest.NewRequest(http.MethodPost, "/hymns", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("authed create = %d, want 201", w.Code)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	w := do(t, router, http.MethodGet, "/hymns", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthed = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_WrongToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	req := httptest.NewRequest(http.MethodGet, "/hymns", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/hymns", nil)
	if w.Code != http.StatusOK {
		t.Errorf("no auth = %d, want 200", w.Code)
	}
}

// SSE endpoint auth tests.

// blockingSSE writes headers and blocks until the request context is done.
var blockingSSE = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(http.StatusOK)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	<-r.Context().Done()
})

func TestSSEEvents_AuthProtected(t *testing.T) {
	_, router, _ := testEnvWithLibrary(t, true, "secret", blockingSSE)

	w := do(t, router, http.MethodGet, "/events", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("SSE no auth = %d, want 401", w.Code)
	}
}

func TestSSEEvents_ValidToken(t *testing.T) {
	_, router, _ := testEnvWithLibrary(t, true, "tok", blockingSSE)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code == http.StatusUnauthorized {
		t.Error("SSE with valid token should not 401")
	}
}

// Audio tests.

func uploadFile(t *testing.T, router http.Handler, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = io.Copy(part, bytes.NewReader(content))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadServeAndListAudio(t *testing.T) {
	_, router, dir := testEnvWithLibrary(t, false, "", nil)

	w := uploadFile(t, router, "042.mp3", []byte("fake-mp3-data"))
	if w.Code != http.StatusCreated {
		t.Fatalf("upload = %d, body = %s", w.Code, w.Body.String())
	}
	var up AudioUploadResponse
	_ = json.Unmarshal(w.Body.Bytes(), &up)
	if up.Filename != "042.mp3" || up.Size != 13 || up.URL != "/audio/042.mp3" {
		t.Errorf("upload = %+v", up)
	}

	data, err := os.ReadFile(filepath.Join(dir, "audio", "042.mp3"))
	if err != nil {
		t.Fatalf("file not on disk: %v", err)
	}
	if string(data) != "fake-mp3-data" {
		t.Errorf("content mismatch")
	}

	req := httptest.NewRequest(http.MethodGet, "/audio/042.mp3", nil)
	req.Header.Set("Range", "bytes=0-3")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusPartialContent || rec.Body.String() != "fake" {
		t.Errorf("range = %d %q", rec.Code, rec.Body.String())
	}

	w = do(t, router, http.MethodGet, "/audio", nil)
	var list AudioListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Files) != 1 || list.Files[0].Name != "042.mp3" {
		t.Errorf("list = %+v", list.Files)
	}
}

func TestServeAudio_NotFound(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/audio/nope.mp3", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing audio = %d, want 404", w.Code)
	}
}

func TestUploadAudio_InvalidName(t *testing.T) {
	_, router := testEnv(t, "")

	for _, name := range []string{"notes.txt", ".hidden.mp3"} {
		w := uploadFile(t, router, name, []byte("bad"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("upload %q = %d, want 400", name, w.Code)
		}
	}
}

func TestUploadAudio_AuthProtected(t *testing.T) {
	_, router := testEnv(t, "secret")

	w := uploadFile(t, router, "x.mp3", []byte("data"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("upload no auth = %d, want 401", w.Code)
	}
}

func TestUploadAudio_MissingFileField(t *testing.T) {
	_, router := testEnv(t, "")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("wrong", "data")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing field = %d, want 400", w.Code)
	}
}
