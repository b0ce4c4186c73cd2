package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/cifra/internal/storage"
)

const (
	maxAudioSize = 50 << 20 // 50 MB
	sniffLen     = 512
)

var errTooLarge = fmt.Errorf("recording too large (max %d bytes)", maxAudioSize)

var (
	// declaredExt maps the media type a source announces to an extension.
	declaredExt = map[string]string{
		"audio/mpeg":  ".mp3",
		"audio/mp3":   ".mp3",
		"audio/mp4":   ".m4a",
		"audio/x-m4a": ".m4a",
		"audio/ogg":   ".ogg",
		"audio/wav":   ".wav",
		"audio/x-wav": ".wav",
		"audio/wave":  ".wav",
	}

	// sniffedExt maps http.DetectContentType results to the extension they
	// prove. Raw MPEG frames without an ID3 tag sniff as octet-stream.
	sniffedExt = map[string]string{
		"audio/mpeg":      ".mp3",
		"application/ogg": ".ogg",
		"audio/wave":      ".wav",
		"video/mp4":       ".m4a",
	}

	safeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

	metadataIP = net.ParseIP("169.254.169.254")
)

type uploadResult struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}

// source is a recording being pulled in from a data URI or a remote URL.
type source struct {
	body io.ReadCloser
	ext  string // from the announced media type; may be empty
	name string // base name taken from the URL path; may be empty
}

func (s *Server) uploadAudio(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	src, err := s.openSource(ctx, rawURL)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer src.body.Close()

	name := sanitizeFilename(recordingName(req.GetString("filename", ""), src))
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(storage.AudioExts, ext) {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported file extension: %s (allowed: mp3, m4a, ogg, wav)", ext)), nil
	}

	body := bufio.NewReaderSize(&capReader{r: src.body, left: maxAudioSize}, sniffLen)
	head, _ := body.Peek(sniffLen)
	if err := checkContent(head, ext); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	saved, err := s.audio.SaveAudio(name, body)
	if errors.Is(err, errTooLarge) {
		return mcp.NewToolResultError(errTooLarge.Error()), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save recording: %v", err)), nil
	}

	return jsonResult(uploadResult{
		Filename: saved.Name,
		Size:     saved.Size,
		URL:      "/api/audio/" + saved.Name,
	})
}

// recordingName picks the stored file name: the caller's choice, then the
// URL's base name, then a uuid with the announced extension.
func recordingName(requested string, src *source) string {
	switch {
	case requested != "":
		return requested
	case src.name != "":
		return src.name
	case src.ext != "":
		return uuid.NewString() + src.ext
	default:
		return uuid.NewString() + ".mp3"
	}
}

func (s *Server) openSource(ctx context.Context, rawURL string) (*source, error) {
	if rest, ok := strings.CutPrefix(rawURL, "data:"); ok {
		return openDataURI(rest)
	}
	return s.openRemote(ctx, rawURL)
}

// openDataURI decodes what follows "data:". Only base64 payloads with an
// audio media type are accepted.
func openDataURI(rest string) (*source, error) {
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errors.New("invalid data URI: missing comma separator")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, errors.New("only base64 data URIs are supported")
	}
	mediaType, _, _ := strings.Cut(meta, ";")
	ext, ok := declaredExt[mediaType]
	if !ok {
		return nil, fmt.Errorf("unsupported MIME type in data URI: %s", mediaType)
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > maxAudioSize+3 {
		return nil, errTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return nil, fmt.Errorf("invalid base64 data: %w", err)
		}
	}
	return &source{body: io.NopCloser(bytes.NewReader(data)), ext: ext}, nil
}

// openRemote starts an http(s) download. The body is streamed by the
// caller, so a recording is never held in memory whole.
func (s *Server) openRemote(ctx context.Context, rawURL string) (*source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s (only http/https or data:)", u.Scheme)
	}
	if err := checkHost(u.Hostname()); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	resp, err := s.fetch.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}
	if resp.ContentLength > maxAudioSize {
		resp.Body.Close()
		return nil, errTooLarge
	}

	mediaType, _, _ := strings.Cut(resp.Header.Get("Content-Type"), ";")
	return &source{
		body: resp.Body,
		ext:  declaredExt[strings.TrimSpace(mediaType)],
		name: remoteName(u),
	}, nil
}

// remoteName is the last path segment of u when it carries an extension.
func remoteName(u *url.URL) string {
	base := path.Base(u.Path)
	if base == "." || base == "/" || path.Ext(base) == "" {
		return ""
	}
	return base
}

// newFetchClient returns the client for remote recordings. The dialer
// checks every address it connects to, so a name resolving to loopback or
// the metadata service is refused too.
func newFetchClient() *http.Client {
	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return err
			}
			return checkAddr(net.ParseIP(host))
		},
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Timeout:   2 * time.Minute,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return errors.New("too many redirects (max 5)")
			}
			return checkHost(req.URL.Hostname())
		},
	}
}

func checkHost(host string) error {
	switch host {
	case "localhost", "metadata.google.internal":
		return fmt.Errorf("blocked host: %s", host)
	}
	return checkAddr(net.ParseIP(host))
}

func checkAddr(ip net.IP) error {
	switch {
	case ip == nil:
		return nil
	case ip.IsLoopback():
		return fmt.Errorf("blocked host: loopback address %s", ip)
	case ip.Equal(metadataIP):
		return fmt.Errorf("blocked host: cloud metadata address %s", ip)
	}
	return nil
}

// capReader fails with errTooLarge once more than left bytes were read.
type capReader struct {
	r    io.Reader
	left int64
}

func (c *capReader) Read(p []byte) (int, error) {
	if c.left < 0 {
		return 0, errTooLarge
	}
	if int64(len(p)) > c.left+1 {
		p = p[:c.left+1]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return n, errTooLarge
	}
	return n, err
}

// sanitizeFilename strips path separators and unsafe characters. Leading
// dots are replaced so the result is never a hidden file.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = safeFilenameRe.ReplaceAllString(name, "_")
	if strings.HasPrefix(name, ".") {
		name = "_" + name[1:]
	}
	if name == "" || name == "_" {
		name = uuid.NewString()
	}
	return name
}

// checkContent sniffs the first bytes of a recording and rejects content
// that is another known format than ext, or not audio at all.
func checkContent(head []byte, ext string) error {
	detected, _, _ := strings.Cut(http.DetectContentType(head), ";")
	if want, ok := sniffedExt[detected]; ok {
		if want != ext {
			return fmt.Errorf("content does not match extension %s (detected: %s)", ext, detected)
		}
		return nil
	}
	if detected != "application/octet-stream" {
		return fmt.Errorf("content is not audio (detected: %s)", detected)
	}
	return nil
}
