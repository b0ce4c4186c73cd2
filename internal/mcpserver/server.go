// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes cifra tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/cifra/internal/apperr"
	"github.com/starford/cifra/internal/chord"
	"github.com/starford/cifra/internal/hymnservice"
	"github.com/starford/cifra/internal/storage"
	"github.com/starford/cifra/internal/tone"
)

const hymnFormatURI = "cifra://hymn-format"

// Server wraps the MCP server with cifra tools.
type Server struct {
	mcp   *server.MCPServer
	svc   *hymnservice.Service
	audio storage.AudioStore
	fetch *http.Client
}

// New creates a new MCP server with all cifra tools registered. audio may be
// nil, in which case upload_audio is not offered.
func New(svc *hymnservice.Service, audio storage.AudioStore) *Server {
	s := &Server{svc: svc, audio: audio, fetch: newFetchClient()}

	s.mcp = server.NewMCPServer(
		"Cifra",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_hymns",
		mcp.WithDescription("Full-text search through hymn titles and lyrics. A hymn code matches exactly."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 20)")),
	), s.searchHymns)

	s.mcp.AddTool(mcp.NewTool("list_hymns",
		mcp.WithDescription("List the catalogue as code, title and key, one hymn per line."),
		mcp.WithString("rhythm", mcp.Description("Optional rhythm filter (e.g. valsa)")),
	), s.listHymns)

	s.mcp.AddTool(mcp.NewTool("read_hymn",
		mcp.WithDescription("Read a hymn prepared for display: resolved stanzas, chord list with "+
			"fingerings, capo position and padded layout. Optionally shown in another key "+
			"without changing the stored file."),
		mcp.WithString("code", mcp.Required(), mcp.Description("Hymn code (file name stem)")),
		mcp.WithString("key", mcp.Description("Display key: Ab A Bb B C Db D Eb E F Gb G")),
	), s.readHymn)

	s.mcp.AddTool(mcp.NewTool("transpose_hymn",
		mcp.WithDescription("Transpose a hymn to another key. By default only the returned view "+
			"changes; set persist to rewrite the stored file."),
		mcp.WithString("code", mcp.Required(), mcp.Description("Hymn code")),
		mcp.WithString("key", mcp.Required(), mcp.Description("Target key: Ab A Bb B C Db D Eb E F Gb G")),
		mcp.WithBoolean("persist", mcp.Description("Write the transposed hymn back to the library")),
	), s.transposeHymn)

	s.mcp.AddTool(mcp.NewTool("capo_position",
		mcp.WithDescription("Capo fret at which chord shapes of the selected key sound in the original key."),
		mcp.WithString("original", mcp.Required(), mcp.Description("Key the hymn is written in")),
		mcp.WithString("selected", mcp.Required(), mcp.Description("Key whose shapes will be played")),
	), s.capoPosition)

	s.mcp.AddTool(mcp.NewTool("chord_fingering",
		mcp.WithDescription("Guitar fingering of a chord (any spelling, e.g. Dbm7 or C#m7). "+
			"Frets: -1 muted, 0 open. Fingers: 0 none, 1-4."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Chord name")),
	), s.chordFingering)

	s.mcp.AddTool(mcp.NewTool("list_chords",
		mcp.WithDescription("List the chord dictionary and how many hymns use each chord."),
	), s.listChords)

	s.mcp.AddTool(mcp.NewTool("get_hymn_contract",
		mcp.WithDescription("Returns the canonical cifra hymn format contract. "+
			"Call this before writing hymns to ensure correct structure."),
	), s.getHymnContract)

	if audio != nil {
		s.mcp.AddTool(mcp.NewTool("upload_audio",
			mcp.WithDescription("Store a hymn recording in the library's audio directory from a "+
				"base64 data URI or an http(s) URL. Supported: mp3, m4a, ogg, wav."),
			mcp.WithString("url", mcp.Required(), mcp.Description("data:audio/...;base64,... URI or http(s) URL")),
			mcp.WithString("filename", mcp.Description("Target file name, ideally <code>.<ext>")),
		), s.uploadAudio)
	}

	// Resource: hymn format contract.
	s.mcp.AddResource(
		mcp.NewResource(hymnFormatURI, "Hymn Format Contract",
			mcp.WithResourceDescription("Canonical JSON hymn format with inline chord markers."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readHymnFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// toolError turns service errors into tool-level errors the model can read.
func toolError(code string, err error) *mcp.CallToolResult {
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", code))
	}
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) searchHymns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, req.GetInt("limit", 20))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(results)
}

func (s *Server) listHymns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rows, _, err := s.svc.List(ctx, 1000, 0, req.GetString("rhythm", ""), "code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(rows) == 0 {
		return mcp.NewToolResultText("no hymns found"), nil
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", r.Code, r.Title, r.Tone)
	}
	return mcp.NewToolResultText(strings.TrimSuffix(b.String(), "\n")), nil
}

func (s *Server) readHymn(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := s.svc.Get(ctx, code, req.GetString("key", ""))
	if err != nil {
		return toolError(code, err), nil
	}
	return jsonResult(d)
}

func (s *Server) transposeHymn(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var d *hymnservice.HymnDetail
	if req.GetBool("persist", false) {
		d, err = s.svc.Transpose(ctx, code, key, "")
	} else {
		d, err = s.svc.Get(ctx, code, key)
	}
	if err != nil {
		return toolError(code, err), nil
	}
	return jsonResult(d)
}

func (s *Server) capoPosition(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	original, err := req.RequireString("original")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	selected, err := req.RequireString("selected")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !tone.IsKey(original) || !tone.IsKey(selected) {
		return mcp.NewToolResultError(fmt.Sprintf("%v: keys are %s", apperr.ErrInvalidKey, strings.Join(tone.Keys[:], " "))), nil
	}
	capo := tone.CapoPosition(original, selected)
	if capo == 0 {
		return mcp.NewToolResultText("no capo"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("capo %d", capo)), nil
}

type fingering struct {
	Name       string      `json:"name"`
	Normalized string      `json:"normalized"`
	Shape      chord.Shape `json:"shape"`
	HasDiagram bool        `json:"has_diagram"`
}

func (s *Server) chordFingering(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	shape := chord.GuitarChordData(name)
	return jsonResult(fingering{
		Name:       name,
		Normalized: chord.Normalize(chord.CleanName(name)),
		Shape:      shape,
		HasDiagram: !shape.IsFallback(),
	})
}

func (s *Server) listChords(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	usage, err := s.svc.ChordUsage(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"dictionary": chord.Names(),
		"usage":      usage,
	})
}

func (s *Server) getHymnContract(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(HymnFormatContract), nil
}

func (s *Server) readHymnFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      hymnFormatURI,
			MIMEType: "text/markdown",
			Text:     HymnFormatContract,
		},
	}, nil
}
