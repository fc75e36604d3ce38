// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/domain/search"
	"github.com/helixml/antigone/domain/text"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "antigone"

// LineReader reads passages of the text for MCP tools.
type LineReader interface {
	Navigator() passage.Navigator
	Passage(ctx context.Context, a passage.Address) ([]text.Line, error)
	Speakers(ctx context.Context) ([]string, error)
}

// WordLookup resolves a word form to its lexical entries.
type WordLookup interface {
	Lookup(ctx context.Context, word string) ([]lexicon.Entry, error)
}

// Searcher runs word and definition searches.
type Searcher interface {
	Query(ctx context.Context, q search.Query) ([]lexicon.Entry, error)
}

// Server wraps the MCP server with tools for reading the text.
type Server struct {
	mcpServer *server.MCPServer
	lines     LineReader
	words     WordLookup
	searcher  Searcher
	logger    *slog.Logger
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(lines LineReader, words WordLookup, searcher Searcher, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		lines:    lines,
		words:    words,
		searcher: searcher,
		logger:   logger,
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(mcp.NewTool("get_lines",
		mcp.WithDescription("Read lines of the text. Out of range numbers are clamped to the text."),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("First line number, or a range such as 12-15"),
		),
		mcp.WithNumber("end",
			mcp.Description("Last line number (default: same as start)"),
		),
	), s.handleGetLines)

	mcpServer.AddTool(mcp.NewTool("lookup_word",
		mcp.WithDescription("Look up the lemma, morphology and definitions of a word as it appears in the text"),
		mcp.WithString("word",
			mcp.Required(),
			mcp.Description("The word form, in Greek or English"),
		),
	), s.handleLookupWord)

	mcpServer.AddTool(mcp.NewTool("search",
		mcp.WithDescription("Search word occurrences by form or by English definition, optionally spoken by one speaker"),
		mcp.WithString("mode",
			mcp.Required(),
			mcp.Enum(string(search.ModeWord), string(search.ModeDefinition)),
			mcp.Description("word matches forms and lemmas, definition matches English glosses"),
		),
		mcp.WithString("query",
			mcp.Description("The search text. When empty, the speaker name is searched for."),
		),
		mcp.WithString("speaker",
			mcp.Description("Only return occurrences in lines spoken by this speaker"),
		),
	), s.handleSearch)

	mcpServer.AddTool(mcp.NewTool("list_speakers",
		mcp.WithDescription("List the speakers of the text"),
	), s.handleListSpeakers)
}

type lineResult struct {
	Line    int    `json:"line"`
	Text    string `json:"text,omitempty"`
	Speaker string `json:"speaker,omitempty"`
}

type entryResult struct {
	LemmaID     int64    `json:"lemma_id"`
	Lemma       string   `json:"lemma"`
	Form        string   `json:"form"`
	Line        int      `json:"line"`
	Speaker     string   `json:"speaker,omitempty"`
	Postag      string   `json:"postag"`
	Morphology  string   `json:"morphology,omitempty"`
	Definitions []string `json:"definitions"`
}

func newEntryResults(entries []lexicon.Entry) []entryResult {
	out := make([]entryResult, len(entries))
	for i, e := range entries {
		info := e.Info()
		defs := make([]string, 0, len(e.Definitions()))
		for _, d := range e.Definitions() {
			if d.IsAvailable() {
				defs = append(defs, d.Short())
			}
		}
		out[i] = entryResult{
			LemmaID:     info.LemmaID(),
			Lemma:       info.Lemma(),
			Form:        info.Form(),
			Line:        info.LineNumber(),
			Speaker:     info.Speaker(),
			Postag:      info.Postag(),
			Morphology:  e.Morphology().String(),
			Definitions: defs,
		}
	}
	return out
}

func (s *Server) handleGetLines(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := request.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError("start is required"), nil
	}

	nav := s.lines.Navigator()
	var addr passage.Address
	if end := request.GetInt("end", 0); end > 0 {
		addr = nav.Resolve(start, strconv.Itoa(end))
	} else {
		addr = nav.ParseAddress(start)
	}

	lines, err := s.lines.Passage(ctx, addr)
	if err != nil {
		return s.toolError("get_lines", err), nil
	}

	results := make([]lineResult, len(lines))
	for i, l := range lines {
		results[i] = lineResult{Line: l.Number(), Text: l.Text(), Speaker: l.Speaker()}
	}
	return jsonResult(results)
}

func (s *Server) handleLookupWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, err := request.RequireString("word")
	if err != nil || strings.TrimSpace(word) == "" {
		return mcp.NewToolResultError("word is required"), nil
	}

	entries, err := s.words.Lookup(ctx, word)
	if err != nil {
		return s.toolError("lookup_word", err), nil
	}
	return jsonResult(newEntryResults(entries))
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawMode, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError("mode is required"), nil
	}
	mode, err := search.ParseMode(rawMode)
	if err != nil {
		return mcp.NewToolResultError("Invalid search mode"), nil
	}

	q := search.NewQuery(mode, request.GetString("query", ""), request.GetString("speaker", ""))
	if q.IsBlank() {
		return mcp.NewToolResultError("query or speaker is required"), nil
	}

	entries, err := s.searcher.Query(ctx, q)
	if err != nil {
		return s.toolError("search", err), nil
	}
	return jsonResult(newEntryResults(entries))
}

func (s *Server) handleListSpeakers(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	speakers, err := s.lines.Speakers(ctx)
	if err != nil {
		return s.toolError("list_speakers", err), nil
	}
	return jsonResult(speakers)
}

// toolError reports validation and not-found errors as they are and hides
// anything else behind a generic message.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrNotFound) {
		return mcp.NewToolResultError(err.Error())
	}
	s.logger.Error("tool failed", slog.String("tool", tool), slog.Any("error", err))
	return mcp.NewToolResultError(fmt.Sprintf("%s failed", tool))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
