// Package mcp exposes the Dicetale engine as a Model Context Protocol server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/internal/presentation/table"
	"github.com/aretw0/dicetale/pkg/adapters/dice"
	"github.com/aretw0/dicetale/pkg/domain"
)

// StoryResponse is the structured result of a sampled story.
type StoryResponse struct {
	Story    *domain.Story `json:"story" jsonschema_description:"The generated story state"`
	Sentence string        `json:"sentence" jsonschema_description:"The story rendered as prose"`
	Seed     int64         `json:"seed" jsonschema_description:"The seed used for the roll source"`
}

// StepResponse is the structured result of resolving a single roll.
type StepResponse struct {
	Next     string `json:"next" jsonschema_description:"The successor token; '.' means END"`
	Finished bool   `json:"finished" jsonschema_description:"True when the roll ended the sentence"`
}

// Server wraps the Dicetale Engine and exposes it as an MCP Server.
type Server struct {
	engine    *dicetale.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *dicetale.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("dicetale-mcp", strings.TrimSpace(dicetale.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: get_table
	s.mcpServer.AddTool(mcp.NewTool("get_table",
		mcp.WithDescription("Get the full dice transition table as markdown."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(table.Render(s.engine.Model(), s.engine.Warnings())), nil
	})

	// TOOL: inspect_word
	inspectTool := mcp.NewTool("inspect_word",
		mcp.WithDescription("Get the dice table row for one word: which rolls lead to which successors."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The current word to look up")),
		mcp.WithOutputSchema[domain.WordTransitions](),
	)
	s.mcpServer.AddTool(inspectTool, mcp.NewStructuredToolHandler(s.handleInspectWord))

	// TOOL: roll_next
	rollTool := mcp.NewTool("roll_next",
		mcp.WithDescription("Resolve one die roll against the current word and return the next word."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The current word")),
		mcp.WithNumber("roll", mcp.Required(), mcp.Description("The die face rolled (1-6)")),
		mcp.WithOutputSchema[StepResponse](),
	)
	s.mcpServer.AddTool(rollTool, mcp.NewStructuredToolHandler(s.handleRollNext))

	// TOOL: sample_story
	sampleTool := mcp.NewTool("sample_story",
		mcp.WithDescription("Generate a complete story from a start word using a seeded pseudo-random die."),
		mcp.WithString("start", mcp.Description("Start word (defaults to the corpus' first start word)")),
		mcp.WithNumber("seed", mcp.Description("Seed for the roll source (random if omitted)")),
		mcp.WithOutputSchema[StoryResponse](),
	)
	s.mcpServer.AddTool(sampleTool, mcp.NewStructuredToolHandler(s.handleSampleStory))
}

// Handler methods for structured tools

type inspectArgs struct {
	Word string `mapstructure:"word"`
}

type rollArgs struct {
	Word string `mapstructure:"word"`
	Roll int    `mapstructure:"roll"`
}

type sampleArgs struct {
	Start string `mapstructure:"start"`
	Seed  *int64 `mapstructure:"seed"`
}

// decodeArgs maps loosely-typed JSON-RPC arguments onto a typed struct.
// WeakDecode tolerates the float64 numbers JSON unmarshaling produces.
func decodeArgs(args map[string]interface{}, out any) error {
	if err := mapstructure.WeakDecode(args, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) handleInspectWord(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.WordTransitions, error) {
	var a inspectArgs
	if err := decodeArgs(args, &a); err != nil {
		return domain.WordTransitions{}, err
	}

	entries, err := s.engine.Model().Get(domain.Token(a.Word))
	if err != nil {
		return domain.WordTransitions{}, fmt.Errorf("inspect failed: %w", err)
	}

	return domain.WordTransitions{Word: domain.Token(a.Word), Entries: entries}, nil
}

func (s *Server) handleRollNext(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	var a rollArgs
	if err := decodeArgs(args, &a); err != nil {
		return StepResponse{}, err
	}

	next, err := s.engine.Step(domain.Token(a.Word), a.Roll)
	if err != nil {
		return StepResponse{}, fmt.Errorf("roll failed: %w", err)
	}

	return StepResponse{Next: string(next), Finished: next.IsEnd()}, nil
}

func (s *Server) handleSampleStory(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StoryResponse, error) {
	var a sampleArgs
	if err := decodeArgs(args, &a); err != nil {
		return StoryResponse{}, err
	}

	start := s.engine.DefaultStart()
	if a.Start != "" {
		start = domain.Token(a.Start)
	}

	var seed int64
	if a.Seed != nil {
		seed = *a.Seed
	} else {
		generated, err := dice.NewSeed()
		if err != nil {
			return StoryResponse{}, fmt.Errorf("seed generation failed: %w", err)
		}
		seed = generated
	}

	story, err := s.engine.Preview(start, dice.NewPseudoSource(seed))
	if err != nil {
		return StoryResponse{}, fmt.Errorf("sample failed: %w", err)
	}

	return StoryResponse{Story: story, Sentence: story.Sentence(), Seed: seed}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: dicetale://model
	s.mcpServer.AddResource(mcp.NewResource("dicetale://model", "Current Transition Model",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Model())
		if err != nil {
			return nil, fmt.Errorf("failed to serialize model: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "dicetale://model",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
