package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/screencap/internal/capture"
	"github.com/mj1618/screencap/internal/config"
	"github.com/mj1618/screencap/internal/pipeline"
	"github.com/mj1618/screencap/internal/platform"
	"github.com/mj1618/screencap/internal/version"
	"github.com/mj1618/screencap/internal/window"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the platform provider and config.
// Handlers run the same pipeline as the CLI with a discard sink, so tool
// results never carry console chatter. The pipeline holds no shared mutable
// state, so concurrent tool calls need no locking.
type mcpServer struct {
	provider *platform.Provider
	cfg      config.Config
	mcp      *mcpserver.MCPServer
}

// newMCPServer creates and configures an MCP server with the screencap tools.
func newMCPServer() (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider, cfg: cfg}
	s.mcp = mcpserver.NewMCPServer("screencap", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *mcpServer) registerTools() {
	// list_apps
	s.mcp.AddTool(
		mcp.NewTool("list_apps",
			mcp.WithDescription("List the names of all visible applications"),
		),
		s.handleListApps,
	)

	// screenshot_app
	s.mcp.AddTool(
		mcp.NewTool("screenshot_app",
			mcp.WithDescription("Capture a screenshot of an application window. When multiple windows match and auto_select is false, returns a list of choices for screenshot_by_choice."),
			mcp.WithString("app_name", mcp.Description("Application name or partial name to search for"), mcp.Required()),
			mcp.WithBoolean("auto_select", mcp.Description("Automatically select the first matching window")),
			mcp.WithString("output_file", mcp.Description("Custom output file path")),
			mcp.WithNumber("scale", mcp.Description("Scale factor 0.1-1.0 for the saved image")),
		),
		s.handleScreenshotApp,
	)

	// screenshot_by_choice
	s.mcp.AddTool(
		mcp.NewTool("screenshot_by_choice",
			mcp.WithDescription("Capture a screenshot by selecting a specific window choice returned by screenshot_app. Choices carry 0-based ids and are recomputed fresh, so they may shift if windows changed in between."),
			mcp.WithString("app_name", mcp.Description("Application name used in the original query"), mcp.Required()),
			mcp.WithNumber("choice_id", mcp.Description("Window choice id from the choices list"), mcp.Required()),
			mcp.WithString("output_file", mcp.Description("Custom output file path")),
			mcp.WithNumber("scale", mcp.Description("Scale factor 0.1-1.0 for the saved image")),
		),
		s.handleScreenshotByChoice,
	)
}

// windowInfo describes the captured window in tool results.
type windowInfo struct {
	App   string `yaml:"app"`
	Title string `yaml:"title"`
	ID    string `yaml:"id"`
	Size  string `yaml:"size"`
}

type captureOutcome struct {
	Success    bool       `yaml:"success"`
	Window     windowInfo `yaml:"window"`
	OutputFile string     `yaml:"output_file"`
}

type choiceEntry struct {
	ID    int    `yaml:"id"`
	App   string `yaml:"app"`
	Title string `yaml:"title"`
	Size  string `yaml:"size"`
}

type choicesResult struct {
	Choices []choiceEntry `yaml:"choices"`
	Message string        `yaml:"message"`
}

func resultText(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func (s *mcpServer) handleListApps(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apps, err := s.provider.AppLister.VisibleApps()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sort.Strings(apps)
	return resultText(apps), nil
}

func (s *mcpServer) handleScreenshotApp(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	appName := stringParam(params, "app_name", "")
	if appName == "" {
		return mcp.NewToolResultError("app_name is required"), nil
	}
	autoSelect := boolParam(params, "auto_select", false)
	outputFile := stringParam(params, "output_file", "")
	scale := floatParam(params, "scale", 0)

	records, err := pipeline.Resolve(s.provider, appName, pipeline.Discard)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(records) > 1 && !autoSelect {
		choices := make([]choiceEntry, len(records))
		for i, rec := range records {
			choices[i] = choiceEntry{ID: i, App: rec.App, Title: rec.DisplayTitle(), Size: rec.Size()}
		}
		return resultText(choicesResult{
			Choices: choices,
			Message: "Multiple windows found. Use auto_select=true to select the first one automatically, or screenshot_by_choice with a choice id.",
		}), nil
	}

	return s.capture(records[0], outputFile, scale)
}

func (s *mcpServer) handleScreenshotByChoice(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	appName := stringParam(params, "app_name", "")
	if appName == "" {
		return mcp.NewToolResultError("app_name is required"), nil
	}
	choiceID := intParam(params, "choice_id", -1)
	outputFile := stringParam(params, "output_file", "")
	scale := floatParam(params, "scale", 0)

	records, err := pipeline.Resolve(s.provider, appName, pipeline.Discard)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if choiceID < 0 || choiceID >= len(records) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid choice id %d (have %d windows)", choiceID, len(records))), nil
	}

	return s.capture(records[choiceID], outputFile, scale)
}

// capture runs the dispatcher for the selected record and wraps the outcome.
func (s *mcpServer) capture(selected window.Record, outputFile string, scale float64) (*mcp.CallToolResult, error) {
	dispatcher := &capture.Dispatcher{
		Capturer: s.provider.Capturer,
		Dir:      s.cfg.ScreenshotDir,
		Scale:    scale,
	}
	dest, err := dispatcher.Capture(selected.ID, selected.App, outputFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("screenshot failed: %v", err)), nil
	}

	return resultText(captureOutcome{
		Success: true,
		Window: windowInfo{
			App:   selected.App,
			Title: selected.DisplayTitle(),
			ID:    selected.ID,
			Size:  selected.Size(),
		},
		OutputFile: dest,
	}), nil
}
