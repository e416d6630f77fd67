package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/railgate/railgate/pkg/stations"
)

// ProtocolVersion is the MCP streamable HTTP protocol revision this server
// speaks.
const ProtocolVersion = "2025-03-26"

const (
	serverName    = "railgate-mcp-server"
	serverVersion = "1.0.0"

	keepAliveInterval = 30 * time.Second
	sessionHeader     = "Mcp-Session-Id"
)

// Server exposes the tool registry over the MCP streamable HTTP transport:
// JSON-RPC 2.0 on POST /mcp, SSE keepalive streams on GET /mcp and /sse,
// session teardown on DELETE /mcp.
type Server struct {
	registry *Registry
	sessions *SessionRegistry
	store    *stations.Store
}

func NewServer(registry *Registry, store *stations.Store) *Server {
	return &Server{
		registry: registry,
		sessions: NewSessionRegistry(),
		store:    store,
	}
}

func (s *Server) newApp() *fiber.App {
	webApp := fiber.New(fiber.Config{DisableStartupMessage: true})
	webApp.Use(NewLogger())
	webApp.Use(corsHeaders)

	webApp.Get("/", s.getInfo)
	webApp.Get("/health", s.getHealth)
	webApp.Get("/schema/tools", s.getToolsSchema)

	webApp.Post("/mcp", s.postMCP)
	webApp.Get("/mcp", s.getMCPStream)
	webApp.Delete("/mcp", s.deleteMCP)
	webApp.Get("/sse", s.getSSE)

	return webApp
}

func (s *Server) SetupServer(listen string) error {
	webApp := s.newApp()

	log.Info().Str("listen", listen).Str("protocol", ProtocolVersion).Msg("Starting MCP server")

	return webApp.Listen(listen)
}

func corsHeaders(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, DELETE, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, "+sessionHeader)

	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Next()
}

func (s *Server) getInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":             serverName,
		"version":          serverVersion,
		"status":           "running",
		"mcp_endpoint":     "/mcp",
		"protocol_version": ProtocolVersion,
		"transport":        "Streamable HTTP (" + ProtocolVersion + ")",
		"stations_loaded":  s.store.Get().Len(),
		"tools":            s.registry.Names(),
		"active_sessions":  s.sessions.Count(),
	})
}

func (s *Server) getHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "healthy",
		"timestamp":       time.Now().Format(time.RFC3339),
		"stations":        s.store.Get().Len(),
		"active_sessions": s.sessions.Count(),
	})
}

func (s *Server) getToolsSchema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tools":          s.registry.List(),
		"schema_version": "http://json-schema.org/draft-07/schema#",
	})
}

func (s *Server) postMCP(c *fiber.Ctx) error {
	var request Request
	if err := json.Unmarshal(c.Body(), &request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(NewError(nil, CodeParseError, "Parse error", nil))
	}

	if request.JSONRPC != JSONRPCVersion {
		return c.Status(fiber.StatusBadRequest).JSON(NewError(request.ID, CodeInvalidRequest, "Invalid JSON-RPC 2.0 message", nil))
	}
	if request.Method == "" {
		return c.Status(fiber.StatusBadRequest).JSON(NewError(request.ID, CodeInvalidRequest, "Method is required", nil))
	}

	log.Debug().Str("method", request.Method).Interface("id", request.ID).Msg("MCP request")

	if request.Method == "initialize" {
		return s.handleInitialize(c, request)
	}

	// Everything except initialize runs inside an established session.
	sessionID := c.Get(sessionHeader)
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(NewError(request.ID, CodeSessionError, "Bad Request: No valid session ID provided", nil))
	}
	if _, found := s.sessions.Get(sessionID); !found {
		return c.Status(fiber.StatusNotFound).JSON(NewError(request.ID, CodeSessionError, "Invalid session ID", nil))
	}

	switch {
	case request.Method == "tools/list":
		return c.JSON(NewResult(request.ID, fiber.Map{"tools": s.registry.List()}))

	case request.Method == "prompts/list":
		return c.JSON(NewResult(request.ID, fiber.Map{"prompts": promptCatalog}))

	case request.Method == "resources/list":
		return c.JSON(NewResult(request.ID, fiber.Map{"resources": []any{}}))

	case request.Method == "resources/templates/list":
		return c.JSON(NewResult(request.ID, fiber.Map{"templates": templateCatalog}))

	case request.Method == "tools/call":
		return s.handleToolCall(c, request, sessionID)

	case strings.HasPrefix(request.Method, "notifications/"):
		if request.Method == "notifications/initialized" {
			s.sessions.MarkInitialized(sessionID)
			log.Info().Str("session", sessionID).Msg("MCP handshake complete")
		}
		return c.SendStatus(fiber.StatusAccepted)

	case request.Method == "ping":
		return c.JSON(NewResult(request.ID, fiber.Map{
			"timestamp": time.Now().Format(time.RFC3339),
			"status":    "alive",
		}))

	default:
		log.Warn().Str("method", request.Method).Msg("Unknown MCP method")
		return c.Status(fiber.StatusNotFound).JSON(NewError(request.ID, CodeMethodNotFound, "Method not found", fiber.Map{"method": request.Method}))
	}
}

func (s *Server) handleInitialize(c *fiber.Ctx, request Request) error {
	var params struct {
		ProtocolVersion string `json:"protocolVersion"`
		ClientInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"clientInfo"`
	}
	json.Unmarshal(request.Params, &params)

	acceptedVersion := params.ProtocolVersion
	if acceptedVersion == "" {
		acceptedVersion = ProtocolVersion
	}

	session := s.sessions.Create(c.Get(fiber.HeaderUserAgent), c.IP(), acceptedVersion)

	log.Info().
		Str("session", session.ID).
		Str("protocol", acceptedVersion).
		Str("client", params.ClientInfo.Name).
		Msg("MCP client initialising")

	c.Set(sessionHeader, session.ID)

	return c.JSON(NewResult(request.ID, fiber.Map{
		"protocolVersion": acceptedVersion,
		"serverInfo": fiber.Map{
			"name":        serverName,
			"version":     serverVersion,
			"description": "12306火车票查询服务，提供车票查询、车站搜索、中转查询等功能",
		},
		"capabilities": fiber.Map{
			"tools":   fiber.Map{},
			"logging": fiber.Map{},
		},
	}))
}

func (s *Server) handleToolCall(c *fiber.Ctx, request Request, sessionID string) error {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	json.Unmarshal(request.Params, &params)

	if params.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(NewError(request.ID, CodeInvalidRequest, "Tool name is required", nil))
	}

	log.Info().Str("tool", params.Name).Str("session", sessionID).Msg("Executing tool")

	content, found, err := s.registry.Call(c.UserContext(), params.Name, params.Arguments)
	if !found {
		return c.JSON(NewResult(request.ID, fiber.Map{
			"content": []ContentBlock{TextContent("❌ 未知工具: " + params.Name)},
			"isError": true,
		}))
	}
	if err != nil {
		log.Error().Err(err).Str("tool", params.Name).Msg("Tool execution failed")
		return c.JSON(NewResult(request.ID, fiber.Map{
			"content": []ContentBlock{TextContent("❌ 工具执行失败: " + err.Error())},
			"isError": true,
		}))
	}

	return c.JSON(NewResult(request.ID, fiber.Map{
		"content": content,
		"isError": false,
	}))
}

func (s *Server) getMCPStream(c *fiber.Ctx) error {
	session := s.sessions.Create(c.Get(fiber.HeaderUserAgent), c.IP(), ProtocolVersion)
	log.Info().Str("session", session.ID).Msg("MCP SSE stream opened")

	s.setStreamHeaders(c)
	c.Set(sessionHeader, session.ID)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() {
			s.sessions.Delete(session.ID)
			log.Info().Str("session", session.ID).Msg("MCP SSE stream closed")
		}()

		for {
			time.Sleep(keepAliveInterval)

			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\": %q}\n\n", time.Now().Format(time.RFC3339))
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}

// getSSE is a bare keepalive stream kept for clients that probe /sse
// instead of the MCP endpoint.
func (s *Server) getSSE(c *fiber.Ctx) error {
	s.setStreamHeaders(c)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		for {
			time.Sleep(keepAliveInterval)

			fmt.Fprintf(w, "data: ping %s\n\n", time.Now().Format(time.RFC3339))
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}

func (s *Server) setStreamHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")
}

func (s *Server) deleteMCP(c *fiber.Ctx) error {
	sessionID := c.Get(sessionHeader)
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing " + sessionHeader + " header"})
	}

	if !s.sessions.Delete(sessionID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	log.Info().Str("session", sessionID).Msg("Session terminated")
	return c.SendStatus(fiber.StatusOK)
}
