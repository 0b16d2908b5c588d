package lspdiag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple" // required backend for glsp

	"github.com/decycle-go/decycle/constraint"
)

const serverName = "decycle-lsp"

// Checker is what Server drives to obtain violations for a publish cycle;
// *decycle.Configuration satisfies it directly.
type Checker interface {
	Check(ctx context.Context) ([]constraint.Violation, error)
}

// Server is a diagnostics-only LSP server: its only behavior beyond the
// handshake is translating a Checker's violations into
// textDocument/publishDiagnostics notifications against a fixed report URI,
// run once on initialized and again on every didChangeWatchedFiles.
type Server struct {
	logger    *slog.Logger
	handler   protocol.Handler
	server    *server.Server
	reportURI string
	checker   Checker
}

// NewServer creates a Server that publishes checker's violations against
// reportURI, a synthetic document URI (e.g. "decycle:///report") clients can
// open to view architecture violations as inline diagnostics. If logger is
// nil, slog.Default() is used.
func NewServer(logger *slog.Logger, reportURI string, checker Checker) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger.With(slog.String("component", "lspdiag.server")),
		reportURI: reportURI,
		checker:   checker,
	}

	commonlog.Configure(0, nil)

	s.handler = protocol.Handler{
		Initialize:                     s.initialize,
		Initialized:                    s.initialized,
		Shutdown:                       s.shutdown,
		Exit:                           s.exit,
		WorkspaceDidChangeWatchedFiles: s.workspaceDidChangeWatchedFiles,
	}
	s.server = server.NewServer(&s.handler, serverName, false)

	return s
}

// Handler returns the protocol handler, for testing without a transport.
func (s *Server) Handler() *protocol.Handler {
	return &s.handler
}

// RunStdio runs the server using stdio transport.
func (s *Server) RunStdio() error {
	if err := s.server.RunStdio(); err != nil {
		return fmt.Errorf("run stdio: %w", err)
	}
	return nil
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.logger.Info("initialize request received")
	capabilities := s.handler.CreateServerCapabilities()
	version := "dev"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.logger.Info("server initialized")
	s.publish(ctx)
	return nil
}

func (s *Server) workspaceDidChangeWatchedFiles(ctx *glsp.Context, params *protocol.DidChangeWatchedFilesParams) error {
	s.logger.Debug("watched files changed, re-checking")
	s.publish(ctx)
	return nil
}

// publish runs a fresh Check and notifies the client, logging (rather than
// failing the request) if Check errors, since publishDiagnostics has no
// response to carry an error back on.
func (s *Server) publish(ctx *glsp.Context) {
	var notify Notifier
	if ctx != nil {
		notify = func(method string, params any) { ctx.Notify(method, params) }
	}
	if _, err := s.Publish(context.Background(), notify); err != nil {
		s.logger.Warn("check failed", slog.String("error", err.Error()))
	}
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.logger.Info("shutdown request received")
	return nil
}

func (s *Server) exit(ctx *glsp.Context) error {
	s.logger.Info("exit notification received")
	return nil
}

// Notifier matches glsp.Context.Notify's signature, letting callers publish
// without a live *glsp.Context (e.g. in tests).
type Notifier func(method string, params any)

// Publish runs the server's Checker and publishes the resulting violations
// as diagnostics against the report URI via notify. The violations are also
// returned so a caller can additionally render them (e.g. via
// report.FormatAll) without checking twice. Exported for callers driving the
// server outside of the glsp request lifecycle (e.g. a CLI's one-shot mode).
func (s *Server) Publish(ctx context.Context, notify Notifier) ([]constraint.Violation, error) {
	violations, err := s.checker.Check(ctx)
	if err != nil {
		return nil, err
	}

	if notify != nil {
		notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         s.reportURI,
			Diagnostics: ToDiagnostics(violations),
		})
	}

	return violations, nil
}
