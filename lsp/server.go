// Package lsp serves diagnostics for jbind declaration files over the
// Language Server Protocol.
package lsp

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/jbind/classinfo"
	"github.com/dhamidi/jbind/decl"
)

const lsName = "jbind"

var log = commonlog.GetLogger("jbind.lsp")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	facts   *classinfo.FactBase

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

// NewServer returns a server that checks declared classes against facts.
// facts may be nil, in which case only syntax is checked.
func NewServer(version string, facts *classinfo.FactBase) *Server {
	s := &Server{
		version: version,
		facts:   facts,
		docs:    make(map[protocol.DocumentUri]string),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if s.facts != nil {
		log.Infof("checking declarations against %d classes", s.facts.Len())
	}
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.update(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
	publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.update(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}
	s.mu.Lock()
	text, ok := s.docs[params.TextDocument.URI]
	s.mu.Unlock()
	if ok {
		s.update(ctx, params.TextDocument.URI, text)
	}
	return nil
}

func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	s.docs[uri] = text
	s.mu.Unlock()

	publish(ctx, uri, Diagnose([]byte(text), uriToPath(uri), s.facts))
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnose parses a declaration and reports its syntax error, or a warning
// for every declared class missing from facts.
func Diagnose(src []byte, file string, facts *classinfo.FactBase) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	d, err := decl.Parse(src, file)
	if err != nil {
		var syntaxErr *decl.SyntaxError
		if !errors.As(err, &syntaxErr) {
			log.Errorf("%s: %s", file, err)
			return diagnostics
		}
		message := syntaxErr.Expected
		if syntaxErr.Found != "" {
			message = fmt.Sprintf("%s, found %q", message, syntaxErr.Found)
		}
		return append(diagnostics, diagnostic(syntaxErr.Span, protocol.DiagnosticSeverityError, message))
	}

	if facts == nil {
		return diagnostics
	}
	for _, pkg := range d.Packages {
		for _, c := range pkg.Classes {
			name := pkg.QualifiedName(c)
			if _, ok := facts.Lookup(name); !ok {
				diagnostics = append(diagnostics, diagnostic(c.Span, protocol.DiagnosticSeverityWarning, "no class metadata for "+name))
			}
		}
	}
	return diagnostics
}

func diagnostic(span decl.Span, severity protocol.DiagnosticSeverity, message string) protocol.Diagnostic {
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: position(span.Start),
			End:   position(span.End),
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// position converts a 1-based line and column to the protocol's 0-based form.
func position(p decl.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(max(p.Line-1, 0)),
		Character: protocol.UInteger(max(p.Column-1, 0)),
	}
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
