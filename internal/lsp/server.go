// Package lsp serves fold ranges to editor hosts over the language server
// protocol.
package lsp

import (
	"pamfold/internal/document"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "pamfold"

var version = "0.1.0"

type Server struct {
	docs    *document.Manager
	handler *protocol.Handler
	log     commonlog.Logger
}

func NewServer(debug bool) *server.Server {
	ls := &Server{
		docs: document.NewManager(),
		log:  commonlog.GetLogger("pamfold.lsp"),
	}

	ls.handler = &protocol.Handler{
		Initialize:               ls.initialize,
		Initialized:              ls.initialized,
		Shutdown:                 ls.shutdown,
		SetTrace:                 ls.setTrace,
		TextDocumentDidOpen:      ls.textDocumentDidOpen,
		TextDocumentDidChange:    ls.textDocumentDidChange,
		TextDocumentDidClose:     ls.textDocumentDidClose,
		TextDocumentFoldingRange: ls.textDocumentFoldingRange,
	}

	return server.NewServer(ls.handler, lsName, debug)
}
