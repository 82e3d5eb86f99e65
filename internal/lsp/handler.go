package lsp

import (
	"pamfold/internal/document"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	ls.log.Info("server initialized")
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	ls.log.Info("server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	if err := ls.docs.Open(uri, params.TextDocument.Text); err != nil {
		return err
	}
	ls.log.Debugf("opened %s", uri)
	return nil
}

func (ls *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	for _, change := range params.ContentChanges {
		switch contentChange := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			if err := ls.docs.Replace(uri, contentChange.Text); err != nil {
				return err
			}

		case protocol.TextDocumentContentChangeEvent:
			if contentChange.Range == nil {
				if err := ls.docs.Replace(uri, contentChange.Text); err != nil {
					return err
				}
				continue
			}
			docChange := document.Change{
				Start: document.Position{
					Line:      uint32(contentChange.Range.Start.Line),
					Character: uint32(contentChange.Range.Start.Character),
				},
				End: document.Position{
					Line:      uint32(contentChange.Range.End.Line),
					Character: uint32(contentChange.Range.End.Character),
				},
				Text: contentChange.Text,
			}
			if err := ls.docs.ApplyChanges(uri, []document.Change{docChange}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (ls *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	if err := ls.docs.Close(uri); err != nil {
		// the host may close a document we never saw; not fatal
		ls.log.Errorf("close %s: %s", uri, err.Error())
	}
	return nil
}

func (ls *Server) textDocumentFoldingRange(
	context *glsp.Context,
	params *protocol.FoldingRangeParams,
) ([]protocol.FoldingRange, error) {
	folds, err := ls.docs.Folds(params.TextDocument.URI)
	if err != nil {
		// the host may request folds for a document it already closed
		ls.log.Errorf("folding range: %s", err.Error())
		return nil, nil
	}

	kind := string(protocol.FoldingRangeKindRegion)
	ranges := make([]protocol.FoldingRange, len(folds))
	for i, f := range folds {
		ranges[i] = protocol.FoldingRange{
			StartLine: protocol.UInteger(f.Start),
			EndLine:   protocol.UInteger(f.End),
			Kind:      &kind,
		}
	}
	return ranges, nil
}
