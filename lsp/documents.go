package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/parser"
	"github.com/dhamidi/yomi/tspath"
)

// Document is an open editor buffer together with its latest parse.
type Document struct {
	URI     string
	Path    string
	Version int32
	Text    string
	File    *ast.SourceFile
}

// DocumentStore tracks open documents. The editor's buffer contents win
// over the filesystem; fs is only consulted when a save event arrives
// without inline text.
type DocumentStore struct {
	mu   sync.RWMutex
	fs   afero.Fs
	docs map[string]*Document
}

func NewDocumentStore(fs afero.Fs) *DocumentStore {
	return &DocumentStore{
		fs:   fs,
		docs: make(map[string]*Document),
	}
}

func (s *DocumentStore) Open(uri string, version int32, text string) *Document {
	path := uriToPath(uri)
	doc := &Document{
		URI:     uri,
		Path:    path,
		Version: version,
		Text:    text,
		File:    parser.ParseSourceFile(path, text, tspath.ScriptKindUnknown),
	}
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

func (s *DocumentStore) Update(uri string, version int32, text string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		doc = &Document{URI: uri, Path: uriToPath(uri)}
		s.docs[uri] = doc
	}
	doc.Version = version
	doc.Text = text
	doc.File = parser.ParseSourceFile(doc.Path, text, tspath.ScriptKindUnknown)
	return doc
}

// Reload re-reads the document from the filesystem, for save events
// that carry no text.
func (s *DocumentStore) Reload(uri string) *Document {
	path := uriToPath(uri)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil
	}
	return s.Update(uri, 0, string(data))
}

func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}
