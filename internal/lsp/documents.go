package lsp

import "sync"

// Document is an open document's content together with its cached analysis.
type Document struct {
	Content string
	Result  *AnalysisResult
}

// DocumentStore holds open documents keyed by URI. Documents are analyzed
// when stored, so reads never trigger a rescan.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Put stores (or replaces) a document and analyzes its content.
func (s *DocumentStore) Put(uri, content string) *Document {
	doc := &Document{
		Content: content,
		Result:  Analyze(content),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc, ok
}
