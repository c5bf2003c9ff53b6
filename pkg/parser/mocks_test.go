package parser

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type mockReader struct {
	files  map[string]string
	opened []string
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.opened = append(m.opened, uri)
	content, ok := m.files[uri]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", uri)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

type mockHTTPClient struct {
	data    []byte
	err     error
	fetched []string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.fetched = append(m.fetched, url)
	return m.data, m.err
}
