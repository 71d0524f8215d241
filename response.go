package ghttpd

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

type (
	// FileHandler is a RequestHandler that serves GET requests from a
	// content root. The zero value serves from the process working
	// directory. All fields are read-only after construction, which keeps
	// Serve safe to call from any worker.
	FileHandler struct {
		// Root is prepended to request paths when set.
		Root string

		// NotFound is the URI of the page embedded in 404 responses.
		// Defaults to "404.html". When that page itself cannot be
		// loaded a literal fallback body is used.
		NotFound string

		// Load overrides content loading. Defaults to LoadContent.
		Load ContentLoader
	}
)

var (
	ErrUnknownStatusCode = errors.New("ghttpd: unknown status code")
	ErrInvalidEncoding   = errors.New("ghttpd: request is not valid utf-8")
)

const notFoundFallback = "404 - Page not found"

// StatusLine builds `HTTP/1.1 <code> <reason>\r\n` for code. The reason
// table is net/http's. An unmapped code is an error, never a guessed line.
func StatusLine(code int) (string, error) {
	reason := http.StatusText(code)
	if reason == "" {
		return "", ErrUnknownStatusCode
	}
	return fmt.Sprintf("HTTP/1.1 %d %s\r\n", code, reason), nil
}

// Serve maps one raw request buffer to a response. An unparsable request
// becomes a 501 response; a missing resource becomes a 404 response; a
// buffer that is not valid UTF-8 is a handler error, the server drops the
// connection without a response.
func (h *FileHandler) Serve(request []byte) ([]byte, error) {
	if !utf8.Valid(request) {
		return nil, ErrInvalidEncoding
	}
	req, err := ParseRequest(string(request))
	if err != nil {
		return h.notImplemented()
	}
	switch req.Line.Method {
	case MethodGet:
		return h.get(req)
	}
	return h.notImplemented()
}

func (h *FileHandler) get(req Request) ([]byte, error) {
	name := strings.TrimPrefix(req.Line.URI, "/")
	content, err := h.load(name)
	if err != nil {
		return h.notFound()
	}
	status, err := StatusLine(http.StatusOK)
	if err != nil {
		return nil, err
	}
	var msg bytes.Buffer
	msg.WriteString(status)
	msg.WriteString(ContentTypeLine(MIMETypeByName(name)))
	msg.WriteString("\r\n")
	msg.Write(content)
	return msg.Bytes(), nil
}

func (h *FileHandler) notFound() ([]byte, error) {
	status, err := StatusLine(http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	page, err := h.load(h.notFoundURI())
	if err != nil {
		return []byte(status + "\r\n" + notFoundFallback), nil
	}
	var msg bytes.Buffer
	msg.WriteString(status)
	msg.WriteString("\r\n")
	msg.Write(page)
	return msg.Bytes(), nil
}

func (h *FileHandler) notImplemented() ([]byte, error) {
	status, err := StatusLine(http.StatusNotImplemented)
	if err != nil {
		return nil, err
	}
	return []byte(status + "\r\n"), nil
}

func (h *FileHandler) notFoundURI() string {
	if h.NotFound != "" {
		return h.NotFound
	}
	return "404.html"
}

func (h *FileHandler) load(name string) ([]byte, error) {
	load := h.Load
	if load == nil {
		load = LoadContent
	}
	if h.Root != "" {
		name = filepath.Join(h.Root, name)
	}
	return load(name)
}
