package ghttpd

import (
	"errors"
	"regexp"
)

type (
	// Method is an HTTP request method. Only GET is modeled; anything
	// else fails to parse.
	Method int

	// Version is an HTTP protocol version. Only HTTP/1.1 is modeled.
	Version int

	// RequestLine is the parsed first line of a request,
	// `METHOD SP URI SP VERSION`. Immutable once built.
	RequestLine struct {
		Method  Method
		URI     string
		Version Version
	}

	// Request is a parsed HTTP request. Only the request line is kept;
	// headers and body may sit in the read buffer but are never used.
	Request struct {
		Line RequestLine
	}
)

const (
	MethodGet Method = iota
)

const (
	Version11 Version = iota
)

var (
	ErrUnknownMethod  = errors.New("ghttpd: unknown http method")
	ErrUnknownVersion = errors.New("ghttpd: unknown http version")
	ErrMalformedLine  = errors.New("ghttpd: malformed request line")
)

// requestLineRE captures method, uri and version tokens. The token shapes
// are loose on purpose; the enum parsers below do the strict matching.
var requestLineRE = regexp.MustCompile(`([A-Z]+) (.*) (HTTP/[0-9.]+)`)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	}
	return "UNKNOWN"
}

func (v Version) String() string {
	switch v {
	case Version11:
		return "HTTP/1.1"
	}
	return "UNKNOWN"
}

// ParseMethod parses a method token. Returns ErrUnknownMethod for any
// method but GET.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "GET":
		return MethodGet, nil
	}
	return 0, ErrUnknownMethod
}

// ParseVersion parses a version token. Returns ErrUnknownVersion for any
// version but HTTP/1.1.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "HTTP/1.1":
		return Version11, nil
	}
	return 0, ErrUnknownVersion
}

// ParseRequestLine parses `METHOD SP URI SP VERSION` out of s.
func ParseRequestLine(s string) (RequestLine, error) {
	caps := requestLineRE.FindStringSubmatch(s)
	if caps == nil {
		return RequestLine{}, ErrMalformedLine
	}
	method, err := ParseMethod(caps[1])
	if err != nil {
		return RequestLine{}, err
	}
	version, err := ParseVersion(caps[3])
	if err != nil {
		return RequestLine{}, err
	}
	return RequestLine{
		Method:  method,
		URI:     caps[2],
		Version: version,
	}, nil
}

// ParseRequest parses a raw request. Everything after the request line is
// ignored.
func ParseRequest(s string) (Request, error) {
	line, err := ParseRequestLine(s)
	if err != nil {
		return Request{}, err
	}
	return Request{Line: line}, nil
}
