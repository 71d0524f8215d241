package ghttpd

import (
	"os"
	"strings"
)

type (
	// MIMEType is a type/subtype pair used for the Content-Type header.
	MIMEType struct {
		Type    string
		Subtype string
	}

	// ContentLoader resolves a URI path to raw content bytes or an error
	// when there is no such content.
	ContentLoader func(uri string) ([]byte, error)
)

// LoadContent is the default ContentLoader; it reads uri from the
// filesystem. Could be images, HTML files, etc.
func LoadContent(uri string) ([]byte, error) {
	return os.ReadFile(uri)
}

// MIMETypeByName infers a MIMEType from the filename extension.
// Defaults to text/plain.
func MIMETypeByName(filename string) MIMEType {
	parts := strings.Split(filename, ".")
	switch parts[len(parts)-1] {
	case "html":
		return MIMEType{Type: "text", Subtype: "html"}
	case "png":
		return MIMEType{Type: "image", Subtype: "png"}
	case "jpg":
		return MIMEType{Type: "image", Subtype: "jpeg"}
	case "json":
		return MIMEType{Type: "application", Subtype: "json"}
	}
	return MIMEType{Type: "text", Subtype: "plain"}
}

func (m MIMEType) String() string {
	return m.Type + "/" + m.Subtype
}

// ContentTypeLine returns a Content-Type header line for m,
// CRLF included.
func ContentTypeLine(m MIMEType) string {
	return "Content-Type: " + m.String() + "\r\n"
}
