package ghttpd_test

import (
	"os"
	"path/filepath"
	"testing"

	"ghttpd"
)

func TestMIMETypeByName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		filename string
		expected string
	}{
		{filename: "index.html", expected: "text/html"},
		{filename: "logo.png", expected: "image/png"},
		{filename: "photo.jpg", expected: "image/jpeg"},
		{filename: "data.json", expected: "application/json"},
		{filename: "notes.txt", expected: "text/plain"},
		{filename: "content.pn", expected: "text/plain"},
		{filename: "noextension", expected: "text/plain"},
		{filename: "", expected: "text/plain"},
	}
	for _, test := range tests {
		actual := ghttpd.MIMETypeByName(test.filename).String()
		if actual != test.expected {
			t.Errorf("ghttpd_test: MIMETypeByName(%q) expected: %s actual: %s\n",
				test.filename, test.expected, actual)
		}
	}
}

func TestContentTypeLine(t *testing.T) {
	t.Parallel()
	actual := ghttpd.ContentTypeLine(ghttpd.MIMETypeByName("a.html"))
	if actual != "Content-Type: text/html\r\n" {
		t.Errorf("ghttpd_test: ContentTypeLine expected: text/html actual: %q\n", actual)
	}
}

func TestLoadContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.html")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("ghttpd_test: err: %+v\n", err)
	}
	content, err := ghttpd.LoadContent(path)
	if err != nil || string(content) != "hello" {
		t.Errorf("ghttpd_test: LoadContent expected: hello, nil actual: %q, %+v\n", content, err)
	}
	_, err = ghttpd.LoadContent(filepath.Join(dir, "non_existing.png"))
	if err == nil {
		t.Errorf("ghttpd_test: LoadContent expected: error actual: nil\n")
	}
}
