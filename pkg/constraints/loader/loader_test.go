package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-validate/pkg/constraints/loader"
)

const jsonDoc = `{
  "Person": {
    "firstName": {"required": {"message": "First name is required."}}
  }
}`

const yamlDoc = `
Person:
  firstName:
    required:
      message: First name is required.
`

func TestLoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"constraints.yaml": {Data: []byte(yamlDoc)},
	}
	l := loader.New(loader.Options{FileSystem: files})

	spec, err := l.Load(context.Background(), loader.SourceFromFS("constraints.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := spec["Person"]["firstName"]["required"].Message(); got != "First name is required." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestLoadFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jsonDoc))
	}))
	defer server.Close()

	l := loader.New(loader.Options{AllowHTTP: true})
	spec, err := l.Load(context.Background(), loader.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(spec["Person"]) != 1 {
		t.Fatalf("unexpected spec %v", spec)
	}
}

func TestLoadHTTPDisabledByDefault(t *testing.T) {
	l := loader.New(loader.Options{})
	_, err := l.Load(context.Background(), loader.SourceFromURL("http://example.com/constraints.json"))
	if err == nil {
		t.Fatal("expected http loads to be rejected when not enabled")
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	l := loader.New(loader.Options{AllowHTTP: true})
	if _, err := l.Load(context.Background(), loader.SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestLoadNilSource(t *testing.T) {
	l := loader.New(loader.Options{})
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	files := fstest.MapFS{"c.json": {Data: []byte(jsonDoc)}}
	l := loader.New(loader.Options{FileSystem: files})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx, loader.SourceFromFS("c.json")); err == nil {
		t.Fatal("expected context cancellation to abort the load")
	}
}

func TestSourceFromURLPanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid URL")
		}
	}()
	loader.SourceFromURL("://not-a-url")
}
