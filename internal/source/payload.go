package source

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"

	"movieshows/internal/media"
)

// embeddedSelectors locate a payload carried inside an HTML page, in priority order.
var embeddedSelectors = []string{
	`script#movieshows-content`,
	`script[type="application/json"][data-movieshows]`,
}

// errNoEmbeddedPayload is returned when an HTML page carries no payload script.
var errNoEmbeddedPayload = errors.New("html document has no embedded payload")

// DecodeBody turns fetched bytes into a payload document. HTML bodies are
// accepted only when they embed a payload script; a dev server's index
// fallback is a parse failure.
func DecodeBody(location string, data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, wrap(ErrParse, location, "decode", errors.New("empty body"))
	}
	if mimetype.Detect(data).Is("text/html") {
		embedded, err := ExtractEmbedded(data)
		if err != nil {
			return nil, wrap(ErrParse, location, "extract embedded payload", err)
		}
		data = embedded
	}
	payload, err := media.DecodePayload(data)
	if err != nil {
		return nil, wrap(ErrParse, location, "decode", err)
	}
	return payload, nil
}

// ExtractEmbedded returns the body of the first payload script in an HTML page.
func ExtractEmbedded(html []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}
	for _, selector := range embeddedSelectors {
		if script := doc.Find(selector).First(); script.Length() > 0 {
			body := strings.TrimSpace(script.Text())
			if body == "" {
				continue
			}
			return []byte(body), nil
		}
	}
	return nil, errNoEmbeddedPayload
}

// LoadInjected reads an injected payload from a JSON file or an HTML shell page.
func LoadInjected(ctx context.Context, files Fetcher, path string) (any, error) {
	data, err := files.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	return DecodeBody(path, data)
}
