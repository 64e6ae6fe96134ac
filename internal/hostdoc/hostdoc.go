// Package hostdoc embeds a serialized graph model into the HTML page that
// hosts the GoJS editor. The page keeps the model in a textarea; the editor
// loads it from there and writes it back on save.
package hostdoc

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ModelElementID is the id of the textarea that holds the model JSON.
const ModelElementID = "mySavedModel"

// ErrNoModelElement is returned when a host document has no model textarea.
var ErrNoModelElement = errors.New("host document has no #" + ModelElementID + " textarea")

//go:embed template.html
var template []byte

// Template returns a copy of the page used to seed a missing host document.
func Template() []byte {
	return bytes.Clone(template)
}

// Splice returns page with the content of its model textarea replaced by
// model. Everything else in the page is preserved.
func Splice(page, model []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse host document: %w", err)
	}

	area := doc.Find("textarea#" + ModelElementID)
	if area.Length() == 0 {
		return nil, ErrNoModelElement
	}
	area.First().SetText(string(model))

	out, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render host document: %w", err)
	}
	return []byte(out), nil
}

// Extract returns the model text currently stored in page.
func Extract(page []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse host document: %w", err)
	}
	area := doc.Find("textarea#" + ModelElementID)
	if area.Length() == 0 {
		return "", ErrNoModelElement
	}
	return area.First().Text(), nil
}
