package verify

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/doclink/internal/errors"
)

// Link represents an extracted link from HTML content.
type Link struct {
	URL       string // the href/src value
	Tag       string // HTML tag (a, img, script, link)
	Attribute string // attribute containing the link
}

// linkAttributes maps tags to the attribute that carries their target.
var linkAttributes = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"iframe": "src",
}

// ExtractLinks extracts all links from an HTML file.
func ExtractLinks(htmlPath string) ([]Link, error) {
	file, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityError, "open HTML file").WithContext("path", htmlPath)
	}
	defer func() {
		_ = file.Close() // read-only
	}()
	return ExtractLinksFromReader(file)
}

// ExtractLinksFromReader extracts all links from an HTML reader.
func ExtractLinksFromReader(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, errors.SeverityError, "parse HTML")
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttributes[strings.ToLower(n.Data)]; ok {
				for _, a := range n.Attr {
					if strings.EqualFold(a.Key, attr) && a.Val != "" {
						links = append(links, Link{URL: a.Val, Tag: n.Data, Attribute: a.Key})
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}
