package observation

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

var colorToken = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b|(?i:rgba?)\([^)]*\)`)

// ParseHTML derives an observation from static HTML. Elements are nodes with
// their own text or an inline style, excluding the html and body roots, in
// document order. font-family is inherited from the nearest ancestor that
// sets it. Colors come from inline styles and <style> blocks; script content
// is ignored.
func ParseHTML(r io.Reader, pageURL string) (*domain.WebsiteObservation, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	obs := &domain.WebsiteObservation{URL: pageURL}
	Normalize(obs)

	var walk func(n *html.Node, font string)
	walk = func(n *html.Node, font string) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Noscript, atom.Template, atom.Title, atom.Meta, atom.Link:
				return
			case atom.Style:
				obs.Colors = append(obs.Colors, colorToken.FindAllString(ownText(n), -1)...)
				return
			case atom.Img:
				obs.Images = append(obs.Images, image(n))
			}

			styles, props := parseStyle(attr(n, "style"))
			if f := styles["font-family"]; f != "" {
				font = f
			}
			for _, prop := range props {
				obs.Colors = append(obs.Colors, colorToken.FindAllString(styles[prop], -1)...)
			}

			text := ownText(n)
			isRoot := n.DataAtom == atom.Html || n.DataAtom == atom.Body || n.DataAtom == atom.Head
			if !isRoot && (text != "" || len(styles) > 0) {
				if font != "" {
					if styles == nil {
						styles = map[string]string{}
					}
					styles["font-family"] = font
				}
				obs.Elements = append(obs.Elements, domain.Element{Type: n.Data, Text: text, Styles: styles})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, font)
		}
	}
	walk(doc, "")
	return obs, nil
}

// parseStyle splits an inline style attribute into lower-cased properties
// and returns the property names in declaration order. A repeated property
// keeps its first position and its last value.
func parseStyle(s string) (map[string]string, []string) {
	var (
		out   map[string]string
		order []string
	)
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		if _, seen := out[name]; !seen {
			order = append(order, name)
		}
		out[name] = value
	}
	return out, order
}

func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func image(n *html.Node) domain.Image {
	img := domain.Image{Alt: attr(n, "alt"), Src: attr(n, "src")}
	img.Width, _ = strconv.Atoi(attr(n, "width"))
	img.Height, _ = strconv.Atoi(attr(n, "height"))
	return img
}
