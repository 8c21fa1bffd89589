package domain

// WebsiteObservation is a structured snapshot of a rendered page, produced by
// a scraper. Elements, Colors and Images are always present, possibly empty.
type WebsiteObservation struct {
	URL      string    `json:"url,omitempty"`
	Elements []Element `json:"elements"`
	Colors   []string  `json:"colors"`
	Images   []Image   `json:"images"`
}

// Element is one DOM-derived record.
type Element struct {
	Type   string            `json:"type"`
	Text   string            `json:"text,omitempty"`
	Styles map[string]string `json:"styles,omitempty"`
}

// FontFamily returns the element's computed font-family, or "".
func (e Element) FontFamily() string {
	return e.Styles["font-family"]
}

type Image struct {
	Alt    string `json:"alt"`
	Src    string `json:"src"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
