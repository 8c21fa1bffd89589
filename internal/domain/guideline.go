package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BrandGuideline is the canonical rule set for one brand. Sections are
// optional: a nil section means the guideline says nothing about it.
type BrandGuideline struct {
	ID          string           `json:"id"                   yaml:"id"`
	BrandName   string           `json:"brandName"            yaml:"brand_name"`
	CompanyName string           `json:"companyName"          yaml:"company_name"`
	Industry    string           `json:"industry,omitempty"   yaml:"industry,omitempty"`
	Colors      *ColorGuide      `json:"colors,omitempty"     yaml:"colors,omitempty"`
	Typography  *TypographyGuide `json:"typography,omitempty" yaml:"typography,omitempty"`
	Logo        *LogoGuide       `json:"logo,omitempty"       yaml:"logo,omitempty"`
	Tone        *ToneGuide       `json:"tone,omitempty"       yaml:"tone,omitempty"`
}

// GuidelineSummary is the identifying part of a guideline, which is all the
// brand matcher looks at.
type GuidelineSummary struct {
	ID          string `json:"id"`
	BrandName   string `json:"brandName"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry,omitempty"`
}

func (g BrandGuideline) Summary() GuidelineSummary {
	return GuidelineSummary{
		ID:          g.ID,
		BrandName:   g.BrandName,
		CompanyName: g.CompanyName,
		Industry:    g.Industry,
	}
}

// Validate checks the identifying fields every catalog entry must carry.
func (g BrandGuideline) Validate() error {
	if g.BrandName == "" {
		return fmt.Errorf("guideline %q: brand name must not be empty", g.ID)
	}
	if g.CompanyName == "" {
		return fmt.Errorf("guideline %q: company name must not be empty", g.ID)
	}
	return nil
}

// Summaries projects guidelines onto their summaries, preserving order.
func Summaries(guidelines []BrandGuideline) []GuidelineSummary {
	out := make([]GuidelineSummary, 0, len(guidelines))
	for _, g := range guidelines {
		out = append(out, g.Summary())
	}
	return out
}

// ColorSpec describes one named palette entry.
type ColorSpec struct {
	Hex   string `json:"hex"             yaml:"hex"`
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Usage string `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// ColorGuide holds the categorized palettes and the forbidden set.
type ColorGuide struct {
	Primary   map[string]ColorSpec `json:"primary,omitempty"   yaml:"primary,omitempty"`
	Semantic  map[string]ColorSpec `json:"semantic,omitempty"  yaml:"semantic,omitempty"`
	Neutral   map[string]ColorSpec `json:"neutral,omitempty"   yaml:"neutral,omitempty"`
	Forbidden []string             `json:"forbidden,omitempty" yaml:"forbidden,omitempty"`
}

// FontSet lists the approved font families.
type FontSet struct {
	Primary   string `json:"primary,omitempty"   yaml:"primary,omitempty"`
	Fallback  string `json:"fallback,omitempty"  yaml:"fallback,omitempty"`
	Monospace string `json:"monospace,omitempty" yaml:"monospace,omitempty"`
}

type TypographyGuide struct {
	Fonts FontSet `json:"fonts" yaml:"fonts"`
}

type LogoGuide struct {
	Variants map[string]string `json:"variants,omitempty" yaml:"variants,omitempty"`
	Rules    []string          `json:"rules,omitempty"    yaml:"rules,omitempty"`
}

type ToneGuide struct {
	Style     string   `json:"style,omitempty"     yaml:"style,omitempty"`
	Forbidden []string `json:"forbidden,omitempty" yaml:"forbidden,omitempty"`
}

// Guideline sections arrive either as JSON objects or as JSON strings holding
// a serialized object (storage rows written by the extraction pipeline). Both
// decode to the same value. Null and empty-string sections decode to nil.

func (g *BrandGuideline) UnmarshalJSON(data []byte) error {
	type plain BrandGuideline
	var aux struct {
		plain
		Colors     json.RawMessage `json:"colors"`
		Typography json.RawMessage `json:"typography"`
		Logo       json.RawMessage `json:"logo"`
		Tone       json.RawMessage `json:"tone"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	out := BrandGuideline(aux.plain)
	var err error
	if out.Colors, err = DecodeSection[ColorGuide](aux.Colors); err != nil {
		return err
	}
	if out.Typography, err = DecodeSection[TypographyGuide](aux.Typography); err != nil {
		return err
	}
	if out.Logo, err = DecodeSection[LogoGuide](aux.Logo); err != nil {
		return err
	}
	if out.Tone, err = DecodeSection[ToneGuide](aux.Tone); err != nil {
		return err
	}
	*g = out
	return nil
}

// DecodeSection decodes one raw guideline section. Absent, null and
// empty-string sections return nil, including serialized "null" and "".
func DecodeSection[T any](raw []byte) (*T, error) {
	data, err := unwrapSection(raw)
	if err != nil || data == nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding guideline section: %w", err)
	}
	return &v, nil
}

func (c *ColorGuide) UnmarshalJSON(data []byte) error {
	type plain ColorGuide
	return decodeSection(data, (*plain)(c))
}

func (t *TypographyGuide) UnmarshalJSON(data []byte) error {
	type plain TypographyGuide
	return decodeSection(data, (*plain)(t))
}

func (l *LogoGuide) UnmarshalJSON(data []byte) error {
	type plain LogoGuide
	return decodeSection(data, (*plain)(l))
}

func (t *ToneGuide) UnmarshalJSON(data []byte) error {
	type plain ToneGuide
	return decodeSection(data, (*plain)(t))
}

func decodeSection(data []byte, v any) error {
	data, err := unwrapSection(data)
	if err != nil || data == nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding guideline section: %w", err)
	}
	return nil
}

// unwrapSection strips one level of string serialization and returns nil
// for sections that carry nothing.
func unwrapSection(raw []byte) ([]byte, error) {
	data := bytes.TrimSpace(raw)
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("decoding guideline section: %w", err)
		}
		data = bytes.TrimSpace([]byte(inner))
	}
	switch string(data) {
	case "", "null":
		return nil, nil
	}
	return data, nil
}
