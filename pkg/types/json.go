package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of strings as a JSON column so the same
// model works under both Postgres and SQLite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("string list: %w", err)
	}
	return string(raw), nil
}

func (l *StringList) Scan(value any) error {
	raw, err := rawJSON(value, "string list")
	if err != nil {
		return err
	}
	if raw == nil {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// SocialLinks holds the site owner's contact handles. Keys absent from an
// update payload are left untouched by the config merge.
type SocialLinks struct {
	Email     string `json:"email,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

func (s SocialLinks) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("social links: %w", err)
	}
	return string(raw), nil
}

func (s *SocialLinks) Scan(value any) error {
	raw, err := rawJSON(value, "social links")
	if err != nil {
		return err
	}
	if raw == nil {
		*s = SocialLinks{}
		return nil
	}
	return json.Unmarshal(raw, s)
}

// ColorPalette carries the theme colors applied by the frontend as CSS
// variables. Values are free-form CSS color strings.
type ColorPalette struct {
	Primary    string `json:"primary,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	TextMuted  string `json:"textMuted,omitempty"`
	Success    string `json:"success,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (c ColorPalette) Value() (driver.Value, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("color palette: %w", err)
	}
	return string(raw), nil
}

func (c *ColorPalette) Scan(value any) error {
	raw, err := rawJSON(value, "color palette")
	if err != nil {
		return err
	}
	if raw == nil {
		*c = ColorPalette{}
		return nil
	}
	return json.Unmarshal(raw, c)
}

func rawJSON(value any, label string) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%s: unsupported scan type %T", label, value)
	}
}
