package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is one untrusted upstream record. It is kept on the normalized
// item for traceability and is never mutated.
type RawRecord = map[string]any

// Kind is the coarse media classification.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// UnmarshalJSON accepts the legacy "movies" spelling used by older snapshots.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decode kind: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "tv":
		*k = KindTV
	default:
		*k = KindMovie
	}
	return nil
}

// Year is an optional release year.
type Year struct {
	Value int
	Valid bool
}

// YearOf returns a set year.
func YearOf(value int) Year {
	return Year{Value: value, Valid: true}
}

func (y Year) String() string {
	if !y.Valid {
		return ""
	}
	return strconv.Itoa(y.Value)
}

// MarshalJSON writes the year as a number, or null when absent.
func (y Year) MarshalJSON() ([]byte, error) {
	if !y.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(y.Value)), nil
}

// UnmarshalJSON treats null, empty strings and non-numeric text as absent.
func (y *Year) UnmarshalJSON(data []byte) error {
	*y = Year{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var value any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("decode year: %w", err)
	}
	if n, ok := toYear(value); ok {
		*y = YearOf(n)
	}
	return nil
}

// Item is the canonical media entity. ID is the identity used by the catalog,
// the queue and the favorite/liked sets.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        Kind      `json:"type"`
	Year        Year      `json:"year"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"videoUrl"`
	Description string    `json:"description"`
	ComingSoon  bool      `json:"comingSoon"`
	Raw         RawRecord `json:"_raw,omitempty"`
}

// PlaceholderThumbnail is shown for items without artwork.
const PlaceholderThumbnail = "https://via.placeholder.com/300x169?text=No+Image"

// DisplayThumbnail returns the thumbnail or the placeholder image.
func (i Item) DisplayThumbnail() string {
	if i.Thumbnail == "" {
		return PlaceholderThumbnail
	}
	return i.Thumbnail
}

// KindLabel is the human label for the item type.
func (i Item) KindLabel() string {
	if i.Type == KindTV {
		return "TV Show"
	}
	return "Movie"
}

// Playable reports whether the item has a video source.
func (i Item) Playable() bool {
	return i.VideoURL != ""
}

// MetaLine renders "2020 • Movie • Coming Soon". Year zero is omitted like an
// absent year.
func (i Item) MetaLine(withComingSoon bool) string {
	parts := make([]string, 0, 3)
	if i.Year.Valid && i.Year.Value != 0 {
		parts = append(parts, i.Year.String())
	}
	parts = append(parts, i.KindLabel())
	if withComingSoon && i.ComingSoon {
		parts = append(parts, "Coming Soon")
	}
	return strings.Join(parts, " • ")
}
