package media

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// extractor reads one field from a record. The boolean reports whether the
// field counts as present; absent fields let resolution fall through to the
// next alias.
type extractor func(raw RawRecord, field string) (any, bool)

type alias struct {
	field   string
	extract extractor
}

// nonNull treats any value other than a missing key or JSON null as present,
// including empty strings, zero and false.
func nonNull(raw RawRecord, field string) (any, bool) {
	value, ok := raw[field]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// datePrefix is present only for string values and yields the first four
// characters, the year of an ISO date.
func datePrefix(raw RawRecord, field string) (any, bool) {
	value, ok := raw[field].(string)
	if !ok {
		return nil, false
	}
	return prefix(value, 4), true
}

func fields(extract extractor, names ...string) []alias {
	out := make([]alias, 0, len(names))
	for _, name := range names {
		out = append(out, alias{field: name, extract: extract})
	}
	return out
}

func concat(groups ...[]alias) []alias {
	var out []alias
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// Alias tables, in priority order.
var (
	identifierAliases = fields(nonNull, "id", "tmdb_id", "tmdbId", "imdb_id", "imdbId", "slug", "key")

	fallbackTitleAliases = fields(nonNull, "title", "name", "primaryTitle")
	fallbackYearAliases  = concat(
		fields(nonNull, "year", "release_year", "releaseYear"),
		fields(datePrefix, "first_air_date"),
	)

	titleAliases = fields(nonNull, "title", "name", "primaryTitle", "original_title", "originalTitle")
	yearAliases  = concat(
		fields(nonNull, "year", "release_year", "releaseYear"),
		fields(datePrefix, "release_date", "first_air_date"),
	)

	thumbnailAliases   = fields(nonNull, "thumbnail", "poster", "posterUrl", "poster_url", "backdrop", "backdropUrl", "image", "img")
	videoAliases       = fields(nonNull, "videoUrl", "video_url", "mp4", "stream", "trailerUrl", "trailer_url")
	descriptionAliases = fields(nonNull, "description", "overview", "plot", "summary")

	kindAliases       = fields(nonNull, "type", "media_type", "mediaType", "kind")
	seasonAliases     = fields(nonNull, "number_of_seasons", "seasons")
	comingSoonAliases = fields(nonNull, "comingSoon", "coming_soon", "upcoming")
)

const statusField = "status"

// first returns the value of the first present alias.
func first(raw RawRecord, aliases []alias) (any, bool) {
	for _, a := range aliases {
		if value, ok := a.extract(raw, a.field); ok {
			return value, true
		}
	}
	return nil, false
}

// firstText resolves the aliases and renders the winner as text; absent
// values become the empty string.
func firstText(raw RawRecord, aliases []alias) string {
	value, ok := first(raw, aliases)
	if !ok {
		return ""
	}
	return text(value)
}

// text renders a decoded JSON value the way the upstream scraper's consumers
// always have: strings verbatim, numbers in shortest decimal form, arrays
// joined with commas and objects as an opaque marker.
func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return numberText(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = text(elem)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return ""
	}
}

// maxExactFloat is the largest magnitude a float64 holds without losing
// integer precision.
const maxExactFloat = 1 << 53

// numberText renders 2020.0 as "2020" and 2e3 as "2000". Literals too large
// for a float64 to hold exactly keep their text, so long numeric ids survive.
func numberText(n json.Number) string {
	f, err := n.Float64()
	if err != nil || math.Abs(f) > maxExactFloat {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// truthy applies loose boolean semantics: empty strings, zero, false and null
// are false; every other value, including empty lists and objects, is true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return true
	}
}

// toYear coerces a year-like value to an integer. Non-numeric text, blank
// strings, booleans and non-finite numbers are absent.
func toYear(value any) (int, bool) {
	var f float64
	switch v := value.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func prefix(value string, n int) string {
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[:n])
}
