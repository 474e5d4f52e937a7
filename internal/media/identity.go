package media

import "strings"

const unknownPart = "unknown"

// ResolveID derives the record identifier. The first present identifier alias
// wins and is coerced to text. Records without one get a synthesized
// "<title>-<year>" id, with "unknown" standing in for either part; the second
// return value reports that synthesis happened.
//
// Synthesized ids collide for distinct records sharing title and year, and for
// all titleless records of the same year. That is accepted: the first such
// record wins deduplication.
func ResolveID(raw RawRecord) (string, bool) {
	if value, ok := first(raw, identifierAliases); ok {
		return text(value), false
	}

	title := strings.TrimSpace(firstText(raw, fallbackTitleAliases))
	if title == "" {
		title = unknownPart
	}
	year := unknownPart
	if value, ok := first(raw, fallbackYearAliases); ok && truthy(value) {
		year = text(value)
	}
	return title + "-" + year, true
}

// ResolveKind classifies a record as movie or tv. It never fails: records
// without a usable type hint default to movie.
func ResolveKind(raw RawRecord) Kind {
	hint := strings.ToLower(firstText(raw, kindAliases))
	switch {
	case strings.Contains(hint, "tv"), strings.Contains(hint, "show"), hint == "series":
		return KindTV
	case strings.Contains(hint, "movie"), hint == "film":
		return KindMovie
	}
	if _, ok := first(raw, seasonAliases); ok {
		return KindTV
	}
	return KindMovie
}
