package media

import "strings"

// Normalize maps one raw record to a canonical item. It is pure: the same
// record always yields the same item.
//
// The boolean is false when the identifier resolved to empty text. A record
// without title text takes its id as title, so titleless records survive
// under their synthesized id.
func Normalize(raw RawRecord) (Item, bool) {
	id, _ := ResolveID(raw)
	title := strings.TrimSpace(firstText(raw, titleAliases))
	if id == "" {
		return Item{}, false
	}
	if title == "" {
		title = id
	}

	item := Item{
		ID:          id,
		Title:       title,
		Type:        ResolveKind(raw),
		Thumbnail:   firstText(raw, thumbnailAliases),
		VideoURL:    firstText(raw, videoAliases),
		Description: firstText(raw, descriptionAliases),
		ComingSoon:  resolveComingSoon(raw),
		Raw:         raw,
	}
	if value, ok := first(raw, yearAliases); ok {
		if year, ok := toYear(value); ok {
			item.Year = YearOf(year)
		}
	}
	return item, true
}

func resolveComingSoon(raw RawRecord) bool {
	if value, ok := first(raw, comingSoonAliases); ok && truthy(value) {
		return true
	}
	status, ok := raw[statusField].(string)
	return ok && strings.Contains(strings.ToLower(status), "coming")
}
