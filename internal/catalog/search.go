package catalog

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
)

// matcher compares titles against search text without regard to case and,
// optionally, accents.
type matcher struct {
	transliterate bool
}

func (m matcher) fold(s string) string {
	if m.transliterate {
		s = unidecode.Unidecode(s)
	}
	return cases.Fold().String(s)
}

// compile folds the needle once; an empty needle matches everything.
func (m matcher) compile(needle string) func(title string) bool {
	if needle == "" {
		return func(string) bool { return true }
	}
	folded := m.fold(needle)
	return func(title string) bool {
		return strings.Contains(m.fold(title), folded)
	}
}
