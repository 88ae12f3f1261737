package terms

import (
	"regexp"
	"slices"
	"strings"
)

// Термы разделяются любой последовательностью символов вне [A-Za-z0-9]
var separatorRegexp = regexp.MustCompile("[^a-zA-Z0-9]+")

// Extract возвращает уникальные термы заголовка в нижнем регистре, отсортированные.
// Для заголовка без латинских букв и цифр возвращает nil
func Extract(title string) []string {
	var out []string
	for _, part := range separatorRegexp.Split(title, -1) {
		if part == "" {
			continue
		}
		out = append(out, strings.ToLower(part))
	}
	slices.Sort(out)
	return slices.Compact(out)
}
