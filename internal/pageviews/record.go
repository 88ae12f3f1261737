package pageviews

import (
	"strconv"
	"strings"
)

const (
	englishLang     = "en"
	articlesProject = "z"
	mobilePrefix    = "m."
)

// Record - одна строка дампа просмотров: "<lang>.<project> <title> <count>"
type Record struct {
	Lang    string
	Project string
	Title   string
	Count   int64
}

// ParseLine разбирает строку дампа. Поля разделяются только ASCII-пробелом,
// так как в заголовках встречаются другие пробельные символы.
// Префикс мобильной версии "m." снимается с кода проекта один раз
func ParseLine(line string) (Record, error) {
	line = strings.TrimSpace(line)

	fields := strings.Split(line, " ")
	if len(fields) != 3 {
		return Record{}, &FormatError{
			Text:   line,
			Reason: "expected 3 space-separated fields, got " + strconv.Itoa(len(fields)),
		}
	}

	lang, proj, ok := strings.Cut(fields[0], ".")
	if !ok {
		return Record{}, &FormatError{Text: line, Reason: "code has no '.' separator"}
	}
	proj = strings.TrimPrefix(proj, mobilePrefix)

	count, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Record{}, &FormatError{Text: line, Reason: "invalid count", Err: err}
	}

	return Record{
		Lang:    lang,
		Project: proj,
		Title:   fields[1],
		Count:   count,
	}, nil
}

// English проверяет, что запись относится к статьям английской Википедии
func (r Record) English() bool {
	return r.Lang == englishLang && r.Project == articlesProject
}
