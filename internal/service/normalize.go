package service

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnusableName is returned by Normalize when nothing usable is left after
// cleanup.
var ErrUnusableName = errors.New("this string is cooked")

var (
	separatorRun = regexp.MustCompile(`[-_]+`)
	nonLetter    = regexp.MustCompile(`[^a-zA-Z ]`)
)

// Normalize turns a free-text label into a display name: hyphen and
// underscore runs become a single space, anything other than ASCII letters
// and spaces is dropped, and each space-separated word is title-cased.
// Space runs left behind by dropped characters are kept as-is.
func Normalize(raw string) (string, error) {
	cleaned := separatorRun.ReplaceAllString(raw, " ")
	cleaned = nonLetter.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", ErrUnusableName
	}

	caser := cases.Title(language.English)
	words := strings.Split(cleaned, " ")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " "), nil
}
