package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var separators = regexp.MustCompile(`[-_]+`)

// ParseHandwriting normalises a handwritten recipe name: hyphen and underscore
// runs become spaces, everything but letters and plain spaces is dropped, and
// each word is capitalised. An empty result fails with ErrInvalidRecipeName.
func ParseHandwriting(input string) (string, error) {
	spaced := separators.ReplaceAllString(input, " ")

	filtered := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || r == ' ' {
			return r
		}
		return -1
	}, spaced)

	words := strings.Fields(filtered)
	if len(words) == 0 {
		return "", ErrInvalidRecipeName
	}

	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " "), nil
}
