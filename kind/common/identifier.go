package common

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/syssam/solgen"
)

// ToIdentifier turns a display name into a Solidity identifier: accents are
// stripped, leading invalid characters dropped, and runs of invalid
// characters removed with the following letter upper-cased.
//
//	ToIdentifier("My Tökén", true) == "MyToken"
func ToIdentifier(s string, capitalize bool) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return "", solgen.NewOptionsError("name", err.Error())
	}
	stripped = strings.TrimLeftFunc(stripped, func(r rune) bool { return !isLetter(r) })

	var (
		b     strings.Builder
		upper bool
	)
	for _, r := range stripped {
		if !isWord(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	id := b.String()
	if id == "" {
		return "", solgen.NewOptionsError("name", "identifier is empty or does not have valid characters")
	}
	if capitalize {
		id = inflect.Capitalize(id)
	}
	return id, nil
}

func isLetter(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || r == '$' || r == '_')
}

func isWord(r rune) bool {
	return isLetter(r) || ('0' <= r && r <= '9')
}
