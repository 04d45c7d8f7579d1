package contact

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrTransliteration = errors.New("transliteration failed")

// Russian to Latin, lower case. Hard and soft signs vanish.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "",
	'ы': "y", 'ь': "", 'э': "e", 'ю': "ju", 'я': "ja",
}

// Transliterate converts Russian text to Latin letters. ASCII letters,
// digits and hyphens pass through; any other rune is an error. Case is
// kept on the first letter of each converted rune.
func Transliterate(s string) (string, error) {
	s = norm.NFC.String(s)
	var b strings.Builder
	for _, r := range s {
		lower := unicode.ToLower(r)
		if lat, ok := cyrillicToLatin[lower]; ok {
			if r != lower && lat != "" {
				first, size := utf8.DecodeRuneInString(lat)
				b.WriteRune(unicode.ToUpper(first))
				b.WriteString(lat[size:])
				continue
			}
			b.WriteString(lat)
			continue
		}
		if isPassThrough(r) {
			b.WriteRune(r)
			continue
		}
		return "", fmt.Errorf("%w: unsupported rune %q", ErrTransliteration, r)
	}
	return b.String(), nil
}

func isPassThrough(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}
