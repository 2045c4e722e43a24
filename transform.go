package tabulate

import (
	"fmt"
	"strings"
	"unicode"
)

// NameTransform maps a raw identifier (a struct field, an XML element, a CSV
// column) to a display label. Implementations are pure and never fail.
type NameTransform interface {
	Apply(name string) string
}

// NameTransformFunc adapts an ordinary function to [NameTransform].
type NameTransformFunc func(string) string

// Apply calls f(name).
func (f NameTransformFunc) Apply(name string) string { return f(name) }

var (
	// PassThrough returns names unchanged.
	PassThrough NameTransform = NameTransformFunc(func(name string) string { return name })

	// SnakeCase lowercases a name, inserting "_" where an uppercase letter
	// follows a lowercase letter or digit: "FooBar" becomes "foo_bar".
	SnakeCase NameTransform = NameTransformFunc(snakeCase)
)

func snakeCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	var prev rune
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return sb.String()
}

// PascalSegmenting splits a PascalCase or camelCase identifier into words and
// re-cases the first rune of each word. Words break where an uppercase letter
// follows a lowercase letter or digit, and wherever letters and digits meet:
// "Foo123Bar" is "Foo", "123", "Bar". All other runes are left alone.
//
// A nil Separator concatenates the words again, so only the re-casing is
// visible in the output.
type PascalSegmenting struct {
	CapitalizeFirstWord       bool
	CapitalizeSubsequentWords bool
	Separator                 *rune
}

// Pascal returns a PascalSegmenting transform that joins words with no
// separator.
func Pascal(capitalizeFirst, capitalizeSubsequent bool) PascalSegmenting {
	return PascalSegmenting{
		CapitalizeFirstWord:       capitalizeFirst,
		CapitalizeSubsequentWords: capitalizeSubsequent,
	}
}

// PascalWithSeparator returns a PascalSegmenting transform that joins words
// with sep.
func PascalWithSeparator(capitalizeFirst, capitalizeSubsequent bool, sep rune) PascalSegmenting {
	p := Pascal(capitalizeFirst, capitalizeSubsequent)
	p.Separator = &sep
	return p
}

// Apply implements [NameTransform].
func (p PascalSegmenting) Apply(name string) string {
	words := segmentWords(name)
	var sb strings.Builder
	sb.Grow(len(name) + len(words))
	for i, word := range words {
		if i > 0 && p.Separator != nil {
			sb.WriteRune(*p.Separator)
		}
		upper := p.CapitalizeSubsequentWords
		if i == 0 {
			upper = p.CapitalizeFirstWord
		}
		sb.WriteString(recaseFirst(word, upper))
	}
	return sb.String()
}

func segmentWords(name string) []string {
	runes := []rune(name)
	if len(runes) == 0 {
		return nil
	}
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if isWordBoundary(runes[i-1], runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func isWordBoundary(prev, cur rune) bool {
	switch {
	case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
		return true
	case unicode.IsDigit(cur) && unicode.IsLetter(prev):
		return true
	case unicode.IsLetter(cur) && unicode.IsDigit(prev):
		return true
	}
	return false
}

func recaseFirst(word string, upper bool) string {
	runes := []rune(word)
	if upper {
		runes[0] = unicode.ToUpper(runes[0])
	} else {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}

var nameTransforms = map[string]NameTransform{
	"none":        PassThrough,
	"passthrough": PassThrough,
	"snake":       SnakeCase,
	"title":       PascalWithSeparator(true, true, ' '),
	"sentence":    PascalWithSeparator(true, false, ' '),
	"camel":       Pascal(false, true),
	"pascal":      Pascal(true, true),
}

// NameTransformNames lists the names accepted by [ParseNameTransform].
func NameTransformNames() []string {
	return []string{"none", "passthrough", "snake", "title", "sentence", "camel", "pascal"}
}

// ParseNameTransform resolves a transform by name, for configuration files
// and command-line flags.
func ParseNameTransform(name string) (NameTransform, error) {
	if t, ok := nameTransforms[strings.ToLower(name)]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: unknown name transform %q", ErrConfiguration, name)
}
