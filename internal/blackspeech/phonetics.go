package blackspeech

import (
	"regexp"
	"strings"
)

// PhoneticRule is one substitution of the fallback ruleset.
type PhoneticRule struct {
	Name  string
	Apply func(string) string
}

func literal(from, to string) PhoneticRule {
	return PhoneticRule{
		Name:  from + "->" + to,
		Apply: func(s string) string { return strings.ReplaceAll(s, from, to) },
	}
}

func pattern(name, expr, repl string) PhoneticRule {
	re := regexp.MustCompile(expr)
	return PhoneticRule{
		Name:  name,
		Apply: func(s string) string { return re.ReplaceAllString(s, repl) },
	}
}

var doubledVowel = regexp.MustCompile(`aa|ee|ii|oo|uu`)

// PhoneticRules is applied in order to words missing from the dictionary.
// Longer clusters come before the letters they contain.
var PhoneticRules = []PhoneticRule{
	literal("tion", "zhon"),
	literal("sion", "zhon"),
	literal("ch", "kh"),
	literal("c", "k"),
	pattern("soft-g", `g([eiy])`, "gh$1"),
	literal("th", "thr"),
	literal("ph", "f"),
	literal("sh", "shr"),
	literal("j", "zh"),
	literal("qu", "kw"),
	literal("x", "ks"),
	literal("v", "f"),
	literal("w", "v"),
	literal("y", "i"),
	literal("oo", "û"),
	literal("ee", "î"),
	literal("aa", "â"),
	{
		Name: "reduce-doubled-vowels",
		Apply: func(s string) string {
			return doubledVowel.ReplaceAllStringFunc(s, func(m string) string { return m[:1] })
		},
	},
	pattern("final-s", `s$`, "z"),
	pattern("final-ed", `ed$`, "ad"),
	pattern("final-ing", `ing$`, "ugh"),
}

// Phonetic renders a normalized word that has no dictionary entry. The
// result is never empty and never equal to a non-empty input: a word no
// rule touched gets a guttural ending.
func Phonetic(word string) string {
	if word == "" {
		return ""
	}

	out := word
	for _, rule := range PhoneticRules {
		out = rule.Apply(out)
	}

	if out == word {
		if strings.ContainsAny(out[len(out)-1:], "aeiou") {
			return out + "k"
		}
		return out + "ûk"
	}
	return out
}
