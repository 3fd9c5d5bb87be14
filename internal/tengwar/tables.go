package tengwar

// Glyph codes below are key codes of the Tengwar Annatar font family.

const shortCarrier = "`"

// consonants maps single letters, and the internal markers R (pre-vowel r)
// and Y (consonant y), to their tengwa.
var consonants = map[rune]string{
	't': "1", 'd': "2", 'n': "5", 'r': "6", 'R': "7", 'h': "9",
	'p': "q", 'b': "w", 'f': "e", 'v': "r", 'm': "t", 'w': "y",
	's': "i", 'j': "s", 'l': "j", 'Y': "l", 'k': "z", 'g': "x",
	'z': ",",
}

// digraphs in match order. TH marks a voiced th and Ch a ch found by the
// soft c rule.
var digraphs = []struct {
	pattern string
	glyph   string
}{
	{"sh", "d"},
	{"zh", "f"},
	{"ch", "a"},
	{"Ch", "a"},
	{"ph", "e"},
	{"kh", "c"},
	{"gh", "v"},
	{"wh", "o"},
	{"ng", "b"},
	{"rd", "u"},
	{"ld", "m"},
	{"th", "3"},
	{"TH", "4"},
}

// vowelSeries holds the four tehta shapes of each vowel, one per width
// class of the tengwa that carries it.
var vowelSeries = map[rune]string{
	'a': "#EDC",
	'e': "$RFV",
	'i': "%TGB",
	'o': "^YHN",
	'u': "&UJM",
	'y': "ØÙÚÛ",
}

// plainTehtar lists every a/e/i/o/u tehta. The y series is absent.
const plainTehtar = "#EDC$RFV%TGB^YHN&UJM"

// tehtaClass picks the tehta shape for the tengwa it sits on. Glyphs not
// listed use class 0.
var tehtaClass = map[rune]int{
	'`': 3, '~': 3, '9': 3,
	'1': 1, 'q': 1, 'd': 1, 'c': 1, '6': 1, 'y': 1,
	'a': 2, 'z': 2, '3': 2, 'e': 2, 'h': 2, 'n': 2, '7': 2, 'u': 2,
	'i': 2, ',': 2, 'l': 2, '.': 2, '8': 2, 'k': 2,
	'2': 0, 'w': 0, 's': 0, 'x': 0, '4': 0, 'r': 0, 'f': 0, 'v': 0,
	'5': 0, 't': 0, 'g': 0, 'b': 0, 'j': 0, 'm': 0, 'o': 0,
}

// escapeGlyphs are the manual overrides typed as uppercase letters.
var escapeGlyphs = map[rune]string{
	'T': "3", // voiceless th
	'D': "4", // voiced th
	'R': "7", // pre-vowel r
	'S': "8", // vowel-less s
	'Z': "k", // vowel-less z
	'Q': "u", // rd
	'L': "m", // ld
	'W': "o", // wh
	'C': "a", // ch
	'K': "c", // kh
	'G': "v", // gh
	'X': "d", // sh
	'H': "f", // zh
	'N': "b", // ng
}

// wholeWords have renderings of their own.
var wholeWords = map[string]string{
	"of":  "W",
	"the": "@",
}

// Voiced th word lists. Voiced th is the rarer sound, so only these words
// get the eth.
var (
	voicedAnywhere = []string{
		"feather", "together", "bathing", "bathe", "father", "mother",
		"clothing", "clothe", "brother", "weather", "either", "gather",
		"other", "another", "worthy", "rather", "soothing", "soothe",
		"smooth", "leather", "tether", "breathe", "breathing", "lathe",
		"seethe", "seething", "scathe", "scathing", "teethe", "teething",
		"loath", "loathing", "neither", "thence", "rhythm", "slither",
		"southern", "bother", "altogether", "lather", "hither",
	}
	voicedWhole  = []string{"that", "this", "than", "they", "thee", "though"}
	voicedPrefix = []string{"their", "these", "those", "although", "them", "thine", "thy", "thou", "there"}
	// only the second th of these is voiced
	voicedSecond = []string{"thither"}
)

const (
	finalE = "O"
	xGlyph = "zæ"

	// trailing s hooks, chosen by the last glyph of the word
	hookS     = "Å"
	hookSTall = "Æ"
	hookSLow  = "¥"
	hookSBar  = "_"
)
