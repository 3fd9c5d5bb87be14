package blackspeech

import "testing"

func TestPhonetic(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"cat", "kat"},
		{"chant", "khant"},
		{"gem", "ghem"},
		{"thin", "thrin"},
		{"phone", "fone"},
		{"shadowy", "shradovi"},
		{"jam", "zham"},
		{"quest", "kvest"},
		{"axe", "akse"},
		{"nation", "nazhon"},
		{"vision", "fizhon"},
		{"moon", "mûn"},
		{"deep", "dîp"},
		{"kraal", "krâl"},
		{"skiing", "skugh"},
		{"hobbits", "hobbitz"},
		{"walked", "valkad"},
		{"hobbit", "hobbitûk"},
		{"frodo", "frodok"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Phonetic(tt.word); got != tt.want {
				t.Errorf("Phonetic(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestPhoneticRuleOrder(t *testing.T) {
	index := make(map[string]int, len(PhoneticRules))
	for i, r := range PhoneticRules {
		if _, dup := index[r.Name]; dup {
			t.Fatalf("duplicate rule %q", r.Name)
		}
		index[r.Name] = i
	}

	before := [][2]string{
		{"ch->kh", "c->k"},
		{"tion->zhon", "th->thr"},
		{"qu->kw", "w->v"},
		{"v->f", "w->v"},
		{"oo->û", "reduce-doubled-vowels"},
		{"ee->î", "reduce-doubled-vowels"},
		{"aa->â", "reduce-doubled-vowels"},
	}
	for _, pair := range before {
		a, okA := index[pair[0]]
		b, okB := index[pair[1]]
		if !okA || !okB {
			t.Errorf("missing rule in %v", pair)
			continue
		}
		if a >= b {
			t.Errorf("rule %q must run before %q", pair[0], pair[1])
		}
	}
}
