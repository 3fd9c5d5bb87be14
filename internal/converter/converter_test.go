package converter

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Mode != ModeTengwar {
		t.Errorf("Expected mode 'tengwar', got '%s'", config.Mode)
	}
	if config.Punctuation {
		t.Error("Expected punctuation glyphs to be off by default")
	}
}

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
		errMsg   string
	}{
		{name: "nil config uses defaults", config: nil, wantName: ModeTengwar},
		{name: "empty mode", config: &Config{}, wantName: ModeTengwar},
		{name: "tengwar", config: &Config{Mode: "tengwar"}, wantName: ModeTengwar},
		{name: "black speech", config: &Config{Mode: "blackspeech"}, wantName: ModeBlackSpeech},
		{name: "black speech alias", config: &Config{Mode: "black_speech"}, wantName: ModeBlackSpeech},
		{
			name:    "unknown mode",
			config:  &Config{Mode: "quenya"},
			wantErr: true,
			errMsg:  "unknown conversion mode: quenya",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := NewConverter(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error containing '%s', got '%v'", tt.errMsg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if conv.Name() != tt.wantName {
				t.Errorf("Expected converter '%s', got '%s'", tt.wantName, conv.Name())
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tengwarConv, _ := NewConverter(&Config{Mode: ModeTengwar, Punctuation: true})
	if got := tengwarConv.Convert("note!"); got != "51YOÁ" {
		t.Errorf("tengwar Convert = %q", got)
	}

	black, _ := NewConverter(&Config{Mode: ModeBlackSpeech})
	if got := black.Convert("power"); got != "gash" {
		t.Errorf("blackspeech Convert = %q", got)
	}
}

func TestAll(t *testing.T) {
	convs := All(nil)
	if len(convs) != 2 {
		t.Fatalf("Expected 2 converters, got %d", len(convs))
	}
	if convs[0].Name() != ModeTengwar || convs[1].Name() != ModeBlackSpeech {
		t.Errorf("Unexpected order: %s, %s", convs[0].Name(), convs[1].Name())
	}
}

func TestNormalizeMode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ModeTengwar},
		{"t", ModeTengwar},
		{" Tengwar ", ModeTengwar},
		{"blackspeech", ModeBlackSpeech},
		{"Black-Speech", ModeBlackSpeech},
		{"black_speech", ModeBlackSpeech},
		{"B", ModeBlackSpeech},
		{"quenya", "quenya"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeMode(tt.in); got != tt.want {
				t.Errorf("NormalizeMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
