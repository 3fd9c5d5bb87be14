package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []Entry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "text with notes",
			fileContent: `One Ring to rule them all = inscription
darkness = burzum`,
			want: []Entry{
				{Text: "One Ring to rule them all", Notes: "inscription"},
				{Text: "darkness", Notes: "burzum"},
			},
		},
		{
			name: "mixed format with comments",
			fileContent: `# Ring verse
One Ring to find them

  huge success!  
power = gash`,
			want: []Entry{
				{Text: "One Ring to find them"},
				{Text: "huge success!"},
				{Text: "power", Notes: "gash"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "fire\r\nshadow = glob\r\ntower",
			want: []Entry{
				{Text: "fire"},
				{Text: "shadow", Notes: "glob"},
				{Text: "tower"},
			},
		},
		{
			name:        "multiple equals signs",
			fileContent: `a = b = c`,
			want:        []Entry{{Text: "a", Notes: "b = c"}},
		},
		{
			name:        "empty text part is skipped",
			fileContent: "= orphan note\nring =",
			want:        []Entry{{Text: "ring"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp file
			tmpFile := filepath.Join(t.TempDir(), "test.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"mixed line endings", "one\ntwo\r\nthree", []string{"one", "two", "three"}},
		{"empty string", "", nil},
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"blank line kept", "one\n\ntwo", []string{"one", "", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrimSpace(t *testing.T) {
	tests := map[string]string{
		"ring":           "ring",
		" \t\n\rring \r": "ring",
		"":               "",
		"   \t ":         "",
		" one ring ":     "one ring",
	}
	for in, want := range tests {
		if got := trimSpace(in); got != want {
			t.Errorf("trimSpace(%q) = %q, want %q", in, got, want)
		}
	}
}
