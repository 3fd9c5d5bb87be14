package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateTestCardDirectory(t *testing.T) {
	base := t.TempDir()
	dir := CreateTestCardDirectory(t, base, "1_abcdef12", "fire", "e%6O", "")

	if dir != filepath.Join(base, "1_abcdef12") {
		t.Errorf("Unexpected card directory %s", dir)
	}
	AssertFileContent(t, filepath.Join(dir, "english.txt"), "fire")
	AssertFileContains(t, filepath.Join(dir, "tengwar.txt"), "6O")
	AssertFileNotExists(t, filepath.Join(dir, "blackspeech.txt"))
}

func TestCaptureOutput(t *testing.T) {
	stdout, stderr := CaptureOutput(t, func() {
		fmt.Println("to stdout")
		fmt.Fprintln(os.Stderr, "to stderr")
	})

	if stdout != "to stdout\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "to stderr\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestCaptureLargeOutput(t *testing.T) {
	line := strings.Repeat("x", 1000)
	stdout, _ := CaptureOutput(t, func() {
		for i := 0; i < 200; i++ {
			fmt.Println(line)
		}
	})

	if len(stdout) != 200*1001 {
		t.Errorf("Expected %d bytes, got %d", 200*1001, len(stdout))
	}
}
