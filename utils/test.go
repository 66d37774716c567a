package utils

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

func AssertClose(t *testing.T, a, b, eps float64) {
	t.Helper()
	if math.Abs(a-b) > eps {
		t.Fatalf("Expected close: %v != %v (eps %v)\n", a, b, eps)
	}
}

// WriteLines writes lines joined by sep to a file under t.TempDir() and
// returns its path.
func WriteLines(t *testing.T, sep string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, sep)), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
