package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"INFO","timestamp":"2024-01-15T10:30:00.000Z","message":"navigate","module":"ui","page":"dining","count":3}`
	e := Parse(line)
	if e.Level != "INFO" || e.Module != "ui" || e.Message != "navigate" {
		t.Fatalf("Parse() = %+v", e)
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	if e.Fields["page"] != "dining" || e.Fields["count"] != float64(3) {
		t.Fatalf("Fields = %v", e.Fields)
	}
	if _, ok := e.Fields["message"]; ok {
		t.Fatalf("known keys must not be repeated in Fields")
	}
}

func TestParsePlainText(t *testing.T) {
	e := Parse("panic: something odd")
	if e.Message != "panic: something odd" || e.Level != "" || !e.Time.IsZero() {
		t.Fatalf("Parse(plain) = %+v", e)
	}
	if got := e.Format(); got != "panic: something odd" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestEntryFormatSortsFields(t *testing.T) {
	e := Entry{Level: "WARN", Module: "forms", Message: "rejected", Fields: map[string]any{"form": "suggestions", "fields": 2}}
	want := "WARN  [forms] rejected fields=2 form=suggestions"
	if got := e.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestReadEntriesSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.log")
	data := `{"level":"INFO","message":"one"}` + "\n\n" + `{"level":"INFO","message":"two"}` + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, err := ReadEntries(path, 10)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(entries) != 2 || entries[1].Message != "two" {
		t.Fatalf("entries = %+v", entries)
	}
}
