package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"
)

// Field keys of a session log line. The session logger writes them and
// Parse reads them back.
const (
	TimeKey    = "timestamp"
	LevelKey   = "level"
	MessageKey = "message"
	ModuleKey  = "module"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded session log line.
type Entry struct {
	Time    time.Time
	Level   string
	Module  string
	Message string
	Fields  map[string]any
}

const zapTimeLayout = "2006-01-02T15:04:05.000Z0700"

// Parse decodes a JSON log line. Lines that are not JSON objects become an
// entry whose message is the raw line.
func Parse(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Message: line}
	}
	e := Entry{Fields: map[string]any{}}
	for k, v := range raw {
		s, _ := v.(string)
		switch k {
		case TimeKey:
			e.Time, _ = time.Parse(zapTimeLayout, s)
		case LevelKey:
			e.Level = s
		case ModuleKey:
			e.Module = s
		case MessageKey:
			e.Message = s
		default:
			e.Fields[k] = v
		}
	}
	return e
}

// ReadEntries is Read followed by Parse, skipping blank lines.
func ReadEntries(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Format renders e as a single line: time, level, module, message, then
// the extra fields sorted by key.
func (e Entry) Format() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		fmt.Fprintf(&b, "%-5s ", e.Level)
	}
	if e.Module != "" {
		fmt.Fprintf(&b, "[%s] ", e.Module)
	}
	b.WriteString(e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}
