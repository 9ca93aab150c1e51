package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-logfmt/logfmt"
)

// Field is one key/value pair beyond the standard keys.
type Field struct {
	Key   string
	Value string
}

// Entry is one parsed log line. Raw is kept for lines that are not logfmt.
type Entry struct {
	Time   time.Time
	Level  string
	Prefix string
	Msg    string
	Fields []Field
	Raw    string
}

// Structured reports whether the line parsed as a log record.
func (e Entry) Structured() bool {
	return e.Msg != "" || e.Level != ""
}

// Tail returns the last n lines of the file at path, oldest first. n <= 0
// returns every line. A missing file yields no lines.
func Tail(path string, n int) ([]string, error) {
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

	if n <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, n)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % n
		if count < n {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == n {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%n]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Parse decodes a logfmt line as written by the logging package. Lines that
// fail to decode come back with only Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	if strings.TrimSpace(line) == "" {
		return entry
	}

	dec := logfmt.NewDecoder(strings.NewReader(line))
	if !dec.ScanRecord() {
		return entry
	}
	var parsed Entry
	parsed.Raw = line
	for dec.ScanKeyval() {
		key, value := string(dec.Key()), string(dec.Value())
		switch key {
		case "time":
			if ts, err := time.Parse(time.RFC3339, value); err == nil {
				parsed.Time = ts
			}
		case "level":
			parsed.Level = strings.ToLower(value)
		case "prefix":
			parsed.Prefix = value
		case "msg":
			parsed.Msg = value
		default:
			parsed.Fields = append(parsed.Fields, Field{Key: key, Value: value})
		}
	}
	if dec.Err() != nil || !parsed.Structured() {
		return entry
	}
	return parsed
}

// Read tails path and parses each line.
func Read(path string, n int) ([]Entry, error) {
	lines, err := Tail(path, n)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Field returns the value for key, if present.
func (e Entry) Field(key string) (string, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}
