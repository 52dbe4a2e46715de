// Package transcript reads transcript text from local caption files.
package transcript

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Segment is one caption entry as exported by captioning services.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

var (
	supportedExts = []string{".txt", ".srt", ".json"}
	markupRe      = regexp.MustCompile(`</?[a-zA-Z][^>]*>|\{\\[^}]*\}`)
)

// Supported reports whether path has a loadable transcript extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range supportedExts {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads path and returns its plain transcript text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return string(data), nil
	case ".srt":
		return ParseSRT(data), nil
	case ".json":
		text, err := ParseSegments(data)
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("unsupported transcript format: %s", path)
	}
}

// ParseSRT drops cue numbers, timing lines and markup, joining the cue text
// with single spaces. A numeric line is a cue number only when a timing line
// follows it; otherwise it is cue text.
func ParseSRT(data []byte) string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(bytes.TrimPrefix(data, []byte("\uFEFF"))))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}

	var parts []string
	for i, line := range lines {
		if line == "" || isTimingLine(line) {
			continue
		}
		if _, err := strconv.Atoi(line); err == nil && i+1 < len(lines) && isTimingLine(lines[i+1]) {
			continue
		}
		line = strings.TrimSpace(markupRe.ReplaceAllString(line, ""))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func isTimingLine(line string) bool { return strings.Contains(line, "-->") }

// ParseSegments decodes a JSON array of caption segments and concatenates
// their text in order.
func ParseSegments(data []byte) (string, error) {
	var segments []Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String()), nil
}
