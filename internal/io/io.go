package io

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// ErrFileOpen reports that a load or save path could not be opened.
var ErrFileOpen = errors.New("file open error")

// LoadLines reads a newline-delimited text file into document lines. An
// empty file yields an empty slice.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil { return nil, fmt.Errorf("%w: %s", ErrFileOpen, path) }
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil { return nil, err }

	return lines, nil
}

// SaveLines writes the document lines to path, one text line per document
// line, each terminated by a newline.
func SaveLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil { return fmt.Errorf("%w: %s", ErrFileOpen, path) }

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err = w.WriteString(line); err != nil { file.Close(); return err }
		if err = w.WriteByte('\n'); err != nil { file.Close(); return err }
	}

	if err = w.Flush(); err != nil { file.Close(); return err }
	return file.Close()
}

// OpenStats counts how often each file was opened. Persisted as json in the
// file named by LINED_STATS; purely advisory, all failures are swallowed.
type OpenStats map[string]int

func statsPath() string {
	path, exists := os.LookupEnv("LINED_STATS")
	if !exists { return "" }
	return path
}

func LoadOpenStats() OpenStats {
	stats := OpenStats{}

	path := statsPath()
	if path == "" { return stats }

	data, err := os.ReadFile(path)
	if err != nil { return stats }

	if err = json.Unmarshal(data, &stats); err != nil { return OpenStats{} }
	return stats
}

// BumpOpenStats increments the open counter for file and writes the stats
// back.
func BumpOpenStats(file string) {
	path := statsPath()
	if path == "" { return }

	stats := LoadOpenStats()
	stats[file]++

	data, err := json.Marshal(stats)
	if err != nil { return }
	os.WriteFile(path, data, 0644)
}
