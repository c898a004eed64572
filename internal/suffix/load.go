// =============================================================================
// internal/suffix/load.go - Public-suffix list parsing
// =============================================================================
package suffix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load parses the public-suffix list text format into a label tree.
// Comment lines ("//") and blanks are skipped; "!" prefixes mark
// exception rules; "*" labels are stored as regular tree entries.
func Load(r io.Reader) (*Node, error) {
	root := NewNode()
	scanner := bufio.NewScanner(r)
	rules := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		// The list format allows trailing annotations after whitespace.
		if fields := strings.Fields(line); len(fields) > 0 {
			line = fields[0]
		}

		exception := strings.HasPrefix(line, "!")
		rule := strings.ToLower(strings.TrimPrefix(line, "!"))

		labels := strings.Split(rule, ".")
		reverse(labels)
		root.AddRule(labels, exception)
		rules++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read suffix list: %w", err)
	}
	if rules == 0 {
		return nil, fmt.Errorf("suffix list contains no rules")
	}
	return root, nil
}

// LoadFile parses the public-suffix list from a file on disk.
func LoadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suffix list: %w", err)
	}
	defer f.Close()

	root, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suffix list %s: %w", path, err)
	}
	return root, nil
}

func reverse(labels []string) {
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
}
