package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// The text formats share one grammar: one record per line, fields split
// on commas or whitespace, "#" and ";" comments, named sections closed
// by a bare "end".

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";")
}

// eachLine calls handler for every non-blank, non-comment line.
func eachLine(data []byte, handler func(line string) error) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isComment(line) {
			continue
		}
		if err := handler(line); err != nil {
			return fmt.Errorf("line %d: %w", number, err)
		}
	}
	return scanner.Err()
}

// splitFields tokenizes a record line. Commas and whitespace both
// separate fields; empty fields are dropped.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parseFloat(field string) (float32, error) {
	value, err := strconv.ParseFloat(field, 32)
	if err != nil {
		return 0, fmt.Errorf("bad float %q: %w", field, err)
	}
	return float32(value), nil
}

func parseInt(field string) (int, error) {
	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q: %w", field, err)
	}
	return value, nil
}

func parseHex(field string) (uint32, error) {
	value, err := strconv.ParseUint(strings.TrimPrefix(field, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad mask %q: %w", field, err)
	}
	return uint32(value), nil
}

func parseID(field string) (uint16, error) {
	value, err := strconv.ParseUint(field, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %w", field, err)
	}
	return uint16(value), nil
}
