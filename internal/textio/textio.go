// Package textio loads subtitle files as normalized UTF-8 text.
package textio

import (
	"os"
	"strings"
)

// ReadFile loads a text file, dropping a leading UTF-8 BOM and normalizing
// CRLF line endings.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Normalize(data), nil
}

// Normalize strips a UTF-8 BOM and converts CRLF to LF.
func Normalize(data []byte) string {
	s := strings.TrimPrefix(string(data), "\uFEFF")
	if strings.Contains(s, "\r\n") {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}
	return s
}
