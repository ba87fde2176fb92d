package normalization

import (
  "strings"
)

func ParseInputString(input string) string {
  normalized := strings.ToLower(strings.TrimSpace(input))
  return normalized
}

// TrimInputString keeps the original casing; used for fields like project
// names where case carries meaning.
func TrimInputString(input string) string {
  return strings.TrimSpace(input)
}
