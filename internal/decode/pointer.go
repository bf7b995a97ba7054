package decode

import (
	"strconv"
	"strings"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders reference tokens as an RFC 6901 JSON Pointer. The root is
// rendered as "/".
func Pointer(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(t))
	}
	return b.String()
}

func child(parent []string, key string) []string {
	return append(append(make([]string, 0, len(parent)+1), parent...), key)
}

func index(parent []string, i int) []string { return child(parent, strconv.Itoa(i)) }
