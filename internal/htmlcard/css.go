package htmlcard

import (
	"strconv"
	"strings"
)

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

// cssValue keeps a caller-supplied color from escaping its declaration.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\'', '\\', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
