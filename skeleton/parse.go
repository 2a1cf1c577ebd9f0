package skeleton

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates a coordinate string ParseCoord cannot read.
var ErrSyntax = errors.New("skeleton: malformed coordinate")

// ParseCoord reads the String form of a Coord, e.g. "(-,3,+)". Parentheses
// and spaces are optional. It checks syntax only; use Meta.Valid to check
// membership in a skeleton.
func ParseCoord(s string) (Coord, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	parts := strings.Split(body, ",")
	c := make(Coord, len(parts))
	for i, p := range parts {
		switch p = strings.TrimSpace(p); p {
		case "-":
			c[i] = Neg()
		case "+":
			c[i] = Pos()
		default:
			v, err := strconv.Atoi(p)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: %q axis %d", ErrSyntax, s, i)
			}
			c[i] = In(v)
		}
	}

	return c, nil
}
