// Package hexes holds the axial coordinate type shared by the puzzle
// engine interfaces and everything downstream of them.
package hexes

import (
	"fmt"
	"strconv"
	"strings"
)

// A Hex is an axial coordinate on a hexagonal grid. I indexes the line and
// K the position along that line.
type Hex struct {
	I int
	K int
}

func (h Hex) String() string {
	return strconv.Itoa(h.I) + ":" + strconv.Itoa(h.K)
}

// Parse parses an "i:k" pair, the wire form used by the dataset format.
func Parse(s string) (Hex, error) {
	istr, kstr, found := strings.Cut(s, ":")
	if !found {
		return Hex{}, fmt.Errorf("malformed coordinate %q", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(istr))
	if err != nil {
		return Hex{}, err
	}
	k, err := strconv.Atoi(strings.TrimSpace(kstr))
	if err != nil {
		return Hex{}, err
	}
	return Hex{I: i, K: k}, nil
}
