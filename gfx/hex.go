package gfx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidData is returned when textual pixel or tile data can't be
// parsed. Nothing is drawn in that case.
var ErrInvalidData = errors.New("invalid image data")

func simplify(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parseHexRows reads rows of fixed-width hex groups, digits characters per
// cell. All rows must hold as many cells as the first one.
func parseHexRows(rows []string, digits int) (width, height int, cells []uint64, err error) {
	if len(rows) == 0 {
		return 0, 0, nil, nil
	}

	first := simplify(rows[0])
	if len(first)%digits != 0 {
		return 0, 0, nil, fmt.Errorf("%w: row 0 length %d", ErrInvalidData, len(first))
	}
	width, height = len(first)/digits, len(rows)
	cells = make([]uint64, 0, width*height)

	for y, row := range rows {
		row = simplify(row)
		if len(row) != width*digits {
			return 0, 0, nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidData, y, len(row), width*digits)
		}
		for x := 0; x < width; x++ {
			group := row[x*digits : (x+1)*digits]
			v, err := strconv.ParseUint(group, 16, digits*4)
			if err != nil {
				return 0, 0, nil, fmt.Errorf("%w: row %d: %q", ErrInvalidData, y, group)
			}
			cells = append(cells, v)
		}
	}
	return width, height, cells, nil
}
