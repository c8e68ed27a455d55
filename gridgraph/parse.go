package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseMap reads a text map, one row per line:
//
//	'#'        wall (0)
//	'.'        open ground (1)
//	'1'..'9'   terrain with that cost
//
// Blank lines and lines starting with ';' are skipped. Rectangularity is
// checked by NewGridGraph.
func ParseMap(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		row := make([]int, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			switch {
			case ch == '#':
				row = append(row, 0)
			case ch == '.':
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadCell, ch, line, col)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	return rows, nil
}
