package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const idSeparator = "-"

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("invalid cell id")

// Coord is a 1-based cell position.
type Coord struct {
	Col int
	Row int
}

// CellID is the "<col>-<row>" key a host uses to address a cell.
type CellID string

// ParseError reports a malformed CellID.
type ParseError struct {
	ID     string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid cell id %q: %s", e.ID, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ID formats c. It is the inverse of ParseCellID for valid coordinates.
func (c Coord) ID() CellID {
	return CellID(strconv.Itoa(c.Col) + idSeparator + strconv.Itoa(c.Row))
}

func (c Coord) String() string {
	return string(c.ID())
}

// ParseCellID parses "<col>-<row>". Both parts must be positive decimal integers.
func ParseCellID(id CellID) (Coord, error) {
	s := string(id)
	colPart, rowPart, ok := strings.Cut(s, idSeparator)
	if !ok {
		return Coord{}, &ParseError{ID: s, Reason: "missing separator"}
	}
	col, err := parsePositive(colPart)
	if err != nil {
		return Coord{}, &ParseError{ID: s, Reason: "column " + err.Error()}
	}
	row, err := parsePositive(rowPart)
	if err != nil {
		return Coord{}, &ParseError{ID: s, Reason: "row " + err.Error()}
	}
	return Coord{Col: col, Row: row}, nil
}

func parsePositive(s string) (int, error) {
	if s == "" {
		return 0, errors.New("is empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
