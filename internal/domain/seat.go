package domain

import (
	"strconv"
)

// SeatDesignator is a parsed seat such as "12C".
type SeatDesignator struct {
	Row    int
	Letter byte
}

func (s SeatDesignator) String() string {
	return strconv.Itoa(s.Row) + string(s.Letter)
}

func (s SeatDesignator) column() int {
	return int(s.Letter - 'A')
}

// Row holds one slot per seat letter; a nil slot is an empty seat.
type Row []*PassengerData

// Seating is indexed by row number; index 0 is always nil.
type Seating []Row

// At returns the occupant of seat, if any. Out-of-range seats are empty.
func (s Seating) At(seat SeatDesignator) (PassengerData, bool) {
	if seat.Row <= 0 || seat.Row >= len(s) {
		return PassengerData{}, false
	}
	row := s[seat.Row]
	col := seat.column()
	if col < 0 || col >= len(row) || row[col] == nil {
		return PassengerData{}, false
	}
	return *row[col], true
}

func (s Seating) clone() Seating {
	out := make(Seating, len(s))
	for i, row := range s {
		if row == nil {
			continue
		}
		out[i] = make(Row, len(row))
		for j, p := range row {
			if p != nil {
				cp := *p
				out[i][j] = &cp
			}
		}
	}
	return out
}

func parseSeat(designator string, numRows, numSeatsPerRow int) (SeatDesignator, error) {
	if len(designator) < 2 {
		return SeatDesignator{}, invalid(RuleSeat, "Invalid seat designator %q", designator)
	}

	letter := designator[len(designator)-1]
	if !isLetter(letter) {
		return SeatDesignator{}, invalid(RuleSeat, "Invalid seat letter %c", letter)
	}
	if letter >= 'a' {
		letter -= 'a' - 'A'
	}

	digits := designator[:len(designator)-1]
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return SeatDesignator{}, invalid(RuleSeat, "Invalid row in seat designator %q", designator)
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil {
		return SeatDesignator{}, invalid(RuleSeat, "Invalid row in seat designator %q", designator)
	}
	if row < 1 || row > numRows {
		return SeatDesignator{}, invalid(RuleSeat, "Invalid row number %d", row)
	}
	if int(letter-'A') >= numSeatsPerRow {
		return SeatDesignator{}, invalid(RuleSeat, "Invalid seat letter %c", letter)
	}

	return SeatDesignator{Row: row, Letter: letter}, nil
}
