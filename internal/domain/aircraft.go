package domain

// MaxSeatsPerRow is bounded by the seat letters A..Z.
const MaxSeatsPerRow = 26

const seatLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Kind int

const (
	KindGeneric Kind = iota
	KindAirbus
	KindBoeing
)

func (k Kind) String() string {
	switch k {
	case KindAirbus:
		return "airbus"
	case KindBoeing:
		return "boeing"
	default:
		return "aircraft"
	}
}

// Aircraft is the static configuration of an airframe. The zero value is not
// a valid aircraft; use NewAircraft, NewAirbus or NewBoeing.
type Aircraft struct {
	registration   string
	model          string
	numRows        int
	numSeatsPerRow int
	kind           Kind
	variant        string
	airline        string
}

func NewAircraft(registration, model string, numRows, numSeatsPerRow int) (Aircraft, error) {
	if err := verifyRegistration(registration); err != nil {
		return Aircraft{}, err
	}
	if numRows <= 0 || numSeatsPerRow <= 0 {
		return Aircraft{}, invalid(RuleDimensions, "Number of rows and seats per row must be positive integers")
	}
	if numSeatsPerRow > MaxSeatsPerRow {
		return Aircraft{}, invalid(RuleDimensions, "Number of seats per row must not exceed %d", MaxSeatsPerRow)
	}

	return Aircraft{
		registration:   registration,
		model:          model,
		numRows:        numRows,
		numSeatsPerRow: numSeatsPerRow,
		kind:           KindGeneric,
	}, nil
}

// NewAirbus returns an Airbus A319 with 23 rows of 6 seats.
func NewAirbus(registration, variant string) (Aircraft, error) {
	a, err := NewAircraft(registration, "Airbus A319", 23, 6)
	if err != nil {
		return Aircraft{}, err
	}
	a.kind = KindAirbus
	a.variant = variant
	return a, nil
}

// NewBoeing returns a Boeing 777 with 56 rows of 9 seats.
func NewBoeing(registration, airline string) (Aircraft, error) {
	a, err := NewAircraft(registration, "Boeing 777", 56, 9)
	if err != nil {
		return Aircraft{}, err
	}
	a.kind = KindBoeing
	a.airline = airline
	return a, nil
}

func (a Aircraft) Registration() string { return a.registration }
func (a Aircraft) Model() string        { return a.model }
func (a Aircraft) NumRows() int         { return a.numRows }
func (a Aircraft) NumSeatsPerRow() int  { return a.numSeatsPerRow }
func (a Aircraft) Kind() Kind           { return a.kind }

// Variant is set for Airbus aircraft only.
func (a Aircraft) Variant() string { return a.variant }

// Airline is set for Boeing aircraft only.
func (a Aircraft) Airline() string { return a.airline }

func (a Aircraft) NumSeats() int {
	return a.numRows * a.numSeatsPerRow
}

// SeatingPlan returns an empty template: numRows+1 rows, all nil, with index 0
// never used, and the seat letters of a row.
func (a Aircraft) SeatingPlan() ([]Row, string) {
	return make([]Row, a.numRows+1), seatLetters[:a.numSeatsPerRow]
}

func (a Aircraft) configured() bool {
	return a.numRows > 0 && a.numSeatsPerRow > 0
}

func verifyRegistration(registration string) error {
	if registration == "" || !isUpper(registration[0]) {
		return invalid(RuleRegistration, "Registration must start with an uppercase letter")
	}
	if len(registration) < 2 || registration[1] != '-' {
		return invalid(RuleRegistration, "Registration must have a hyphen as the second character")
	}
	suffix := registration[2:]
	if suffix == "" {
		return invalid(RuleRegistration, "Registration must have letters or numbers after the hyphen")
	}
	for i := 0; i < len(suffix); i++ {
		if !isLetter(suffix[i]) && !isDigit(suffix[i]) {
			return invalid(RuleRegistration, "Registration must have letters or numbers after the hyphen")
		}
	}
	if len(registration) != 6 {
		return invalid(RuleRegistration, "Registration must be six characters long")
	}
	return nil
}

func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLetter(c byte) bool { return isUpper(c) || (c >= 'a' && c <= 'z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
