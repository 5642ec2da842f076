package domain

import "strconv"

const maxFlightNumber = 9999

// Flight owns the seating grid of one aircraft under one flight number.
// A Flight is not safe for concurrent use.
type Flight struct {
	number   string
	aircraft Aircraft
	seating  Seating
}

// BoardingCard is everything printed on a passenger's card.
type BoardingCard struct {
	Passenger     PassengerData `json:"passenger"`
	Seat          string        `json:"seat"`
	FlightNumber  string        `json:"flight_number"`
	AircraftModel string        `json:"aircraft_model"`
}

func NewFlight(number string, aircraft Aircraft) (*Flight, error) {
	if err := verifyFlightNumber(number); err != nil {
		return nil, err
	}
	if !aircraft.configured() {
		return nil, invalid(RuleAircraft, "Aircraft must have rows and seats configured")
	}

	rows, letters := aircraft.SeatingPlan()
	for i := 1; i < len(rows); i++ {
		rows[i] = make(Row, len(letters))
	}

	return &Flight{
		number:   number,
		aircraft: aircraft,
		seating:  rows,
	}, nil
}

func (f *Flight) Number() string        { return f.number }
func (f *Flight) Aircraft() Aircraft    { return f.aircraft }
func (f *Flight) AircraftModel() string { return f.aircraft.Model() }

// Seating returns a copy of the grid.
func (f *Flight) Seating() Seating {
	return f.seating.clone()
}

func (f *Flight) ParseSeat(designator string) (SeatDesignator, error) {
	return parseSeat(designator, f.aircraft.NumRows(), f.aircraft.NumSeatsPerRow())
}

// PassengerAt reports who sits in seat.
func (f *Flight) PassengerAt(seat string) (PassengerData, bool, error) {
	s, err := f.ParseSeat(seat)
	if err != nil {
		return PassengerData{}, false, err
	}
	p, ok := f.seating.At(s)
	return p, ok, nil
}

func (f *Flight) AllocatePassenger(seat string, passenger PassengerData) error {
	if f.NumAvailableSeats() == 0 {
		return invalid(RuleNoSeatsLeft, "No available seats")
	}

	s, err := f.ParseSeat(seat)
	if err != nil {
		return err
	}
	if f.slot(s) != nil {
		return invalid(RuleSeatOccupied, "Seat %s is already occupied", seat)
	}

	p := passenger
	f.seating[s.Row][s.column()] = &p
	return nil
}

func (f *Flight) ReallocatePassenger(fromSeat, toSeat string) error {
	from, err := f.ParseSeat(fromSeat)
	if err != nil {
		return err
	}
	to, err := f.ParseSeat(toSeat)
	if err != nil {
		return err
	}

	if f.slot(from) == nil {
		return invalid(RuleSeatFree, "Initial seat %s is not occupied", fromSeat)
	}
	if f.slot(to) != nil {
		return invalid(RuleSeatOccupied, "Wanted seat %s is already occupied", toSeat)
	}

	f.seating[to.Row][to.column()], f.seating[from.Row][from.column()] = f.slot(from), nil
	return nil
}

func (f *Flight) NumAvailableSeats() int {
	available := 0
	for _, row := range f.seating[1:] {
		for _, p := range row {
			if p == nil {
				available++
			}
		}
	}
	return available
}

// BoardingCards lists a card per occupied seat in row, then letter, order.
func (f *Flight) BoardingCards() []BoardingCard {
	cards := make([]BoardingCard, 0)
	for rowNumber := 1; rowNumber < len(f.seating); rowNumber++ {
		for col, p := range f.seating[rowNumber] {
			if p == nil {
				continue
			}
			cards = append(cards, BoardingCard{
				Passenger:     *p,
				Seat:          SeatDesignator{Row: rowNumber, Letter: seatLetters[col]}.String(),
				FlightNumber:  f.number,
				AircraftModel: f.aircraft.Model(),
			})
		}
	}
	return cards
}

func (f *Flight) slot(s SeatDesignator) *PassengerData {
	return f.seating[s.Row][s.column()]
}

func verifyFlightNumber(number string) error {
	if len(number) < 2 || !isLetter(number[0]) || !isLetter(number[1]) {
		return invalid(RuleFlightNumber, "The first two characters must be letters")
	}
	if !isUpper(number[0]) || !isUpper(number[1]) {
		return invalid(RuleFlightNumber, "The first two characters must be uppercase")
	}

	digits := number[2:]
	if digits == "" {
		return invalid(RuleFlightNumber, "The last characters must be numbers")
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return invalid(RuleFlightNumber, "The last characters must be numbers")
		}
	}
	if len(digits) > 4 {
		return invalid(RuleFlightNumber, "The last characters must be less than %d", maxFlightNumber)
	}
	if n, err := strconv.Atoi(digits); err != nil || n > maxFlightNumber {
		return invalid(RuleFlightNumber, "The last characters must be less than %d", maxFlightNumber)
	}
	return nil
}
