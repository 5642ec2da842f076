package domain

import "unicode/utf8"

// PassengerData is the (name, surname, ID card) triple stored in a seat.
type PassengerData struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	IDCard  string `json:"id_card"`
}

type Passenger struct {
	name    string
	surname string
	idCard  string
}

func NewPassenger(name, surname, idCard string) (Passenger, error) {
	if name == "" || surname == "" {
		return Passenger{}, invalid(RulePassenger, "Name and surname cannot be empty")
	}
	if utf8.RuneCountInString(idCard) != 9 {
		return Passenger{}, invalid(RulePassenger, "ID card must be nine characters long")
	}
	for i := 0; i < 8; i++ {
		if !isDigit(idCard[i]) {
			return Passenger{}, invalid(RulePassenger, "ID card must end with a letter and start with numbers")
		}
	}
	if !isLetter(idCard[8]) {
		return Passenger{}, invalid(RulePassenger, "ID card must end with a letter and start with numbers")
	}

	return Passenger{name: name, surname: surname, idCard: idCard}, nil
}

func (p Passenger) PassengerData() PassengerData {
	return PassengerData{Name: p.name, Surname: p.surname, IDCard: p.idCard}
}
