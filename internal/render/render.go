// Package render turns a flight's seating into human-readable text.
// Nothing here is meant to be parsed back.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Domenick1991/flightseats/internal/domain"
)

var cardBorder = strings.Repeat("-", 58)

// SeatingChart renders one line per row, including the unused row 0.
func SeatingChart(f *domain.Flight) string {
	var b strings.Builder
	_, letters := f.Aircraft().SeatingPlan()

	for i, row := range f.Seating() {
		if row == nil {
			fmt.Fprintf(&b, "Row %d -\n", i)
			continue
		}
		cells := make([]string, len(row))
		for j, p := range row {
			occupant := "-"
			if p != nil {
				occupant = fmt.Sprintf("%s %s %s", p.Name, p.Surname, p.IDCard)
			}
			cells[j] = fmt.Sprintf("%c: %s", letters[j], occupant)
		}
		fmt.Fprintf(&b, "Row %d {%s}\n", i, strings.Join(cells, ", "))
	}
	return b.String()
}

func BoardingCard(card domain.BoardingCard) string {
	p := card.Passenger
	return fmt.Sprintf("%s\n|     %s %s %s %s %s %s      |\n%s\n",
		cardBorder,
		p.Name, p.Surname, p.IDCard, card.Seat, card.FlightNumber, card.AircraftModel,
		cardBorder,
	)
}

func Cards(cards []domain.BoardingCard) string {
	var b strings.Builder
	for _, card := range cards {
		b.WriteString(BoardingCard(card))
	}
	return b.String()
}

func BoardingCards(f *domain.Flight) string {
	return Cards(f.BoardingCards())
}

func WriteSeatingChart(w io.Writer, f *domain.Flight) error {
	_, err := io.WriteString(w, SeatingChart(f))
	return err
}

func WriteBoardingCards(w io.Writer, f *domain.Flight) error {
	_, err := io.WriteString(w, BoardingCards(f))
	return err
}

func PrintSeating(f *domain.Flight) error {
	return WriteSeatingChart(os.Stdout, f)
}

func PrintBoardingCards(f *domain.Flight) error {
	return WriteBoardingCards(os.Stdout, f)
}
