package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/flightseats/internal/domain"
	"github.com/Domenick1991/flightseats/internal/kafka"
	"github.com/Domenick1991/flightseats/internal/render"
)

// Sender prints a boarding card for every seat event it is given.
type Sender struct {
	out io.Writer
}

func NewSender(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.SeatEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch event.Type {
	case kafka.EventSeatAllocated, kafka.EventSeatReallocated:
	default:
		return fmt.Errorf("unsupported seat event type %q", event.Type)
	}

	card := render.BoardingCard(domain.BoardingCard{
		Passenger: domain.PassengerData{
			Name:    event.Name,
			Surname: event.Surname,
			IDCard:  event.IDCard,
		},
		Seat:          event.Seat,
		FlightNumber:  event.FlightNumber,
		AircraftModel: event.AircraftModel,
	})
	_, err := io.WriteString(s.out, card)
	return err
}
