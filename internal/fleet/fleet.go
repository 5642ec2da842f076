package fleet

import (
	"fmt"

	"github.com/Domenick1991/flightseats/config"
	"github.com/Domenick1991/flightseats/internal/domain"
)

// Build constructs every configured flight with its initial passengers.
// Flights keep the order of the configuration.
func Build(cfg config.FleetConfig) ([]*domain.Flight, error) {
	aircraft := make(map[string]domain.Aircraft, len(cfg.Aircraft))
	for _, ac := range cfg.Aircraft {
		a, err := newAircraft(ac)
		if err != nil {
			return nil, fmt.Errorf("aircraft %s: %w", ac.Registration, err)
		}
		if _, dup := aircraft[a.Registration()]; dup {
			return nil, fmt.Errorf("aircraft %s: duplicate registration", ac.Registration)
		}
		aircraft[a.Registration()] = a
	}

	flights := make([]*domain.Flight, 0, len(cfg.Flights))
	for _, fc := range cfg.Flights {
		a, ok := aircraft[fc.Aircraft]
		if !ok {
			return nil, fmt.Errorf("flight %s: unknown aircraft %q", fc.Number, fc.Aircraft)
		}
		flight, err := domain.NewFlight(fc.Number, a)
		if err != nil {
			return nil, fmt.Errorf("flight %s: %w", fc.Number, err)
		}
		for _, pc := range fc.Passengers {
			passenger, err := domain.NewPassenger(pc.Name, pc.Surname, pc.IDCard)
			if err != nil {
				return nil, fmt.Errorf("flight %s seat %s: %w", fc.Number, pc.Seat, err)
			}
			if err := flight.AllocatePassenger(pc.Seat, passenger.PassengerData()); err != nil {
				return nil, fmt.Errorf("flight %s seat %s: %w", fc.Number, pc.Seat, err)
			}
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

func Find(flights []*domain.Flight, number string) (*domain.Flight, error) {
	for _, f := range flights {
		if f.Number() == number {
			return f, nil
		}
	}
	return nil, fmt.Errorf("flight %q is not configured", number)
}

func newAircraft(ac config.AircraftConfig) (domain.Aircraft, error) {
	switch ac.Kind {
	case "", "aircraft":
		return domain.NewAircraft(ac.Registration, ac.Model, ac.Rows, ac.SeatsPerRow)
	case "airbus":
		return domain.NewAirbus(ac.Registration, ac.Variant)
	case "boeing":
		return domain.NewBoeing(ac.Registration, ac.Airline)
	default:
		return domain.Aircraft{}, fmt.Errorf("unknown aircraft kind %q", ac.Kind)
	}
}
