package seating

import (
	"context"
	"sync"
	"time"

	"github.com/Domenick1991/flightseats/internal/domain"
	"github.com/Domenick1991/flightseats/internal/kafka"
	"github.com/Domenick1991/flightseats/internal/render"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatingUseCase interface {
	Summary(ctx context.Context) Summary
	Seating(ctx context.Context) domain.Seating
	Passenger(ctx context.Context, seat string) (*domain.PassengerData, error)
	Allocate(ctx context.Context, input AllocateInput) (*domain.BoardingCard, error)
	Reallocate(ctx context.Context, input ReallocateInput) (*domain.BoardingCard, error)
	BoardingCards(ctx context.Context) []domain.BoardingCard
	SeatingChart(ctx context.Context) string
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Summary struct {
	FlightNumber   string `json:"flight_number"`
	AircraftModel  string `json:"aircraft_model"`
	Registration   string `json:"registration"`
	Rows           int    `json:"rows"`
	SeatsPerRow    int    `json:"seats_per_row"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

type AllocateInput struct {
	Seat    string `json:"seat"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	IDCard  string `json:"id_card"`
}

type ReallocateInput struct {
	FromSeat string `json:"from_seat"`
	ToSeat   string `json:"to_seat"`
}

// SeatingService serves a single flight. Every call holds the service lock,
// so the flight only ever sees one caller at a time.
type SeatingService struct {
	mu                 sync.Mutex
	flight             *domain.Flight
	producer           Producer
	seatEventsTopic    string
	notificationsTopic string
	log                *zap.SugaredLogger
	now                func() time.Time
}

type SeatingServiceOption func(*SeatingService)

func WithNotificationsTopic(topic string) SeatingServiceOption {
	return func(s *SeatingService) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) SeatingServiceOption {
	return func(s *SeatingService) {
		s.now = now
	}
}

// NewSeatingService wraps flight. producer may be nil, in which case no
// events are published.
func NewSeatingService(
	flight *domain.Flight,
	producer Producer,
	seatEventsTopic string,
	log *zap.SugaredLogger,
	opts ...SeatingServiceOption,
) *SeatingService {
	service := &SeatingService{
		flight:          flight,
		producer:        producer,
		seatEventsTopic: seatEventsTopic,
		log:             log,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *SeatingService) Summary(_ context.Context) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	aircraft := s.flight.Aircraft()
	return Summary{
		FlightNumber:   s.flight.Number(),
		AircraftModel:  aircraft.Model(),
		Registration:   aircraft.Registration(),
		Rows:           aircraft.NumRows(),
		SeatsPerRow:    aircraft.NumSeatsPerRow(),
		TotalSeats:     aircraft.NumSeats(),
		AvailableSeats: s.flight.NumAvailableSeats(),
	}
}

func (s *SeatingService) Seating(_ context.Context) domain.Seating {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flight.Seating()
}

// Passenger returns nil for an empty seat.
func (s *SeatingService) Passenger(_ context.Context, seat string) (*domain.PassengerData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok, err := s.flight.PassengerAt(seat)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *SeatingService) Allocate(ctx context.Context, input AllocateInput) (*domain.BoardingCard, error) {
	passenger, err := domain.NewPassenger(input.Name, input.Surname, input.IDCard)
	if err != nil {
		return nil, err
	}

	card, err := s.allocate(input.Seat, passenger.PassengerData())
	if err != nil {
		s.log.Infow("allocation rejected", "flight", s.flight.Number(), "seat", input.Seat, "error", err)
		return nil, err
	}
	s.log.Infow("passenger allocated", "flight", card.FlightNumber, "seat", card.Seat)

	if err := s.publish(ctx, kafka.EventSeatAllocated, card, ""); err != nil {
		s.log.Warnw("failed to publish seat event", "type", kafka.EventSeatAllocated, "seat", card.Seat, "error", err)
	}
	return card, nil
}

func (s *SeatingService) Reallocate(ctx context.Context, input ReallocateInput) (*domain.BoardingCard, error) {
	card, from, err := s.reallocate(input.FromSeat, input.ToSeat)
	if err != nil {
		s.log.Infow("reallocation rejected", "flight", s.flight.Number(), "from", input.FromSeat, "to", input.ToSeat, "error", err)
		return nil, err
	}
	s.log.Infow("passenger reallocated", "flight", card.FlightNumber, "from", from, "to", card.Seat)

	if err := s.publish(ctx, kafka.EventSeatReallocated, card, from); err != nil {
		s.log.Warnw("failed to publish seat event", "type", kafka.EventSeatReallocated, "seat", card.Seat, "error", err)
	}
	return card, nil
}

func (s *SeatingService) BoardingCards(_ context.Context) []domain.BoardingCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flight.BoardingCards()
}

func (s *SeatingService) SeatingChart(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.SeatingChart(s.flight)
}

func (s *SeatingService) allocate(seat string, passenger domain.PassengerData) (*domain.BoardingCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.flight.AllocatePassenger(seat, passenger); err != nil {
		return nil, err
	}
	return s.cardFor(seat, passenger)
}

func (s *SeatingService) reallocate(fromSeat, toSeat string) (*domain.BoardingCard, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.flight.ReallocatePassenger(fromSeat, toSeat); err != nil {
		return nil, "", err
	}
	from, err := s.flight.ParseSeat(fromSeat)
	if err != nil {
		return nil, "", err
	}
	passenger, _, err := s.flight.PassengerAt(toSeat)
	if err != nil {
		return nil, "", err
	}
	card, err := s.cardFor(toSeat, passenger)
	if err != nil {
		return nil, "", err
	}
	return card, from.String(), nil
}

func (s *SeatingService) cardFor(seat string, passenger domain.PassengerData) (*domain.BoardingCard, error) {
	parsed, err := s.flight.ParseSeat(seat)
	if err != nil {
		return nil, err
	}
	return &domain.BoardingCard{
		Passenger:     passenger,
		Seat:          parsed.String(),
		FlightNumber:  s.flight.Number(),
		AircraftModel: s.flight.AircraftModel(),
	}, nil
}

func (s *SeatingService) publish(ctx context.Context, eventType string, card *domain.BoardingCard, fromSeat string) error {
	if s.producer == nil || s.seatEventsTopic == "" {
		return nil
	}
	event := kafka.SeatEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		FlightNumber:  card.FlightNumber,
		AircraftModel: card.AircraftModel,
		Seat:          card.Seat,
		FromSeat:      fromSeat,
		Name:          card.Passenger.Name,
		Surname:       card.Passenger.Surname,
		IDCard:        card.Passenger.IDCard,
		OccurredAt:    s.now(),
	}
	if err := s.producer.Publish(ctx, s.seatEventsTopic, card.FlightNumber, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, card.FlightNumber, event)
	}
	return nil
}

var _ SeatingUseCase = (*SeatingService)(nil)
