package seating

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Domenick1991/flightseats/internal/domain"
	"github.com/Domenick1991/flightseats/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newFlight(t *testing.T, rows, seats int) *domain.Flight {
	t.Helper()
	aircraft, err := domain.NewAircraft("G-EUAH", "Airbus A319", rows, seats)
	require.NoError(t, err)
	flight, err := domain.NewFlight("BA117", aircraft)
	require.NoError(t, err)
	return flight
}

func newService(t *testing.T, producer Producer, opts ...SeatingServiceOption) *SeatingService {
	t.Helper()
	opts = append(opts, WithClock(func() time.Time { return fixedNow }))
	return NewSeatingService(newFlight(t, 22, 6), producer, "seat-events", zap.NewNop().Sugar(), opts...)
}

var jack = AllocateInput{Seat: "12a", Name: "Jack", Surname: "Shephard", IDCard: "85994003S"}

func TestSeatingService_Allocate_Success(t *testing.T) {
	mockProducer := &MockProducer{}
	service := newService(t, mockProducer)
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "seat-events", "BA117", mock.MatchedBy(func(e kafka.SeatEvent) bool {
		return e.Type == kafka.EventSeatAllocated &&
			e.Seat == "12A" &&
			e.FromSeat == "" &&
			e.Name == "Jack" &&
			e.AircraftModel == "Airbus A319" &&
			e.OccurredAt.Equal(fixedNow) &&
			e.ID != ""
	})).Return(nil).Once()

	card, err := service.Allocate(ctx, jack)

	require.NoError(t, err)
	assert.Equal(t, &domain.BoardingCard{
		Passenger:     domain.PassengerData{Name: "Jack", Surname: "Shephard", IDCard: "85994003S"},
		Seat:          "12A",
		FlightNumber:  "BA117",
		AircraftModel: "Airbus A319",
	}, card)
	assert.Equal(t, 22*6-1, service.Summary(ctx).AvailableSeats)

	mockProducer.AssertExpectations(t)
}

func TestSeatingService_Allocate_NotificationsTopic(t *testing.T) {
	mockProducer := &MockProducer{}
	service := newService(t, mockProducer, WithNotificationsTopic("boarding-cards"))
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "seat-events", "BA117", mock.AnythingOfType("kafka.SeatEvent")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "boarding-cards", "BA117", mock.AnythingOfType("kafka.SeatEvent")).Return(nil).Once()

	_, err := service.Allocate(ctx, jack)

	require.NoError(t, err)
	mockProducer.AssertExpectations(t)
}

func TestSeatingService_Allocate_InvalidPassenger(t *testing.T) {
	mockProducer := &MockProducer{}
	service := newService(t, mockProducer)
	ctx := context.Background()

	input := jack
	input.IDCard = "1234"
	card, err := service.Allocate(ctx, input)

	assert.Nil(t, card)
	assert.Equal(t, domain.RulePassenger, domain.RuleOf(err))
	assert.Equal(t, 22*6, service.Summary(ctx).AvailableSeats)
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestSeatingService_Allocate_Occupied(t *testing.T) {
	mockProducer := &MockProducer{}
	service := newService(t, mockProducer)
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "seat-events", "BA117", mock.Anything).Return(nil).Once()
	_, err := service.Allocate(ctx, jack)
	require.NoError(t, err)

	_, err = service.Allocate(ctx, AllocateInput{Seat: "12A", Name: "Kate", Surname: "Austen", IDCard: "12589756P"})

	assert.Equal(t, domain.RuleSeatOccupied, domain.RuleOf(err))
	p, err := service.Passenger(ctx, "12A")
	require.NoError(t, err)
	assert.Equal(t, "Jack", p.Name)
	mockProducer.AssertExpectations(t)
}

func TestSeatingService_Allocate_PublishFailureIsNotFatal(t *testing.T) {
	mockProducer := &MockProducer{}
	service := newService(t, mockProducer)
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "seat-events", "BA117", mock.Anything).Return(errors.New("broker down")).Once()

	card, err := service.Allocate(ctx, jack)

	require.NoError(t, err)
	assert.Equal(t, "12A", card.Seat)
	mockProducer.AssertExpectations(t)
}

func TestSeatingService_Allocate_WithoutProducer(t *testing.T) {
	service := newService(t, nil)

	card, err := service.Allocate(context.Background(), jack)

	require.NoError(t, err)
	assert.Equal(t, "12A", card.Seat)
}

func TestSeatingService_Reallocate_Success(t *testing.T) {
	mockProducer := &MockProducer{}
	service := newService(t, mockProducer)
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "seat-events", "BA117", mock.MatchedBy(func(e kafka.SeatEvent) bool {
		return e.Type == kafka.EventSeatAllocated
	})).Return(nil).Once()
	mockProducer.On("Publish", ctx, "seat-events", "BA117", mock.MatchedBy(func(e kafka.SeatEvent) bool {
		return e.Type == kafka.EventSeatReallocated && e.FromSeat == "12A" && e.Seat == "14C"
	})).Return(nil).Once()

	_, err := service.Allocate(ctx, jack)
	require.NoError(t, err)
	before := service.Summary(ctx).AvailableSeats

	card, err := service.Reallocate(ctx, ReallocateInput{FromSeat: "12A", ToSeat: "14c"})

	require.NoError(t, err)
	assert.Equal(t, "14C", card.Seat)
	assert.Equal(t, "Jack", card.Passenger.Name)
	assert.Equal(t, before, service.Summary(ctx).AvailableSeats)
	empty, err := service.Passenger(ctx, "12A")
	require.NoError(t, err)
	assert.Nil(t, empty)
	mockProducer.AssertExpectations(t)
}

func TestSeatingService_Reallocate_FromEmptySeat(t *testing.T) {
	mockProducer := &MockProducer{}
	service := newService(t, mockProducer)

	card, err := service.Reallocate(context.Background(), ReallocateInput{FromSeat: "1A", ToSeat: "2B"})

	assert.Nil(t, card)
	assert.Equal(t, domain.RuleSeatFree, domain.RuleOf(err))
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestSeatingService_Passenger_InvalidSeat(t *testing.T) {
	service := newService(t, nil)

	p, err := service.Passenger(context.Background(), "99Z")

	assert.Nil(t, p)
	assert.Equal(t, domain.RuleSeat, domain.RuleOf(err))
}

func TestSeatingService_Summary(t *testing.T) {
	service := newService(t, nil)

	assert.Equal(t, Summary{
		FlightNumber:   "BA117",
		AircraftModel:  "Airbus A319",
		Registration:   "G-EUAH",
		Rows:           22,
		SeatsPerRow:    6,
		TotalSeats:     132,
		AvailableSeats: 132,
	}, service.Summary(context.Background()))
}

func TestSeatingService_BoardingCardsAndChart(t *testing.T) {
	service := newService(t, nil)
	ctx := context.Background()
	_, err := service.Allocate(ctx, jack)
	require.NoError(t, err)

	cards := service.BoardingCards(ctx)
	require.Len(t, cards, 1)
	assert.Equal(t, "12A", cards[0].Seat)

	assert.Contains(t, service.SeatingChart(ctx), "Row 12 {A: Jack Shephard 85994003S")
	assert.Len(t, service.Seating(ctx), 23)
}

func TestSeatingService_SerializesAllocations(t *testing.T) {
	service := NewSeatingService(newFlight(t, 1, 4), nil, "", zap.NewNop().Sugar())
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Allocate(ctx, AllocateInput{Seat: "1A", Name: "Jack", Surname: "Shephard", IDCard: "85994003S"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 3, service.Summary(ctx).AvailableSeats)
}
