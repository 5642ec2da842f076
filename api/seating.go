package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightseats/internal/domain"
	"github.com/Domenick1991/flightseats/internal/render"
	"github.com/Domenick1991/flightseats/internal/service/seating"
	"github.com/gin-gonic/gin"
)

const textPlain = "text/plain; charset=utf-8"

type SeatingHandler struct {
	service seating.SeatingUseCase
}

type allocateRequest struct {
	Seat    string `json:"seat" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	IDCard  string `json:"id_card" binding:"required"`
}

type reallocateRequest struct {
	FromSeat string `json:"from_seat" binding:"required"`
	ToSeat   string `json:"to_seat" binding:"required"`
}

type seatResponse struct {
	Seat      string                `json:"seat"`
	Passenger *domain.PassengerData `json:"passenger"`
}

type rowResponse struct {
	Row   int            `json:"row"`
	Seats []seatResponse `json:"seats"`
}

func NewSeatingHandler(service seating.SeatingUseCase) *SeatingHandler {
	return &SeatingHandler{service: service}
}

func (h *SeatingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.summary)
	router.GET("/seats", h.seats)
	router.GET("/seats/:seat", h.seat)
	router.POST("/allocations", h.allocate)
	router.POST("/reallocations", h.reallocate)
	router.GET("/boarding-cards", h.boardingCards)
	router.GET("/chart", h.chart)
}

func (h *SeatingHandler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summary(c.Request.Context()))
}

func (h *SeatingHandler) seats(c *gin.Context) {
	grid := h.service.Seating(c.Request.Context())

	rows := make([]rowResponse, 0, len(grid))
	for i, row := range grid {
		if row == nil {
			continue
		}
		seats := make([]seatResponse, len(row))
		for j, p := range row {
			seats[j] = seatResponse{
				Seat:      strconv.Itoa(i) + string(rune('A'+j)),
				Passenger: p,
			}
		}
		rows = append(rows, rowResponse{Row: i, Seats: seats})
	}
	c.JSON(http.StatusOK, rows)
}

func (h *SeatingHandler) seat(c *gin.Context) {
	seat := c.Param("seat")
	passenger, err := h.service.Passenger(c.Request.Context(), seat)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, seatResponse{Seat: seat, Passenger: passenger})
}

func (h *SeatingHandler) allocate(c *gin.Context) {
	var req allocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.service.Allocate(c.Request.Context(), seating.AllocateInput{
		Seat:    req.Seat,
		Name:    req.Name,
		Surname: req.Surname,
		IDCard:  req.IDCard,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *SeatingHandler) reallocate(c *gin.Context) {
	var req reallocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.service.Reallocate(c.Request.Context(), seating.ReallocateInput{
		FromSeat: req.FromSeat,
		ToSeat:   req.ToSeat,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *SeatingHandler) boardingCards(c *gin.Context) {
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, h.service.BoardingCards(c.Request.Context()))
		return
	}
	c.Data(http.StatusOK, textPlain, []byte(render.Cards(h.service.BoardingCards(c.Request.Context()))))
}

func (h *SeatingHandler) chart(c *gin.Context) {
	c.Data(http.StatusOK, textPlain, []byte(h.service.SeatingChart(c.Request.Context())))
}

func statusFor(err error) int {
	switch domain.RuleOf(err) {
	case domain.RuleSeatOccupied, domain.RuleNoSeatsLeft:
		return http.StatusConflict
	case domain.RuleSeatFree:
		return http.StatusNotFound
	case "":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
