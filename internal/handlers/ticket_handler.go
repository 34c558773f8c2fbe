package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"yellowball/internal/services"
)

// TicketHandler handles ticket-related HTTP requests
type TicketHandler struct {
	ticketService  *services.TicketService
	resultsService services.ResultsService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService *services.TicketService, resultsService services.ResultsService) *TicketHandler {
	return &TicketHandler{
		ticketService:  ticketService,
		resultsService: resultsService,
	}
}

// CheckTicketRequest is the body for POST /tickets/check
type CheckTicketRequest struct {
	Numbers     string `json:"numbers" binding:"required"` // comma-separated white ball numbers
	Megaball    int    `json:"megaball" binding:"required"`
	Megaplier   bool   `json:"megaplier"`
	Draws       int    `json:"draws"`
	Purchased   string `json:"purchased" binding:"required"` // YYYY-MM-DD
	LastOnly    bool   `json:"last_only"`
	WinnersOnly bool   `json:"winners_only"`
}

// CheckTicket handles POST /tickets/check
func (h *TicketHandler) CheckTicket(c *gin.Context) {
	var request CheckTicketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draws := ""
	if request.Draws != 0 {
		draws = strconv.Itoa(request.Draws)
	}
	ticket, err := h.ticketService.Validate(
		request.Numbers,
		strconv.Itoa(request.Megaball),
		draws,
		request.Purchased,
		request.Megaplier,
	)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTicket) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate ticket: " + err.Error()})
		}
		return
	}

	checker := services.NewCheckerService(h.resultsService, request.LastOnly)
	report, err := checker.Check(c.Request.Context(), ticket)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve drawing results: " + err.Error()})
		return
	}

	reporter := services.NewReportService(services.NewStyle(true), request.WinnersOnly)
	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"text":   reporter.Render(report),
	})
}

// QuickPick handles GET /quickpick
func (h *TicketHandler) QuickPick(c *gin.Context) {
	c.JSON(http.StatusOK, h.ticketService.QuickPick())
}

// GetResults handles GET /results?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *TicketHandler) GetResults(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing start date, expected YYYY-MM-DD"})
		return
	}

	end := time.Now()
	if endStr := c.Query("end"); endStr != "" {
		end, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
			return
		}
	}

	results, err := h.resultsService.GetResults(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve drawing results: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}
