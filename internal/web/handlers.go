package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/pipeline"

	"github.com/gin-gonic/gin"
)

// DayResponse is one day plus its converted total.
type DayResponse struct {
	model.Day
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}

func handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok\n")
}

func (s *Service) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.Status())
}

// handleIndex handles GET /?day=N&budget=category
func (s *Service) handleIndex(c *gin.Context) {
	trip, _, err := s.Trip()
	if err != nil {
		respondError(c, err)
		return
	}

	day := 0
	if raw := c.Query("day"); raw != "" {
		if day, err = parseDay(raw); err != nil {
			respondError(c, err)
			return
		}
	}

	var modal model.Category
	if raw := c.Query("budget"); raw != "" {
		if modal, err = model.ParseCategory(raw); err != nil {
			respondError(c, err)
			return
		}
	}

	page, err := NewPageData(trip, day, modal)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := RenderPage(&buf, page); err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// handleData handles GET /data.json
func (s *Service) handleData(c *gin.Context) {
	_, payload, err := s.Trip()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// handleDay handles GET /api/days/:day
func (s *Service) handleDay(c *gin.Context) {
	trip, _, err := s.Trip()
	if err != nil {
		respondError(c, err)
		return
	}

	n, err := parseDay(c.Param("day"))
	if err != nil {
		respondError(c, err)
		return
	}
	day, ok := pipeline.DayByNumber(trip, n)
	if !ok {
		respondError(c, fmt.Errorf("%w: %d", ErrDayNotFound, n))
		return
	}

	c.JSON(http.StatusOK, DayResponse{
		Day:      day,
		Total:    pipeline.DayCost(trip, day),
		Currency: trip.Meta.HomeCurrency,
	})
}

// handleBudget handles GET /api/budget
func (s *Service) handleBudget(c *gin.Context) {
	trip, _, err := s.Trip()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pipeline.BudgetAll(trip))
}

// handleBudgetCategory handles GET /api/budget/:category
func (s *Service) handleBudgetCategory(c *gin.Context) {
	trip, _, err := s.Trip()
	if err != nil {
		respondError(c, err)
		return
	}

	cat, err := model.ParseCategory(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pipeline.Budget(trip, cat))
}

func parseDay(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, raw)
	}
	return n, nil
}
