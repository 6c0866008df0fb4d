package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/services"
)

// BudgetHandler handles budget CRUD requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Name            string              `json:"name" binding:"required,min=1,max=100"`
	Amount          int64               `json:"amount" binding:"required,gt=0"`
	Period          models.BudgetPeriod `json:"period" binding:"required,budget_period"`
	PeriodStartDate string              `json:"period_start_date" binding:"required,dateonly"`
	PeriodEndDate   *string             `json:"period_end_date" binding:"omitempty,dateonly"`
}

// UpdateBudgetRequest represents the request payload for partially updating a budget.
type UpdateBudgetRequest struct {
	Name            *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Amount          *int64               `json:"amount" binding:"omitempty,gt=0"`
	Period          *models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
	PeriodStartDate *string              `json:"period_start_date" binding:"omitempty,dateonly"`
	PeriodEndDate   *string              `json:"period_end_date" binding:"omitempty,dateonly"`
}

func parseOptionalDate(s *string) (*models.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := models.ParseDate(*s)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}
	return &d, nil
}

// CreateBudget handles POST /budgets. The stored period bounds are
// normalized: week and month budgets derive canonical bounds from the seed
// date, custom budgets keep the validated range.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	start, err := models.ParseDate(req.PeriodStartDate)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidDate, err))
		return
	}
	end, err := parseOptionalDate(req.PeriodEndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(services.BudgetCreateInput{
		Name:            req.Name,
		Amount:          req.Amount,
		Period:          req.Period,
		PeriodStartDate: start,
		PeriodEndDate:   end,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudget handles GET /budgets/:id.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles PATCH /budgets/:id. Omitted fields are left
// untouched; an empty patch is a no-op that returns a null budget.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	start, err := parseOptionalDate(req.PeriodStartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseOptionalDate(req.PeriodEndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.UpdateBudget(budgetID, services.BudgetUpdateInput{
		Name:            req.Name,
		Amount:          req.Amount,
		Period:          req.Period,
		PeriodStartDate: start,
		PeriodEndDate:   end,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles DELETE /budgets/:id. Assignment rows referencing the
// budget are removed in the same transaction; expenses become unassigned.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.DeleteBudget(budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}
