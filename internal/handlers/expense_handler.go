package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/services"
)

// ExpenseHandler handles expense entry requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the request payload for creating or replacing an
// expense. Amount is in cents and must not be negative.
type ExpenseRequest struct {
	Date     string `json:"date" binding:"required,dateonly"`
	Amount   int64  `json:"amount" binding:"min=0"`
	Note     string `json:"note" binding:"max=500"`
	Category string `json:"category" binding:"max=100"`
	PaidBy   string `json:"paid_by" binding:"max=100"`
}

// ListExpensesQuery holds the query parameters for listing expenses.
type ListExpensesQuery struct {
	pagination.PageRequest
	FromDate *string `form:"from_date" binding:"omitempty,dateonly"`
	ToDate   *string `form:"to_date" binding:"omitempty,dateonly"`
}

func (r *ExpenseRequest) toInput() (services.ExpenseInput, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return services.ExpenseInput{}, apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}
	return services.ExpenseInput{
		Date:     date,
		Amount:   r.Amount,
		Note:     r.Note,
		Category: r.Category,
		PaidBy:   r.PaidBy,
	}, nil
}

// CreateExpense handles POST /expenses.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// UpdateExpense handles PUT /expenses/:id. The payload replaces the stored
// fields wholesale; an existing budget assignment is left in place even when
// the new date falls outside the assigned budget's period.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles DELETE /expenses/:id. Deletion is soft; the row is
// kept but excluded from lists and report aggregation.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.SoftDeleteExpense(expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// ListExpenses handles GET /expenses with pagination and an optional
// inclusive date range.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var query ListExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	query.Defaults()

	from, err := parseOptionalDate(query.FromDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseOptionalDate(query.ToDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.expenseService.GetExpenses(query.PageRequest, services.ExpenseFilter{
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
