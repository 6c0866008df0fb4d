package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/services"
)

// AssignmentHandler handles expense-to-budget assignment requests.
type AssignmentHandler struct {
	assignmentService services.AssignmentServicer
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService services.AssignmentServicer) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// SetAssignmentRequest represents the request payload for assigning an
// expense to a budget. A null budget_id clears the assignment. When
// week_start_date is present the target budget must be a week budget whose
// period starts on exactly that date.
type SetAssignmentRequest struct {
	ExpenseID     uint    `json:"expense_id" binding:"required"`
	BudgetID      *uint   `json:"budget_id"`
	WeekStartDate *string `json:"week_start_date" binding:"omitempty,dateonly"`
}

// SetAssignment handles POST /assignments. Assignment is an upsert: an
// expense holds at most one budget link, and repeating the same request is a
// no-op.
func (h *AssignmentHandler) SetAssignment(c *gin.Context) {
	var req SetAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	weekStart, err := parseOptionalDate(req.WeekStartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.assignmentService.SetExpenseBudget(req.ExpenseID, req.BudgetID, weekStart)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": result})
}
