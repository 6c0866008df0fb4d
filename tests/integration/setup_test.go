package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"centavo/internal/handlers"
	"centavo/internal/logger"
	"centavo/internal/middleware"
	"centavo/internal/models"
	"centavo/internal/services"
	"centavo/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Expense{},
		&models.Budget{},
		&models.ExpenseBudget{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite. Weeks start on Monday so the fixed dates used in flows stay
// deterministic.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	budgetService := services.NewBudgetService(db, time.Monday)
	assignmentService := services.NewAssignmentService(db)
	reportService := services.NewReportService(db, time.Monday)
	expenseService := services.NewExpenseService(db, "")

	budgetHandler := handlers.NewBudgetHandler(budgetService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	reportHandler := handlers.NewReportHandler(reportService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.GET("/report", reportHandler.GetReport)
	v1.GET("/overview", reportHandler.GetOverview)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PATCH("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	v1.POST("/assignments", assignmentHandler.SetAssignment)

	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createExpense creates an expense and returns its ID.
func (app *testApp) createExpense(t *testing.T, date string, amount int64, note string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"date":%q,"amount":%d,"note":%q,"paid_by":"test"}`, date, amount, note)
	rec := app.request("POST", "/api/v1/expenses", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	expense := result["expense"].(map[string]interface{})
	return expense["id"].(float64)
}

// createWeekBudget creates a week budget seeded on the given start date and
// returns its ID.
func (app *testApp) createWeekBudget(t *testing.T, name string, amount int64, start string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"amount":%d,"period":"week","period_start_date":%q}`, name, amount, start)
	rec := app.request("POST", "/api/v1/budgets", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budget := result["budget"].(map[string]interface{})
	return budget["id"].(float64)
}

// assign links an expense to a budget (or clears the link when budgetID is
// negative) and returns the recorder.
func (app *testApp) assign(t *testing.T, expenseID, budgetID float64) *httptest.ResponseRecorder {
	t.Helper()
	var body string
	if budgetID < 0 {
		body = fmt.Sprintf(`{"expense_id":%.0f,"budget_id":null}`, expenseID)
	} else {
		body = fmt.Sprintf(`{"expense_id":%.0f,"budget_id":%.0f}`, expenseID, budgetID)
	}
	return app.request("POST", "/api/v1/assignments", body)
}
