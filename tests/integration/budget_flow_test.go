package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBudgetFlow_CreateNormalizesWeek(t *testing.T) {
	app := setupApp(t)

	// Seed with a Wednesday. The stored period must snap to the Monday week
	// containing it.
	rec := app.request("POST", "/api/v1/budgets",
		`{"name":"Groceries","amount":500000,"period":"week","period_start_date":"2024-06-05"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["period_start_date"] != "2024-06-03" {
		t.Errorf("expected period_start_date 2024-06-03, got %v", budget["period_start_date"])
	}
	if budget["period_end_date"] != "2024-06-09" {
		t.Errorf("expected period_end_date 2024-06-09, got %v", budget["period_end_date"])
	}
}

func TestBudgetFlow_CreateNormalizesMonth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/budgets",
		`{"name":"Rent","amount":120000,"period":"month","period_start_date":"2024-02-14"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["period_start_date"] != "2024-02-01" {
		t.Errorf("expected period_start_date 2024-02-01, got %v", budget["period_start_date"])
	}
	// 2024 is a leap year.
	if budget["period_end_date"] != "2024-02-29" {
		t.Errorf("expected period_end_date 2024-02-29, got %v", budget["period_end_date"])
	}
}

func TestBudgetFlow_CustomRangeValidation(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/budgets",
		`{"name":"Trip","amount":300000,"period":"custom","period_start_date":"2024-06-10","period_end_date":"2024-06-03"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/budgets",
		`{"name":"Trip","amount":300000,"period":"custom","period_start_date":"2024-06-10","period_end_date":"2024-06-10"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for single-day range, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBudgetFlow_UpdateAndDelete(t *testing.T) {
	app := setupApp(t)
	budgetID := app.createWeekBudget(t, "Groceries", 500000, "2024-06-03")

	// Rename without touching the period.
	rec := app.request("PATCH", fmt.Sprintf("/api/v1/budgets/%.0f", budgetID),
		`{"name":"Food"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["name"] != "Food" {
		t.Errorf("expected renamed budget, got %v", budget["name"])
	}
	if budget["period_start_date"] != "2024-06-03" {
		t.Errorf("expected unchanged period start, got %v", budget["period_start_date"])
	}

	// Changing the seed date re-normalizes the stored bounds.
	rec = app.request("PATCH", fmt.Sprintf("/api/v1/budgets/%.0f", budgetID),
		`{"period_start_date":"2024-06-12"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	budget = parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["period_start_date"] != "2024-06-10" {
		t.Errorf("expected re-normalized start 2024-06-10, got %v", budget["period_start_date"])
	}

	// Delete and confirm it is gone.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/budgets/%.0f", budgetID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/budgets/%.0f", budgetID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBudgetFlow_DeleteUnassignsExpenses(t *testing.T) {
	app := setupApp(t)
	budgetID := app.createWeekBudget(t, "Groceries", 500000, "2024-06-03")
	expenseID := app.createExpense(t, "2024-06-05", 4500, "coffee")

	rec := app.assign(t, expenseID, budgetID)
	if rec.Code != http.StatusOK {
		t.Fatalf("assign failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("DELETE", fmt.Sprintf("/api/v1/budgets/%.0f", budgetID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	// The expense survives and shows as unassigned in the report.
	rec = app.request("GET", "/api/v1/report?week_start=2024-06-03", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("report failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["unassigned_spent"].(float64) != 4500 {
		t.Errorf("expected 4500 unassigned after budget delete, got %v", summary["unassigned_spent"])
	}
}
