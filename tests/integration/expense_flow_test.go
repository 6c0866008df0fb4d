package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestExpenseFlow_CreateListUpdateDelete(t *testing.T) {
	app := setupApp(t)

	expenseID := app.createExpense(t, "2024-06-05", 4500, "coffee")
	app.createExpense(t, "2024-06-07", 12000, "groceries")

	// List is ordered newest first.
	rec := app.request("GET", "/api/v1/expenses", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(data))
	}
	if data[0].(map[string]interface{})["date"] != "2024-06-07" {
		t.Errorf("expected newest first, got %v", data[0].(map[string]interface{})["date"])
	}
	if result["total_items"].(float64) != 2 {
		t.Errorf("expected total_items 2, got %v", result["total_items"])
	}

	// Date range filter is inclusive.
	rec = app.request("GET", "/api/v1/expenses?from_date=2024-06-06&to_date=2024-06-07", "")
	data = parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 filtered expense, got %d", len(data))
	}

	// Full replace.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/expenses/%.0f", expenseID),
		`{"date":"2024-06-06","amount":5000,"note":"espresso","paid_by":"test"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["amount"].(float64) != 5000 || expense["note"] != "espresso" {
		t.Errorf("unexpected updated expense: %v", expense)
	}

	// Soft delete removes it from lists.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/expenses/%.0f", expenseID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/expenses", "")
	data = parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 expense after delete, got %d", len(data))
	}

	// Deleting again reports not found.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/expenses/%.0f", expenseID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestExpenseFlow_RequiresPayer(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/expenses",
		`{"date":"2024-06-05","amount":4500,"note":"coffee"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without payer, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "PAID_BY_REQUIRED" {
		t.Errorf("expected PAID_BY_REQUIRED, got %v", errObj["code"])
	}
}

func TestExpenseFlow_UpdateKeepsAssignment(t *testing.T) {
	app := setupApp(t)
	budgetID := app.createWeekBudget(t, "Groceries", 500000, "2024-06-03")
	expenseID := app.createExpense(t, "2024-06-05", 4500, "coffee")
	if rec := app.assign(t, expenseID, budgetID); rec.Code != http.StatusOK {
		t.Fatalf("assign failed: %d %s", rec.Code, rec.Body.String())
	}

	// Moving the date outside the budget period does not clear the link.
	rec := app.request("PUT", fmt.Sprintf("/api/v1/expenses/%.0f", expenseID),
		`{"date":"2024-06-12","amount":4500,"note":"coffee","paid_by":"test"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}

	// The expense now counts toward the budget's period window, so the
	// June 3 report no longer sees it, but the assignment row survives and
	// shows up in the June 10 week as assigned.
	rec = app.request("GET", "/api/v1/report?week_start=2024-06-10", "")
	report := parseJSON(t, rec)
	transactions := report["transactions"].([]interface{})
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction in week of June 10, got %d", len(transactions))
	}
	tx := transactions[0].(map[string]interface{})
	if tx["budget_id"] == nil {
		t.Error("expected assignment to survive the date change")
	}
}
