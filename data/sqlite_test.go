package data_test

import (
	"errors"
	"testing"

	"github.com/sanyokkme/fiyouai/data"
)

func newTestStore(t *testing.T) *data.SQLiteStore {
	t.Helper()
	store, err := data.NewSQLiteStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSQLiteStore() error: %v", err)
	}
	return store
}

func TestInsertAndFetchRoundTrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	err := store.InsertRow("meal_history", data.Row{
		"id":         "m1",
		"user_id":    "u1",
		"meal_name":  "Борщ",
		"calories":   350,
		"protein":    12.5,
		"created_at": "2025-06-15T12:00:00+02:00",
	})
	if err != nil {
		t.Fatalf("InsertRow() error: %v", err)
	}

	rows, err := store.FetchRows(data.Query{
		Table:   "meal_history",
		Filters: []data.Filter{data.Eq("user_id", "u1")},
	})
	if err != nil {
		t.Fatalf("FetchRows() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["meal_name"] != "Борщ" {
		t.Errorf("meal_name = %v, want Борщ", rows[0]["meal_name"])
	}
}

func TestFetchRowsGteOrderLimit(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	timestamps := []string{
		"2025-06-14T08:00:00+02:00",
		"2025-06-15T08:00:00+02:00",
		"2025-06-16T08:00:00+02:00",
	}
	for i, ts := range timestamps {
		err := store.InsertRow("water_logs", data.Row{
			"id": string(rune('a' + i)), "user_id": "u1", "amount": 250, "created_at": ts,
		})
		if err != nil {
			t.Fatalf("InsertRow() error: %v", err)
		}
	}

	rows, err := store.FetchRows(data.Query{
		Table: "water_logs",
		Filters: []data.Filter{
			data.Eq("user_id", "u1"),
			data.Gte("created_at", "2025-06-15T00:00:00+02:00"),
		},
		OrderBy: "created_at",
		Desc:    true,
		Limit:   1,
	})
	if err != nil {
		t.Fatalf("FetchRows() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["created_at"] != "2025-06-16T08:00:00+02:00" {
		t.Errorf("created_at = %v, want newest entry", rows[0]["created_at"])
	}
}

func TestFetchRowsILike(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	names := []string{"Вівсянка", "Гречка", "вівсяне печиво"}
	for _, name := range names {
		if err := store.InsertRow("food_products", data.Row{"name": name, "calories": 100}); err != nil {
			t.Fatalf("InsertRow() error: %v", err)
		}
	}

	rows, err := store.FetchRows(data.Query{
		Table:   "food_products",
		Filters: []data.Filter{data.ILike("name", "%вівся%")},
	})
	if err != nil {
		t.Fatalf("FetchRows() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(rows), rows)
	}
}

func TestFetchSingleNotFound(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := store.FetchSingle(data.Query{
		Table:   "user_profiles",
		Filters: []data.Filter{data.Eq("id", "missing")},
	})
	if !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	err := store.InsertRow("user_profiles", data.Row{
		"id": "u1", "name": "Оля", "weight": 60.0,
	})
	if err != nil {
		t.Fatalf("InsertRow() error: %v", err)
	}

	err = store.UpdateRow("user_profiles",
		[]data.Filter{data.Eq("id", "u1")},
		data.Row{"weight": 58.5})
	if err != nil {
		t.Fatalf("UpdateRow() error: %v", err)
	}

	row, err := store.FetchSingle(data.Query{
		Table:   "user_profiles",
		Filters: []data.Filter{data.Eq("id", "u1")},
	})
	if err != nil {
		t.Fatalf("FetchSingle() error: %v", err)
	}
	if row["weight"] != 58.5 {
		t.Errorf("weight = %v, want 58.5", row["weight"])
	}

	if err := store.DeleteRow("user_profiles", []data.Filter{data.Eq("id", "u1")}); err != nil {
		t.Fatalf("DeleteRow() error: %v", err)
	}
	if _, err := store.FetchSingle(data.Query{
		Table:   "user_profiles",
		Filters: []data.Filter{data.Eq("id", "u1")},
	}); !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("error after delete = %v, want ErrNotFound", err)
	}
}

func TestUnknownTableAndColumnRejected(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	if _, err := store.FetchRows(data.Query{Table: "secrets"}); err == nil {
		t.Fatal("unknown table accepted")
	}
	if err := store.InsertRow("user_profiles", data.Row{"is_admin": true}); err == nil {
		t.Fatal("unknown column accepted")
	}
}
