package data

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/glebarez/go-sqlite"
)

// tableColumns whitelists every table and column the store accepts, so
// query building never interpolates caller-controlled identifiers.
var tableColumns = map[string]map[string]bool{
	"user_profiles": {
		"id": true, "email": true, "name": true, "username": true,
		"weight": true, "height": true, "age": true, "gender": true,
		"activity_level": true, "goal": true, "daily_calories_target": true,
		"target_weight": true, "avatar_url": true, "created_at": true,
	},
	"meal_history": {
		"id": true, "user_id": true, "meal_name": true, "calories": true,
		"protein": true, "fat": true, "carbs": true, "image_url": true,
		"created_at": true,
	},
	"water_logs": {
		"id": true, "user_id": true, "amount": true, "created_at": true,
	},
	"weight_history": {
		"id": true, "user_id": true, "weight": true, "difference": true,
		"created_at": true,
	},
	"saved_recipes": {
		"id": true, "user_id": true, "title": true, "calories": true,
		"protein": true, "fat": true, "carbs": true, "ingredients": true,
		"instructions": true, "time": true, "image_url": true, "created_at": true,
	},
	"app_stories": {
		"id": true, "title": true, "image_url": true, "is_active": true,
		"created_at": true,
	},
	"vitamins": {
		"id": true, "user_id": true, "name": true, "dosage": true,
		"time": true, "created_at": true,
	},
	"food_products": {
		"id": true, "name": true, "calories": true, "protein": true,
		"fat": true, "carbs": true, "created_at": true,
	},
}

// SQLiteStore implements Store on a local sqlite database. Used for
// self-hosted deployments and in tests; the schema mirrors the hosted
// tables.
type SQLiteStore struct {
	dbPath string
}

// NewSQLiteStore opens (and initializes if needed) the sqlite database
// under dataDir
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	store := &SQLiteStore{dbPath: filepath.Join(dataDir, "fiyouai.db")}
	if err := store.initDatabase(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) openDataBase() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	return db, nil
}

func (s *SQLiteStore) initDatabase() error {
	db, err := s.openDataBase()
	if err != nil {
		return err
	}
	defer db.Close()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_profiles (
			id VARCHAR(36) PRIMARY KEY,
			email TEXT,
			name TEXT,
			username TEXT,
			weight REAL,
			height REAL,
			age INTEGER,
			gender TEXT,
			activity_level TEXT,
			goal TEXT,
			daily_calories_target INTEGER,
			target_weight REAL,
			avatar_url TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS meal_history (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			meal_name TEXT,
			calories INTEGER,
			protein REAL,
			fat REAL,
			carbs REAL,
			image_url TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_meal_history_user_created ON meal_history(user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS water_logs (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			amount INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_water_logs_user_created ON water_logs(user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS weight_history (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			weight REAL NOT NULL,
			difference REAL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_weight_history_user_created ON weight_history(user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS saved_recipes (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			title TEXT,
			calories INTEGER,
			protein REAL,
			fat REAL,
			carbs REAL,
			ingredients TEXT,
			instructions TEXT,
			time TEXT,
			image_url TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS app_stories (
			id VARCHAR(36) PRIMARY KEY,
			title TEXT,
			image_url TEXT,
			is_active INTEGER DEFAULT 0,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS vitamins (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name TEXT,
			dosage TEXT,
			time TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS food_products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			calories INTEGER,
			protein REAL,
			fat REAL,
			carbs REAL,
			created_at TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}

	log.Printf("sqlite store ready at %s", s.dbPath)
	return nil
}

func validTable(table string) (map[string]bool, error) {
	cols, ok := tableColumns[table]
	if !ok {
		return nil, fmt.Errorf("unknown table: %s", table)
	}
	return cols, nil
}

// sqlValue converts a row value to something the sqlite driver accepts
func sqlValue(v any) any {
	switch value := v.(type) {
	case bool:
		if value {
			return 1
		}
		return 0
	case []any, map[string]any:
		// Nested JSON (recipe ingredients etc.) is stored as its text form
		return fmt.Sprint(value)
	default:
		return v
	}
}

func buildWhere(cols map[string]bool, filters []Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}
	var clauses []string
	var args []any
	for _, f := range filters {
		if !cols[f.Column] {
			return "", nil, fmt.Errorf("unknown column: %s", f.Column)
		}
		switch f.Op {
		case "eq":
			clauses = append(clauses, f.Column+" = ?")
			args = append(args, sqlValue(f.Value))
		case "gte":
			clauses = append(clauses, f.Column+" >= ?")
			args = append(args, sqlValue(f.Value))
		case "ilike":
			clauses = append(clauses, "lower("+f.Column+") LIKE lower(?)")
			args = append(args, f.Value)
		default:
			return "", nil, fmt.Errorf("unknown filter op: %s", f.Op)
		}
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func (s *SQLiteStore) FetchRows(q Query) ([]Row, error) {
	cols, err := validTable(q.Table)
	if err != nil {
		return nil, err
	}

	where, args, err := buildWhere(cols, q.Filters)
	if err != nil {
		return nil, err
	}

	query := "SELECT * FROM " + q.Table + where
	if q.OrderBy != "" {
		if !cols[q.OrderBy] {
			return nil, fmt.Errorf("unknown column: %s", q.OrderBy)
		}
		query += " ORDER BY " + q.OrderBy
		if q.Desc {
			query += " DESC"
		}
	}
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	db, err := s.openDataBase()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %v", q.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %v", q.Table, err)
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %v", q.Table, err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows of %s: %v", q.Table, err)
	}
	return result, nil
}

func (s *SQLiteStore) FetchSingle(q Query) (Row, error) {
	q.Limit = 1
	rows, err := s.FetchRows(q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func (s *SQLiteStore) InsertRow(table string, row Row) error {
	cols, err := validTable(table)
	if err != nil {
		return err
	}

	// Deterministic column order keeps the statements stable
	names := make([]string, 0, len(row))
	for name := range row {
		if !cols[name] {
			return fmt.Errorf("unknown column: %s", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = "?"
		args[i] = sqlValue(row[name])
	}

	db, err := s.openDataBase()
	if err != nil {
		return err
	}
	defer db.Close()

	query := "INSERT INTO " + table + " (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %v", table, err)
	}
	return nil
}

func (s *SQLiteStore) UpdateRow(table string, filters []Filter, row Row) error {
	cols, err := validTable(table)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(row))
	for name := range row {
		if !cols[name] {
			return fmt.Errorf("unknown column: %s", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, len(names))
	args := make([]any, 0, len(names))
	for i, name := range names {
		sets[i] = name + " = ?"
		args = append(args, sqlValue(row[name]))
	}

	where, whereArgs, err := buildWhere(cols, filters)
	if err != nil {
		return err
	}
	args = append(args, whereArgs...)

	db, err := s.openDataBase()
	if err != nil {
		return err
	}
	defer db.Close()

	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + where
	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update %s: %v", table, err)
	}
	return nil
}

func (s *SQLiteStore) DeleteRow(table string, filters []Filter) error {
	cols, err := validTable(table)
	if err != nil {
		return err
	}

	where, args, err := buildWhere(cols, filters)
	if err != nil {
		return err
	}

	db, err := s.openDataBase()
	if err != nil {
		return err
	}
	defer db.Close()

	query := "DELETE FROM " + table + where
	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to delete from %s: %v", table, err)
	}
	return nil
}
