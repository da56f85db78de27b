package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the MySQL test database on localhost:3306 named
// 'restaurant_test' and skips the test when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/restaurant_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM MenuItem"); err != nil {
		t.Logf("failed to clean table MenuItem: %v", err)
	}

	db.Close()
}

// SetupTestTables creates the tables the repositories read from.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createMenuItemTable := `
	CREATE TABLE IF NOT EXISTS MenuItem (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		position INT NOT NULL DEFAULT 0,
		name VARCHAR(255) NOT NULL,
		ingredients TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		imgUrl VARCHAR(512) NOT NULL DEFAULT '',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_position (position)
	)`

	if _, err := db.Exec(createMenuItemTable); err != nil {
		t.Logf("failed to create table MenuItem: %v", err)
	}
}
