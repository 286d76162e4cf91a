package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the local test database, skipping the test when it is
// not reachable. Expects a MySQL instance on localhost:3306 with a
// 'radagast_test' schema.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/radagast_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	// Children before parents.
	tables := []string{"Products", "Employees", "Orders", "Companies", "Users", "Customers"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the repository tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS Companies (
			id CHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(60) NOT NULL,
			address VARCHAR(120) NOT NULL,
			country VARCHAR(60) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS Employees (
			id CHAR(36) NOT NULL PRIMARY KEY,
			companyId CHAR(36) NOT NULL,
			name VARCHAR(60) NOT NULL,
			age INT NOT NULL,
			position VARCHAR(60) NOT NULL,
			CONSTRAINT fk_employee_company FOREIGN KEY (companyId)
				REFERENCES Companies (id) ON DELETE CASCADE,
			INDEX idx_employee_company (companyId)
		)`,
		`CREATE TABLE IF NOT EXISTS Orders (
			id CHAR(36) NOT NULL PRIMARY KEY,
			idUser CHAR(36) NOT NULL,
			orderDate VARCHAR(10) NOT NULL,
			orderTime VARCHAR(5) NOT NULL,
			nameDistrict VARCHAR(100) NOT NULL,
			status VARCHAR(30) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS Products (
			id CHAR(36) NOT NULL PRIMARY KEY,
			orderId CHAR(36) NOT NULL,
			name VARCHAR(120) NOT NULL,
			price DOUBLE NOT NULL,
			CONSTRAINT fk_product_order FOREIGN KEY (orderId)
				REFERENCES Orders (id) ON DELETE CASCADE,
			INDEX idx_product_order (orderId)
		)`,
		`CREATE TABLE IF NOT EXISTS Users (
			id CHAR(36) NOT NULL PRIMARY KEY,
			username VARCHAR(60) NOT NULL UNIQUE,
			passwordHash VARCHAR(100) NOT NULL,
			firstName VARCHAR(60) NOT NULL DEFAULT '',
			lastName VARCHAR(60) NOT NULL DEFAULT '',
			email VARCHAR(150) NOT NULL DEFAULT '',
			phone VARCHAR(30) NOT NULL DEFAULT '',
			roles JSON NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS Customers (
			id CHAR(36) NOT NULL PRIMARY KEY,
			username VARCHAR(60) NOT NULL UNIQUE,
			passwordHash VARCHAR(100) NOT NULL,
			firstName VARCHAR(60) NOT NULL DEFAULT '',
			lastName VARCHAR(60) NOT NULL DEFAULT '',
			email VARCHAR(150) NOT NULL DEFAULT '',
			phone VARCHAR(30) NOT NULL DEFAULT '',
			roles JSON NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to create test table: %v", err)
		}
	}
}
