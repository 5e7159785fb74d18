package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// sqliteDriverName is go-sqlite3 with sqliteLowerFunc registered on
	// every connection.
	sqliteDriverName = "sqlite3_todolist"

	// sqliteLowerFunc folds case with Go's Unicode tables. SQLite's own
	// LOWER only folds ASCII letters.
	sqliteLowerFunc = "unicode_lower"
)

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(sqliteLowerFunc, strings.ToLower, true)
		},
	})
}

// SQLiteDialector opens dsn through the driver that knows sqliteLowerFunc.
func SQLiteDialector(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: dsn})
}
