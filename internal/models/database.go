package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type DompetKuContext string

// DBContextURL is the key for the API base URL in request contexts.
const DBContextURL DompetKuContext = "dompetku-url"

var pluralIes = regexp.MustCompile("ies$")

// Connect opens the SQLite database at dsn, migrates the schema
// and returns the connection.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migrate with foreign keys disabled. sqlite does not support ALTER COLUMN,
	// so tables are copied to a temporary table, dropped and recreated.
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		register func(string, func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{db.Callback().Query().After("*").Register, "dompetku:after_query", queryCallback},
		{db.Callback().Query().After("*").Register, "dompetku:after_query_general", generalCallback},
		{db.Callback().Create().After("*").Register, "dompetku:after_create", createUpdateCallback},
		{db.Callback().Create().After("*").Register, "dompetku:after_create_general", generalCallback},
		{db.Callback().Update().After("*").Register, "dompetku:after_update", createUpdateCallback},
		{db.Callback().Update().After("*").Register, "dompetku:after_update_general", generalCallback},
		{db.Callback().Delete().After("*").Register, "dompetku:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.register(c.name, c.fn); err != nil {
			return fmt.Errorf("failed to register callback %s: %w", c.name, err)
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name is used as name of the resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIes.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint errors with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: pockets.name") {
		db.Error = ErrPocketNameNotUnique
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.name") {
		db.Error = ErrCategoryNameNotUnique
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: goals.") {
		db.Error = ErrGoalNameNotUnique
	}
}

// generalCallback handles errors that users cannot do anything about.
func generalCallback(db *gorm.DB) {
	db.Error = TranslateError(db.Error)
}

// TranslateError replaces errors that users cannot do anything about
// with ErrGeneral. The original error is logged.
//
// Errors returned outside of gorm callbacks, e.g. when starting or
// committing a transaction, must be passed through it explicitly.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *go_sqlite.Error

	// "sql: database is closed" is hard-coded in database/sql
	if err.Error() == "sql: database is closed" || errors.As(err, &sqliteErr) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Pocket{}, Category{}, Transaction{}, AllocationRule{}, Goal{}, Liability{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
