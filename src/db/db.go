package db

import (
	"log"
	"time"

	"github.com/william000000/team-odd-bn-backend/src/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	logLevel := logger.Warn
	if !config.IsProd() {
		logLevel = logger.Info
	}
	_db, err := gorm.Open(postgres.Open(config.GetDSN()), &gorm.Config{
		Logger: logger.New(log.Default(), logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	sqlDB, err := _db.DB()
	if err != nil {
		log.Fatalf("Error establishing connection to database: %s\n", err.Error())
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = _db
	return _db
}

func NewDB(newdb *gorm.DB) {
	db = newdb
}

func Close() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error closing database: %s\n", err.Error())
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %s\n", err.Error())
	}
	db = nil
}
