package db

import (
	"testing"
	"time"

	"github.com/barbershop/backend/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:          DriverSQLite,
		URL:             ":memory:",
		MaxOpenConns:    10,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if !database.HealthCheck() {
		t.Error("expected healthy database")
	}

	sqlDB, err := database.DB().DB()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("expected sqlite to be limited to 1 connection, got %d", got)
	}
}

func TestNewConnection_SQLiteMemoryKeepsSchema(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{Driver: DriverSQLite, URL: ":memory:"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	type widget struct {
		ID   uint
		Name string
	}
	if err := database.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := database.DB().Create(&widget{Name: "clipper"}).Error; err != nil {
		t.Fatalf("expected table to survive between queries: %v", err)
	}

	var count int64
	if err := database.DB().Model(&widget{}).Count(&count).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
