package status

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orbya/portfolio-backend/pkg/db/models"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?mode=memory"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.StatusCheck{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	check, err := svc.Create(ctx, CreateCheckInput{ClientName: "uptime-bot"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if check.ClientName != "uptime-bot" || check.Timestamp.IsZero() {
		t.Fatalf("unexpected check: %+v", check)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != check.ID {
		t.Fatalf("unexpected listing: %+v", list)
	}
}
