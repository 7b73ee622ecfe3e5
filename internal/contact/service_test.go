package contact

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?mode=memory"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.ContactMessage{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreate_AssignsIdentityAndTimestamp(t *testing.T) {
	svc := newTestService(t)

	before := time.Now().UTC().Add(-time.Second)
	msg, err := svc.Create(context.Background(), CreateMessageInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Commission",
		Message: "Looking for a title sequence.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if msg.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if msg.Timestamp.Before(before) {
		t.Fatalf("timestamp not assigned server-side: %v", msg.Timestamp)
	}
}

func TestListAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateMessageInput{Name: "A", Email: "a@b.c", Subject: "s", Message: "m"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateMessageInput{Name: "B", Email: "b@b.c", Subject: "s", Message: "m"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(list))
	}
	if list[0].Name != "A" || list[1].Name != "B" {
		t.Fatalf("expected stored order, got %s then %s", list[0].Name, list[1].Name)
	}

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = svc.Delete(ctx, first.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}
