package siteconfig

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
	if err := conn.AutoMigrate(&models.SiteConfig{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestGet_SeedsDefaultsOnFirstRead(t *testing.T) {
	svc := newTestService(t)

	cfg, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cfg.SiteName != "ORBYA" {
		t.Fatalf("expected seeded site name, got %q", cfg.SiteName)
	}
	if cfg.Colors.Primary != "#FF4D00" {
		t.Fatalf("expected seeded palette, got %+v", cfg.Colors)
	}
}

func TestUpdate_ShallowMergesNestedMaps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	email := "hello@orbya.studio"
	tagline := "Motion systems"
	updated, err := svc.Update(ctx, UpdateSiteConfigInput{
		Tagline: &tagline,
		Social:  &SocialLinksInput{Email: &email},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Tagline != "Motion systems" {
		t.Fatalf("tagline not updated: %+v", updated)
	}
	if updated.Social.Email != "hello@orbya.studio" {
		t.Fatalf("social email not merged: %+v", updated.Social)
	}
	// Untouched nested keys survive the merge.
	if updated.Colors.Primary != "#FF4D00" {
		t.Fatalf("palette lost on unrelated update: %+v", updated.Colors)
	}

	primary := "#00FFD1"
	updated, err = svc.Update(ctx, UpdateSiteConfigInput{
		Colors: &ColorPaletteInput{Primary: &primary},
	})
	if err != nil {
		t.Fatalf("update colors: %v", err)
	}
	if updated.Colors.Primary != "#00FFD1" || updated.Colors.Background != "#000000" {
		t.Fatalf("palette merge wrong: %+v", updated.Colors)
	}
	if updated.Social.Email != "hello@orbya.studio" {
		t.Fatalf("social lost on color update: %+v", updated.Social)
	}
}

func TestUpdate_WithoutSeedCreatesRow(t *testing.T) {
	svc := newTestService(t)

	name := "Studio X"
	updated, err := svc.Update(context.Background(), UpdateSiteConfigInput{SiteName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SiteName != "Studio X" {
		t.Fatalf("unexpected config: %+v", updated)
	}
}
