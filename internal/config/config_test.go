package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "ADMIN_IDS", "DEFAULT_NOTIFY_TIME",
		"MAX_FILE_SIZE_BYTES", "TIMEZONE", "DATA_DIR", "ENV",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an empty BOT_TOKEN")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultNotifyTime != "07:30" {
		t.Fatalf("DefaultNotifyTime = %q", cfg.DefaultNotifyTime)
	}
	if cfg.Timezone != "Asia/Tashkent" {
		t.Fatalf("Timezone = %q", cfg.Timezone)
	}
	if cfg.DataDir != "./data" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.MaxFileSizeBytes != 10*1024*1024 {
		t.Fatalf("MaxFileSizeBytes = %d", cfg.MaxFileSizeBytes)
	}
	if cfg.Environment != "development" {
		t.Fatalf("Environment = %q", cfg.Environment)
	}
	if len(cfg.AdminIDs) != 0 {
		t.Fatalf("AdminIDs = %v", cfg.AdminIDs)
	}

	if _, err := cfg.Location(); err != nil {
		t.Fatalf("Location: %v", err)
	}
}

func TestLoadParsesAdminIDs(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "10, 20,30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.AdminIDs) != 3 || cfg.AdminIDs[0] != 10 || cfg.AdminIDs[2] != 30 {
		t.Fatalf("AdminIDs = %v", cfg.AdminIDs)
	}
}

func TestLoadRejectsBadAdminIDs(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "10,abc")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a non-numeric admin id")
	}
}

func TestLoadRejectsBadMaxFileSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("MAX_FILE_SIZE_BYTES", "-5")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a negative file size cap")
	}
}
