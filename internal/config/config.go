package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultNotifyTime = "07:30"
	defaultTimezone   = "Asia/Tashkent"
	defaultDataDir    = "./data"
	defaultMaxFile    = 10 * 1024 * 1024
)

type Config struct {
	BotToken          string
	AdminIDs          []int64
	DefaultNotifyTime string
	MaxFileSizeBytes  int64
	Timezone          string
	DataDir           string
	Environment       string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		DefaultNotifyTime: os.Getenv("DEFAULT_NOTIFY_TIME"),
		Timezone:          os.Getenv("TIMEZONE"),
		DataDir:           os.Getenv("DATA_DIR"),
		Environment:       os.Getenv("ENV"),
		MaxFileSizeBytes:  defaultMaxFile,
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required but not set")
	}

	ids, err := parseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = ids

	if raw := os.Getenv("MAX_FILE_SIZE_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("MAX_FILE_SIZE_BYTES must be a positive integer, got %q", raw)
		}
		cfg.MaxFileSizeBytes = n
	}

	if cfg.DefaultNotifyTime == "" {
		cfg.DefaultNotifyTime = defaultNotifyTime
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}

// Location resolves the configured timezone name.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q is invalid: %w", c.Timezone, err)
	}
	return loc, nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_IDS contains a non-numeric entry %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
