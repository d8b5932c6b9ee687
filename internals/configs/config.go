package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   = 15 * time.Minute
	RefreshTokenTTL  = 7 * 24 * time.Hour

	AppBaseURL  string
	AppTimezone string
	CorsOrigins string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	BillCronSchedule   string
	BlacklistCronSpec  string
	BillDueDays        int
	SeedOnStartup      bool
	AutoMigrateOnStart bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" && os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Warn("no .env file found, using system environment")
		} else {
			slog.Info(".env file loaded")
		}
	} else {
		slog.Info("running in managed environment, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AccessTokenTTL = GetEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute)
	RefreshTokenTTL = GetEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour)

	AppBaseURL = strings.TrimRight(GetEnv("APP_BASE_URL", "http://localhost:3000"), "/")
	AppTimezone = GetEnv("APP_TIMEZONE", "Asia/Yangon")
	CorsOrigins = GetEnv("CORS_ORIGINS", "http://localhost:5173")

	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = GetEnvInt("SMTP_PORT", 587)
	SMTPUsername = GetEnv("SMTP_USERNAME")
	SMTPPassword = GetEnv("SMTP_PASSWORD")
	MailFrom = GetEnv("MAIL_FROM", "billing@rentku.local")

	BillCronSchedule = GetEnv("BILL_CRON_SCHEDULE", "0 0 1 * *")
	BlacklistCronSpec = GetEnv("BLACKLIST_CLEANUP_CRON", "@daily")
	BillDueDays = GetEnvInt("BILL_DUE_DAYS", 7)
	SeedOnStartup = GetEnvBool("SEED", false)
	AutoMigrateOnStart = GetEnvBool("AUTO_MIGRATE", true)

	if JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		slog.Error("JWT_REFRESH_SECRET is not set")
	}
	if SMTPHost == "" {
		slog.Warn("SMTP_HOST is not set, e-mails will only be logged")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func GetEnvInt(key string, def int) int {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid int env, using default", "key", key, "value", v)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration env, using default", "key", key, "value", v)
		return def
	}
	return d
}
