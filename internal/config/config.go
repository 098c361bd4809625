package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Bot        BotConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds attendance rules that are deployment-specific
// rather than code-level invariants.
type AttendanceConfig struct {
	// WorkStart is the local time-of-day (HH:MM) after which a check-in
	// counts as late in the dashboard stats.
	WorkStart string
	// Timezone is the IANA zone used to resolve "today" and the work-start
	// threshold. Empty means the server's local zone.
	Timezone string
	// OpenCheckIn keeps the check-in/check-out/today endpoints
	// unauthenticated, keyed only by the caller-supplied Telegram id.
	// The messaging platform's account binding is the only identity proof;
	// anyone who knows an id can record attendance for it. Disable to put
	// those endpoints behind the token middleware.
	OpenCheckIn bool
}

// BotConfig holds the Telegram bot configuration (cmd/bot only).
type BotConfig struct {
	Token  string
	APIURL string
	// APIToken, when set, is attached per request by the API client.
	// Needed when the server runs with OPEN_CHECKIN=false.
	APIToken string
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	openCheckIn, err := strconv.ParseBool(getEnv("OPEN_CHECKIN", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPEN_CHECKIN: %w", err)
	}

	config.Attendance = AttendanceConfig{
		WorkStart:   getEnv("WORK_START", "09:00"),
		Timezone:    getEnv("ATTENDANCE_TIMEZONE", ""),
		OpenCheckIn: openCheckIn,
	}

	config.Bot = BotConfig{
		Token:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		APIURL:   getEnv("API_URL", fmt.Sprintf("http://localhost:%d/api", appPort)),
		APIToken: getEnv("BOT_API_TOKEN", ""),
	}

	return config, nil
}

// Validate checks the settings the API server cannot run without. The bot
// and seed binaries skip it.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.Parse("15:04", c.Attendance.WorkStart); err != nil {
		return fmt.Errorf("WORK_START must be HH:MM: %w", err)
	}
	if c.Attendance.Timezone != "" {
		if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
			return fmt.Errorf("invalid ATTENDANCE_TIMEZONE: %w", err)
		}
	}
	return nil
}

// Location resolves the configured attendance timezone.
func (c *Config) Location() *time.Location {
	if c.Attendance.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Attendance.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// WorkStartClock returns the work-start threshold as hour and minute.
func (c *Config) WorkStartClock() (hour, minute int) {
	t, err := time.Parse("15:04", c.Attendance.WorkStart)
	if err != nil {
		return 9, 0
	}
	return t.Hour(), t.Minute()
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
