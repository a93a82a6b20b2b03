package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	JWTSecret     string
	TokenTTL      time.Duration
	LoginTokenTTL time.Duration

	InstallmentInterval time.Duration

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	ReminderQueueSize int
	ReminderWorkers   int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultJWTSecret           = "change-me-in-production"
	defaultTokenTTL            = 15 * time.Minute
	defaultLoginTokenTTL       = 30 * time.Minute
	defaultInstallmentInterval = 5 * time.Minute
	defaultReminderQueueSize   = 64
	defaultReminderWorkers     = 1
	defaultShutdownTimeout     = 10 * time.Second
	defaultSMTPPort            = 465
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:            getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		LoginTokenTTL:       getDuration(lookup, "LOGIN_TOKEN_TTL", defaultLoginTokenTTL),
		InstallmentInterval: getDuration(lookup, "INSTALLMENT_INTERVAL", defaultInstallmentInterval),
		S3Endpoint:          getString(lookup, "S3_ENDPOINT", ""),
		S3Region:            getString(lookup, "S3_REGION", "us-east-1"),
		S3Bucket:            getString(lookup, "S3_BUCKET", ""),
		S3AccessKey:         getString(lookup, "S3_ACCESS_KEY", ""),
		S3SecretKey:         getString(lookup, "S3_SECRET_KEY", ""),
		S3PublicBaseURL:     getString(lookup, "S3_PUBLIC_BASE_URL", ""),
		SMTPHost:            getString(lookup, "SMTP_HOST", ""),
		SMTPPort:            getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:        getString(lookup, "SMTP_USERNAME", ""),
		SMTPPassword:        getString(lookup, "SMTP_PASSWORD", ""),
		SMTPFrom:            getString(lookup, "SMTP_FROM", ""),
		ReminderQueueSize:   getInt(lookup, "REMINDER_QUEUE_SIZE", defaultReminderQueueSize),
		ReminderWorkers:     getInt(lookup, "REMINDER_WORKERS", defaultReminderWorkers),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("market", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		installmentIntervalStr = cfg.InstallmentInterval.String()
		shutdownTimeoutStr     = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&installmentIntervalStr, "installment-interval", installmentIntervalStr, "Due date offset for installment payments")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.ReminderQueueSize, "reminder-queue", cfg.ReminderQueueSize, "Capacity of the reminder queue")
	fs.IntVar(&cfg.ReminderWorkers, "reminder-workers", cfg.ReminderWorkers, "Number of reminder delivery workers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.InstallmentInterval, err = time.ParseDuration(installmentIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid installment interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.LoginTokenTTL <= 0 {
		cfg.LoginTokenTTL = defaultLoginTokenTTL
	}

	if cfg.InstallmentInterval <= 0 {
		cfg.InstallmentInterval = defaultInstallmentInterval
	}

	if cfg.ReminderQueueSize <= 0 {
		cfg.ReminderQueueSize = defaultReminderQueueSize
	}

	if cfg.ReminderWorkers <= 0 {
		cfg.ReminderWorkers = defaultReminderWorkers
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
