package app

import (
	"time"

	"outreach_web/server/common/env"
)

// Config is everything the web app reads from the environment.
type Config struct {
	Port          string
	JWTSecret     string
	JWTTTLMinutes int

	OutreachBaseURL string

	// SessionStore selects the durable-state backend: "redis" or "memory".
	SessionStore string
	RedisAddr    string
	SessionTTL   time.Duration

	// Development-only auth fallback; must stay off in production.
	DevAuthFallback  bool
	DevAllowedEmails []string

	SignupSimulatedDelay time.Duration
}

func LoadConfig() Config {
	return Config{
		Port:          env.String("WEB_PORT", "8080"),
		JWTSecret:     env.String("JWT_SECRET", "change-me-in-production"),
		JWTTTLMinutes: env.Int("JWT_TTL_MINUTES", 1440),

		OutreachBaseURL: env.String("OUTREACH_API_BASE", ""),

		SessionStore: env.String("SESSION_STORE", "redis"),
		RedisAddr:    env.String("REDIS_ADDR", "localhost:6379"),
		SessionTTL:   env.Duration("SESSION_TTL", 24*time.Hour),

		DevAuthFallback:  env.Bool("DEV_AUTH_FALLBACK", false),
		DevAllowedEmails: env.CSV("DEV_ALLOWED_EMAILS", nil),

		SignupSimulatedDelay: env.Duration("SIGNUP_SIMULATED_DELAY", 0),
	}
}
