package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"
)

// Config is resolved once at startup and passed by reference; nothing
// re-reads the environment per request.
type Config struct {
	Addr     string
	Env      string
	GelfAddr string

	BookingAPISecret     string
	TestimonialAPISecret string

	// CSRFSecret signs the anti-forgery token pair. Outside development it
	// is always the booking secret; in development a random process-lifetime
	// fallback is generated when no secret is set, so the forms keep working
	// locally while verification still fails closed everywhere else.
	CSRFSecret string

	NotifyBaseURL string

	AWSRegion string
	EmailFrom string
	EmailTo   []string

	SlackBotToken           string
	SlackBookingChannel     string
	SlackTestimonialChannel string
}

func Load() *Config {
	cfg := &Config{
		Addr:                    getEnv("ADDR", ":8080"),
		Env:                     getEnv("APP_ENV", "production"),
		GelfAddr:                os.Getenv("GELF_ADDR"),
		BookingAPISecret:        os.Getenv("BOOKING_API_SECRET"),
		TestimonialAPISecret:    os.Getenv("TESTIMONIAL_API_SECRET"),
		NotifyBaseURL:           getEnv("NOTIFY_BASE_URL", "http://127.0.0.1:8080"),
		AWSRegion:               getEnv("AWS_REGION", "us-east-1"),
		EmailFrom:               getEnv("EMAIL_FROM", "booking@semperfinish.com"),
		EmailTo:                 splitList(os.Getenv("EMAIL_TO")),
		SlackBotToken:           os.Getenv("SLACK_BOT_TOKEN"),
		SlackBookingChannel:     os.Getenv("SLACK_BOOKING_REQUESTS_CHANNEL_ID"),
		SlackTestimonialChannel: os.Getenv("SLACK_TESTIMONIALS_CHANNEL_ID"),
	}

	cfg.CSRFSecret = cfg.BookingAPISecret
	if cfg.CSRFSecret == "" && cfg.Dev() {
		cfg.CSRFSecret = devSecret()
	}
	return cfg
}

// devSecret is generated once and held for the process lifetime. It never
// leaves development: every other environment fails closed instead.
var devFallback string

func devSecret() string {
	if devFallback == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return ""
		}
		devFallback = hex.EncodeToString(b)
	}
	return devFallback
}

func (c *Config) Dev() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a whitespace or comma separated recipient list.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
