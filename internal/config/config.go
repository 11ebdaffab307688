package config // package config loads application configuration from the environment and the stadium file

import (
    "errors"
    "fmt"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/joho/godotenv"

    "github.com/pitchside/seatmap/internal/queue"
)

// Sold feed transports.
const (
    FeedAMQP = "amqp"
    FeedNATS = "nats"
    FeedNone = "none"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
    Env         string // application environment (dev, test, prod)
    Port        string // HTTP port to listen on
    DBUser      string
    DBPass      string // may be empty
    DBHost      string
    DBPort      string
    DBName      string
    DBTimeout   time.Duration
    JWTSecret   string // verifies viewer tokens issued by the identity provider
    RabbitURL   string
    NATSURL     string
    NATSSubject string
    SoldFeed    string // amqp, nats or none
    LogFormat   string // text or json
    LogLevel    string
    StadiumFile string // optional YAML layout; empty means the default stadium
}

// DBAddr is host:port of the database, safe to log.
func (c Config) DBAddr() string { return c.DBHost + ":" + c.DBPort }

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored; variables already set win.
func LoadDotEnv(files ...string) {
    if len(files) == 0 {
        files = []string{".env"}
    }
    for _, f := range files {
        _ = godotenv.Load(f)
    }
}

// Load reads configuration values from environment variables. Every
// missing or malformed required variable is reported in one error.
func Load() (Config, error) {
    var r reader
    cfg := Config{
        Env:         getenv("APP_ENV", "dev"),
        Port:        r.must("APP_PORT"),
        DBUser:      r.must("DB_USER"),
        DBPass:      os.Getenv("DB_PASS"),
        DBHost:      r.must("DB_HOST"),
        DBPort:      r.must("DB_PORT"),
        DBName:      r.must("DB_NAME"),
        DBTimeout:   envDur("DB_TIMEOUT", 5*time.Second),
        JWTSecret:   r.must("JWT_SECRET"),
        RabbitURL:   queue.BrokerURL(),
        NATSURL:     getenv("NATS_URL", "nats://127.0.0.1:4222"),
        NATSSubject: getenv("NATS_SOLD_SUBJECT", "seats.sold"),
        SoldFeed:    strings.ToLower(getenv("SOLD_FEED_TRANSPORT", FeedAMQP)),
        LogFormat:   strings.ToLower(getenv("LOG_FORMAT", "text")),
        LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "info")),
        StadiumFile: os.Getenv("STADIUM_CONFIG"),
    }
    if _, err := strconv.Atoi(cfg.Port); cfg.Port != "" && err != nil {
        r.errs = append(r.errs, fmt.Errorf("invalid int for APP_PORT: %q", cfg.Port))
    }
    switch cfg.SoldFeed {
    case FeedAMQP, FeedNATS, FeedNone:
    default:
        r.errs = append(r.errs, fmt.Errorf("invalid SOLD_FEED_TRANSPORT: %q", cfg.SoldFeed))
    }
    return cfg, errors.Join(r.errs...)
}

// reader collects missing required variables instead of exiting on the
// first one.
type reader struct{ errs []error }

// must retrieves the value of a required environment variable.
func (r *reader) must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        r.errs = append(r.errs, fmt.Errorf("missing required env var: %s", key))
    }
    return v
}
