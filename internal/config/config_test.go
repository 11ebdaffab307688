package config

import (
    "bytes"
    "os"
    "path/filepath"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/pitchside/seatmap/internal/stadium"
)

func setRequired(t *testing.T) {
    t.Helper()
    t.Setenv("APP_PORT", "8080")
    t.Setenv("DB_USER", "seat")
    t.Setenv("DB_HOST", "127.0.0.1")
    t.Setenv("DB_PORT", "3306")
    t.Setenv("DB_NAME", "seatmap")
    t.Setenv("JWT_SECRET", "secret")
}

func TestLoad(t *testing.T) {
    setRequired(t)
    t.Setenv("SOLD_FEED_TRANSPORT", "NATS")
    t.Setenv("LOG_FORMAT", "json")
    t.Setenv("DB_TIMEOUT", "750ms")

    cfg, err := Load()
    require.NoError(t, err)
    assert.Equal(t, "8080", cfg.Port)
    assert.Equal(t, FeedNATS, cfg.SoldFeed)
    assert.Equal(t, "json", cfg.LogFormat)
    assert.Equal(t, 750*time.Millisecond, cfg.DBTimeout)
    assert.Equal(t, "127.0.0.1:3306", cfg.DBAddr())
}

func TestLoadReportsEveryMissingVar(t *testing.T) {
    setRequired(t)
    t.Setenv("DB_HOST", "")
    t.Setenv("JWT_SECRET", "")

    _, err := Load()
    require.Error(t, err)
    assert.Contains(t, err.Error(), "DB_HOST")
    assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRejectsBadValues(t *testing.T) {
    setRequired(t)
    t.Setenv("APP_PORT", "http")
    t.Setenv("SOLD_FEED_TRANSPORT", "carrier-pigeon")

    _, err := Load()
    require.Error(t, err)
    assert.Contains(t, err.Error(), "APP_PORT")
    assert.Contains(t, err.Error(), "SOLD_FEED_TRANSPORT")
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, ".env")
    require.NoError(t, os.WriteFile(path, []byte("SEATMAP_TEST_A=from-file\nSEATMAP_TEST_B=from-file\n"), 0o600))
    t.Setenv("SEATMAP_TEST_A", "from-env")
    t.Setenv("SEATMAP_TEST_B", "")
    os.Unsetenv("SEATMAP_TEST_B")

    LoadDotEnv(path, filepath.Join(dir, "missing.env"))
    assert.Equal(t, "from-env", os.Getenv("SEATMAP_TEST_A"))
    assert.Equal(t, "from-file", os.Getenv("SEATMAP_TEST_B"))
}

func TestRateLimitNormalizes(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
    t.Setenv("RATE_LIMIT_TTL", "1s")

    cfg := LoadRateLimitConfig()
    assert.Equal(t, 1, cfg.Capacity)
    assert.Equal(t, 10*time.Second, cfg.TTL)
}

func TestCacheConfig(t *testing.T) {
    t.Setenv("CACHE_METHODS", "get, head ,")
    t.Setenv("CACHE_ENABLED", "off")

    cfg := LoadCacheConfig()
    assert.False(t, cfg.Enabled)
    assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
}

func TestRedisOptionsHostPortWins(t *testing.T) {
    t.Setenv("REDIS_ADDR", "cache:6379")
    t.Setenv("REDIS_HOST", "redis")
    t.Setenv("REDIS_PORT", "6380")
    t.Setenv("REDIS_DB", "2")

    opts := RedisOptions()
    assert.Equal(t, "redis:6380", opts.Addr)
    assert.Equal(t, 2, opts.DB)
    assert.Nil(t, opts.TLSConfig)
}

func TestParseStadiumOverridesDefaults(t *testing.T) {
    s, err := ParseStadium([]byte("seats: 400\nsections: 2\nzoom: {min: 1, max: 6, step: 0.5}\n"))
    require.NoError(t, err)
    assert.Equal(t, 400, s.Seats)
    assert.Equal(t, 2, s.Sections)
    assert.Equal(t, 25, s.RowsPerSection)
    assert.Equal(t, stadium.DefaultPitch, s.Pitch)
    assert.Equal(t, 6.0, s.ViewOptions().MaxZoom)
    assert.Equal(t, 400, s.Geometry().TotalSeats)
}

func TestParseStadiumEmptyIsDefault(t *testing.T) {
    s, err := ParseStadium(nil)
    require.NoError(t, err)
    assert.Equal(t, DefaultStadium(), s)
}

func TestParseStadiumRejects(t *testing.T) {
    _, err := ParseStadium([]byte("seatz: 10\n"))
    assert.Error(t, err, "unknown keys are rejected")

    _, err = ParseStadium([]byte("sections: 0\n"))
    assert.ErrorIs(t, err, stadium.ErrInvalidConfig)

    _, err = ParseStadium([]byte("zoom: {min: 3, max: 2}\n"))
    assert.ErrorIs(t, err, stadium.ErrInvalidConfig)
}

func TestLoadStadiumFile(t *testing.T) {
    s, err := LoadStadium("")
    require.NoError(t, err)
    assert.Equal(t, 2500, s.Seats)

    path := filepath.Join(t.TempDir(), "stadium.yaml")
    require.NoError(t, os.WriteFile(path, []byte("section_colors: [teal, navy]\n"), 0o600))
    s, err = LoadStadium(path)
    require.NoError(t, err)
    assert.Equal(t, []string{"teal", "navy"}, s.SectionColors)

    _, err = LoadStadium(filepath.Join(t.TempDir(), "nope.yaml"))
    assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
    var buf bytes.Buffer
    log := NewLogger(&buf, "json", "warn")
    log.Info("hidden")
    log.Warn("shown", "k", 1)

    out := buf.String()
    assert.NotContains(t, out, "hidden")
    assert.True(t, strings.HasPrefix(out, "{"))
    assert.Contains(t, out, `"msg":"shown"`)

    buf.Reset()
    NewLogger(&buf, "text", "bogus").Info("plain")
    assert.Contains(t, buf.String(), "msg=plain")
}
