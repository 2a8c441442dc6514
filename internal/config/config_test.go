package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Report.Timeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Report.RetryBackoff)
	assert.InDelta(t, 3.2, cfg.Report.ConversionRate, 1e-9)
	assert.InDelta(t, 10.0, cfg.Checkout.ShippingFee, 1e-9)
	assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REPORT_DEFAULT_YEAR", "2024")
	t.Setenv("REPORT_TIMEOUT", "2s")
	t.Setenv("CHECKOUT_TAX_RATE", "0.16")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2024, cfg.Report.DefaultYear)
	assert.Equal(t, 2*time.Second, cfg.Report.Timeout)
	assert.InDelta(t, 0.16, cfg.Checkout.TaxRate, 1e-9)
}

func TestReportConfig_Year(t *testing.T) {
	now := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2026, ReportConfig{}.Year(now))
	assert.Equal(t, 2024, ReportConfig{DefaultYear: 2024}.Year(now))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", User: "u", Password: "p", Name: "shop", Port: "5432", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=shop port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}
