package config_test

import (
	"os"
	"testing"
	"time"

	"hotelgen/config"
	"hotelgen/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SERVER_ENV", "SERVER_LOG_LEVEL",
	"APP_NAME", "APP_TIMEZONE",
	"GENERATOR_SEED", "GENERATOR_NUM_CUSTOMERS", "GENERATOR_NUM_BOOKINGS",
	"GENERATOR_NUM_ROOM_TYPES", "GENERATOR_NUM_BRANCHES", "GENERATOR_MAX_TOTAL_ROOMS",
	"GENERATOR_START_DATE", "GENERATOR_END_DATE",
	"EXPORT_PATH",
	"EXTERNAL_OTEL_ENDPOINT",
	"EXTERNAL_S3_ENABLE", "EXTERNAL_S3_API_ENDPOINT", "EXTERNAL_S3_PUBLIC_DOMAIN",
	"EXTERNAL_S3_ACCESS_KEY_ID", "EXTERNAL_S3_SECRET_ACCESS_KEY",
	"EXTERNAL_S3_BUCKET_NAME", "EXTERNAL_S3_DIRECTORY",
}

// clearEnv unsets every generator variable for the test and restores it afterwards.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDate_Decode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    config.Date
		wantErr bool
	}{
		{name: "valid date", value: "2021-01-01", want: config.NewDate(2021, time.January, 1)},
		{name: "leap day", value: "2024-02-29", want: config.NewDate(2024, time.February, 29)},
		{name: "not a leap year", value: "2023-02-29", wantErr: true},
		{name: "wrong layout", value: "01/01/2021", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d config.Date

			err := d.Decode(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), config.DateLayout)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %s", d.Format(config.DateLayout))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	// Bare names of process variables must not leak into nested fields.
	t.Setenv("PATH", "/usr/local/bin:/usr/bin:/bin")
	t.Setenv("ENV", "staging")
	t.Setenv("SEED", "99")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("ENABLE", "true")
	t.Setenv("ENDPOINT", "collector:4317")
	t.Setenv("DIRECTORY", "/var/tmp")
	t.Setenv("NAME", "shell")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "hotelgen", cfg.App.Name)
	assert.Equal(t, "Asia/Kolkata", cfg.App.Timezone)

	assert.Equal(t, int64(0), cfg.Generator.Seed)
	assert.Equal(t, 15000, cfg.Generator.NumCustomers)
	assert.Equal(t, 25000, cfg.Generator.NumBookings)
	assert.Equal(t, 6, cfg.Generator.NumRoomTypes)
	assert.Equal(t, 10, cfg.Generator.NumBranches)
	assert.Equal(t, 200, cfg.Generator.MaxTotalRooms)
	assert.True(t, config.NewDate(2021, time.January, 1).Equal(cfg.Generator.StartDate.Time))
	assert.True(t, config.NewDate(2025, time.December, 31).Equal(cfg.Generator.EndDate.Time))

	assert.Equal(t, "HotelData_AllSheets.xlsx", cfg.Export.Path)

	assert.Empty(t, cfg.External.Otel.Endpoint)
	assert.False(t, cfg.External.S3.Enable)
	assert.Equal(t, "datasets", cfg.External.S3.Directory)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)

	t.Setenv("GENERATOR_SEED", "7")
	t.Setenv("GENERATOR_NUM_ROOM_TYPES", "3")
	t.Setenv("GENERATOR_MAX_TOTAL_ROOMS", "120")
	t.Setenv("GENERATOR_END_DATE", "2021-03-31")
	t.Setenv("EXPORT_PATH", "out/hotel.xlsx")
	t.Setenv("EXTERNAL_S3_ENABLE", "true")
	t.Setenv("EXTERNAL_S3_API_ENDPOINT", "http://localhost:9000")
	t.Setenv("EXTERNAL_S3_ACCESS_KEY_ID", "key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, 3, cfg.Generator.NumRoomTypes)
	assert.Equal(t, 120, cfg.Generator.MaxTotalRooms)
	assert.True(t, config.NewDate(2021, time.March, 31).Equal(cfg.Generator.EndDate.Time))
	assert.Equal(t, "out/hotel.xlsx", cfg.Export.Path)
	assert.True(t, cfg.External.S3.Enable)
	assert.Equal(t, "http://localhost:9000", cfg.External.S3.APIEndpoint)
	assert.Equal(t, "key", cfg.External.S3.AccessKeyID)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "malformed start date", key: "GENERATOR_START_DATE", value: "2021/01/01"},
		{name: "malformed end date", key: "GENERATOR_END_DATE", value: "31-12-2025"},
		{name: "non-integer count", key: "GENERATOR_NUM_CUSTOMERS", value: "many"},
		{name: "non-boolean flag", key: "EXTERNAL_S3_ENABLE", value: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := config.Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, failure.CodeInvalidConfig, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestGet(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATOR_NUM_BRANCHES", "4")

	require.NoError(t, config.Init())

	cfg := config.Get()

	require.NotNil(t, cfg)
	assert.Same(t, cfg, config.Get())
	assert.Equal(t, 4, cfg.Generator.NumBranches)
	assert.Equal(t, "HotelData_AllSheets.xlsx", cfg.Export.Path)
}
