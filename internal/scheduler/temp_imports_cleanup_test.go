package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/storage"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
)

func newCleanupService(t *testing.T, fs afero.Fs, now time.Time) *TempImportsCleanupService {
	t.Helper()

	cfg := &config.Config{
		Upload: config.Upload{TempDir: "temp-imports"},
		TempImportsCleanup: config.TempImportsCleanup{
			CronSchedule: "0 * * * *",
			MaxAge:       24 * time.Hour,
			Enabled:      true,
		},
	}

	service := NewTempImportsCleanupService(storage.NewStorage(fs), cfg)
	service.now = func() time.Time { return now }
	return service
}

func writeAged(t *testing.T, fs afero.Fs, name string, modTime time.Time) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fs, name, []byte("data"), 0o644))
	require.NoError(t, fs.Chtimes(name, modTime, modTime))
}

func TestTempImportsCleanupService_RunNow(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	fs := afero.NewMemMapFs()

	writeAged(t, fs, "temp-imports/old.xlsx", now.Add(-48*time.Hour))
	writeAged(t, fs, "temp-imports/older.csv", now.Add(-72*time.Hour))
	writeAged(t, fs, "temp-imports/fresh.xls", now.Add(-time.Hour))
	writeAged(t, fs, "client-invoices/old.pdf", now.Add(-96*time.Hour))

	service := newCleanupService(t, fs, now)

	removed := service.RunNow()
	assert.Equal(t, 2, removed)

	for name, expected := range map[string]bool{
		"temp-imports/old.xlsx":   false,
		"temp-imports/older.csv":  false,
		"temp-imports/fresh.xls":  true,
		"client-invoices/old.pdf": true,
	} {
		exists, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.Equal(t, expected, exists, name)
	}

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_removed"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "", status["last_error"])
}

func TestTempImportsCleanupService_MissingDirectory(t *testing.T) {
	service := newCleanupService(t, afero.NewMemMapFs(), time.Now())

	assert.Equal(t, 0, service.RunNow())
	assert.Equal(t, "", service.GetStatus()["last_error"])
}

func TestTempImportsCleanupService_StartDisabled(t *testing.T) {
	service := newCleanupService(t, afero.NewMemMapFs(), time.Now())
	service.config.Enabled = false

	require.NoError(t, service.Start(context.Background()))
	assert.Empty(t, service.scheduler.Jobs())
}

func TestTempImportsCleanupService_StartInvalidCron(t *testing.T) {
	service := newCleanupService(t, afero.NewMemMapFs(), time.Now())
	service.config.CronSchedule = "not a cron"

	assert.Error(t, service.Start(context.Background()))
}
