package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/storage"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
)

// TempImportsCleanupConfig representa a configuração da limpeza de planilhas temporárias
type TempImportsCleanupConfig struct {
	CronSchedule string
	TempDir      string
	MaxAge       time.Duration
	Enabled      bool
}

// TempImportsCleanupService remove planilhas de importação que ficaram para trás,
// por exemplo quando o processo foi interrompido antes do fim da importação
type TempImportsCleanupService struct {
	scheduler        *gocron.Scheduler
	config           TempImportsCleanupConfig
	storage          storage.FileStorage
	now              func() time.Time
	syncRunning      bool
	syncMutex        sync.Mutex
	lastRunStartedAt time.Time
	lastRunEndedAt   time.Time
	lastRemoved      int
	lastError        string
}

func NewTempImportsCleanupService(fileStorage storage.FileStorage, appConfig *config.Config) *TempImportsCleanupService {
	cleanupConfig := TempImportsCleanupConfig{
		CronSchedule: appConfig.TempImportsCleanup.CronSchedule,
		TempDir:      appConfig.Upload.TempDir,
		MaxAge:       appConfig.TempImportsCleanup.MaxAge,
		Enabled:      appConfig.TempImportsCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"temp_dir":      cleanupConfig.TempDir,
		"max_age":       cleanupConfig.MaxAge.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração da limpeza de importações temporárias carregada")

	return &TempImportsCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		storage:   fileStorage,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *TempImportsCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de importações temporárias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de importações temporárias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de importações temporárias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de importações temporárias")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a limpeza e devolve quantos arquivos foram removidos.
// Se já houver uma execução em andamento, retorna sem fazer nada.
func (s *TempImportsCleanupService) RunNow() int {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de importações temporárias já em andamento, ignorando")
		return 0
	}
	s.syncRunning = true
	s.lastRunStartedAt = s.now()
	s.syncMutex.Unlock()

	removed, err := s.cleanup()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastRunEndedAt = s.now()
	s.lastRemoved = removed
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	return removed
}

func (s *TempImportsCleanupService) cleanup() (int, error) {
	cutoff := s.now().Add(-s.config.MaxAge)

	files, err := s.storage.ListOlderThan(s.config.TempDir, cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar importações temporárias")
		return 0, err
	}

	removed := 0
	var lastErr error
	for _, file := range files {
		if err := s.storage.Delete(file); err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  file,
				"error": err.Error(),
			}).Warn("Erro ao remover importação temporária")
			lastErr = err
			continue
		}
		removed++
	}

	logrus.WithFields(logrus.Fields{
		"removed": removed,
		"found":   len(files),
		"cutoff":  cutoff.Format(time.RFC3339),
	}).Info("Limpeza de importações temporárias concluída")

	return removed, lastErr
}

// TriggerManualSync inicia a limpeza em segundo plano
func (s *TempImportsCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Limpeza de importações temporárias já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando limpeza manual de importações temporárias")
	go s.RunNow()
}

// GetStatus retorna o status atual do agendador
func (s *TempImportsCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":             s.config.Enabled,
		"cron":                s.config.CronSchedule,
		"temp_dir":            s.config.TempDir,
		"max_age":             s.config.MaxAge.String(),
		"running":             s.syncRunning,
		"last_run_started_at": s.lastRunStartedAt,
		"last_run_ended_at":   s.lastRunEndedAt,
		"last_removed":        s.lastRemoved,
		"last_error":          s.lastError,
	}
}
