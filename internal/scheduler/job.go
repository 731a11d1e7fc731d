// Package scheduler contém os agendadores diários da API: snapshot do ranking
// das lojas e marcação de títulos atrasados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/pkg/metrics"
)

type JobConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// cronJob guarda o agendador e o estado de execução de uma rotina
type cronJob struct {
	name      string
	scheduler *gocron.Scheduler
	config    JobConfig
	run       func(ctx context.Context) error
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

func newCronJob(name string, config JobConfig, run func(ctx context.Context) error) *cronJob {
	logrus.WithFields(logrus.Fields{
		"job":           name,
		"cron_schedule": config.CronSchedule,
	}).Info("Configuração do agendador carregada")

	return &cronJob{
		name:      name,
		scheduler: gocron.NewScheduler(time.Local),
		config:    config,
		run:       run,
		now:       time.Now,
	}
}

func (j *cronJob) Start(ctx context.Context) error {
	if !j.config.SyncEnabled {
		logrus.WithField("job", j.name).Info("Cron desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{"job": j.name, "cron": j.config.CronSchedule}).Info("Iniciando cron")

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		if err := j.execute(ctx); err != nil {
			logrus.WithError(err).WithField("job", j.name).Error("Erro na execução agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", j.name, err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", j.name).Info("Parando cron")
		j.scheduler.Stop()
	}()

	return nil
}

// execute roda a rotina se ela ainda não estiver em andamento
func (j *cronJob) execute(ctx context.Context) error {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.WithField("job", j.name).Warn("Execução já em andamento")
		return nil
	}
	j.syncRunning = true
	j.lastSyncStartedAt = j.now()
	j.syncMutex.Unlock()

	start := time.Now()
	err := j.run(ctx)
	metrics.ObserveJob(j.name, start, err)

	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()
	j.syncRunning = false
	j.lastSyncCompletedAt = j.now()
	j.lastError = ""
	if err != nil {
		j.lastError = err.Error()
	}

	logrus.WithFields(logrus.Fields{
		"job":         j.name,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Execução concluída")

	return err
}

// TriggerManualSync inicia uma execução fora do horário agendado.
// Retorna false quando já existe uma execução em andamento.
func (j *cronJob) TriggerManualSync() bool {
	j.syncMutex.Lock()
	running := j.syncRunning
	j.syncMutex.Unlock()

	if running {
		logrus.WithField("job", j.name).Info("Execução já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.WithField("job", j.name).Info("Iniciando execução manual")
	go func() {
		if err := j.execute(context.Background()); err != nil {
			logrus.WithError(err).WithField("job", j.name).Error("Erro na execução manual")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (j *cronJob) GetStatus() map[string]any {
	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           j.config.SyncEnabled,
		"sync_cron":              j.config.CronSchedule,
		"running":                j.syncRunning,
		"last_sync_started_at":   j.lastSyncStartedAt,
		"last_sync_completed_at": j.lastSyncCompletedAt,
		"last_error":             j.lastError,
	}
}
