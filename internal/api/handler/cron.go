package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/scheduler"
	"github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"github.com/vfg2006/store-finance-api/pkg/log"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeRankingSnapshot = "ranking-snapshot"
	CronJobTypeOverdueSweep    = "overdue-sweep"
	CronJobTypeAll             = "all"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RankingSnapshotService *scheduler.RankingSnapshotService
	OverdueSweepService    *scheduler.OverdueSweepService
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.RankingSnapshotService != nil {
		jobs[CronJobTypeRankingSnapshot] = s.RankingSnapshotService
	}
	if s.OverdueSweepService != nil {
		jobs[CronJobTypeOverdueSweep] = s.OverdueSweepService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return runCronJob(services.jobs())
}

func runCronJob(jobs map[string]CronJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := param(r, "type")
		log.ForContext(r.Context()).WithField("job", cronType).Info("INIT - RunCronJob")

		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		started := map[string]bool{}
		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				started[name] = job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: ranking-snapshot, overdue-sweep, all", nil)
				return
			}
			started[cronType] = job.TriggerManualSync()
		}

		apiErrors.WriteResult(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return getCronStatus(services.jobs())
}

func getCronStatus(jobs map[string]CronJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			status[name] = job.GetStatus()
		}
		writeOK(w, status)
	}
}
