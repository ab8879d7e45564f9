package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

// CronJobTypeTempImportsCleanup identifica a limpeza de importações temporárias
const CronJobTypeTempImportsCleanup = "temp-imports-cleanup"

// CronJob é um agendamento que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices associa o tipo da cron job ao serviço que a executa
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
			return
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("Execução manual de cron job solicitada")
		job.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			if job != nil {
				status[cronType] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	})
}

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for cronType := range s {
		types = append(types, cronType)
	}
	sort.Strings(types)
	return types
}
