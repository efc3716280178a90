package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	appcompliance "github.com/jhoicas/Produccion-api/internal/application/compliance"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// Scheduler ejecuta el barrido periódico de cumplimiento: deriva el estado de
// todas las tareas activas y deja constancia en el log de las vencidas o por
// vencer, para que operación las vea sin abrir el tablero.
type Scheduler struct {
	cron         *cron.Cron
	complianceUC *appcompliance.UseCase
	cronSpec     string
	log          *logger.Logger
}

// New construye el scheduler con el cron spec configurado (5 campos estándar).
func New(complianceUC *appcompliance.UseCase, cronSpec string, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		complianceUC: complianceUC,
		cronSpec:     cronSpec,
		log:          log.Component("scheduler"),
	}
}

// Start registra el barrido y arranca el cron en su propia goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cronSpec, s.sweepCompliance); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.cronSpec).Msg("scheduler iniciado")
	return nil
}

// Stop detiene el cron y espera a que termine el barrido en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) sweepCompliance() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	statuses, err := s.complianceUC.ListStatuses(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de cumplimiento falló")
		return
	}
	for _, st := range statuses {
		switch st.Status.Status {
		case entity.ComplianceOverdue, entity.ComplianceBatchDue:
			s.log.Warn().
				Str("task_id", st.Task.ID).
				Str("task", st.Task.Name).
				Str("status", st.Status.Status).
				Msg("tarea de cumplimiento vencida")
		case entity.ComplianceDueSoon:
			s.log.Info().
				Str("task_id", st.Task.ID).
				Str("task", st.Task.Name).
				Msg("tarea de cumplimiento por vencer")
		}
	}
	s.log.Debug().Int("tasks", len(statuses)).Msg("barrido de cumplimiento completado")
}
