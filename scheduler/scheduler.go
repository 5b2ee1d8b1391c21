// Package scheduler runs the periodic maintenance jobs of the backend.
package scheduler

import (
	"log"

	"github.com/sanyokkme/fiyouai/service"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron instance running in the reference timezone
type Scheduler struct {
	cron      *cron.Cron
	nutrition *service.NutritionService
}

func New(nutrition *service.NutritionService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(service.ReferenceTZ())),
		nutrition: nutrition,
	}
}

// Start registers the jobs and starts the cron loop. Targets are
// recomputed shortly after local midnight so a weight logged late in the
// evening is reflected the next morning.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("10 0 * * *", func() {
		log.Println("Recalculating daily calorie targets")
		if err := s.nutrition.RecalculateTargets(); err != nil {
			log.Printf("Target recalculation failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for any running job before shutting the cron loop down
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
