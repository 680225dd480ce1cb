// services/scheduler.go
package services

import (
	"log"
	"time"

	"tournament-hub/models"

	"github.com/go-co-op/gocron/v2"
)

func (s *TournamentService) StartStatusScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every minute: open upcoming tournaments whose start time passed
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			result := s.DB.Model(&models.Tournament{}).
				Where("status = ? AND start_time <= ?", models.StatusUpcoming, time.Now()).
				Update("status", models.StatusOngoing)
			if result.Error != nil {
				log.Printf("[Scheduler] DB error: %v", result.Error)
				return
			}
			if result.RowsAffected > 0 {
				log.Printf("✅ Moved %d tournament(s) to ongoing", result.RowsAffected)
			}
		}),
	)

	// Every 10 minutes: verify the denormalized player counters
	_, _ = sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			drift, err := s.AuditParticipantCounters()
			if err != nil {
				log.Printf("[Scheduler] counter audit failed: %v", err)
				return
			}
			for _, d := range drift {
				log.Printf("⚠️  Tournament %d counter drift: current_players=%d, participants=%d",
					d.TournamentID, d.CurrentPlayers, d.ParticipantCount)
			}
		}),
	)
}
