package scheduler

import (
	"log"
	"time"

	"lexlingo/database"
	"lexlingo/gamification"
	"lexlingo/models"

	"github.com/go-co-op/gocron"
)

// Scheduler runs the periodic maintenance jobs of the application
type Scheduler struct {
	scheduler *gocron.Scheduler
}

// New creates a new scheduler instance
func New() *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start begins running all scheduled tasks in a non-blocking manner
func (s *Scheduler) Start() {
	// Streaks are day-granular, so one sweep right after midnight UTC is
	// enough to zero everyone who missed a day.
	s.scheduler.Every(1).Day().At("00:05").Do(s.sweepExpiredStreaks)
	s.scheduler.StartAsync()
}

// Stop halts all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// sweepExpiredStreaks zeroes the streak of every profile whose last activity
// is older than yesterday
func (s *Scheduler) sweepExpiredStreaks() {
	now := time.Now().UTC()

	var profiles []models.Profile
	if err := database.Database.Db.Where("streak > 0").Find(&profiles).Error; err != nil {
		log.Printf("Streak sweep failed to load profiles: %v", err)
		return
	}

	expired := 0
	for _, profile := range profiles {
		if !gamification.StreakExpired(profile.LastActive, now) {
			continue
		}
		if err := database.Database.Db.Model(&models.Profile{}).
			Where("id = ?", profile.ID).
			Update("streak", 0).Error; err != nil {
			log.Printf("Streak sweep failed for user %d: %v", profile.UserID, err)
			continue
		}
		expired++
	}

	if expired > 0 {
		log.Printf("Streak sweep reset %d expired streak(s).", expired)
	}
}
