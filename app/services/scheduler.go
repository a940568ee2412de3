package services

import (
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(reminders *ReminderService) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 9:00 AM
			if now.Hour() == 9 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [09:00]...")

				if _, err := reminders.RunSweep(); err != nil {
					log.Printf("Error running progress reminder sweep: %v", err)
				}
			}
		}
	}()
}
