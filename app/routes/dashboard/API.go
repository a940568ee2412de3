package dashboard

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// ImpactReportAPI aggregates a calendar year's program outcomes for the
// annual report.
func ImpactReportAPI(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 2000 || year > time.Now().Year()+1 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	apps, err := store.ListApplicationsForYear(year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load applications"})
	}

	totalDonations, err := store.SumDonationsForYear(year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to total donations"})
	}

	partnerSchools, err := store.CountSwimSchools()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to count schools"})
	}

	var approved, active, completed, childrenHelped int
	var totalAwarded float64
	var awards int
	for i := range apps {
		app := &apps[i]
		switch app.Status {
		case models.StatusApproved:
			approved++
		case models.StatusActive:
			active++
		case models.StatusCompleted:
			completed++
		}
		if app.Status == models.StatusActive || app.Status == models.StatusCompleted {
			if n := len(app.Children); n > 0 {
				childrenHelped += n
			} else {
				childrenHelped++
			}
		}
		if app.AwardInfo != nil && app.AwardInfo.Amount > 0 {
			totalAwarded += app.AwardInfo.Amount
			awards++
		}
	}

	avgAward := 0.0
	if awards > 0 {
		avgAward = math.Round(totalAwarded / float64(awards))
	}
	completionRate := 0.0
	if active+completed > 0 {
		completionRate = math.Round(float64(completed)/float64(active+completed)*1000) / 10
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report": fiber.Map{
			"year":              year,
			"totalApplications": len(apps),
			"approved":          approved,
			"active":            active,
			"completed":         completed,
			"childrenHelped":    childrenHelped,
			"totalAwarded":      totalAwarded,
			"averageAward":      avgAward,
			"completionRate":    completionRate,
			"totalDonations":    totalDonations,
			"partnerSchools":    partnerSchools,
		},
	})
}

// RunRemindersAPI triggers the progress reminder sweep outside its schedule.
func RunRemindersAPI(c *fiber.Ctx) error {
	sent, err := reminders.RunSweep()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to run reminder sweep"})
	}
	return c.JSON(fiber.Map{"success": true, "sent": sent})
}
