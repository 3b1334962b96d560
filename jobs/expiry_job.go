package jobs

import (
	"log"
	"time"

	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/deshidirective/deshi_directive/tours"
)

// ExpireStaleTourRequests cancels negotiations whose tour window has already
// passed without reaching payment. Confirmed but unpaid requests are left
// alone so the parties can still settle up.
func ExpireStaleTourRequests() {
	log.Println("Running job: ExpireStaleTourRequests...")

	var stale []models.TourRequest
	err := database.DB.
		Where("status IN ? AND end_time < ?", []string{tours.StatusRequested, tours.StatusOffered}, time.Now()).
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for stale tour requests: %v", err)
		return
	}

	if len(stale) == 0 {
		log.Println("No stale tour requests found.")
		return
	}

	for _, tr := range stale {
		if err := database.DB.Model(&models.TourRequest{}).
			Where("id = ? AND status IN ?", tr.ID, []string{tours.StatusRequested, tours.StatusOffered}).
			Update("status", tours.StatusCancelled).Error; err != nil {
			log.Printf("Error cancelling stale tour request %s: %v", tr.ID, err)
		}
	}

	log.Printf("Cancelled %d stale tour request(s).", len(stale))
}
