package cohortController

import (
	"lmms/database"
	"lmms/middleware"
	"lmms/models"
	"lmms/services/cohortautomation"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListOpenCohorts lists cohorts a candidate can currently apply to
func ListOpenCohorts(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var cohorts []models.Cohort
	if err := database.Database.Db.
		Where("tenant_id = ? AND is_deleted = ? AND status IN ?", tenantID, false,
			[]string{models.CohortPublished, models.CohortEnrollmentOpen}).
		Preload("Course").Order("start_date asc").Find(&cohorts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cohorts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Open cohorts fetched successfully!", fiber.Map{
		"cohorts": cohorts,
		"total":   len(cohorts),
	})
}

// ApplyToCohort creates an APPLIED membership for the logged-in candidate.
// The seat is only taken at admin approval; the capability check here gives
// the candidate a structured refusal instead of a dead application.
func ApplyToCohort(svc *cohortautomation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		tenantID, _ := c.Locals("tenantId").(uint)

		cohortID := c.Locals("cohortID").(int)

		decision, err := svc.CanEnroll(uint(cohortID))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort not found!", nil)
		}
		if !decision.CanEnroll {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, decision.Reason, decision)
		}

		// One membership per candidate per cohort
		var existing models.CohortEnrollment
		if err := database.Database.Db.Where("cohort_id = ? AND candidate_id = ?", cohortID, userID).
			First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already applied to this cohort!", nil)
		}

		ce := models.CohortEnrollment{
			TenantID:    tenantID,
			CohortID:    uint(cohortID),
			CandidateID: userID,
			Status:      models.MembershipApplied,
		}

		if err := database.Database.Db.Create(&ce).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply to cohort!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", ce)
	}
}

// WithdrawFromCohort withdraws the candidate's own membership. An enrolled
// member frees their seat; a closed cohort is not reopened.
func WithdrawFromCohort(svc *cohortautomation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		cohortID := c.Locals("cohortID").(int)
		db := database.Database.Db

		var ce models.CohortEnrollment
		if err := db.Where("cohort_id = ? AND candidate_id = ?", cohortID, userID).First(&ce).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "You are not a member of this cohort!", nil)
		}

		if ce.Status != models.MembershipApplied && ce.Status != models.MembershipEnrolled {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This membership cannot be withdrawn!", nil)
		}

		wasEnrolled := ce.Status == models.MembershipEnrolled

		if err := db.Model(&ce).Update("status", models.MembershipWithdrawn).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to withdraw!", nil)
		}

		if wasEnrolled {
			if err := svc.DecrementEnrollmentCount(ce.CohortID); err != nil {
				log.Printf("Error decrementing enrollment count for cohort %d: %v", ce.CohortID, err)
			}
			if err := svc.UpdateCohortMetrics(ce.CohortID); err != nil {
				log.Printf("Error updating metrics for cohort %d: %v", ce.CohortID, err)
			}
		}

		if err := svc.SyncEnrollmentStatus(ce.ID); err != nil {
			log.Printf("Error syncing enrollment %d: %v", ce.ID, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawn from cohort successfully!", nil)
	}
}

// GetMyCohorts lists the logged-in candidate's memberships with cohort details
func GetMyCohorts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var memberships []models.CohortEnrollment
	if err := database.Database.Db.Where("candidate_id = ?", userID).
		Preload("Cohort").Preload("Cohort.Course").
		Order("created_at desc").Find(&memberships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch memberships!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Memberships fetched successfully!", fiber.Map{
		"memberships": memberships,
		"total":       len(memberships),
	})
}
