package cohortController

import (
	"errors"
	"lmms/database"
	"lmms/middleware"
	"lmms/models"
	"lmms/services/cohortautomation"
	"lmms/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCohort creates a cohort for a course
func AdminCreateCohort(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCohort").(*struct {
		CourseID           uint      `json:"course_id"`
		TrainerID          uint      `json:"trainer_id"`
		Code               string    `json:"code"`
		Name               string    `json:"name"`
		MaxCapacity        int       `json:"max_capacity"`
		EnrollmentDeadline time.Time `json:"enrollment_deadline"`
		StartDate          time.Time `json:"start_date"`
		EndDate            time.Time `json:"end_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND tenant_id = ? AND is_deleted = ?", reqData.CourseID, tenantID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	cohort := models.Cohort{
		TenantID:           tenantID,
		CourseID:           reqData.CourseID,
		TrainerID:          reqData.TrainerID,
		Code:               reqData.Code,
		Name:               reqData.Name,
		Status:             models.CohortDraft,
		MaxCapacity:        reqData.MaxCapacity,
		EnrollmentDeadline: reqData.EnrollmentDeadline,
		StartDate:          reqData.StartDate,
		EndDate:            reqData.EndDate,
	}

	if err := database.Database.Db.Create(&cohort).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create cohort!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Cohort created successfully!", cohort)
}

// AdminUpdateCohort updates cohort details before training begins
func AdminUpdateCohort(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cohortID := c.Locals("cohortID").(int)

	reqData, ok := c.Locals("validatedCohortUpdate").(*struct {
		TrainerID          uint      `json:"trainer_id"`
		Name               string    `json:"name"`
		MaxCapacity        int       `json:"max_capacity"`
		EnrollmentDeadline time.Time `json:"enrollment_deadline"`
		StartDate          time.Time `json:"start_date"`
		EndDate            time.Time `json:"end_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var cohort models.Cohort
	if err := database.Database.Db.Where("id = ? AND tenant_id = ? AND is_deleted = ?", cohortID, tenantID, false).First(&cohort).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort not found!", nil)
	}

	if cohort.Status == models.CohortInTraining || cohort.Status == models.CohortCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cohorts in training or completed cannot be updated!", nil)
	}

	// Update only provided fields
	if reqData.TrainerID > 0 {
		cohort.TrainerID = reqData.TrainerID
	}
	if reqData.Name != "" {
		cohort.Name = reqData.Name
	}
	if reqData.MaxCapacity > 0 {
		if reqData.MaxCapacity < cohort.CurrentEnrollment {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Max capacity cannot be below current enrollment!", nil)
		}
		cohort.MaxCapacity = reqData.MaxCapacity
	}
	if !reqData.EnrollmentDeadline.IsZero() {
		cohort.EnrollmentDeadline = reqData.EnrollmentDeadline
	}
	if !reqData.StartDate.IsZero() {
		cohort.StartDate = reqData.StartDate
	}
	if !reqData.EndDate.IsZero() {
		cohort.EndDate = reqData.EndDate
	}
	if !cohort.EndDate.After(cohort.StartDate) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "End date must be after start date!", nil)
	}

	if err := database.Database.Db.Save(&cohort).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cohort!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cohort updated successfully!", cohort)
}

// AdminPublishCohort moves a draft cohort to PUBLISHED so the lifecycle scan
// can pick it up
func AdminPublishCohort(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cohortID := c.Locals("cohortID").(int)

	var cohort models.Cohort
	if err := database.Database.Db.Where("id = ? AND tenant_id = ? AND is_deleted = ?", cohortID, tenantID, false).First(&cohort).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort not found!", nil)
	}

	if cohort.Status != models.CohortDraft {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only draft cohorts can be published!", nil)
	}

	if err := database.Database.Db.Model(&cohort).Update("status", models.CohortPublished).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish cohort!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cohort published successfully!", cohort)
}

// AdminAddSession adds a training session to a cohort
func AdminAddSession(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cohortID := c.Locals("cohortID").(int)

	reqData, ok := c.Locals("validatedSession").(*struct {
		SessionDate time.Time `json:"session_date"`
		Topic       string    `json:"topic"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var cohort models.Cohort
	if err := database.Database.Db.Where("id = ? AND tenant_id = ? AND is_deleted = ?", cohortID, tenantID, false).First(&cohort).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort not found!", nil)
	}

	session := models.CohortSession{
		TenantID:    tenantID,
		CohortID:    cohort.ID,
		SessionDate: reqData.SessionDate,
		Topic:       reqData.Topic,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session added successfully!", session)
}

// AdminListCohorts lists cohorts for the tenant with pagination
func AdminListCohorts(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Cohort{}).
		Where("tenant_id = ? AND is_deleted = ?", tenantID, false)

	var total int64
	db.Count(&total)

	var cohorts []models.Cohort
	if err := db.Preload("Course").Offset(offset).Limit(limit).Order("start_date desc").Find(&cohorts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cohorts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cohorts fetched successfully!", fiber.Map{
		"cohorts": cohorts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetCohortDetails returns a cohort with its sessions and rollups
func AdminGetCohortDetails(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cohortID := c.Locals("cohortID").(int)

	var cohort models.Cohort
	if err := database.Database.Db.Where("id = ? AND tenant_id = ? AND is_deleted = ?", cohortID, tenantID, false).
		Preload("Course").First(&cohort).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort not found!", nil)
	}

	var sessions []models.CohortSession
	database.Database.Db.Where("cohort_id = ? AND is_deleted = ?", cohort.ID, false).
		Order("session_date asc").Find(&sessions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cohort fetched successfully!", fiber.Map{
		"cohort":   cohort,
		"sessions": sessions,
	})
}

// AdminListCohortEnrollments lists membership rows for a cohort
func AdminListCohortEnrollments(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cohortID := c.Locals("cohortID").(int)

	var enrollments []models.CohortEnrollment
	if err := database.Database.Db.Where("cohort_id = ? AND tenant_id = ?", cohortID, tenantID).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithCandidate struct {
		models.CohortEnrollment
		CandidateName  string `json:"candidate_name"`
		CandidateEmail string `json:"candidate_email"`
	}

	result := make([]EnrollmentWithCandidate, len(enrollments))
	for i, e := range enrollments {
		var candidate models.User
		database.Database.Db.Where("id = ?", e.CandidateID).First(&candidate)
		result[i] = EnrollmentWithCandidate{
			CohortEnrollment: e,
			CandidateName:    candidate.Name,
			CandidateEmail:   candidate.Email,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// AdminApproveApplication approves an APPLIED membership: links or creates
// the canonical enrollment (one per candidate+course), takes a seat via the
// atomic counter, marks the membership ENROLLED and syncs it.
func AdminApproveApplication(svc *cohortautomation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, ok := c.Locals("tenantId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		enrollmentID := c.Locals("cohortEnrollmentID").(int)
		db := database.Database.Db

		var ce models.CohortEnrollment
		if err := db.Where("id = ? AND tenant_id = ?", enrollmentID, tenantID).First(&ce).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
		}

		if ce.Status != models.MembershipApplied {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending applications can be approved!", nil)
		}

		decision, err := svc.CanEnroll(ce.CohortID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort not found!", nil)
		}
		if !decision.CanEnroll {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, decision.Reason, decision)
		}

		var cohort models.Cohort
		if err := db.Preload("Course").First(&cohort, ce.CohortID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort not found!", nil)
		}

		// Take the seat first; the conditional increment refuses when full.
		if err := svc.IncrementEnrollmentCount(ce.CohortID); err != nil {
			if errors.Is(err, cohortautomation.ErrCohortFull) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cohort is full", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve application!", nil)
		}

		// One canonical enrollment per (candidate, course); reuse if it exists.
		var enrollment models.Enrollment
		err = db.Where("tenant_id = ? AND candidate_id = ? AND course_id = ? AND is_deleted = ?",
			tenantID, ce.CandidateID, cohort.CourseID, false).First(&enrollment).Error
		if err != nil {
			enrollment = models.Enrollment{
				TenantID:         tenantID,
				CandidateID:      ce.CandidateID,
				CourseID:         cohort.CourseID,
				EnrollmentStatus: models.EnrollmentEnrolled,
			}
			if err := db.Create(&enrollment).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
			}
		}

		updates := map[string]interface{}{"status": models.MembershipEnrolled}
		if ce.EnrollmentID == nil {
			// Back-reference is set exactly once, never re-pointed.
			updates["enrollment_id"] = enrollment.ID
		}
		if err := db.Model(&ce).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve application!", nil)
		}

		if err := svc.SyncEnrollmentStatus(ce.ID); err != nil {
			log.Printf("Error syncing enrollment %d: %v", ce.ID, err)
		}

		var candidate models.User
		if err := db.First(&candidate, ce.CandidateID).Error; err == nil {
			utils.SendEnrollmentApprovedEmail(candidate.Email, candidate.Name, cohort.Course.Title, cohort.Code)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Application approved successfully!", nil)
	}
}

// AdminRejectApplication rejects an APPLIED membership
func AdminRejectApplication(svc *cohortautomation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, ok := c.Locals("tenantId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		enrollmentID := c.Locals("cohortEnrollmentID").(int)
		db := database.Database.Db

		var ce models.CohortEnrollment
		if err := db.Where("id = ? AND tenant_id = ?", enrollmentID, tenantID).First(&ce).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
		}

		if ce.Status != models.MembershipApplied {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending applications can be rejected!", nil)
		}

		if err := db.Model(&ce).Update("status", models.MembershipRejected).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject application!", nil)
		}

		if err := svc.SyncEnrollmentStatus(ce.ID); err != nil {
			log.Printf("Error syncing enrollment %d: %v", ce.ID, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Application rejected.", nil)
	}
}
