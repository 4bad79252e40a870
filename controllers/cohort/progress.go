package cohortController

import (
	"lmms/database"
	"lmms/middleware"
	"lmms/models"
	"lmms/services/cohortautomation"
	"lmms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// notifyIfCertified sends the certificate email when a progress update has
// just flipped the member's certification flag
func notifyIfCertified(ceID uint, alreadyIssued bool) {
	if alreadyIssued {
		return
	}
	db := database.Database.Db

	var ce models.CohortEnrollment
	if err := db.First(&ce, ceID).Error; err != nil || !ce.CertificationIssued || ce.EnrollmentID == nil {
		return
	}

	var cert models.Certificate
	if err := db.Where("enrollment_id = ? AND is_deleted = ?", *ce.EnrollmentID, false).First(&cert).Error; err != nil {
		return
	}
	var candidate models.User
	if err := db.First(&candidate, ce.CandidateID).Error; err != nil {
		return
	}
	var course models.Course
	if err := db.First(&course, cert.CourseID).Error; err != nil {
		return
	}

	utils.SendCertificateIssuedEmail(candidate.Email, candidate.Name, course.Title, cert.CertificateNumber)
}

// RecordAttendance records a session attendance result for a cohort member
// and cascades the progress recomputation
func RecordAttendance(svc *cohortautomation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, ok := c.Locals("tenantId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		enrollmentID := c.Locals("cohortEnrollmentID").(int)

		reqData, ok := c.Locals("validatedAttendance").(*struct {
			Present *bool `json:"present"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var ce models.CohortEnrollment
		if err := database.Database.Db.Where("id = ? AND tenant_id = ?", enrollmentID, tenantID).First(&ce).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort enrollment not found!", nil)
		}

		if ce.Status != models.MembershipEnrolled {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Attendance can only be recorded for enrolled members!", nil)
		}

		if *reqData.Present {
			if err := database.Database.Db.Model(&ce).
				Update("attendance_count", gorm.Expr("attendance_count + 1")).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attendance!", nil)
			}
		}

		if err := svc.UpdateStudentProgress(ce.ID); err != nil {
			log.Printf("Error updating progress for enrollment %d: %v", ce.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		notifyIfCertified(ce.ID, ce.CertificationIssued)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance recorded successfully!", nil)
	}
}

// RecordAssessment records a pass/fail assessment result for a cohort member
// and cascades the progress recomputation
func RecordAssessment(svc *cohortautomation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, ok := c.Locals("tenantId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		enrollmentID := c.Locals("cohortEnrollmentID").(int)

		reqData, ok := c.Locals("validatedAssessment").(*struct {
			Passed *bool `json:"passed"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var ce models.CohortEnrollment
		if err := database.Database.Db.Where("id = ? AND tenant_id = ?", enrollmentID, tenantID).First(&ce).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort enrollment not found!", nil)
		}

		if ce.Status != models.MembershipEnrolled {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assessments can only be recorded for enrolled members!", nil)
		}

		column := "assessments_failed"
		if *reqData.Passed {
			column = "assessments_passed"
		}
		if err := database.Database.Db.Model(&ce).
			Update(column, gorm.Expr(column+" + 1")).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record assessment!", nil)
		}

		if err := svc.UpdateStudentProgress(ce.ID); err != nil {
			log.Printf("Error updating progress for enrollment %d: %v", ce.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		notifyIfCertified(ce.ID, ce.CertificationIssued)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment recorded successfully!", nil)
	}
}

// RefreshVetting queries the background-check provider for a cohort member
// and stores the mapped result, then cascades the progress recomputation
// since a CLEARED result can complete the certificate criteria
func RefreshVetting(svc *cohortautomation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, ok := c.Locals("tenantId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		enrollmentID := c.Locals("cohortEnrollmentID").(int)
		db := database.Database.Db

		var ce models.CohortEnrollment
		if err := db.Where("id = ? AND tenant_id = ?", enrollmentID, tenantID).First(&ce).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cohort enrollment not found!", nil)
		}

		var candidate models.User
		if err := db.First(&candidate, ce.CandidateID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
		}

		checkResp, err := utils.RequestVettingCheck(candidate.PassportNumber, candidate.Nationality, candidate.Name)
		if err != nil {
			log.Printf("Vetting check failed for candidate %d: %v", candidate.ID, err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Vetting check failed!", nil)
		}

		vettingStatus := models.VettingInProgress
		switch checkResp.Data.Result {
		case "CLEAR":
			vettingStatus = models.VettingCleared
		case "FLAGGED":
			vettingStatus = models.VettingFlagged
		}

		if err := db.Model(&ce).Update("vetting_status", vettingStatus).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update vetting status!", nil)
		}

		if err := svc.UpdateStudentProgress(ce.ID); err != nil {
			log.Printf("Error updating progress for enrollment %d: %v", ce.ID, err)
		}
		notifyIfCertified(ce.ID, ce.CertificationIssued)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Vetting status updated!", fiber.Map{
			"vetting_status": vettingStatus,
			"remarks":        checkResp.Data.Remarks,
		})
	}
}
