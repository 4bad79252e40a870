package dashboardController

import (
	"lmms/database"
	"lmms/middleware"
	"lmms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminDashboardStats returns tenant-level counts and rollups for the admin
// dashboard
func AdminDashboardStats(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var totalCandidates, totalCourses, activeCohorts, completedCohorts int64
	db.Model(&models.User{}).Where("tenant_id = ? AND role = ? AND is_deleted = ?", tenantID, models.RoleCandidate, false).Count(&totalCandidates)
	db.Model(&models.Course{}).Where("tenant_id = ? AND is_deleted = ?", tenantID, false).Count(&totalCourses)
	db.Model(&models.Cohort{}).Where("tenant_id = ? AND is_deleted = ? AND status IN ?", tenantID, false,
		[]string{models.CohortEnrollmentOpen, models.CohortEnrollmentClosed, models.CohortInTraining}).Count(&activeCohorts)
	db.Model(&models.Cohort{}).Where("tenant_id = ? AND is_deleted = ? AND status = ?", tenantID, false, models.CohortCompleted).Count(&completedCohorts)

	// This month's activity
	monthStart := now.BeginningOfMonth()
	var enrollmentsThisMonth, certificatesThisMonth, placementsThisMonth int64
	db.Model(&models.Enrollment{}).Where("tenant_id = ? AND created_at >= ?", tenantID, monthStart).Count(&enrollmentsThisMonth)
	db.Model(&models.Certificate{}).Where("tenant_id = ? AND issued_at >= ?", tenantID, monthStart).Count(&certificatesThisMonth)
	db.Model(&models.JobPlacement{}).Where("tenant_id = ? AND created_at >= ?", tenantID, monthStart).Count(&placementsThisMonth)

	var placementReady int64
	db.Model(&models.CohortEnrollment{}).Where("tenant_id = ? AND placement_ready = ?", tenantID, true).Count(&placementReady)

	var pendingCommissions int64
	db.Model(&models.BrokerCommission{}).Where("tenant_id = ? AND status = ? AND is_deleted = ?", tenantID, models.CommissionPending, false).Count(&pendingCommissions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_candidates":        totalCandidates,
		"total_courses":           totalCourses,
		"active_cohorts":          activeCohorts,
		"completed_cohorts":       completedCohorts,
		"enrollments_this_month":  enrollmentsThisMonth,
		"certificates_this_month": certificatesThisMonth,
		"placements_this_month":   placementsThisMonth,
		"placement_ready":         placementReady,
		"pending_commissions":     pendingCommissions,
	})
}
