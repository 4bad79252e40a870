package placementController

import (
	"lmms/config"
	"lmms/database"
	"lmms/middleware"
	"lmms/models"
	"lmms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePlacement proposes a job placement for a placement-ready candidate
func CreatePlacement(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	tenantID, _ := c.Locals("tenantId").(uint)

	reqData, ok := c.Locals("validatedPlacement").(*struct {
		CandidateID  uint    `json:"candidate_id"`
		EmployerName string  `json:"employer_name"`
		Country      string  `json:"country"`
		Position     string  `json:"position"`
		Salary       float64 `json:"salary"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Only placement-ready candidates can be proposed
	var readyCount int64
	db.Model(&models.CohortEnrollment{}).
		Where("candidate_id = ? AND tenant_id = ? AND placement_ready = ?", reqData.CandidateID, tenantID, true).
		Count(&readyCount)
	if readyCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Candidate is not placement-ready!", nil)
	}

	placement := models.JobPlacement{
		TenantID:     tenantID,
		CandidateID:  reqData.CandidateID,
		BrokerID:     userID,
		Reference:    uuid.NewString(),
		EmployerName: reqData.EmployerName,
		Country:      reqData.Country,
		Position:     reqData.Position,
		Salary:       reqData.Salary,
		Status:       models.PlacementProposed,
	}

	if err := db.Create(&placement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create placement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Placement proposed successfully!", placement)
}

// ConfirmPlacement confirms a proposed placement and creates the broker's
// pending commission from the configured rate
func ConfirmPlacement(c *fiber.Ctx) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	placementID := c.Locals("placementID").(int)
	db := database.Database.Db

	var placement models.JobPlacement
	if err := db.Where("id = ? AND tenant_id = ? AND is_deleted = ?", placementID, tenantID, false).First(&placement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Placement not found!", nil)
	}

	if placement.Status != models.PlacementProposed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only proposed placements can be confirmed!", nil)
	}

	now := time.Now()
	if err := db.Model(&placement).Updates(map[string]interface{}{
		"status":       models.PlacementConfirmed,
		"confirmed_at": &now,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm placement!", nil)
	}

	rate := config.AppConfig.CommissionRate
	commission := models.BrokerCommission{
		TenantID:    tenantID,
		PlacementID: placement.ID,
		BrokerID:    placement.BrokerID,
		Rate:        rate,
		Amount:      placement.Salary * rate / 100,
		Status:      models.CommissionPending,
	}
	if err := db.Create(&commission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create commission!", nil)
	}

	var candidate models.User
	if err := db.First(&candidate, placement.CandidateID).Error; err == nil {
		utils.SendPlacementConfirmedEmail(candidate.Email, candidate.Name,
			placement.EmployerName, placement.Country, placement.Position)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Placement confirmed successfully!", fiber.Map{
		"placement":  placement,
		"commission": commission,
	})
}

// ListPlacements lists placements; brokers see their own, admins see all
func ListPlacements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	tenantID, _ := c.Locals("tenantId").(uint)
	role, _ := c.Locals("role").(string)

	db := database.Database.Db.Model(&models.JobPlacement{}).
		Where("tenant_id = ? AND is_deleted = ?", tenantID, false)
	if role == models.RoleBroker {
		db = db.Where("broker_id = ?", userID)
	}

	var placements []models.JobPlacement
	if err := db.Order("created_at desc").Find(&placements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch placements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Placements fetched successfully!", fiber.Map{
		"placements": placements,
		"total":      len(placements),
	})
}

// ListCommissions lists commissions; brokers see their own, admins see all
func ListCommissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	tenantID, _ := c.Locals("tenantId").(uint)
	role, _ := c.Locals("role").(string)

	db := database.Database.Db.Model(&models.BrokerCommission{}).
		Where("tenant_id = ? AND is_deleted = ?", tenantID, false)
	if role == models.RoleBroker {
		db = db.Where("broker_id = ?", userID)
	}

	var commissions []models.BrokerCommission
	if err := db.Order("created_at desc").Find(&commissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch commissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Commissions fetched successfully!", fiber.Map{
		"commissions": commissions,
		"total":       len(commissions),
	})
}

// ApproveCommission moves a pending commission to APPROVED
func ApproveCommission(c *fiber.Ctx) error {
	return updateCommissionStatus(c, models.CommissionPending, models.CommissionApproved, "Commission approved successfully!")
}

// PayCommission marks an approved commission as PAID
func PayCommission(c *fiber.Ctx) error {
	return updateCommissionStatus(c, models.CommissionApproved, models.CommissionPaid, "Commission marked as paid!")
}

func updateCommissionStatus(c *fiber.Ctx, from, to, message string) error {
	tenantID, ok := c.Locals("tenantId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	commissionID := c.Locals("commissionID").(int)
	db := database.Database.Db

	var commission models.BrokerCommission
	if err := db.Where("id = ? AND tenant_id = ? AND is_deleted = ?", commissionID, tenantID, false).First(&commission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Commission not found!", nil)
	}

	if commission.Status != from {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Commission is not in "+from+" status!", nil)
	}

	if err := db.Model(&commission).Update("status", to).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update commission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, commission)
}
