package certificateController

import (
	"lmms/database"
	"lmms/middleware"
	"lmms/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetMyCertificates lists the logged-in candidate's certificates
func GetMyCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []models.Certificate
	if err := database.Database.Db.Where("candidate_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	type CertificateWithCourse struct {
		models.Certificate
		CourseTitle string `json:"course_title"`
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course models.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// VerifyCertificate is the public endpoint employers and brokers use to
// check a certificate by its verification code
func VerifyCertificate(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code is required!", nil)
	}

	var cert models.Certificate
	if err := database.Database.Db.Where("verification_code = ? AND is_deleted = ?", code, false).
		First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if cert.Status != models.CertificateIssued {
		return middleware.JsonResponse(c, fiber.StatusGone, false, "Certificate has been revoked!", nil)
	}

	var course models.Course
	database.Database.Db.Where("id = ?", cert.CourseID).First(&course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid.", fiber.Map{
		"certificate_number": cert.CertificateNumber,
		"course_title":       course.Title,
		"issued_at":          cert.IssuedAt,
		"status":             cert.Status,
	})
}
