package placementValidator

import (
	"lmms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreatePlacement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CandidateID  uint    `json:"candidate_id"`
			EmployerName string  `json:"employer_name"`
			Country      string  `json:"country"`
			Position     string  `json:"position"`
			Salary       float64 `json:"salary"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CandidateID == 0 {
			errors["candidate_id"] = "Candidate ID is required!"
		}
		if strings.TrimSpace(reqData.EmployerName) == "" {
			errors["employer_name"] = "Employer name is required!"
		}
		if strings.TrimSpace(reqData.Country) == "" {
			errors["country"] = "Country is required!"
		}
		if strings.TrimSpace(reqData.Position) == "" {
			errors["position"] = "Position is required!"
		}
		if reqData.Salary <= 0 {
			errors["salary"] = "Salary must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlacement", reqData)
		return c.Next()
	}
}

func PlacementID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Placement ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Placement ID!", nil)
		}

		c.Locals("placementID", id)
		return c.Next()
	}
}

func CommissionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Commission ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Commission ID!", nil)
		}

		c.Locals("commissionID", id)
		return c.Next()
	}
}
