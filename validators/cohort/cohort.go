package cohortValidator

import (
	"lmms/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateCohort() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID           uint      `json:"course_id"`
			TrainerID          uint      `json:"trainer_id"`
			Code               string    `json:"code"`
			Name               string    `json:"name"`
			MaxCapacity        int       `json:"max_capacity"`
			EnrollmentDeadline time.Time `json:"enrollment_deadline"`
			StartDate          time.Time `json:"start_date"`
			EndDate            time.Time `json:"end_date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Cohort code is required!"
		}
		if reqData.MaxCapacity < 1 {
			errors["max_capacity"] = "Max capacity must be greater than 0!"
		}
		if reqData.StartDate.IsZero() {
			errors["start_date"] = "Start date is required!"
		}
		if reqData.EndDate.IsZero() {
			errors["end_date"] = "End date is required!"
		} else if !reqData.EndDate.After(reqData.StartDate) {
			errors["end_date"] = "End date must be after start date!"
		}
		if reqData.EnrollmentDeadline.IsZero() {
			errors["enrollment_deadline"] = "Enrollment deadline is required!"
		} else if reqData.EnrollmentDeadline.After(reqData.StartDate) {
			errors["enrollment_deadline"] = "Enrollment deadline must not be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCohort", reqData)
		return c.Next()
	}
}

func UpdateCohort() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cohortIDStr := strings.TrimSpace(c.Params("id"))
		cohortID, err := strconv.Atoi(cohortIDStr)
		if err != nil || cohortID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Cohort ID!", nil)
		}
		c.Locals("cohortID", cohortID)

		reqData := new(struct {
			TrainerID          uint      `json:"trainer_id"`
			Name               string    `json:"name"`
			MaxCapacity        int       `json:"max_capacity"`
			EnrollmentDeadline time.Time `json:"enrollment_deadline"`
			StartDate          time.Time `json:"start_date"`
			EndDate            time.Time `json:"end_date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedCohortUpdate", reqData)
		return c.Next()
	}
}

func CohortID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cohortIDStr := strings.TrimSpace(c.Params("id"))
		if cohortIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cohort ID is required!", nil)
		}

		cohortID, err := strconv.Atoi(cohortIDStr)
		if err != nil || cohortID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Cohort ID!", nil)
		}

		c.Locals("cohortID", cohortID)
		return c.Next()
	}
}

func CohortEnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("cohortEnrollmentID", id)
		return c.Next()
	}
}

func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cohortIDStr := strings.TrimSpace(c.Params("id"))
		cohortID, err := strconv.Atoi(cohortIDStr)
		if err != nil || cohortID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Cohort ID!", nil)
		}
		c.Locals("cohortID", cohortID)

		reqData := new(struct {
			SessionDate time.Time `json:"session_date"`
			Topic       string    `json:"topic"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.SessionDate.IsZero() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"session_date": "Session date is required!",
			})
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

func CohortList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func RecordAttendance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}
		c.Locals("cohortEnrollmentID", id)

		reqData := new(struct {
			Present *bool `json:"present"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Present == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"present": "Present flag is required!",
			})
		}

		c.Locals("validatedAttendance", reqData)
		return c.Next()
	}
}

func RecordAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}
		c.Locals("cohortEnrollmentID", id)

		reqData := new(struct {
			Passed *bool `json:"passed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Passed == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"passed": "Passed flag is required!",
			})
		}

		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}
