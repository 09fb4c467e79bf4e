package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
	"github.com/islomjonovabdulazim/center_dashboard/utils"
)

// ListAssistants returns the assistant snapshot for the booking view. A
// ?date= filter narrows each assistant's slots to that day; the filter is
// applied to the fetched snapshot only, no extra upstream round trip.
func ListAssistants(c *fiber.Ctx) error {
	date := c.Query("date")
	if date != "" && !utils.ValidDate(date) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	rec := middleware.CurrentSession(c)
	assistants, err := api.ListAssistants(c.Context(), rec.UpstreamToken)
	if err != nil {
		return upstreamError(c, err)
	}

	if date != "" {
		for i := range assistants {
			assistants[i].AvailableSlots = filterSlotsByDate(assistants[i].AvailableSlots, date)
		}
	}
	return c.JSON(assistants)
}

// filterSlotsByDate keeps slots whose date component equals date, in
// their original order.
func filterSlotsByDate(slots []string, date string) []string {
	filtered := make([]string, 0, len(slots))
	for _, slot := range slots {
		slotDate, _, err := utils.ParseSlot(slot)
		if err != nil {
			continue
		}
		if slotDate == date {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

type BookSessionRequest struct {
	AssistantID int    `json:"assistant_id" validate:"required"`
	DateTime    string `json:"datetime" validate:"required"`
}

// BookSession forwards the raw slot string upstream, then re-fetches the
// assistant snapshot instead of removing the slot locally; the upstream
// alone decides slot state. On success the student view jumps to
// "my-sessions".
func BookSession(c *fiber.Ctx) error {
	var req BookSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if _, _, err := utils.ParseSlot(req.DateTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "datetime must be \"YYYY-MM-DD HH:MM\""})
	}

	rec := middleware.CurrentSession(c)
	msg, err := api.BookSession(c.Context(), rec.UpstreamToken, upstream.BookSessionRequest{
		AssistantID: req.AssistantID,
		DateTime:    req.DateTime,
	})
	if err != nil {
		return upstreamError(c, err)
	}

	assistants, err := api.ListAssistants(c.Context(), rec.UpstreamToken)
	if err != nil {
		return upstreamError(c, err)
	}

	dashboard.Invalidate(rec, dashboard.SectionMySessions)
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    msg.Message,
		"assistants": assistants,
		"state":      dashboard.StateOf(rec),
	})
}

func ListStudentSessions(c *fiber.Ctx) error {
	status := c.Query("status", "upcoming")
	if status != "upcoming" && status != "past" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be upcoming or past"})
	}

	rec := middleware.CurrentSession(c)
	sessions, err := api.GetStudentSessions(c.Context(), rec.UpstreamToken, status)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(sessions)
}

// RateableSessions lists past sessions the student may still rate:
// attended and not yet rated. Hiding already-rated sessions is the
// dashboard's only obligation; the one-rating rule itself is upstream's.
func RateableSessions(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	sessions, err := api.GetStudentSessions(c.Context(), rec.UpstreamToken, "past")
	if err != nil {
		return upstreamError(c, err)
	}

	rateable := make([]models.StudentSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Attendance == models.AttendancePresent && s.MyRating == nil {
			rateable = append(rateable, s)
		}
	}
	return c.JSON(rateable)
}

type RateSessionRequest struct {
	SessionID      int    `json:"session_id" validate:"required"`
	Knowledge      int    `json:"knowledge" validate:"required,min=1,max=5"`
	Communication  int    `json:"communication" validate:"required,min=1,max=5"`
	Patience       int    `json:"patience" validate:"required,min=1,max=5"`
	Engagement     int    `json:"engagement" validate:"required,min=1,max=5"`
	ProblemSolving int    `json:"problem_solving" validate:"required,min=1,max=5"`
	Comments       string `json:"comments,omitempty"`
}

// RateSession submits the five scores once. Every score must be set and
// between 1 and 5; comments are optional.
func RateSession(c *fiber.Ctx) error {
	var req RateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec := middleware.CurrentSession(c)
	msg, err := api.RateSession(c.Context(), rec.UpstreamToken, upstream.RateSessionRequest{
		SessionID:      req.SessionID,
		Knowledge:      req.Knowledge,
		Communication:  req.Communication,
		Patience:       req.Patience,
		Engagement:     req.Engagement,
		ProblemSolving: req.ProblemSolving,
		Comments:       req.Comments,
	})
	if err != nil {
		return upstreamError(c, err)
	}

	dashboard.Invalidate(rec, dashboard.SectionMySessions)
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msg.Message,
		"state":   dashboard.StateOf(rec),
	})
}
