package handlers

import (
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
	"github.com/islomjonovabdulazim/center_dashboard/utils"
)

type SetAvailabilityRequest struct {
	Date      string   `json:"date" validate:"required"`
	TimeSlots []string `json:"time_slots" validate:"required,min=1"`
}

func SetAvailability(c *fiber.Ctx) error {
	var req SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !utils.ValidDate(req.Date) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}
	for _, slot := range req.TimeSlots {
		if !utils.IsGridSlot(slot) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown time slot: " + slot})
		}
	}

	rec := middleware.CurrentSession(c)
	msg, err := api.SetAvailability(c.Context(), rec.UpstreamToken, upstream.SetAvailabilityRequest{
		Date:      req.Date,
		TimeSlots: req.TimeSlots,
	})
	if err != nil {
		return upstreamError(c, err)
	}

	dashboard.Invalidate(rec, "")
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.JSON(fiber.Map{
		"message": msg.Message,
		"state":   dashboard.StateOf(rec),
	})
}

func GetAvailability(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	days, err := api.GetAvailability(c.Context(), rec.UpstreamToken)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(days)
}

func ListAssistantSessions(c *fiber.Ctx) error {
	status := c.Query("status", "upcoming")
	if status != "upcoming" && status != "past" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be upcoming or past"})
	}

	rec := middleware.CurrentSession(c)
	sessions, err := api.GetAssistantSessions(c.Context(), rec.UpstreamToken, status)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(sessions)
}

// SearchAttendance is the per-slot attendance query: students booked at
// an explicit date and time.
func SearchAttendance(c *fiber.Ctx) error {
	date := c.Params("date")
	timeOfDay := c.Params("time")
	if !utils.ValidDate(date) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	rec := middleware.CurrentSession(c)
	entries, err := api.GetSessionsByTime(c.Context(), rec.UpstreamToken, date, timeOfDay)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(entries)
}

// AttendanceWorklist derives the "still unchecked" list: past sessions
// with any student left pending, oldest first, so the assistant never has
// to remember which slot to look up.
func AttendanceWorklist(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	worklist, err := fetchWorklist(c, rec.UpstreamToken)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(worklist)
}

type MarkAttendanceRequest struct {
	Attendance string `json:"attendance" validate:"required,oneof=present absent"`
}

// MarkAttendance forwards the mark and answers with a freshly fetched
// worklist. The stale list is never patched in place; the upstream is the
// only source of attendance state.
func MarkAttendance(c *fiber.Ctx) error {
	sessionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec := middleware.CurrentSession(c)
	msg, err := api.MarkAttendance(c.Context(), rec.UpstreamToken, sessionID, req.Attendance)
	if err != nil {
		return upstreamError(c, err)
	}

	worklist, err := fetchWorklist(c, rec.UpstreamToken)
	if err != nil {
		return upstreamError(c, err)
	}

	dashboard.Invalidate(rec, "")
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.JSON(fiber.Map{
		"message":  msg.Message,
		"worklist": worklist,
		"state":    dashboard.StateOf(rec),
	})
}

func fetchWorklist(c *fiber.Ctx, token string) ([]models.AssistantSession, error) {
	sessions, err := api.GetAssistantSessions(c.Context(), token, "past")
	if err != nil {
		return nil, err
	}
	return buildWorklist(sessions), nil
}

func buildWorklist(sessions []models.AssistantSession) []models.AssistantSession {
	worklist := make([]models.AssistantSession, 0, len(sessions))
	for _, s := range sessions {
		for _, st := range s.Students {
			if st.Attendance == models.AttendancePending {
				worklist = append(worklist, s)
				break
			}
		}
	}
	sort.SliceStable(worklist, func(i, j int) bool {
		ti, errI := utils.SlotTime(worklist[i].Date, worklist[i].Time)
		tj, errJ := utils.SlotTime(worklist[j].Date, worklist[j].Time)
		if errI != nil || errJ != nil {
			return false
		}
		return ti.Before(tj)
	})
	return worklist
}
