package handlers

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	config "github.com/islomjonovabdulazim/center_dashboard/configs"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
)

// UploadPhoto stores the avatar on Cloudinary and points the upstream
// profile at the resulting URL.
func UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Photo file is required"})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read photo file"})
	}
	defer file.Close()

	uploadRes, err := cld.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder: "center_dashboard_profiles",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo"})
	}

	rec := middleware.CurrentSession(c)
	info, err := api.UpdateProfile(c.Context(), rec.UpstreamToken, upstream.ProfileUpdate{
		PhotoURL: uploadRes.SecureURL,
	})
	if err != nil {
		return upstreamError(c, err)
	}

	rec.PhotoURL = info.PhotoURL
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.JSON(fiber.Map{"photo_url": rec.PhotoURL})
}
