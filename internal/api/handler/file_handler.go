package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/ports"
)

// maxUploadBytes caps a single project file at 25 MiB.
const maxUploadBytes = 25 << 20

// FileHandler handles multipart uploads and file metadata listing.
type FileHandler struct {
	service ports.FileService
}

func NewFileHandler(service ports.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Upload handles POST /api/dashboard/projects/:id/files (multipart form,
// field "file" plus optional "description").
//
// @Summary      Upload a project file
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "Project id"
// @Param        file         formData  file    true   "File"
// @Param        description  formData  string  false  "Description"
// @Success      201  {object}  fileResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/dashboard/projects/{id}/files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	file, err := h.service.Upload(c.Request().Context(), req, c.Param("id"), ports.UploadInput{
		Name:        fh.Filename,
		Description: c.FormValue("description"),
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        src,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fileResponse{File: file})
}

// List handles GET /api/dashboard/projects/:id/files.
//
// @Summary      List a project's files
// @Tags         files
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  fileListResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/dashboard/projects/{id}/files [get]
func (h *FileHandler) List(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	files, err := h.service.List(c.Request().Context(), req, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fileListResponse{Files: files})
}

// Delete handles DELETE /api/dashboard/files/:id.
//
// @Summary      Delete a file
// @Tags         files
// @Produce      json
// @Param        id  path  string  true  "File id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dashboard/files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "file deleted"})
}
