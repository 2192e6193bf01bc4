package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bazroba/internal/infrastructure/storage"
	"bazroba/pkg/errors"
	"bazroba/pkg/response"
)

const maxUploadFiles = 10

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{storageClient: storageClient}
}

func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	url, err := h.uploadOne(c, fileHeader)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{"url": url})
}

func (h *FileHandler) UploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Files are required", err))
	}
	files := form.File["files"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("Files are required", nil))
	}
	if len(files) > maxUploadFiles {
		return response.Error(c, errors.BadRequest("Too many files", nil))
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		url, err := h.uploadOne(c, fileHeader)
		if err != nil {
			return response.Error(c, err)
		}
		urls = append(urls, url)
	}
	return response.Created(c, map[string][]string{"urls": urls})
}

type deleteFileRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (h *FileHandler) Delete(c echo.Context) error {
	var req deleteFileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.storageClient.Delete(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *FileHandler) uploadOne(c echo.Context, fileHeader *multipart.FileHeader) (string, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.BadRequest("Only image uploads are allowed", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Internal("Failed to read uploaded file", err)
	}
	defer file.Close()

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	return h.storageClient.Upload(c.Request().Context(), file, contentType, folder)
}
