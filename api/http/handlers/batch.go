package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/resumeai/api/http/presenter"
	"github.com/artem13815/resumeai/pkg/document"
	"github.com/artem13815/resumeai/pkg/scan"
)

// maxBatchFiles bounds one multi-resume request.
const maxBatchFiles = 20

// BatchScan analyzes several uploaded resumes against one query and adds
// the cross-resume correlation summary. Each file counts against the daily
// quota.
func (h *ScanHandler) BatchScan(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)

	queryText := strings.TrimSpace(c.FormValue("query"))
	if queryText == "" {
		return presenter.Error(c, http.StatusBadRequest, "query is required")
	}
	form, err := c.MultipartForm()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "multipart form is required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "at least one file is required")
	}
	if len(files) > maxBatchFiles {
		return presenter.Error(c, http.StatusBadRequest, "too many files in one batch")
	}

	for range files {
		allowed, err := h.quotas.Allow(c.Context(), email)
		if err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to check scan quota")
		}
		if !allowed {
			return presenter.Error(c, http.StatusTooManyRequests,
				"daily scan limit reached - upgrade to PRO for unlimited scans")
		}
		if err := h.quotas.Record(c.Context(), email); err != nil {
			h.log.Warn("failed to record scan against quota", zap.Error(err))
		}
	}

	docs := make([]scan.ResumeText, 0, len(files))
	for _, fh := range files {
		data, err := h.readUpload(fh)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		extraction := document.Read(fh.Filename, data)
		docs = append(docs, scan.ResumeText{
			FileName: fh.Filename,
			FileSize: fh.Size,
			Text:     extraction.Text,
		})
	}

	out := h.pipeline.AnalyzeBatch(docs, queryText)
	for _, r := range out.Results {
		if err := h.history.Append(c.Context(), email, r); err != nil {
			h.log.Warn("failed to append scan history", zap.Error(err))
		}
	}
	return presenter.JSON(c, http.StatusOK, out)
}
