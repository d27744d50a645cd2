package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/resumeai/api/http/presenter"
	"github.com/artem13815/resumeai/pkg/document"
	"github.com/artem13815/resumeai/pkg/history"
	"github.com/artem13815/resumeai/pkg/quota"
	"github.com/artem13815/resumeai/pkg/scan"
)

// ScanHandler runs the full upload+query flow: quota check, document read,
// analysis, history append.
type ScanHandler struct {
	pipeline *scan.Pipeline
	quotas   *quota.Service
	history  *history.Store
	log      *zap.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewScanHandler(pipeline *scan.Pipeline, quotas *quota.Service, hist *history.Store, log *zap.Logger, maxUploadMB int) *ScanHandler {
	return &ScanHandler{
		pipeline: pipeline,
		quotas:   quotas,
		history:  hist,
		log:      log,
		maxBytes: int64(maxUploadMB) << 20,
	}
}

// Scan analyzes one uploaded resume against a free-text query. Extraction
// failures are reported inside a normal result body with analysisError set;
// the endpoint only errors on bad requests and exhausted quota.
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)

	queryText := strings.TrimSpace(c.FormValue("query"))
	if queryText == "" {
		return presenter.Error(c, http.StatusBadRequest, "query is required")
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}

	allowed, err := h.quotas.Allow(c.Context(), email)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to check scan quota")
	}
	if !allowed {
		return presenter.Error(c, http.StatusTooManyRequests,
			"daily scan limit reached - upgrade to PRO for unlimited scans")
	}

	data, err := h.readUpload(fh)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	extraction := document.Read(fh.Filename, data)
	if !extraction.Success {
		h.log.Warn("document extraction failed",
			zap.String("file", fh.Filename), zap.String("error", extraction.Error))
	}
	// Failed or near-empty extraction flows into the pipeline guard and
	// comes back as a structured analysisError result.
	result := h.pipeline.Analyze(scan.ResumeText{
		FileName: fh.Filename,
		FileSize: fh.Size,
		Text:     extraction.Text,
	}, queryText)

	if err := h.quotas.Record(c.Context(), email); err != nil {
		h.log.Warn("failed to record scan against quota", zap.Error(err))
	}
	if err := h.history.Append(c.Context(), email, result); err != nil {
		h.log.Warn("failed to append scan history", zap.Error(err))
	}

	resp := fiber.Map{"result": result}
	if extraction.Warning != "" {
		resp["warning"] = extraction.Warning
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

func (h *ScanHandler) readUpload(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file")
	}
	defer file.Close()
	return readAtMost(file, h.maxBytes)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
