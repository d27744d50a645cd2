package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeai/api/http/presenter"
	"github.com/artem13815/resumeai/pkg/quota"
)

type QuotaHandler struct {
	svc *quota.Service
}

func NewQuotaHandler(svc *quota.Service) *QuotaHandler {
	return &QuotaHandler{svc: svc}
}

// Status reports the caller's PRO entitlement and remaining scans today.
func (h *QuotaHandler) Status(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	st, err := h.svc.Status(c.Context(), email)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load quota status")
	}
	return presenter.JSON(c, http.StatusOK, st)
}
