package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeai/api/http/presenter"
	"github.com/artem13815/resumeai/pkg/quota"
)

// AdminHandler manages PRO entitlements. Routes behind it require the
// admin claim.
type AdminHandler struct {
	quotas *quota.Service
}

func NewAdminHandler(quotas *quota.Service) *AdminHandler {
	return &AdminHandler{quotas: quotas}
}

// RequireAdmin rejects requests whose token lacks the admin flag.
func RequireAdmin(c *fiber.Ctx) error {
	if isAdmin, _ := c.Locals("isAdmin").(bool); !isAdmin {
		return presenter.Error(c, http.StatusForbidden, "admin access required")
	}
	return c.Next()
}

type grantProRequest struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
	// Days of validity; 0 or absent means unlimited.
	Days int `json:"days"`
}

// GrantPro creates or replaces a PRO entitlement for an account.
func (h *AdminHandler) GrantPro(c *fiber.Ctx) error {
	var req grantProRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return presenter.Error(c, http.StatusBadRequest, "email is required")
	}
	g := quota.Grant{Email: req.Email, Plan: req.Plan, Expires: quota.UnlimitedExpiry}
	if req.Days > 0 {
		g.Expires = time.Now().UTC().AddDate(0, 0, req.Days).Format(time.RFC3339)
	}
	if err := h.quotas.GrantPro(c.Context(), g); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to grant PRO")
	}
	return presenter.JSON(c, http.StatusCreated, g)
}

// RevokePro removes an account's PRO entitlement.
func (h *AdminHandler) RevokePro(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Params("email")))
	if email == "" {
		return presenter.Error(c, http.StatusBadRequest, "email is required")
	}
	if err := h.quotas.RevokePro(c.Context(), email); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to revoke PRO")
	}
	return c.SendStatus(http.StatusNoContent)
}
