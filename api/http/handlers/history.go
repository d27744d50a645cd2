package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeai/api/http/presenter"
	"github.com/artem13815/resumeai/pkg/history"
)

type HistoryHandler struct {
	store *history.Store
}

func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List returns the caller's scan history, newest first.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	items, err := h.store.List(c.Context(), email)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load history")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items": items,
		"limit": history.MaxEntries,
	})
}

// Clear wipes the caller's scan history.
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	if err := h.store.Clear(c.Context(), email); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to clear history")
	}
	return c.SendStatus(http.StatusNoContent)
}
