package controllers

import (
	"net/http"

	"github.com/Sandeshj458/JobPortal/internal/repositories"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

type HealthController struct {
	db repositories.DB
}

func NewHealthController(db repositories.DB) *HealthController {
	return &HealthController{db: db}
}

// Health reports liveness and verifies the database connection.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	var one int
	if err := c.db.QueryRow(r.Context(), "SELECT 1").Scan(&one); err != nil {
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"success": true,
	})
}
