package api

import (
	"net/http"

	resdto "clinic-agenda/internal/handler/dto/response"
	"clinic-agenda/internal/handler/middleware"
	"clinic-agenda/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// JobsHandler exposes manual triggers for the maintenance jobs, guarded by
// the operator token. The same commands run on the cron schedule.
type JobsHandler struct {
	maintenance commands.MaintenanceCommands
}

func NewJobsHandler(maintenance commands.MaintenanceCommands) *JobsHandler {
	return &JobsHandler{maintenance: maintenance}
}

func (h *JobsHandler) RunReaper(c *gin.Context) {
	operator, _ := middleware.GetOperator(c)

	result, err := h.maintenance.ReapExpired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"triggered_by":     operator,
		"locks_expired":    result.LocksExpired,
		"payments_expired": result.PaymentsExpired,
	})
}

func (h *JobsHandler) RunSweep(c *gin.Context) {
	operator, _ := middleware.GetOperator(c)

	result, err := h.maintenance.ReconcilePending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"triggered_by": operator,
		"result": resdto.JobRunResponse{
			Checked:  result.Checked,
			Resolved: result.Resolved,
			Failed:   result.Failed,
		},
	})
}
