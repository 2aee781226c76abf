package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kirienkoandrew/HairCut-1/internal/audit"
	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/middleware"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
	"github.com/kirienkoandrew/HairCut-1/internal/timezone"
)

type MasterHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewMasterHandler(repo domain.Repository, dispatcher *audit.Dispatcher, tz string) *MasterHandler {
	return &MasterHandler{repo: repo, audit: dispatcher, tz: tz}
}

// ======================================================
// ME
// ======================================================

func (h *MasterHandler) GetMe(c *gin.Context) {
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	profile, err := h.repo.GetMasterByID(c.Request.Context(), masterID)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_load_master", "Could not load the profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ======================================================
// WORK WINDOW
// ======================================================

type WorkWindowUpdateRequest struct {
	WorkStart string `json:"work_start" binding:"required"`
	WorkEnd   string `json:"work_end" binding:"required"`
}

func (h *MasterHandler) UpdateWorkWindow(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	var req WorkWindowUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if _, err := domain.ParseWorkWindow(req.WorkStart, req.WorkEnd); err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.BadRequest(c, "invalid_work_window", "Invalid working hours.")
		return
	}

	profile, err := h.repo.GetMasterByID(c.Request.Context(), masterID)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_load_master", "Could not load the profile.")
		return
	}

	profile.WorkStart = req.WorkStart
	profile.WorkEnd = req.WorkEnd

	if err := h.repo.UpdateMaster(c.Request.Context(), profile); err != nil {
		httperr.Internal(c, "failed_to_update_work_window", "Could not update working hours.")
		return
	}

	h.audit.Dispatch(audit.Event{
		MasterID:  profile.ID,
		UserID:    &userID,
		Action:    "work_window_updated",
		Entity:    "master_profile",
		EntityID:  &profile.ID,
		RequestID: c.GetString(middleware.ContextRequestID),
	})

	c.JSON(http.StatusOK, profile)
}

// ======================================================
// ADMIN: ACTIVATE / REJECT
// ======================================================

func (h *MasterHandler) Activate(c *gin.Context) {
	h.setStatus(c, models.MasterStatusActive, "master_activated")
}

func (h *MasterHandler) Reject(c *gin.Context) {
	h.setStatus(c, models.MasterStatusRejected, "master_rejected")
}

func (h *MasterHandler) setStatus(c *gin.Context, status string, action string) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_master_id", "Invalid master id.")
		return
	}

	profile, err := h.repo.GetMasterByID(c.Request.Context(), uint(id))
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_load_master", "Could not load the profile.")
		return
	}

	// only pending applications move; re-approving or re-rejecting a
	// decided profile is a no-op error
	if profile.Status != models.MasterStatusPending {
		httperr.BadRequest(c, "invalid_state", "Application already decided.")
		return
	}

	profile.Status = status
	if status == models.MasterStatusActive {
		now := timezone.Now(h.tz)
		profile.ApprovedAt = &now
	}

	if err := h.repo.UpdateMaster(c.Request.Context(), profile); err != nil {
		httperr.Internal(c, "failed_to_update_master", "Could not update master status.")
		return
	}

	h.audit.Dispatch(audit.Event{
		MasterID:  profile.ID,
		UserID:    &adminID,
		Action:    action,
		Entity:    "master_profile",
		EntityID:  &profile.ID,
		RequestID: c.GetString(middleware.ContextRequestID),
	})

	c.JSON(http.StatusOK, profile)
}
