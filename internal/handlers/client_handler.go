package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/httpresp"
	"github.com/kirienkoandrew/HairCut-1/internal/middleware"
	ucScheduling "github.com/kirienkoandrew/HairCut-1/internal/usecase/scheduling"
)

type ClientHandler struct {
	history *ucScheduling.ClientHistory
}

func NewClientHandler(history *ucScheduling.ClientHistory) *ClientHandler {
	return &ClientHandler{history: history}
}

// ======================================================
// CLIENT HISTORY (one master's view only)
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
		return
	}

	client, appointments, err := h.history.Execute(c.Request.Context(), masterID, uint(clientID))
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_load_client", "Could not load the client.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"appointments": appointments,
	})
}

// Appointments returns the visit list alone, same visibility rule.
func (h *ClientHandler) Appointments(c *gin.Context) {
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
		return
	}

	_, appointments, err := h.history.Execute(c.Request.Context(), masterID, uint(clientID))
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_load_client", "Could not load the client.")
		return
	}

	httpresp.List(c, appointments)
}
