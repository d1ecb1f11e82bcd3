package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/splittab/splittab_backend/internal/apperrors"
	"github.com/splittab/splittab_backend/internal/core/domain"
	portssvc "github.com/splittab/splittab_backend/internal/core/ports/services"
	"github.com/splittab/splittab_backend/internal/dto"
	"github.com/splittab/splittab_backend/internal/middleware"
)

// groupHandler handles HTTP requests related to groups and their accounts.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

// newGroupHandler creates a new groupHandler.
func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{
		groupService: gs,
	}
}

// registerGroupRoutes registers routes related to groups.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade) {
	h := newGroupHandler(groupService)

	groups := rg.Group("/groups")
	{
		groups.GET("", h.listGroups)
		groups.GET("/:groupID", h.getGroup)
		groups.GET("/:groupID/accounts", h.listAccounts)
		groups.GET("/:groupID/tags", h.listTags)
	}
}

func (h *groupHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list groups", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list groups"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListGroupResponse(groups))
}

func (h *groupHandler) getGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroupByID(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Group not found", slog.Int("group_id", int(groupID)))
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to get group", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve group"})
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

func (h *groupHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}

	accounts, err := h.groupService.ListAccounts(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

func (h *groupHandler) listTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}

	tags, err := h.groupService.ListTags(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to list tags", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tags"})
		return
	}
	c.JSON(http.StatusOK, dto.ListTagsResponse{Tags: tags})
}

// parseGroupID extracts the numeric group id path parameter, responding with
// 400 on malformed input.
func parseGroupID(c *gin.Context) (domain.GroupID, bool) {
	raw := c.Param("groupID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID: " + raw})
		return 0, false
	}
	return domain.GroupID(id), true
}
