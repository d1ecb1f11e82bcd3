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

// balanceHandler handles HTTP requests related to derived balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
	groupService   portssvc.GroupSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade, gs portssvc.GroupSvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService: bs,
		groupService:   gs,
	}
}

// registerBalanceRoutes registers routes related to balances.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, groupService portssvc.GroupSvcFacade) {
	h := newBalanceHandler(balanceService, groupService)

	rg.GET("/groups/:groupID/balances", h.listBalances)
	rg.GET("/groups/:groupID/accounts/:accountID/balance-history", h.getBalanceHistory)
}

func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroupByID(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.Error("Failed to get group", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve group"})
		return
	}

	balances, err := h.balanceService.AccountBalances(c.Request.Context(), groupID)
	if err != nil {
		logger.Error("Failed to compute account balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBalancesResponse(balances, group.CurrencySymbol))
}

func (h *balanceHandler) getBalanceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}
	rawAccountID := c.Param("accountID")
	accountID, err := strconv.Atoi(rawAccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID: " + rawAccountID})
		return
	}

	history, err := h.balanceService.AccountBalanceHistory(c.Request.Context(), groupID, domain.AccountID(accountID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for balance history",
				slog.Int("group_id", int(groupID)), slog.Int("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to compute balance history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceHistoryResponse(domain.AccountID(accountID), history))
}
