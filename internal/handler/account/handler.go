package account

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/salon-api/internal/service/account"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
	"github.com/jwalitptl/salon-api/pkg/httputil"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/accounts")
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
	}
}

type accountRequest struct {
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Password string `json:"password"`
	Role     bool   `json:"role"`
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, accounts)
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.InvalidInput(err.Error()))
		return
	}

	acc, err := h.svc.Upsert(c.Request.Context(), "", req.Phone, req.Password, req.Role)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, acc)
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.InvalidInput(err.Error()))
		return
	}

	acc, err := h.svc.Upsert(c.Request.Context(), c.Param("id"), req.Phone, req.Password, req.Role)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, acc)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, nil)
}
