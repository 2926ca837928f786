package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/salon-api/internal/service/catalog"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
	"github.com/jwalitptl/salon-api/pkg/httputil"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/services")
	{
		services.GET("", h.ListServices)
		services.POST("", h.CreateService)
		services.PUT("/:id", h.UpdateService)
	}
}

type serviceRequest struct {
	Creator string      `json:"creator"`
	Price   json.Number `json:"price"`
	Name    string      `json:"name"`
}

// price folds the two legacy rejection cases together: a non-integer value
// and a non-positive one both come back as InvalidPrice.
func (r *serviceRequest) price() (int64, error) {
	n, err := r.Price.Int64()
	if err != nil {
		return 0, apperrors.InvalidPrice()
	}
	return n, nil
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.svc.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, services)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.InvalidInput(err.Error()))
		return
	}

	price, err := req.price()
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	service, err := h.svc.Create(c.Request.Context(), req.Creator, price, req.Name)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, service)
}

func (h *Handler) UpdateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.InvalidInput(err.Error()))
		return
	}

	price, err := req.price()
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	service, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Creator, price, req.Name)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, service)
}
