package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/server/http/dto"
	"github.com/ekeukwu/market/internal/usecase"
)

// ShopHandler manages shop listing endpoints.
type ShopHandler struct {
	facade ShopFacade
}

// NewShopHandler constructs ShopHandler.
func NewShopHandler(facade ShopFacade) *ShopHandler {
	return &ShopHandler{facade: facade}
}

// List handles GET /shops.
func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.facade.Shops(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "listing shops failed"})
		return
	}

	response := make([]dto.ShopResponse, 0, len(shops))
	for _, s := range shops {
		response = append(response, dto.ToShopResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /shops. The payload is a multipart form with text
// fields plus zero or more files under the images key.
func (h *ShopHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "title is required"})
		return
	}

	availability := true
	if raw := c.PostForm("availability"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid availability value"})
			return
		}
		availability = parsed
	}

	shop := &model.Shop{
		Title:        title,
		Description:  c.PostForm("description"),
		Address:      c.PostForm("address"),
		Price:        c.PostForm("price"),
		Availability: availability,
	}

	var images []usecase.ImageUpload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, header := range form.File["images"] {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "reading image upload failed"})
				return
			}
			defer file.Close()
			images = append(images, usecase.ImageUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			})
		}
	}

	created, err := h.facade.CreateShop(c.Request.Context(), shop, images)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUploadFailed) {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "image upload failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "creating shop failed"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToShopResponse(*created))
}

// Get handles GET /shops/:id.
func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	shop, err := h.facade.Shop(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(*shop))
}

// Update handles PATCH /shops/:id.
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ShopPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid patch payload"})
		return
	}

	shop, err := h.facade.UpdateShop(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: fmt.Sprintf("shop %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "updating shop failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(*shop))
}

// Delete handles DELETE /shops/:id.
func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteShop(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "deleting shop failed"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Shop %d was deleted successfully", id))
}
