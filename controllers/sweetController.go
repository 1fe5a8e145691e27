package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sweetshop-api/models"
)

// SweetController translates HTTP requests into repository calls and
// wraps every result in the {success, data, message, error} envelope.
type SweetController struct {
	repo *models.SweetRepository
}

func NewSweetController(repo *models.SweetRepository) *SweetController {
	return &SweetController{repo: repo}
}

// sweetRequest is the body for create and update. Price and quantity
// are pointers so an explicit zero passes validation while a missing
// field fails it.
type sweetRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Quantity *int     `json:"quantity" binding:"required,gte=0"`
}

// quantityRequest is the body for purchase and restock.
type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,gt=0"`
}

// parseID reads the :id path parameter. A non-numeric id matches no
// record, so it reports not found rather than a validation failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sweet not found"})
		return 0, false
	}
	return id, true
}

// ListSweets returns all sweets, newest first.
func (ctrl *SweetController) ListSweets(c *gin.Context) {
	sweets, err := ctrl.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch sweets", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sweets})
}

// GetSweetByID returns a single sweet or 404.
func (ctrl *SweetController) GetSweetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sweet, err := ctrl.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, models.ErrSweetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sweet not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch sweet", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sweet})
}

// CreateSweet inserts a new sweet from the request body.
func (ctrl *SweetController) CreateSweet(c *gin.Context) {
	var req sweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, category, price and quantity are required and must be non-negative", "error": err.Error()})
		return
	}

	sweet, err := ctrl.repo.Create(models.SweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create sweet", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": sweet, "message": "Sweet created successfully"})
}

// UpdateSweet overwrites the four writable fields of an existing sweet.
func (ctrl *SweetController) UpdateSweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req sweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, category, price and quantity are required and must be non-negative", "error": err.Error()})
		return
	}

	sweet, err := ctrl.repo.UpdateByID(id, models.SweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	})
	if err != nil {
		if errors.Is(err, models.ErrSweetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sweet not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update sweet", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sweet, "message": "Sweet updated successfully"})
}

// DeleteSweet removes a sweet; deleting an absent id is 404.
func (ctrl *SweetController) DeleteSweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := ctrl.repo.DeleteByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete sweet", "error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sweet not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sweet deleted successfully"})
}

// SearchSweets filters by name substring, exact category, and an
// inclusive price range. An empty result is a success, not a 404.
func (ctrl *SweetController) SearchSweets(c *gin.Context) {
	filters := models.SearchFilters{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = &v
		}
	}

	sweets, err := ctrl.repo.Search(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to search sweets", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sweets})
}

// PurchaseSweet decreases stock by the requested amount.
func (ctrl *SweetController) PurchaseSweet(c *gin.Context) {
	ctrl.adjustQuantity(c, -1, "purchased", "Failed to purchase sweet")
}

// RestockSweet increases stock by the requested amount.
func (ctrl *SweetController) RestockSweet(c *gin.Context) {
	ctrl.adjustQuantity(c, 1, "restocked", "Failed to restock sweet")
}

func (ctrl *SweetController) adjustQuantity(c *gin.Context, sign int, verb, failureMessage string) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be a positive number", "error": err.Error()})
		return
	}

	sweet, err := ctrl.repo.AdjustQuantity(id, sign*(*req.Quantity))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSweetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sweet not found"})
		case errors.Is(err, models.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Insufficient stock available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": failureMessage, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sweet,
		"message": fmt.Sprintf("Successfully %s %d units", verb, *req.Quantity),
	})
}
