// Package api exposes the customer store over REST.
package api

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crmforge-dev/crmforge/internal/engine"
	"github.com/crmforge-dev/crmforge/internal/query"
	"github.com/crmforge-dev/crmforge/pkg/schema"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TotalCountHeader carries the pre-pagination match count on list responses.
const TotalCountHeader = "X-Total-Count"

type Handler struct {
	Store engine.CustomerStore
	Log   *zap.SugaredLogger
}

// List returns one page of filtered and sorted customers as a JSON array,
// with the pre-slice total in the X-Total-Count header.
func (h *Handler) List(c *gin.Context) {
	spec := parseSpec(c)
	res := query.Apply(h.Store.GetAll(), spec)

	c.Header(TotalCountHeader, strconv.Itoa(res.Total))
	c.JSON(http.StatusOK, res.Customers)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, err := h.Store.GetByID(id)
	if err != nil {
		if errors.Is(err, engine.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) Create(c *gin.Context) {
	var in schema.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create customer", "details": err.Error()})
		return
	}

	customer := h.Store.Insert(in)
	h.Log.Infow("customer created", "id", customer.ID, "company", customer.Company)
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var in schema.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update customer", "details": err.Error()})
		return
	}

	customer, err := h.Store.Update(id, in)
	if err != nil {
		if errors.Is(err, engine.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Log.Infow("customer updated", "id", customer.ID)
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	if !h.Store.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	h.Log.Infow("customer deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Export streams the full filtered and sorted set as CSV, ignoring
// pagination params so the download always covers every match.
func (h *Handler) Export(c *gin.Context) {
	spec := parseSpec(c)
	spec.Page = 1
	spec.Limit = 1<<31 - 1

	res := query.Apply(h.Store.GetAll(), spec)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{
		"id", "firstName", "lastName", "email", "phone", "company", "position",
		"status", "street", "city", "state", "zipCode", "tags", "revenue",
		"dateCreated", "lastUpdated",
	})
	for _, cust := range res.Customers {
		w.Write([]string{
			strconv.Itoa(cust.ID),
			cust.FirstName,
			cust.LastName,
			cust.Email,
			cust.Phone,
			cust.Company,
			cust.Position,
			string(cust.Status),
			cust.Address.Street,
			cust.Address.City,
			cust.Address.State,
			cust.Address.ZipCode,
			strings.Join(cust.Tags, ";"),
			strconv.FormatFloat(cust.Revenue, 'f', -1, 64),
			cust.DateCreated.Format(time.RFC3339),
			cust.LastUpdated.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.Log.Errorw("csv export", "error", err)
	}
}

// Tags returns the distinct tag labels across all live records, for
// populating tag-filter choices.
func (h *Handler) Tags(c *gin.Context) {
	c.JSON(http.StatusOK, query.DistinctTags(h.Store.GetAll()))
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// customerID parses the :id path segment. A non-numeric id is a 400, kept
// distinct from the 404 a missing record produces.
func customerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return 0, false
	}
	return id, true
}
