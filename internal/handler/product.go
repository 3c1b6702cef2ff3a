package handler // handler package contains product CRUD handlers

import (
    "context"  // context type for the injected publish function
    "net/http" // http provides status code constants
    "strconv"  // strconv parses string identifiers to numeric types

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/iliyamo/product-catalog/internal/model"
    "github.com/iliyamo/product-catalog/internal/queue"
    "github.com/iliyamo/product-catalog/internal/repository"
    publisher "github.com/iliyamo/product-catalog/internal/service"
)

// ProductHandler bundles the product repository for the CRUD endpoints.
// Every route it serves runs behind the JWT middleware, so a resolved
// user id is always present in the context, and every repository call
// is scoped to that id: one user's catalog is invisible to another.
// Publish sends catalog events to the broker; it is a field so tests can
// swap it for a stub instead of dialing RabbitMQ.
type ProductHandler struct {
	Products *repository.ProductRepo
	Publish  func(ctx context.Context, event queue.ProductEvent) error
}

// NewProductHandler constructs a ProductHandler and panics if the
// repository is missing, since the handler is unusable without it.
func NewProductHandler(products *repository.ProductRepo) *ProductHandler {
	if products == nil {
		panic("nil repository passed to NewProductHandler")
	}
	return &ProductHandler{Products: products, Publish: publisher.PublishProductEvent}
}

// productReq carries the six client-supplied product fields. All of them
// are required on create; only Name is consumed on update.
type productReq struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
	Measurement string `json:"measurement"`
	Image       string `json:"image"`
}

// Create handles POST /products/ and stores a new product owned by the
// authenticated user. Any empty required field is a 400 "Missing params".
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing params"})
	}
	if req.Name == "" || req.Price == "" || req.Brand == "" ||
		req.Description == "" || req.Measurement == "" || req.Image == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing params"})
	}

	p := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Brand:       req.Brand,
		Description: req.Description,
		Measurement: req.Measurement,
		Image:       req.Image,
		CreatedBy:   userID,
	}
	if err := h.Products.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create product"})
	}

	// Best effort: a failed publish must not fail the request.
	_ = h.Publish(c.Request().Context(), queue.NewProductEvent(queue.ActionCreated, p))

	return c.JSON(http.StatusCreated, p)
}

// List handles GET /products/ and returns every product created by the
// authenticated user, ordered by id.
func (h *ProductHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	items, err := h.Products.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}
	if items == nil {
		items = []*model.Product{} // empty catalog serializes as [] not null
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /products/:id and returns a single owned product.
func (h *ProductHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
	}
	p, err := h.Products.GetByIDAndOwner(c.Request().Context(), id, userID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /products/:id. Only the name field is processed;
// date_modified is bumped by the store on every update.
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.Products.UpdateName(c.Request().Context(), id, userID, req.Name); err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}
	p, err := h.Products.GetByIDAndOwner(c.Request().Context(), id, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}

	_ = h.Publish(c.Request().Context(), queue.NewProductEvent(queue.ActionUpdated, p))

	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /products/:id and removes an owned product.
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
	}
	if err := h.Products.DeleteByIDAndOwner(c.Request().Context(), id, userID); err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete failed"})
	}

	_ = h.Publish(c.Request().Context(), queue.NewProductEvent(queue.ActionDeleted, &model.Product{ID: id, CreatedBy: userID}))

	return c.JSON(http.StatusOK, echo.Map{"message": "product " + strconv.FormatUint(id, 10) + " deleted successfully"})
}
