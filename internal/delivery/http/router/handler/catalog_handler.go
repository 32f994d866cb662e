package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves categories, subcategories and products.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest is the body of the category create and update routes.
type CategoryRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	IsActive     *bool  `json:"is_active"`
}

// SubcategoryRequest is the body of the subcategory create and update routes.
type SubcategoryRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	IsActive *bool  `json:"is_active"`
}

// CreateProductRequest is the body of POST /admin/products.
type CreateProductRequest struct {
	CategoryID    string  `json:"category_id" validate:"omitempty,uuid"`
	SubcategoryID string  `json:"subcategory_id" validate:"omitempty,uuid"`
	Name          string  `json:"name" validate:"required,max=200"`
	Price         float64 `json:"price" validate:"gte=0"`
	IsActive      *bool   `json:"is_active"`
}

// activeOrDefault treats a missing is_active flag as true.
func activeOrDefault(flag *bool) bool {
	if flag == nil {
		return true
	}

	return *flag
}

// LoadCatalog returns the category tree.
func (h *CatalogHandler) LoadCatalog(c echo.Context) error {
	trees, err := h.catalogUC.LoadCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*CategoryTreeView, 0, len(trees))
	for _, tree := range trees {
		views = append(views, &CategoryTreeView{
			CategoryView:  *toCategoryView(tree.Category),
			Subcategories: toSubcategoryViews(tree.Subcategories),
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListCategories returns the categories ordered for display.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, toCategoryView(category))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateCategory handles POST /admin/categories.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		IsActive:     activeOrDefault(req.IsActive),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryView(category), "Categoria criada")
}

// UpdateCategory handles PUT /admin/categories/:id.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), &usecase.UpdateCategoryInput{
		ID:           id,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		IsActive:     activeOrDefault(req.IsActive),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "Categoria atualizada")
}

// DeleteCategory removes a category with its subcategories and products.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	report, err := h.catalogUC.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDeleteReportView(report), "Categoria eliminada")
}

// ListSubcategories handles GET /admin/categories/:id/subcategories.
func (h *CatalogHandler) ListSubcategories(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	subs, err := h.catalogUC.ListSubcategories(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSubcategoryViews(subs), "")
}

// CreateSubcategory handles POST /admin/categories/:id/subcategories.
func (h *CatalogHandler) CreateSubcategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SubcategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sub, err := h.catalogUC.CreateSubcategory(c.Request().Context(), &usecase.CreateSubcategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
		IsActive:   activeOrDefault(req.IsActive),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSubcategoryView(sub), "Subcategoria criada")
}

// UpdateSubcategory handles PUT /admin/subcategories/:id.
func (h *CatalogHandler) UpdateSubcategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SubcategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sub, err := h.catalogUC.UpdateSubcategory(c.Request().Context(), &usecase.UpdateSubcategoryInput{
		ID:       id,
		Name:     req.Name,
		IsActive: activeOrDefault(req.IsActive),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSubcategoryView(sub), "Subcategoria atualizada")
}

// DeleteSubcategory removes a subcategory with its products.
func (h *CatalogHandler) DeleteSubcategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	report, err := h.catalogUC.DeleteSubcategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDeleteReportView(report), "Subcategoria eliminada")
}

// ListProducts handles GET /admin/products with the optional category_id and subcategory_id filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return err
	}
	subcategoryID, err := queryUUID(c, "subcategory_id")
	if err != nil {
		return err
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), repository.ProductFilter{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateProduct handles POST /admin/products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		IsActive: activeOrDefault(req.IsActive),
	}
	if req.CategoryID != "" {
		id := uuid.MustParse(req.CategoryID)
		input.CategoryID = &id
	}
	if req.SubcategoryID != "" {
		id := uuid.MustParse(req.SubcategoryID)
		input.SubcategoryID = &id
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Produto criado")
}
