package errors

import "net/http"

// Predefined errors. Messages are shown to shop staff; codes are stable for clients.
var (
	// Validation errors are raised before any store call.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	// Catalog errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Categoria não encontrada",
		"",
	)

	ErrCategoryConflict = NewBaseError(
		http.StatusConflict,
		"CATEGORY_CONFLICT",
		"Já existe uma categoria com este nome",
		"",
	)

	ErrSubcategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBCATEGORY_NOT_FOUND",
		"Subcategoria não encontrada",
		"",
	)

	ErrSubcategoryConflict = NewBaseError(
		http.StatusConflict,
		"SUBCATEGORY_CONFLICT",
		"Já existe uma subcategoria com este nome nesta categoria",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produto não encontrado",
		"",
	)

	// Customer errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Cliente não encontrado",
		"",
	)

	ErrCustomerEmailConflict = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_EMAIL_CONFLICT",
		"Já existe um cliente com este email",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Encomenda não encontrada",
		"",
	)

	// Discount code errors
	ErrDiscountCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"DISCOUNT_CODE_NOT_FOUND",
		"Código de desconto não encontrado",
		"",
	)

	ErrDiscountCodeConflict = NewBaseError(
		http.StatusConflict,
		"DISCOUNT_CODE_CONFLICT",
		"Este código de desconto já existe",
		"",
	)

	ErrDiscountCodeUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"DISCOUNT_CODE_UNAVAILABLE",
		"Este código de desconto não pode ser utilizado",
		"",
	)

	// Tax errors
	ErrTaxRateNotFound = NewBaseError(
		http.StatusNotFound,
		"TAX_RATE_NOT_FOUND",
		"Taxa de IVA não encontrada",
		"",
	)

	// Cascade errors. Details carries the failing step.
	ErrCascadeFailed = NewBaseError(
		http.StatusInternalServerError,
		"CASCADE_DELETE_FAILED",
		"Não foi possível eliminar o registo",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação da base de dados",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Sessão inválida ou expirada",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)
)
