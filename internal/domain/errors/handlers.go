package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CUSTOMER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// FromError extracts the AppError carried by err, falling back to ErrInternalError.
func FromError(err error) AppError {
	var appErr AppError
	if As(err, &appErr) {
		return appErr
	}

	return ErrInternalError.WithDetails(err.Error())
}
