package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeMissingField           = "MISSING_FIELD"
	ErrCodeInvalidCategory        = "INVALID_CATEGORY"
	ErrCodeInvalidRequest         = "INVALID_REQUEST"
	ErrCodeRecipeNotFound         = "RECIPE_NOT_FOUND"
	ErrCodeInvalidIngredientIndex = "INVALID_INGREDIENT_INDEX"
	ErrCodeUnauthorised           = "UNAUTHORIZED"
	ErrCodeMethodNotAllowed       = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so wrapped or
// re-created errors still satisfy errors.Is against the sentinels below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidJSON            = NewDomainError(ErrCodeInvalidJSON, "Request body is not valid JSON")
	ErrMissingTitle           = NewDomainError(ErrCodeMissingField, "Please enter a recipe title")
	ErrInvalidCategory        = NewDomainError(ErrCodeInvalidCategory, "Category must be one of Main Dish, Appetizer or Dessert")
	ErrRecipeNotFound         = NewDomainError(ErrCodeRecipeNotFound, "Recipe not found")
	ErrInvalidIngredientIndex = NewDomainError(ErrCodeInvalidIngredientIndex, "Ingredient index out of range")
)
