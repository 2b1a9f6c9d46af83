package errors

// ErrorCode is a stable machine-readable identifier returned in every error body
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Connection error codes (CONNECTION_*)
const (
	ConnectionNotConnected        ErrorCode = "CONNECTION_001"
	ConnectionNotFound            ErrorCode = "CONNECTION_002"
	ConnectionInvalidCredentials  ErrorCode = "CONNECTION_003"
	ConnectionReconnectRequired   ErrorCode = "CONNECTION_004"
	ConnectionUnsupportedProvider ErrorCode = "CONNECTION_005"
	ConnectionInvalidState        ErrorCode = "CONNECTION_006"
)

// Provider error codes (PROVIDER_*)
const (
	ProviderRefreshFailed     ErrorCode = "PROVIDER_001"
	ProviderUnavailable       ErrorCode = "PROVIDER_002"
	ProviderPricesUnavailable ErrorCode = "PROVIDER_003"
)

// Import error codes (IMPORT_*)
const (
	ImportParseError   ErrorCode = "IMPORT_001"
	ImportMissingFile  ErrorCode = "IMPORT_002"
	ImportFileTooLarge ErrorCode = "IMPORT_003"
)

// Portfolio error codes (PORTFOLIO_*)
const (
	PortfolioNoBalances ErrorCode = "PORTFOLIO_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidToken:       "Authorization token is invalid",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Connection errors
	ConnectionNotConnected:        "Provider is not connected",
	ConnectionNotFound:            "Connection not found",
	ConnectionInvalidCredentials:  "The provider rejected the supplied credentials",
	ConnectionReconnectRequired:   "The provider session has expired. Please reconnect",
	ConnectionUnsupportedProvider: "Unsupported provider",
	ConnectionInvalidState:        "Authorization state is missing or does not match",

	// Provider errors
	ProviderRefreshFailed:     "Failed to refresh the provider session",
	ProviderUnavailable:       "The provider could not be reached. Please try again later",
	ProviderPricesUnavailable: "Price data is temporarily unavailable",

	// Import errors
	ImportParseError:   "The uploaded file could not be parsed",
	ImportMissingFile:  "An import file is required",
	ImportFileTooLarge: "The uploaded file is too large",

	// Portfolio errors
	PortfolioNoBalances: "No balances found. Connect a provider and sync first",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested resource does not exist",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
