package apperrors

// ErrorCode classifies an AppError independently of its HTTP status.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeUnknownError         ErrorCode = "UNKNOWN_ERROR"

	// Request-level failures
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Payment pipeline failures
	CodeSignatureInvalid ErrorCode = "SIGNATURE_INVALID"
	CodeGatewayError     ErrorCode = "GATEWAY_ERROR"
	CodeCertificateError ErrorCode = "CERTIFICATE_ERROR"
	CodeEmailError       ErrorCode = "EMAIL_ERROR"
)
