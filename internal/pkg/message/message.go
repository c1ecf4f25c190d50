package message

const (
	InvalidInput          = "Invalid input."
	ValidationFailed      = "Validation failed"
	InternalError         = "Internal server error"
	TokenRequired         = "Access token required"
	InvalidToken          = "Invalid token"
	InvalidCredentials    = "Invalid credentials"
	IncorrectCredentials  = "The provided credentials are incorrect."
	EmailTaken            = "A user with this email already exists."
	UserNotFound          = "User not found"
	UnsupportedMediaType  = "Content-Type must be application/json."
	PayloadTooLarge       = "Request payload is too large."
	FmtErrStatusCode      = "rec.Code = %d, want: %d"
	FmtErrUnexpectedValue = "%s = %v, want: %v"
)
