package auth

const (
	MsgRegistered = "User registered successfully"
	MsgLoggedIn   = "Login successful"
	MsgRefreshed  = "Token refreshed successfully"
	MsgLoggedOut  = "Successfully logged out"
)
