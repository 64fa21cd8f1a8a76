package httpapi

type contextKey int

//RequestIDKey is the context key for the request ID of a request
const RequestIDKey contextKey = 0
