package utils

import (
	"context"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	requestID, ok := val.(string)
	return requestID, ok
}
