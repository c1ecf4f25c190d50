package user

import "context"

type ctxKey int

const identityCtxKey ctxKey = iota

// Identity is the authenticated subject of a request.
type Identity struct {
	ID    int64
	Email string
}

func NewContextWithIdentity(baseCtx context.Context, identity Identity) context.Context {
	return context.WithValue(baseCtx, identityCtxKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(Identity)
	return identity, ok
}
