package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyUser CtxKey = iota
)

func CtxWithUser(ctx context.Context, user AuthUser) context.Context {
	return context.WithValue(ctx, CtxKeyUser, user)
}

// UserFromCtx returns the authenticated user from context or
// ErrUnauthenticated if none is set.
func UserFromCtx(ctx context.Context) (AuthUser, error) {
	user, ok := ctx.Value(CtxKeyUser).(AuthUser)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}
