package api

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-showcase/sessions"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession adds the visitor's session to the context
func ctxWithSession(ctx context.Context, sess *sessions.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// ctxGetSession retrieves the visitor's session from the context
func ctxGetSession(ctx context.Context) (*sessions.Session, error) {
	if ctxValue := ctx.Value(sessionKey); ctxValue == nil {
		return nil, errors.New("session not found in context")
	} else if sess, ok := ctxValue.(*sessions.Session); !ok {
		return nil, errors.New("value is not of type `*sessions.Session`")
	} else {
		return sess, nil
	}
}
