package httpapi

import (
	"context"
	"net/http"

	"markbook/internal/common"
	"markbook/internal/server/models"
)

type ctxKey string

const (
	accountKey   ctxKey = "account"
	sessionIDKey ctxKey = "sessionID"
)

// SessionHeader carries the opaque session id issued by login.
const SessionHeader = "X-Session-Id"

// requireSession resolves the acting account from the session id header and
// rejects the request before it can reach the record store when no session
// is established.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if id == "" {
			s.writeError(w, r, common.ErrNotLoggedIn)
			return
		}

		sess, ok := s.sessions.Get(id)
		if !ok {
			s.writeError(w, r, common.ErrNotLoggedIn)
			return
		}
		account := sess.Current()
		if account == nil {
			s.writeError(w, r, common.ErrNotLoggedIn)
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, account)
		ctx = context.WithValue(ctx, sessionIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accountFromContext(ctx context.Context) *models.Account {
	account, _ := ctx.Value(accountKey).(*models.Account)
	return account
}

func sessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
