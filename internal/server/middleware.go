package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/slovogames/wordwheel/internal/game"
)

type ctxKey int

const (
	ctxKeyRoomID ctxKey = iota
	ctxKeySession
	ctxKeyAdmin
)

func roomMiddleware(rooms *game.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roomID := chi.URLParam(r, "roomID")
			if roomID == "" {
				writeError(w, http.StatusNotFound, "room not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyRoomID, roomID)
			ctx = context.WithValue(ctx, ctxKeySession, rooms.Get(roomID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func adminAuthMiddleware(db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := adminFromRequest(r, db)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAdmin, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roomID(r *http.Request) string {
	return r.Context().Value(ctxKeyRoomID).(string)
}

func session(r *http.Request) *game.Session {
	return r.Context().Value(ctxKeySession).(*game.Session)
}
