package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/slovogames/wordwheel/internal/game"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, store Store, rooms *game.SessionStore, opts Options) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("WordWheel API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	// Room routes — {roomID} resolved by roomMiddleware. Any non-empty
	// room ID is valid; the session is created on first use.
	r.Route("/api/rooms/{roomID}", func(r chi.Router) {
		r.Use(roomMiddleware(rooms))
		r.Post("/hosting", handleHosting(broker))
		r.Post("/word", handleWord(broker))
		r.Post("/join", handleJoin(broker))
		r.Get("/status", handleStatus())
		r.Post("/guess/letter", handleGuessLetter(logger, store, broker))
		r.Post("/guess/phrase", handleGuessPhrase(logger, store, broker))
		r.Post("/pass", handlePass(broker))
		r.Post("/end", handleEnd(logger, store, broker))
		r.Get("/leaderboard", handleLeaderboard(store, opts.TopPlayers))
		r.Get("/rounds", handleRounds(store, opts.RecentRounds))
		r.Get("/players/{playerID}/stats", handlePlayerStats(store))
		r.Get("/events", handleEvents(broker))
		r.Get("/ws", handleWS(logger, broker))
	})

	// Admin auth — cookie sessions backed by the shared DB.
	r.Post("/api/admin/login", handleAdminLogin(db))
	r.Post("/api/admin/logout", handleAdminLogout(db))
	r.Get("/api/admin/me", handleAdminMe(db))

	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(adminAuthMiddleware(db))
		r.Get("/", handleAdminListRooms(store))
		r.Delete("/{roomID}/stats", handleAdminResetRoomStats(store))
	})

	if opts.SPADir != "" {
		if info, err := os.Stat(opts.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", opts.SPADir)
			r.NotFound(handleSPA(opts.SPADir))
		}
	}
}
