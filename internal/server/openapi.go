package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "WordWheel API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Turn-based word guessing game for chat rooms.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/rooms/{roomID}/hosting
	postHosting, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{roomID}/hosting")
	postHosting.SetSummary("Claim hosting")
	postHosting.SetDescription("Player becomes the host of the room's next round.")
	postHosting.AddReqStructure(HostingRequest{})
	postHosting.AddRespStructure(StatusResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postHosting.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postHosting)

	// POST /api/rooms/{roomID}/word
	postWord, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{roomID}/word")
	postWord.SetSummary("Set the secret word")
	postWord.SetDescription("Host sets the word or phrase for the round. Starts guessing.")
	postWord.AddReqStructure(WordRequest{})
	postWord.AddRespStructure(WordResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postWord.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postWord.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	postWord.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postWord)

	// POST /api/rooms/{roomID}/join
	postJoin, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{roomID}/join")
	postJoin.SetSummary("Join the round")
	postJoin.SetDescription("Player joins the room's current round as a guesser.")
	postJoin.AddReqStructure(JoinRequest{})
	postJoin.AddRespStructure(StatusResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postJoin)

	// GET /api/rooms/{roomID}/status
	getStatus, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{roomID}/status")
	getStatus.SetSummary("Room status")
	getStatus.SetDescription("Returns the room's current round state: masked word, players, turn, scores.")
	getStatus.AddRespStructure(StatusResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStatus)

	// POST /api/rooms/{roomID}/guess/letter
	postLetter, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{roomID}/guess/letter")
	postLetter.SetSummary("Guess a letter")
	postLetter.SetDescription("Current player guesses a single letter. Correct guesses score and keep the turn.")
	postLetter.AddReqStructure(LetterGuessRequest{})
	postLetter.AddRespStructure(LetterGuessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLetter.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postLetter.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postLetter)

	// POST /api/rooms/{roomID}/guess/phrase
	postPhrase, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{roomID}/guess/phrase")
	postPhrase.SetSummary("Guess the whole phrase")
	postPhrase.SetDescription("Current player guesses the full word or phrase. Wrong guesses eliminate the player.")
	postPhrase.AddReqStructure(PhraseGuessRequest{})
	postPhrase.AddRespStructure(PhraseGuessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPhrase.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postPhrase.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postPhrase)

	// POST /api/rooms/{roomID}/pass
	postPass, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{roomID}/pass")
	postPass.SetSummary("Pass the turn")
	postPass.SetDescription("Current player hands the turn to the next active player.")
	postPass.AddReqStructure(PassRequest{})
	postPass.AddRespStructure(PassResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPass.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postPass)

	// POST /api/rooms/{roomID}/end
	postEnd, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{roomID}/end")
	postEnd.SetSummary("End the round")
	postEnd.SetDescription("Host ends the round early. Returns the final summary.")
	postEnd.AddReqStructure(EndRequest{})
	postEnd.AddRespStructure(EndResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postEnd.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	postEnd.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postEnd)

	// GET /api/rooms/{roomID}/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{roomID}/leaderboard")
	getLeaderboard.SetSummary("Room leaderboard")
	getLeaderboard.SetDescription("Top players of the room by accumulated points.")
	getLeaderboard.AddRespStructure([]PlayerStanding{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/rooms/{roomID}/rounds
	getRounds, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{roomID}/rounds")
	getRounds.SetSummary("Recent rounds")
	getRounds.SetDescription("The room's most recent finished rounds.")
	getRounds.AddRespStructure([]RoundSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getRounds)

	// GET /api/rooms/{roomID}/players/{playerID}/stats
	getPlayerStats, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{roomID}/players/{playerID}/stats")
	getPlayerStats.SetSummary("Player stats")
	getPlayerStats.SetDescription("One player's accumulated record within the room.")
	getPlayerStats.AddRespStructure(PlayerStanding{}, openapi.WithHTTPStatus(http.StatusOK))
	getPlayerStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPlayerStats)

	// GET /api/rooms/{roomID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{roomID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of room updates.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/rooms/{roomID}/ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{roomID}/ws")
	getWS.SetSummary("WebSocket event feed")
	getWS.SetDescription("Upgrades to a WebSocket that streams room events.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with email and password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Returns the currently authenticated admin. Requires admin_session cookie.")
	getMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/admin/rooms
	listRooms, _ := r.NewOperationContext(http.MethodGet, "/api/admin/rooms")
	listRooms.SetSummary("List rooms")
	listRooms.SetDescription("All rooms with games played and player counts. Requires admin_session cookie.")
	listRooms.AddRespStructure([]RoomStats{}, openapi.WithHTTPStatus(http.StatusOK))
	listRooms.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listRooms)

	// DELETE /api/admin/rooms/{roomID}/stats
	resetStats, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/rooms/{roomID}/stats")
	resetStats.SetSummary("Reset room stats")
	resetStats.SetDescription("Deletes a room's round history and aggregates. Requires admin_session cookie.")
	resetStats.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	resetStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	resetStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(resetStats)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
