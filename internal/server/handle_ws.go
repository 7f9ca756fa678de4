package server

import (
	"log/slog"
	"net/http"

	"nhooyr.io/websocket"
)

// handleWS streams room events over a WebSocket. The connection is
// one-way: client frames are read and discarded to keep the connection
// alive, events flow server to client.
func handleWS(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx := r.Context()

		id := roomID(r)
		ch := broker.Subscribe(id)
		defer broker.Unsubscribe(id, ch)

		// Drain incoming frames so pings and close frames are processed.
		go func() {
			for {
				if _, _, err := conn.Read(ctx); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case data := <-ch:
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
