package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes and returns a new Socket.IO server. Clients
// join the room named after their own userId to receive match events.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		c.Join(userID)
		log.Printf("👥 Socket %s joined room %s\n", c.ID(), userID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

// MatchNotifier broadcasts newly minted matches to both users' rooms.
type MatchNotifier struct {
	Server *socketio.Server
}

// NotifyMatch emits a matchCreated event to both sides of the pair.
func (n *MatchNotifier) NotifyMatch(userA, userB, matchID string) {
	payload := map[string]string{
		"matchId": matchID,
		"userA":   userA,
		"userB":   userB,
	}
	n.Server.BroadcastToRoom("/", userA, "matchCreated", payload)
	n.Server.BroadcastToRoom("/", userB, "matchCreated", payload)
}
