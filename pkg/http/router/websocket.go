package router

import (
	"net"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"go.uber.org/zap"
)

// serveWebsocket. upgrades GET /ws and answers route queries on the connection until the peer leaves.
// one goroutine per session.
func (api *API) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}
	// hijacked connections keep the deadlines of the http server
	_ = conn.SetDeadline(time.Time{})

	api.log.Info("established websocket connection", zap.String("connection name", nameConn(conn)),
		zap.String("protocol", hs.Protocol))

	user := api.hub.Register(conn)

	go func() {
		defer conn.Close()
		if err := user.Serve(); err != nil {
			api.log.Error("websocket session error", zap.Uint("user", user.GetID()), zap.Error(err))
		}
		api.hub.Remove(user)
		api.log.Info("user disconnected from websocket server", zap.String("connection name", nameConn(conn)))
	}()
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
