package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
)

// wsUpgrader: WebSocket 연결 업그레이드용 설정입니다.
// 대시보드는 동일 출처에서만 접근하므로 Origin 검증은 느슨하게 설정합니다.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  constants.WebSocketConfig.ReadBufferSize,
	WriteBufferSize: constants.WebSocketConfig.WriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamState: WebSocket으로 조회 상태 변경을 실시간 전송합니다.
// 연결 직후 현재 스냅샷을 한 번 보내고, 이후 상태가 바뀔 때마다 전송합니다.
func (h *APIHandler) StreamState(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	updates, unsubscribe := h.tracker.Subscribe()
	defer unsubscribe()

	// 클라이언트가 끊으면 read 루프가 끝난다
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	writeState := func(v any) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(constants.WebSocketConfig.WriteTimeout))
		return conn.WriteJSON(v) == nil
	}

	if !writeState(h.tracker.Snapshot()) {
		return
	}

	pingTicker := time.NewTicker(constants.WebSocketConfig.PingInterval)
	defer pingTicker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-clientGone:
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			if !writeState(state) {
				return
			}
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(constants.WebSocketConfig.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
