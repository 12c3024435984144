package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/coingecko_coins"
	"github.com/status-im/market-dashboard/formatting"
	"github.com/status-im/market-dashboard/metrics"
)

const (
	liveWriteTimeout = 10 * time.Second
	livePongTimeout  = 60 * time.Second
	livePingPeriod   = livePongTimeout * 9 / 10
	liveMaxMessage   = 1024

	liveMessageOHLC  = "ohlc"
	liveMessageError = "error"
)

// LiveRequest is a client message asking for a new snapshot
type LiveRequest struct {
	Days       string `json:"days"`
	VsCurrency string `json:"vs_currency,omitempty"`
}

// LiveMessage is pushed to the client for every snapshot
type LiveMessage struct {
	Type     string                 `json:"type"`
	CoinID   string                 `json:"coin_id"`
	Days     string                 `json:"days,omitempty"`
	Data     []formatting.OHLCPoint `json:"data"`
	Fallback bool                   `json:"fallback,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// handleLiveOHLC streams OHLC snapshots over a websocket: one on connect and
// one per client request. Snapshots go through the revalidation cache, so
// clients polling faster than the window get cached data.
func (s *Server) handleLiveOHLC(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["id"]

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("could not open websocket connection", zap.Error(err))
		return
	}
	defer conn.Close()

	metrics.LiveConnectionsGauge.Inc()
	defer metrics.LiveConnectionsGauge.Dec()

	ctx, cancel := context.WithCancel(s.baseCtx)
	defer cancel()

	conn.SetReadLimit(liveMaxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(s.livePongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.livePongTimeout))
	})

	go s.keepLiveConnection(ctx, conn)

	params := coingecko_coins.DefaultOHLCParams()
	if err := s.sendLiveSnapshot(ctx, conn, coinID, params); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && ctx.Err() == nil {
				s.logger.Debug("live connection closed", zap.String("coin", coinID), zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(s.livePongTimeout))

		var req LiveRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if err := s.writeLiveMessage(conn, LiveMessage{Type: liveMessageError, CoinID: coinID, Error: "invalid request"}); err != nil {
				return
			}
			continue
		}

		if days := strings.TrimSpace(req.Days); days != "" {
			params.Days = days
		}
		if currency := strings.TrimSpace(req.VsCurrency); currency != "" {
			params.Currency = strings.ToLower(currency)
		}

		if err := s.sendLiveSnapshot(ctx, conn, coinID, params); err != nil {
			return
		}
	}
}

// keepLiveConnection pings the client so listen-only connections stay inside
// the read deadline, and unblocks the read loop when ctx ends.
// WriteControl may run concurrently with the snapshot writer.
func (s *Server) keepLiveConnection(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(s.livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetReadDeadline(time.Now())
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteTimeout)); err != nil {
				s.logger.Debug("live ping failed", zap.Error(err))
				_ = conn.SetReadDeadline(time.Now())
				return
			}
		}
	}
}

// sendLiveSnapshot writes one snapshot, or an error message when the fetch
// fails. Only write errors end the connection.
func (s *Server) sendLiveSnapshot(ctx context.Context, conn *websocket.Conn, coinID string, params coingecko_coins.OHLCParams) error {
	msg := LiveMessage{
		Type:   liveMessageOHLC,
		CoinID: coinID,
		Days:   params.Days,
	}

	points, err := s.coinsService.CoinOHLC(ctx, coinID, params)
	if err != nil {
		s.logger.Warn("live snapshot failed", zap.String("coin", coinID), zap.Error(err))
		msg = LiveMessage{
			Type:     liveMessageError,
			CoinID:   coinID,
			Days:     params.Days,
			Fallback: true,
			Error:    err.Error(),
		}
	} else {
		msg.Data = nonNilPoints(points)
	}

	return s.writeLiveMessage(conn, msg)
}

func (s *Server) writeLiveMessage(conn *websocket.Conn, msg LiveMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
