package api

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
)

type Server struct {
	port         string
	coinsService interfaces.ICoinsService
	poolsService interfaces.IPoolsService
	logger       *zap.Logger
	cacheStats   interfaces.ICacheStats
	upgrader     websocket.Upgrader
	server       *http.Server

	livePingPeriod  time.Duration
	livePongTimeout time.Duration

	// baseCtx ends live connections on Stop
	baseCtx    context.Context
	cancelBase context.CancelFunc
}

func New(port string, coinsService interfaces.ICoinsService, poolsService interfaces.IPoolsService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseCtx, cancel := context.WithCancel(context.Background())

	return &Server{
		port:         port,
		coinsService: coinsService,
		poolsService: poolsService,
		logger:       logger.Named("api"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		livePingPeriod:  livePingPeriod,
		livePongTimeout: livePongTimeout,
		baseCtx:         baseCtx,
		cancelBase:      cancel,
	}
}

// SetCacheStats makes the health endpoint report the response cache
func (s *Server) SetCacheStats(stats interfaces.ICacheStats) {
	s.cacheStats = stats
}

// Router builds the dashboard routes
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.metricsMiddleware)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/coins", s.handleCoinsMarkets).Methods(http.MethodGet)
	v1.HandleFunc("/coins/{id}/overview", s.handleCoinOverview).Methods(http.MethodGet)
	v1.HandleFunc("/coins/{id}/ohlc", s.handleCoinOHLC).Methods(http.MethodGet)
	v1.HandleFunc("/trending", s.handleTrending).Methods(http.MethodGet)
	v1.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)
	v1.HandleFunc("/pools/{network}/{pool}/info", s.handlePoolInfo).Methods(http.MethodGet)
	v1.HandleFunc("/pools/{id}", s.handleResolvePool).Methods(http.MethodGet)

	router.HandleFunc("/ws/coins/{id}/ohlc", s.handleLiveOHLC)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Start binds the port synchronously so a busy port fails startup, then
// serves in the background
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info("server starting",
		zap.String("addr", listener.Addr().String()),
		zap.String("metrics", "/metrics"))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", zap.Error(err))
		}
	}()

	return nil
}

// metricsMiddleware records request counts and durations by route template
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}
		metrics.RecordDashboardRequest(route, recorder.status, start)
	})
}

// statusRecorder captures the response status
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack lets the websocket upgrader take over the connection
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}
