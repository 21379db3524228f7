package fiddleless

import (
	"net/http"
	"time"

	"github.com/beastars1/fiddleless/global"
	"github.com/beastars1/fiddleless/services/logger"
	"github.com/beastars1/fiddleless/shell"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	wsWriteWait  = 5 * time.Second
	wsPingPeriod = 30 * time.Second
	wsSendBuffer = 8
)

type (
	statusResp struct {
		App     string      `json:"app"`
		Version string      `json:"version"`
		State   shell.State `json:"state"`
	}
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// overlays are served from file:// or other local origins
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (f *Fiddleless) initHttpServer() {
	f.httpSrv = &http.Server{
		Addr:    f.opts.apiAddr,
		Handler: f.newRouter(),
	}
	go func() {
		logger.Info("status api listening", "addr", f.opts.apiAddr)
		if err := f.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status api stopped", zap.Error(err))
		}
	}()
}

func (f *Fiddleless) newRouter() *gin.Engine {
	if f.opts.debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), accessLog())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))
	if f.opts.enablePprof {
		pprof.Register(engine)
	}
	v1 := engine.Group("/v1")
	v1.GET("/status", f.getStatus)
	v1.GET("/ws", f.streamStatus)
	return engine
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("status api request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}

func (f *Fiddleless) snapshot(s shell.State) statusResp {
	return statusResp{
		App:     global.AppName,
		Version: global.AppBuildInfo.Version,
		State:   s,
	}
}

func (f *Fiddleless) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, f.snapshot(f.State()))
}

// streamStatus pushes the current state and then every change to a websocket client.
func (f *Fiddleless) streamStatus(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates := make(chan shell.State, wsSendBuffer)
	unsubscribe := f.Subscribe(func(s shell.State) {
		select {
		case updates <- s:
		default:
			// slow reader, it gets the next state
		}
	})
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	if err = f.writeState(conn, f.State()); err != nil {
		return
	}
	for {
		select {
		case s := <-updates:
			if err = f.writeState(conn, s); err != nil {
				logger.Debug("websocket write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err = conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-f.ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(wsWriteWait))
			return
		}
	}
}

func (f *Fiddleless) writeState(conn *websocket.Conn, s shell.State) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(f.snapshot(s))
}
