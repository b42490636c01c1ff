package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"

	"hivemcp/pkg/logging"
)

// BridgeOptions configures the HTTP bridge.
type BridgeOptions struct {
	// AllowOrigins lists the CORS origins. Empty allows every origin.
	AllowOrigins []string
	// Metrics is served on /metrics when set.
	Metrics *Metrics
	// Hub serves the event feed on /ws when set.
	Hub *Hub
	// Debug enables gin debug mode.
	Debug bool
}

// Bridge is the plain HTTP surface of the server: a JSON-RPC endpoint on
// POST /, a health probe, the streamable MCP transport on /mcp, metrics
// and the websocket event feed.
type Bridge struct {
	dispatcher *Dispatcher
	status     StatusSource
	opts       BridgeOptions
	engine     *gin.Engine
}

// NewBridge builds the router.
func NewBridge(d *Dispatcher, status StatusSource, opts BridgeOptions) *Bridge {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	b := &Bridge{
		dispatcher: d,
		status:     status,
		opts:       opts,
		engine:     gin.New(),
	}
	b.setupRoutes()
	return b
}

// Handler returns the bridge as an http.Handler.
func (b *Bridge) Handler() http.Handler {
	return b.engine
}

func (b *Bridge) setupRoutes() {
	r := b.engine
	r.Use(gin.Recovery(), requestLogger())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Mcp-Session-Id"},
		ExposeHeaders: []string{"Content-Length", "Mcp-Session-Id"},
		MaxAge:        12 * time.Hour,
	}
	if len(b.opts.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = b.opts.AllowOrigins
	}
	r.Use(cors.New(corsConfig))

	r.POST("/", b.handleRPC)
	r.GET("/health", b.handleHealth)

	streamable := server.NewStreamableHTTPServer(b.dispatcher.MCPServer())
	r.Any("/mcp", gin.WrapH(streamable))

	if b.opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(b.opts.Metrics.Handler()))
	}
	if b.opts.Hub != nil {
		r.GET("/ws", func(c *gin.Context) {
			b.opts.Hub.ServeWS(c.Writer, c.Request)
		})
	}
}

func (b *Bridge) handleRPC(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLineSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(nil, codeParseError, "Parse error"))
		return
	}

	resp := b.dispatcher.HandleMessage(c.Request.Context(), body)
	if resp == nil {
		c.Status(http.StatusAccepted)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (b *Bridge) handleHealth(c *gin.Context) {
	st := b.status.Status()
	c.JSON(http.StatusOK, gin.H{
		"service":        "mcp-http",
		"status":         "healthy",
		"hive_connected": true,
		"hive_id":        st.HiveID,
		"total_agents":   st.Metrics.TotalAgents,
		"active_agents":  st.Metrics.ActiveAgents,
	})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debug("HTTP", "%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
