package rpc

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geoindex/internal/geo"
	"geoindex/internal/logging"
	"geoindex/internal/middleware"
)

// Server exposes the RPC surface over its own gin engine, independent of
// the operator-facing HTTP surface in internal/httpapi (spec.md §6.3: RPC
// and HTTP each bind their own port).
type Server struct {
	index  *geo.Index
	engine *gin.Engine
}

// NewServer wires the RPC routes to the given index.
func NewServer(index *geo.Index) *Server {
	s := &Server{
		index:  index,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), middleware.RequestID())
	s.routes()
	return s
}

// Run starts the RPC listener; it blocks until the server stops or errors.
func (s *Server) Run(addr string) error {
	logging.Info().Str("addr", addr).Msg("rpc surface listening")
	return s.engine.Run(addr)
}

func (s *Server) routes() {
	v1 := s.engine.Group("/v1")
	{
		v1.POST("/FindNearest", s.handleFindNearest)
		v1.POST("/UpdateLocation", s.handleUpdateLocation)
		v1.POST("/RemoveDriver", s.handleRemoveDriver)
		v1.POST("/GetLocation", s.handleGetLocation)
	}
}

// invalidArgument writes the transport-level "invalid argument" error used
// for malformed requests (bad coordinates, empty id) per spec.md §6 — the
// only RPC failure mode conveyed as a non-2xx status rather than
// success=false.
func invalidArgument(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_argument", "message": err.Error()})
}
