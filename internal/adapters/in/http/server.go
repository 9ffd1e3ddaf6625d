// Package http is the inbound HTTP adapter: an echo server that resolves the
// acting principal from the session, validates requests against the OpenAPI
// description and translates use case outcomes into redirects, flash messages
// and JSON.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"fueldelivery/internal/core/application/usecases/commands"
	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/pkg/metrics"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Commands groups the state-changing use cases the server dispatches to.
type Commands struct {
	RegisterUser    commands.RegisterUserCommandHandler
	RegisterStation commands.RegisterStationCommandHandler
	PlaceOrder      commands.PlaceOrderCommandHandler
	ConfirmOrder    commands.ConfirmOrderCommandHandler
	AssignAgent     commands.AssignAgentCommandHandler
	RejectOrder     commands.RejectOrderCommandHandler
	DeliverOrder    commands.DeliverOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	AddAgent        commands.AddAgentCommandHandler
	RemoveAgent     commands.RemoveAgentCommandHandler
	UpdateInventory commands.UpdateInventoryCommandHandler
	ReconcileAgents commands.ReconcileAgentsCommandHandler
}

// Queries groups the read models the server serves.
type Queries struct {
	Authenticate       queries.AuthenticateQueryHandler
	Stations           queries.GetStationsQueryHandler
	StationFuelOptions queries.GetStationFuelOptionsQueryHandler
	Quote              queries.GetQuoteQueryHandler
	UserOrders         queries.GetUserOrdersQueryHandler
	ManagerDashboard   queries.GetManagerDashboardQueryHandler
}

// Options tunes the server's outer surface.
type Options struct {
	// ValidateRequests enables OpenAPI request validation.
	ValidateRequests bool
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	sessions sessions.Store
	metrics  *metrics.WorkflowMetrics
	logger   *slog.Logger
	options  Options
}

func NewServer(
	cmds Commands,
	qs Queries,
	store sessions.Store,
	workflowMetrics *metrics.WorkflowMetrics,
	logger *slog.Logger,
	options Options,
) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		sessions: store,
		metrics:  workflowMetrics,
		logger:   logger.With("component", "http"),
		options:  options,
	}
}

// Echo builds the router with every route of the service.
func (s *Server) Echo(ctx context.Context) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newFormValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.DebugContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	if s.options.ValidateRequests {
		router, routerErr := newOpenAPIRouter(doc)
		if routerErr != nil {
			return nil, routerErr
		}
		e.Use(requestValidator(router))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.options.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.options.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/register", s.RegisterUser)
	e.POST("/login", s.LoginUser)
	e.POST("/manager/register", s.RegisterStation)
	e.POST("/manager/login", s.LoginManager)
	e.POST("/logout", s.Logout)

	user := e.Group("/user", s.requireRole(identity.RoleUser))
	user.GET("/stations", s.ListStations)
	user.GET("/select-station/:stationId", s.SelectStation)
	user.POST("/confirm-order/:stationId", s.QuoteOrder)
	user.POST("/place-order/:stationId", s.PlaceOrder)
	user.GET("/orders", s.ListUserOrders)
	user.POST("/orders/:id/cancel", s.CancelOrderAsUser)

	manager := e.Group("/manager", s.requireRole(identity.RoleManager))
	manager.GET("/dashboard", s.Dashboard)
	manager.POST("/confirm-order/:orderId", s.ConfirmOrder)
	manager.POST("/assign-agent/:orderId", s.AssignAgent)
	manager.POST("/orders/:id/reject", s.RejectOrder)
	manager.POST("/orders/:id/deliver", s.DeliverOrder)
	manager.POST("/orders/:id/cancel", s.CancelOrderAsManager)
	manager.POST("/add-agent", s.AddAgent)
	manager.POST("/remove-agent/:agentId", s.RemoveAgent)
	manager.POST("/inventory/:id/update", s.UpdateInventory)
	manager.POST("/reconcile-agents", s.ReconcileAgents)

	return e, nil
}

// fail answers a JSON request with the classified error.
func (s *Server) fail(c echo.Context, err error) error {
	kind, status := s.record(c, err)
	return c.JSON(status, problem{Kind: kind, Message: describe(kind, err)})
}

// redirect finishes a form post: the outcome is left as a flash message and the
// client is sent to the page that shows it.
func (s *Server) redirect(c echo.Context, to, success string, err error) error {
	if err != nil {
		kind, _ := s.record(c, err)
		s.addFlash(c, flashError, describe(kind, err))
	} else {
		s.addFlash(c, flashSuccess, success)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

func (s *Server) record(c echo.Context, err error) (string, int) {
	kind, status := classify(err)
	s.metrics.IncFailure(kind)

	ctx := c.Request().Context()
	if kind == kindInternal {
		s.logger.ErrorContext(ctx, "request failed", "path", c.Path(), "error", err)
	} else {
		s.logger.InfoContext(ctx, "request refused", "path", c.Path(), "kind", kind, "error", err)
	}
	return kind, status
}
