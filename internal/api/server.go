package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/eventdeskhq/eventdesk-api/docs"
	v1 "github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1"
	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdeskhq/eventdesk-api/internal/api/middleware"
	"github.com/eventdeskhq/eventdesk-api/internal/config"
	"github.com/eventdeskhq/eventdesk-api/internal/domain"
	"github.com/eventdeskhq/eventdesk-api/internal/metrics"
	"github.com/eventdeskhq/eventdesk-api/internal/repository"
	"github.com/eventdeskhq/eventdesk-api/internal/repository/dao"
	"github.com/eventdeskhq/eventdesk-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	projectRepo := repository.NewProjectRepository(dao.NewProjectDAO(db))

	authHandler := s.initAuthHandler()
	projectHandler := v1.NewProjectHandler(service.NewProjectService(projectRepo))
	attendeeHandler := s.initAttendeeHandler(db, projectRepo)
	orderHandler := s.initOrderHandler(db, projectRepo)
	utmHandler := s.initUtmHandler(db, projectRepo)
	agendaHandler := s.initAgendaHandler(db, projectRepo)

	s.MountHandlers(db, projectRepo, authHandler, projectHandler, attendeeHandler, orderHandler, utmHandler, agendaHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	svc := service.NewAuthService(s.Config.Admin)

	return v1.NewAuthHandler(svc, s.Config.API)
}

func (s *Server) initAttendeeHandler(db *gorm.DB, projects *repository.ProjectRepository) *v1.AttendeeHandler {
	attendeeDAO := dao.NewEntityDAO[domain.Attendee](db, "created_at DESC")
	repo := repository.NewResource[domain.Attendee](attendeeDAO)
	svc := service.NewAttendeeService(repo, projects)

	return v1.NewAttendeeHandler(svc)
}

func (s *Server) initOrderHandler(db *gorm.DB, projects *repository.ProjectRepository) *v1.OrderHandler {
	orderDAO := dao.NewEntityDAO[domain.Order](db, "created_at DESC").
		WithUpdateOmit("reference")
	repo := repository.NewResource[domain.Order](orderDAO)
	svc := service.NewOrderService(repo, projects, s.Config.Stripe)

	return v1.NewOrderHandler(svc)
}

func (s *Server) initUtmHandler(db *gorm.DB, projects *repository.ProjectRepository) *v1.UtmHandler {
	utmDAO := dao.NewUtmDAO(db)
	repo := repository.NewUtmRepository(utmDAO)
	svc := service.NewUtmService(repo, projects)
	projectSvc := service.NewProjectService(projects)

	return v1.NewUtmHandler(svc, projectSvc, s.Config.API)
}

func (s *Server) initAgendaHandler(db *gorm.DB, projects *repository.ProjectRepository) *v1.AgendaHandler {
	agendaDAO := dao.NewAgendaDAO(db)
	repo := repository.NewAgendaRepository(agendaDAO)
	svc := service.NewAgendaService(repo, projects)

	return v1.NewAgendaHandler(svc)
}

// initResourceHandler assembles the dao -> repository -> service ->
// handler chain every flat entity shares.
func initResourceHandler[R v1.ResourceRequest[M], M any](db *gorm.DB, projects *repository.ProjectRepository, name, orderBy string, cascade dao.CascadeFunc) *v1.ResourceHandler[R, M] {
	entityDAO := dao.NewEntityDAO[M](db, orderBy)
	if cascade != nil {
		entityDAO = entityDAO.WithCascade(cascade)
	}

	repo := repository.NewResource[M](entityDAO)
	svc := service.NewResourceService[M](repo, projects)

	return v1.NewResourceHandler[R, M](name, svc)
}

// mountResource registers the five collection/item routes of a flat
// entity under its project.
func mountResource[R v1.ResourceRequest[M], M any](group *gin.RouterGroup, path string, h *v1.ResourceHandler[R, M]) {
	group.GET("/projects/:projectID/"+path, h.HandleList)
	group.POST("/projects/:projectID/"+path, h.HandleCreate)
	group.GET("/projects/:projectID/"+path+"/:"+h.IDParam(), h.HandleGet)
	group.PUT("/projects/:projectID/"+path+"/:"+h.IDParam(), h.HandleUpdate)
	group.DELETE("/projects/:projectID/"+path+"/:"+h.IDParam(), h.HandleDelete)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.NewSessionGate(s.Config.API.SessionSigningKey).Gate())
}

func (s *Server) MountHandlers(
	db *gorm.DB,
	projectRepo *repository.ProjectRepository,
	authHandler *v1.AuthHandler,
	projectHandler *v1.ProjectHandler,
	attendeeHandler *v1.AttendeeHandler,
	orderHandler *v1.OrderHandler,
	utmHandler *v1.UtmHandler,
	agendaHandler *v1.AgendaHandler,
) {
	const basePath = "/api/v1"

	root := s.Router.Group(basePath)
	{
		root.POST("/auth/login", authHandler.HandleLogin)
		root.POST("/auth/logout", authHandler.HandleLogout)
		root.GET("/auth/session", authHandler.HandleSession)

		root.GET("/projects", projectHandler.HandleListProjects)
		root.POST("/projects", projectHandler.HandleCreateProject)
		root.GET("/projects/:projectID", projectHandler.HandleGetProject)
		root.PUT("/projects/:projectID", projectHandler.HandleUpdateProject)
		root.DELETE("/projects/:projectID", projectHandler.HandleDeleteProject)
		root.GET("/projects/:projectID/stats", projectHandler.HandleProjectStats)

		mountResource(root, "attendees", attendeeHandler.ResourceHandler)
		root.GET("/projects/:projectID/attendees/stats", attendeeHandler.HandleCheckInStats)
		root.POST("/projects/:projectID/attendees/:attendeeID/checkin", attendeeHandler.HandleToggleCheckIn)

		mountResource(root, "delegates",
			initResourceHandler[request.DelegateRequest, domain.Delegate](db, projectRepo, "delegate", "created_at DESC", nil))
		mountResource(root, "speakers",
			initResourceHandler[request.SpeakerRequest, domain.Speaker](db, projectRepo, "speaker", "name ASC", dao.DeleteSpeakerLinks))
		mountResource(root, "sponsors",
			initResourceHandler[request.SponsorRequest, domain.Sponsor](db, projectRepo, "sponsor", "name ASC", nil))
		mountResource(root, "exhibitors",
			initResourceHandler[request.ExhibitorRequest, domain.Exhibitor](db, projectRepo, "exhibitor", "name ASC", nil))
		mountResource(root, "partners",
			initResourceHandler[request.PartnerRequest, domain.Partner](db, projectRepo, "partner", "name ASC", nil))
		mountResource(root, "media-partners",
			initResourceHandler[request.MediaPartnerRequest, domain.MediaPartner](db, projectRepo, "mediaPartner", "name ASC", nil))
		mountResource(root, "leads",
			initResourceHandler[request.LeadRequest, domain.Lead](db, projectRepo, "lead", "created_at DESC", nil))
		mountResource(root, "enquiries",
			initResourceHandler[request.EnquiryRequest, domain.Enquiry](db, projectRepo, "enquiry", "created_at DESC", nil))
		mountResource(root, "campaigns",
			initResourceHandler[request.CampaignRequest, domain.MarketingCampaign](db, projectRepo, "campaign", "created_at DESC", nil))
		mountResource(root, "tickets",
			initResourceHandler[request.TicketRequest, domain.Ticket](db, projectRepo, "ticket", "created_at DESC", nil))

		mountResource(root, "orders", orderHandler.ResourceHandler)
		root.GET("/projects/:projectID/orders/stats", orderHandler.HandleOrderStats)
		root.POST("/projects/:projectID/orders/:orderID/checkout", orderHandler.HandleCheckout)

		root.GET("/projects/:projectID/utm", utmHandler.HandleList)
		root.POST("/projects/:projectID/utm", utmHandler.HandleCreate)
		root.GET("/projects/:projectID/utm/:utmID", utmHandler.HandleGet)
		root.PUT("/projects/:projectID/utm/:utmID", utmHandler.HandleUpdate)
		root.DELETE("/projects/:projectID/utm/:utmID", utmHandler.HandleDelete)
		root.POST("/projects/:projectID/utm/:utmID/track", utmHandler.HandleTrack)
		root.POST("/projects/:projectID/utm/bulk", utmHandler.HandleBulk)
		root.GET("/projects/:projectID/utm/resolve", utmHandler.HandleResolve)
		root.GET("/projects/:projectID/utm/stats", utmHandler.HandleStats)
		root.GET("/projects/:projectID/utm/export", utmHandler.HandleExport)
		root.GET("/projects/:projectID/utm/find", utmHandler.HandleExport)
		root.GET("/projects/:projectID/utm/snippet", utmHandler.HandleSnippet)

		root.GET("/projects/:projectID/agenda", agendaHandler.HandleGetAgenda)
		root.POST("/projects/:projectID/agenda/days", agendaHandler.HandleCreateDay)
		root.PUT("/projects/:projectID/agenda/days/:dayID", agendaHandler.HandleUpdateDay)
		root.DELETE("/projects/:projectID/agenda/days/:dayID", agendaHandler.HandleDeleteDay)
		root.POST("/projects/:projectID/agenda/days/:dayID/sessions", agendaHandler.HandleCreateSession)
		root.PUT("/projects/:projectID/agenda/sessions/:sessionID", agendaHandler.HandleUpdateSession)
		root.DELETE("/projects/:projectID/agenda/sessions/:sessionID", agendaHandler.HandleDeleteSession)
		root.POST("/projects/:projectID/agenda/sessions/:sessionID/items", agendaHandler.HandleCreateItem)
		root.PUT("/projects/:projectID/agenda/items/:itemID", agendaHandler.HandleUpdateItem)
		root.DELETE("/projects/:projectID/agenda/items/:itemID", agendaHandler.HandleDeleteItem)
	}

	s.Router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EventDesk API"
	docs.SwaggerInfo.Description = "Multi-tenant event management CRM backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
