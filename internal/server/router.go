package server

import (
	"net/http"
	"time"

	"isms-api/internal/config"
	"isms-api/internal/handlers"
	"isms-api/internal/middleware"
	"isms-api/internal/models"
	"isms-api/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// crud is the five-operation surface every entity group exposes.
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func mountCRUD(g *gin.RouterGroup, h crud) {
	g.GET("/", h.List)
	g.GET("/:id", h.Get)
	g.POST("/", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("isms_session", store))

	users := repository.NewUsers(db)
	r.Use(middleware.InjectUser(users))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ISMS API is running",
			"version": "1.0.0",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	auth := handlers.NewAuth(users)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/logout", auth.Logout)

	mountCRUD(api.Group("/assets"), handlers.NewAssets(repository.NewAssets(db)))
	mountCRUD(api.Group("/policies"), handlers.NewPolicies(repository.NewPolicies(db)))
	mountCRUD(api.Group("/incidents"), handlers.NewIncidents(repository.NewIncidents(db)))

	risks := handlers.NewRisks(repository.NewRisks(db))
	risksGroup := api.Group("/risks")
	mountCRUD(risksGroup, risks)
	risksGroup.GET("/:id/policies", risks.ListPolicies)
	risksGroup.POST("/:id/policies", risks.AttachPolicy)
	risksGroup.DELETE("/:id/policies/:policy_id", risks.DetachPolicy)

	// Account and role management is restricted to administrators; the audit
	// trail is readable by administrators and auditors.
	adminOnly := middleware.RequireRole(models.RoleAdministrator)

	usersHandlers := handlers.NewUsers(users)
	usersGroup := api.Group("/users")
	usersGroup.GET("/", usersHandlers.List)
	usersGroup.GET("/:id", usersHandlers.Get)
	usersGroup.POST("/", adminOnly, usersHandlers.Create)
	usersGroup.PUT("/:id", adminOnly, usersHandlers.Update)
	usersGroup.DELETE("/:id", adminOnly, usersHandlers.Delete)

	rolesHandlers := handlers.NewRoles(repository.NewRoles(db))
	rolesGroup := api.Group("/roles")
	rolesGroup.GET("/", rolesHandlers.List)
	rolesGroup.GET("/:id", rolesHandlers.Get)
	rolesGroup.POST("/", adminOnly, rolesHandlers.Create)
	rolesGroup.PUT("/:id", adminOnly, rolesHandlers.Update)
	rolesGroup.DELETE("/:id", adminOnly, rolesHandlers.Delete)

	audit := handlers.NewAudit(repository.NewAuditLogs(db))
	api.GET("/audit/",
		middleware.RequireRole(models.RoleAdministrator, models.RoleAuditor),
		audit.List,
	)

	return r
}
