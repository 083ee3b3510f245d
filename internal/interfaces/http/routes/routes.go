// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/domain/cart"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/logicbyfred/gallery-store/internal/domain/contact"
	"github.com/logicbyfred/gallery-store/internal/domain/viewmode"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/handlers"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/middleware"
	"github.com/logicbyfred/gallery-store/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

// Dependencies are the services the HTTP layer is wired to
type Dependencies struct {
	Config   *config.Config
	Logger   *logrus.Logger
	JWT      *auth.JWTManager
	Catalog  catalog.Store
	Cart     *cart.Service
	ViewMode *viewmode.Service
	Contact  *contact.Service
	Sheets   handlers.SheetGenerator
}

// SetupAuthRoutes sets up administrator authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Config, deps.JWT, deps.Logger)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}
}

// SetupProductRoutes sets up catalog and product view routes
func SetupProductRoutes(rg *gin.RouterGroup, deps *Dependencies, session gin.HandlerFunc) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Logger)
	viewHandler := handlers.NewViewModeHandler(deps.ViewMode, deps.Logger)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)

		view := products.Group("/:id/view")
		view.Use(session)
		{
			view.GET("", viewHandler.GetView)
			view.POST("/capability", viewHandler.ReportCapability)
			view.PUT("/preference", viewHandler.SetPreference)
			view.POST("/failure", viewHandler.ReportFailure)
		}
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps *Dependencies, session gin.HandlerFunc) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Sheets, deps.Logger)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(session)
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.GET("/summary.pdf", cartHandler.DownloadSummary)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:product_id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:product_id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/open", cartHandler.OpenCart)
		cartGroup.POST("/close", cartHandler.CloseCart)
	}
}

// SetupContactRoutes sets up the contact form route
func SetupContactRoutes(rg *gin.RouterGroup, deps *Dependencies, session gin.HandlerFunc) {
	contactHandler := handlers.NewContactHandler(deps.Contact, deps.Logger)

	rg.POST("/contact", session, contactHandler.Submit)
}

// SetupAdminRoutes sets up catalog administration routes
func SetupAdminRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Config, deps.JWT, deps.Logger)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Logger)

	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuth(deps.JWT))
	{
		admin.GET("/me", authHandler.Me)
		admin.PUT("/products/:id", catalogHandler.UpsertProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(apiV1 *gin.RouterGroup, deps *Dependencies) {
	session := middleware.Session(deps.Config, deps.JWT, deps.Logger)

	SetupAuthRoutes(apiV1, deps)
	SetupProductRoutes(apiV1, deps, session)
	SetupCartRoutes(apiV1, deps, session)
	SetupContactRoutes(apiV1, deps, session)
	SetupAdminRoutes(apiV1, deps)
}
