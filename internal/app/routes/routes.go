package routes

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/alumeee/alumniconnect/internal/app/auth"
	"github.com/alumeee/alumniconnect/internal/app/controllers"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Profile      *controllers.ProfileController
	Alumni       *controllers.AlumniController
	Memory       *controllers.MemoryController
	Fund         *controllers.FundController
	Event        *controllers.EventController
	Notification *controllers.NotificationController
	Department   *controllers.DepartmentController
	Admin        *controllers.AdminController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	authLimiter gin.HandlerFunc,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	departments := v1.Group("/departments")
	{
		departments.GET("", c.Department.List)
	}

	// Auth routes are rate limited per client IP
	auth := v1.Group("/auth")
	auth.Use(authLimiter)
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", c.Auth.Logout)

		// Role-based landing redirect
		authenticated.GET("/home", c.Auth.Home)

		profile := authenticated.Group("/profile")
		{
			profile.GET("/me", c.Profile.GetMe)
			profile.PUT("/me", c.Profile.UpdateMe)
			profile.POST("/me/photo", c.Profile.UploadPhoto)
			profile.GET("/:id", c.Profile.GetPublic)
		}

		// Student directory is restricted to staff (admins always pass)
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(appauth.RoleStaff))
		{
			students.GET("", c.Profile.ListStudents)
		}

		alumni := authenticated.Group("/alumni")
		{
			alumni.GET("", c.Alumni.List)
			alumni.POST("", c.Alumni.Create)
			alumni.GET("/mine", c.Alumni.GetMine)
			alumni.GET("/:id", c.Alumni.Get)
		}

		memories := authenticated.Group("/memories")
		{
			memories.GET("", c.Memory.List)
			memories.POST("", c.Memory.Create)
			memories.GET("/mine", c.Memory.ListMine)
			memories.GET("/:id", c.Memory.Get)
			memories.DELETE("/:id", c.Memory.Delete)
		}

		funds := authenticated.Group("/funds")
		{
			funds.GET("", c.Fund.List)
			funds.GET("/:id", c.Fund.Get)
			funds.POST("/:id/donate", c.Fund.Donate)
		}
		authenticated.GET("/donations/mine", c.Fund.ListMyDonations)

		events := authenticated.Group("/events")
		{
			events.GET("", c.Event.List)
			events.GET("/:id", c.Event.Get)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", c.Notification.List)
			notifications.POST("/:id/read", c.Notification.MarkRead)
			notifications.POST("/read-all", c.Notification.MarkAllRead)
		}

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/dashboard", c.Admin.Dashboard)

			admin.POST("/departments", c.Department.Create)

			admin.GET("/memories/pending", c.Memory.ListPending)
			admin.POST("/memories/:id/approve", c.Memory.Approve)

			admin.POST("/funds", c.Fund.Create)
			admin.GET("/funds/:id/donations", c.Fund.ListDonations)

			admin.DELETE("/students/:id", c.Profile.DeleteStudent)

			admin.POST("/events", c.Event.Create)
			admin.DELETE("/events/:id", c.Event.Delete)

			admin.POST("/notifications/broadcast", c.Notification.Broadcast)

			admin.POST("/alumni/:id/verify", c.Alumni.Verify)
			admin.POST("/alumni/:id/reject", c.Alumni.Reject)
			admin.POST("/alumni/:id/block", c.Alumni.Block)
			admin.POST("/alumni/:id/unblock", c.Alumni.Unblock)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
