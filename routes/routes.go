package routes

import (
	"net/http"
	"time"

	"dochouse/handlers"
	"dochouse/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/doctors")
	{
		api.GET("", hb.Doctors.ListDoctorsHandler)
		api.GET("/:id", hb.Doctors.GetDoctorByIDHandler)
		api.POST("", hb.Doctors.CreateDoctorHandler)
		api.DELETE("/:id", hb.Doctors.DeleteDoctorHandler)
	}
}

// RegisterServiceRoutes registers service-catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/services")
	{
		api.GET("", hb.Services.ListServicesHandler)
		api.PATCH("/:action", hb.Services.UpdateSlotHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/reviews")
	{
		api.GET("", hb.Reviews.ListReviewsHandler)
		api.POST("", middleware.JWTAuthMiddleware(), hb.Reviews.CreateReviewHandler)
	}
}

// RegisterUserRoutes registers user and token endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", handlers.IssueTokenHandler)

	api := r.Group("/users")
	{
		api.POST("", hb.Users.CreateUserHandler)
		api.GET("/admin/:email", middleware.JWTAuthMiddleware(), hb.Users.CheckAdminHandler)

		// Admin-only user management.
		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.Accounts))
		admin.GET("", hb.Users.ListUsersHandler)
		admin.PATCH("/:id", hb.Users.UpdateUserRoleHandler)
		admin.DELETE("/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Appointments.ListAppointmentsHandler)
		api.POST("", hb.Appointments.CreateAppointmentHandler)
		api.DELETE("/:id", hb.Appointments.DeleteAppointmentHandler)
		api.PATCH("/:id", hb.Appointments.AttachPaymentHandler)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payments.CreatePaymentIntentHandler)

	api := r.Group("/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Payments.ListPaymentsHandler)
		api.POST("", hb.Payments.CreatePaymentHandler)
	}
}

// RegisterDashboardRoutes registers the dashboard aggregate endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/dashboard")
	{
		api.GET("/userhome", hb.Dashboard.UserHomeHandler)
		api.GET("/adminhome", middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.Accounts), hb.Dashboard.AdminHomeHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doc House server is up and running")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterDoctorRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
