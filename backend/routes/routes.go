package routes

import (
	"coursereview/backend/config"
	"coursereview/backend/controllers"
	"coursereview/backend/middleware"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

const (
	pageForbidden = "You do not have permission to access this page."
	apiForbidden  = "Permission denied"
)

// NewApp builds the Fiber application with the global middleware and every route.
func NewApp(st *stores.Stores, cfg *config.Config, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "course-reviews",
		ErrorHandler: utils.ErrorHandler,
	})

	// Logging sits outermost so recovered panics are logged with their 500.
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.AllowOrigins != "*",
	}))

	SetupRoutes(app, st, cfg, logger)
	return app
}

func SetupRoutes(app *fiber.App, st *stores.Stores, cfg *config.Config, logger zerolog.Logger) {
	app.Use(middleware.LoadUser(cfg, st.Users))

	requireLogin := middleware.AuthMiddleware()
	guestOnly := middleware.RedirectIfAuthenticated("/index")

	// Auth routes
	authController := controllers.NewAuthController(st.Users, cfg, logger)
	app.Get("/login", guestOnly, authController.LoginForm)
	app.Post("/login", guestOnly, authController.Login)
	app.Get("/logout", authController.Logout)
	app.Get("/register", guestOnly, authController.RegisterForm)
	app.Post("/register", guestOnly, authController.Register)

	// Overview routes
	overviewController := controllers.NewOverviewController(st, cfg, logger)
	app.Get("/", overviewController.Index)
	app.Get("/index", overviewController.Index)

	// Courses routes
	coursesController := controllers.NewCoursesController(st, cfg, logger)
	app.Get("/courses", coursesController.ListCourses)
	app.Get("/search", coursesController.Search)
	app.Get("/course/:id", coursesController.CourseDetail)
	app.Get("/select_course_for_review", requireLogin, coursesController.SelectCourseForReview)

	// Review routes
	reviewsController := controllers.NewReviewsController(st, cfg, logger)
	app.Get("/submit_review/:course_id", requireLogin, reviewsController.ReviewForm)
	app.Post("/submit_review/:course_id", requireLogin, reviewsController.SubmitReview)

	// Admin routes
	adminController := controllers.NewAdminController(st, cfg, logger)
	app.Get("/admin", requireLogin, middleware.AdminMiddleware(pageForbidden), adminController.Dashboard)
	app.Post("/add_course", requireLogin, middleware.AdminMiddleware(apiForbidden), adminController.AddCourse)
	app.Post("/change_admin_password", requireLogin, middleware.AdminMiddleware(apiForbidden), adminController.ChangeAdminPassword)
}
