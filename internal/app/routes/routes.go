package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Naveen0030/eims-clg-portal/internal/app/controllers"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/middleware"
)

// SetupRouter configures all application routes. The web client addresses
// every endpoint at the root, so there is no version prefix.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Public auth routes ---
	router.POST("/send-otp", authController.SendOTP)
	router.POST("/verify-otp", authController.VerifyOTP)
	router.POST("/send-login-otp", authController.SendLoginOTP)
	router.POST("/verify-login-otp", authController.VerifyLoginOTP)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Any signed-in user
		authenticated.GET("/get-user", userController.GetUser)
		authenticated.GET("/view-user/:id", userController.ViewUser)

		// Admin routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.CategoryRequired(models.CategoryAdmin))
		{
			admin.GET("/all-users", userController.AllUsers)
			admin.POST("/add-user", userController.AddUser)
			admin.GET("/instructors", userController.Instructors)
			admin.POST("/add-course", courseController.AddCourse)
		}

		// Student routes
		student := authenticated.Group("")
		student.Use(authMiddleware.CategoryRequired(models.CategoryStudent))
		{
			student.GET("/available-courses", courseController.AvailableCourses)
			student.POST("/enroll-course", enrollmentController.Enroll)
			student.GET("/enrolled-courses", enrollmentController.EnrolledCourses)
		}

		// Instructor routes. Faculty advisor checks happen in the service
		// layer because the advisor flag is not part of the token claims.
		instructor := authenticated.Group("")
		instructor.Use(authMiddleware.CategoryRequired(models.CategoryInstructor))
		{
			instructor.GET("/FetchCourses", enrollmentController.FetchCourses)
			instructor.GET("/FetchStudents/:courseCode", enrollmentController.FetchStudents)
			instructor.GET("/instructor/pending-enrollments", enrollmentController.PendingEnrollments)
			instructor.POST("/instructor/update-enrollment", enrollmentController.UpdateEnrollment)
			instructor.GET("/getApproved", enrollmentController.GetApproved)
			instructor.POST("/UpdateStatus", enrollmentController.UpdateStatus)
		}
	}
}
