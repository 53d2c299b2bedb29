// Package routes wires controllers onto the gin router.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/controllers"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	condominiumController *controllers.CondominiumController,
	membershipController *controllers.MembershipController,
	reservationController *controllers.ReservationController,
	noticeController *controllers.NoticeController,
	assemblyController *controllers.AssemblyController,
	eventController *controllers.EventController,
	galleryController *controllers.GalleryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users/me")
		{
			users.GET("", userController.GetProfile)
			users.PUT("", userController.UpdateProfile)
			users.GET("/memberships", membershipController.GetMine)
		}

		condominiums := authenticated.Group("/condominiums")
		{
			condominiums.GET("", condominiumController.GetAll)
			condominiums.GET("/:id", condominiumController.GetByID)
			condominiums.GET("/:id/common-areas", condominiumController.GetCommonAreas)

			condominiums.POST("/:id/memberships", membershipController.RequestJoin)
			condominiums.GET("/:id/memberships/pending", membershipController.GetPending)

			condominiums.GET("/:id/reservations", reservationController.GetByCondominium)
			condominiums.GET("/:id/notices", noticeController.GetByCondominium)
			condominiums.GET("/:id/assemblies", assemblyController.GetByCondominium)
			condominiums.GET("/:id/events", eventController.GetByCondominium)
			condominiums.GET("/:id/galleries", galleryController.GetByCondominium)

			// Administrator-only routes. Service-level checks also verify
			// the admin belongs to the condominium.
			condominiumsAdmin := condominiums.Group("")
			condominiumsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
			{
				condominiumsAdmin.POST("", condominiumController.Create)
				condominiumsAdmin.POST("/:id/notices", noticeController.Create)
				condominiumsAdmin.POST("/:id/assemblies", assemblyController.Create)
				condominiumsAdmin.POST("/:id/events", eventController.Create)
				condominiumsAdmin.POST("/:id/galleries", galleryController.CreateGallery)
			}
		}

		memberships := authenticated.Group("/memberships")
		memberships.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
		{
			memberships.PUT("/:id/status", membershipController.UpdateStatus)
		}

		reservations := authenticated.Group("/reservations")
		{
			reservations.POST("", reservationController.Create)

			reservationsAdmin := reservations.Group("")
			reservationsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
			{
				reservationsAdmin.PUT("/:id/status", reservationController.UpdateStatus)
			}
		}

		commonAreas := authenticated.Group("/common-areas")
		{
			commonAreas.GET("/:id/availability", reservationController.GetAvailability)
		}

		assemblies := authenticated.Group("/assemblies")
		{
			assemblies.POST("/:id/attendance", assemblyController.ConfirmAttendance)
			assemblies.GET("/:id/attendance", assemblyController.GetAttendance)
		}

		galleries := authenticated.Group("/galleries")
		{
			galleries.POST("/:id/photos", galleryController.UploadPhoto)
			galleries.GET("/:id/photos", galleryController.GetPhotos)
		}

		photos := authenticated.Group("/photos")
		photos.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
		{
			photos.PUT("/:id/status", galleryController.ModeratePhoto)
		}
	}
}
