package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Sauhard04/propertyDekho/handlers"
	"github.com/Sauhard04/propertyDekho/middleware"
)

type Controllers struct {
	Users        *handlers.UserController
	Properties   *handlers.PropertyController
	Clients      *handlers.ClientController
	Meetings     *handlers.MeetingController
	Transactions *handlers.TransactionController
	Enquiries    *handlers.EnquiryController
}

func RegisterRoutes(e *echo.Echo, ctrl Controllers) {
	auth := middleware.JWTMiddleware()
	optionalAuth := middleware.OptionalJWTMiddleware()

	api := e.Group("/api")
	api.GET("/test", handlers.HealthCheck)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", ctrl.Users.Register)
	authGroup.POST("/login", ctrl.Users.Login)
	authGroup.GET("/me", ctrl.Users.GetMe, auth)
	authGroup.GET("/logout", ctrl.Users.Logout, auth)

	properties := api.Group("/properties")
	properties.GET("", ctrl.Properties.ListProperties)
	properties.GET("/my-listings", ctrl.Properties.MyListings, auth)
	properties.POST("/assign-ownership", ctrl.Properties.AssignOwnership, auth)
	properties.GET("/:id", ctrl.Properties.GetProperty)
	properties.POST("", ctrl.Properties.CreateProperty, auth)
	properties.PATCH("/:id", ctrl.Properties.UpdateProperty, auth)
	properties.DELETE("/:id", ctrl.Properties.DeleteProperty, auth)

	clients := api.Group("/clients")
	clients.GET("", ctrl.Clients.ListClients)
	clients.GET("/:id", ctrl.Clients.GetClient)
	clients.POST("", ctrl.Clients.CreateClient)
	clients.PATCH("/:id", ctrl.Clients.UpdateClient)
	clients.DELETE("/:id", ctrl.Clients.DeleteClient)

	meetings := api.Group("/meetings")
	meetings.GET("", ctrl.Meetings.ListMeetings)
	meetings.GET("/:id", ctrl.Meetings.GetMeeting)
	meetings.POST("", ctrl.Meetings.CreateMeeting)
	meetings.PATCH("/:id", ctrl.Meetings.UpdateMeeting)
	meetings.DELETE("/:id", ctrl.Meetings.DeleteMeeting)

	api.GET("/transactions", ctrl.Transactions.ListTransactions, auth)

	api.POST("/enquiry/:propertyId", ctrl.Enquiries.HandleEnquiry, optionalAuth)
}
