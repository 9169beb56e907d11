package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	ChangeEventStatus(c *ginext.Context)
	DeleteEvent(c *ginext.Context)

	CreateRegistration(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	ChangeRegistrationStatus(c *ginext.Context)
	UpdateRegistrationPayment(c *ginext.Context)
	CancelRegistration(c *ginext.Context)

	CreateContact(c *ginext.Context)
	ListContacts(c *ginext.Context)
	GetContact(c *ginext.Context)
	UpdateContact(c *ginext.Context)

	CreateGalleryImage(c *ginext.Context)
	ListGalleryImages(c *ginext.Context)
	GetGalleryImage(c *ginext.Context)
	UpdateGalleryImage(c *ginext.Context)
	DeleteGalleryImage(c *ginext.Context)
	LikeGalleryImage(c *ginext.Context)
}

// InitRouter wires three tiers: public routes carry only the optional
// identity, authenticated routes require a valid token, admin routes
// additionally require the admin role.
func InitRouter(mode string, h Handler, optionalAuth, auth, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		public := api.Group("", optionalAuth)
		{
			public.GET("/events", h.ListEvents)
			public.GET("/events/:id", h.GetEvent)

			public.POST("/contacts", h.CreateContact)

			public.GET("/gallery", h.ListGalleryImages)
			public.GET("/gallery/:id", h.GetGalleryImage)
			public.POST("/gallery/:id/like", h.LikeGalleryImage)
		}

		authed := api.Group("", auth)
		{
			authed.POST("/registrations", h.CreateRegistration)
			authed.GET("/registrations", h.ListRegistrations)
			authed.GET("/registrations/:id", h.GetRegistration)
			authed.DELETE("/registrations/:id", h.CancelRegistration)
		}

		adminOnly := api.Group("", auth, admin)
		{
			adminOnly.POST("/events", h.CreateEvent)
			adminOnly.PUT("/events/:id", h.UpdateEvent)
			adminOnly.PATCH("/events/:id/status", h.ChangeEventStatus)
			adminOnly.DELETE("/events/:id", h.DeleteEvent)

			adminOnly.PATCH("/registrations/:id/status", h.ChangeRegistrationStatus)
			adminOnly.PATCH("/registrations/:id/payment", h.UpdateRegistrationPayment)

			adminOnly.GET("/contacts", h.ListContacts)
			adminOnly.GET("/contacts/:id", h.GetContact)
			adminOnly.PATCH("/contacts/:id", h.UpdateContact)

			adminOnly.POST("/gallery", h.CreateGalleryImage)
			adminOnly.PUT("/gallery/:id", h.UpdateGalleryImage)
			adminOnly.DELETE("/gallery/:id", h.DeleteGalleryImage)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
