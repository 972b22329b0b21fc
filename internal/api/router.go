package api

import (
	"blood_donation/internal/domain"     // Status values
	"blood_donation/internal/middleware" // Auth and logging middleware

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // Request decoding
)

// NewRouter builds the engine with every route of the service. Extra middleware runs
// after request id, logging and recovery, before any route.
func NewRouter(d Deps, extra ...gin.HandlerFunc) *gin.Engine {
	binding.EnableDecoderDisallowUnknownFields = true // Reject fields outside the allow-lists

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	r.Use(extra...)
	Register(r, d)
	return r
}

// Register attaches the routes to r
func Register(r gin.IRouter, d Deps) {
	verify := middleware.VerifyToken(d.JWTSecret) // Token Verifier
	admin := middleware.VerifyAdmin(d.Users)      // Role Gate, after verify
	self := middleware.SelfOnly("email")          // Path email must match the token

	r.GET("/", RootHandler())
	r.GET("/healthz", HealthHandler(d.DB))

	// Auth
	r.POST("/jwt", IssueTokenHandler(d.JWTSecret))

	// Users
	r.POST("/users", CreateUserHandler(d.Users, d.Redis))
	r.GET("/users", ListUsersHandler(d.Users))
	r.GET("/user", GetUserByEmailHandler(d.Users))
	r.GET("/user/:id", GetUserHandler(d.Users))
	r.PATCH("/user/:id", PatchUserHandler(d.Users, d.Redis))
	r.GET("/users/usersState", StatsHandler(d.Stats, d.Redis, d.CacheTTL))

	// Admin user management
	r.GET("/allUsers", verify, admin, ListUsersPageHandler(d.Users))
	r.PATCH("/users/admin/:id", verify, admin, MakeAdminHandler(d.Users))
	r.PATCH("/users/admin/status/active/:id", verify, admin, SetUserStatusHandler(d.Users, domain.StatusActive))
	r.PATCH("/users/admin/status/block/:id", verify, admin, SetUserStatusHandler(d.Users, domain.StatusBlock))
	r.GET("/users/admin/:email", verify, self, CheckAdminHandler(d.Users))

	// Blogs
	r.GET("/users/blogPublic", PublicBlogsHandler(d.Blogs, d.Redis, d.CacheTTL))
	r.POST("/users/add-blog", verify, admin, CreateBlogHandler(d.Blogs))
	r.GET("/users/add-blog", verify, admin, ListBlogsHandler(d.Blogs))
	r.GET("/users/add-blog/:id", GetBlogHandler(d.Blogs))
	r.PATCH("/users/add-blog/:id", verify, admin, PatchBlogHandler(d.Blogs, d.Redis))
	r.PATCH("/users/add-blog/publish/:id", verify, admin, SetBlogStatusHandler(d.Blogs, d.Redis, domain.BlogPublished))
	r.PATCH("/users/add-blog/unpublish/:id", verify, admin, SetBlogStatusHandler(d.Blogs, d.Redis, domain.BlogUnpublished))
	r.DELETE("/users/add-blog/:id", verify, admin, DeleteBlogHandler(d.Blogs, d.Redis))

	// Donations
	r.POST("/donations", verify, CreateDonationHandler(d.Donations, d.Redis))
	r.GET("/donations", ListDonationsHandler(d.Donations, false))
	r.GET("/donations/count", CountDonationsHandler(d.Donations))
	r.GET("/donations/user/:email", verify, self, ListDonationsHandler(d.Donations, true))
	r.GET("/donations/:id", verify, GetDonationHandler(d.Donations))
	r.PATCH("/donations/:id", verify, PatchDonationHandler(d.Donations, d.Redis))
	r.PATCH("/donations/status/:status/:id", verify, SetDonationStatusHandler(d.Donations))
	r.DELETE("/donations/:id", verify, DeleteDonationHandler(d.Donations, d.Redis))
	r.GET("/admin/donations", verify, admin, ListDonationsHandler(d.Donations, false))

	// Payments
	r.POST("/create-payment-intent", CreatePaymentIntentHandler(d.Intents))
	r.POST("/amounts", verify, StageAmountHandler(d.Payments))
	r.GET("/amounts/:email", verify, self, ListPendingHandler(d.Payments))
	r.POST("/payments", verify, RecordPaymentHandler(d.Payments, d.Redis))
	r.GET("/payments/:email", verify, self, ListPaymentsHandler(d.Payments))
}
