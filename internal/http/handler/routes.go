package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/http/middleware"
	"erpapi/internal/model"
	"erpapi/internal/service"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Auth          service.AuthService
	Users         service.UserService
	Accounts      service.AccountService
	Activities    service.ActivityService
	Inquiries     service.InquiryService
	Notifications service.NotificationService
	Tutorials     service.TutorialService
	Emails        service.EmailService
	Assets        service.AssetService
	Products      service.ProductService
}

// Dependencies is everything RegisterRoutes needs besides the services.
type Dependencies struct {
	Services Services
	Tokens   middleware.TokenValidator
	// Stores are pinged by /health.
	Stores []Pinger
	// Limiter guards login and the public inquiry form. Nil disables limiting.
	Limiter *middleware.RateLimiter
}

func roles(rs ...model.Role) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Static
// segments are registered before their :id siblings.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	s := d.Services

	app.Get("/health", HealthCheck(d.Stores...))
	app.Get("/healthz", LivenessProbe())

	limited := func(c *fiber.Ctx) error { return c.Next() }
	if d.Limiter != nil {
		limited = d.Limiter.Handler()
	}

	app.Post("/auth/login", limited, Login(s.Auth))
	app.Post("/public/inquiries", limited, CreatePublicInquiry(s.Inquiries))

	auth := middleware.RequireAuth(d.Tokens)
	app.Get("/auth/me", auth, Me(s.Auth))

	// User management, transfers, exports and outgoing mail re-check the
	// caller's account status on every request.
	active := func(c *fiber.Ctx) error { return c.Next() }
	if s.Auth != nil {
		active = middleware.RequireActive(s.Auth)
	}

	admin := middleware.RequireRole(roles(model.RoleAdmin)...)
	users := app.Group("/users", auth)
	users.Get("/", ListUsers(s.Users))
	users.Post("/", admin, active, CreateUser(s.Users))
	users.Get("/:id", GetUser(s.Users))
	users.Put("/:id", admin, active, UpdateUser(s.Users))
	users.Delete("/:id", admin, active, DeactivateUser(s.Users))

	accounts := app.Group("/accounts", auth)
	accounts.Get("/", ListAccounts(s.Accounts))
	accounts.Post("/", CreateAccount(s.Accounts))
	accounts.Get("/export", active, ExportAccounts(s.Accounts))
	accounts.Post("/transfer",
		middleware.RequireRole(roles(model.RoleAdmin, model.RoleManager, model.RoleTSM)...),
		active,
		TransferAccounts(s.Accounts))
	accounts.Get("/:id", GetAccount(s.Accounts))
	accounts.Put("/:id", UpdateAccount(s.Accounts))
	accounts.Delete("/:id", DeleteAccount(s.Accounts))

	activities := app.Group("/activities", auth)
	activities.Get("/", ListActivities(s.Activities))
	activities.Post("/", CreateActivity(s.Activities))
	activities.Get("/summary", ActivitySummary(s.Activities))
	activities.Get("/:id", GetActivity(s.Activities))
	activities.Put("/:id", UpdateActivity(s.Activities))
	activities.Delete("/:id", DeleteActivity(s.Activities))
	activities.Get("/:id/progress", ListProgress(s.Activities))
	activities.Post("/:id/progress", AddProgress(s.Activities))

	inquiries := app.Group("/inquiries", auth)
	inquiries.Get("/", ListInquiries(s.Inquiries))
	inquiries.Post("/", CreateInquiry(s.Inquiries))
	inquiries.Get("/:id", GetInquiry(s.Inquiries))
	inquiries.Put("/:id", UpdateInquiry(s.Inquiries))
	inquiries.Delete("/:id", DeleteInquiry(s.Inquiries))

	notifications := app.Group("/notifications", auth)
	notifications.Get("/", ListNotifications(s.Notifications))
	notifications.Put("/read-all", MarkAllNotificationsRead(s.Notifications))
	notifications.Put("/:id/read", MarkNotificationRead(s.Notifications))
	notifications.Delete("/:id", DeleteNotification(s.Notifications))

	tutorials := app.Group("/tutorials", auth)
	tutorials.Get("/", ListTutorials(s.Tutorials))
	tutorials.Post("/", CreateTutorial(s.Tutorials))
	tutorials.Get("/:id", GetTutorial(s.Tutorials))
	tutorials.Put("/:id", UpdateTutorial(s.Tutorials))
	tutorials.Delete("/:id", DeleteTutorial(s.Tutorials))

	emails := app.Group("/emails", auth)
	emails.Get("/", ListSentEmails(s.Emails))
	emails.Post("/", active, SendEmail(s.Emails))
	emails.Get("/inbox", Inbox(s.Emails))

	assets := app.Group("/assets", auth)
	assets.Get("/", ListAssets(s.Assets))
	assets.Post("/", CreateAsset(s.Assets))
	assets.Get("/:id", GetAsset(s.Assets))
	assets.Put("/:id", UpdateAsset(s.Assets))
	assets.Delete("/:id", DeleteAsset(s.Assets))
	assets.Post("/:id/image", UploadAssetImage(s.Assets))
	assets.Get("/:id/image", AssetImage(s.Assets))

	products := app.Group("/products", auth)
	products.Get("/", ListProducts(s.Products))
	products.Post("/", CreateProduct(s.Products))
	products.Get("/low-stock", LowStock(s.Products))
	products.Get("/export", active, ExportProducts(s.Products))
	products.Get("/:id", GetProduct(s.Products))
	products.Put("/:id", UpdateProduct(s.Products))
	products.Delete("/:id", DeleteProduct(s.Products))
	products.Post("/:id/stock", AdjustStock(s.Products))
	products.Post("/:id/image", UploadProductImage(s.Products))
	products.Get("/:id/image", ProductImage(s.Products))
}
