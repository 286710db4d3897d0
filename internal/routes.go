package internal

import (
	"net/http"
	"portfolio/internal/auth"
	"portfolio/internal/controllers"
	"portfolio/internal/providers"
	"portfolio/internal/structures"
)

func InitRoutes(
	content *controllers.ContentController,
	admin *controllers.AdminController,
	authController *controllers.AuthController,
	navigation *controllers.NavigationController,
	guard auth.GuardInterface,
	cookies providers.SessionCookieProviderInterface,
	conf *structures.Config,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/personal-info", http.HandlerFunc(content.GetPersonalInfo))
	routers.Get("/api/site-config", http.HandlerFunc(content.GetSiteConfig))
	routers.Get("/api/projects", http.HandlerFunc(content.GetProjects))
	routers.Get("/api/projects/{id}", http.HandlerFunc(content.GetProject))
	routers.Get("/api/blog-posts", http.HandlerFunc(content.GetBlogPosts))
	routers.Get("/api/blog-posts/{id}", http.HandlerFunc(content.GetBlogPost))
	routers.Post("/api/blog-posts/{id}/view", http.HandlerFunc(content.ViewBlogPost))
	routers.Post("/api/blog-posts/{id}/like", http.HandlerFunc(content.LikeBlogPost))
	routers.Post("/api/analytics/page-view", http.HandlerFunc(content.TrackPageView))
	routers.Post("/api/analytics/visitor", http.HandlerFunc(content.TrackVisitor))

	routers.Get("/api/navigation", http.HandlerFunc(navigation.GetRoutes))
	routers.Get("/api/navigation/match", http.HandlerFunc(navigation.Match))
	routers.Get("/api/guard", http.HandlerFunc(authController.Guard))

	routers.Post("/api/auth/login", http.HandlerFunc(authController.Login))
	routers.Post("/api/auth/logout", http.HandlerFunc(authController.Logout))
	routers.Get("/api/auth/status", http.HandlerFunc(authController.Status))

	protect := func(h http.HandlerFunc) http.Handler {
		return auth.Protect(guard, cookies, conf.Auth.LoginPath, h)
	}

	routers.Post("/api/admin/projects", protect(admin.CreateProject))
	routers.Patch("/api/admin/projects/{id}", protect(admin.UpdateProject))
	routers.Delete("/api/admin/projects/{id}", protect(admin.DeleteProject))
	routers.Post("/api/admin/blog-posts", protect(admin.CreateBlogPost))
	routers.Patch("/api/admin/blog-posts/{id}", protect(admin.UpdateBlogPost))
	routers.Delete("/api/admin/blog-posts/{id}", protect(admin.DeleteBlogPost))
	routers.Patch("/api/admin/personal-info", protect(admin.UpdatePersonalInfo))
	routers.Patch("/api/admin/site-config", protect(admin.UpdateSiteConfig))
	routers.Get("/api/admin/analytics", protect(admin.GetAnalytics))
	routers.Post("/api/admin/analytics/reset", protect(admin.ResetAnalytics))
	routers.Get("/api/admin/export", protect(admin.Export))
	routers.Post("/api/admin/import", protect(admin.Import))
	routers.Post("/api/admin/reset", protect(admin.ResetAll))
	routers.Get("/api/admin/storage", protect(admin.StorageInfo))
	routers.Get("/api/admin/preferences/{key}", protect(admin.GetPreference))
	routers.Put("/api/admin/preferences/{key}", protect(admin.PutPreference))
	return routers
}
