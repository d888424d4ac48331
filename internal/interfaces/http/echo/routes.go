package echo

import e "github.com/labstack/echo/v4"

// Handlers groups the route owners. Nil handlers leave their routes unregistered.
type Handlers struct {
	Import   *ImportHandler
	Products *ProductHandler
	Articles *ArticleHandler
	Users    *UserHandler
	Media    *MediaHandler
}

func RegisterRoutes(server *e.Echo, h Handlers) {
	api := server.Group("/api/v1")
	admin := api.Group("/admin")

	if h.Import != nil {
		admin.POST("/products/import", h.Import.ImportProducts)
		admin.GET("/products/import/template", h.Import.DownloadTemplate)
	}
	if h.Products != nil {
		admin.GET("/products", h.Products.ListProducts)
		admin.GET("/products/:id", h.Products.GetProduct)
		admin.POST("/products", h.Products.CreateProduct)
		admin.PUT("/products/:id", h.Products.UpdateProduct)
		admin.DELETE("/products/:id", h.Products.DeleteProduct)
		admin.GET("/categories", h.Products.ListCategories)
		admin.POST("/categories", h.Products.AddCategory)
	}
	if h.Articles != nil {
		admin.GET("/articles", h.Articles.ListArticles)
		admin.GET("/articles/:id", h.Articles.GetArticle)
		admin.POST("/articles", h.Articles.AddArticle)
		admin.PUT("/articles/:id", h.Articles.UpdateArticle)
		admin.DELETE("/articles/:id", h.Articles.DeleteArticle)
	}
	if h.Users != nil {
		api.GET("/account", h.Users.GetAccount)
		api.PUT("/account", h.Users.UpdateAccount)
		admin.GET("/users", h.Users.ListUsers)
		admin.PUT("/users/:id/role", h.Users.UpdateUserRole)
	}
	if h.Media != nil {
		admin.POST("/media", h.Media.UploadImages)
		admin.GET("/media", h.Media.ListMedia)
		admin.PUT("/media/:id", h.Media.UpdateMedia)
		admin.DELETE("/media/:id", h.Media.DeleteMedia)
	}
}
