package bootstrap

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	accountapp "github.com/mohammadpnp/creations-admin/internal/application/account"
	catalogapp "github.com/mohammadpnp/creations-admin/internal/application/catalog"
	contentapp "github.com/mohammadpnp/creations-admin/internal/application/content"
	mediaapp "github.com/mohammadpnp/creations-admin/internal/application/media"
	"github.com/mohammadpnp/creations-admin/internal/config"
	"github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/domain/media"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/auth"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/creations-admin/internal/interfaces/http/echo"
	"github.com/mohammadpnp/creations-admin/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the connections opened by the caller and shared by every use case.
type Dependencies struct {
	DB          *gorm.DB
	Pool        *pgxpool.Pool
	Revalidator catalog.Revalidator
	Objects     media.ObjectStore
	Logger      *zap.Logger
}

// NewProductImporter builds the CSV import pipeline on top of the COPY-based writer.
func NewProductImporter(cfg *config.Config, pool *pgxpool.Pool, revalidator catalog.Revalidator, logger *zap.Logger) catalogapp.ImportProductsFromCSV {
	return catalogapp.NewImportProductsFromCSV(
		repository.NewProductBulkRepository(pool),
		revalidator,
		logger.Named("import"),
		catalogapp.ImportProductsConfig{Timeout: cfg.ImportTimeout},
	)
}

func NewHTTPServer(cfg *config.Config, deps Dependencies) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	logger := deps.Logger

	productRepo := repository.NewProductRepository(deps.DB)
	categoryRepo := repository.NewCategoryRepository(deps.DB)
	articleRepo := repository.NewArticleRepository(deps.DB)
	profileRepo := repository.NewProfileRepository(deps.DB)
	mediaRepo := repository.NewMediaRepository(deps.DB)

	getProfile := accountapp.NewGetProfile(profileRepo)

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(cfg.HTTPBodyLimit))
	server.Use(logging.RequestLogger(logger))
	server.Use(httpecho.Authenticate(auth.NewJWTVerifier(cfg.JWTSecret, auth.DefaultAudience), getProfile, logger))

	handlers := httpecho.Handlers{
		Import: httpecho.NewImportHandler(
			NewProductImporter(cfg, deps.Pool, deps.Revalidator, logger),
			cfg.ImportMaxFileBytes,
		),
		Products: httpecho.NewProductHandler(httpecho.ProductUseCases{
			Create:         catalogapp.NewCreateProduct(productRepo, deps.Revalidator, logger),
			Update:         catalogapp.NewUpdateProduct(productRepo, deps.Revalidator, logger),
			Delete:         catalogapp.NewDeleteProduct(productRepo, deps.Revalidator, logger),
			AddCategory:    catalogapp.NewAddCategory(categoryRepo, deps.Revalidator, logger),
			List:           catalogapp.NewListProducts(productRepo),
			Get:            catalogapp.NewGetProduct(productRepo),
			ListCategories: catalogapp.NewListCategories(categoryRepo),
		}),
		Articles: httpecho.NewArticleHandler(httpecho.ArticleUseCases{
			Add:    contentapp.NewAddArticle(articleRepo, deps.Revalidator, logger),
			Update: contentapp.NewUpdateArticle(articleRepo, deps.Revalidator, logger),
			Delete: contentapp.NewDeleteArticle(articleRepo, deps.Revalidator, logger),
			List:   contentapp.NewListArticles(articleRepo),
			Get:    contentapp.NewGetArticle(articleRepo),
		}),
		Users: httpecho.NewUserHandler(
			getProfile,
			accountapp.NewUpdateProfile(profileRepo, deps.Revalidator, logger),
			accountapp.NewUpdateUserRole(profileRepo, deps.Revalidator, logger),
			accountapp.NewListProfiles(profileRepo),
		),
		Media: httpecho.NewMediaHandler(
			mediaapp.NewUploadImages(mediaRepo, deps.Objects, deps.Revalidator, logger),
			mediaapp.NewListMediaItems(mediaRepo, deps.Objects),
			mediaapp.NewUpdateMediaMetadata(mediaRepo, deps.Objects, deps.Revalidator, logger),
			mediaapp.NewDeleteMediaItem(mediaRepo, deps.Objects, deps.Revalidator, logger),
		),
	}
	httpecho.RegisterRoutes(server, handlers)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return server
}
