package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gallery-api/internal/application/usecase"
	"github.com/jhoicas/gallery-api/pkg/config"
	"github.com/jhoicas/gallery-api/pkg/logger"
	"github.com/jhoicas/gallery-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	TemplateUC *usecase.TemplateUseCase
	MediaUC    *usecase.MediaUseCase
	Verifier   token.Verifier
	Endpoints  config.EndpointsConfig
	Log        *logger.Logger
}

// Router registra las rutas de la API. Cada ruta registra además su OPTIONS
// apuntando al mismo handler: el pipeline corta el preflight antes de cualquier
// autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	p := NewPipeline(deps.Verifier, deps.Log)
	api := app.Group("/api")

	// Categories: creación solo Admin, listado público
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(p, deps.CategoryUC)
	createCategory := categoryHandler.Create()
	categories.Post("/", createCategory)
	categories.Get("/", categoryHandler.List())
	categories.Options("/", createCategory)

	// Templates: upsert solo Admin, listado autenticado, detalle público
	templates := api.Group("/templates")
	templateHandler := NewTemplateHandler(p, deps.TemplateUC)
	upsertTemplate := templateHandler.Upsert()
	getTemplate := templateHandler.GetByID()
	templates.Post("/", upsertTemplate)
	templates.Get("/", templateHandler.List())
	templates.Options("/", upsertTemplate)
	templates.Get("/:templateId", getTemplate)
	templates.Options("/:templateId", getTemplate)

	// Media: auth según flags del despliegue
	media := api.Group("/media")
	mediaHandler := NewMediaHandler(p, deps.MediaUC)
	uploadMedia := mediaHandler.Upload(deps.Endpoints.UploadRequiresAuth)
	getMedia := mediaHandler.GetByCategory(deps.Endpoints.MediaReadRequiresAuth)
	media.Post("/", uploadMedia)
	media.Options("/", uploadMedia)
	media.Get("/:categoryId", getMedia)
	media.Options("/:categoryId", getMedia)
}
