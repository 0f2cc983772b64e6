package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/merchanthaus/crm-api/internal/application/auth"
	"github.com/merchanthaus/crm-api/internal/application/pipeline"
	"github.com/merchanthaus/crm-api/internal/application/tasks"
	"github.com/merchanthaus/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PipelineModel *pipeline.Model
	PipelinePDF   *pipeline.PDFUseCase
	TaskTracker   *tasks.Tracker
	AccountUC     *usecase.AccountUseCase
	ContactUC     *usecase.ContactUseCase
	DocumentUC    *usecase.DocumentUseCase
	ActivityUC    *usecase.ActivityUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Opportunities / tablero (protegido)
	opps := protected.Group("/opportunities")
	pipelineHandler := NewPipelineHandler(deps.PipelineModel, deps.PipelinePDF)
	relatedHandler := NewOpportunityRelatedHandler(deps.DocumentUC, deps.ActivityUC)
	opps.Get("/", pipelineHandler.List)
	opps.Post("/", pipelineHandler.Create)
	opps.Get("/:id", pipelineHandler.Get)
	opps.Patch("/:id/stage", pipelineHandler.UpdateStage)
	opps.Patch("/:id/assignment", pipelineHandler.UpdateAssignment)
	opps.Get("/:id/pdf", pipelineHandler.PDF)
	opps.Get("/:id/documents", relatedHandler.ListDocuments)
	opps.Post("/:id/documents", relatedHandler.AddDocument)
	opps.Get("/:id/activities", relatedHandler.ListActivities)
	opps.Post("/:id/activities", relatedHandler.AddActivity)

	// Tasks / SLA (protegido)
	taskGroup := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskTracker)
	taskGroup.Get("/", taskHandler.List)
	taskGroup.Post("/", taskHandler.Create)
	taskGroup.Post("/ensure-sla", taskHandler.EnsureSLA)
	taskGroup.Patch("/:id/status", taskHandler.UpdateStatus)
	taskGroup.Get("/opportunity/:id", taskHandler.ForOpportunity)

	// Documents — listado global (protegido)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/", documentHandler.List)

	// Accounts (protegido)
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.GetByID)
	// Cambiar el estado de una cuenta (ej. marcarla dead) es solo para admins.
	accounts.Put("/:id", RequireAdmin(), accountHandler.Update)

	// Contacts (protegido)
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Get("/:id", contactHandler.GetByID)

	// SOP (protegido, contenido estático)
	sopHandler := NewSOPHandler()
	protected.Get("/sop", sopHandler.Get)
}
