package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/domain"
	"github.com/jhoicas/gallery-api/pkg/logger"
	"github.com/jhoicas/gallery-api/pkg/token"
)

// Grupos reconocidos en el claim de pertenencia del token.
const (
	GroupAdmin = "Admin"
	GroupUsers = "Users"
)

// corsHeaders set fijo que se mezcla en TODAS las respuestas, éxito o error.
var corsHeaders = map[string]string{
	fiber.HeaderContentType:        "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token,X-Requested-With",
	"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
}

// Endpoint configuración declarativa de un endpoint. Cada handler es una
// instancia de esta forma ejecutada por el pipeline compartido, en orden
// estricto: preflight → autenticación → autorización → parseo/validación →
// precondición → ejecución → armado de respuesta.
type Endpoint[T any] struct {
	// Name identifica el endpoint en los logs.
	Name string

	// RequiresAuth exige un bearer token verificable en Authorization.
	RequiresAuth bool
	// RequiredGroups grupos que autorizan la llamada (basta pertenecer a uno).
	// Vacío = cualquier llamador autenticado. Solo aplica con RequiresAuth.
	RequiredGroups []string
	// DeniedMessage cuerpo del 403 de autorización.
	DeniedMessage string

	// Parse extrae y valida el modelo de entrada desde la petición.
	Parse func(c *fiber.Ctx) (T, error)
	// Precondition lectura previa opcional (ej. plantilla referenciada existe).
	// Corre siempre antes de cualquier escritura.
	Precondition func(ctx context.Context, in T) error
	// Execute operación principal contra los stores.
	Execute func(ctx context.Context, in T, caller *token.ClaimSet) (any, error)
	// SuccessStatus código de éxito en función de la entrada (nil = 200).
	SuccessStatus func(in T) int
}

// Pipeline dependencias compartidas por todos los endpoints.
type Pipeline struct {
	verifier token.Verifier
	log      *logger.Logger
}

// NewPipeline construye el pipeline compartido.
func NewPipeline(verifier token.Verifier, log *logger.Logger) *Pipeline {
	return &Pipeline{verifier: verifier, log: log}
}

// Handle produce el fiber.Handler que ejecuta la configuración dada.
func Handle[T any](p *Pipeline, ep Endpoint[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Preflight: responde sin tocar autenticación; las peticiones
		// OPTIONS del navegador nunca llevan credenciales.
		if c.Method() == fiber.MethodOptions {
			setCORS(c)
			return c.Status(fiber.StatusOK).SendString("")
		}

		// 2-3. Autenticación y autorización.
		var caller *token.ClaimSet
		if ep.RequiresAuth {
			claims, err := p.authenticate(c)
			if err != nil {
				p.log.Warn().Err(err).Str("endpoint", ep.Name).Msg("autenticación rechazada")
				return respondError(c, fiber.StatusForbidden, err.Error())
			}
			if len(ep.RequiredGroups) > 0 && !claims.HasAnyGroup(ep.RequiredGroups...) {
				p.log.Warn().Str("endpoint", ep.Name).Str("subject", claims.Subject).Msg("autorización rechazada")
				msg := ep.DeniedMessage
				if msg == "" {
					msg = "Access denied."
				}
				return respondError(c, fiber.StatusForbidden, msg)
			}
			caller = claims
		}

		// 4. Parseo y validación de la entrada.
		in, err := ep.Parse(c)
		if err != nil {
			p.log.Warn().Err(err).Str("endpoint", ep.Name).Msg("entrada inválida")
			return respondError(c, statusFor(err), err.Error())
		}

		// 5. Precondición (lectura previa a cualquier escritura).
		if ep.Precondition != nil {
			if err := ep.Precondition(c.Context(), in); err != nil {
				p.log.Warn().Err(err).Str("endpoint", ep.Name).Msg("precondición fallida")
				return respondError(c, statusFor(err), err.Error())
			}
		}

		// 6. Ejecución. Sin reintentos: un fallo del store se devuelve tal cual
		// y el cliente reintenta la petición completa si quiere.
		out, err := ep.Execute(c.Context(), in, caller)
		if err != nil {
			p.log.Error().Err(err).Str("endpoint", ep.Name).Msg("fallo del handler")
			return respondError(c, statusFor(err), err.Error())
		}

		// 7. Armado de respuesta.
		status := fiber.StatusOK
		if ep.SuccessStatus != nil {
			status = ep.SuccessStatus(in)
		}
		setCORS(c)
		return c.Status(status).JSON(out)
	}
}

// authenticate extrae el bearer token de Authorization y lo verifica.
// Cabecera ausente o malformada falla aquí, igual que cualquier fallo de
// verificación (expirado, firma incorrecta, audiencia equivocada).
func (p *Pipeline) authenticate(c *fiber.Ctx) (*token.ClaimSet, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.Fields(authHeader)
	if len(parts) != 2 {
		return nil, errors.New("Missing or malformed Authorization header")
	}
	return p.verifier.Verify(parts[1])
}

// statusFor mapea un error a su código de estado: errores con código propio lo
// imponen; no-encontrado -> 404; auth -> 403; el resto -> 500.
func statusFor(err error) int {
	var se *domain.StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func setCORS(c *fiber.Ctx) {
	for k, v := range corsHeaders {
		c.Set(k, v)
	}
}

func respondError(c *fiber.Ctx, status int, message string) error {
	setCORS(c)
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// ErrorHandler manejador de errores de Fiber (pánico recuperado, ruta inexistente):
// responde la misma envoltura {"error": ...} con los headers CORS, sin filtrar
// detalles internos más allá del mensaje del error capturado.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return respondError(c, status, err.Error())
}
