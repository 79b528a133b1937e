package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"eduquest/internal/domain"
	"eduquest/internal/dto"
	"eduquest/internal/logger"
)

// ValidationErrorResponse carries per-field errors alongside the detail
type ValidationErrorResponse struct {
	Detail string                   `json:"detail"`
	Errors []domain.ValidationError `json:"errors"`
}

// ErrorHandler is the centralized Fiber error handler: every handler
// returns domain errors and this maps them to an HTTP status plus the
// {"detail": ...} body the API promises.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request validation failed",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Detail: "Solicitud inválida",
				Errors: validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			if status >= http.StatusInternalServerError {
				log.Error("Domain error",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", status),
					zap.Error(domainErr.Cause),
				)
			} else {
				log.Warn("Request rejected",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", status),
				)
			}
			return c.Status(status).JSON(dto.ErrorResponse{Detail: domainErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("HTTP error",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			detail := fiberErr.Message
			if fiberErr.Code == http.StatusNotFound {
				detail = "Ruta no encontrada"
			}
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Detail: detail})
		}

		log.Error("Unknown error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Error interno del servidor",
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain error codes to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeQuizNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeExtractionFailed,
		domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case domain.CodeOCRFailed, domain.CodeLLMServiceError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
