package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robocupido/robocupido-backend/internal/delivery/http/middleware"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/usecase/registration"
)

const maxFormSize = 1 << 20 // 1 MB

type RegistrationHandler struct {
	registrationUseCase *registration.UseCase
}

func NewRegistrationHandler(registrationUseCase *registration.UseCase) *RegistrationHandler {
	return &RegistrationHandler{registrationUseCase: registrationUseCase}
}

// Register handles POST /register. The questionnaire arrives as a flat
// multi-value form payload and is decoded once into a typed submission.
func (h *RegistrationHandler) Register(c *gin.Context) {
	email := c.GetString(middleware.ContextUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, SubmissionResponse{
			Success: false,
			Message: "No autorizado",
		})
		return
	}

	// ParseMultipartForm also handles urlencoded bodies via ParseForm.
	if err := c.Request.ParseMultipartForm(maxFormSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, SubmissionResponse{
			Success: false,
			Message: "Formulario inválido",
		})
		return
	}

	form := registration.DecodeForm(c.Request.PostForm)

	_, err := h.registrationUseCase.Submit(c.Request.Context(), email, form)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SubmissionResponse{
		Success: true,
		Message: "¡Registro exitoso! Te contactaremos con tu match el 14 de febrero.",
	})
}

func (h *RegistrationHandler) writeSubmitError(c *gin.Context, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, SubmissionResponse{
			Success: false,
			Message: fmt.Sprintf("Campo inválido: %s (%s)", ve.Field, ve.Reason),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrProfileAlreadyExists):
		c.JSON(http.StatusConflict, SubmissionResponse{
			Success: false,
			Message: "Ya has enviado tu registro anteriormente.",
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, SubmissionResponse{
			Success: false,
			Message: "No autorizado",
		})
	default:
		c.JSON(http.StatusInternalServerError, SubmissionResponse{
			Success: false,
			Message: "Error interno. Por favor intenta de nuevo.",
		})
	}
}

// CheckSubmission handles GET /profile/check?email=
func (h *RegistrationHandler) CheckSubmission(c *gin.Context) {
	if c.GetString(middleware.ContextUserEmail) == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No autorizado"})
		return
	}

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email es requerido"})
		return
	}

	hasSubmitted, err := h.registrationUseCase.HasSubmitted(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hasSubmitted": hasSubmitted})
}
