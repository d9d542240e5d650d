package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
	log     zerolog.Logger
}

// createRequest is the onboarding submission. motherToung is the key older
// mobile builds still send.
type createRequest struct {
	Email              string  `json:"email"`
	MotherTongue       *string `json:"motherTongue"`
	LegacyMotherTongue *string `json:"motherToung"`
	EnglishLevel       *string `json:"englishLevel"`
	LearningGoal       *string `json:"learningGoal"`
	Interests          *string `json:"interests"`
	Focus              *string `json:"focus"`
	Voice              *string `json:"voice"`
}

func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{service: service, log: log.With().Str("component", "user").Logger()}
}

// RegisterRoutes mounts onboarding at /auth/create and under /api. The
// profile lookup is only served under /api.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/create", h.create)

	api := app.Group("/api")
	api.Post("/auth/create", h.create)
	api.Get("/profile", h.getProfile)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	log := h.log.With().Str("email", payload.Email).Logger()
	log.Info().Msg("signup attempt")

	res, err := h.service.Resolve(c.UserContext(), payload.Email, payload.preferences())
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailRequired):
			log.Warn().Msg("signup rejected: no email provided")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
		case errors.Is(err, ErrEmailExists):
			log.Warn().Msg("signup conflict on email")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		default:
			log.Error().Err(err).Msg("error creating user")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while creating user"})
		}
	}

	if !res.Created {
		log.Info().Str("user_id", res.User.ID).Msg("user already exists")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": res.User})
	}

	log.Info().Str("user_id", res.User.ID).Msg("user created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": res.User})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	user, err := h.service.GetByEmail(c.UserContext(), c.Query("email"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		default:
			h.log.Error().Err(err).Msg("error loading profile")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while loading user"})
		}
	}

	return c.JSON(fiber.Map{"user": user})
}

func (r createRequest) preferences() Preferences {
	motherTongue := r.MotherTongue
	if motherTongue == nil {
		motherTongue = r.LegacyMotherTongue
	}
	return Preferences{
		MotherTongue: motherTongue,
		EnglishLevel: r.EnglishLevel,
		LearningGoal: r.LearningGoal,
		Interests:    r.Interests,
		Focus:        r.Focus,
		Voice:        r.Voice,
	}
}
