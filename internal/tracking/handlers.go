package tracking

import (
	"errors"
	"strings"

	"backend-runtracker/internal/route"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/start", authMiddleware, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(svc.Start())
	})

	r.Post("/stop", authMiddleware, func(c *fiber.Ctx) error {
		result, err := svc.Stop()
		if errors.Is(err, ErrRunNotActive) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(result)
	})

	r.Post("/samples", authMiddleware, func(c *fiber.Ctx) error {
		var req IngestRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		inputs := req.Samples
		if len(inputs) == 0 {
			inputs = []SampleInput{req.SampleInput}
		}

		samples := make([]route.Sample, 0, len(inputs))
		for _, in := range inputs {
			if err := validate.Struct(in); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
			}
			samples = append(samples, route.Sample{Lat: *in.Lat, Lng: *in.Lng, RecordedAt: in.RecordedAt})
		}
		return c.Status(fiber.StatusAccepted).JSON(svc.Ingest(samples))
	})

	r.Get("/", func(c *fiber.Ctx) error {
		unit, err := unitParam(c, svc)
		if err != nil {
			return err
		}
		return c.JSON(svc.Run(unit))
	})

	r.Get("/samples", func(c *fiber.Ctx) error {
		return c.JSON(svc.Samples())
	})

	r.Get("/summary", func(c *fiber.Ctx) error {
		return c.JSON(svc.Summary())
	})

	r.Get("/distance", func(c *fiber.Ctx) error {
		unit, err := unitParam(c, svc)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"unit":             unit,
			"total_distance_m": svc.Run(unit).TotalDistanceM,
			"display_distance": svc.DisplayDistance(unit),
		})
	})

	r.Get("/share", func(c *fiber.Ctx) error {
		share, err := svc.Share()
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.JSON(share)
	})

	r.Get("/annotations", func(c *fiber.Ctx) error {
		marks := svc.Annotations()
		if marks == nil {
			marks = []route.Annotation{}
		}
		return c.JSON(marks)
	})

	r.Get("/geojson", func(c *fiber.Ctx) error {
		body, err := svc.GeoJSON()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "application/geo+json")
		return c.Send(body)
	})
}

func RegisterLocationRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		loc, ok := svc.LastLocation()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "location not found")
		}
		return c.JSON(loc)
	})
}

func unitParam(c *fiber.Ctx, svc *Service) (route.Unit, error) {
	raw := c.Query("unit")
	if raw == "" {
		return svc.DefaultUnit(), nil
	}
	unit, err := route.ParseUnit(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return unit, nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = formatValidationError(fe)
	}
	return strings.Join(msgs, "; ")
}

func formatValidationError(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be at least " + err.Param()
	case "lte":
		return field + " must be at most " + err.Param()
	default:
		return field + " failed " + err.Tag() + " validation"
	}
}
