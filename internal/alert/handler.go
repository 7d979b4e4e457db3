package alert

import (
	"errors"
	"log/slog"
	"net/http"

	"emergency-alert/internal/provider"
	"emergency-alert/pkg/tracing"

	"github.com/labstack/echo/v4"
)

const SuccessMessage = "Emergency alert sent successfully!"

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SID     string `json:"sid,omitempty"`
}

type Handler struct {
	sender *Sender
	logger *slog.Logger
}

func NewHandler(sender *Sender, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{sender: sender, logger: logger}
}

func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/send-emergency-alert", h.SendEmergencyAlert)
}

// SendEmergencyAlert godoc
// @Summary      Send the emergency alert SMS
// @Description  Sends the fixed alert message to the configured recipient. The request body is ignored.
// @Tags         alert
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  Response
// @Router       /send-emergency-alert [post]
func (h *Handler) SendEmergencyAlert(c echo.Context) error {
	ctx := tracing.WithRequestID(c.Request().Context(), c.Response().Header().Get(echo.HeaderXRequestID))

	receipt, err := h.sender.SendAlert(ctx)
	if err != nil {
		kind := provider.KindProvider
		var se *provider.SendError
		if errors.As(err, &se) {
			kind = se.Kind
		}
		h.logger.Error("error sending message", "kind", kind, "err", err)
		return c.JSON(http.StatusInternalServerError, Response{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, Response{Success: true, Message: SuccessMessage, SID: receipt.SID})
}
