package handlers

import (
	"errors"
	"net/http"

	"readycleans/models"
	"readycleans/services/booking"
	"readycleans/services/payment"
	"readycleans/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StepErrorBody is the JSON form of a *booking.StepError.
type StepErrorBody struct {
	Step    string `json:"step"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func stepErrorBody(err error) *StepErrorBody {
	var se *booking.StepError
	if errors.As(err, &se) {
		return &StepErrorBody{Step: se.Step.String(), Field: se.Field, Message: se.Message}
	}
	return &StepErrorBody{Message: err.Error()}
}

func NewRatesHandler(rates booking.RateTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rates.PriceList())
	}
}

func NewServiceAreaHandler(area *booking.ServiceArea) gin.HandlerFunc {
	return func(c *gin.Context) {
		zip := c.Param("zip")
		c.JSON(http.StatusOK, gin.H{
			"zip":         zip,
			"serviceable": area.IsServiceable(zip),
		})
	}
}

type QuoteRequest struct {
	ServiceType models.ServiceType `json:"serviceType"`
	UnitSize    models.UnitSize    `json:"unitSize"`
	AddOns      []models.AddOn     `json:"addOns"`
}

// NewQuoteHandler prices a selection without running the wizard. The
// service, size and add-on checks are the same ones the wizard applies.
func NewQuoteHandler(area *booking.ServiceArea, rates booking.RateTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		sel := models.DefaultBookingSelection()
		sel.ServiceType = req.ServiceType
		sel.UnitSize = req.UnitSize
		sel.AddOns = models.NewAddOnSet(req.AddOns...)

		for _, step := range []booking.Step{booking.StepServiceSelect, booking.StepSizeSelect, booking.StepAddOnSelect} {
			if err := booking.ValidateStep(step, sel, area, rates); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid selection", "error": stepErrorBody(err)})
				return
			}
		}
		c.JSON(http.StatusOK, booking.Project(sel, rates))
	}
}

// FlowRequest carries the client's wizard snapshot and the action to apply.
// Selection may be omitted to start from the defaults.
type FlowRequest struct {
	Step        int                      `json:"step"`
	Selection   *models.BookingSelection `json:"selection"`
	Action      string                   `json:"action" binding:"required"`
	Patch       models.BookingPatch      `json:"patch"`
	Target      *int                     `json:"target"`
	ServiceType models.ServiceType       `json:"serviceType"`
}

type FlowResponse struct {
	Step      int                     `json:"step"`
	StepName  string                  `json:"stepName"`
	Selection models.BookingSelection `json:"selection"`
	Summary   booking.Summary         `json:"summary"`
	Error     *StepErrorBody          `json:"error,omitempty"`
}

func flowResponse(f *booking.Flow) FlowResponse {
	snap := f.Snapshot()
	return FlowResponse{
		Step:      snap.Step,
		StepName:  f.Step().String(),
		Selection: snap.Selection,
		Summary:   f.Summary(),
	}
}

// NewFlowHandler runs one wizard transition. Nothing is kept between
// requests: the client sends back the snapshot it was last given. The client
// posts "complete" once payment succeeds to get a fresh wizard back.
func NewFlowHandler(area *booking.ServiceArea, rates booking.RateTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req FlowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		flow := booking.NewFlow(area, rates)
		if req.Selection != nil {
			flow.Restore(booking.Snapshot{Step: req.Step, Selection: *req.Selection})
		} else {
			flow.Jump(req.Step)
		}

		var stepErr error
		switch req.Action {
		case "update":
			flow.Update(req.Patch)
		case "advance":
			flow.Update(req.Patch)
			stepErr = flow.TryAdvance()
		case "back":
			flow.Back()
		case "jump":
			if req.Target == nil {
				utils.JSONError(c, http.StatusBadRequest, "Invalid request", "target is required for jump")
				return
			}
			flow.Jump(*req.Target)
		case "deeplink":
			if !req.ServiceType.Valid() {
				utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown service type")
				return
			}
			target := int(booking.StepSizeSelect)
			if req.Target != nil {
				target = *req.Target
			}
			flow.Deeplink(req.ServiceType, target)
		case "reset":
			flow.Reset()
		case "complete":
			stepErr = flow.Complete()
		default:
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown action "+req.Action)
			return
		}

		resp := flowResponse(flow)
		if stepErr != nil {
			wizardTransitions.WithLabelValues(req.Action, "rejected").Inc()
			logger.Debug("wizard step rejected", zap.String("step", resp.StepName), zap.Error(stepErr))
			resp.Error = stepErrorBody(stepErr)
			c.JSON(http.StatusUnprocessableEntity, resp)
			return
		}
		wizardTransitions.WithLabelValues(req.Action, "ok").Inc()
		c.JSON(http.StatusOK, resp)
	}
}

type CheckoutRequest struct {
	Selection models.BookingSelection `json:"selection"`
}

type CheckoutResponse struct {
	Summary      booking.Summary `json:"summary"`
	ClientSecret string          `json:"clientSecret"`
}

// NewCheckoutHandler re-validates the whole selection, prices it server side
// and opens a payment intent for the total.
func NewCheckoutHandler(area *booking.ServiceArea, rates booking.RateTable, payments payment.PaymentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		sel := req.Selection
		sel.AddOns = models.NewAddOnSet(sel.AddOns...)
		if err := booking.ValidateStep(booking.StepCheckout, sel, area, rates); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Booking is incomplete", "error": stepErrorBody(err)})
			return
		}

		summary := booking.Project(sel, rates)
		cents, err := utils.DollarsToCents(summary.Total)
		if err != nil || cents == 0 {
			utils.JSONError(c, http.StatusUnprocessableEntity, "Booking has no payable total", "")
			return
		}

		intent, err := payments.CreateIntent(c.Request.Context(), models.PaymentIntentRequest{
			Amount:   cents,
			Currency: payment.DefaultCurrency,
		}, c.GetHeader("Idempotency-Key"))
		if err != nil {
			intentsFailed.Inc()
			logger.Error("checkout payment intent failed", zap.Int64("amount", cents), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", err.Error())
			return
		}
		intentsCreated.Inc()

		c.JSON(http.StatusOK, CheckoutResponse{Summary: summary, ClientSecret: intent.ClientSecret})
	}
}
