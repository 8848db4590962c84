package handlers

import (
	"errors"
	"net/http"

	"readycleans/models"
	"readycleans/services/payment"
	"readycleans/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewCreatePaymentIntentHandler proxies an amount in cents to the payment
// provider and hands back the client secret.
func NewCreatePaymentIntentHandler(payments payment.PaymentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.PaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		resp, err := payments.CreateIntent(c.Request.Context(), req, c.GetHeader("Idempotency-Key"))
		if err != nil {
			intentsFailed.Inc()
			if errors.Is(err, payment.ErrInvalidAmount) {
				utils.JSONError(c, http.StatusBadRequest, "Invalid amount", "amount must be a positive number of cents")
				return
			}
			logger.Error("payment intent failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", err.Error())
			return
		}
		intentsCreated.Inc()
		c.JSON(http.StatusOK, resp)
	}
}
