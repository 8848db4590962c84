package handlers

import (
	"readycleans/services/booking"
	ai "readycleans/services/intelligence"
	"readycleans/services/payment"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP handlers talk to.
type Deps struct {
	Area     *booking.ServiceArea
	Rates    booking.RateTable
	Payments payment.PaymentHandler
	Chat     ai.ChatService
	Blogs    BlogReader
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	RatesHandler       gin.HandlerFunc
	ServiceAreaHandler gin.HandlerFunc
	QuoteHandler       gin.HandlerFunc
	FlowHandler        gin.HandlerFunc
	CheckoutHandler    gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntentHandler gin.HandlerFunc

	// AI endpoints
	ChatHandler gin.HandlerFunc

	// Blog endpoints
	ListBlogsHandler gin.HandlerFunc
	GetBlogHandler   gin.HandlerFunc
}

func NewHandlerBundle(d Deps) *HandlerBundle {
	return &HandlerBundle{
		RatesHandler:               NewRatesHandler(d.Rates),
		ServiceAreaHandler:         NewServiceAreaHandler(d.Area),
		QuoteHandler:               NewQuoteHandler(d.Area, d.Rates),
		FlowHandler:                NewFlowHandler(d.Area, d.Rates),
		CheckoutHandler:            NewCheckoutHandler(d.Area, d.Rates, d.Payments),
		CreatePaymentIntentHandler: NewCreatePaymentIntentHandler(d.Payments),
		ChatHandler:                NewChatHandler(d.Chat),
		ListBlogsHandler:           NewListBlogsHandler(d.Blogs),
		GetBlogHandler:             NewGetBlogHandler(d.Blogs),
	}
}
