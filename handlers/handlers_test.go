package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"readycleans/models"
	"readycleans/services/booking"
	"readycleans/services/feed"
	ai "readycleans/services/intelligence"
	"readycleans/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePayments struct {
	last    models.PaymentIntentRequest
	lastKey string
	err     error
}

func (f *fakePayments) CreateIntent(ctx context.Context, req models.PaymentIntentRequest, key string) (*models.PaymentIntentResponse, error) {
	f.last, f.lastKey = req, key
	if f.err != nil {
		return nil, f.err
	}
	return &models.PaymentIntentResponse{ClientSecret: "pi_secret"}, nil
}

type fakeChat struct {
	reply string
	err   error
}

func (f *fakeChat) Reply(ctx context.Context, req models.ChatRequest) (string, error) {
	return f.reply, f.err
}

type fakeBlogs struct {
	posts []models.BlogPost
	err   error
}

func (f *fakeBlogs) List(ctx context.Context) ([]models.BlogPost, error) {
	return f.posts, f.err
}

func (f *fakeBlogs) Get(ctx context.Context, id string) (models.BlogPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.BlogPost{}, feed.ErrPostNotFound
}

type testEnv struct {
	router   *gin.Engine
	payments *fakePayments
	chat     *fakeChat
	blogs    *fakeBlogs
}

func newTestEnv() *testEnv {
	env := &testEnv{
		payments: &fakePayments{},
		chat:     &fakeChat{reply: "Hi there"},
		blogs:    &fakeBlogs{posts: []models.BlogPost{{ID: "p1", Title: "Post"}}},
	}
	hb := NewHandlerBundle(Deps{
		Area:     booking.DefaultServiceArea(),
		Rates:    booking.DefaultRateTable(),
		Payments: env.payments,
		Chat:     env.chat,
		Blogs:    env.blogs,
	})
	r := gin.New()
	r.GET("/rates", hb.RatesHandler)
	r.GET("/service-area/:zip", hb.ServiceAreaHandler)
	r.POST("/quote", hb.QuoteHandler)
	r.POST("/flow", hb.FlowHandler)
	r.POST("/checkout", hb.CheckoutHandler)
	r.POST("/intent", hb.CreatePaymentIntentHandler)
	r.POST("/chat", hb.ChatHandler)
	r.GET("/blogs", hb.ListBlogsHandler)
	r.GET("/blogs/:id", hb.GetBlogHandler)
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func completeSelection() models.BookingSelection {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sel := models.DefaultBookingSelection()
	sel.City = "Phoenix"
	sel.Zip = "85004"
	sel.ServiceType = models.ServiceStandardClean
	sel.UnitSize = models.UnitTwoBedTwoBath
	sel.ScheduledDate = &date
	sel.ScheduledTimeWindow = "9am-12pm"
	sel.Contact = models.Contact{FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com", Phone: "602-555-0100"}
	return sel
}

func TestRatesHandler(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/rates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[booking.PriceList](t, w)
	require.Len(t, list.Services, 2)
	assert.Equal(t, 125, list.Services[0].Rates[0].Price)
	assert.Len(t, list.AddOns, 4)
}

func TestServiceAreaHandler(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/service-area/85004", nil)
	assert.JSONEq(t, `{"zip":"85004","serviceable":true}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/service-area/10001", nil)
	assert.JSONEq(t, `{"zip":"10001","serviceable":false}`, w.Body.String())
}

func TestQuoteHandler(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/quote", QuoteRequest{
		ServiceType: models.ServiceAirbnbTurnover,
		UnitSize:    models.UnitOneBedOneBath,
		AddOns:      []models.AddOn{models.AddOnFridge, models.AddOnFridge},
	})
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[booking.Summary](t, w)
	assert.Equal(t, 165, s.Total)
	assert.Equal(t, []string{"Inside Fridge"}, s.AddOnLabels)

	w = env.do(t, http.MethodPost, "/quote", QuoteRequest{ServiceType: "deep-clean", UnitSize: models.UnitStudio})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlowAdvanceRejected(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/flow", FlowRequest{
		Action: "advance",
		Patch:  models.BookingPatch{}.WithZip("10001").WithCity("New York"),
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decode[FlowResponse](t, w)
	assert.Equal(t, 0, resp.Step)
	assert.Equal(t, "location", resp.StepName)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "zip", resp.Error.Field)
	assert.Equal(t, "10001", resp.Selection.Zip)
}

func TestFlowRoundTrip(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/flow", FlowRequest{
		Action: "advance",
		Patch:  models.BookingPatch{}.WithZip("85004").WithCity("Phoenix"),
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[FlowResponse](t, w)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, 125, resp.Summary.Total)

	sel := resp.Selection
	w = env.do(t, http.MethodPost, "/flow", FlowRequest{
		Step:      resp.Step,
		Selection: &sel,
		Action:    "update",
		Patch:     models.BookingPatch{}.WithUnitSize(models.UnitTwoBedTwoBath).WithAddOns(models.AddOnOven),
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[FlowResponse](t, w)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, 285, resp.Summary.Total)

	sel = resp.Selection
	w = env.do(t, http.MethodPost, "/flow", FlowRequest{Step: resp.Step, Selection: &sel, Action: "back"})
	resp = decode[FlowResponse](t, w)
	assert.Equal(t, 0, resp.Step)

	sel = resp.Selection
	w = env.do(t, http.MethodPost, "/flow", FlowRequest{Step: resp.Step, Selection: &sel, Action: "reset"})
	resp = decode[FlowResponse](t, w)
	assert.Equal(t, 0, resp.Step)
	assert.Empty(t, resp.Selection.Zip)
	assert.Equal(t, 125, resp.Summary.Total)
}

func TestFlowJumpAndDeeplink(t *testing.T) {
	env := newTestEnv()
	target := 99
	w := env.do(t, http.MethodPost, "/flow", FlowRequest{Action: "jump", Target: &target})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int(booking.StepCheckout), decode[FlowResponse](t, w).Step)

	w = env.do(t, http.MethodPost, "/flow", FlowRequest{Action: "jump"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/flow", FlowRequest{Action: "deeplink", ServiceType: models.ServiceAirbnbTurnover})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[FlowResponse](t, w)
	assert.Equal(t, "size", resp.StepName)
	assert.Equal(t, models.ServiceAirbnbTurnover, resp.Selection.ServiceType)
	assert.Equal(t, 80, resp.Summary.Total)

	w = env.do(t, http.MethodPost, "/flow", FlowRequest{Action: "deeplink", ServiceType: "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/flow", FlowRequest{Action: "fly"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandler(t *testing.T) {
	env := newTestEnv()
	sel := completeSelection()
	sel.AddOns = models.AddOnSet{models.AddOnSameDay, models.AddOnOven}

	w := env.do(t, http.MethodPost, "/checkout", CheckoutRequest{Selection: sel}, "Idempotency-Key", "order-1")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[CheckoutResponse](t, w)
	assert.Equal(t, 360, resp.Summary.Total)
	assert.Equal(t, []string{"Inside Oven", "Same-Day Service"}, resp.Summary.AddOnLabels)
	assert.Equal(t, "pi_secret", resp.ClientSecret)
	assert.Equal(t, int64(36000), env.payments.last.Amount)
	assert.Equal(t, payment.DefaultCurrency, env.payments.last.Currency)
	assert.Equal(t, "order-1", env.payments.lastKey)
}

func TestCheckoutRejectsIncompleteBooking(t *testing.T) {
	env := newTestEnv()
	sel := completeSelection()
	sel.Contact.Email = "not-an-email"

	w := env.do(t, http.MethodPost, "/checkout", CheckoutRequest{Selection: sel})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, env.payments.last.Amount)

	env.payments.err = errors.New("card network down")
	w = env.do(t, http.MethodPost, "/checkout", CheckoutRequest{Selection: completeSelection()})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreatePaymentIntentHandler(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/intent", models.PaymentIntentRequest{Amount: 12500})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, w.Body.String())

	env.payments.err = payment.ErrInvalidAmount
	w = env.do(t, http.MethodPost, "/intent", models.PaymentIntentRequest{Amount: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.payments.err = errors.New("stripe down")
	w = env.do(t, http.MethodPost, "/intent", models.PaymentIntentRequest{Amount: 100})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestChatHandler(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/chat", models.ChatRequest{Message: "Do you clean ovens?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"Hi there"}`, w.Body.String())

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{ai.ErrEmptyMessage, http.StatusBadRequest, "Message is required"},
		{ai.ErrNotConfigured, http.StatusInternalServerError, "Gemini API key not configured"},
		{errors.New("quota"), http.StatusInternalServerError, "Failed to get AI response"},
	}
	for _, tc := range cases {
		env.chat.err = tc.err
		w := env.do(t, http.MethodPost, "/chat", models.ChatRequest{Message: "hi"})
		assert.Equal(t, tc.status, w.Code)
		assert.Equal(t, tc.message, decode[map[string]string](t, w)["message"])
	}
}

func TestBlogHandlers(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/blogs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.BlogPost](t, w), 1)

	w = env.do(t, http.MethodGet, "/blogs/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post", decode[models.BlogPost](t, w).Title)

	w = env.do(t, http.MethodGet, "/blogs/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.blogs.err = errors.New("disk")
	w = env.do(t, http.MethodGet, "/blogs", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFlowCompleteReturnsFreshWizard(t *testing.T) {
	env := newTestEnv()
	sel := completeSelection()
	w := env.do(t, http.MethodPost, "/flow", FlowRequest{Step: int(booking.StepCheckout), Selection: &sel, Action: "complete"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[FlowResponse](t, w)
	assert.Equal(t, 0, resp.Step)
	assert.Empty(t, resp.Selection.Zip)
	assert.Nil(t, resp.Selection.ScheduledDate)
	assert.Equal(t, models.Contact{}, resp.Selection.Contact)

	sel.Zip = ""
	w = env.do(t, http.MethodPost, "/flow", FlowRequest{Step: int(booking.StepCheckout), Selection: &sel, Action: "complete"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp = decode[FlowResponse](t, w)
	assert.Equal(t, int(booking.StepCheckout), resp.Step)
	assert.Equal(t, "zip", resp.Error.Field)
}
