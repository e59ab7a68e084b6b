package payment_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/payment-wallet/internal"
	gatewaytypes "github.com/frahmantamala/payment-wallet/internal/core/datamodel/gateway"
	paymentmodel "github.com/frahmantamala/payment-wallet/internal/core/datamodel/payment"
	paymentpkg "github.com/frahmantamala/payment-wallet/internal/payment"
)

type mockPaymentService struct {
	order             *gatewaytypes.Order
	createOrderError  error
	verifyError       error
	payment           *paymentmodel.Payment
	statusError       error
	refund            *gatewaytypes.Refund
	refundError       error
	transactions      []*paymentmodel.Payment
	transactionsError error
}

func (m *mockPaymentService) CreateOrder(req *paymentpkg.CreateOrderRequest) (*gatewaytypes.Order, error) {
	if m.createOrderError != nil {
		return nil, m.createOrderError
	}
	return m.order, nil
}

func (m *mockPaymentService) VerifyPayment(req *paymentpkg.VerifyPaymentRequest) error {
	return m.verifyError
}

func (m *mockPaymentService) GetPaymentStatus(paymentID string) (*paymentmodel.Payment, error) {
	if m.statusError != nil {
		return nil, m.statusError
	}
	return m.payment, nil
}

func (m *mockPaymentService) Refund(req *paymentpkg.RefundRequest) (*gatewaytypes.Refund, error) {
	if m.refundError != nil {
		return nil, m.refundError
	}
	return m.refund, nil
}

func (m *mockPaymentService) GetUserTransactions(userID int64) ([]*paymentmodel.Payment, error) {
	if m.transactionsError != nil {
		return nil, m.transactionsError
	}
	return m.transactions, nil
}

func routeWithParam(handlerFunc http.HandlerFunc, method, pattern, target string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handlerFunc)
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

var _ = ginkgo.Describe("PaymentHandler", func() {
	var (
		handler  *paymentpkg.Handler
		service  *mockPaymentService
		recorder *httptest.ResponseRecorder
		logger   *slog.Logger
	)

	decode := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]interface{}
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
		return body
	}

	ginkgo.BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = &mockPaymentService{
			order:  &gatewaytypes.Order{ID: "order_1", Amount: 50000, Currency: "INR", Status: "created"},
			refund: &gatewaytypes.Refund{ID: "rfnd_1", PaymentID: "pay_1", Status: "processed"},
		}
		handler = paymentpkg.NewHandler(service, logger)
		recorder = httptest.NewRecorder()
	})

	ginkgo.Describe("CreateOrder", func() {
		ginkgo.It("returns the gateway order with the success flag", func() {
			body, _ := json.Marshal(map[string]interface{}{"amount": 500, "currency": "INR", "receipt": "r1"})
			req := httptest.NewRequest("POST", "/api/payments/create-order", bytes.NewBuffer(body))

			handler.CreateOrder(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			resp := decode(recorder)
			gomega.Expect(resp["success"]).To(gomega.BeTrue())
			order := resp["order"].(map[string]interface{})
			gomega.Expect(order["id"]).To(gomega.Equal("order_1"))
		})

		ginkgo.It("rejects an unparseable body", func() {
			req := httptest.NewRequest("POST", "/api/payments/create-order", bytes.NewBufferString("{"))

			handler.CreateOrder(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(decode(recorder)["success"]).To(gomega.BeFalse())
		})

		ginkgo.It("surfaces gateway failures with the raw error", func() {
			service.createOrderError = apperrors.NewExternalError("Payment creation failed", apperrors.ErrCodeOrderCreationFailed,
				bytes.ErrTooLarge)
			body, _ := json.Marshal(map[string]interface{}{"amount": 500})
			req := httptest.NewRequest("POST", "/api/payments/create-order", bytes.NewBuffer(body))

			handler.CreateOrder(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusInternalServerError))
			resp := decode(recorder)
			gomega.Expect(resp["message"]).To(gomega.Equal("Payment creation failed"))
			gomega.Expect(resp["error"]).ToNot(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("VerifyPayment", func() {
		ginkgo.It("confirms a verified payment", func() {
			body, _ := json.Marshal(map[string]string{
				"razorpay_order_id":   "o1",
				"razorpay_payment_id": "p1",
				"razorpay_signature":  "sig",
			})
			req := httptest.NewRequest("POST", "/api/payments/verify", bytes.NewBuffer(body))

			handler.VerifyPayment(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			resp := decode(recorder)
			gomega.Expect(resp["success"]).To(gomega.BeTrue())
			gomega.Expect(resp["message"]).To(gomega.Equal("Payment verified successfully"))
		})

		ginkgo.It("maps a signature mismatch to a 400 failure", func() {
			service.verifyError = apperrors.ErrSignatureMismatch
			body, _ := json.Marshal(map[string]string{
				"razorpay_order_id":   "o1",
				"razorpay_payment_id": "p1",
				"razorpay_signature":  "deadbeef",
			})
			req := httptest.NewRequest("POST", "/api/payments/verify", bytes.NewBuffer(body))

			handler.VerifyPayment(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			resp := decode(recorder)
			gomega.Expect(resp["success"]).To(gomega.BeFalse())
			gomega.Expect(resp["message"]).To(gomega.Equal("Payment verification failed"))
		})
	})

	ginkgo.Describe("GetPaymentStatus", func() {
		ginkgo.It("returns the payment record", func() {
			service.payment = &paymentmodel.Payment{ID: 1, PaymentID: "p1", Status: "Paid"}

			rec := routeWithParam(handler.GetPaymentStatus, "GET", "/status/{paymentId}", "/status/p1")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			resp := decode(rec)
			payment := resp["payment"].(map[string]interface{})
			gomega.Expect(payment["payment_id"]).To(gomega.Equal("p1"))
		})

		ginkgo.It("returns 404 for an unknown payment", func() {
			service.statusError = apperrors.ErrPaymentNotFound

			rec := routeWithParam(handler.GetPaymentStatus, "GET", "/status/{paymentId}", "/status/missing")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(decode(rec)["message"]).To(gomega.Equal("Payment not found"))
		})
	})

	ginkgo.Describe("RefundPayment", func() {
		ginkgo.It("returns the gateway refund", func() {
			body, _ := json.Marshal(map[string]string{"paymentId": "pay_1"})
			req := httptest.NewRequest("POST", "/api/payments/refund", bytes.NewBuffer(body))

			handler.RefundPayment(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			resp := decode(recorder)
			refund := resp["refund"].(map[string]interface{})
			gomega.Expect(refund["id"]).To(gomega.Equal("rfnd_1"))
		})
	})

	ginkgo.Describe("GetUserTransactions", func() {
		ginkgo.It("returns the user's transactions", func() {
			userID := int64(7)
			service.transactions = []*paymentmodel.Payment{
				{ID: 2, UserID: &userID, PaymentID: "p2"},
				{ID: 1, UserID: &userID, PaymentID: "p1"},
			}

			rec := routeWithParam(handler.GetUserTransactions, "GET", "/transactions/{userId}", "/transactions/7")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			resp := decode(rec)
			transactions := resp["transactions"].([]interface{})
			gomega.Expect(transactions).To(gomega.HaveLen(2))
		})

		ginkgo.It("rejects a non-numeric user id", func() {
			rec := routeWithParam(handler.GetUserTransactions, "GET", "/transactions/{userId}", "/transactions/abc")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})
})
