package gateway_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	gatewaytypes "github.com/frahmantamala/payment-wallet/internal/core/datamodel/gateway"
	"github.com/frahmantamala/payment-wallet/internal/gateway"
)

var _ = ginkgo.Describe("Client", func() {
	var (
		server *httptest.Server
		client *gateway.Client
		logger *slog.Logger
	)

	newClient := func(handler http.HandlerFunc) *gateway.Client {
		server = httptest.NewServer(handler)
		return gateway.NewClient(gateway.Config{
			KeyID:     "rzp_test_key",
			KeySecret: "rzp_test_secret",
			APIURL:    server.URL,
		}, logger)
	}

	ginkgo.BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	ginkgo.AfterEach(func() {
		if server != nil {
			server.Close()
		}
	})

	ginkgo.Describe("CreateOrder", func() {
		ginkgo.It("posts the order payload with basic auth and auto-capture", func() {
			var received gatewaytypes.OrderRequest
			var gotUser, gotPass string
			var gotOK bool

			client = newClient(func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(r.Method).To(gomega.Equal("POST"))
				gomega.Expect(r.URL.Path).To(gomega.Equal("/orders"))
				gotUser, gotPass, gotOK = r.BasicAuth()

				gomega.Expect(json.NewDecoder(r.Body).Decode(&received)).To(gomega.Succeed())

				json.NewEncoder(w).Encode(gatewaytypes.Order{
					ID:        "order_abc",
					Entity:    "order",
					Amount:    received.Amount,
					AmountDue: received.Amount,
					Currency:  received.Currency,
					Receipt:   received.Receipt,
					Status:    "created",
				})
			})

			order, err := client.CreateOrder(&gatewaytypes.OrderRequest{
				Amount:   50000,
				Currency: "INR",
				Receipt:  "rcpt_1",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(order.ID).To(gomega.Equal("order_abc"))
			gomega.Expect(order.Amount).To(gomega.Equal(int64(50000)))
			gomega.Expect(received.PaymentCapture).To(gomega.Equal(1))
			gomega.Expect(gotOK).To(gomega.BeTrue())
			gomega.Expect(gotUser).To(gomega.Equal("rzp_test_key"))
			gomega.Expect(gotPass).To(gomega.Equal("rzp_test_secret"))
		})

		ginkgo.It("rejects a non-positive amount before calling the gateway", func() {
			called := false
			client = newClient(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			_, err := client.CreateOrder(&gatewaytypes.OrderRequest{Amount: 0, Currency: "INR", Receipt: "r"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(called).To(gomega.BeFalse())
		})

		ginkgo.It("decodes the gateway error envelope on failure", func() {
			client = newClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Order amount less than minimum"}}`))
			})

			_, err := client.CreateOrder(&gatewaytypes.OrderRequest{Amount: 1, Currency: "INR", Receipt: "r"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("BAD_REQUEST_ERROR"))
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("Order amount less than minimum"))
		})
	})

	ginkgo.Describe("RefundPayment", func() {
		ginkgo.It("posts to the payment's refund endpoint", func() {
			client = newClient(func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(r.URL.Path).To(gomega.Equal("/payments/pay_123/refund"))
				json.NewEncoder(w).Encode(gatewaytypes.Refund{
					ID:        "rfnd_1",
					Entity:    "refund",
					Amount:    50000,
					Currency:  "INR",
					PaymentID: "pay_123",
					Status:    "processed",
				})
			})

			refund, err := client.RefundPayment("pay_123")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refund.ID).To(gomega.Equal("rfnd_1"))
			gomega.Expect(refund.PaymentID).To(gomega.Equal("pay_123"))
		})

		ginkgo.It("rejects an empty payment id", func() {
			client = newClient(func(w http.ResponseWriter, r *http.Request) {})

			_, err := client.RefundPayment("")

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
