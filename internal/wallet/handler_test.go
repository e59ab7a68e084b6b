package wallet_test

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
	walletpkg "github.com/frahmantamala/payment-wallet/internal/wallet"
)

type mockWalletService struct {
	balance       float64
	balanceError  error
	withdrawReq   *walletpkg.WithdrawRequest
	withdrawError error
	transferReq   *walletpkg.TransferRequest
	transferError error
}

func (m *mockWalletService) GetBalance(userID int64) (float64, error) {
	if m.balanceError != nil {
		return 0, m.balanceError
	}
	return m.balance, nil
}

func (m *mockWalletService) Withdraw(req *walletpkg.WithdrawRequest) error {
	m.withdrawReq = req
	return m.withdrawError
}

func (m *mockWalletService) Transfer(req *walletpkg.TransferRequest) error {
	m.transferReq = req
	return m.transferError
}

var _ = ginkgo.Describe("WalletHandler", func() {
	var (
		handler  *walletpkg.Handler
		service  *mockWalletService
		recorder *httptest.ResponseRecorder
	)

	ginkgo.BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = &mockWalletService{balance: 500}
		handler = walletpkg.NewHandler(service, logger)
		recorder = httptest.NewRecorder()
	})

	decodeBody := func() map[string]interface{} {
		var body map[string]interface{}
		err := json.Unmarshal(recorder.Body.Bytes(), &body)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return body
	}

	ginkgo.Describe("GetBalance", func() {
		serve := func(target string) {
			router := chi.NewRouter()
			router.Get("/api/payments/balance/{userId}", handler.GetBalance)
			req := httptest.NewRequest(http.MethodGet, target, nil)
			router.ServeHTTP(recorder, req)
		}

		ginkgo.It("returns the balance in the success envelope", func() {
			serve("/api/payments/balance/1")

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeTrue())
			gomega.Expect(body["balance"]).To(gomega.Equal(500.0))
		})

		ginkgo.It("rejects a non-numeric user id", func() {
			serve("/api/payments/balance/abc")

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeFalse())
		})

		ginkgo.It("returns 404 for an unknown user", func() {
			service.balanceError = apperrors.ErrUserNotFound

			serve("/api/payments/balance/99")

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeFalse())
			gomega.Expect(body["message"]).To(gomega.Equal("User not found"))
		})
	})

	ginkgo.Describe("Withdraw", func() {
		serve := func(payload string) {
			req := httptest.NewRequest(http.MethodPost, "/api/payments/withdraw", bytes.NewBufferString(payload))
			handler.Withdraw(recorder, req)
		}

		ginkgo.It("passes the parsed request to the service", func() {
			serve(`{"userId": 1, "amount": 200}`)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(service.withdrawReq.UserID).To(gomega.Equal(int64(1)))
			gomega.Expect(service.withdrawReq.Amount).To(gomega.Equal(200.0))

			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeTrue())
			gomega.Expect(body["message"]).To(gomega.Equal("Withdrawal successful"))
		})

		ginkgo.It("rejects a malformed body", func() {
			serve(`{"userId": `)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeFalse())
		})

		ginkgo.It("maps an insufficient balance to 400", func() {
			service.withdrawError = apperrors.ErrInsufficientBalance

			serve(`{"userId": 2, "amount": 200}`)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeFalse())
			gomega.Expect(body["message"]).To(gomega.Equal("Insufficient balance"))
		})
	})

	ginkgo.Describe("Transfer", func() {
		serve := func(payload string) {
			req := httptest.NewRequest(http.MethodPost, "/api/payments/transfer", bytes.NewBufferString(payload))
			handler.Transfer(recorder, req)
		}

		ginkgo.It("passes the parsed request to the service", func() {
			serve(`{"senderId": 1, "receiverId": 2, "amount": 200}`)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(service.transferReq.SenderID).To(gomega.Equal(int64(1)))
			gomega.Expect(service.transferReq.ReceiverID).To(gomega.Equal(int64(2)))
			gomega.Expect(service.transferReq.Amount).To(gomega.Equal(200.0))

			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeTrue())
			gomega.Expect(body["message"]).To(gomega.Equal("Funds transferred successfully"))
		})

		ginkgo.It("maps an invalid transfer to 400", func() {
			service.transferError = apperrors.ErrInvalidTransfer

			serve(`{"senderId": 1, "receiverId": 2, "amount": 600}`)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeFalse())
			gomega.Expect(body["message"]).To(gomega.Equal("Invalid transfer"))
		})

		ginkgo.It("rejects a malformed body", func() {
			serve(`not json`)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			body := decodeBody()
			gomega.Expect(body["success"]).To(gomega.BeFalse())
		})
	})
})
