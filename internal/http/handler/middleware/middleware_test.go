package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"financeguard/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seen    string
		handler http.Handler
		logs    *observer.ObservedLogs
		rec     *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seen = ""
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
		handler = middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(inner)
		handler = middleware.NewRequestIDMiddleware().RequestID(handler)
		rec = httptest.NewRecorder()
	})

	It("should assign a uuid request id when none is sent", func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ledger/year-month", nil))

		_, err := uuid.Parse(seen)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	It("should keep the caller's request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/ledger/year-month", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		handler.ServeHTTP(rec, req)

		Expect(seen).To(Equal("abc-123"))
	})

	It("should log the status of each request", func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ledger/transactions", nil))

		Expect(logs.Len()).To(Equal(1))
		entry := logs.All()[0]
		Expect(entry.Level).To(Equal(zapcore.WarnLevel))
		Expect(entry.ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
		Expect(entry.ContextMap()).To(HaveKeyWithValue("path", "/ledger/transactions"))
	})

	It("should leave the request id empty outside the middleware", func() {
		Expect(middleware.RequestIDFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())).To(BeEmpty())
	})
})
