// Package vinmonopolettest fornece um servidor falso da API Vinmonopolet para testes.
package vinmonopolettest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

const (
	BasePath            = "/products/v0"
	MonthlySalesPath    = BasePath + "/monthly-sales-per-store"
	ProductDetailsPath  = BasePath + "/details-normal"
	PriceConditionsPath = BasePath + "/price-conditions"

	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"
)

// Response é a resposta programada para uma rota
type Response struct {
	Status int
	Body   string
}

// RecordedRequest guarda o que chegou ao servidor
type RecordedRequest struct {
	Path   string
	Query  url.Values
	Header http.Header
}

type Server struct {
	*httptest.Server
	APIKey string

	mu        sync.Mutex
	requests  []RecordedRequest
	responses map[string]Response
}

// NewServer sobe um servidor que só aceita requisições com apiKey no cabeçalho de assinatura.
// Rotas sem resposta programada devolvem 200 com um objeto vazio.
func NewServer(apiKey string) *Server {
	s := &Server{
		APIKey:    apiKey,
		responses: make(map[string]Response),
	}

	router := httprouter.New()
	for _, p := range []string{MonthlySalesPath, ProductDetailsPath, PriceConditionsPath} {
		router.GET(p, s.serveRoute)
	}

	s.Server = httptest.NewServer(alice.New(s.record, s.requireSubscriptionKey).Then(router))

	return s
}

// BaseURL devolve a URL base a ser usada pelo cliente
func (s *Server) BaseURL() string {
	return s.Server.URL + BasePath
}

// Respond programa a resposta de uma rota
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[path] = Response{Status: status, Body: body}
}

func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireSubscriptionKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(subscriptionKeyHeader) != s.APIKey {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"statusCode": 401, "message": "Access denied due to invalid subscription key."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) serveRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	resp, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		resp = Response{Status: http.StatusOK, Body: "{}"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}
