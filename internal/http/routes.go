package httpx

import (
	"log/slog"
	"net/http"

	"github.com/fixly/fixly-api/internal/service"
)

// RouterServices holds the services needed by the HTTP router.
type RouterServices struct {
	Postings    *service.PostingService
	Bids        *service.BidService
	Engagements *service.EngagementService
	Auth        *service.AuthService
	Logger      *slog.Logger
}

// NewRouter creates and configures the API router. Every /api route requires
// a bearer token except the public per-client posting listing.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	postingHandlers := &PostingHandlers{Svc: services.Postings}
	bidHandlers := &BidHandlers{Svc: services.Bids}
	engagementHandlers := &EngagementHandlers{Svc: services.Engagements}
	authHandlers := &AuthHandlers{Svc: services.Auth}

	requireAuth := RequireAuth(services.Auth)
	authed := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux.Handle("POST /api/job-postings", authed(postingHandlers.CreatePosting))
	mux.Handle("GET /api/job-postings", authed(postingHandlers.ListPostings))
	mux.Handle("GET /api/job-postings/{userId}", http.HandlerFunc(postingHandlers.ListClientPostings))
	mux.Handle("GET /api/job-postings/{userId}/active", authed(postingHandlers.ListActivePostings))
	mux.Handle("PUT /api/job-postings/{id}", authed(postingHandlers.UpdatePosting))
	mux.Handle("PATCH /api/job-postings/{id}", authed(postingHandlers.PatchPosting))
	mux.Handle("DELETE /api/job-postings/{id}", authed(postingHandlers.DeletePosting))
	// Legacy alias kept for older clients.
	mux.Handle("POST /api/edit-postings", authed(postingHandlers.EditPosting))

	mux.Handle("POST /api/job-bids", authed(bidHandlers.SubmitBid))
	mux.Handle("GET /api/job-bids", authed(bidHandlers.ListFixerBids))
	mux.Handle("PUT /api/job-bids/{id}", authed(bidHandlers.UpdateBid))
	mux.Handle("DELETE /api/job-bids/{id}", authed(bidHandlers.DeleteBid))
	mux.Handle("GET /api/job/{id}/bids", authed(bidHandlers.ListPostingBids))
	mux.Handle("POST /api/accept-bids", authed(bidHandlers.AcceptBid))
	// Legacy aliases kept for older clients.
	mux.Handle("POST /api/edit-bid", authed(bidHandlers.EditBid))
	mux.Handle("DELETE /api/delete-bid/{id}", authed(bidHandlers.DeleteBid))

	mux.Handle("POST /api/complete-job", authed(engagementHandlers.CompleteJob))
	mux.Handle("POST /api/job/{id}/rate", authed(engagementHandlers.RateFixer))
	mux.Handle("GET /api/fixers/{id}/reviews", authed(engagementHandlers.ListFixerReviews))

	mux.Handle("POST /api/logout", authed(authHandlers.Logout))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	if services.Logger != nil {
		handler = Logging(services.Logger)(handler)
		handler = Recover(services.Logger)(handler)
	}
	return handler
}
