package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/handlers"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/middleware"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/services"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

const apiPrefix = "/api/v1"

type Options struct {
	MaxBriefSize      int64
	CORSAllowedOrigin string
}

func NewRouter(inquiryService services.InquiryService, catalog handlers.Catalog, opts Options, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	inquiryHandler := handlers.NewInquiryHandler(inquiryService, opts.MaxBriefSize, logger)
	contentHandler := handlers.NewContentHandler(catalog, logger)
	healthHandler := handlers.NewHealthHandler(inquiryService, logger)
	routeErrors := handlers.NewRouteErrorHandler(logger)

	// Routes live on the root router: mux only reports 405 for method
	// mismatches there, a subrouter answers 404.
	r.NotFoundHandler = http.HandlerFunc(routeErrors.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(routeErrors.MethodNotAllowed)

	r.HandleFunc(apiPrefix+"/health", healthHandler.Health).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/ready", healthHandler.Ready).Methods(http.MethodGet)

	// Inquiry endpoints
	r.HandleFunc(apiPrefix+"/inquiries", inquiryHandler.SubmitInquiry).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/inquiries/analyze", inquiryHandler.AnalyzeInquiry).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/inquiries/analyze/brief", inquiryHandler.AnalyzeBrief).Methods(http.MethodPost)

	// Site content
	r.HandleFunc(apiPrefix+"/content/services", contentHandler.Services).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/content/projects", contentHandler.Projects).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/content/testimonials", contentHandler.Testimonials).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/content/benefits", contentHandler.Benefits).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/content/contact", contentHandler.Contact).Methods(http.MethodGet)

	// Middlewares wrap the whole router so unmatched requests and
	// preflights get a request ID, an access log line and CORS headers too.
	return chain(r,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(opts.CORSAllowedOrigin),
		middleware.Recovery(logger),
	)
}

// chain applies mws so the first one is outermost.
func chain(h http.Handler, mws ...mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
