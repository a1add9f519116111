package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vimldn/invis"
	"github.com/vimldn/invis/catalog"
	"github.com/vimldn/invis/leads"
	"github.com/vimldn/invis/metrics"
	"github.com/vimldn/invis/models"
	"github.com/vimldn/invis/slug"
)

// Cross-link limits on the service+city page
const (
	otherServicesLimit = 5
	nearbyCitiesLimit  = 5
)

// maxLeadBytes caps the lead request body
const maxLeadBytes = 64 * 1024

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// handleListArticles serves one page of the published blog index
func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = parsed
	}

	published := s.articles.Load(r.Context(), invis.VariantListing)
	respondJSON(w, http.StatusOK, invis.BuildListing(published, r.URL.Query().Get("q"), page))
}

// handleGetArticle serves a single article regardless of publish date
func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	all := s.articles.Load(r.Context(), invis.VariantArticle)

	view, err := invis.BuildArticleView(all, chi.URLParam(r, "slug"), s.view)
	if errors.Is(err, invis.ErrArticleNotFound) {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build article")
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// LocationsResponse lists regions, optionally filtered by city name
type LocationsResponse struct {
	Query   string          `json:"query"`
	Regions []models.Region `json:"regions"`
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	respondJSON(w, http.StatusOK, LocationsResponse{
		Query:   q,
		Regions: s.catalog.SearchCities(q),
	})
}

// LocationPage is the data behind a city landing page
type LocationPage struct {
	City     string           `json:"city"`
	Slug     string           `json:"slug"`
	Services []models.Service `json:"services"`
	FAQs     []models.FAQ     `json:"faqs"`
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	city, err := s.catalog.City(chi.URLParam(r, "city"))
	if err != nil {
		respondError(w, http.StatusNotFound, "city not found")
		return
	}

	faqs, _ := s.catalog.FAQs(catalog.FAQServices)
	respondJSON(w, http.StatusOK, LocationPage{
		City:     city,
		Slug:     slug.ForName(city),
		Services: s.catalog.Services,
		FAQs:     faqs,
	})
}

// ServicesResponse is the data behind the services index
type ServicesResponse struct {
	Services   []models.Service `json:"services"`
	Treatments []string         `json:"treatments"`
	FAQs       []models.FAQ     `json:"faqs"`
}

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	faqs, _ := s.catalog.FAQs(catalog.FAQServices)
	respondJSON(w, http.StatusOK, ServicesResponse{
		Services:   s.catalog.Services,
		Treatments: s.catalog.Treatments(),
		FAQs:       faqs,
	})
}

// ServicePage is the data behind a service landing page
type ServicePage struct {
	Service models.Service  `json:"service"`
	Query   string          `json:"query"`
	Regions []models.Region `json:"regions"`
	FAQs    []models.FAQ    `json:"faqs"`
}

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	service, err := s.catalog.Service(chi.URLParam(r, "service"))
	if err != nil {
		respondError(w, http.StatusNotFound, "service not found")
		return
	}

	q := r.URL.Query().Get("q")
	faqs, _ := s.catalog.FAQs(catalog.FAQLocation)
	respondJSON(w, http.StatusOK, ServicePage{
		Service: service,
		Query:   q,
		Regions: s.catalog.SearchCities(q),
		FAQs:    faqs,
	})
}

// ServiceCityPage is the data behind a service landing page for one city
type ServiceCityPage struct {
	Service       models.Service   `json:"service"`
	City          string           `json:"city"`
	Slug          string           `json:"slug"`
	OtherServices []models.Service `json:"other_services"`
	NearbyCities  []string         `json:"nearby_cities"`
}

func (s *Server) handleGetServiceCity(w http.ResponseWriter, r *http.Request) {
	service, err := s.catalog.Service(chi.URLParam(r, "service"))
	if err != nil {
		respondError(w, http.StatusNotFound, "service not found")
		return
	}
	city, err := s.catalog.City(chi.URLParam(r, "city"))
	if err != nil {
		respondError(w, http.StatusNotFound, "city not found")
		return
	}

	respondJSON(w, http.StatusOK, ServiceCityPage{
		Service:       service,
		City:          city,
		Slug:          slug.ForName(city),
		OtherServices: s.catalog.OtherServices(service.ID, otherServicesLimit),
		NearbyCities:  s.catalog.NearbyCities(city, nearbyCitiesLimit),
	})
}

func (s *Server) handleGetFAQs(w http.ResponseWriter, r *http.Request) {
	context := chi.URLParam(r, "context")
	faqs, err := s.catalog.FAQs(context)
	if err != nil {
		respondError(w, http.StatusNotFound, "faq context not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"context": context,
		"faqs":    faqs,
	})
}

// LeadResponse acknowledges an accepted lead
type LeadResponse struct {
	OK          bool      `json:"ok"`
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// handleSubmitLead validates a lead and relays it to the intake script
func (s *Server) handleSubmitLead(w http.ResponseWriter, r *http.Request) {
	var lead models.Lead
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBytes)).Decode(&lead); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := leads.Validate(lead); err != nil {
		metrics.LeadSubmissionsTotal.WithLabelValues(metrics.LeadInvalid).Inc()
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if lead.Page == "" {
		lead.Page = r.Referer()
	}

	receipt, err := s.leads.Submit(r.Context(), lead)
	if err != nil {
		var rejected *leads.RejectedError
		if errors.As(err, &rejected) {
			respondJSON(w, http.StatusBadGateway, map[string]string{
				"error":  leads.FailureMessage,
				"detail": rejected.Message,
			})
			return
		}
		respondError(w, http.StatusBadGateway, leads.FailureMessage)
		return
	}

	respondJSON(w, http.StatusOK, LeadResponse{
		OK:          true,
		ID:          receipt.ID,
		SubmittedAt: receipt.SubmittedAt,
	})
}
