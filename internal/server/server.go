package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"alkhair/internal/media"
	"alkhair/internal/records"
	"alkhair/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

const idPattern = "|^[0-9]+$"

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	store    *records.Store
	uploader media.Uploader

	mux    *flow.Mux
	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	store *records.Store,
	uploader media.Uploader,
) *Service {
	mux := flow.New()

	s := &Service{
		logger:   logger,
		config:   config,
		store:    store,
		uploader: uploader,
		mux:      mux,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Handler() http.Handler {
	return s.mux
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.Handle("/metrics", promhttp.Handler(), http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.JSONContent)

		r.HandleFunc("/api/cases", s.handleListCases, http.MethodGet)
		r.HandleFunc("/api/cases", s.handleAddCase, http.MethodPost)
		r.HandleFunc("/api/cases/:id"+idPattern, s.handleGetCase, http.MethodGet)
		r.HandleFunc("/api/cases/:id"+idPattern, s.handleUpdateCase, http.MethodPut)
		r.HandleFunc("/api/cases/:id"+idPattern, s.handleDeleteCase, http.MethodDelete)
		r.HandleFunc("/api/cases/:id"+idPattern+"/members", s.handleAddMember, http.MethodPost)
		r.HandleFunc("/api/cases/:id"+idPattern+"/hide", s.handleHideCase, http.MethodPost)
		r.HandleFunc("/api/cases/:id"+idPattern+"/restore", s.handleRestoreCase, http.MethodPost)
		r.HandleFunc("/api/cases/:id"+idPattern+"/media/:kind", s.handleSetCaseMedia, http.MethodPut)
		r.HandleFunc("/api/cases/:id"+idPattern+"/media/:kind", s.handleUploadCaseMedia, http.MethodPost)
		r.HandleFunc("/api/cases/:id"+idPattern+"/media/:kind", s.handleClearCaseMedia, http.MethodDelete)
		r.HandleFunc("/api/cases/:id"+idPattern+"/docs", s.handleAddCaseDoc, http.MethodPost)
		r.HandleFunc("/api/cases/:id"+idPattern+"/docs/:index"+idPattern, s.handleRemoveCaseDoc, http.MethodDelete)

		r.HandleFunc("/api/donations", s.handleListDonations, http.MethodGet)
		r.HandleFunc("/api/donations", s.handleRecordDonation, http.MethodPost)
		r.HandleFunc("/api/donations/sponsorships", s.handleRecordSponsorship, http.MethodPost)
		r.HandleFunc("/api/donations/:id"+idPattern, s.handleGetDonation, http.MethodGet)
		r.HandleFunc("/api/donations/:id"+idPattern, s.handleUpdateDonation, http.MethodPut)
		r.HandleFunc("/api/donations/:id"+idPattern, s.handleDeleteDonation, http.MethodDelete)

		r.HandleFunc("/api/expenses", s.handleListExpenses, http.MethodGet)
		r.HandleFunc("/api/expenses", s.handleRecordDisbursement, http.MethodPost)
		r.HandleFunc("/api/expenses/:id"+idPattern, s.handleGetExpense, http.MethodGet)
		r.HandleFunc("/api/expenses/:id"+idPattern, s.handleUpdateDisbursement, http.MethodPut)
		r.HandleFunc("/api/expenses/:id"+idPattern, s.handleDeleteDisbursement, http.MethodDelete)

		r.HandleFunc("/api/volunteers", s.handleListVolunteers, http.MethodGet)
		r.HandleFunc("/api/volunteers", s.handleAddVolunteer, http.MethodPost)
		r.HandleFunc("/api/volunteers/:id"+idPattern, s.handleUpdateVolunteer, http.MethodPut)
		r.HandleFunc("/api/volunteers/:id"+idPattern, s.handleDeleteVolunteer, http.MethodDelete)

		r.HandleFunc("/api/affidavits", s.handleListAffidavits, http.MethodGet)
		r.HandleFunc("/api/affidavits", s.handleAddAffidavit, http.MethodPost)
		r.HandleFunc("/api/affidavits/:id"+idPattern, s.handleDeleteAffidavit, http.MethodDelete)

		r.HandleFunc("/api/matches", s.handleFindMatches, http.MethodGet)
		r.HandleFunc("/api/search", s.handleSearch, http.MethodGet)
		r.HandleFunc("/api/summary", s.handleSummary, http.MethodGet)
		r.HandleFunc("/api/categories", s.handleCategories, http.MethodGet)
		r.HandleFunc("/api/reports", s.handleReport, http.MethodGet)

		r.HandleFunc("/api/data", s.handleExport, http.MethodGet)
		r.HandleFunc("/api/data", s.handleImport, http.MethodPut)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
