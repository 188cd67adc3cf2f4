package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/secondopinion/internal/consent"
	"github.com/ziadkadry99/secondopinion/internal/content"
	"github.com/ziadkadry99/secondopinion/internal/doctors"
	"github.com/ziadkadry99/secondopinion/internal/initiative"
)

type homeData struct {
	Home     content.HomePage
	Segments []content.Segment
	Featured *doctors.Profile
}

type joinData struct {
	Submission initiative.Submission
	Consent    consent.Form
	Error      string
}

func (s *Site) homeData(r *http.Request) homeData {
	home := content.Home()
	data := homeData{Home: home, Segments: content.Segments()}
	if home.FeaturedID != "" {
		p, err := s.doctors.Fetch(r.Context(), home.FeaturedID)
		if err != nil {
			s.logger.Warn("fetching featured doctor", zap.String("id", home.FeaturedID), zap.Error(err))
		} else {
			data.Featured = p
		}
	}
	return data
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "home", s.newPage("", "/", s.homeData(r)))
}

func (s *Site) handleSegment(w http.ResponseWriter, r *http.Request) {
	seg, ok := content.FindSegment(chi.URLParam(r, "slug"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, http.StatusOK, "segment", s.newPage(seg.Title, "/partners/"+seg.Slug, seg))
}

func (s *Site) handleLegalIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "legal-index", s.newPage("Legal", "/legal", nil))
}

func (s *Site) handleLegalDoc(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.legal.Get(chi.URLParam(r, "slug"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, http.StatusOK, "legal-doc", s.newPage(doc.Title, "/legal/"+doc.Slug, doc))
}

func (s *Site) handleDoctor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.doctors.Fetch(r.Context(), id)
	if errors.Is(err, doctors.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("fetching doctor", zap.String("id", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, http.StatusOK, "doctor", s.newPage("Dr. "+p.Name, "/doctors/"+p.ID, p))
}

func (s *Site) handleJoinForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "join", s.newPage("Join the initiative", "/join", joinData{}))
}

func (s *Site) handleJoinSubmit(w http.ResponseWriter, r *http.Request) {
	form, err := consent.ParseForm(r)
	if err != nil {
		s.renderJoin(w, http.StatusBadRequest, joinData{Error: "We could not read the form. Please try again."})
		return
	}

	data := joinData{
		Submission: initiative.Submission{
			Name:         r.PostFormValue("name"),
			Email:        r.PostFormValue("email"),
			Organization: r.PostFormValue("organization"),
			Role:         r.PostFormValue("role"),
			Message:      r.PostFormValue("message"),
		},
		Consent: form,
	}

	if s.initiative == nil {
		data.Error = "Sign-ups are temporarily unavailable."
		s.renderJoin(w, http.StatusServiceUnavailable, data)
		return
	}

	err = consent.Require(form, func() error {
		return s.initiative.Relay(r.Context(), data.Submission)
	})

	var respErr *initiative.ResponseError
	switch {
	case err == nil:
		s.render(w, http.StatusOK, "thanks", s.newPage("Thank you", "/join", nil))
	case errors.Is(err, consent.ErrIncomplete):
		data.Error = "Please accept all three statements to continue."
		s.renderJoin(w, http.StatusBadRequest, data)
	case errors.Is(err, initiative.ErrInvalid):
		data.Error = err.Error()
		s.renderJoin(w, http.StatusBadRequest, data)
	case errors.As(err, &respErr):
		// The sign-up service's own message is shown as-is.
		data.Error = respErr.Error()
		s.renderJoin(w, http.StatusBadGateway, data)
	default:
		s.logger.Error("relaying initiative submission", zap.Error(err))
		data.Error = "We could not reach our sign-up service. Please try again later."
		s.renderJoin(w, http.StatusBadGateway, data)
	}
}

func (s *Site) renderJoin(w http.ResponseWriter, status int, data joinData) {
	s.render(w, status, "join", s.newPage("Join the initiative", "/join", data))
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "not-found", s.newPage("Page not found", r.URL.Path, nil))
}
