package clinic

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
)

const knowledgeBaseKey = "knowledge_base"

// Service serves the static clinic surface the voice agent reads from:
// the knowledge base document, the roster with the hours template, and
// the current date.
type Service struct {
	kbPath   string
	cache    *gocache.Cache
	roster   *model.Roster
	template model.DaySchedule
	now      func() time.Time
}

func NewService(kbPath string, cacheTTL time.Duration, roster *model.Roster, template model.DaySchedule) *Service {
	return &Service{
		kbPath:   kbPath,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
		roster:   roster,
		template: template,
		now:      time.Now,
	}
}

// KnowledgeBase returns the clinic knowledge-base document verbatim. The
// file read is cached; the document only changes on redeploy.
func (s *Service) KnowledgeBase() (json.RawMessage, error) {
	if cached, ok := s.cache.Get(knowledgeBaseKey); ok {
		return cached.(json.RawMessage), nil
	}

	data, err := os.ReadFile(s.kbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("knowledge base %s is not valid JSON", s.kbPath)
	}

	doc := json.RawMessage(data)
	s.cache.SetDefault(knowledgeBaseKey, doc)
	return doc, nil
}

// DoctorSchedule pairs a roster entry with its working day names.
type DoctorSchedule struct {
	Doctor string   `json:"doctor"`
	Days   []string `json:"days"`
}

// SchedulesResponse describes the full roster and the shared template.
type SchedulesResponse struct {
	Hours   model.DaySchedule `json:"hours"`
	Doctors []DoctorSchedule  `json:"doctors"`
}

// Schedules returns the roster and hours template as configured.
func (s *Service) Schedules() SchedulesResponse {
	resp := SchedulesResponse{Hours: s.template}
	for _, doc := range s.roster.Doctors() {
		resp.Doctors = append(resp.Doctors, DoctorSchedule{
			Doctor: doc.Name,
			Days:   doc.DayNames(),
		})
	}
	return resp
}

// TodayResponse reports the current day in the forms the voice agent uses.
type TodayResponse struct {
	Day           string `json:"day"`
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
}

// Today returns the current day name and date.
func (s *Service) Today() TodayResponse {
	today := s.now()
	return TodayResponse{
		Day:           today.Weekday().String(),
		Date:          today.Format(model.DateFormat),
		FormattedDate: today.Format("January 2, 2006"),
	}
}
