package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/logger"
)

// phonePattern accepts the Russian mobile/landline formats the site's forms
// allow: optional +7/8 prefix, then ten digits with optional spaces, dashes
// and parentheses.
var phonePattern = regexp.MustCompile(`^(\+7|8)?[\s\-]?\(?[489][0-9]{2}\)?[\s\-]?[0-9]{3}[\s\-]?[0-9]{2}[\s\-]?[0-9]{2}$`)

var (
	ErrLeadName    = errors.New("имя должно содержать минимум 2 символа")
	ErrLeadPhone   = errors.New("некорректный номер телефона")
	ErrLeadEmail   = errors.New("некорректный email")
	ErrLeadMessage = errors.New("сообщение должно содержать минимум 10 символов")
)

// Notifier is the hand-off for accepted leads (mail, messenger, CRM).
// The default implementation only logs; leads are not persisted.
type Notifier interface {
	NotifyLead(lead dto.LeadRequest, id string)
}

type logNotifier struct{}

func (logNotifier) NotifyLead(lead dto.LeadRequest, id string) {
	logger.InfoWithFields("new lead", logger.Fields{
		"lead_id": id,
		"name":    lead.Name,
		"phone":   lead.Phone,
		"source":  lead.Source,
	})
}

// LeadService validates and accepts lead-capture submissions.
type LeadService struct {
	notifier Notifier
}

func NewLeadService(notifier Notifier) *LeadService {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &LeadService{notifier: notifier}
}

// Validate applies the form rules: name of at least 2 runes, a valid
// Russian phone number, and optional email/message with their own minimums.
func (s *LeadService) Validate(lead dto.LeadRequest) error {
	if utf8.RuneCountInString(strings.TrimSpace(lead.Name)) < 2 {
		return ErrLeadName
	}
	if !phonePattern.MatchString(strings.TrimSpace(lead.Phone)) {
		return ErrLeadPhone
	}
	if lead.Email != "" {
		if _, err := mail.ParseAddress(lead.Email); err != nil {
			return ErrLeadEmail
		}
	}
	if lead.Message != "" && utf8.RuneCountInString(lead.Message) < 10 {
		return ErrLeadMessage
	}
	return nil
}

// Accept validates the lead, assigns it an ID and hands it to the notifier.
func (s *LeadService) Accept(lead dto.LeadRequest) (dto.LeadResponse, error) {
	if err := s.Validate(lead); err != nil {
		return dto.LeadResponse{}, err
	}

	id := uuid.NewString()
	s.notifier.NotifyLead(lead, id)
	return dto.LeadResponse{ID: id, Message: "заявка принята"}, nil
}
