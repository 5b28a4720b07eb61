package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/services"
)

func validLead() dto.LeadRequest {
	return dto.LeadRequest{
		Name:  "Анна",
		Phone: "+7 (953) 371-34-17",
	}
}

func TestLeadValidatePhones(t *testing.T) {
	svc := services.NewLeadService(nil)

	valid := []string{
		"+7 (953) 371-34-17",
		"89533713417",
		"8 953 371 34 17",
		"953-371-34-17",
	}
	for _, phone := range valid {
		lead := validLead()
		lead.Phone = phone
		assert.NoError(t, svc.Validate(lead), "phone %q", phone)
	}

	invalid := []string{
		"",
		"12345",
		"+7 (153) 371-34-17", // city code cannot start with 1
		"+7 (953) 371-34",    // too short
		"телефон",
	}
	for _, phone := range invalid {
		lead := validLead()
		lead.Phone = phone
		assert.ErrorIs(t, svc.Validate(lead), services.ErrLeadPhone, "phone %q", phone)
	}
}

func TestLeadValidateName(t *testing.T) {
	svc := services.NewLeadService(nil)

	lead := validLead()
	lead.Name = "Я"
	assert.ErrorIs(t, svc.Validate(lead), services.ErrLeadName)

	lead.Name = "  "
	assert.ErrorIs(t, svc.Validate(lead), services.ErrLeadName)

	lead.Name = "Ян"
	assert.NoError(t, svc.Validate(lead))
}

func TestLeadValidateOptionalFields(t *testing.T) {
	svc := services.NewLeadService(nil)

	lead := validLead()
	lead.Email = "не-почта"
	assert.ErrorIs(t, svc.Validate(lead), services.ErrLeadEmail)

	lead.Email = "anna@example.com"
	assert.NoError(t, svc.Validate(lead))

	lead.Message = "коротко"
	assert.ErrorIs(t, svc.Validate(lead), services.ErrLeadMessage)

	lead.Message = "Хочу ремонт двухкомнатной квартиры"
	assert.NoError(t, svc.Validate(lead))
}

type recordingNotifier struct {
	leads []string
}

func (r *recordingNotifier) NotifyLead(lead dto.LeadRequest, id string) {
	r.leads = append(r.leads, id)
}

func TestLeadAccept(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := services.NewLeadService(notifier)

	resp, err := svc.Accept(validLead())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, []string{resp.ID}, notifier.leads)

	bad := validLead()
	bad.Phone = "12345"
	_, err = svc.Accept(bad)
	assert.Error(t, err)
	assert.Len(t, notifier.leads, 1)
}
