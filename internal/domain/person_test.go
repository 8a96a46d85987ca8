package domain_test

import (
	"testing"
	"time"

	"go-hrms-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAppendActivityRoundsToOneDecimal(t *testing.T) {
	p := &domain.Person{
		Role:         domain.RoleEmployee,
		EmployeeData: &domain.EmployeeData{HireDate: time.Now()},
	}

	score := p.AppendActivity(domain.Activity{Performance: 4})
	assert.Equal(t, "4.0", score)

	score = p.AppendActivity(domain.Activity{Performance: 5})
	assert.Equal(t, "4.5", score)

	score = p.AppendActivity(domain.Activity{Performance: 5})
	// mean of 4,5,5 = 4.666...
	assert.Equal(t, "4.7", score)
	assert.Equal(t, "4.7", p.EmployeeData.PerformanceScore)
}

func TestRoleViewsEnforceSubObjects(t *testing.T) {
	candidate := &domain.Person{
		ID:            "p1",
		Role:          domain.RoleCandidate,
		CandidateData: &domain.CandidateData{},
	}
	_, err := candidate.AsCandidate()
	assert.NoError(t, err)
	_, err = candidate.AsEmployee()
	assert.Error(t, err)

	malformed := &domain.Person{ID: "p2", Role: domain.RoleEmployee}
	_, err = malformed.AsEmployee()
	assert.Error(t, err)
}

func TestLetterValidateDetails(t *testing.T) {
	offer := &domain.Letter{
		Type:  domain.LetterOffer,
		Offer: &domain.OfferDetails{Salary: "90000", JoiningDate: "2026-10-01"},
	}
	assert.NoError(t, offer.ValidateDetails())

	missingSalary := &domain.Letter{
		Type:  domain.LetterOffer,
		Offer: &domain.OfferDetails{JoiningDate: "2026-10-01"},
	}
	assert.Error(t, missingSalary.ValidateDetails())

	wrongVariant := &domain.Letter{
		Type:        domain.LetterOffer,
		Appointment: &domain.AppointmentDetails{AppointmentDate: "2026-10-01", ReportingTime: "09:00"},
	}
	assert.Error(t, wrongVariant.ValidateDetails())

	unknownType := &domain.Letter{Type: domain.LetterType("memo")}
	assert.Error(t, unknownType.ValidateDetails())
}
