package onboarding

import (
	"strings"
	"testing"

	"onboard/internal/domain/apperr"
)

func TestPreFlightLengthLimits(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"first name", func(s *Submission) { s.BasicInfo.FirstName = strings.Repeat("a", 51) }},
		{"last name", func(s *Submission) { s.BasicInfo.LastName = strings.Repeat("a", 51) }},
		{"email", func(s *Submission) { s.BasicInfo.Email = strings.Repeat("a", 45) + "@x.com" }},
		{"pin", func(s *Submission) {
			s.AddressInfo = &AddressInfo{CurrentAddress: &AddressSection{Pin: strings.Repeat("9", 11)}}
		}},
		{"address name", func(s *Submission) {
			s.AddressInfo = &AddressInfo{CurrentAddress: &AddressSection{Name: strings.Repeat("a", 51)}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := baseSubmission()
			tc.mutate(&sub)
			if err := PreFlight(sub); !apperr.IsInvalidArgument(err) {
				t.Fatalf("expected invalid argument for overlong %s, got %v", tc.name, err)
			}
		})
	}
}

func TestPreFlightPassesWithinLimits(t *testing.T) {
	sub := baseSubmission()
	sub.AddressInfo = &AddressInfo{
		CurrentAddress:   &AddressSection{Name: "home", Pin: "5000010"},
		PermanentAddress: &AddressSection{Name: "village", Pin: "5000020"},
	}
	if err := PreFlight(sub); err != nil {
		t.Fatalf("PreFlight: %v", err)
	}
}
