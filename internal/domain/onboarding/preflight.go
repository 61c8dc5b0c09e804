package onboarding

import "onboard/internal/domain/apperr"

// Column widths the storage layer would reject. Checked up front so a
// failure here never consumes a primary-key sequence value.
const (
	maxNameLen        = 50
	maxEmailLen       = 50
	maxPinLen         = 10
	maxAddressNameLen = 50
)

// PreFlight re-checks string lengths that would otherwise fail at the
// storage layer after the employee row has already been written.
func PreFlight(sub Submission) error {
	basic := sub.BasicInfo
	if len(basic.FirstName) > maxNameLen {
		return apperr.InvalidArgumentf("first name must be at most %d characters", maxNameLen)
	}
	if len(basic.LastName) > maxNameLen {
		return apperr.InvalidArgumentf("last name must be at most %d characters", maxNameLen)
	}
	if len(basic.Email) > maxEmailLen {
		return apperr.InvalidArgumentf("email must be at most %d characters", maxEmailLen)
	}

	if sub.AddressInfo == nil {
		return nil
	}
	for _, addr := range []*AddressSection{sub.AddressInfo.CurrentAddress, sub.AddressInfo.PermanentAddress} {
		if addr == nil {
			continue
		}
		if len(addr.Pin) > maxPinLen {
			return apperr.InvalidArgumentf("address pin must be at most %d characters", maxPinLen)
		}
		if len(addr.Name) > maxAddressNameLen {
			return apperr.InvalidArgumentf("address name must be at most %d characters", maxAddressNameLen)
		}
	}
	return nil
}
