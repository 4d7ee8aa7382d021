package client

import (
	"regexp"
)

// Form-field formats, duplicated from the server so callers can validate
// before spending a round trip. Keep in sync with internal/models.
var (
	personNameRX    = regexp.MustCompile(`^[A-Za-z\s]+$`)
	streetAddressRX = regexp.MustCompile(`^\d+\s*,\s*[A-Za-z\s]+,\s*[A-Za-z\s]+$`)
	mobileRX        = regexp.MustCompile(`^0\d{9}$`)
	vehicleIDRX     = regexp.MustCompile(`^[A-Za-z]{2}\d{4}$`)
	nicRX           = regexp.MustCompile(`^(\d{12}|\d{9}[vV])$`)
	emailRX         = regexp.MustCompile(`^[a-zA-Z][\w.-]*@[a-zA-Z]+\.[a-zA-Z]{2,}$`)
)
