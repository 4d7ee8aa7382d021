package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Format rules for driver and supplier fields. These used to live only in
// the admin screens; the API now enforces them too so bad records cannot be
// written around the UI.
//
// Mobile is a local 10-digit number with a leading zero. VehicleID is two
// letters followed by four digits ("AB1234"). NIC accepts both the old
// 9-digit+V and the new 12-digit formats.
var (
	PersonNameRX    = regexp.MustCompile(`^[A-Za-z\s]+$`)
	StreetAddressRX = regexp.MustCompile(`^\d+\s*,\s*[A-Za-z\s]+,\s*[A-Za-z\s]+$`)
	MobileRX        = regexp.MustCompile(`^0\d{9}$`)
	VehicleIDRX     = regexp.MustCompile(`^[A-Za-z]{2}\d{4}$`)
	NICRX           = regexp.MustCompile(`^(\d{12}|\d{9}[vV])$`)
)

// Validator funcs registered on gin's binding engine under the tag names
// used in the handler input structs (person_name, street_address, etc).

func ValidatePersonName(fl validator.FieldLevel) bool {
	return PersonNameRX.MatchString(fl.Field().String())
}

func ValidateStreetAddress(fl validator.FieldLevel) bool {
	return StreetAddressRX.MatchString(fl.Field().String())
}

func ValidateMobile(fl validator.FieldLevel) bool {
	return MobileRX.MatchString(fl.Field().String())
}

func ValidateVehicleID(fl validator.FieldLevel) bool {
	return VehicleIDRX.MatchString(fl.Field().String())
}

func ValidateNIC(fl validator.FieldLevel) bool {
	return NICRX.MatchString(fl.Field().String())
}
