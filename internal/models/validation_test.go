package models

import (
	"testing"
)

func TestMobileFormat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0712345678", true},
		{"0112223344", true},
		{"712345678", false},  // no leading 0
		{"07123456789", false}, // too long
		{"071234567", false},   // too short
		{"07123A5678", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := MobileRX.MatchString(tc.in); got != tc.want {
			t.Errorf("MobileRX.MatchString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestVehicleIDFormat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"AB1234", true},
		{"xy9876", true},
		{"A1234", false},   // only one letter
		{"AB123", false},   // too few digits
		{"AB12345", false}, // too many digits
		{"1234AB", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := VehicleIDRX.MatchString(tc.in); got != tc.want {
			t.Errorf("VehicleIDRX.MatchString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNICFormat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"200012345678", true},
		{"987654321V", true},
		{"987654321v", true},
		{"987654321", false},    // 9 digits, no V
		{"20001234567", false},  // 11 digits
		{"987654321X", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := NICRX.MatchString(tc.in); got != tc.want {
			t.Errorf("NICRX.MatchString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPersonNameFormat(t *testing.T) {
	if !PersonNameRX.MatchString("Kasun Perera") {
		t.Error("expected plain name to pass")
	}
	if PersonNameRX.MatchString("Kasun 2nd") {
		t.Error("expected digits in name to fail")
	}
}

func TestStreetAddressFormat(t *testing.T) {
	if !StreetAddressRX.MatchString("12, Galle Road, Colombo") {
		t.Error("expected 'number, street, city' to pass")
	}
	if StreetAddressRX.MatchString("Galle Road Colombo") {
		t.Error("expected comma-less address to fail")
	}
}
