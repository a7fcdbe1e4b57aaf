package validators

import "testing"

func validShareRequest() *ShareRideRequest {
	return &ShareRideRequest{
		PosterName:      "Ravi Kumar",
		ContactNumber:   "9876543210",
		Origin:          "MG Road",
		Destination:     "Airport",
		DepartureTime:   "17:30",
		Vehicle:         "car",
		SeatingCapacity: 4,
		Gender:          "male",
	}
}

func TestValidateShareRideRequestAcceptsValid(t *testing.T) {
	if errs := ValidateShareRideRequest(validShareRequest()); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestSeatCeilings(t *testing.T) {
	cases := []struct {
		vehicle  string
		capacity int
		ok       bool
	}{
		{"bike", 2, true},
		{"bike", 3, false},
		{"car", 7, true},
		{"car", 8, false},
		{"auto", 6, true},
		{"auto", 7, false},
	}

	for _, tc := range cases {
		req := validShareRequest()
		req.Vehicle = tc.vehicle
		req.SeatingCapacity = tc.capacity

		errs := ValidateShareRideRequest(req)
		if tc.ok && len(errs) > 0 {
			t.Errorf("%s capacity %d rejected: %v", tc.vehicle, tc.capacity, errs)
		}
		if !tc.ok {
			found := false
			for _, e := range errs {
				if e.Tag == "seat_ceiling" {
					found = true
				}
			}
			if !found {
				t.Errorf("%s capacity %d accepted, want seat_ceiling error", tc.vehicle, tc.capacity)
			}
		}
	}
}

func TestValidateShareRideRequestRejectsBadTime(t *testing.T) {
	req := validShareRequest()
	req.DepartureTime = "25:61"

	errs := ValidateShareRideRequest(req)
	if len(errs) == 0 {
		t.Fatal("bad departure time accepted")
	}
}

func TestValidateShareRideRequestRejectsNonDigitContact(t *testing.T) {
	req := validShareRequest()
	req.ContactNumber = "98765abc10"

	errs := ValidateShareRideRequest(req)
	if len(errs) == 0 {
		t.Fatal("non-digit contact number accepted")
	}
}

func TestValidateShareRideRequestRejectsUnknownVehicle(t *testing.T) {
	req := validShareRequest()
	req.Vehicle = "truck"

	errs := ValidateShareRideRequest(req)
	if len(errs) == 0 {
		t.Fatal("unknown vehicle type accepted")
	}
}
