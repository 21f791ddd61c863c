package geo

import "testing"

func TestDecodeStatusRoundTrip(t *testing.T) {
	known := []Status{StatusOffline, StatusAvailable, StatusBusy, StatusEnRoute}

	for _, s := range known {
		got := DecodeStatus(int32(s))
		if got != s {
			t.Errorf("DecodeStatus(%d) = %v, want %v", s, got, s)
		}
	}
}

func TestDecodeStatusUnknownDefaultsToOffline(t *testing.T) {
	for _, code := range []int32{-1, 4, 99, 1000} {
		if got := DecodeStatus(code); got != StatusOffline {
			t.Errorf("DecodeStatus(%d) = %v, want StatusOffline", code, got)
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusOffline:   "offline",
		StatusAvailable: "available",
		StatusBusy:      "busy",
		StatusEnRoute:   "en_route",
		Status(42):      "offline",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}
