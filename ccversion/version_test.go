package ccversion

import "testing"

func TestCheckCompatibleWithinRange(t *testing.T) {
	ok, err := CheckCompatible(">=1.0.0, <2.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("TraceABI %s should satisfy >=1.0.0, <2.0.0", TraceABI)
	}
}

func TestCheckCompatibleOutsideRange(t *testing.T) {
	ok, err := CheckCompatible(">=2.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("TraceABI %s should not satisfy >=2.0.0", TraceABI)
	}
}

func TestCheckCompatibleRejectsMalformedConstraint(t *testing.T) {
	if _, err := CheckCompatible("not a constraint"); err == nil {
		t.Fatal("expected an error for a malformed constraint string")
	}
}
