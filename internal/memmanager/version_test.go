package memmanager

import "testing"

func TestCheckFormatCompatibility(t *testing.T) {
	ok, err := CheckFormatCompatibility("^1.0.0")
	if err != nil {
		t.Fatal(err)
	}

	if !ok {
		t.Fatalf("format %s should satisfy ^1.0.0", FormatVersion)
	}

	ok, err = CheckFormatCompatibility(">=2.0.0")
	if err != nil {
		t.Fatal(err)
	}

	if ok {
		t.Fatalf("format %s should not satisfy >=2.0.0", FormatVersion)
	}
}

func TestCheckFormatCompatibilityInvalidConstraint(t *testing.T) {
	if _, err := CheckFormatCompatibility("not-a-constraint"); err == nil {
		t.Fatal("expected an error for an invalid constraint")
	}
}
