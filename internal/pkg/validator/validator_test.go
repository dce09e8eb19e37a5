package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidNIN(t *testing.T) {
	valid := []string{"109870123456789012"}
	invalid := []string{"10987012345678901", "1098701234567890123", "abcdefghabcdefghij", "10987012345678901a"}
	for _, nin := range valid {
		if !IsValidNIN(nin) {
			t.Errorf("IsValidNIN(%q) = false, want true", nin)
		}
	}
	for _, nin := range invalid {
		if IsValidNIN(nin) {
			t.Errorf("IsValidNIN(%q) = true, want false", nin)
		}
	}
}

func TestIsValidMatricule(t *testing.T) {
	valid := []string{"M-1024", "00017", "AB12"}
	invalid := []string{"", "ab", "M 1024", "M_1024", "123456789012345678901"}
	for _, m := range valid {
		if !IsValidMatricule(m) {
			t.Errorf("IsValidMatricule(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMatricule(m) {
			t.Errorf("IsValidMatricule(%q) = true, want false", m)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nom", Message: "required"},
		{Field: "date_debut", Message: "invalid"},
	}
	got := errs.Error()
	want := "nom: required; date_debut: invalid"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nom", Message: "required"},
		{Field: "date_debut", Message: "invalid"},
	}
	got := errs.ToMap()
	want := map[string]string{"nom": "required", "date_debut": "invalid"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestValidationErrors_Helpers(t *testing.T) {
	var errs ValidationErrors
	errs.Required("poste", "  ")
	errs.Date("date_debut", "2024/01/01")
	errs.DateRange("date_debut", "2024-05-01", "date_fin", "2024-04-30")
	errs.OneOf("sexe", "X", []string{"M", "F"})
	errs.MaxLength("nom", "abcdef", 5)

	got := errs.ToMap()
	if len(got) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(got), got)
	}
	if got["poste"] != "poste is required" {
		t.Errorf("poste message = %q", got["poste"])
	}
	if got["date_fin"] != "date_fin must not be before date_debut" {
		t.Errorf("date_fin message = %q", got["date_fin"])
	}

	var none ValidationErrors
	none.Required("poste", "Teller")
	none.Date("date_debut", "")
	none.DateRange("date_debut", "2024-01-01", "date_fin", "")
	none.OneOf("sexe", "", []string{"M", "F"})
	if err := none.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
