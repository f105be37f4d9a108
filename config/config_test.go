package config

import "testing"

func TestGetString(t *testing.T) {
	c := map[string]string{"SET": "value", "EMPTY": ""}

	if got := GetString(c, "SET", "fallback"); got != "value" {
		t.Errorf("GetString(SET) = %q", got)
	}
	if got := GetString(c, "EMPTY", "fallback"); got != "fallback" {
		t.Errorf("GetString(EMPTY) = %q, empty values should fall back", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q", got)
	}
	if got := GetString(nil, "ANY", "fallback"); got != "fallback" {
		t.Errorf("GetString on nil map = %q", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"NUM": "42", "BAD": "not-a-number"}

	if got := GetInt(c, "NUM", 7); got != 42 {
		t.Errorf("GetInt(NUM) = %d", got)
	}
	if got := GetInt(c, "BAD", 7); got != 7 {
		t.Errorf("GetInt(BAD) = %d, want fallback", got)
	}
	if got := GetInt(c, "MISSING", 7); got != 7 {
		t.Errorf("GetInt(MISSING) = %d", got)
	}
}

func TestSplit(t *testing.T) {
	c := map[string]string{"ORIGINS": "http://a.com, http://b.com ,,http://c.com"}

	got := Split(c, "ORIGINS", "*")
	want := []string{"http://a.com", "http://b.com", "http://c.com"}
	if len(got) != len(want) {
		t.Fatalf("Split = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Split[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := Split(c, "MISSING", "*"); len(got) != 1 || got[0] != "*" {
		t.Errorf("Split(MISSING) = %v, want [*]", got)
	}
}
