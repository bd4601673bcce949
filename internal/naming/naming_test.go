package naming

import (
	"testing"

	"github.com/nicolasfella/qtbridge/internal/models"
)

func TestCamelCase(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"data_changed", "dataChanged"},
		{"signal_rust_name", "signalRustName"},
		{"trivial", "trivial"},
		{"baseName", "baseName"},
		{"a_b_c", "aBC"},
		{"double__underscore", "doubleUnderscore"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := CamelCase(tc.input); got != tc.want {
			t.Errorf("CamelCase(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSignalName(t *testing.T) {
	// Derived from the source name when no override is present
	if got := SignalName(models.Name{Source: "data_changed"}); got != "dataChanged" {
		t.Errorf("Expected 'dataChanged', got %s", got)
	}

	// Explicit overrides win
	if got := SignalName(models.Name{Source: "existing_signal", Cxx: "baseName"}); got != "baseName" {
		t.Errorf("Expected 'baseName', got %s", got)
	}
}

func TestConnectName(t *testing.T) {
	if got := ConnectName(models.Name{Source: "data_changed"}); got != "dataChangedConnect" {
		t.Errorf("Expected 'dataChangedConnect', got %s", got)
	}

	// The override feeds the connect helper name as well
	if got := ConnectName(models.Name{Source: "signal_rust_name", Cxx: "signalCxxName"}); got != "signalCxxNameConnect" {
		t.Errorf("Expected 'signalCxxNameConnect', got %s", got)
	}
}

func TestFreeConnectName(t *testing.T) {
	name := models.Name{Source: "signal_rust_name"}
	if got := FreeConnectName("ObjRust", name); got != "ObjRust_signalRustNameConnect" {
		t.Errorf("Expected 'ObjRust_signalRustNameConnect', got %s", got)
	}

	// The owner prefix stays source-side even when the signal is renamed
	renamed := models.Name{Source: "signal_rust_name", Cxx: "signalCxxName"}
	if got := FreeConnectName("ObjRust", renamed); got != "ObjRust_signalCxxNameConnect" {
		t.Errorf("Expected 'ObjRust_signalCxxNameConnect', got %s", got)
	}
}
