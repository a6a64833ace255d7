package naming

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"name", []string{"name"}},
		{"OrderID", []string{"order", "id"}},
		{"customerName", []string{"customer", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"home_address", []string{"home", "address"}},
		{"home-address", []string{"home", "address"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStrategies(t *testing.T) {
	tests := []struct {
		strategy *Strategy
		in       string
		want     string
	}{
		{Identity, "homeAddress", "homeAddress"},
		{SnakeCase, "homeAddress", "home_address"},
		{SnakeCase, "OrderID", "order_id"},
		{KebabCase, "homeAddress", "home-address"},
		{CamelCase, "home_address", "homeAddress"},
		{CamelCase, "order_id", "orderId"},
	}

	for _, tt := range tests {
		t.Run(tt.strategy.Name()+"_"+tt.in, func(t *testing.T) {
			if got := tt.strategy.Apply(tt.in); got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.strategy.Name(), tt.in, got, tt.want)
			}

			// Second application hits the memo; result must not change.
			if got := tt.strategy.Apply(tt.in); got != tt.want {
				t.Errorf("memoized %s(%q) = %q, want %q", tt.strategy.Name(), tt.in, got, tt.want)
			}
		})
	}
}

func TestByName(t *testing.T) {
	s, ok := ByName("snake_case")
	if !ok || s != SnakeCase {
		t.Fatalf("ByName(snake_case) = %v, %v", s, ok)
	}

	if _, ok := ByName("screaming"); ok {
		t.Fatal("ByName(screaming) should not resolve")
	}
}
