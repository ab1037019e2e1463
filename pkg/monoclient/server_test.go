package monoclient

import "testing"

func TestAPIServerURLJoin(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{
			name: "plain join",
			base: "https://api.monobank.ua",
			path: "/bank/currency",
			want: "https://api.monobank.ua/bank/currency",
		},
		{
			name: "trailing slash on the base",
			base: "https://api.monobank.ua/",
			path: "/bank/currency",
			want: "https://api.monobank.ua/bank/currency",
		},
		{
			name: "missing leading slash on the path",
			base: "https://api.monobank.ua",
			path: "bank/currency",
			want: "https://api.monobank.ua/bank/currency",
		},
		{
			name: "both sides padded",
			base: " https://api.monobank.ua// ",
			path: "//bank/currency",
			want: "https://api.monobank.ua/bank/currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := APIServerFromBase(tt.base).URL(tt.path); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestProductionServer(t *testing.T) {
	if got := Production.URL("/personal/client-info"); got != "https://api.monobank.ua/personal/client-info" {
		t.Fatalf("unexpected production URL: %q", got)
	}
}
