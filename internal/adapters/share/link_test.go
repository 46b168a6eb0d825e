package share

import "testing"

func TestDeepLink(t *testing.T) {
	tests := []struct {
		name string
		base string
		id   string
		want string
	}{
		{
			name: "plain base",
			base: "http://localhost:5174/",
			id:   "notebook",
			want: "http://localhost:5174/#notebook",
		},
		{
			name: "existing fragment replaced",
			base: "http://localhost:5174/#old",
			id:   "new",
			want: "http://localhost:5174/#new",
		},
		{
			name: "empty id strips fragment",
			base: "http://localhost:5174/#old",
			id:   "",
			want: "http://localhost:5174/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeepLink(tt.base, tt.id); got != tt.want {
				t.Errorf("DeepLink(%q, %q) = %q, want %q", tt.base, tt.id, got, tt.want)
			}
		})
	}
}
