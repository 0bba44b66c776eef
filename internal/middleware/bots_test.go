package middleware

import (
	"encoding/json"
	"testing"
)

func TestIsSocialCrawler(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", true},
		{"Twitterbot/1.0", true},
		{"WhatsApp/2.19.81 A", true},
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36", false},
		{"curl/8.4.0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSocialCrawler(tt.ua); got != tt.want {
			t.Fatalf("IsSocialCrawler(%q) = %v, want %v", tt.ua, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"Practice Name"`, "Practice Name"},
		{`{"path":"/hero.webp"}`, "/hero.webp"},
		{`{"url":"https://cdn.test/x.webp"}`, "https://cdn.test/x.webp"},
		{`{"other":"field"}`, ""},
		{`42`, ""},
		{`["a","b"]`, ""},
	}
	for _, tt := range tests {
		if got := configString(json.RawMessage(tt.raw)); got != tt.want {
			t.Fatalf("configString(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
