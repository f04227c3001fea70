package main

import (
	"strings"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"https kept", "https://example.com/a", "https://example.com/a", false},
		{"http kept", "http://example.com/a", "http://example.com/a", false},
		{"scheme filled in", "example.com/a", "https://example.com/a", false},
		{"ftp rejected", "ftp://example.com/a", "", true},
		{"missing host rejected", "https:///path-only", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("normalizeURL(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeURL(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("normalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces become hyphens", "The Slow Leak", "the-slow-leak"},
		{"punctuation collapsed", "Water: A History, Part 2!", "water-a-history-part-2"},
		{"empty falls back", "???", "article"},
		{"long titles truncated", strings.Repeat("word ", 40), strings.Trim(strings.Repeat("word-", 16), "-")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugify(tt.input); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
