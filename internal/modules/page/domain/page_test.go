package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
)

func TestVariantOrDefault(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Variant
	}{
		{input: "blog", expected: domain.VariantBlog},
		{input: "BLOG", expected: domain.VariantBlog},
		{input: "top", expected: domain.VariantTop},
		{input: "", expected: domain.VariantTop},
		{input: "about", expected: domain.VariantTop},
		{input: "blog/2024", expected: domain.VariantTop},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.VariantOrDefault(tt.input))
		})
	}
}

func TestPageStale(t *testing.T) {
	generated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Page{Variant: domain.VariantTop, GeneratedAt: generated}

	assert.False(t, p.Stale(generated.Add(9*time.Minute), 10*time.Minute))
	assert.True(t, p.Stale(generated.Add(10*time.Minute), 10*time.Minute))
}
