package text_test

import (
	"testing"

	"github.com/aretw0/toolbelt/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Smith", "JS"},
		{"John", "J"},
		{"ana maria souza", "AS"},
		{"élodie", "É"},
		{"", ""},
		{"trailing ", "T"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Initials(tt.in))
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "Hello"},
		{"hello world", "Hello world"},
		{"hELLO", "HELLO"},
		{"ölçek", "Ölçek"},
		{"ßtraße", "SStraße"},
		{"1st", "1st"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Capitalize(tt.in))
		})
	}
}
