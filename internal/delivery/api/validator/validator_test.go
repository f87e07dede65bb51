package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title string `validate:"notblank"`
	Blood string `validate:"omitempty,bloodgroup"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   sample
		wantErr bool
	}{
		{name: "valid", input: sample{Title: "Blood needed", Blood: "O+"}},
		{name: "blood group case and spaces", input: sample{Title: "x", Blood: " ab- "}},
		{name: "no blood group", input: sample{Title: "x"}},
		{name: "blank title", input: sample{Title: "   "}, wantErr: true},
		{name: "unknown blood group", input: sample{Title: "x", Blood: "C+"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
