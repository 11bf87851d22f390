// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int32
		wantErr bool
	}{
		{name: "plain", input: "123456", want: 123456},
		{name: "surrounding spaces", input: "  42 ", want: 42},
		{name: "max int32", input: "2147483647", want: 2147483647},
		{name: "min int32", input: "-2147483648", want: -2147483648},
		{name: "above range", input: "2147483648", wantErr: true},
		{name: "below range", input: "-2147483649", wantErr: true},
		{name: "letters", input: "12ab", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "float", input: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAPIID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAPIID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentialsValidator_Validate(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: models.Credentials{APIID: 1, APIHash: "h"}},
		{name: "valid pointer", obj: &models.Credentials{APIID: 1, APIHash: "h"}},
		{name: "zero id", obj: models.Credentials{APIHash: "h"}, wantErr: ErrInvalidAPIID},
		{name: "blank hash", obj: models.Credentials{APIID: 1, APIHash: "  "}, wantErr: ErrEmptyAPIHash},
		{name: "only id field checked", obj: models.Credentials{APIID: 1}, fields: []string{FieldAPIID}},
		{name: "unknown field", obj: models.Credentials{APIID: 1, APIHash: "h"}, fields: []string{"phone"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: "creds", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
