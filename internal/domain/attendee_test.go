package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttendeeStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    AttendeeStatus
		wantErr bool
	}{
		{in: "CONFIRMED", want: AttendeeStatusConfirmed},
		{in: "confirmed", want: AttendeeStatusConfirmed},
		{in: "  invited ", want: AttendeeStatusInvited},
		{in: "Declined", want: AttendeeStatusDeclined},
		{in: "pending", want: AttendeeStatusPending},
		{in: "maybe", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAttendeeStatus(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
