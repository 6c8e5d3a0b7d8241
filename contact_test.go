package cvbot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienn/cvbot"
)

func TestContactInfo_Validate(t *testing.T) {
	t.Parallel()

	contacts := cvbot.ContactInfo{Email: "jane@example.com", Phone: "+48 123 456 789"}

	require.NoError(t, contacts.Validate())
}

func TestContactInfo_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contacts cvbot.ContactInfo
	}{
		{"missing email", cvbot.ContactInfo{Phone: "+48 123 456 789"}},
		{"missing phone", cvbot.ContactInfo{Email: "jane@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.contacts.Validate()

			require.Error(t, err)
			assert.Equal(t, cvbot.EINVALID, cvbot.ErrorCode(err))
		})
	}
}
