package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderSubmission(t *testing.T) {

	testCases := []struct {
		name        string
		inName      string
		inContact   string
		inDetails   string
		wantMissing []string
		wantTooLong []string
		want        Submission
	}{
		{name: "valid", inName: "Ann", inContact: "@ann", want: Submission{Name: "Ann", Contact: "@ann"}},
		{name: "valid with details", inName: "Ann", inContact: "@ann", inDetails: "landing page", want: Submission{Name: "Ann", Contact: "@ann", Details: "landing page"}},
		{name: "trims", inName: "  Ann ", inContact: "\t@ann\n", inDetails: " x ", want: Submission{Name: "Ann", Contact: "@ann", Details: "x"}},
		{name: "missing name", inContact: "@bob", wantMissing: []string{"name"}},
		{name: "missing contact", inName: "Bob", wantMissing: []string{"contact"}},
		{name: "missing both", wantMissing: []string{"name", "contact"}},
		{name: "whitespace name", inName: "   ", inContact: "@bob", wantMissing: []string{"name"}},
		{name: "long name", inName: strings.Repeat("a", MaxNameLength+1), inContact: "@bob", wantTooLong: []string{"name"}},
		{name: "long details", inName: "Bob", inContact: "@bob", inDetails: strings.Repeat("д", MaxDetailsLength+1), wantTooLong: []string{"details"}},
		{name: "unicode at limit", inName: strings.Repeat("я", MaxNameLength), inContact: "@bob", want: Submission{Name: strings.Repeat("я", MaxNameLength), Contact: "@bob"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OrderSubmission(tc.inName, tc.inContact, tc.inDetails)

			if tc.wantMissing == nil && tc.wantTooLong == nil {
				assert.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}

			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tc.wantMissing, verr.Missing)
				assert.Equal(t, tc.wantTooLong, verr.TooLong)
				assert.Equal(t, tc.wantMissing != nil, verr.HasMissing())
			}
			assert.Equal(t, Submission{}, got)
		})
	}
}
