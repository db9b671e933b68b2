package workforce_test

import (
	"strings"
	"testing"

	"github.com/AndreFCTeles/ElectrexAPI/internal/workforce"
	workforceerrors "github.com/AndreFCTeles/ElectrexAPI/internal/workforce/errors"

	"github.com/stretchr/testify/assert"
)

func TestEventID_RoundTrip(t *testing.T) {
	cases := []workforce.EventID{
		{WorkerID: "1", TypeCode: "1", Suffix: "abc"},
		{WorkerID: "42", TypeCode: "2", Suffix: "f81d4fae-7dec-11d0-a765-00a0c91e6bf6"},
		{WorkerID: "7", TypeCode: "9", Suffix: "x"},
	}

	for _, want := range cases {
		got, err := workforce.ParseEventID(want.String())
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEventID_SuffixMayContainDelimiter(t *testing.T) {
	// uuid suffixes carry hyphens; positional decoding must keep them whole
	id := workforce.NewEventID("12", workforce.TypeOffDay)
	assert.True(t, strings.Contains(id.Suffix, "-"))

	got, err := workforce.ParseEventID(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestEventID_TypeClassification(t *testing.T) {
	assert.True(t, workforce.EventID{TypeCode: "1"}.IsVacation())
	assert.False(t, workforce.EventID{TypeCode: "2"}.IsVacation())
	// any non-"1" code is an off-day
	assert.False(t, workforce.EventID{TypeCode: "3"}.IsVacation())
}

func TestEventID_UniqueSuffixes(t *testing.T) {
	a := workforce.NewEventID("1", workforce.TypeVacation)
	b := workforce.NewEventID("1", workforce.TypeVacation)
	assert.NotEqual(t, a.Suffix, b.Suffix)
}

func TestParseEventID_Malformed(t *testing.T) {
	for _, token := range []string{"", "1", "1-2", "--", "1--", "-1-abc"} {
		_, err := workforce.ParseEventID(token)
		assert.ErrorIs(t, err, workforceerrors.ErrMalformedEventID, "token %q", token)
	}
}
