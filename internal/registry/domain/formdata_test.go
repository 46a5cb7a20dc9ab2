package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validForm() FormData {
	return FormData{
		Issuer:    "1st Army Corps",
		RefNumber: "F.100/2024",
		DocDate:   "2024-01-10",
		Subject:   "Exercise planning",
		EntryDate: "2024-01-15",
		Recipient: "General Staff",
		SIC:       "ABC",
	}
}

func TestFormData_Validate_AllCategories(t *testing.T) {
	form := validForm()
	for _, category := range Categories() {
		require.NoError(t, form.Validate(category), "complete form should validate for %s", category)
	}
}

func TestFormData_Validate_BaseRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*FormData)
	}{
		{"issuer", func(f *FormData) { f.Issuer = "" }},
		{"refNumber", func(f *FormData) { f.RefNumber = "" }},
		{"docDate", func(f *FormData) { f.DocDate = "" }},
		{"subject", func(f *FormData) { f.Subject = "" }},
		{"entryDate", func(f *FormData) { f.EntryDate = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			err := form.Validate(CommonIncoming)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestFormData_Validate_RecipientOnlyForOutgoing(t *testing.T) {
	form := validForm()
	form.Recipient = ""

	require.NoError(t, form.Validate(CommonIncoming), "incoming does not need a recipient")

	err := form.Validate(CommonOutgoing)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "recipient", verr.Field)
}

func TestFormData_Validate_SICOnlyForSignals(t *testing.T) {
	form := validForm()
	form.SIC = ""

	require.NoError(t, form.Validate(CommonOutgoing), "common class does not need a SIC")
	require.NoError(t, form.Validate(ConfidentialIncoming))

	err := form.Validate(SignalsIncoming)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "sic", verr.Field)
}

func TestNormalizeOffices_DedupesPreservingOrder(t *testing.T) {
	normalized, err := NormalizeOffices([]Office{OfficeThird, OfficeFirst, OfficeThird, OfficeGDY, OfficeFirst})
	require.NoError(t, err)
	require.Equal(t, []Office{OfficeThird, OfficeFirst, OfficeGDY}, normalized)
}

func TestNormalizeOffices_Empty(t *testing.T) {
	_, err := NormalizeOffices(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "offices", verr.Field)
}

func TestNormalizeOffices_Unknown(t *testing.T) {
	_, err := NormalizeOffices([]Office{OfficeFirst, Office("office-9")})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "offices", verr.Field)
}

func TestParseOffice(t *testing.T) {
	for _, o := range Offices() {
		parsed, err := ParseOffice(string(o))
		require.NoError(t, err)
		require.Equal(t, o, parsed)
	}

	_, err := ParseOffice("office-9")
	require.Error(t, err)
}
