package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) fieldErrors(err error) map[string][]string {
	s.Require().NotNil(err)
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	return fields
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("Adjective", "is unknown").
		Fieldf("Count", "must be between %d and %d", 1, 50).
		RequiredField("OwnerID").
		Field("OwnerID", "is too long")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"validation failed: Adjective: is unknown; Count: must be between 1 and 50; "+
			"OwnerID: is required, is too long",
		errors.GetMessage(err),
	)

	fields := s.fieldErrors(err)
	s.Assert().Len(fields, 3)
	s.Assert().Equal([]string{"is required", "is too long"}, fields["OwnerID"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "player-1", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  player-1  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("OwnerID", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("HistoryLimit", 0, 1, 100, vb)
	errors.ValidateRange("Count", 10, 1, 50, vb)
	errors.ValidateRange("GRPCPort", 70000, 1, 65535, vb)

	fields := s.fieldErrors(vb.Build())
	s.Assert().Contains(fields["HistoryLimit"][0], "must be between 1 and 100")
	s.Assert().Contains(fields["GRPCPort"][0], "must be between 1 and 65535")
	s.Assert().NotContains(fields, "Count")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	formats := []string{"json", "text"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("LogFormat", "xml", formats, vb)
	errors.ValidateEnum("OtherFormat", "json", formats, vb)

	fields := s.fieldErrors(vb.Build())
	s.Assert().Contains(fields["LogFormat"][0], "must be one of: json, text")
	s.Assert().NotContains(fields, "OtherFormat")
}
