package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neervaani/neerhub/internal/models"
)

func TestValidatePassesValidInput(t *testing.T) {
	err := Validate(&models.GovernmentSchemesInput{Query: "crop insurance"})
	assert.NoError(t, err)
}

func TestValidateReportsFieldDetails(t *testing.T) {
	err := Validate(&models.GovernmentSchemesInput{Query: "ab"})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Details, 1)
	assert.Contains(t, verr.Details[0].Field, "Query")
	assert.Equal(t, "min", verr.Details[0].Rule)
	assert.Equal(t, "3", verr.Details[0].Value)
}

func TestValidateEnumRule(t *testing.T) {
	msg := &models.ChatMessage{Role: "narrator", Content: "hello"}
	err := Validate(msg)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "oneof", verr.Details[0].Rule)
}

func TestValidateDivesIntoNestedStructs(t *testing.T) {
	request := &models.ChatRequest{
		Query: "hello",
		History: []models.ChatMessage{
			{Role: "user", Content: "hi"},
			{Role: "model", Content: ""},
		},
	}
	err := Validate(request)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details[0].Field, "Content")
}

func TestValidateMinItems(t *testing.T) {
	output := &models.CropRecommenderOutput{}
	err := Validate(output)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}
