package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionTypeValid(t *testing.T) {
	for _, interactionType := range []InteractionType{
		InteractionTypePhoneCall, InteractionTypeWhatsApp, InteractionTypeWalkIn,
		InteractionTypeEmail, InteractionTypeSocialMedia,
	} {
		assert.True(t, interactionType.Valid(), string(interactionType))
	}
	assert.False(t, InteractionType("telegram").Valid())
	assert.False(t, InteractionType("").Valid())
}

func TestInteractionStatusValid(t *testing.T) {
	for _, status := range []InteractionStatus{
		InteractionStatusPending, InteractionStatusInProgress, InteractionStatusCompleted,
	} {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, InteractionStatus("archived").Valid())
}

func TestEncodeTags(t *testing.T) {
	assert.Equal(t, "[]", EncodeTags(nil))
	assert.Equal(t, "[]", EncodeTags([]string{}))
	assert.Equal(t, `["Ring","Wedding"]`, EncodeTags([]string{"Ring", "Wedding"}))
}

func TestDecodeTags(t *testing.T) {
	encoded := `["Ring","Gold"]`
	tags := DecodeTags(&encoded)
	require.Equal(t, []string{"Ring", "Gold"}, tags)

	assert.Nil(t, DecodeTags(nil))

	empty := ""
	assert.Nil(t, DecodeTags(&empty))
}

func TestDecodeTagsMalformed(t *testing.T) {
	malformed := `["Ring",`
	assert.Nil(t, DecodeTags(&malformed))

	notAnArray := `{"tag":"Ring"}`
	assert.Nil(t, DecodeTags(&notAnArray))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := []string{"Necklace", "Wedding", "Gold"}
	encoded := EncodeTags(original)
	assert.Equal(t, original, DecodeTags(&encoded))
}
