package submission_test

import (
	"testing"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
	"github.com/stretchr/testify/assert"
)

func TestStatusNames(t *testing.T) {
	tests := []struct {
		status submission.StatusType
		want   string
	}{
		{submission.StatusUploaded, "Uploaded"},
		{submission.StatusValidated, "Validated"},
		{submission.StatusEMLIngested, "EML Ingested"},
		{submission.StatusEMLToJSON, "EML To JSON"},
		{submission.StatusMetadataToES, "Metadata To ES"},
		{submission.StatusNormalized, "Normalized"},
		{submission.StatusSpatialTransformUnsecure, "Spatial Transform Unsecure"},
		{submission.StatusSpatialTransformSecure, "Spatial Transform Secure"},
		{submission.StatusFailedIngestion, "Failed Ingestion"},
		{submission.StatusFailedUpload, "Failed Upload"},
		{submission.StatusFailedValidation, "Failed Validation"},
		{submission.StatusFailedEMLIngestion, "Failed EML Ingestion"},
		{submission.StatusFailedEMLToJSON, "Failed EML To JSON"},
		{submission.StatusFailedMetadataToES, "Failed Metadata To ES"},
		{submission.StatusFailedNormalization, "Failed Normalization"},
		{submission.StatusFailedSpatialTransformUnsecure, "Failed Spatial Transform Unsecure"},
		{submission.StatusFailedSpatialTransformSecure, "Failed Spatial Transform Secure"},
		{submission.StatusSystemError, "System Error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
		assert.True(t, tt.status.IsValid())
	}
}

func TestStatusUnknownInvalid(t *testing.T) {
	assert.False(t, submission.StatusUnknown.IsValid())
	assert.Empty(t, submission.StatusUnknown.String())
	assert.False(t, submission.StatusType(999).IsValid())
}

func TestAllStatusTypes(t *testing.T) {
	all := submission.AllStatusTypes()
	assert.Len(t, all, 24)
	seen := make(map[string]bool)
	for _, s := range all {
		assert.True(t, s.IsValid())
		assert.False(t, seen[s.String()], "duplicate name %q", s)
		seen[s.String()] = true
	}
}

func TestMessageTypes(t *testing.T) {
	assert.Equal(t, "Notice", submission.MessageNotice.String())
	assert.Equal(t, "Error", submission.MessageError.String())
	assert.Equal(t, "Warning", submission.MessageWarning.String())
	assert.Equal(t, "Debug", submission.MessageDebug.String())
	assert.False(t, submission.MessageUnknown.IsValid())
	assert.Len(t, submission.AllMessageTypes(), 4)
}
