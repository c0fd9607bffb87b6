package submission

// StatusType is the closed set of submission status values. Every
// pipeline step appends exactly one status row; a failing step appends
// its failure counterpart plus an error message row.
type StatusType int

const (
	StatusUnknown StatusType = iota

	// Terminal states
	StatusPublished
	StatusRejected
	StatusSystemError

	// Success states
	StatusOutDatedRecord
	StatusIngested
	StatusUploaded
	StatusValidated
	StatusSecured
	StatusEMLIngested
	StatusEMLToJSON
	StatusMetadataToES
	StatusNormalized
	StatusSpatialTransformUnsecure
	StatusSpatialTransformSecure

	// Failure states
	StatusFailedIngestion
	StatusFailedUpload
	StatusFailedValidation
	StatusFailedSecurity
	StatusFailedEMLIngestion
	StatusFailedEMLToJSON
	StatusFailedMetadataToES
	StatusFailedNormalization
	StatusFailedSpatialTransformUnsecure
	StatusFailedSpatialTransformSecure
)

var statusNames = map[StatusType]string{
	StatusPublished:                      "Published",
	StatusRejected:                       "Rejected",
	StatusSystemError:                    "System Error",
	StatusOutDatedRecord:                 "Out Dated Record",
	StatusIngested:                       "Ingested",
	StatusUploaded:                       "Uploaded",
	StatusValidated:                      "Validated",
	StatusSecured:                        "Secured",
	StatusEMLIngested:                    "EML Ingested",
	StatusEMLToJSON:                      "EML To JSON",
	StatusMetadataToES:                   "Metadata To ES",
	StatusNormalized:                     "Normalized",
	StatusSpatialTransformUnsecure:       "Spatial Transform Unsecure",
	StatusSpatialTransformSecure:         "Spatial Transform Secure",
	StatusFailedIngestion:                "Failed Ingestion",
	StatusFailedUpload:                   "Failed Upload",
	StatusFailedValidation:               "Failed Validation",
	StatusFailedSecurity:                 "Failed Security",
	StatusFailedEMLIngestion:             "Failed EML Ingestion",
	StatusFailedEMLToJSON:                "Failed EML To JSON",
	StatusFailedMetadataToES:             "Failed Metadata To ES",
	StatusFailedNormalization:            "Failed Normalization",
	StatusFailedSpatialTransformUnsecure: "Failed Spatial Transform Unsecure",
	StatusFailedSpatialTransformSecure:   "Failed Spatial Transform Secure",
}

// String returns the database vocabulary name of the status.
func (s StatusType) String() string {
	return statusNames[s]
}

// IsValid reports whether the status belongs to the known vocabulary.
func (s StatusType) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// AllStatusTypes returns every known status, in declaration order.
// Used by the schema seeder to populate the vocabulary table.
func AllStatusTypes() []StatusType {
	res := make([]StatusType, 0, len(statusNames))
	for s := StatusPublished; s <= StatusFailedSpatialTransformSecure; s++ {
		res = append(res, s)
	}
	return res
}

// MessageType is the closed set of submission message severities.
type MessageType int

const (
	MessageUnknown MessageType = iota
	MessageNotice
	MessageError
	MessageWarning
	MessageDebug
)

var messageNames = map[MessageType]string{
	MessageNotice:  "Notice",
	MessageError:   "Error",
	MessageWarning: "Warning",
	MessageDebug:   "Debug",
}

// String returns the database vocabulary name of the message type.
func (m MessageType) String() string {
	return messageNames[m]
}

// IsValid reports whether the message type belongs to the known vocabulary.
func (m MessageType) IsValid() bool {
	_, ok := messageNames[m]
	return ok
}

// AllMessageTypes returns every known message type, in declaration order.
func AllMessageTypes() []MessageType {
	return []MessageType{MessageNotice, MessageError, MessageWarning, MessageDebug}
}
