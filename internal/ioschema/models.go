package ioschema

import (
	"time"
)

// Submission is one intake of a dataset archive. A dataset UUID may
// have many submission rows over time; the live one has a null
// RecordEndDate.
type Submission struct {
	// SubmissionID is the surrogate primary key.
	SubmissionID int `gorm:"column:submission_id;primaryKey;autoIncrement"`

	// SourceTransformID links to the uploading system's transform
	// configuration.
	SourceTransformID int `gorm:"column:source_transform_id;not null;index"`

	// UUID is the dataset identifier taken from the EML packageId.
	UUID string `gorm:"column:uuid;type:uuid;not null;index"`

	// RecordEffectiveDate is when this version became current.
	RecordEffectiveDate time.Time `gorm:"column:record_effective_date;not null"`

	// RecordEndDate is set when a newer version supersedes this row.
	RecordEndDate *time.Time `gorm:"column:record_end_date"`

	// InputKey is the blob storage key of the raw archive.
	InputKey string `gorm:"column:input_key;type:varchar(1000)"`

	// InputFileName is the original upload file name.
	InputFileName string `gorm:"column:input_file_name;type:varchar(300)"`

	// EMLSource is the raw EML XML document.
	EMLSource string `gorm:"column:eml_source;type:text"`

	// EMLJSONSource is the EML document converted to JSON.
	EMLJSONSource string `gorm:"column:eml_json_source;type:jsonb"`

	// DarwinCoreSource is the normalized archive content as JSON.
	DarwinCoreSource string `gorm:"column:darwin_core_source;type:jsonb"`
}

func (Submission) TableName() string { return "submission" }

// SubmissionStatusType is the vocabulary of status names.
type SubmissionStatusType struct {
	SubmissionStatusTypeID int        `gorm:"column:submission_status_type_id;primaryKey;autoIncrement"`
	Name                   string     `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Description            string     `gorm:"column:description;type:varchar(300)"`
	RecordEffectiveDate    time.Time  `gorm:"column:record_effective_date;not null"`
	RecordEndDate          *time.Time `gorm:"column:record_end_date"`
}

func (SubmissionStatusType) TableName() string { return "submission_status_type" }

// SubmissionStatus is one append-only audit row; a submission
// accumulates one per pipeline step plus failure rows.
type SubmissionStatus struct {
	SubmissionStatusID     int       `gorm:"column:submission_status_id;primaryKey;autoIncrement"`
	SubmissionID           int       `gorm:"column:submission_id;not null;index"`
	SubmissionStatusTypeID int       `gorm:"column:submission_status_type_id;not null"`
	EventTimestamp         time.Time `gorm:"column:event_timestamp;not null"`
}

func (SubmissionStatus) TableName() string { return "submission_status" }

// SubmissionMessageType is the vocabulary of message severities.
type SubmissionMessageType struct {
	SubmissionMessageTypeID int        `gorm:"column:submission_message_type_id;primaryKey;autoIncrement"`
	Name                    string     `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Description             string     `gorm:"column:description;type:varchar(300)"`
	RecordEffectiveDate     time.Time  `gorm:"column:record_effective_date;not null"`
	RecordEndDate           *time.Time `gorm:"column:record_end_date"`
}

func (SubmissionMessageType) TableName() string { return "submission_message_type" }

// SubmissionMessage attaches human-readable detail to a status row.
type SubmissionMessage struct {
	SubmissionMessageID     int       `gorm:"column:submission_message_id;primaryKey;autoIncrement"`
	SubmissionStatusID      int       `gorm:"column:submission_status_id;not null;index"`
	SubmissionMessageTypeID int       `gorm:"column:submission_message_type_id;not null"`
	EventTimestamp          time.Time `gorm:"column:event_timestamp;not null"`
	Message                 string    `gorm:"column:message;type:varchar(3000)"`
}

func (SubmissionMessage) TableName() string { return "submission_message" }

// SourceTransform is the per-source-system configuration: which SQL
// produces the searchable metadata document and which index it lands
// in.
type SourceTransform struct {
	SourceTransformID   int        `gorm:"column:source_transform_id;primaryKey;autoIncrement"`
	SystemUserID        int        `gorm:"column:system_user_id;not null;index"`
	Version             int        `gorm:"column:version;not null;default:1"`
	MetadataTransform   string     `gorm:"column:metadata_transform;type:text"`
	MetadataIndex       string     `gorm:"column:metadata_index;type:varchar(100)"`
	RecordEffectiveDate time.Time  `gorm:"column:record_effective_date;not null"`
	RecordEndDate       *time.Time `gorm:"column:record_end_date"`
}

func (SourceTransform) TableName() string { return "source_transform" }

// SpatialTransform is a named SQL query that extracts GeoJSON feature
// collections from a submission's source documents.
type SpatialTransform struct {
	SpatialTransformID  int        `gorm:"column:spatial_transform_id;primaryKey;autoIncrement"`
	Name                string     `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Description         string     `gorm:"column:description;type:varchar(3000)"`
	Transform           string     `gorm:"column:transform;type:text;not null"`
	RecordEffectiveDate time.Time  `gorm:"column:record_effective_date;not null"`
	RecordEndDate       *time.Time `gorm:"column:record_end_date"`
}

func (SpatialTransform) TableName() string { return "spatial_transform" }

// SpatialTransformSubmission links a spatial component to the
// transform run that produced it.
type SpatialTransformSubmission struct {
	SpatialTransformSubmissionID int `gorm:"column:spatial_transform_submission_id;primaryKey;autoIncrement"`
	SpatialTransformID           int `gorm:"column:spatial_transform_id;not null;index"`
	SubmissionSpatialComponentID int `gorm:"column:submission_spatial_component_id;not null;index"`
}

func (SpatialTransformSubmission) TableName() string { return "spatial_transform_submission" }

// SecurityTransform is a named SQL query that produces the redacted
// variant of spatial components.
type SecurityTransform struct {
	SecurityTransformID int        `gorm:"column:security_transform_id;primaryKey;autoIncrement"`
	Name                string     `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Description         string     `gorm:"column:description;type:varchar(3000)"`
	Transform           string     `gorm:"column:transform;type:text;not null"`
	RecordEffectiveDate time.Time  `gorm:"column:record_effective_date;not null"`
	RecordEndDate       *time.Time `gorm:"column:record_end_date"`
}

func (SecurityTransform) TableName() string { return "security_transform" }

// SecurityTransformSubmission links a spatial component to the
// security transform that secured it.
type SecurityTransformSubmission struct {
	SecurityTransformSubmissionID int `gorm:"column:security_transform_submission_id;primaryKey;autoIncrement"`
	SecurityTransformID           int `gorm:"column:security_transform_id;not null;index"`
	SubmissionSpatialComponentID  int `gorm:"column:submission_spatial_component_id;not null;index"`
}

func (SecurityTransformSubmission) TableName() string { return "security_transform_submission" }

// SystemUserSecurityException exempts a system user from a security
// transform; exempted users see the unredacted component.
type SystemUserSecurityException struct {
	SystemUserSecurityExceptionID int        `gorm:"column:system_user_security_exception_id;primaryKey;autoIncrement"`
	SecurityTransformID           int        `gorm:"column:security_transform_id;not null;index"`
	SystemUserID                  int        `gorm:"column:system_user_id;not null;index"`
	RecordEffectiveDate           time.Time  `gorm:"column:record_effective_date;not null"`
	RecordEndDate                 *time.Time `gorm:"column:record_end_date"`
}

func (SystemUserSecurityException) TableName() string { return "system_user_security_exception" }

// SubmissionSpatialComponent stores one feature collection extracted
// from a submission, plus its redacted variant when a security
// transform applies. Geometry columns duplicate the GeoJSON geometry
// for spatial indexing.
type SubmissionSpatialComponent struct {
	SubmissionSpatialComponentID int    `gorm:"column:submission_spatial_component_id;primaryKey;autoIncrement"`
	SubmissionID                 int    `gorm:"column:submission_id;not null;index"`
	SpatialComponent             string `gorm:"column:spatial_component;type:jsonb;not null"`
	SecuredSpatialComponent      string `gorm:"column:secured_spatial_component;type:jsonb"`
	Geometry                     string `gorm:"column:geometry;type:geometry(GEOMETRY,4326)"`
	SecuredGeometry              string `gorm:"column:secured_geometry;type:geometry(GEOMETRY,4326)"`
}

func (SubmissionSpatialComponent) TableName() string { return "submission_spatial_component" }

// Occurrence is one row scraped from the normalized Darwin Core
// source.
type Occurrence struct {
	OccurrenceID         int    `gorm:"column:occurrence_id;primaryKey;autoIncrement"`
	SubmissionID         int    `gorm:"column:submission_id;not null;index"`
	TaxonID              string `gorm:"column:taxonid;type:varchar(3000)"`
	TaxonCanonical       string `gorm:"column:taxon_canonical;type:varchar(500);index"`
	LifeStage            string `gorm:"column:lifestage;type:varchar(3000)"`
	Sex                  string `gorm:"column:sex;type:varchar(3000)"`
	IndividualCount      string `gorm:"column:individualcount;type:varchar(3000)"`
	VernacularName       string `gorm:"column:vernacularname;type:varchar(3000)"`
	OrganismQuantity     string `gorm:"column:organismquantity;type:varchar(3000)"`
	OrganismQuantityType string `gorm:"column:organismquantitytype;type:varchar(3000)"`
	EventDate            string `gorm:"column:eventdate;type:varchar(3000)"`
	Geography            string `gorm:"column:geography;type:geometry(POINT,4326)"`
}

func (Occurrence) TableName() string { return "occurrence" }
