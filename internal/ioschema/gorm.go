package ioschema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Vocabulary and transform tables come before the tables that
// reference them.
func AllModels() []interface{} {
	return []interface{}{
		&SourceTransform{},
		&Submission{},
		&SubmissionStatusType{},
		&SubmissionStatus{},
		&SubmissionMessageType{},
		&SubmissionMessage{},
		&SpatialTransform{},
		&SecurityTransform{},
		&SystemUserSecurityException{},
		&SubmissionSpatialComponent{},
		&SpatialTransformSubmission{},
		&SecurityTransformSubmission{},
		&Occurrence{},
	}
}

// migrate runs GORM AutoMigrate to create or update the schema.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
