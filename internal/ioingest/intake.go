package ioingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnames/gnuuid"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/dwca"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/eml"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// intakeState carries everything the pipeline steps share.
type intakeState struct {
	submissionID int
	datasetUUID  string
	file         biohub.RawFile
	archive      *dwca.Archive
	sub          biohub.SubmissionStore
	spat         biohub.SpatialStore
}

// step is one pipeline stage after the initial record creation. A
// failing step appends its failure status plus an error message and
// aborts the run; already-persisted artifacts of earlier steps stay.
type step struct {
	name    string
	success submission.StatusType
	failure submission.StatusType
	run     func(ctx context.Context, st *intakeState) error
}

func (i *ingestor) steps() []step {
	return []step{
		{
			name:    "upload archive",
			success: submission.StatusUploaded,
			failure: submission.StatusFailedUpload,
			run:     i.stepUpload,
		},
		{
			name:    "validate archive",
			success: submission.StatusValidated,
			failure: submission.StatusFailedValidation,
			run:     i.stepValidate,
		},
		{
			name:    "ingest eml",
			success: submission.StatusEMLIngested,
			failure: submission.StatusFailedEMLIngestion,
			run:     i.stepIngestEML,
		},
		{
			name:    "convert eml to json",
			success: submission.StatusEMLToJSON,
			failure: submission.StatusFailedEMLToJSON,
			run:     i.stepConvertEMLToJSON,
		},
		{
			name:    "publish metadata",
			success: submission.StatusMetadataToES,
			failure: submission.StatusFailedMetadataToES,
			run:     i.stepPublishMetadata,
		},
		{
			name:    "normalize archive",
			success: submission.StatusNormalized,
			failure: submission.StatusFailedNormalization,
			run:     i.stepNormalize,
		},
		{
			name:    "spatial transforms",
			success: submission.StatusSpatialTransformUnsecure,
			failure: submission.StatusFailedSpatialTransformUnsecure,
			run:     i.stepSpatialTransforms,
		},
		{
			name:    "security transforms",
			success: submission.StatusSpatialTransformSecure,
			failure: submission.StatusFailedSpatialTransformSecure,
			run:     i.stepSecurityTransforms,
		},
	}
}

// Intake is the replace-or-create entry point.
//
// The advisory lock serializes concurrent intakes of the same dataset
// UUID; without it two uploads could both see no live submission and
// create two live rows.
func (i *ingestor) Intake(
	ctx context.Context,
	file biohub.RawFile,
	datasetUUID string,
) (int, error) {
	archive, err := dwca.Parse(file.Name, file.Data)
	if err != nil {
		return 0, err
	}

	if datasetUUID == "" {
		datasetUUID = eml.PackageID(archive.EML)
	}
	if pkgID := eml.PackageID(archive.EML); pkgID != "" && pkgID != datasetUUID {
		return 0, IngestionFailedError(
			fmt.Errorf("packageId %q does not match dataset %q",
				pkgID, datasetUUID))
	}
	if datasetUUID == "" {
		return 0, IngestionFailedError(
			fmt.Errorf("no dataset uuid and no EML packageId"))
	}

	var submissionID int
	err = i.withTx(ctx, func(q biohub.Querier) error {
		lock := `SELECT pg_advisory_xact_lock(hashtext($1))`
		if _, err := q.Exec(ctx, lock, datasetUUID); err != nil {
			return IngestionFailedError(err)
		}

		sub := i.newSubmissionStore(q)
		spat := i.newSpatialStore(q)

		prevID, err := sub.GetIDByUUID(ctx, datasetUUID)
		if err != nil {
			return err
		}
		if prevID != 0 {
			if err := i.replace(ctx, spat, sub, prevID); err != nil {
				return err
			}
		}

		submissionID, err = i.ingest(ctx, sub, archive, file, datasetUUID)
		return err
	})
	if err != nil {
		return 0, err
	}

	return submissionID, i.create(ctx, submissionID, datasetUUID, file, archive)
}

// replace cascades away the previous version's spatial artifacts and
// ends its record. Order matters: transform links reference the
// components.
func (i *ingestor) replace(
	ctx context.Context,
	spat biohub.SpatialStore,
	sub biohub.SubmissionStore,
	prevID int,
) error {
	if _, err := spat.DeleteSpatialTransformRefsBySubmissionID(ctx, prevID); err != nil {
		return err
	}
	if _, err := spat.DeleteSecurityTransformRefsBySubmissionID(ctx, prevID); err != nil {
		return err
	}
	if _, err := spat.DeleteComponentsBySubmissionID(ctx, prevID); err != nil {
		return err
	}
	return sub.SetEndDate(ctx, prevID)
}

// ingest creates the submission record under the configured uploader
// identity and appends the initial Ingested status. No failure status
// exists at this point: a failed ingest leaves no submission row to
// attach one to.
func (i *ingestor) ingest(
	ctx context.Context,
	sub biohub.SubmissionStore,
	archive *dwca.Archive,
	file biohub.RawFile,
	datasetUUID string,
) (int, error) {
	st, err := sub.SourceTransformBySystemUserID(ctx, i.cfg.SystemUserID, 0)
	if err != nil {
		return 0, err
	}

	id, err := sub.InsertRecord(ctx, submission.InsertRecord{
		SourceTransformID: st.SourceTransformID,
		UUID:              datasetUUID,
		InputFileName:     file.Name,
	})
	if err != nil {
		return 0, err
	}

	if _, err := sub.InsertStatus(ctx, id, submission.StatusIngested); err != nil {
		return 0, err
	}
	return id, nil
}

// create drives the remaining pipeline steps against the pool.
func (i *ingestor) create(
	ctx context.Context,
	submissionID int,
	datasetUUID string,
	file biohub.RawFile,
	archive *dwca.Archive,
) error {
	st := &intakeState{
		submissionID: submissionID,
		datasetUUID:  datasetUUID,
		file:         file,
		archive:      archive,
		sub:          i.newSubmissionStore(i.q),
		spat:         i.newSpatialStore(i.q),
	}

	steps := i.steps()
	for n, s := range steps {
		if err := s.run(ctx, st); err != nil {
			_, _, auditErr := st.sub.InsertStatusAndMessage(ctx,
				submissionID, s.failure, submission.MessageError,
				auditMessage(err))
			if auditErr != nil {
				return errors.Join(err, auditErr)
			}
			return err
		}
		if _, err := st.sub.InsertStatus(ctx, submissionID, s.success); err != nil {
			return err
		}
		i.report(s.name, n+1, len(steps))
	}
	return nil
}

// blobKey fingerprints the archive content so re-uploads of identical
// bytes land on the same object.
func blobKey(datasetUUID string, data []byte, fileName string) string {
	return fmt.Sprintf("biohub/%s/%s/%s",
		datasetUUID, gnuuid.New(string(data)).String(), fileName)
}

func (i *ingestor) stepUpload(ctx context.Context, st *intakeState) error {
	key := blobKey(st.datasetUUID, st.file.Data, st.file.Name)
	meta := map[string]string{"filename": st.file.Name}
	if err := i.blob.Put(ctx, key, st.file.Data, meta); err != nil {
		return err
	}
	return st.sub.UpdateInputKey(ctx, st.submissionID, key)
}

func (i *ingestor) stepValidate(ctx context.Context, st *intakeState) error {
	return st.archive.Validate()
}

func (i *ingestor) stepIngestEML(ctx context.Context, st *intakeState) error {
	return st.sub.UpdateEMLSource(ctx, st.submissionID, string(st.archive.EML))
}

func (i *ingestor) stepConvertEMLToJSON(
	ctx context.Context,
	st *intakeState,
) error {
	res, err := eml.ToJSON(st.archive.EML)
	if err != nil {
		return err
	}
	return st.sub.UpdateEMLJSONSource(ctx, st.submissionID, res)
}

// stepPublishMetadata runs the uploader's metadata transform and
// ships the result to the search index under the dataset UUID.
func (i *ingestor) stepPublishMetadata(
	ctx context.Context,
	st *intakeState,
) error {
	rec, err := st.sub.GetRecord(ctx, st.submissionID)
	if err != nil {
		return err
	}
	if rec.SourceTransformID == 0 {
		return MetadataError("The source_transform_id is not available")
	}

	tr, err := st.sub.SourceTransformByID(ctx, rec.SourceTransformID)
	if err != nil {
		return err
	}
	if tr.MetadataTransform == "" {
		return MetadataError("The source metadata transform is not available")
	}

	doc, err := st.sub.MetadataJSON(ctx, st.submissionID, tr.MetadataTransform)
	if err != nil {
		return err
	}
	if doc == "" {
		return MetadataError("The source metadata json is not available")
	}

	index := tr.MetadataIndex
	if index == "" {
		index = i.cfg.Search.Index
	}
	return i.search.Index(ctx, index, st.datasetUUID, doc)
}

func (i *ingestor) stepNormalize(ctx context.Context, st *intakeState) error {
	normalized, err := st.archive.Normalize()
	if err != nil {
		return err
	}
	return st.sub.UpdateDWCSource(ctx, st.submissionID, normalized)
}

// stepSpatialTransforms runs every live spatial transform and stores
// the produced feature collections as components linked back to their
// transform.
func (i *ingestor) stepSpatialTransforms(
	ctx context.Context,
	st *intakeState,
) error {
	transforms, err := st.spat.SpatialTransforms(ctx)
	if err != nil {
		return err
	}

	for _, tr := range transforms {
		fcs, err := st.spat.RunSpatialTransform(
			ctx, st.submissionID, tr.Transform)
		if err != nil {
			return err
		}
		for _, fc := range fcs {
			compID, err := st.spat.InsertComponent(ctx, st.submissionID, fc)
			if err != nil {
				return err
			}
			_, err = st.spat.InsertSpatialTransformRef(
				ctx, tr.TransformID, compID)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// stepSecurityTransforms redacts components touched by the live
// security transforms. Components a transform returns without a
// secured variant keep their unsecured data but still get the link
// row, so the search path knows security applies to them.
func (i *ingestor) stepSecurityTransforms(
	ctx context.Context,
	st *intakeState,
) error {
	transforms, err := st.spat.SecurityTransforms(ctx)
	if err != nil {
		return err
	}

	for _, tr := range transforms {
		recs, err := st.spat.RunSecurityTransform(
			ctx, st.submissionID, tr.Transform)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			if rec.SecuredComponent != nil {
				err = st.spat.UpdateComponentWithSecurity(ctx,
					rec.SubmissionSpatialComponentID, rec.SecuredComponent)
				if err != nil {
					return err
				}
			}
			_, err = st.spat.InsertSecurityTransformRef(ctx,
				tr.TransformID, rec.SubmissionSpatialComponentID)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
