package iosubmission

import (
	"context"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// InsertStatus appends an audit status row. The status type is
// resolved through its vocabulary name so an unknown name fails the
// insert instead of writing a null reference.
func (s *store) InsertStatus(
	ctx context.Context,
	submissionID int,
	statusType submission.StatusType,
) (int, error) {
	q := `
INSERT INTO submission_status (
  submission_id,
  submission_status_type_id,
  event_timestamp
) VALUES (
  $1,
  (SELECT submission_status_type_id
   FROM submission_status_type
   WHERE name = $2),
  now()
)
RETURNING submission_status_id`

	var id int
	err := s.q.QueryRow(ctx, q, submissionID, statusType.String()).Scan(&id)
	if err != nil {
		return 0, StatusError(submissionID, statusType.String(), err)
	}
	return id, nil
}

// InsertMessage appends a message row to a status entry.
func (s *store) InsertMessage(
	ctx context.Context,
	statusID int,
	messageType submission.MessageType,
	message string,
) (int, error) {
	q := `
INSERT INTO submission_message (
  submission_status_id,
  submission_message_type_id,
  event_timestamp,
  message
) VALUES (
  $1,
  (SELECT submission_message_type_id
   FROM submission_message_type
   WHERE name = $2),
  now(),
  $3
)
RETURNING submission_message_id`

	var id int
	err := s.q.QueryRow(ctx, q, statusID, messageType.String(), message).
		Scan(&id)
	if err != nil {
		return 0, MessageError(statusID, messageType.String(), err)
	}
	return id, nil
}

// InsertStatusAndMessage appends a status row and its message in one
// call. The pipeline uses it to record step failures together with
// the error text.
func (s *store) InsertStatusAndMessage(
	ctx context.Context,
	submissionID int,
	statusType submission.StatusType,
	messageType submission.MessageType,
	message string,
) (int, int, error) {
	statusID, err := s.InsertStatus(ctx, submissionID, statusType)
	if err != nil {
		return 0, 0, err
	}
	messageID, err := s.InsertMessage(ctx, statusID, messageType, message)
	if err != nil {
		return 0, 0, err
	}
	return statusID, messageID, nil
}
