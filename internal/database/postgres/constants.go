package postgres

// SQL - capture queue
const (
	SQLInsertCapture = `
		INSERT INTO capture_queue
			(submitter_id, submitter_name, subject_id, build_label, image_data, image_filename, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7)
		RETURNING id`

	SQLSelectCapture = `
		SELECT id, submitter_id, submitter_name, subject_id, build_label,
		       image_data, image_filename, status, submitted_at, processed_at,
		       validated_at, notified_at, result, error_message
		FROM capture_queue
		WHERE id = $1`

	SQLSelectOldestPending = `
		SELECT id, submitter_id, submitter_name, subject_id, build_label,
		       image_data, image_filename, status, submitted_at, processed_at,
		       validated_at, notified_at, result, error_message
		FROM capture_queue
		WHERE status = 'pending'
		ORDER BY submitted_at ASC
		LIMIT 1`

	SQLCompletePending = `
		UPDATE capture_queue
		SET status = 'completed', result = $2, processed_at = $3, error_message = NULL
		WHERE id = $1 AND status = 'pending'`

	SQLFinalizeCompleted = `
		UPDATE capture_queue
		SET status = $2, validated_at = $3
		WHERE id = $1 AND status = 'completed'`

	SQLRecordError = `
		UPDATE capture_queue
		SET error_message = $2
		WHERE id = $1 AND status = 'pending'`

	SQLSelectUnnotifiedCompleted = `
		SELECT id, submitter_id, submitter_name, subject_id, build_label,
		       image_data, image_filename, status, submitted_at, processed_at,
		       validated_at, notified_at, result, error_message
		FROM capture_queue
		WHERE status = 'completed' AND notified_at IS NULL
		ORDER BY submitted_at ASC
		LIMIT $1`

	SQLMarkNotified = `
		UPDATE capture_queue SET notified_at = $2 WHERE id = $1`

	SQLClearNotified = `
		UPDATE capture_queue SET notified_at = NULL WHERE id = $1`

	SQLCountByStatus = `
		SELECT COUNT(*) FROM capture_queue WHERE status = $1`

	SQLSelectBySubmitter = `
		SELECT id, submitter_id, submitter_name, subject_id, build_label,
		       image_data, image_filename, status, submitted_at, processed_at,
		       validated_at, notified_at, result, error_message
		FROM capture_queue
		WHERE submitter_id = $1
		ORDER BY submitted_at DESC
		LIMIT $2`
)

// SQL - subjects
const (
	SQLInsertSubject = `
		INSERT INTO subjects (owner_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	SQLSelectSubject = `
		SELECT id, owner_id, name, created_at FROM subjects WHERE id = $1`

	SQLSelectSubjectsByOwner = `
		SELECT id, owner_id, name, created_at
		FROM subjects
		WHERE owner_id = $1
		ORDER BY name ASC`
)

// SQL - snapshots
const (
	SQLInsertSnapshot = `
		INSERT INTO player_snapshots
			(subject_id, capture_id, submitter_id, character_name, character_level,
			 trophy_points, global_power, agility, endurance, serve, volley,
			 forehand, backhand, build_label, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	SQLInsertSnapshotEquipment = `
		INSERT INTO snapshot_equipment (snapshot_id, slot, name, level)
		VALUES ($1, $2, $3, $4)`

	SQLSelectLatestSnapshot = `
		SELECT id, subject_id, capture_id, submitter_id, character_name,
		       character_level, trophy_points, global_power, agility, endurance,
		       serve, volley, forehand, backhand, build_label, recorded_at
		FROM player_snapshots
		WHERE subject_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1`

	SQLSelectLatestForBuild = `
		SELECT id, subject_id, capture_id, submitter_id, character_name,
		       character_level, trophy_points, global_power, agility, endurance,
		       serve, volley, forehand, backhand, build_label, recorded_at
		FROM player_snapshots
		WHERE subject_id = $1
		  AND LOWER(character_name) = LOWER($2)
		  AND build_label = $3
		ORDER BY recorded_at DESC
		LIMIT 1`

	SQLSelectSnapshotHistory = `
		SELECT id, subject_id, capture_id, submitter_id, character_name,
		       character_level, trophy_points, global_power, agility, endurance,
		       serve, volley, forehand, backhand, build_label, recorded_at
		FROM player_snapshots
		WHERE subject_id = $1
		ORDER BY recorded_at ASC
		LIMIT $2`

	SQLSelectLatestByCharacter = `
		SELECT latest.id, latest.subject_id, latest.capture_id, latest.submitter_id,
		       latest.character_name, latest.character_level, latest.trophy_points,
		       latest.global_power, latest.agility, latest.endurance, latest.serve,
		       latest.volley, latest.forehand, latest.backhand, latest.build_label,
		       latest.recorded_at, subjects.name
		FROM (
			SELECT DISTINCT ON (subject_id) *
			FROM player_snapshots
			WHERE LOWER(character_name) = LOWER($1)
			ORDER BY subject_id, recorded_at DESC
		) latest
		JOIN subjects ON subjects.id = latest.subject_id
		ORDER BY latest.global_power DESC NULLS LAST`

	SQLSelectSnapshotEquipment = `
		SELECT slot, name, level
		FROM snapshot_equipment
		WHERE snapshot_id = $1
		ORDER BY slot ASC`
)

// Error message formats
const (
	ErrMsgInsertCaptureFailed   = "failed to insert capture: %w"
	ErrMsgGetCaptureFailed      = "failed to get capture: %w"
	ErrMsgUpdateCaptureFailed   = "failed to update capture: %w"
	ErrMsgListCapturesFailed    = "failed to list captures: %w"
	ErrMsgCountCapturesFailed   = "failed to count captures: %w"
	ErrMsgEncodeResultFailed    = "failed to encode extraction result: %w"
	ErrMsgDecodeResultFailed    = "failed to decode extraction result: %w"
	ErrMsgInsertSubjectFailed   = "failed to insert subject: %w"
	ErrMsgGetSubjectFailed      = "failed to get subject: %w"
	ErrMsgListSubjectsFailed    = "failed to list subjects: %w"
	ErrMsgInsertSnapshotFailed  = "failed to insert snapshot: %w"
	ErrMsgGetSnapshotFailed     = "failed to get snapshot: %w"
	ErrMsgListSnapshotsFailed   = "failed to list snapshots: %w"
	ErrMsgBeginTxFailed         = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed        = "failed to commit transaction: %w"
)
