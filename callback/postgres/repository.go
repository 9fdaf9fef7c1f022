package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/marcelsud/callback-inbox/callback"
)

/*
PostgreSQL implementation of callback.Repository

- Every insert is a single statement that commits before returning, so a forward log
  can only ever reference a committed message
- Message bodies are BYTEA so any payload is kept byte for byte
- Headers, query and response header overrides are JSON documents in TEXT columns:
  JSONB refuses the \u0000 escape a NUL in a query value encodes to
- Foreign keys cascade: deleting an application removes its receivers, targets,
  messages and forward logs
*/

type Repository struct {
	DB *sql.DB
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NewRepository creates a postgres repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig creates a postgres repository with a custom pool
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: maximum idle connections kept in the pool
// maxLifeMinutes: maximum minutes a connection may be reused
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{
		DB: db,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

const receiverColumns = `r.id, r.app_id, a.root_path, r.name, r.path, r.auto_forward,
		r.response_status, r.response_headers, r.response_body, r.created_at, r.updated_at`

// ResolveReceiver joins applications and receivers on the exact (root_path, path) pair
func (r *Repository) ResolveReceiver(ctx context.Context, rootPath, callbackPath string) (callback.Receiver, error) {
	query := `SELECT ` + receiverColumns + `
		FROM receivers r
		JOIN applications a ON a.id = r.app_id
		WHERE a.root_path = $1 AND r.path = $2`

	rc, err := scanReceiver(r.DB.QueryRowContext(ctx, query, rootPath, callbackPath))
	if errors.Is(err, sql.ErrNoRows) {
		return callback.Receiver{}, callback.ErrReceiverNotFound
	}
	if err != nil {
		return callback.Receiver{}, fmt.Errorf("selecting receiver: %w", err)
	}
	return rc, nil
}

func (r *Repository) GetReceiver(ctx context.Context, id int64) (callback.Receiver, error) {
	query := `SELECT ` + receiverColumns + `
		FROM receivers r
		JOIN applications a ON a.id = r.app_id
		WHERE r.id = $1`

	rc, err := scanReceiver(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return callback.Receiver{}, callback.ErrNotFound
	}
	if err != nil {
		return callback.Receiver{}, fmt.Errorf("selecting receiver: %w", err)
	}
	return rc, nil
}

func (r *Repository) ListReceivers(ctx context.Context, appID int64) ([]callback.Receiver, error) {
	query := `SELECT ` + receiverColumns + `
		FROM receivers r
		JOIN applications a ON a.id = r.app_id
		WHERE r.app_id = $1
		ORDER BY r.created_at DESC, r.id DESC`

	rows, err := r.DB.QueryContext(ctx, query, appID)
	if err != nil {
		return nil, fmt.Errorf("selecting receivers: %w", err)
	}
	defer rows.Close()

	receivers := []callback.Receiver{}
	for rows.Next() {
		rc, err := scanReceiver(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning receiver: %w", err)
		}
		receivers = append(receivers, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receivers: %w", err)
	}
	return receivers, nil
}

func (r *Repository) GetApplication(ctx context.Context, id int64) (callback.Application, error) {
	query := "SELECT id, name, root_path, created_at, updated_at FROM applications WHERE id = $1"
	return r.selectApplication(ctx, query, id)
}

func (r *Repository) GetApplicationByRootPath(ctx context.Context, rootPath string) (callback.Application, error) {
	query := "SELECT id, name, root_path, created_at, updated_at FROM applications WHERE root_path = $1"
	return r.selectApplication(ctx, query, rootPath)
}

func (r *Repository) ListApplications(ctx context.Context) ([]callback.Application, error) {
	query := "SELECT id, name, root_path, created_at, updated_at FROM applications ORDER BY created_at DESC, id DESC"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting applications: %w", err)
	}
	defer rows.Close()

	apps := []callback.Application{}
	for rows.Next() {
		var app callback.Application
		if err := rows.Scan(&app.ID, &app.Name, &app.RootPath, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}
	return apps, nil
}

func (r *Repository) selectApplication(ctx context.Context, query string, arg any) (callback.Application, error) {
	var app callback.Application
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&app.ID,
		&app.Name,
		&app.RootPath,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return callback.Application{}, callback.ErrNotFound
	}
	if err != nil {
		return callback.Application{}, fmt.Errorf("selecting application: %w", err)
	}
	return app, nil
}

func (r *Repository) ListForwardTargets(ctx context.Context, receiverID int64) ([]callback.ForwardTarget, error) {
	query := `SELECT id, receiver_id, name, url, enabled, created_at
		FROM forward_targets WHERE receiver_id = $1 ORDER BY id`
	return r.selectTargets(ctx, query, receiverID)
}

func (r *Repository) ListEnabledForwardTargets(ctx context.Context, receiverID int64) ([]callback.ForwardTarget, error) {
	query := `SELECT id, receiver_id, name, url, enabled, created_at
		FROM forward_targets WHERE receiver_id = $1 AND enabled = TRUE ORDER BY id`
	return r.selectTargets(ctx, query, receiverID)
}

func (r *Repository) selectTargets(ctx context.Context, query string, receiverID int64) ([]callback.ForwardTarget, error) {
	rows, err := r.DB.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("selecting forward targets: %w", err)
	}
	defer rows.Close()

	targets := []callback.ForwardTarget{}
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning forward target: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forward targets: %w", err)
	}
	return targets, nil
}

func (r *Repository) GetForwardTarget(ctx context.Context, id int64) (callback.ForwardTarget, error) {
	query := "SELECT id, receiver_id, name, url, enabled, created_at FROM forward_targets WHERE id = $1"

	t, err := scanTarget(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return callback.ForwardTarget{}, callback.ErrNotFound
	}
	if err != nil {
		return callback.ForwardTarget{}, fmt.Errorf("selecting forward target: %w", err)
	}
	return t, nil
}

const messageColumns = "m.id, m.receiver_id, m.method, m.headers, m.body, m.query, m.ip, m.user_agent, m.received_at"

func (r *Repository) GetMessage(ctx context.Context, id int64) (callback.Message, error) {
	query := "SELECT " + messageColumns + " FROM messages m WHERE m.id = $1"

	m, err := scanMessage(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return callback.Message{}, callback.ErrNotFound
	}
	if err != nil {
		return callback.Message{}, fmt.Errorf("selecting message: %w", err)
	}
	return m, nil
}

// ListMessages returns a receiver's messages newest first
func (r *Repository) ListMessages(ctx context.Context, receiverID int64, page callback.Page) ([]callback.Message, error) {
	query := `SELECT ` + messageColumns + `
		FROM messages m
		WHERE m.receiver_id = $1
		ORDER BY m.received_at DESC, m.id DESC
		LIMIT $2 OFFSET $3`
	return r.selectMessages(ctx, query, receiverID, page.Limit, page.Offset)
}

func (r *Repository) ListApplicationMessages(ctx context.Context, appID int64, page callback.Page) ([]callback.Message, error) {
	query := `SELECT ` + messageColumns + `
		FROM messages m
		JOIN receivers r ON r.id = m.receiver_id
		WHERE r.app_id = $1
		ORDER BY m.received_at DESC, m.id DESC
		LIMIT $2 OFFSET $3`
	return r.selectMessages(ctx, query, appID, page.Limit, page.Offset)
}

func (r *Repository) selectMessages(ctx context.Context, query string, args ...any) ([]callback.Message, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting messages: %w", err)
	}
	defer rows.Close()

	messages := []callback.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}

const forwardLogColumns = "id, message_id, target_id, status, response_code, response_body, error, forwarded_at"

func (r *Repository) ListForwardLogs(ctx context.Context, messageID int64) ([]callback.ForwardLog, error) {
	query := "SELECT " + forwardLogColumns + " FROM forward_logs WHERE message_id = $1 ORDER BY id"
	return r.selectForwardLogs(ctx, query, messageID)
}

// ListTargetForwardLogs returns the delivery history of one target newest first
func (r *Repository) ListTargetForwardLogs(ctx context.Context, targetID int64, page callback.Page) ([]callback.ForwardLog, error) {
	query := `SELECT ` + forwardLogColumns + `
		FROM forward_logs
		WHERE target_id = $1
		ORDER BY forwarded_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	return r.selectForwardLogs(ctx, query, targetID, page.Limit, page.Offset)
}

func (r *Repository) selectForwardLogs(ctx context.Context, query string, args ...any) ([]callback.ForwardLog, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting forward logs: %w", err)
	}
	defer rows.Close()

	logs := []callback.ForwardLog{}
	for rows.Next() {
		var (
			l      callback.ForwardLog
			status string
			code   sql.NullInt64
			body   sql.NullString
			detail sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.MessageID, &l.TargetID, &status, &code, &body, &detail, &l.ForwardedAt); err != nil {
			return nil, fmt.Errorf("scanning forward log: %w", err)
		}
		l.Status = callback.NewForwardStatus(status)
		if code.Valid {
			c := int(code.Int64)
			l.ResponseCode = &c
		}
		if body.Valid {
			l.ResponseBody = &body.String
		}
		if detail.Valid {
			l.Error = &detail.String
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forward logs: %w", err)
	}
	return logs, nil
}

func (r *Repository) CountForwardLogsByStatus(ctx context.Context) (map[string]int64, error) {
	query := "SELECT status, COUNT(*) FROM forward_logs GROUP BY status"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting forward logs: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{
		callback.ForwardSuccess.String(): 0,
		callback.ForwardError.String():   0,
	}
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning forward log count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forward log counts: %w", err)
	}
	return counts, nil
}

func (r *Repository) CreateApplication(ctx context.Context, app callback.Application) (callback.Application, error) {
	query := `
		INSERT INTO applications (name, root_path)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query, app.Name, app.RootPath).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return callback.Application{}, fmt.Errorf("inserting application: %w", translate(err))
	}
	return app, nil
}

func (r *Repository) UpdateApplication(ctx context.Context, app callback.Application) (callback.Application, error) {
	query := `
		UPDATE applications SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING root_path, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query, app.Name, app.ID).Scan(&app.RootPath, &app.CreatedAt, &app.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return callback.Application{}, callback.ErrNotFound
	}
	if err != nil {
		return callback.Application{}, fmt.Errorf("updating application: %w", err)
	}
	return app, nil
}

func (r *Repository) DeleteApplication(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DELETE FROM applications WHERE id = $1", id, "deleting application")
}

func (r *Repository) CreateReceiver(ctx context.Context, rc callback.Receiver) (callback.Receiver, error) {
	status, headers, body, err := encodeResponse(rc.Response)
	if err != nil {
		return callback.Receiver{}, err
	}

	query := `
		INSERT INTO receivers (app_id, name, path, auto_forward, response_status, response_headers, response_body)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err = r.DB.QueryRowContext(ctx, query, rc.AppID, rc.Name, rc.Path, rc.AutoForward, status, headers, body).
		Scan(&rc.ID, &rc.CreatedAt, &rc.UpdatedAt)
	if err != nil {
		return callback.Receiver{}, fmt.Errorf("inserting receiver: %w", translate(err))
	}
	return rc, nil
}

func (r *Repository) UpdateReceiver(ctx context.Context, rc callback.Receiver) error {
	status, headers, body, err := encodeResponse(rc.Response)
	if err != nil {
		return err
	}

	query := `
		UPDATE receivers
		SET name = $1, path = $2, auto_forward = $3, response_status = $4,
			response_headers = $5, response_body = $6, updated_at = NOW()
		WHERE id = $7
	`

	result, err := r.DB.ExecContext(ctx, query, rc.Name, rc.Path, rc.AutoForward, status, headers, body, rc.ID)
	if err != nil {
		return fmt.Errorf("updating receiver: %w", translate(err))
	}
	return requireAffected(result)
}

func (r *Repository) DeleteReceiver(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DELETE FROM receivers WHERE id = $1", id, "deleting receiver")
}

func (r *Repository) CreateForwardTarget(ctx context.Context, t callback.ForwardTarget) (callback.ForwardTarget, error) {
	query := `
		INSERT INTO forward_targets (receiver_id, name, url, enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query, t.ReceiverID, t.Name, t.URL, t.Enabled).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return callback.ForwardTarget{}, fmt.Errorf("inserting forward target: %w", translate(err))
	}
	return t, nil
}

func (r *Repository) SetForwardTargetEnabled(ctx context.Context, id int64, enabled bool) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE forward_targets SET enabled = $1 WHERE id = $2", enabled, id)
	if err != nil {
		return fmt.Errorf("updating forward target: %w", err)
	}
	return requireAffected(result)
}

func (r *Repository) UpdateForwardTarget(ctx context.Context, t callback.ForwardTarget) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE forward_targets SET name = $1, url = $2, enabled = $3 WHERE id = $4",
		t.Name, t.URL, t.Enabled, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating forward target: %w", err)
	}
	return requireAffected(result)
}

func (r *Repository) DeleteForwardTarget(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DELETE FROM forward_targets WHERE id = $1", id, "deleting forward target")
}

func (r *Repository) DeleteMessage(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DELETE FROM messages WHERE id = $1", id, "deleting message")
}

func (r *Repository) DeleteMessages(ctx context.Context, receiverID int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM messages WHERE receiver_id = $1", receiverID)
	if err != nil {
		return 0, fmt.Errorf("deleting messages: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return n, nil
}

// CreateMessage stores the message and returns it with its id and server timestamp
func (r *Repository) CreateMessage(ctx context.Context, m callback.Message) (callback.Message, error) {
	headers, err := json.Marshal(m.Headers)
	if err != nil {
		return callback.Message{}, fmt.Errorf("encoding message headers: %w", err)
	}
	params, err := json.Marshal(m.Query)
	if err != nil {
		return callback.Message{}, fmt.Errorf("encoding message query: %w", err)
	}

	query := `
		INSERT INTO messages (receiver_id, method, headers, body, query, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, received_at
	`

	// the body goes as []byte so lib/pq binds it as bytea
	err = r.DB.QueryRowContext(ctx, query, m.ReceiverID, m.Method, string(headers), []byte(m.Body), string(params), m.IP, m.UserAgent).
		Scan(&m.ID, &m.ReceivedAt)
	if err != nil {
		return callback.Message{}, fmt.Errorf("inserting message: %w", translate(err))
	}
	return m, nil
}

func (r *Repository) CreateForwardLog(ctx context.Context, l callback.ForwardLog) (callback.ForwardLog, error) {
	query := `
		INSERT INTO forward_logs (message_id, target_id, status, response_code, response_body, error)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, forwarded_at
	`

	var code sql.NullInt64
	if l.ResponseCode != nil {
		code = sql.NullInt64{Int64: int64(*l.ResponseCode), Valid: true}
	}

	err := r.DB.QueryRowContext(ctx, query,
		l.MessageID,
		l.TargetID,
		l.Status.String(),
		code,
		nullString(l.ResponseBody),
		nullString(l.Error),
	).Scan(&l.ID, &l.ForwardedAt)
	if err != nil {
		return callback.ForwardLog{}, fmt.Errorf("inserting forward log: %w", translate(err))
	}
	return l, nil
}

// Close closes the database connection
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// EnsureSchema creates the tables when they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes every table (useful for tests)
func (r *Repository) DropSchema(ctx context.Context) error {
	query := "DROP TABLE IF EXISTS forward_logs, messages, forward_targets, receivers, applications CASCADE"
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("dropping schema: %w", err)
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		root_path TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS receivers (
		id BIGSERIAL PRIMARY KEY,
		app_id BIGINT NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		path TEXT NOT NULL,
		auto_forward BOOLEAN NOT NULL DEFAULT FALSE,
		response_status INTEGER,
		response_headers TEXT,
		response_body TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (app_id, path)
	)`,
	`CREATE TABLE IF NOT EXISTS forward_targets (
		id BIGSERIAL PRIMARY KEY,
		receiver_id BIGINT NOT NULL REFERENCES receivers(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		url TEXT NOT NULL,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		receiver_id BIGINT NOT NULL REFERENCES receivers(id) ON DELETE CASCADE,
		method TEXT NOT NULL,
		headers TEXT NOT NULL,
		body BYTEA NOT NULL,
		query TEXT NOT NULL,
		ip TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		received_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS forward_logs (
		id BIGSERIAL PRIMARY KEY,
		message_id BIGINT NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
		target_id BIGINT NOT NULL REFERENCES forward_targets(id) ON DELETE CASCADE,
		status TEXT NOT NULL,
		response_code INTEGER,
		response_body TEXT,
		error TEXT,
		forwarded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_receiver_id ON messages(receiver_id)`,
	`CREATE INDEX IF NOT EXISTS idx_forward_logs_message_id ON forward_logs(message_id)`,
	`CREATE INDEX IF NOT EXISTS idx_forward_logs_target_id ON forward_logs(target_id)`,
	// databases created with JSONB documents and a TEXT body are converted in place
	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns
			WHERE table_name = 'messages' AND column_name = 'body' AND data_type = 'text') THEN
			ALTER TABLE messages
				ALTER COLUMN body TYPE BYTEA USING convert_to(body, 'UTF8'),
				ALTER COLUMN headers TYPE TEXT USING headers::text,
				ALTER COLUMN query TYPE TEXT USING query::text;
			ALTER TABLE receivers ALTER COLUMN response_headers TYPE TEXT USING response_headers::text;
		END IF;
	END $$`,
}

/* scanReceiver decodes a receiver row
 * A stored override that cannot be decoded is reported as ErrConfigurationCorrupt
 */
func scanReceiver(row scanner) (callback.Receiver, error) {
	var (
		rc      callback.Receiver
		status  sql.NullInt64
		headers []byte
		body    sql.NullString
	)
	err := row.Scan(
		&rc.ID,
		&rc.AppID,
		&rc.RootPath,
		&rc.Name,
		&rc.Path,
		&rc.AutoForward,
		&status,
		&headers,
		&body,
		&rc.CreatedAt,
		&rc.UpdatedAt,
	)
	if err != nil {
		return callback.Receiver{}, err
	}

	if status.Valid {
		rc.Response.Status = int(status.Int64)
	}
	if len(headers) > 0 {
		if err := json.Unmarshal(headers, &rc.Response.Headers); err != nil {
			return callback.Receiver{}, fmt.Errorf("%w: receiver %d headers: %v", callback.ErrConfigurationCorrupt, rc.ID, err)
		}
	}
	if body.Valid && body.String != "" {
		rc.Response.Body = json.RawMessage(body.String)
	}
	if err := rc.Response.Validate(); err != nil {
		return callback.Receiver{}, fmt.Errorf("%w: receiver %d: %v", callback.ErrConfigurationCorrupt, rc.ID, err)
	}
	return rc, nil
}

func scanMessage(row scanner) (callback.Message, error) {
	var (
		m       callback.Message
		headers []byte
		body    []byte
		params  []byte
	)
	err := row.Scan(
		&m.ID,
		&m.ReceiverID,
		&m.Method,
		&headers,
		&body,
		&params,
		&m.IP,
		&m.UserAgent,
		&m.ReceivedAt,
	)
	if err != nil {
		return callback.Message{}, err
	}
	m.Body = string(body)
	if err := json.Unmarshal(headers, &m.Headers); err != nil {
		return callback.Message{}, fmt.Errorf("decoding message headers: %w", err)
	}
	if err := json.Unmarshal(params, &m.Query); err != nil {
		return callback.Message{}, fmt.Errorf("decoding message query: %w", err)
	}
	return m, nil
}

func scanTarget(row scanner) (callback.ForwardTarget, error) {
	var t callback.ForwardTarget
	err := row.Scan(&t.ID, &t.ReceiverID, &t.Name, &t.URL, &t.Enabled, &t.CreatedAt)
	return t, err
}

// JSON parameters are passed as text: lib/pq would send []byte as bytea
func encodeResponse(c callback.ResponseConfig) (sql.NullInt64, sql.NullString, sql.NullString, error) {
	var (
		status  sql.NullInt64
		headers sql.NullString
		body    sql.NullString
	)
	if c.Status != 0 {
		status = sql.NullInt64{Int64: int64(c.Status), Valid: true}
	}
	if c.Headers != nil {
		encoded, err := json.Marshal(c.Headers)
		if err != nil {
			return status, headers, body, fmt.Errorf("encoding response headers: %w", err)
		}
		headers = sql.NullString{String: string(encoded), Valid: true}
	}
	if c.HasBody() {
		body = sql.NullString{String: string(c.Body), Valid: true}
	}
	return status, headers, body, nil
}

func (r *Repository) deleteByID(ctx context.Context, query string, id int64, action string) error {
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return callback.ErrNotFound
	}
	return nil
}

// translate maps constraint violations onto domain errors
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", callback.ErrInvalidConfig, pqErr.Message)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", callback.ErrNotFound, pqErr.Message)
	}
	return err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
