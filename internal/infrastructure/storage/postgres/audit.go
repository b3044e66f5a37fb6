package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/klauspost/compress/zstd"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/audit"
)

// CompressionAlgo specifies how a payload is stored.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// compressThreshold is the payload size above which zstd kicks in.
const compressThreshold = 4 * 1024

// Compile-time checks.
var (
	_ audit.Recorder = (*AuditRepo)(nil)
	_ audit.Reader   = (*AuditRepo)(nil)
)

// AuditRepo persists the audit trail. Large change payloads are stored
// zstd-compressed; small ones stay as plain JSON for easy inspection.
type AuditRepo struct {
	txManager *TxManager
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
}

// NewAuditRepo creates a new audit repository.
func NewAuditRepo(txManager *TxManager) (*AuditRepo, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditRepo{
		txManager: txManager,
		encoder:   encoder,
		decoder:   decoder,
	}, nil
}

// Record inserts one audit entry. Expected to run inside the
// transaction performing the audited change.
func (r *AuditRepo) Record(ctx context.Context, entry *audit.Entry) error {
	var (
		payload    []byte
		compressed []byte
		algo       = CompressionNone
	)

	if len(entry.Payload) > 0 {
		raw, err := json.Marshal(entry.Payload)
		if err != nil {
			return fmt.Errorf("marshal audit payload: %w", err)
		}
		if len(raw) > compressThreshold {
			compressed = r.encoder.EncodeAll(raw, nil)
			algo = CompressionZstd
		} else {
			payload = raw
		}
	}

	sql := `
		INSERT INTO audit_log (
			id, record_type, record_id, action, actor,
			payload, payload_compressed, compression_algo, occurred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	querier := r.txManager.GetQuerier(ctx)
	_, err := querier.Exec(ctx, sql,
		entry.ID, entry.RecordType, entry.RecordID, entry.Action, entry.Actor,
		payload, compressed, algo, entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List retrieves audit entries newest first.
func (r *AuditRepo) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("id", "record_type", "record_id", "action", "actor",
			"payload", "payload_compressed", "compression_algo", "occurred_at").
		From("audit_log").
		OrderBy("occurred_at DESC")

	if filter.RecordType != "" {
		q = q.Where(squirrel.Eq{"record_type": filter.RecordType})
	}
	if !id.IsNil(filter.RecordID) {
		q = q.Where(squirrel.Eq{"record_id": filter.RecordID})
	}
	if filter.Actor != "" {
		q = q.Where(squirrel.Eq{"actor": filter.Actor})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry
	for rows.Next() {
		var (
			e          audit.Entry
			payload    []byte
			compressed []byte
			algo       CompressionAlgo
		)
		err := rows.Scan(
			&e.ID, &e.RecordType, &e.RecordID, &e.Action, &e.Actor,
			&payload, &compressed, &algo, &e.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}

		if algo == CompressionZstd && len(compressed) > 0 {
			payload, err = r.decoder.DecodeAll(compressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress audit payload: %w", err)
			}
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &e.Payload); err != nil {
				return nil, fmt.Errorf("unmarshal audit payload: %w", err)
			}
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
