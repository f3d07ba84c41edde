package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

const documentColumns = `id, type, number, date, due_date, place_of_supply, country_of_supply,
	client, items, discount_type, discount_value, shipping_charges,
	subtotal, discount_amount, cgst_total, sgst_total, igst_total, round_off, grand_total, amount_in_words,
	payment_terms, notes, is_inter_state, currency, template,
	payment_mode, reference_number, process_description, created_at, updated_at`

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO documents (` + documentColumns + `) VALUES (
		:id, :type, :number, :date, :due_date, :place_of_supply, :country_of_supply,
		:client, :items, :discount_type, :discount_value, :shipping_charges,
		:subtotal, :discount_amount, :cgst_total, :sgst_total, :igst_total, :round_off, :grand_total, :amount_in_words,
		:payment_terms, :notes, :is_inter_state, :currency, :template,
		:payment_mode, :reference_number, :process_description, :created_at, :updated_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		"SELECT "+documentColumns+" FROM documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context, docType domain.DocumentType, offset, limit int) ([]domain.Document, int, error) {
	where := ""
	args := []interface{}{}
	if docType != "" {
		where = " WHERE type = $1"
		args = append(args, docType)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM documents"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT "+documentColumns+" FROM documents"+where+
		" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) ListAll(ctx context.Context, offset, limit int) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs,
		"SELECT "+documentColumns+" FROM documents ORDER BY created_at LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ListAll: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) Update(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()

	query := `UPDATE documents SET
		number = :number, date = :date, due_date = :due_date,
		place_of_supply = :place_of_supply, country_of_supply = :country_of_supply,
		client = :client, items = :items,
		discount_type = :discount_type, discount_value = :discount_value, shipping_charges = :shipping_charges,
		subtotal = :subtotal, discount_amount = :discount_amount,
		cgst_total = :cgst_total, sgst_total = :sgst_total, igst_total = :igst_total,
		round_off = :round_off, grand_total = :grand_total, amount_in_words = :amount_in_words,
		payment_terms = :payment_terms, notes = :notes, is_inter_state = :is_inter_state,
		currency = :currency, template = :template,
		payment_mode = :payment_mode, reference_number = :reference_number,
		process_description = :process_description, updated_at = :updated_at
	WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, doc)
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
