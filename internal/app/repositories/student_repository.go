package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentroster/internal/app/models"
	"github.com/yigit/studentroster/internal/db"
	"github.com/yigit/studentroster/internal/pkg/apperrors"
	"github.com/yigit/studentroster/internal/pkg/dberrors"
	"github.com/yigit/studentroster/internal/pkg/helpers"
	"github.com/yigit/studentroster/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db    db.Gateway
	sb    squirrel.StatementBuilderType
	table string
	// reasonColumn receives the suspension reason; empty disables it
	reasonColumn string
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(gateway db.Gateway, table, reasonColumn string) *StudentRepository {
	return &StudentRepository{
		db:           gateway,
		sb:           squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table:        table,
		reasonColumn: reasonColumn,
	}
}

var suspendedColumn = pgx.Identifier{models.ColumnIsSuspended}.Sanitize()

// ListStudents retrieves every student ordered by id
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	query := r.sb.Select("*").
		From(r.table).
		OrderBy(models.ColumnID + " ASC")

	return r.queryStudents(ctx, "list students", query)
}

// ListActiveStudents retrieves students that are not suspended ordered by name
func (r *StudentRepository) ListActiveStudents(ctx context.Context) ([]*models.Student, error) {
	query := r.sb.Select("*").
		From(r.table).
		Where(squirrel.Eq{suspendedColumn: false}).
		OrderBy(models.ColumnName + " ASC")

	return r.queryStudents(ctx, "list active students", query)
}

// SetSuspended sets the suspension flag of one student. The change is
// committed only when a row matched; otherwise ErrStudentNotFound is returned.
// reason is stored when suspending and a reason column is configured;
// unsuspending clears it.
func (r *StudentRepository) SetSuspended(ctx context.Context, id int64, suspended bool, reason *string) error {
	update := r.sb.Update(r.table).
		Set(suspendedColumn, suspended).
		Set(models.ColumnUpdatedAt, squirrel.Expr("CURRENT_TIMESTAMP"))

	if r.reasonColumn != "" {
		switch {
		case !suspended:
			update = update.Set(r.reasonColumn, nil)
		case reason != nil:
			update = update.Set(r.reasonColumn, *reason)
		}
	}

	sql, args, err := update.Where(squirrel.Eq{models.ColumnID: id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set suspended SQL")
		return fmt.Errorf("failed to build set suspended query: %w", err)
	}

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Could not acquire database connection")
		return err
	}
	defer conn.Release()

	err = db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return dberrors.Classify(err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			logger.Warn().Int64("studentID", id).Bool("suspended", suspended).Msg("Student not found for suspension change")
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsSchemaError(err) {
			logger.Error().Err(err).Str("table", r.table).Str("reasonColumn", r.reasonColumn).Msg("Students table does not match the configured columns")
		} else {
			logger.Error().Err(err).Int64("studentID", id).Bool("suspended", suspended).Msg("Error executing set suspended query")
		}
		return dberrors.Classify(err)
	}

	logger.Info().Int64("studentID", id).Bool("suspended", suspended).Msg("Student suspension updated")
	return nil
}

// queryStudents runs a select on a freshly acquired connection and converts
// every row. The connection goes back to the pool on every path.
func (r *StudentRepository) queryStudents(ctx context.Context, operation string, query squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("operation", operation).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", operation, err)
	}

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		logger.Error().Err(err).Str("operation", operation).Msg("Could not acquire database connection")
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("operation", operation).Msg("Error executing query")
		return nil, dberrors.Classify(err)
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		logger.Error().Err(err).Str("operation", operation).Msg("Error reading student rows")
		return nil, dberrors.Classify(err)
	}

	return students, nil
}

// scanStudents converts rows into Students keyed by the result set's column names.
func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	fields := rows.FieldDescriptions()
	students := []*models.Student{}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("error decoding student row: %w", err)
		}

		student := models.NewStudent()
		for i, field := range fields {
			student.Set(field.Name, helpers.NormalizeValue(values[i]))
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
