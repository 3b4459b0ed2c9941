package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/fitness-center/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// It walks the chain (including errs.StorageError) and returns Other when
// no *sqlerr.Error is found.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// HandleError wraps a failed database call into an *errs.StorageError.
//
//   - nil stays nil
//   - *errs.HTTPError and *errs.StorageError are returned unchanged
//   - *pgconn.PgError is converted to *sqlerr.Error first
//   - anything else (pool exhaustion, closed connection, context
//     cancellation) is wrapped as-is
//
// op names the repository operation, e.g. "members.create".
func HandleError(op string, err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var storageErr *errs.StorageError
	if errors.As(err, &storageErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return &errs.StorageError{Op: op, Err: ConvertPgError(pgerr)}
	}

	return &errs.StorageError{Op: op, Err: err}
}

// Describe returns a machine code and a human message for a storage failure.
//
// Both are meant for logs and traces; clients only ever see a generic 500.
func Describe(err error) (code string, message string) {
	var sqlErr *Error
	if !errors.As(err, &sqlErr) {
		return "STORAGE_ERROR", "An error occurred while processing your request"
	}

	message = formatUserFriendlyMessage(sqlErr)
	if sqlErr.Code == UniqueViolation {
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			message = strings.ReplaceAll(message, "identifier", humanizeText(column))
		}
	}

	return generateErrorCode(sqlErr.TableName, sqlErr.Code), message
}

// generateErrorCode creates consistent "application error codes" from DB errors.
//
// Output format is <DOMAIN>_<ACTION>, e.g.
//
//	workout_sessions + ForeignKeyViolation => WORKOUT_SESSION_NOT_FOUND
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "MEMBERS" -> "MEMBER".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	case ConnectionFailure:
		action = "UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced by the column name when it can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case ConnectionFailure:
		return "The database is unavailable"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a "<entity>_id" column, then the singularized table name.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
// Supported conventions are "unique_<table>_<column>" and "<table>_<column>_key".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}
