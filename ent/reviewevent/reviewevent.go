// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldIdentifiedCount holds the string denoting the identified_count field in the database.
	FieldIdentifiedCount = "identified_count"
	// FieldTotalProblems holds the string denoting the total_problems field in the database.
	FieldTotalProblems = "total_problems"
	// FieldIdentifiedPercentage holds the string denoting the identified_percentage field in the database.
	FieldIdentifiedPercentage = "identified_percentage"
	// FieldSufficient holds the string denoting the sufficient field in the database.
	FieldSufficient = "sufficient"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldIteration,
	FieldIdentifiedCount,
	FieldTotalProblems,
	FieldIdentifiedPercentage,
	FieldSufficient,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the ReviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByIteration orders the results by the iteration field.
func ByIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIteration, opts...).ToFunc()
}

// ByIdentifiedCount orders the results by the identified_count field.
func ByIdentifiedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifiedCount, opts...).ToFunc()
}

// ByTotalProblems orders the results by the total_problems field.
func ByTotalProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalProblems, opts...).ToFunc()
}

// ByIdentifiedPercentage orders the results by the identified_percentage field.
func ByIdentifiedPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifiedPercentage, opts...).ToFunc()
}

// BySufficient orders the results by the sufficient field.
func BySufficient(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSufficient, opts...).ToFunc()
}
