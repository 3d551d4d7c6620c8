// Code generated by ent, DO NOT EDIT.

package response

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireloop/hireloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldQuestionID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSessionID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldContent, v))
}

// AudioPath applies equality check predicate on the "audio_path" field. It's identical to AudioPathEQ.
func AudioPath(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAudioPath, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldDurationSeconds, v))
}

// FillerCount applies equality check predicate on the "filler_count" field. It's identical to FillerCountEQ.
func FillerCount(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldFillerCount, v))
}

// WordsPerMinute applies equality check predicate on the "words_per_minute" field. It's identical to WordsPerMinuteEQ.
func WordsPerMinute(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldWordsPerMinute, v))
}

// Sentiment applies equality check predicate on the "sentiment" field. It's identical to SentimentEQ.
func Sentiment(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSentiment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCreatedAt, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldQuestionID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldSessionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldKind, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldContent, v))
}

// AudioPathEQ applies the EQ predicate on the "audio_path" field.
func AudioPathEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAudioPath, v))
}

// AudioPathNEQ applies the NEQ predicate on the "audio_path" field.
func AudioPathNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldAudioPath, v))
}

// AudioPathIn applies the In predicate on the "audio_path" field.
func AudioPathIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldAudioPath, vs...))
}

// AudioPathNotIn applies the NotIn predicate on the "audio_path" field.
func AudioPathNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldAudioPath, vs...))
}

// AudioPathGT applies the GT predicate on the "audio_path" field.
func AudioPathGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldAudioPath, v))
}

// AudioPathGTE applies the GTE predicate on the "audio_path" field.
func AudioPathGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldAudioPath, v))
}

// AudioPathLT applies the LT predicate on the "audio_path" field.
func AudioPathLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldAudioPath, v))
}

// AudioPathLTE applies the LTE predicate on the "audio_path" field.
func AudioPathLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldAudioPath, v))
}

// AudioPathContains applies the Contains predicate on the "audio_path" field.
func AudioPathContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldAudioPath, v))
}

// AudioPathHasPrefix applies the HasPrefix predicate on the "audio_path" field.
func AudioPathHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldAudioPath, v))
}

// AudioPathHasSuffix applies the HasSuffix predicate on the "audio_path" field.
func AudioPathHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldAudioPath, v))
}

// AudioPathIsNil applies the IsNil predicate on the "audio_path" field.
func AudioPathIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldAudioPath))
}

// AudioPathNotNil applies the NotNil predicate on the "audio_path" field.
func AudioPathNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldAudioPath))
}

// AudioPathEqualFold applies the EqualFold predicate on the "audio_path" field.
func AudioPathEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldAudioPath, v))
}

// AudioPathContainsFold applies the ContainsFold predicate on the "audio_path" field.
func AudioPathContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldAudioPath, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldDurationSeconds, v))
}

// FillerCountEQ applies the EQ predicate on the "filler_count" field.
func FillerCountEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldFillerCount, v))
}

// FillerCountNEQ applies the NEQ predicate on the "filler_count" field.
func FillerCountNEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldFillerCount, v))
}

// FillerCountIn applies the In predicate on the "filler_count" field.
func FillerCountIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldFillerCount, vs...))
}

// FillerCountNotIn applies the NotIn predicate on the "filler_count" field.
func FillerCountNotIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldFillerCount, vs...))
}

// FillerCountGT applies the GT predicate on the "filler_count" field.
func FillerCountGT(v int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldFillerCount, v))
}

// FillerCountGTE applies the GTE predicate on the "filler_count" field.
func FillerCountGTE(v int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldFillerCount, v))
}

// FillerCountLT applies the LT predicate on the "filler_count" field.
func FillerCountLT(v int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldFillerCount, v))
}

// FillerCountLTE applies the LTE predicate on the "filler_count" field.
func FillerCountLTE(v int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldFillerCount, v))
}

// FillerCountIsNil applies the IsNil predicate on the "filler_count" field.
func FillerCountIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldFillerCount))
}

// FillerCountNotNil applies the NotNil predicate on the "filler_count" field.
func FillerCountNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldFillerCount))
}

// WordsPerMinuteEQ applies the EQ predicate on the "words_per_minute" field.
func WordsPerMinuteEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldWordsPerMinute, v))
}

// WordsPerMinuteNEQ applies the NEQ predicate on the "words_per_minute" field.
func WordsPerMinuteNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldWordsPerMinute, v))
}

// WordsPerMinuteIn applies the In predicate on the "words_per_minute" field.
func WordsPerMinuteIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldWordsPerMinute, vs...))
}

// WordsPerMinuteNotIn applies the NotIn predicate on the "words_per_minute" field.
func WordsPerMinuteNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldWordsPerMinute, vs...))
}

// WordsPerMinuteGT applies the GT predicate on the "words_per_minute" field.
func WordsPerMinuteGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldWordsPerMinute, v))
}

// WordsPerMinuteGTE applies the GTE predicate on the "words_per_minute" field.
func WordsPerMinuteGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldWordsPerMinute, v))
}

// WordsPerMinuteLT applies the LT predicate on the "words_per_minute" field.
func WordsPerMinuteLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldWordsPerMinute, v))
}

// WordsPerMinuteLTE applies the LTE predicate on the "words_per_minute" field.
func WordsPerMinuteLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldWordsPerMinute, v))
}

// WordsPerMinuteIsNil applies the IsNil predicate on the "words_per_minute" field.
func WordsPerMinuteIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldWordsPerMinute))
}

// WordsPerMinuteNotNil applies the NotNil predicate on the "words_per_minute" field.
func WordsPerMinuteNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldWordsPerMinute))
}

// SentimentEQ applies the EQ predicate on the "sentiment" field.
func SentimentEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSentiment, v))
}

// SentimentNEQ applies the NEQ predicate on the "sentiment" field.
func SentimentNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldSentiment, v))
}

// SentimentIn applies the In predicate on the "sentiment" field.
func SentimentIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldSentiment, vs...))
}

// SentimentNotIn applies the NotIn predicate on the "sentiment" field.
func SentimentNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldSentiment, vs...))
}

// SentimentGT applies the GT predicate on the "sentiment" field.
func SentimentGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldSentiment, v))
}

// SentimentGTE applies the GTE predicate on the "sentiment" field.
func SentimentGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldSentiment, v))
}

// SentimentLT applies the LT predicate on the "sentiment" field.
func SentimentLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldSentiment, v))
}

// SentimentLTE applies the LTE predicate on the "sentiment" field.
func SentimentLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldSentiment, v))
}

// SentimentIsNil applies the IsNil predicate on the "sentiment" field.
func SentimentIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldSentiment))
}

// SentimentNotNil applies the NotNil predicate on the "sentiment" field.
func SentimentNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldSentiment))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Response {
	return predicate.Response(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Response {
	return predicate.Response(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Response {
	return predicate.Response(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Response {
	return predicate.Response(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Response) predicate.Response {
	return predicate.Response(sql.NotPredicates(p))
}
