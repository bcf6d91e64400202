// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/learnaura/aura/ent/academicevent"
	"github.com/learnaura/aura/ent/classificationevent"
	"github.com/learnaura/aura/ent/cognitiveevent"
	"github.com/learnaura/aura/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAcademicEvent       = "AcademicEvent"
	TypeClassificationEvent = "ClassificationEvent"
	TypeCognitiveEvent      = "CognitiveEvent"
)

// AcademicEventMutation represents an operation that mutates the AcademicEvent nodes in the graph.
type AcademicEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	run_id        *string
	subject_id    *string
	correct       *int
	addcorrect    *int
	total         *int
	addtotal      *int
	percentage    *float64
	addpercentage *float64
	tier          *int
	addtier       *int
	confidence    *float64
	addconfidence *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AcademicEvent, error)
	predicates    []predicate.AcademicEvent
}

var _ ent.Mutation = (*AcademicEventMutation)(nil)

// academiceventOption allows management of the mutation configuration using functional options.
type academiceventOption func(*AcademicEventMutation)

// newAcademicEventMutation creates new mutation for the AcademicEvent entity.
func newAcademicEventMutation(c config, op Op, opts ...academiceventOption) *AcademicEventMutation {
	m := &AcademicEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAcademicEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAcademicEventID sets the ID field of the mutation.
func withAcademicEventID(id int) academiceventOption {
	return func(m *AcademicEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AcademicEvent
		)
		m.oldValue = func(ctx context.Context) (*AcademicEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AcademicEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAcademicEvent sets the old AcademicEvent of the mutation.
func withAcademicEvent(node *AcademicEvent) academiceventOption {
	return func(m *AcademicEventMutation) {
		m.oldValue = func(context.Context) (*AcademicEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AcademicEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AcademicEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AcademicEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AcademicEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AcademicEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AcademicEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AcademicEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AcademicEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AcademicEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AcademicEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AcademicEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AcademicEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AcademicEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRunID sets the "run_id" field.
func (m *AcademicEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AcademicEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AcademicEventMutation) ResetRunID() {
	m.run_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *AcademicEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *AcademicEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *AcademicEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetCorrect sets the "correct" field.
func (m *AcademicEventMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AcademicEventMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *AcademicEventMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *AcademicEventMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AcademicEventMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetTotal sets the "total" field.
func (m *AcademicEventMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *AcademicEventMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *AcademicEventMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *AcademicEventMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *AcademicEventMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetPercentage sets the "percentage" field.
func (m *AcademicEventMutation) SetPercentage(f float64) {
	m.percentage = &f
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *AcademicEventMutation) Percentage() (r float64, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds f to the "percentage" field.
func (m *AcademicEventMutation) AddPercentage(f float64) {
	if m.addpercentage != nil {
		*m.addpercentage += f
	} else {
		m.addpercentage = &f
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *AcademicEventMutation) AddedPercentage() (r float64, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *AcademicEventMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetTier sets the "tier" field.
func (m *AcademicEventMutation) SetTier(i int) {
	m.tier = &i
	m.addtier = nil
}

// Tier returns the value of the "tier" field in the mutation.
func (m *AcademicEventMutation) Tier() (r int, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldTier(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// AddTier adds i to the "tier" field.
func (m *AcademicEventMutation) AddTier(i int) {
	if m.addtier != nil {
		*m.addtier += i
	} else {
		m.addtier = &i
	}
}

// AddedTier returns the value that was added to the "tier" field in this mutation.
func (m *AcademicEventMutation) AddedTier() (r int, exists bool) {
	v := m.addtier
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier resets all changes to the "tier" field.
func (m *AcademicEventMutation) ResetTier() {
	m.tier = nil
	m.addtier = nil
}

// SetConfidence sets the "confidence" field.
func (m *AcademicEventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AcademicEventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AcademicEvent entity.
// If the AcademicEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AcademicEventMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AcademicEventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AcademicEventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AcademicEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// Where appends a list predicates to the AcademicEventMutation builder.
func (m *AcademicEventMutation) Where(ps ...predicate.AcademicEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AcademicEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AcademicEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AcademicEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AcademicEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AcademicEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AcademicEvent).
func (m *AcademicEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AcademicEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, academicevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, academicevent.FieldTimestamp)
	}
	if m.run_id != nil {
		fields = append(fields, academicevent.FieldRunID)
	}
	if m.subject_id != nil {
		fields = append(fields, academicevent.FieldSubjectID)
	}
	if m.correct != nil {
		fields = append(fields, academicevent.FieldCorrect)
	}
	if m.total != nil {
		fields = append(fields, academicevent.FieldTotal)
	}
	if m.percentage != nil {
		fields = append(fields, academicevent.FieldPercentage)
	}
	if m.tier != nil {
		fields = append(fields, academicevent.FieldTier)
	}
	if m.confidence != nil {
		fields = append(fields, academicevent.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AcademicEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case academicevent.FieldSequence:
		return m.Sequence()
	case academicevent.FieldTimestamp:
		return m.Timestamp()
	case academicevent.FieldRunID:
		return m.RunID()
	case academicevent.FieldSubjectID:
		return m.SubjectID()
	case academicevent.FieldCorrect:
		return m.Correct()
	case academicevent.FieldTotal:
		return m.Total()
	case academicevent.FieldPercentage:
		return m.Percentage()
	case academicevent.FieldTier:
		return m.Tier()
	case academicevent.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AcademicEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case academicevent.FieldSequence:
		return m.OldSequence(ctx)
	case academicevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case academicevent.FieldRunID:
		return m.OldRunID(ctx)
	case academicevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case academicevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case academicevent.FieldTotal:
		return m.OldTotal(ctx)
	case academicevent.FieldPercentage:
		return m.OldPercentage(ctx)
	case academicevent.FieldTier:
		return m.OldTier(ctx)
	case academicevent.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown AcademicEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AcademicEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case academicevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case academicevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case academicevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case academicevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case academicevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case academicevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case academicevent.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case academicevent.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case academicevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AcademicEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AcademicEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, academicevent.FieldSequence)
	}
	if m.addcorrect != nil {
		fields = append(fields, academicevent.FieldCorrect)
	}
	if m.addtotal != nil {
		fields = append(fields, academicevent.FieldTotal)
	}
	if m.addpercentage != nil {
		fields = append(fields, academicevent.FieldPercentage)
	}
	if m.addtier != nil {
		fields = append(fields, academicevent.FieldTier)
	}
	if m.addconfidence != nil {
		fields = append(fields, academicevent.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AcademicEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case academicevent.FieldSequence:
		return m.AddedSequence()
	case academicevent.FieldCorrect:
		return m.AddedCorrect()
	case academicevent.FieldTotal:
		return m.AddedTotal()
	case academicevent.FieldPercentage:
		return m.AddedPercentage()
	case academicevent.FieldTier:
		return m.AddedTier()
	case academicevent.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AcademicEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case academicevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case academicevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case academicevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case academicevent.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	case academicevent.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier(v)
		return nil
	case academicevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AcademicEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AcademicEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AcademicEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AcademicEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AcademicEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AcademicEventMutation) ResetField(name string) error {
	switch name {
	case academicevent.FieldSequence:
		m.ResetSequence()
		return nil
	case academicevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case academicevent.FieldRunID:
		m.ResetRunID()
		return nil
	case academicevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case academicevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case academicevent.FieldTotal:
		m.ResetTotal()
		return nil
	case academicevent.FieldPercentage:
		m.ResetPercentage()
		return nil
	case academicevent.FieldTier:
		m.ResetTier()
		return nil
	case academicevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown AcademicEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AcademicEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AcademicEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AcademicEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AcademicEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AcademicEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AcademicEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AcademicEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AcademicEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AcademicEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AcademicEvent edge %s", name)
}

// ClassificationEventMutation represents an operation that mutates the ClassificationEvent nodes in the graph.
type ClassificationEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	timestamp              *time.Time
	run_id                 *string
	subject_id             *string
	primary                *string
	secondary              *[]string
	appendsecondary        []string
	confidence             *float64
	addconfidence          *float64
	category_scores        *map[string]int
	triangulation_score    *float64
	addtriangulation_score *float64
	triangulated           *bool
	shifted                *bool
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ClassificationEvent, error)
	predicates             []predicate.ClassificationEvent
}

var _ ent.Mutation = (*ClassificationEventMutation)(nil)

// classificationeventOption allows management of the mutation configuration using functional options.
type classificationeventOption func(*ClassificationEventMutation)

// newClassificationEventMutation creates new mutation for the ClassificationEvent entity.
func newClassificationEventMutation(c config, op Op, opts ...classificationeventOption) *ClassificationEventMutation {
	m := &ClassificationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeClassificationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClassificationEventID sets the ID field of the mutation.
func withClassificationEventID(id int) classificationeventOption {
	return func(m *ClassificationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ClassificationEvent
		)
		m.oldValue = func(ctx context.Context) (*ClassificationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClassificationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClassificationEvent sets the old ClassificationEvent of the mutation.
func withClassificationEvent(node *ClassificationEvent) classificationeventOption {
	return func(m *ClassificationEventMutation) {
		m.oldValue = func(context.Context) (*ClassificationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClassificationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClassificationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClassificationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClassificationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClassificationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ClassificationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ClassificationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ClassificationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ClassificationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ClassificationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ClassificationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ClassificationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ClassificationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRunID sets the "run_id" field.
func (m *ClassificationEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ClassificationEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ClassificationEventMutation) ResetRunID() {
	m.run_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *ClassificationEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *ClassificationEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *ClassificationEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetPrimary sets the "primary" field.
func (m *ClassificationEventMutation) SetPrimary(s string) {
	m.primary = &s
}

// Primary returns the value of the "primary" field in the mutation.
func (m *ClassificationEventMutation) Primary() (r string, exists bool) {
	v := m.primary
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimary returns the old "primary" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldPrimary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimary: %w", err)
	}
	return oldValue.Primary, nil
}

// ResetPrimary resets all changes to the "primary" field.
func (m *ClassificationEventMutation) ResetPrimary() {
	m.primary = nil
}

// SetSecondary sets the "secondary" field.
func (m *ClassificationEventMutation) SetSecondary(s []string) {
	m.secondary = &s
	m.appendsecondary = nil
}

// Secondary returns the value of the "secondary" field in the mutation.
func (m *ClassificationEventMutation) Secondary() (r []string, exists bool) {
	v := m.secondary
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondary returns the old "secondary" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldSecondary(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondary: %w", err)
	}
	return oldValue.Secondary, nil
}

// AppendSecondary adds s to the "secondary" field.
func (m *ClassificationEventMutation) AppendSecondary(s []string) {
	m.appendsecondary = append(m.appendsecondary, s...)
}

// AppendedSecondary returns the list of values that were appended to the "secondary" field in this mutation.
func (m *ClassificationEventMutation) AppendedSecondary() ([]string, bool) {
	if len(m.appendsecondary) == 0 {
		return nil, false
	}
	return m.appendsecondary, true
}

// ResetSecondary resets all changes to the "secondary" field.
func (m *ClassificationEventMutation) ResetSecondary() {
	m.secondary = nil
	m.appendsecondary = nil
}

// SetConfidence sets the "confidence" field.
func (m *ClassificationEventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ClassificationEventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ClassificationEventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ClassificationEventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ClassificationEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCategoryScores sets the "category_scores" field.
func (m *ClassificationEventMutation) SetCategoryScores(value map[string]int) {
	m.category_scores = &value
}

// CategoryScores returns the value of the "category_scores" field in the mutation.
func (m *ClassificationEventMutation) CategoryScores() (r map[string]int, exists bool) {
	v := m.category_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryScores returns the old "category_scores" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldCategoryScores(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryScores: %w", err)
	}
	return oldValue.CategoryScores, nil
}

// ResetCategoryScores resets all changes to the "category_scores" field.
func (m *ClassificationEventMutation) ResetCategoryScores() {
	m.category_scores = nil
}

// SetTriangulationScore sets the "triangulation_score" field.
func (m *ClassificationEventMutation) SetTriangulationScore(f float64) {
	m.triangulation_score = &f
	m.addtriangulation_score = nil
}

// TriangulationScore returns the value of the "triangulation_score" field in the mutation.
func (m *ClassificationEventMutation) TriangulationScore() (r float64, exists bool) {
	v := m.triangulation_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTriangulationScore returns the old "triangulation_score" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldTriangulationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriangulationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriangulationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriangulationScore: %w", err)
	}
	return oldValue.TriangulationScore, nil
}

// AddTriangulationScore adds f to the "triangulation_score" field.
func (m *ClassificationEventMutation) AddTriangulationScore(f float64) {
	if m.addtriangulation_score != nil {
		*m.addtriangulation_score += f
	} else {
		m.addtriangulation_score = &f
	}
}

// AddedTriangulationScore returns the value that was added to the "triangulation_score" field in this mutation.
func (m *ClassificationEventMutation) AddedTriangulationScore() (r float64, exists bool) {
	v := m.addtriangulation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTriangulationScore resets all changes to the "triangulation_score" field.
func (m *ClassificationEventMutation) ResetTriangulationScore() {
	m.triangulation_score = nil
	m.addtriangulation_score = nil
}

// SetTriangulated sets the "triangulated" field.
func (m *ClassificationEventMutation) SetTriangulated(b bool) {
	m.triangulated = &b
}

// Triangulated returns the value of the "triangulated" field in the mutation.
func (m *ClassificationEventMutation) Triangulated() (r bool, exists bool) {
	v := m.triangulated
	if v == nil {
		return
	}
	return *v, true
}

// OldTriangulated returns the old "triangulated" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldTriangulated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriangulated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriangulated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriangulated: %w", err)
	}
	return oldValue.Triangulated, nil
}

// ResetTriangulated resets all changes to the "triangulated" field.
func (m *ClassificationEventMutation) ResetTriangulated() {
	m.triangulated = nil
}

// SetShifted sets the "shifted" field.
func (m *ClassificationEventMutation) SetShifted(b bool) {
	m.shifted = &b
}

// Shifted returns the value of the "shifted" field in the mutation.
func (m *ClassificationEventMutation) Shifted() (r bool, exists bool) {
	v := m.shifted
	if v == nil {
		return
	}
	return *v, true
}

// OldShifted returns the old "shifted" field's value of the ClassificationEvent entity.
// If the ClassificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationEventMutation) OldShifted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShifted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShifted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShifted: %w", err)
	}
	return oldValue.Shifted, nil
}

// ResetShifted resets all changes to the "shifted" field.
func (m *ClassificationEventMutation) ResetShifted() {
	m.shifted = nil
}

// Where appends a list predicates to the ClassificationEventMutation builder.
func (m *ClassificationEventMutation) Where(ps ...predicate.ClassificationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClassificationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClassificationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClassificationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClassificationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClassificationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClassificationEvent).
func (m *ClassificationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClassificationEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, classificationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, classificationevent.FieldTimestamp)
	}
	if m.run_id != nil {
		fields = append(fields, classificationevent.FieldRunID)
	}
	if m.subject_id != nil {
		fields = append(fields, classificationevent.FieldSubjectID)
	}
	if m.primary != nil {
		fields = append(fields, classificationevent.FieldPrimary)
	}
	if m.secondary != nil {
		fields = append(fields, classificationevent.FieldSecondary)
	}
	if m.confidence != nil {
		fields = append(fields, classificationevent.FieldConfidence)
	}
	if m.category_scores != nil {
		fields = append(fields, classificationevent.FieldCategoryScores)
	}
	if m.triangulation_score != nil {
		fields = append(fields, classificationevent.FieldTriangulationScore)
	}
	if m.triangulated != nil {
		fields = append(fields, classificationevent.FieldTriangulated)
	}
	if m.shifted != nil {
		fields = append(fields, classificationevent.FieldShifted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClassificationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case classificationevent.FieldSequence:
		return m.Sequence()
	case classificationevent.FieldTimestamp:
		return m.Timestamp()
	case classificationevent.FieldRunID:
		return m.RunID()
	case classificationevent.FieldSubjectID:
		return m.SubjectID()
	case classificationevent.FieldPrimary:
		return m.Primary()
	case classificationevent.FieldSecondary:
		return m.Secondary()
	case classificationevent.FieldConfidence:
		return m.Confidence()
	case classificationevent.FieldCategoryScores:
		return m.CategoryScores()
	case classificationevent.FieldTriangulationScore:
		return m.TriangulationScore()
	case classificationevent.FieldTriangulated:
		return m.Triangulated()
	case classificationevent.FieldShifted:
		return m.Shifted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClassificationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case classificationevent.FieldSequence:
		return m.OldSequence(ctx)
	case classificationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case classificationevent.FieldRunID:
		return m.OldRunID(ctx)
	case classificationevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case classificationevent.FieldPrimary:
		return m.OldPrimary(ctx)
	case classificationevent.FieldSecondary:
		return m.OldSecondary(ctx)
	case classificationevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case classificationevent.FieldCategoryScores:
		return m.OldCategoryScores(ctx)
	case classificationevent.FieldTriangulationScore:
		return m.OldTriangulationScore(ctx)
	case classificationevent.FieldTriangulated:
		return m.OldTriangulated(ctx)
	case classificationevent.FieldShifted:
		return m.OldShifted(ctx)
	}
	return nil, fmt.Errorf("unknown ClassificationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case classificationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case classificationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case classificationevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case classificationevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case classificationevent.FieldPrimary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimary(v)
		return nil
	case classificationevent.FieldSecondary:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondary(v)
		return nil
	case classificationevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case classificationevent.FieldCategoryScores:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryScores(v)
		return nil
	case classificationevent.FieldTriangulationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriangulationScore(v)
		return nil
	case classificationevent.FieldTriangulated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriangulated(v)
		return nil
	case classificationevent.FieldShifted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShifted(v)
		return nil
	}
	return fmt.Errorf("unknown ClassificationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClassificationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, classificationevent.FieldSequence)
	}
	if m.addconfidence != nil {
		fields = append(fields, classificationevent.FieldConfidence)
	}
	if m.addtriangulation_score != nil {
		fields = append(fields, classificationevent.FieldTriangulationScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClassificationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case classificationevent.FieldSequence:
		return m.AddedSequence()
	case classificationevent.FieldConfidence:
		return m.AddedConfidence()
	case classificationevent.FieldTriangulationScore:
		return m.AddedTriangulationScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case classificationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case classificationevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case classificationevent.FieldTriangulationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTriangulationScore(v)
		return nil
	}
	return fmt.Errorf("unknown ClassificationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClassificationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClassificationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClassificationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClassificationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClassificationEventMutation) ResetField(name string) error {
	switch name {
	case classificationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case classificationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case classificationevent.FieldRunID:
		m.ResetRunID()
		return nil
	case classificationevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case classificationevent.FieldPrimary:
		m.ResetPrimary()
		return nil
	case classificationevent.FieldSecondary:
		m.ResetSecondary()
		return nil
	case classificationevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case classificationevent.FieldCategoryScores:
		m.ResetCategoryScores()
		return nil
	case classificationevent.FieldTriangulationScore:
		m.ResetTriangulationScore()
		return nil
	case classificationevent.FieldTriangulated:
		m.ResetTriangulated()
		return nil
	case classificationevent.FieldShifted:
		m.ResetShifted()
		return nil
	}
	return fmt.Errorf("unknown ClassificationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClassificationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClassificationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClassificationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClassificationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClassificationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClassificationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClassificationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClassificationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClassificationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClassificationEvent edge %s", name)
}

// CognitiveEventMutation represents an operation that mutates the CognitiveEvent nodes in the graph.
type CognitiveEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	run_id        *string
	subject_id    *string
	rater         *string
	domain_scores *map[string]float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CognitiveEvent, error)
	predicates    []predicate.CognitiveEvent
}

var _ ent.Mutation = (*CognitiveEventMutation)(nil)

// cognitiveeventOption allows management of the mutation configuration using functional options.
type cognitiveeventOption func(*CognitiveEventMutation)

// newCognitiveEventMutation creates new mutation for the CognitiveEvent entity.
func newCognitiveEventMutation(c config, op Op, opts ...cognitiveeventOption) *CognitiveEventMutation {
	m := &CognitiveEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCognitiveEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCognitiveEventID sets the ID field of the mutation.
func withCognitiveEventID(id int) cognitiveeventOption {
	return func(m *CognitiveEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CognitiveEvent
		)
		m.oldValue = func(ctx context.Context) (*CognitiveEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CognitiveEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCognitiveEvent sets the old CognitiveEvent of the mutation.
func withCognitiveEvent(node *CognitiveEvent) cognitiveeventOption {
	return func(m *CognitiveEventMutation) {
		m.oldValue = func(context.Context) (*CognitiveEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CognitiveEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CognitiveEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CognitiveEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CognitiveEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CognitiveEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *CognitiveEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CognitiveEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CognitiveEvent entity.
// If the CognitiveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CognitiveEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CognitiveEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CognitiveEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CognitiveEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CognitiveEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CognitiveEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CognitiveEvent entity.
// If the CognitiveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CognitiveEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CognitiveEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRunID sets the "run_id" field.
func (m *CognitiveEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *CognitiveEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the CognitiveEvent entity.
// If the CognitiveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CognitiveEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *CognitiveEventMutation) ResetRunID() {
	m.run_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *CognitiveEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *CognitiveEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the CognitiveEvent entity.
// If the CognitiveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CognitiveEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *CognitiveEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetRater sets the "rater" field.
func (m *CognitiveEventMutation) SetRater(s string) {
	m.rater = &s
}

// Rater returns the value of the "rater" field in the mutation.
func (m *CognitiveEventMutation) Rater() (r string, exists bool) {
	v := m.rater
	if v == nil {
		return
	}
	return *v, true
}

// OldRater returns the old "rater" field's value of the CognitiveEvent entity.
// If the CognitiveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CognitiveEventMutation) OldRater(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRater is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRater requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRater: %w", err)
	}
	return oldValue.Rater, nil
}

// ResetRater resets all changes to the "rater" field.
func (m *CognitiveEventMutation) ResetRater() {
	m.rater = nil
}

// SetDomainScores sets the "domain_scores" field.
func (m *CognitiveEventMutation) SetDomainScores(value map[string]float64) {
	m.domain_scores = &value
}

// DomainScores returns the value of the "domain_scores" field in the mutation.
func (m *CognitiveEventMutation) DomainScores() (r map[string]float64, exists bool) {
	v := m.domain_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainScores returns the old "domain_scores" field's value of the CognitiveEvent entity.
// If the CognitiveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CognitiveEventMutation) OldDomainScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainScores: %w", err)
	}
	return oldValue.DomainScores, nil
}

// ResetDomainScores resets all changes to the "domain_scores" field.
func (m *CognitiveEventMutation) ResetDomainScores() {
	m.domain_scores = nil
}

// Where appends a list predicates to the CognitiveEventMutation builder.
func (m *CognitiveEventMutation) Where(ps ...predicate.CognitiveEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CognitiveEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CognitiveEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CognitiveEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CognitiveEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CognitiveEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CognitiveEvent).
func (m *CognitiveEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CognitiveEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, cognitiveevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, cognitiveevent.FieldTimestamp)
	}
	if m.run_id != nil {
		fields = append(fields, cognitiveevent.FieldRunID)
	}
	if m.subject_id != nil {
		fields = append(fields, cognitiveevent.FieldSubjectID)
	}
	if m.rater != nil {
		fields = append(fields, cognitiveevent.FieldRater)
	}
	if m.domain_scores != nil {
		fields = append(fields, cognitiveevent.FieldDomainScores)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CognitiveEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cognitiveevent.FieldSequence:
		return m.Sequence()
	case cognitiveevent.FieldTimestamp:
		return m.Timestamp()
	case cognitiveevent.FieldRunID:
		return m.RunID()
	case cognitiveevent.FieldSubjectID:
		return m.SubjectID()
	case cognitiveevent.FieldRater:
		return m.Rater()
	case cognitiveevent.FieldDomainScores:
		return m.DomainScores()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CognitiveEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cognitiveevent.FieldSequence:
		return m.OldSequence(ctx)
	case cognitiveevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case cognitiveevent.FieldRunID:
		return m.OldRunID(ctx)
	case cognitiveevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case cognitiveevent.FieldRater:
		return m.OldRater(ctx)
	case cognitiveevent.FieldDomainScores:
		return m.OldDomainScores(ctx)
	}
	return nil, fmt.Errorf("unknown CognitiveEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CognitiveEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cognitiveevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case cognitiveevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case cognitiveevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case cognitiveevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case cognitiveevent.FieldRater:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRater(v)
		return nil
	case cognitiveevent.FieldDomainScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainScores(v)
		return nil
	}
	return fmt.Errorf("unknown CognitiveEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CognitiveEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, cognitiveevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CognitiveEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cognitiveevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CognitiveEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cognitiveevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown CognitiveEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CognitiveEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CognitiveEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CognitiveEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CognitiveEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CognitiveEventMutation) ResetField(name string) error {
	switch name {
	case cognitiveevent.FieldSequence:
		m.ResetSequence()
		return nil
	case cognitiveevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case cognitiveevent.FieldRunID:
		m.ResetRunID()
		return nil
	case cognitiveevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case cognitiveevent.FieldRater:
		m.ResetRater()
		return nil
	case cognitiveevent.FieldDomainScores:
		m.ResetDomainScores()
		return nil
	}
	return fmt.Errorf("unknown CognitiveEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CognitiveEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CognitiveEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CognitiveEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CognitiveEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CognitiveEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CognitiveEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CognitiveEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CognitiveEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CognitiveEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CognitiveEvent edge %s", name)
}
