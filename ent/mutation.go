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
	"github.com/hireloop/hireloop/ent/adminuser"
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/company"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/slot"
	"github.com/hireloop/hireloop/ent/testcase"
	"github.com/hireloop/hireloop/ent/warninglog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdminUser        = "AdminUser"
	TypeCandidate        = "Candidate"
	TypeCodeSubmission   = "CodeSubmission"
	TypeCompany          = "Company"
	TypeEvaluationResult = "EvaluationResult"
	TypeInterview        = "Interview"
	TypeJob              = "Job"
	TypeQuestion         = "Question"
	TypeResponse         = "Response"
	TypeSchedule         = "Schedule"
	TypeSession          = "Session"
	TypeSlot             = "Slot"
	TypeTestCase         = "TestCase"
	TypeWarningLog       = "WarningLog"
)

// AdminUserMutation represents an operation that mutates the AdminUser nodes in the graph.
type AdminUserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	username      *string
	email         *string
	password_hash *string
	is_superuser  *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AdminUser, error)
	predicates    []predicate.AdminUser
}

var _ ent.Mutation = (*AdminUserMutation)(nil)

// adminuserOption allows management of the mutation configuration using functional options.
type adminuserOption func(*AdminUserMutation)

// newAdminUserMutation creates new mutation for the AdminUser entity.
func newAdminUserMutation(c config, op Op, opts ...adminuserOption) *AdminUserMutation {
	m := &AdminUserMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminUserID sets the ID field of the mutation.
func withAdminUserID(id string) adminuserOption {
	return func(m *AdminUserMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminUser
		)
		m.oldValue = func(ctx context.Context) (*AdminUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminUser sets the old AdminUser of the mutation.
func withAdminUser(node *AdminUser) adminuserOption {
	return func(m *AdminUserMutation) {
		m.oldValue = func(context.Context) (*AdminUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminUser entities.
func (m *AdminUserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminUserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminUserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *AdminUserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *AdminUserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *AdminUserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *AdminUserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AdminUserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AdminUserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AdminUserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AdminUserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AdminUserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetIsSuperuser sets the "is_superuser" field.
func (m *AdminUserMutation) SetIsSuperuser(b bool) {
	m.is_superuser = &b
}

// IsSuperuser returns the value of the "is_superuser" field in the mutation.
func (m *AdminUserMutation) IsSuperuser() (r bool, exists bool) {
	v := m.is_superuser
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuperuser returns the old "is_superuser" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldIsSuperuser(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuperuser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuperuser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuperuser: %w", err)
	}
	return oldValue.IsSuperuser, nil
}

// ResetIsSuperuser resets all changes to the "is_superuser" field.
func (m *AdminUserMutation) ResetIsSuperuser() {
	m.is_superuser = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdminUserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdminUserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdminUserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AdminUserMutation builder.
func (m *AdminUserMutation) Where(ps ...predicate.AdminUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminUser).
func (m *AdminUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminUserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.username != nil {
		fields = append(fields, adminuser.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, adminuser.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, adminuser.FieldPasswordHash)
	}
	if m.is_superuser != nil {
		fields = append(fields, adminuser.FieldIsSuperuser)
	}
	if m.created_at != nil {
		fields = append(fields, adminuser.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, adminuser.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminuser.FieldUsername:
		return m.Username()
	case adminuser.FieldEmail:
		return m.Email()
	case adminuser.FieldPasswordHash:
		return m.PasswordHash()
	case adminuser.FieldIsSuperuser:
		return m.IsSuperuser()
	case adminuser.FieldCreatedAt:
		return m.CreatedAt()
	case adminuser.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminuser.FieldUsername:
		return m.OldUsername(ctx)
	case adminuser.FieldEmail:
		return m.OldEmail(ctx)
	case adminuser.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case adminuser.FieldIsSuperuser:
		return m.OldIsSuperuser(ctx)
	case adminuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case adminuser.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminuser.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case adminuser.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case adminuser.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case adminuser.FieldIsSuperuser:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuperuser(v)
		return nil
	case adminuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case adminuser.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminUserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminUserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdminUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminUserMutation) ResetField(name string) error {
	switch name {
	case adminuser.FieldUsername:
		m.ResetUsername()
		return nil
	case adminuser.FieldEmail:
		m.ResetEmail()
		return nil
	case adminuser.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case adminuser.FieldIsSuperuser:
		m.ResetIsSuperuser()
		return nil
	case adminuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case adminuser.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminUserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminUserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminUserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdminUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminUserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdminUser edge %s", name)
}

// CandidateMutation represents an operation that mutates the Candidate nodes in the graph.
type CandidateMutation struct {
	config
	op                Op
	typ               string
	id                *string
	full_name         *string
	email             *string
	phone             *string
	resume_text       *string
	resume_path       *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	interviews        map[string]struct{}
	removedinterviews map[string]struct{}
	clearedinterviews bool
	done              bool
	oldValue          func(context.Context) (*Candidate, error)
	predicates        []predicate.Candidate
}

var _ ent.Mutation = (*CandidateMutation)(nil)

// candidateOption allows management of the mutation configuration using functional options.
type candidateOption func(*CandidateMutation)

// newCandidateMutation creates new mutation for the Candidate entity.
func newCandidateMutation(c config, op Op, opts ...candidateOption) *CandidateMutation {
	m := &CandidateMutation{
		config:        c,
		op:            op,
		typ:           TypeCandidate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCandidateID sets the ID field of the mutation.
func withCandidateID(id string) candidateOption {
	return func(m *CandidateMutation) {
		var (
			err   error
			once  sync.Once
			value *Candidate
		)
		m.oldValue = func(ctx context.Context) (*Candidate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Candidate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCandidate sets the old Candidate of the mutation.
func withCandidate(node *Candidate) candidateOption {
	return func(m *CandidateMutation) {
		m.oldValue = func(context.Context) (*Candidate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CandidateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CandidateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Candidate entities.
func (m *CandidateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CandidateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CandidateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Candidate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullName sets the "full_name" field.
func (m *CandidateMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *CandidateMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *CandidateMutation) ResetFullName() {
	m.full_name = nil
}

// SetEmail sets the "email" field.
func (m *CandidateMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CandidateMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *CandidateMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *CandidateMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CandidateMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CandidateMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[candidate.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CandidateMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[candidate.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CandidateMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, candidate.FieldPhone)
}

// SetResumeText sets the "resume_text" field.
func (m *CandidateMutation) SetResumeText(s string) {
	m.resume_text = &s
}

// ResumeText returns the value of the "resume_text" field in the mutation.
func (m *CandidateMutation) ResumeText() (r string, exists bool) {
	v := m.resume_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeText returns the old "resume_text" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldResumeText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeText: %w", err)
	}
	return oldValue.ResumeText, nil
}

// ClearResumeText clears the value of the "resume_text" field.
func (m *CandidateMutation) ClearResumeText() {
	m.resume_text = nil
	m.clearedFields[candidate.FieldResumeText] = struct{}{}
}

// ResumeTextCleared returns if the "resume_text" field was cleared in this mutation.
func (m *CandidateMutation) ResumeTextCleared() bool {
	_, ok := m.clearedFields[candidate.FieldResumeText]
	return ok
}

// ResetResumeText resets all changes to the "resume_text" field.
func (m *CandidateMutation) ResetResumeText() {
	m.resume_text = nil
	delete(m.clearedFields, candidate.FieldResumeText)
}

// SetResumePath sets the "resume_path" field.
func (m *CandidateMutation) SetResumePath(s string) {
	m.resume_path = &s
}

// ResumePath returns the value of the "resume_path" field in the mutation.
func (m *CandidateMutation) ResumePath() (r string, exists bool) {
	v := m.resume_path
	if v == nil {
		return
	}
	return *v, true
}

// OldResumePath returns the old "resume_path" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldResumePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumePath: %w", err)
	}
	return oldValue.ResumePath, nil
}

// ClearResumePath clears the value of the "resume_path" field.
func (m *CandidateMutation) ClearResumePath() {
	m.resume_path = nil
	m.clearedFields[candidate.FieldResumePath] = struct{}{}
}

// ResumePathCleared returns if the "resume_path" field was cleared in this mutation.
func (m *CandidateMutation) ResumePathCleared() bool {
	_, ok := m.clearedFields[candidate.FieldResumePath]
	return ok
}

// ResetResumePath resets all changes to the "resume_path" field.
func (m *CandidateMutation) ResetResumePath() {
	m.resume_path = nil
	delete(m.clearedFields, candidate.FieldResumePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *CandidateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CandidateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CandidateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CandidateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CandidateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CandidateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by ids.
func (m *CandidateMutation) AddInterviewIDs(ids ...string) {
	if m.interviews == nil {
		m.interviews = make(map[string]struct{})
	}
	for i := range ids {
		m.interviews[ids[i]] = struct{}{}
	}
}

// ClearInterviews clears the "interviews" edge to the Interview entity.
func (m *CandidateMutation) ClearInterviews() {
	m.clearedinterviews = true
}

// InterviewsCleared reports if the "interviews" edge to the Interview entity was cleared.
func (m *CandidateMutation) InterviewsCleared() bool {
	return m.clearedinterviews
}

// RemoveInterviewIDs removes the "interviews" edge to the Interview entity by IDs.
func (m *CandidateMutation) RemoveInterviewIDs(ids ...string) {
	if m.removedinterviews == nil {
		m.removedinterviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.interviews, ids[i])
		m.removedinterviews[ids[i]] = struct{}{}
	}
}

// RemovedInterviews returns the removed IDs of the "interviews" edge to the Interview entity.
func (m *CandidateMutation) RemovedInterviewsIDs() (ids []string) {
	for id := range m.removedinterviews {
		ids = append(ids, id)
	}
	return
}

// InterviewsIDs returns the "interviews" edge IDs in the mutation.
func (m *CandidateMutation) InterviewsIDs() (ids []string) {
	for id := range m.interviews {
		ids = append(ids, id)
	}
	return
}

// ResetInterviews resets all changes to the "interviews" edge.
func (m *CandidateMutation) ResetInterviews() {
	m.interviews = nil
	m.clearedinterviews = false
	m.removedinterviews = nil
}

// Where appends a list predicates to the CandidateMutation builder.
func (m *CandidateMutation) Where(ps ...predicate.Candidate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CandidateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CandidateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Candidate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CandidateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CandidateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Candidate).
func (m *CandidateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CandidateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.full_name != nil {
		fields = append(fields, candidate.FieldFullName)
	}
	if m.email != nil {
		fields = append(fields, candidate.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, candidate.FieldPhone)
	}
	if m.resume_text != nil {
		fields = append(fields, candidate.FieldResumeText)
	}
	if m.resume_path != nil {
		fields = append(fields, candidate.FieldResumePath)
	}
	if m.created_at != nil {
		fields = append(fields, candidate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, candidate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CandidateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case candidate.FieldFullName:
		return m.FullName()
	case candidate.FieldEmail:
		return m.Email()
	case candidate.FieldPhone:
		return m.Phone()
	case candidate.FieldResumeText:
		return m.ResumeText()
	case candidate.FieldResumePath:
		return m.ResumePath()
	case candidate.FieldCreatedAt:
		return m.CreatedAt()
	case candidate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CandidateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case candidate.FieldFullName:
		return m.OldFullName(ctx)
	case candidate.FieldEmail:
		return m.OldEmail(ctx)
	case candidate.FieldPhone:
		return m.OldPhone(ctx)
	case candidate.FieldResumeText:
		return m.OldResumeText(ctx)
	case candidate.FieldResumePath:
		return m.OldResumePath(ctx)
	case candidate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case candidate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Candidate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case candidate.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case candidate.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case candidate.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case candidate.FieldResumeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeText(v)
		return nil
	case candidate.FieldResumePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumePath(v)
		return nil
	case candidate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case candidate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CandidateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CandidateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CandidateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(candidate.FieldPhone) {
		fields = append(fields, candidate.FieldPhone)
	}
	if m.FieldCleared(candidate.FieldResumeText) {
		fields = append(fields, candidate.FieldResumeText)
	}
	if m.FieldCleared(candidate.FieldResumePath) {
		fields = append(fields, candidate.FieldResumePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CandidateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CandidateMutation) ClearField(name string) error {
	switch name {
	case candidate.FieldPhone:
		m.ClearPhone()
		return nil
	case candidate.FieldResumeText:
		m.ClearResumeText()
		return nil
	case candidate.FieldResumePath:
		m.ClearResumePath()
		return nil
	}
	return fmt.Errorf("unknown Candidate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CandidateMutation) ResetField(name string) error {
	switch name {
	case candidate.FieldFullName:
		m.ResetFullName()
		return nil
	case candidate.FieldEmail:
		m.ResetEmail()
		return nil
	case candidate.FieldPhone:
		m.ResetPhone()
		return nil
	case candidate.FieldResumeText:
		m.ResetResumeText()
		return nil
	case candidate.FieldResumePath:
		m.ResetResumePath()
		return nil
	case candidate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case candidate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CandidateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.interviews != nil {
		edges = append(edges, candidate.EdgeInterviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CandidateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeInterviews:
		ids := make([]ent.Value, 0, len(m.interviews))
		for id := range m.interviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CandidateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinterviews != nil {
		edges = append(edges, candidate.EdgeInterviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CandidateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeInterviews:
		ids := make([]ent.Value, 0, len(m.removedinterviews))
		for id := range m.removedinterviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CandidateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinterviews {
		edges = append(edges, candidate.EdgeInterviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CandidateMutation) EdgeCleared(name string) bool {
	switch name {
	case candidate.EdgeInterviews:
		return m.clearedinterviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CandidateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CandidateMutation) ResetEdge(name string) error {
	switch name {
	case candidate.EdgeInterviews:
		m.ResetInterviews()
		return nil
	}
	return fmt.Errorf("unknown Candidate edge %s", name)
}

// CodeSubmissionMutation represents an operation that mutates the CodeSubmission nodes in the graph.
type CodeSubmissionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	question_id      *string
	language         *codesubmission.Language
	source_code      *string
	passed_all_tests *bool
	output_log       *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*CodeSubmission, error)
	predicates       []predicate.CodeSubmission
}

var _ ent.Mutation = (*CodeSubmissionMutation)(nil)

// codesubmissionOption allows management of the mutation configuration using functional options.
type codesubmissionOption func(*CodeSubmissionMutation)

// newCodeSubmissionMutation creates new mutation for the CodeSubmission entity.
func newCodeSubmissionMutation(c config, op Op, opts ...codesubmissionOption) *CodeSubmissionMutation {
	m := &CodeSubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeCodeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodeSubmissionID sets the ID field of the mutation.
func withCodeSubmissionID(id string) codesubmissionOption {
	return func(m *CodeSubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *CodeSubmission
		)
		m.oldValue = func(ctx context.Context) (*CodeSubmission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodeSubmission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodeSubmission sets the old CodeSubmission of the mutation.
func withCodeSubmission(node *CodeSubmission) codesubmissionOption {
	return func(m *CodeSubmissionMutation) {
		m.oldValue = func(context.Context) (*CodeSubmission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodeSubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodeSubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CodeSubmission entities.
func (m *CodeSubmissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodeSubmissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodeSubmissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodeSubmission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CodeSubmissionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CodeSubmissionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CodeSubmission entity.
// If the CodeSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSubmissionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CodeSubmissionMutation) ResetSessionID() {
	m.session = nil
}

// SetQuestionID sets the "question_id" field.
func (m *CodeSubmissionMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *CodeSubmissionMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the CodeSubmission entity.
// If the CodeSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSubmissionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *CodeSubmissionMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetLanguage sets the "language" field.
func (m *CodeSubmissionMutation) SetLanguage(c codesubmission.Language) {
	m.language = &c
}

// Language returns the value of the "language" field in the mutation.
func (m *CodeSubmissionMutation) Language() (r codesubmission.Language, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the CodeSubmission entity.
// If the CodeSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSubmissionMutation) OldLanguage(ctx context.Context) (v codesubmission.Language, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *CodeSubmissionMutation) ResetLanguage() {
	m.language = nil
}

// SetSourceCode sets the "source_code" field.
func (m *CodeSubmissionMutation) SetSourceCode(s string) {
	m.source_code = &s
}

// SourceCode returns the value of the "source_code" field in the mutation.
func (m *CodeSubmissionMutation) SourceCode() (r string, exists bool) {
	v := m.source_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceCode returns the old "source_code" field's value of the CodeSubmission entity.
// If the CodeSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSubmissionMutation) OldSourceCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceCode: %w", err)
	}
	return oldValue.SourceCode, nil
}

// ResetSourceCode resets all changes to the "source_code" field.
func (m *CodeSubmissionMutation) ResetSourceCode() {
	m.source_code = nil
}

// SetPassedAllTests sets the "passed_all_tests" field.
func (m *CodeSubmissionMutation) SetPassedAllTests(b bool) {
	m.passed_all_tests = &b
}

// PassedAllTests returns the value of the "passed_all_tests" field in the mutation.
func (m *CodeSubmissionMutation) PassedAllTests() (r bool, exists bool) {
	v := m.passed_all_tests
	if v == nil {
		return
	}
	return *v, true
}

// OldPassedAllTests returns the old "passed_all_tests" field's value of the CodeSubmission entity.
// If the CodeSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSubmissionMutation) OldPassedAllTests(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassedAllTests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassedAllTests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassedAllTests: %w", err)
	}
	return oldValue.PassedAllTests, nil
}

// ResetPassedAllTests resets all changes to the "passed_all_tests" field.
func (m *CodeSubmissionMutation) ResetPassedAllTests() {
	m.passed_all_tests = nil
}

// SetOutputLog sets the "output_log" field.
func (m *CodeSubmissionMutation) SetOutputLog(s string) {
	m.output_log = &s
}

// OutputLog returns the value of the "output_log" field in the mutation.
func (m *CodeSubmissionMutation) OutputLog() (r string, exists bool) {
	v := m.output_log
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputLog returns the old "output_log" field's value of the CodeSubmission entity.
// If the CodeSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSubmissionMutation) OldOutputLog(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputLog: %w", err)
	}
	return oldValue.OutputLog, nil
}

// ClearOutputLog clears the value of the "output_log" field.
func (m *CodeSubmissionMutation) ClearOutputLog() {
	m.output_log = nil
	m.clearedFields[codesubmission.FieldOutputLog] = struct{}{}
}

// OutputLogCleared returns if the "output_log" field was cleared in this mutation.
func (m *CodeSubmissionMutation) OutputLogCleared() bool {
	_, ok := m.clearedFields[codesubmission.FieldOutputLog]
	return ok
}

// ResetOutputLog resets all changes to the "output_log" field.
func (m *CodeSubmissionMutation) ResetOutputLog() {
	m.output_log = nil
	delete(m.clearedFields, codesubmission.FieldOutputLog)
}

// SetCreatedAt sets the "created_at" field.
func (m *CodeSubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CodeSubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CodeSubmission entity.
// If the CodeSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CodeSubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *CodeSubmissionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[codesubmission.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *CodeSubmissionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CodeSubmissionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CodeSubmissionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the CodeSubmissionMutation builder.
func (m *CodeSubmissionMutation) Where(ps ...predicate.CodeSubmission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodeSubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodeSubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodeSubmission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodeSubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodeSubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodeSubmission).
func (m *CodeSubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodeSubmissionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, codesubmission.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, codesubmission.FieldQuestionID)
	}
	if m.language != nil {
		fields = append(fields, codesubmission.FieldLanguage)
	}
	if m.source_code != nil {
		fields = append(fields, codesubmission.FieldSourceCode)
	}
	if m.passed_all_tests != nil {
		fields = append(fields, codesubmission.FieldPassedAllTests)
	}
	if m.output_log != nil {
		fields = append(fields, codesubmission.FieldOutputLog)
	}
	if m.created_at != nil {
		fields = append(fields, codesubmission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodeSubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codesubmission.FieldSessionID:
		return m.SessionID()
	case codesubmission.FieldQuestionID:
		return m.QuestionID()
	case codesubmission.FieldLanguage:
		return m.Language()
	case codesubmission.FieldSourceCode:
		return m.SourceCode()
	case codesubmission.FieldPassedAllTests:
		return m.PassedAllTests()
	case codesubmission.FieldOutputLog:
		return m.OutputLog()
	case codesubmission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodeSubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codesubmission.FieldSessionID:
		return m.OldSessionID(ctx)
	case codesubmission.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case codesubmission.FieldLanguage:
		return m.OldLanguage(ctx)
	case codesubmission.FieldSourceCode:
		return m.OldSourceCode(ctx)
	case codesubmission.FieldPassedAllTests:
		return m.OldPassedAllTests(ctx)
	case codesubmission.FieldOutputLog:
		return m.OldOutputLog(ctx)
	case codesubmission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CodeSubmission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeSubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codesubmission.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case codesubmission.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case codesubmission.FieldLanguage:
		v, ok := value.(codesubmission.Language)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case codesubmission.FieldSourceCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceCode(v)
		return nil
	case codesubmission.FieldPassedAllTests:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassedAllTests(v)
		return nil
	case codesubmission.FieldOutputLog:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputLog(v)
		return nil
	case codesubmission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CodeSubmission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodeSubmissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodeSubmissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeSubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CodeSubmission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodeSubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codesubmission.FieldOutputLog) {
		fields = append(fields, codesubmission.FieldOutputLog)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodeSubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodeSubmissionMutation) ClearField(name string) error {
	switch name {
	case codesubmission.FieldOutputLog:
		m.ClearOutputLog()
		return nil
	}
	return fmt.Errorf("unknown CodeSubmission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodeSubmissionMutation) ResetField(name string) error {
	switch name {
	case codesubmission.FieldSessionID:
		m.ResetSessionID()
		return nil
	case codesubmission.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case codesubmission.FieldLanguage:
		m.ResetLanguage()
		return nil
	case codesubmission.FieldSourceCode:
		m.ResetSourceCode()
		return nil
	case codesubmission.FieldPassedAllTests:
		m.ResetPassedAllTests()
		return nil
	case codesubmission.FieldOutputLog:
		m.ResetOutputLog()
		return nil
	case codesubmission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CodeSubmission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodeSubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, codesubmission.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodeSubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case codesubmission.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodeSubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodeSubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodeSubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, codesubmission.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodeSubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case codesubmission.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodeSubmissionMutation) ClearEdge(name string) error {
	switch name {
	case codesubmission.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown CodeSubmission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodeSubmissionMutation) ResetEdge(name string) error {
	switch name {
	case codesubmission.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown CodeSubmission edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	jobs          map[string]struct{}
	removedjobs   map[string]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*Company, error)
	predicates    []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *CompanyMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *CompanyMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *CompanyMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *CompanyMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *CompanyMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *CompanyMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *CompanyMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// EvaluationResultMutation represents an operation that mutates the EvaluationResult nodes in the graph.
type EvaluationResultMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	resume_score        *float64
	addresume_score     *float64
	answers_score       *float64
	addanswers_score    *float64
	overall_score       *float64
	addoverall_score    *float64
	technical_score     *float64
	addtechnical_score  *float64
	behavioral_score    *float64
	addbehavioral_score *float64
	coding_score        *float64
	addcoding_score     *float64
	resume_feedback     *string
	answers_feedback    *string
	recommendation      *string
	hire_recommendation *bool
	confidence_level    *float64
	addconfidence_level *float64
	warning_summary     *string
	metrics             *map[string]interface{}
	is_fallback         *bool
	model_used          *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	interview           *string
	clearedinterview    bool
	done                bool
	oldValue            func(context.Context) (*EvaluationResult, error)
	predicates          []predicate.EvaluationResult
}

var _ ent.Mutation = (*EvaluationResultMutation)(nil)

// evaluationresultOption allows management of the mutation configuration using functional options.
type evaluationresultOption func(*EvaluationResultMutation)

// newEvaluationResultMutation creates new mutation for the EvaluationResult entity.
func newEvaluationResultMutation(c config, op Op, opts ...evaluationresultOption) *EvaluationResultMutation {
	m := &EvaluationResultMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationResultID sets the ID field of the mutation.
func withEvaluationResultID(id string) evaluationresultOption {
	return func(m *EvaluationResultMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationResult
		)
		m.oldValue = func(ctx context.Context) (*EvaluationResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationResult sets the old EvaluationResult of the mutation.
func withEvaluationResult(node *EvaluationResult) evaluationresultOption {
	return func(m *EvaluationResultMutation) {
		m.oldValue = func(context.Context) (*EvaluationResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationResult entities.
func (m *EvaluationResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EvaluationResultMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EvaluationResultMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EvaluationResultMutation) ResetSessionID() {
	m.session = nil
}

// SetInterviewID sets the "interview_id" field.
func (m *EvaluationResultMutation) SetInterviewID(s string) {
	m.interview = &s
}

// InterviewID returns the value of the "interview_id" field in the mutation.
func (m *EvaluationResultMutation) InterviewID() (r string, exists bool) {
	v := m.interview
	if v == nil {
		return
	}
	return *v, true
}

// OldInterviewID returns the old "interview_id" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldInterviewID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterviewID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterviewID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterviewID: %w", err)
	}
	return oldValue.InterviewID, nil
}

// ResetInterviewID resets all changes to the "interview_id" field.
func (m *EvaluationResultMutation) ResetInterviewID() {
	m.interview = nil
}

// SetResumeScore sets the "resume_score" field.
func (m *EvaluationResultMutation) SetResumeScore(f float64) {
	m.resume_score = &f
	m.addresume_score = nil
}

// ResumeScore returns the value of the "resume_score" field in the mutation.
func (m *EvaluationResultMutation) ResumeScore() (r float64, exists bool) {
	v := m.resume_score
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeScore returns the old "resume_score" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldResumeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeScore: %w", err)
	}
	return oldValue.ResumeScore, nil
}

// AddResumeScore adds f to the "resume_score" field.
func (m *EvaluationResultMutation) AddResumeScore(f float64) {
	if m.addresume_score != nil {
		*m.addresume_score += f
	} else {
		m.addresume_score = &f
	}
}

// AddedResumeScore returns the value that was added to the "resume_score" field in this mutation.
func (m *EvaluationResultMutation) AddedResumeScore() (r float64, exists bool) {
	v := m.addresume_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetResumeScore resets all changes to the "resume_score" field.
func (m *EvaluationResultMutation) ResetResumeScore() {
	m.resume_score = nil
	m.addresume_score = nil
}

// SetAnswersScore sets the "answers_score" field.
func (m *EvaluationResultMutation) SetAnswersScore(f float64) {
	m.answers_score = &f
	m.addanswers_score = nil
}

// AnswersScore returns the value of the "answers_score" field in the mutation.
func (m *EvaluationResultMutation) AnswersScore() (r float64, exists bool) {
	v := m.answers_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswersScore returns the old "answers_score" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldAnswersScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswersScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswersScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswersScore: %w", err)
	}
	return oldValue.AnswersScore, nil
}

// AddAnswersScore adds f to the "answers_score" field.
func (m *EvaluationResultMutation) AddAnswersScore(f float64) {
	if m.addanswers_score != nil {
		*m.addanswers_score += f
	} else {
		m.addanswers_score = &f
	}
}

// AddedAnswersScore returns the value that was added to the "answers_score" field in this mutation.
func (m *EvaluationResultMutation) AddedAnswersScore() (r float64, exists bool) {
	v := m.addanswers_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswersScore resets all changes to the "answers_score" field.
func (m *EvaluationResultMutation) ResetAnswersScore() {
	m.answers_score = nil
	m.addanswers_score = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *EvaluationResultMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *EvaluationResultMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *EvaluationResultMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *EvaluationResultMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *EvaluationResultMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetTechnicalScore sets the "technical_score" field.
func (m *EvaluationResultMutation) SetTechnicalScore(f float64) {
	m.technical_score = &f
	m.addtechnical_score = nil
}

// TechnicalScore returns the value of the "technical_score" field in the mutation.
func (m *EvaluationResultMutation) TechnicalScore() (r float64, exists bool) {
	v := m.technical_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnicalScore returns the old "technical_score" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldTechnicalScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnicalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnicalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnicalScore: %w", err)
	}
	return oldValue.TechnicalScore, nil
}

// AddTechnicalScore adds f to the "technical_score" field.
func (m *EvaluationResultMutation) AddTechnicalScore(f float64) {
	if m.addtechnical_score != nil {
		*m.addtechnical_score += f
	} else {
		m.addtechnical_score = &f
	}
}

// AddedTechnicalScore returns the value that was added to the "technical_score" field in this mutation.
func (m *EvaluationResultMutation) AddedTechnicalScore() (r float64, exists bool) {
	v := m.addtechnical_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (m *EvaluationResultMutation) ClearTechnicalScore() {
	m.technical_score = nil
	m.addtechnical_score = nil
	m.clearedFields[evaluationresult.FieldTechnicalScore] = struct{}{}
}

// TechnicalScoreCleared returns if the "technical_score" field was cleared in this mutation.
func (m *EvaluationResultMutation) TechnicalScoreCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldTechnicalScore]
	return ok
}

// ResetTechnicalScore resets all changes to the "technical_score" field.
func (m *EvaluationResultMutation) ResetTechnicalScore() {
	m.technical_score = nil
	m.addtechnical_score = nil
	delete(m.clearedFields, evaluationresult.FieldTechnicalScore)
}

// SetBehavioralScore sets the "behavioral_score" field.
func (m *EvaluationResultMutation) SetBehavioralScore(f float64) {
	m.behavioral_score = &f
	m.addbehavioral_score = nil
}

// BehavioralScore returns the value of the "behavioral_score" field in the mutation.
func (m *EvaluationResultMutation) BehavioralScore() (r float64, exists bool) {
	v := m.behavioral_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBehavioralScore returns the old "behavioral_score" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldBehavioralScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehavioralScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehavioralScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehavioralScore: %w", err)
	}
	return oldValue.BehavioralScore, nil
}

// AddBehavioralScore adds f to the "behavioral_score" field.
func (m *EvaluationResultMutation) AddBehavioralScore(f float64) {
	if m.addbehavioral_score != nil {
		*m.addbehavioral_score += f
	} else {
		m.addbehavioral_score = &f
	}
}

// AddedBehavioralScore returns the value that was added to the "behavioral_score" field in this mutation.
func (m *EvaluationResultMutation) AddedBehavioralScore() (r float64, exists bool) {
	v := m.addbehavioral_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearBehavioralScore clears the value of the "behavioral_score" field.
func (m *EvaluationResultMutation) ClearBehavioralScore() {
	m.behavioral_score = nil
	m.addbehavioral_score = nil
	m.clearedFields[evaluationresult.FieldBehavioralScore] = struct{}{}
}

// BehavioralScoreCleared returns if the "behavioral_score" field was cleared in this mutation.
func (m *EvaluationResultMutation) BehavioralScoreCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldBehavioralScore]
	return ok
}

// ResetBehavioralScore resets all changes to the "behavioral_score" field.
func (m *EvaluationResultMutation) ResetBehavioralScore() {
	m.behavioral_score = nil
	m.addbehavioral_score = nil
	delete(m.clearedFields, evaluationresult.FieldBehavioralScore)
}

// SetCodingScore sets the "coding_score" field.
func (m *EvaluationResultMutation) SetCodingScore(f float64) {
	m.coding_score = &f
	m.addcoding_score = nil
}

// CodingScore returns the value of the "coding_score" field in the mutation.
func (m *EvaluationResultMutation) CodingScore() (r float64, exists bool) {
	v := m.coding_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCodingScore returns the old "coding_score" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldCodingScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodingScore: %w", err)
	}
	return oldValue.CodingScore, nil
}

// AddCodingScore adds f to the "coding_score" field.
func (m *EvaluationResultMutation) AddCodingScore(f float64) {
	if m.addcoding_score != nil {
		*m.addcoding_score += f
	} else {
		m.addcoding_score = &f
	}
}

// AddedCodingScore returns the value that was added to the "coding_score" field in this mutation.
func (m *EvaluationResultMutation) AddedCodingScore() (r float64, exists bool) {
	v := m.addcoding_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearCodingScore clears the value of the "coding_score" field.
func (m *EvaluationResultMutation) ClearCodingScore() {
	m.coding_score = nil
	m.addcoding_score = nil
	m.clearedFields[evaluationresult.FieldCodingScore] = struct{}{}
}

// CodingScoreCleared returns if the "coding_score" field was cleared in this mutation.
func (m *EvaluationResultMutation) CodingScoreCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldCodingScore]
	return ok
}

// ResetCodingScore resets all changes to the "coding_score" field.
func (m *EvaluationResultMutation) ResetCodingScore() {
	m.coding_score = nil
	m.addcoding_score = nil
	delete(m.clearedFields, evaluationresult.FieldCodingScore)
}

// SetResumeFeedback sets the "resume_feedback" field.
func (m *EvaluationResultMutation) SetResumeFeedback(s string) {
	m.resume_feedback = &s
}

// ResumeFeedback returns the value of the "resume_feedback" field in the mutation.
func (m *EvaluationResultMutation) ResumeFeedback() (r string, exists bool) {
	v := m.resume_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeFeedback returns the old "resume_feedback" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldResumeFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeFeedback: %w", err)
	}
	return oldValue.ResumeFeedback, nil
}

// ClearResumeFeedback clears the value of the "resume_feedback" field.
func (m *EvaluationResultMutation) ClearResumeFeedback() {
	m.resume_feedback = nil
	m.clearedFields[evaluationresult.FieldResumeFeedback] = struct{}{}
}

// ResumeFeedbackCleared returns if the "resume_feedback" field was cleared in this mutation.
func (m *EvaluationResultMutation) ResumeFeedbackCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldResumeFeedback]
	return ok
}

// ResetResumeFeedback resets all changes to the "resume_feedback" field.
func (m *EvaluationResultMutation) ResetResumeFeedback() {
	m.resume_feedback = nil
	delete(m.clearedFields, evaluationresult.FieldResumeFeedback)
}

// SetAnswersFeedback sets the "answers_feedback" field.
func (m *EvaluationResultMutation) SetAnswersFeedback(s string) {
	m.answers_feedback = &s
}

// AnswersFeedback returns the value of the "answers_feedback" field in the mutation.
func (m *EvaluationResultMutation) AnswersFeedback() (r string, exists bool) {
	v := m.answers_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswersFeedback returns the old "answers_feedback" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldAnswersFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswersFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswersFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswersFeedback: %w", err)
	}
	return oldValue.AnswersFeedback, nil
}

// ClearAnswersFeedback clears the value of the "answers_feedback" field.
func (m *EvaluationResultMutation) ClearAnswersFeedback() {
	m.answers_feedback = nil
	m.clearedFields[evaluationresult.FieldAnswersFeedback] = struct{}{}
}

// AnswersFeedbackCleared returns if the "answers_feedback" field was cleared in this mutation.
func (m *EvaluationResultMutation) AnswersFeedbackCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldAnswersFeedback]
	return ok
}

// ResetAnswersFeedback resets all changes to the "answers_feedback" field.
func (m *EvaluationResultMutation) ResetAnswersFeedback() {
	m.answers_feedback = nil
	delete(m.clearedFields, evaluationresult.FieldAnswersFeedback)
}

// SetRecommendation sets the "recommendation" field.
func (m *EvaluationResultMutation) SetRecommendation(s string) {
	m.recommendation = &s
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *EvaluationResultMutation) Recommendation() (r string, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldRecommendation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ClearRecommendation clears the value of the "recommendation" field.
func (m *EvaluationResultMutation) ClearRecommendation() {
	m.recommendation = nil
	m.clearedFields[evaluationresult.FieldRecommendation] = struct{}{}
}

// RecommendationCleared returns if the "recommendation" field was cleared in this mutation.
func (m *EvaluationResultMutation) RecommendationCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldRecommendation]
	return ok
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *EvaluationResultMutation) ResetRecommendation() {
	m.recommendation = nil
	delete(m.clearedFields, evaluationresult.FieldRecommendation)
}

// SetHireRecommendation sets the "hire_recommendation" field.
func (m *EvaluationResultMutation) SetHireRecommendation(b bool) {
	m.hire_recommendation = &b
}

// HireRecommendation returns the value of the "hire_recommendation" field in the mutation.
func (m *EvaluationResultMutation) HireRecommendation() (r bool, exists bool) {
	v := m.hire_recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldHireRecommendation returns the old "hire_recommendation" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldHireRecommendation(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHireRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHireRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHireRecommendation: %w", err)
	}
	return oldValue.HireRecommendation, nil
}

// ClearHireRecommendation clears the value of the "hire_recommendation" field.
func (m *EvaluationResultMutation) ClearHireRecommendation() {
	m.hire_recommendation = nil
	m.clearedFields[evaluationresult.FieldHireRecommendation] = struct{}{}
}

// HireRecommendationCleared returns if the "hire_recommendation" field was cleared in this mutation.
func (m *EvaluationResultMutation) HireRecommendationCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldHireRecommendation]
	return ok
}

// ResetHireRecommendation resets all changes to the "hire_recommendation" field.
func (m *EvaluationResultMutation) ResetHireRecommendation() {
	m.hire_recommendation = nil
	delete(m.clearedFields, evaluationresult.FieldHireRecommendation)
}

// SetConfidenceLevel sets the "confidence_level" field.
func (m *EvaluationResultMutation) SetConfidenceLevel(f float64) {
	m.confidence_level = &f
	m.addconfidence_level = nil
}

// ConfidenceLevel returns the value of the "confidence_level" field in the mutation.
func (m *EvaluationResultMutation) ConfidenceLevel() (r float64, exists bool) {
	v := m.confidence_level
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLevel returns the old "confidence_level" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldConfidenceLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLevel: %w", err)
	}
	return oldValue.ConfidenceLevel, nil
}

// AddConfidenceLevel adds f to the "confidence_level" field.
func (m *EvaluationResultMutation) AddConfidenceLevel(f float64) {
	if m.addconfidence_level != nil {
		*m.addconfidence_level += f
	} else {
		m.addconfidence_level = &f
	}
}

// AddedConfidenceLevel returns the value that was added to the "confidence_level" field in this mutation.
func (m *EvaluationResultMutation) AddedConfidenceLevel() (r float64, exists bool) {
	v := m.addconfidence_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceLevel resets all changes to the "confidence_level" field.
func (m *EvaluationResultMutation) ResetConfidenceLevel() {
	m.confidence_level = nil
	m.addconfidence_level = nil
}

// SetWarningSummary sets the "warning_summary" field.
func (m *EvaluationResultMutation) SetWarningSummary(s string) {
	m.warning_summary = &s
}

// WarningSummary returns the value of the "warning_summary" field in the mutation.
func (m *EvaluationResultMutation) WarningSummary() (r string, exists bool) {
	v := m.warning_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningSummary returns the old "warning_summary" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldWarningSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningSummary: %w", err)
	}
	return oldValue.WarningSummary, nil
}

// ClearWarningSummary clears the value of the "warning_summary" field.
func (m *EvaluationResultMutation) ClearWarningSummary() {
	m.warning_summary = nil
	m.clearedFields[evaluationresult.FieldWarningSummary] = struct{}{}
}

// WarningSummaryCleared returns if the "warning_summary" field was cleared in this mutation.
func (m *EvaluationResultMutation) WarningSummaryCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldWarningSummary]
	return ok
}

// ResetWarningSummary resets all changes to the "warning_summary" field.
func (m *EvaluationResultMutation) ResetWarningSummary() {
	m.warning_summary = nil
	delete(m.clearedFields, evaluationresult.FieldWarningSummary)
}

// SetMetrics sets the "metrics" field.
func (m *EvaluationResultMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *EvaluationResultMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *EvaluationResultMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[evaluationresult.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *EvaluationResultMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *EvaluationResultMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, evaluationresult.FieldMetrics)
}

// SetIsFallback sets the "is_fallback" field.
func (m *EvaluationResultMutation) SetIsFallback(b bool) {
	m.is_fallback = &b
}

// IsFallback returns the value of the "is_fallback" field in the mutation.
func (m *EvaluationResultMutation) IsFallback() (r bool, exists bool) {
	v := m.is_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFallback returns the old "is_fallback" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldIsFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFallback: %w", err)
	}
	return oldValue.IsFallback, nil
}

// ResetIsFallback resets all changes to the "is_fallback" field.
func (m *EvaluationResultMutation) ResetIsFallback() {
	m.is_fallback = nil
}

// SetModelUsed sets the "model_used" field.
func (m *EvaluationResultMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *EvaluationResultMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *EvaluationResultMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[evaluationresult.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *EvaluationResultMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[evaluationresult.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *EvaluationResultMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, evaluationresult.FieldModelUsed)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvaluationResult entity.
// If the EvaluationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *EvaluationResultMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[evaluationresult.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *EvaluationResultMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EvaluationResultMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EvaluationResultMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearInterview clears the "interview" edge to the Interview entity.
func (m *EvaluationResultMutation) ClearInterview() {
	m.clearedinterview = true
	m.clearedFields[evaluationresult.FieldInterviewID] = struct{}{}
}

// InterviewCleared reports if the "interview" edge to the Interview entity was cleared.
func (m *EvaluationResultMutation) InterviewCleared() bool {
	return m.clearedinterview
}

// InterviewIDs returns the "interview" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InterviewID instead. It exists only for internal usage by the builders.
func (m *EvaluationResultMutation) InterviewIDs() (ids []string) {
	if id := m.interview; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInterview resets all changes to the "interview" edge.
func (m *EvaluationResultMutation) ResetInterview() {
	m.interview = nil
	m.clearedinterview = false
}

// Where appends a list predicates to the EvaluationResultMutation builder.
func (m *EvaluationResultMutation) Where(ps ...predicate.EvaluationResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationResult).
func (m *EvaluationResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationResultMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.session != nil {
		fields = append(fields, evaluationresult.FieldSessionID)
	}
	if m.interview != nil {
		fields = append(fields, evaluationresult.FieldInterviewID)
	}
	if m.resume_score != nil {
		fields = append(fields, evaluationresult.FieldResumeScore)
	}
	if m.answers_score != nil {
		fields = append(fields, evaluationresult.FieldAnswersScore)
	}
	if m.overall_score != nil {
		fields = append(fields, evaluationresult.FieldOverallScore)
	}
	if m.technical_score != nil {
		fields = append(fields, evaluationresult.FieldTechnicalScore)
	}
	if m.behavioral_score != nil {
		fields = append(fields, evaluationresult.FieldBehavioralScore)
	}
	if m.coding_score != nil {
		fields = append(fields, evaluationresult.FieldCodingScore)
	}
	if m.resume_feedback != nil {
		fields = append(fields, evaluationresult.FieldResumeFeedback)
	}
	if m.answers_feedback != nil {
		fields = append(fields, evaluationresult.FieldAnswersFeedback)
	}
	if m.recommendation != nil {
		fields = append(fields, evaluationresult.FieldRecommendation)
	}
	if m.hire_recommendation != nil {
		fields = append(fields, evaluationresult.FieldHireRecommendation)
	}
	if m.confidence_level != nil {
		fields = append(fields, evaluationresult.FieldConfidenceLevel)
	}
	if m.warning_summary != nil {
		fields = append(fields, evaluationresult.FieldWarningSummary)
	}
	if m.metrics != nil {
		fields = append(fields, evaluationresult.FieldMetrics)
	}
	if m.is_fallback != nil {
		fields = append(fields, evaluationresult.FieldIsFallback)
	}
	if m.model_used != nil {
		fields = append(fields, evaluationresult.FieldModelUsed)
	}
	if m.created_at != nil {
		fields = append(fields, evaluationresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationresult.FieldSessionID:
		return m.SessionID()
	case evaluationresult.FieldInterviewID:
		return m.InterviewID()
	case evaluationresult.FieldResumeScore:
		return m.ResumeScore()
	case evaluationresult.FieldAnswersScore:
		return m.AnswersScore()
	case evaluationresult.FieldOverallScore:
		return m.OverallScore()
	case evaluationresult.FieldTechnicalScore:
		return m.TechnicalScore()
	case evaluationresult.FieldBehavioralScore:
		return m.BehavioralScore()
	case evaluationresult.FieldCodingScore:
		return m.CodingScore()
	case evaluationresult.FieldResumeFeedback:
		return m.ResumeFeedback()
	case evaluationresult.FieldAnswersFeedback:
		return m.AnswersFeedback()
	case evaluationresult.FieldRecommendation:
		return m.Recommendation()
	case evaluationresult.FieldHireRecommendation:
		return m.HireRecommendation()
	case evaluationresult.FieldConfidenceLevel:
		return m.ConfidenceLevel()
	case evaluationresult.FieldWarningSummary:
		return m.WarningSummary()
	case evaluationresult.FieldMetrics:
		return m.Metrics()
	case evaluationresult.FieldIsFallback:
		return m.IsFallback()
	case evaluationresult.FieldModelUsed:
		return m.ModelUsed()
	case evaluationresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case evaluationresult.FieldInterviewID:
		return m.OldInterviewID(ctx)
	case evaluationresult.FieldResumeScore:
		return m.OldResumeScore(ctx)
	case evaluationresult.FieldAnswersScore:
		return m.OldAnswersScore(ctx)
	case evaluationresult.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case evaluationresult.FieldTechnicalScore:
		return m.OldTechnicalScore(ctx)
	case evaluationresult.FieldBehavioralScore:
		return m.OldBehavioralScore(ctx)
	case evaluationresult.FieldCodingScore:
		return m.OldCodingScore(ctx)
	case evaluationresult.FieldResumeFeedback:
		return m.OldResumeFeedback(ctx)
	case evaluationresult.FieldAnswersFeedback:
		return m.OldAnswersFeedback(ctx)
	case evaluationresult.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case evaluationresult.FieldHireRecommendation:
		return m.OldHireRecommendation(ctx)
	case evaluationresult.FieldConfidenceLevel:
		return m.OldConfidenceLevel(ctx)
	case evaluationresult.FieldWarningSummary:
		return m.OldWarningSummary(ctx)
	case evaluationresult.FieldMetrics:
		return m.OldMetrics(ctx)
	case evaluationresult.FieldIsFallback:
		return m.OldIsFallback(ctx)
	case evaluationresult.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case evaluationresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationresult.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case evaluationresult.FieldInterviewID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterviewID(v)
		return nil
	case evaluationresult.FieldResumeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeScore(v)
		return nil
	case evaluationresult.FieldAnswersScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswersScore(v)
		return nil
	case evaluationresult.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case evaluationresult.FieldTechnicalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnicalScore(v)
		return nil
	case evaluationresult.FieldBehavioralScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehavioralScore(v)
		return nil
	case evaluationresult.FieldCodingScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodingScore(v)
		return nil
	case evaluationresult.FieldResumeFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeFeedback(v)
		return nil
	case evaluationresult.FieldAnswersFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswersFeedback(v)
		return nil
	case evaluationresult.FieldRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case evaluationresult.FieldHireRecommendation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHireRecommendation(v)
		return nil
	case evaluationresult.FieldConfidenceLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLevel(v)
		return nil
	case evaluationresult.FieldWarningSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningSummary(v)
		return nil
	case evaluationresult.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case evaluationresult.FieldIsFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFallback(v)
		return nil
	case evaluationresult.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case evaluationresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationResultMutation) AddedFields() []string {
	var fields []string
	if m.addresume_score != nil {
		fields = append(fields, evaluationresult.FieldResumeScore)
	}
	if m.addanswers_score != nil {
		fields = append(fields, evaluationresult.FieldAnswersScore)
	}
	if m.addoverall_score != nil {
		fields = append(fields, evaluationresult.FieldOverallScore)
	}
	if m.addtechnical_score != nil {
		fields = append(fields, evaluationresult.FieldTechnicalScore)
	}
	if m.addbehavioral_score != nil {
		fields = append(fields, evaluationresult.FieldBehavioralScore)
	}
	if m.addcoding_score != nil {
		fields = append(fields, evaluationresult.FieldCodingScore)
	}
	if m.addconfidence_level != nil {
		fields = append(fields, evaluationresult.FieldConfidenceLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationresult.FieldResumeScore:
		return m.AddedResumeScore()
	case evaluationresult.FieldAnswersScore:
		return m.AddedAnswersScore()
	case evaluationresult.FieldOverallScore:
		return m.AddedOverallScore()
	case evaluationresult.FieldTechnicalScore:
		return m.AddedTechnicalScore()
	case evaluationresult.FieldBehavioralScore:
		return m.AddedBehavioralScore()
	case evaluationresult.FieldCodingScore:
		return m.AddedCodingScore()
	case evaluationresult.FieldConfidenceLevel:
		return m.AddedConfidenceLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationresult.FieldResumeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResumeScore(v)
		return nil
	case evaluationresult.FieldAnswersScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswersScore(v)
		return nil
	case evaluationresult.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case evaluationresult.FieldTechnicalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTechnicalScore(v)
		return nil
	case evaluationresult.FieldBehavioralScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBehavioralScore(v)
		return nil
	case evaluationresult.FieldCodingScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCodingScore(v)
		return nil
	case evaluationresult.FieldConfidenceLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceLevel(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationresult.FieldTechnicalScore) {
		fields = append(fields, evaluationresult.FieldTechnicalScore)
	}
	if m.FieldCleared(evaluationresult.FieldBehavioralScore) {
		fields = append(fields, evaluationresult.FieldBehavioralScore)
	}
	if m.FieldCleared(evaluationresult.FieldCodingScore) {
		fields = append(fields, evaluationresult.FieldCodingScore)
	}
	if m.FieldCleared(evaluationresult.FieldResumeFeedback) {
		fields = append(fields, evaluationresult.FieldResumeFeedback)
	}
	if m.FieldCleared(evaluationresult.FieldAnswersFeedback) {
		fields = append(fields, evaluationresult.FieldAnswersFeedback)
	}
	if m.FieldCleared(evaluationresult.FieldRecommendation) {
		fields = append(fields, evaluationresult.FieldRecommendation)
	}
	if m.FieldCleared(evaluationresult.FieldHireRecommendation) {
		fields = append(fields, evaluationresult.FieldHireRecommendation)
	}
	if m.FieldCleared(evaluationresult.FieldWarningSummary) {
		fields = append(fields, evaluationresult.FieldWarningSummary)
	}
	if m.FieldCleared(evaluationresult.FieldMetrics) {
		fields = append(fields, evaluationresult.FieldMetrics)
	}
	if m.FieldCleared(evaluationresult.FieldModelUsed) {
		fields = append(fields, evaluationresult.FieldModelUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationResultMutation) ClearField(name string) error {
	switch name {
	case evaluationresult.FieldTechnicalScore:
		m.ClearTechnicalScore()
		return nil
	case evaluationresult.FieldBehavioralScore:
		m.ClearBehavioralScore()
		return nil
	case evaluationresult.FieldCodingScore:
		m.ClearCodingScore()
		return nil
	case evaluationresult.FieldResumeFeedback:
		m.ClearResumeFeedback()
		return nil
	case evaluationresult.FieldAnswersFeedback:
		m.ClearAnswersFeedback()
		return nil
	case evaluationresult.FieldRecommendation:
		m.ClearRecommendation()
		return nil
	case evaluationresult.FieldHireRecommendation:
		m.ClearHireRecommendation()
		return nil
	case evaluationresult.FieldWarningSummary:
		m.ClearWarningSummary()
		return nil
	case evaluationresult.FieldMetrics:
		m.ClearMetrics()
		return nil
	case evaluationresult.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	}
	return fmt.Errorf("unknown EvaluationResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationResultMutation) ResetField(name string) error {
	switch name {
	case evaluationresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case evaluationresult.FieldInterviewID:
		m.ResetInterviewID()
		return nil
	case evaluationresult.FieldResumeScore:
		m.ResetResumeScore()
		return nil
	case evaluationresult.FieldAnswersScore:
		m.ResetAnswersScore()
		return nil
	case evaluationresult.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case evaluationresult.FieldTechnicalScore:
		m.ResetTechnicalScore()
		return nil
	case evaluationresult.FieldBehavioralScore:
		m.ResetBehavioralScore()
		return nil
	case evaluationresult.FieldCodingScore:
		m.ResetCodingScore()
		return nil
	case evaluationresult.FieldResumeFeedback:
		m.ResetResumeFeedback()
		return nil
	case evaluationresult.FieldAnswersFeedback:
		m.ResetAnswersFeedback()
		return nil
	case evaluationresult.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case evaluationresult.FieldHireRecommendation:
		m.ResetHireRecommendation()
		return nil
	case evaluationresult.FieldConfidenceLevel:
		m.ResetConfidenceLevel()
		return nil
	case evaluationresult.FieldWarningSummary:
		m.ResetWarningSummary()
		return nil
	case evaluationresult.FieldMetrics:
		m.ResetMetrics()
		return nil
	case evaluationresult.FieldIsFallback:
		m.ResetIsFallback()
		return nil
	case evaluationresult.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case evaluationresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, evaluationresult.EdgeSession)
	}
	if m.interview != nil {
		edges = append(edges, evaluationresult.EdgeInterview)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationresult.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case evaluationresult.EdgeInterview:
		if id := m.interview; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, evaluationresult.EdgeSession)
	}
	if m.clearedinterview {
		edges = append(edges, evaluationresult.EdgeInterview)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationResultMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationresult.EdgeSession:
		return m.clearedsession
	case evaluationresult.EdgeInterview:
		return m.clearedinterview
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationResultMutation) ClearEdge(name string) error {
	switch name {
	case evaluationresult.EdgeSession:
		m.ClearSession()
		return nil
	case evaluationresult.EdgeInterview:
		m.ClearInterview()
		return nil
	}
	return fmt.Errorf("unknown EvaluationResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationResultMutation) ResetEdge(name string) error {
	switch name {
	case evaluationresult.EdgeSession:
		m.ResetSession()
		return nil
	case evaluationresult.EdgeInterview:
		m.ResetInterview()
		return nil
	}
	return fmt.Errorf("unknown EvaluationResult edge %s", name)
}

// InterviewMutation represents an operation that mutates the Interview nodes in the graph.
type InterviewMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	round_label               *string
	status                    *interview.Status
	started_at                *time.Time
	ended_at                  *time.Time
	link_expires_at           *time.Time
	email_sent                *bool
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	candidate                 *string
	clearedcandidate          bool
	job                       *string
	clearedjob                bool
	schedules                 map[string]struct{}
	removedschedules          map[string]struct{}
	clearedschedules          bool
	session                   *string
	clearedsession            bool
	evaluation_results        map[string]struct{}
	removedevaluation_results map[string]struct{}
	clearedevaluation_results bool
	done                      bool
	oldValue                  func(context.Context) (*Interview, error)
	predicates                []predicate.Interview
}

var _ ent.Mutation = (*InterviewMutation)(nil)

// interviewOption allows management of the mutation configuration using functional options.
type interviewOption func(*InterviewMutation)

// newInterviewMutation creates new mutation for the Interview entity.
func newInterviewMutation(c config, op Op, opts ...interviewOption) *InterviewMutation {
	m := &InterviewMutation{
		config:        c,
		op:            op,
		typ:           TypeInterview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewID sets the ID field of the mutation.
func withInterviewID(id string) interviewOption {
	return func(m *InterviewMutation) {
		var (
			err   error
			once  sync.Once
			value *Interview
		)
		m.oldValue = func(ctx context.Context) (*Interview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterview sets the old Interview of the mutation.
func withInterview(node *Interview) interviewOption {
	return func(m *InterviewMutation) {
		m.oldValue = func(context.Context) (*Interview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Interview entities.
func (m *InterviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCandidateID sets the "candidate_id" field.
func (m *InterviewMutation) SetCandidateID(s string) {
	m.candidate = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *InterviewMutation) CandidateID() (r string, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *InterviewMutation) ResetCandidateID() {
	m.candidate = nil
}

// SetJobID sets the "job_id" field.
func (m *InterviewMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *InterviewMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *InterviewMutation) ResetJobID() {
	m.job = nil
}

// SetRoundLabel sets the "round_label" field.
func (m *InterviewMutation) SetRoundLabel(s string) {
	m.round_label = &s
}

// RoundLabel returns the value of the "round_label" field in the mutation.
func (m *InterviewMutation) RoundLabel() (r string, exists bool) {
	v := m.round_label
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundLabel returns the old "round_label" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldRoundLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundLabel: %w", err)
	}
	return oldValue.RoundLabel, nil
}

// ClearRoundLabel clears the value of the "round_label" field.
func (m *InterviewMutation) ClearRoundLabel() {
	m.round_label = nil
	m.clearedFields[interview.FieldRoundLabel] = struct{}{}
}

// RoundLabelCleared returns if the "round_label" field was cleared in this mutation.
func (m *InterviewMutation) RoundLabelCleared() bool {
	_, ok := m.clearedFields[interview.FieldRoundLabel]
	return ok
}

// ResetRoundLabel resets all changes to the "round_label" field.
func (m *InterviewMutation) ResetRoundLabel() {
	m.round_label = nil
	delete(m.clearedFields, interview.FieldRoundLabel)
}

// SetStatus sets the "status" field.
func (m *InterviewMutation) SetStatus(i interview.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InterviewMutation) Status() (r interview.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldStatus(ctx context.Context) (v interview.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InterviewMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InterviewMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InterviewMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *InterviewMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[interview.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InterviewMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[interview.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InterviewMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, interview.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *InterviewMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *InterviewMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *InterviewMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[interview.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *InterviewMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[interview.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *InterviewMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, interview.FieldEndedAt)
}

// SetLinkExpiresAt sets the "link_expires_at" field.
func (m *InterviewMutation) SetLinkExpiresAt(t time.Time) {
	m.link_expires_at = &t
}

// LinkExpiresAt returns the value of the "link_expires_at" field in the mutation.
func (m *InterviewMutation) LinkExpiresAt() (r time.Time, exists bool) {
	v := m.link_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkExpiresAt returns the old "link_expires_at" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldLinkExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkExpiresAt: %w", err)
	}
	return oldValue.LinkExpiresAt, nil
}

// ClearLinkExpiresAt clears the value of the "link_expires_at" field.
func (m *InterviewMutation) ClearLinkExpiresAt() {
	m.link_expires_at = nil
	m.clearedFields[interview.FieldLinkExpiresAt] = struct{}{}
}

// LinkExpiresAtCleared returns if the "link_expires_at" field was cleared in this mutation.
func (m *InterviewMutation) LinkExpiresAtCleared() bool {
	_, ok := m.clearedFields[interview.FieldLinkExpiresAt]
	return ok
}

// ResetLinkExpiresAt resets all changes to the "link_expires_at" field.
func (m *InterviewMutation) ResetLinkExpiresAt() {
	m.link_expires_at = nil
	delete(m.clearedFields, interview.FieldLinkExpiresAt)
}

// SetEmailSent sets the "email_sent" field.
func (m *InterviewMutation) SetEmailSent(b bool) {
	m.email_sent = &b
}

// EmailSent returns the value of the "email_sent" field in the mutation.
func (m *InterviewMutation) EmailSent() (r bool, exists bool) {
	v := m.email_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSent returns the old "email_sent" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldEmailSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSent: %w", err)
	}
	return oldValue.EmailSent, nil
}

// ResetEmailSent resets all changes to the "email_sent" field.
func (m *InterviewMutation) ResetEmailSent() {
	m.email_sent = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InterviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InterviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InterviewMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InterviewMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Interview entity.
// If the Interview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InterviewMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (m *InterviewMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[interview.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the Candidate entity was cleared.
func (m *InterviewMutation) CandidateCleared() bool {
	return m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *InterviewMutation) CandidateIDs() (ids []string) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *InterviewMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// ClearJob clears the "job" edge to the Job entity.
func (m *InterviewMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[interview.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *InterviewMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *InterviewMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *InterviewMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by ids.
func (m *InterviewMutation) AddScheduleIDs(ids ...string) {
	if m.schedules == nil {
		m.schedules = make(map[string]struct{})
	}
	for i := range ids {
		m.schedules[ids[i]] = struct{}{}
	}
}

// ClearSchedules clears the "schedules" edge to the Schedule entity.
func (m *InterviewMutation) ClearSchedules() {
	m.clearedschedules = true
}

// SchedulesCleared reports if the "schedules" edge to the Schedule entity was cleared.
func (m *InterviewMutation) SchedulesCleared() bool {
	return m.clearedschedules
}

// RemoveScheduleIDs removes the "schedules" edge to the Schedule entity by IDs.
func (m *InterviewMutation) RemoveScheduleIDs(ids ...string) {
	if m.removedschedules == nil {
		m.removedschedules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.schedules, ids[i])
		m.removedschedules[ids[i]] = struct{}{}
	}
}

// RemovedSchedules returns the removed IDs of the "schedules" edge to the Schedule entity.
func (m *InterviewMutation) RemovedSchedulesIDs() (ids []string) {
	for id := range m.removedschedules {
		ids = append(ids, id)
	}
	return
}

// SchedulesIDs returns the "schedules" edge IDs in the mutation.
func (m *InterviewMutation) SchedulesIDs() (ids []string) {
	for id := range m.schedules {
		ids = append(ids, id)
	}
	return
}

// ResetSchedules resets all changes to the "schedules" edge.
func (m *InterviewMutation) ResetSchedules() {
	m.schedules = nil
	m.clearedschedules = false
	m.removedschedules = nil
}

// SetSessionID sets the "session" edge to the Session entity by id.
func (m *InterviewMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the Session entity.
func (m *InterviewMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *InterviewMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *InterviewMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *InterviewMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *InterviewMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddEvaluationResultIDs adds the "evaluation_results" edge to the EvaluationResult entity by ids.
func (m *InterviewMutation) AddEvaluationResultIDs(ids ...string) {
	if m.evaluation_results == nil {
		m.evaluation_results = make(map[string]struct{})
	}
	for i := range ids {
		m.evaluation_results[ids[i]] = struct{}{}
	}
}

// ClearEvaluationResults clears the "evaluation_results" edge to the EvaluationResult entity.
func (m *InterviewMutation) ClearEvaluationResults() {
	m.clearedevaluation_results = true
}

// EvaluationResultsCleared reports if the "evaluation_results" edge to the EvaluationResult entity was cleared.
func (m *InterviewMutation) EvaluationResultsCleared() bool {
	return m.clearedevaluation_results
}

// RemoveEvaluationResultIDs removes the "evaluation_results" edge to the EvaluationResult entity by IDs.
func (m *InterviewMutation) RemoveEvaluationResultIDs(ids ...string) {
	if m.removedevaluation_results == nil {
		m.removedevaluation_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evaluation_results, ids[i])
		m.removedevaluation_results[ids[i]] = struct{}{}
	}
}

// RemovedEvaluationResults returns the removed IDs of the "evaluation_results" edge to the EvaluationResult entity.
func (m *InterviewMutation) RemovedEvaluationResultsIDs() (ids []string) {
	for id := range m.removedevaluation_results {
		ids = append(ids, id)
	}
	return
}

// EvaluationResultsIDs returns the "evaluation_results" edge IDs in the mutation.
func (m *InterviewMutation) EvaluationResultsIDs() (ids []string) {
	for id := range m.evaluation_results {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluationResults resets all changes to the "evaluation_results" edge.
func (m *InterviewMutation) ResetEvaluationResults() {
	m.evaluation_results = nil
	m.clearedevaluation_results = false
	m.removedevaluation_results = nil
}

// Where appends a list predicates to the InterviewMutation builder.
func (m *InterviewMutation) Where(ps ...predicate.Interview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interview).
func (m *InterviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.candidate != nil {
		fields = append(fields, interview.FieldCandidateID)
	}
	if m.job != nil {
		fields = append(fields, interview.FieldJobID)
	}
	if m.round_label != nil {
		fields = append(fields, interview.FieldRoundLabel)
	}
	if m.status != nil {
		fields = append(fields, interview.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, interview.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, interview.FieldEndedAt)
	}
	if m.link_expires_at != nil {
		fields = append(fields, interview.FieldLinkExpiresAt)
	}
	if m.email_sent != nil {
		fields = append(fields, interview.FieldEmailSent)
	}
	if m.created_at != nil {
		fields = append(fields, interview.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interview.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interview.FieldCandidateID:
		return m.CandidateID()
	case interview.FieldJobID:
		return m.JobID()
	case interview.FieldRoundLabel:
		return m.RoundLabel()
	case interview.FieldStatus:
		return m.Status()
	case interview.FieldStartedAt:
		return m.StartedAt()
	case interview.FieldEndedAt:
		return m.EndedAt()
	case interview.FieldLinkExpiresAt:
		return m.LinkExpiresAt()
	case interview.FieldEmailSent:
		return m.EmailSent()
	case interview.FieldCreatedAt:
		return m.CreatedAt()
	case interview.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interview.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case interview.FieldJobID:
		return m.OldJobID(ctx)
	case interview.FieldRoundLabel:
		return m.OldRoundLabel(ctx)
	case interview.FieldStatus:
		return m.OldStatus(ctx)
	case interview.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case interview.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case interview.FieldLinkExpiresAt:
		return m.OldLinkExpiresAt(ctx)
	case interview.FieldEmailSent:
		return m.OldEmailSent(ctx)
	case interview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interview.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Interview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interview.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case interview.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case interview.FieldRoundLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundLabel(v)
		return nil
	case interview.FieldStatus:
		v, ok := value.(interview.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case interview.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case interview.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case interview.FieldLinkExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkExpiresAt(v)
		return nil
	case interview.FieldEmailSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSent(v)
		return nil
	case interview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interview.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Interview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Interview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interview.FieldRoundLabel) {
		fields = append(fields, interview.FieldRoundLabel)
	}
	if m.FieldCleared(interview.FieldStartedAt) {
		fields = append(fields, interview.FieldStartedAt)
	}
	if m.FieldCleared(interview.FieldEndedAt) {
		fields = append(fields, interview.FieldEndedAt)
	}
	if m.FieldCleared(interview.FieldLinkExpiresAt) {
		fields = append(fields, interview.FieldLinkExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewMutation) ClearField(name string) error {
	switch name {
	case interview.FieldRoundLabel:
		m.ClearRoundLabel()
		return nil
	case interview.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case interview.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case interview.FieldLinkExpiresAt:
		m.ClearLinkExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Interview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewMutation) ResetField(name string) error {
	switch name {
	case interview.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case interview.FieldJobID:
		m.ResetJobID()
		return nil
	case interview.FieldRoundLabel:
		m.ResetRoundLabel()
		return nil
	case interview.FieldStatus:
		m.ResetStatus()
		return nil
	case interview.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case interview.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case interview.FieldLinkExpiresAt:
		m.ResetLinkExpiresAt()
		return nil
	case interview.FieldEmailSent:
		m.ResetEmailSent()
		return nil
	case interview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interview.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Interview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.candidate != nil {
		edges = append(edges, interview.EdgeCandidate)
	}
	if m.job != nil {
		edges = append(edges, interview.EdgeJob)
	}
	if m.schedules != nil {
		edges = append(edges, interview.EdgeSchedules)
	}
	if m.session != nil {
		edges = append(edges, interview.EdgeSession)
	}
	if m.evaluation_results != nil {
		edges = append(edges, interview.EdgeEvaluationResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interview.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	case interview.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case interview.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.schedules))
		for id := range m.schedules {
			ids = append(ids, id)
		}
		return ids
	case interview.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case interview.EdgeEvaluationResults:
		ids := make([]ent.Value, 0, len(m.evaluation_results))
		for id := range m.evaluation_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedschedules != nil {
		edges = append(edges, interview.EdgeSchedules)
	}
	if m.removedevaluation_results != nil {
		edges = append(edges, interview.EdgeEvaluationResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case interview.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.removedschedules))
		for id := range m.removedschedules {
			ids = append(ids, id)
		}
		return ids
	case interview.EdgeEvaluationResults:
		ids := make([]ent.Value, 0, len(m.removedevaluation_results))
		for id := range m.removedevaluation_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedcandidate {
		edges = append(edges, interview.EdgeCandidate)
	}
	if m.clearedjob {
		edges = append(edges, interview.EdgeJob)
	}
	if m.clearedschedules {
		edges = append(edges, interview.EdgeSchedules)
	}
	if m.clearedsession {
		edges = append(edges, interview.EdgeSession)
	}
	if m.clearedevaluation_results {
		edges = append(edges, interview.EdgeEvaluationResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewMutation) EdgeCleared(name string) bool {
	switch name {
	case interview.EdgeCandidate:
		return m.clearedcandidate
	case interview.EdgeJob:
		return m.clearedjob
	case interview.EdgeSchedules:
		return m.clearedschedules
	case interview.EdgeSession:
		return m.clearedsession
	case interview.EdgeEvaluationResults:
		return m.clearedevaluation_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewMutation) ClearEdge(name string) error {
	switch name {
	case interview.EdgeCandidate:
		m.ClearCandidate()
		return nil
	case interview.EdgeJob:
		m.ClearJob()
		return nil
	case interview.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Interview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewMutation) ResetEdge(name string) error {
	switch name {
	case interview.EdgeCandidate:
		m.ResetCandidate()
		return nil
	case interview.EdgeJob:
		m.ResetJob()
		return nil
	case interview.EdgeSchedules:
		m.ResetSchedules()
		return nil
	case interview.EdgeSession:
		m.ResetSession()
		return nil
	case interview.EdgeEvaluationResults:
		m.ResetEvaluationResults()
		return nil
	}
	return fmt.Errorf("unknown Interview edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	title             *string
	company_name      *string
	domain            *string
	description       *string
	tech_stack        *[]string
	appendtech_stack  []string
	coding_language   *job.CodingLanguage
	is_active         *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	company           *string
	clearedcompany    bool
	slots             map[string]struct{}
	removedslots      map[string]struct{}
	clearedslots      bool
	interviews        map[string]struct{}
	removedinterviews map[string]struct{}
	clearedinterviews bool
	done              bool
	oldValue          func(context.Context) (*Job, error)
	predicates        []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *JobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobMutation) ResetTitle() {
	m.title = nil
}

// SetCompanyName sets the "company_name" field.
func (m *JobMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *JobMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *JobMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[job.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *JobMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[job.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *JobMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, job.FieldCompanyName)
}

// SetCompanyID sets the "company_id" field.
func (m *JobMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *JobMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompanyID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *JobMutation) ClearCompanyID() {
	m.company = nil
	m.clearedFields[job.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *JobMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[job.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *JobMutation) ResetCompanyID() {
	m.company = nil
	delete(m.clearedFields, job.FieldCompanyID)
}

// SetDomain sets the "domain" field.
func (m *JobMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *JobMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *JobMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[job.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *JobMutation) DomainCleared() bool {
	_, ok := m.clearedFields[job.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *JobMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, job.FieldDomain)
}

// SetDescription sets the "description" field.
func (m *JobMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *JobMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *JobMutation) ResetDescription() {
	m.description = nil
}

// SetTechStack sets the "tech_stack" field.
func (m *JobMutation) SetTechStack(s []string) {
	m.tech_stack = &s
	m.appendtech_stack = nil
}

// TechStack returns the value of the "tech_stack" field in the mutation.
func (m *JobMutation) TechStack() (r []string, exists bool) {
	v := m.tech_stack
	if v == nil {
		return
	}
	return *v, true
}

// OldTechStack returns the old "tech_stack" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTechStack(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechStack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechStack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechStack: %w", err)
	}
	return oldValue.TechStack, nil
}

// AppendTechStack adds s to the "tech_stack" field.
func (m *JobMutation) AppendTechStack(s []string) {
	m.appendtech_stack = append(m.appendtech_stack, s...)
}

// AppendedTechStack returns the list of values that were appended to the "tech_stack" field in this mutation.
func (m *JobMutation) AppendedTechStack() ([]string, bool) {
	if len(m.appendtech_stack) == 0 {
		return nil, false
	}
	return m.appendtech_stack, true
}

// ClearTechStack clears the value of the "tech_stack" field.
func (m *JobMutation) ClearTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	m.clearedFields[job.FieldTechStack] = struct{}{}
}

// TechStackCleared returns if the "tech_stack" field was cleared in this mutation.
func (m *JobMutation) TechStackCleared() bool {
	_, ok := m.clearedFields[job.FieldTechStack]
	return ok
}

// ResetTechStack resets all changes to the "tech_stack" field.
func (m *JobMutation) ResetTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	delete(m.clearedFields, job.FieldTechStack)
}

// SetCodingLanguage sets the "coding_language" field.
func (m *JobMutation) SetCodingLanguage(jl job.CodingLanguage) {
	m.coding_language = &jl
}

// CodingLanguage returns the value of the "coding_language" field in the mutation.
func (m *JobMutation) CodingLanguage() (r job.CodingLanguage, exists bool) {
	v := m.coding_language
	if v == nil {
		return
	}
	return *v, true
}

// OldCodingLanguage returns the old "coding_language" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCodingLanguage(ctx context.Context) (v *job.CodingLanguage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodingLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodingLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodingLanguage: %w", err)
	}
	return oldValue.CodingLanguage, nil
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (m *JobMutation) ClearCodingLanguage() {
	m.coding_language = nil
	m.clearedFields[job.FieldCodingLanguage] = struct{}{}
}

// CodingLanguageCleared returns if the "coding_language" field was cleared in this mutation.
func (m *JobMutation) CodingLanguageCleared() bool {
	_, ok := m.clearedFields[job.FieldCodingLanguage]
	return ok
}

// ResetCodingLanguage resets all changes to the "coding_language" field.
func (m *JobMutation) ResetCodingLanguage() {
	m.coding_language = nil
	delete(m.clearedFields, job.FieldCodingLanguage)
}

// SetIsActive sets the "is_active" field.
func (m *JobMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *JobMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *JobMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *JobMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[job.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *JobMutation) CompanyCleared() bool {
	return m.CompanyIDCleared() || m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *JobMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *JobMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddSlotIDs adds the "slots" edge to the Slot entity by ids.
func (m *JobMutation) AddSlotIDs(ids ...string) {
	if m.slots == nil {
		m.slots = make(map[string]struct{})
	}
	for i := range ids {
		m.slots[ids[i]] = struct{}{}
	}
}

// ClearSlots clears the "slots" edge to the Slot entity.
func (m *JobMutation) ClearSlots() {
	m.clearedslots = true
}

// SlotsCleared reports if the "slots" edge to the Slot entity was cleared.
func (m *JobMutation) SlotsCleared() bool {
	return m.clearedslots
}

// RemoveSlotIDs removes the "slots" edge to the Slot entity by IDs.
func (m *JobMutation) RemoveSlotIDs(ids ...string) {
	if m.removedslots == nil {
		m.removedslots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.slots, ids[i])
		m.removedslots[ids[i]] = struct{}{}
	}
}

// RemovedSlots returns the removed IDs of the "slots" edge to the Slot entity.
func (m *JobMutation) RemovedSlotsIDs() (ids []string) {
	for id := range m.removedslots {
		ids = append(ids, id)
	}
	return
}

// SlotsIDs returns the "slots" edge IDs in the mutation.
func (m *JobMutation) SlotsIDs() (ids []string) {
	for id := range m.slots {
		ids = append(ids, id)
	}
	return
}

// ResetSlots resets all changes to the "slots" edge.
func (m *JobMutation) ResetSlots() {
	m.slots = nil
	m.clearedslots = false
	m.removedslots = nil
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by ids.
func (m *JobMutation) AddInterviewIDs(ids ...string) {
	if m.interviews == nil {
		m.interviews = make(map[string]struct{})
	}
	for i := range ids {
		m.interviews[ids[i]] = struct{}{}
	}
}

// ClearInterviews clears the "interviews" edge to the Interview entity.
func (m *JobMutation) ClearInterviews() {
	m.clearedinterviews = true
}

// InterviewsCleared reports if the "interviews" edge to the Interview entity was cleared.
func (m *JobMutation) InterviewsCleared() bool {
	return m.clearedinterviews
}

// RemoveInterviewIDs removes the "interviews" edge to the Interview entity by IDs.
func (m *JobMutation) RemoveInterviewIDs(ids ...string) {
	if m.removedinterviews == nil {
		m.removedinterviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.interviews, ids[i])
		m.removedinterviews[ids[i]] = struct{}{}
	}
}

// RemovedInterviews returns the removed IDs of the "interviews" edge to the Interview entity.
func (m *JobMutation) RemovedInterviewsIDs() (ids []string) {
	for id := range m.removedinterviews {
		ids = append(ids, id)
	}
	return
}

// InterviewsIDs returns the "interviews" edge IDs in the mutation.
func (m *JobMutation) InterviewsIDs() (ids []string) {
	for id := range m.interviews {
		ids = append(ids, id)
	}
	return
}

// ResetInterviews resets all changes to the "interviews" edge.
func (m *JobMutation) ResetInterviews() {
	m.interviews = nil
	m.clearedinterviews = false
	m.removedinterviews = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.title != nil {
		fields = append(fields, job.FieldTitle)
	}
	if m.company_name != nil {
		fields = append(fields, job.FieldCompanyName)
	}
	if m.company != nil {
		fields = append(fields, job.FieldCompanyID)
	}
	if m.domain != nil {
		fields = append(fields, job.FieldDomain)
	}
	if m.description != nil {
		fields = append(fields, job.FieldDescription)
	}
	if m.tech_stack != nil {
		fields = append(fields, job.FieldTechStack)
	}
	if m.coding_language != nil {
		fields = append(fields, job.FieldCodingLanguage)
	}
	if m.is_active != nil {
		fields = append(fields, job.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTitle:
		return m.Title()
	case job.FieldCompanyName:
		return m.CompanyName()
	case job.FieldCompanyID:
		return m.CompanyID()
	case job.FieldDomain:
		return m.Domain()
	case job.FieldDescription:
		return m.Description()
	case job.FieldTechStack:
		return m.TechStack()
	case job.FieldCodingLanguage:
		return m.CodingLanguage()
	case job.FieldIsActive:
		return m.IsActive()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTitle:
		return m.OldTitle(ctx)
	case job.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case job.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case job.FieldDomain:
		return m.OldDomain(ctx)
	case job.FieldDescription:
		return m.OldDescription(ctx)
	case job.FieldTechStack:
		return m.OldTechStack(ctx)
	case job.FieldCodingLanguage:
		return m.OldCodingLanguage(ctx)
	case job.FieldIsActive:
		return m.OldIsActive(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case job.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case job.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case job.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case job.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case job.FieldTechStack:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechStack(v)
		return nil
	case job.FieldCodingLanguage:
		v, ok := value.(job.CodingLanguage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodingLanguage(v)
		return nil
	case job.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldCompanyName) {
		fields = append(fields, job.FieldCompanyName)
	}
	if m.FieldCleared(job.FieldCompanyID) {
		fields = append(fields, job.FieldCompanyID)
	}
	if m.FieldCleared(job.FieldDomain) {
		fields = append(fields, job.FieldDomain)
	}
	if m.FieldCleared(job.FieldTechStack) {
		fields = append(fields, job.FieldTechStack)
	}
	if m.FieldCleared(job.FieldCodingLanguage) {
		fields = append(fields, job.FieldCodingLanguage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case job.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case job.FieldDomain:
		m.ClearDomain()
		return nil
	case job.FieldTechStack:
		m.ClearTechStack()
		return nil
	case job.FieldCodingLanguage:
		m.ClearCodingLanguage()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTitle:
		m.ResetTitle()
		return nil
	case job.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case job.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case job.FieldDomain:
		m.ResetDomain()
		return nil
	case job.FieldDescription:
		m.ResetDescription()
		return nil
	case job.FieldTechStack:
		m.ResetTechStack()
		return nil
	case job.FieldCodingLanguage:
		m.ResetCodingLanguage()
		return nil
	case job.FieldIsActive:
		m.ResetIsActive()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, job.EdgeCompany)
	}
	if m.slots != nil {
		edges = append(edges, job.EdgeSlots)
	}
	if m.interviews != nil {
		edges = append(edges, job.EdgeInterviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeSlots:
		ids := make([]ent.Value, 0, len(m.slots))
		for id := range m.slots {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeInterviews:
		ids := make([]ent.Value, 0, len(m.interviews))
		for id := range m.interviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedslots != nil {
		edges = append(edges, job.EdgeSlots)
	}
	if m.removedinterviews != nil {
		edges = append(edges, job.EdgeInterviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeSlots:
		ids := make([]ent.Value, 0, len(m.removedslots))
		for id := range m.removedslots {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeInterviews:
		ids := make([]ent.Value, 0, len(m.removedinterviews))
		for id := range m.removedinterviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, job.EdgeCompany)
	}
	if m.clearedslots {
		edges = append(edges, job.EdgeSlots)
	}
	if m.clearedinterviews {
		edges = append(edges, job.EdgeInterviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeCompany:
		return m.clearedcompany
	case job.EdgeSlots:
		return m.clearedslots
	case job.EdgeInterviews:
		return m.clearedinterviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeCompany:
		m.ResetCompany()
		return nil
	case job.EdgeSlots:
		m.ResetSlots()
		return nil
	case job.EdgeInterviews:
		m.ResetInterviews()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	_order             *int
	add_order          *int
	_type              *question.Type
	level              *question.Level
	text               *string
	coding_language    *question.CodingLanguage
	audio_path         *string
	tts_degraded       *bool
	generated_fallback *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	parent             *string
	clearedparent      bool
	follow_ups         map[string]struct{}
	removedfollow_ups  map[string]struct{}
	clearedfollow_ups  bool
	responses          map[string]struct{}
	removedresponses   map[string]struct{}
	clearedresponses   bool
	test_cases         map[string]struct{}
	removedtest_cases  map[string]struct{}
	clearedtest_cases  bool
	done               bool
	oldValue           func(context.Context) (*Question, error)
	predicates         []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *QuestionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestionMutation) ResetSessionID() {
	m.session = nil
}

// SetOrder sets the "order" field.
func (m *QuestionMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *QuestionMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *QuestionMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *QuestionMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *QuestionMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetType sets the "type" field.
func (m *QuestionMutation) SetType(q question.Type) {
	m._type = &q
}

// GetType returns the value of the "type" field in the mutation.
func (m *QuestionMutation) GetType() (r question.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldType(ctx context.Context) (v question.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *QuestionMutation) ResetType() {
	m._type = nil
}

// SetLevel sets the "level" field.
func (m *QuestionMutation) SetLevel(q question.Level) {
	m.level = &q
}

// Level returns the value of the "level" field in the mutation.
func (m *QuestionMutation) Level() (r question.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldLevel(ctx context.Context) (v question.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *QuestionMutation) ResetLevel() {
	m.level = nil
}

// SetParentID sets the "parent_id" field.
func (m *QuestionMutation) SetParentID(s string) {
	m.parent = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *QuestionMutation) ParentID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *QuestionMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[question.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *QuestionMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[question.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *QuestionMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, question.FieldParentID)
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetCodingLanguage sets the "coding_language" field.
func (m *QuestionMutation) SetCodingLanguage(ql question.CodingLanguage) {
	m.coding_language = &ql
}

// CodingLanguage returns the value of the "coding_language" field in the mutation.
func (m *QuestionMutation) CodingLanguage() (r question.CodingLanguage, exists bool) {
	v := m.coding_language
	if v == nil {
		return
	}
	return *v, true
}

// OldCodingLanguage returns the old "coding_language" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCodingLanguage(ctx context.Context) (v *question.CodingLanguage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodingLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodingLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodingLanguage: %w", err)
	}
	return oldValue.CodingLanguage, nil
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (m *QuestionMutation) ClearCodingLanguage() {
	m.coding_language = nil
	m.clearedFields[question.FieldCodingLanguage] = struct{}{}
}

// CodingLanguageCleared returns if the "coding_language" field was cleared in this mutation.
func (m *QuestionMutation) CodingLanguageCleared() bool {
	_, ok := m.clearedFields[question.FieldCodingLanguage]
	return ok
}

// ResetCodingLanguage resets all changes to the "coding_language" field.
func (m *QuestionMutation) ResetCodingLanguage() {
	m.coding_language = nil
	delete(m.clearedFields, question.FieldCodingLanguage)
}

// SetAudioPath sets the "audio_path" field.
func (m *QuestionMutation) SetAudioPath(s string) {
	m.audio_path = &s
}

// AudioPath returns the value of the "audio_path" field in the mutation.
func (m *QuestionMutation) AudioPath() (r string, exists bool) {
	v := m.audio_path
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioPath returns the old "audio_path" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAudioPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioPath: %w", err)
	}
	return oldValue.AudioPath, nil
}

// ClearAudioPath clears the value of the "audio_path" field.
func (m *QuestionMutation) ClearAudioPath() {
	m.audio_path = nil
	m.clearedFields[question.FieldAudioPath] = struct{}{}
}

// AudioPathCleared returns if the "audio_path" field was cleared in this mutation.
func (m *QuestionMutation) AudioPathCleared() bool {
	_, ok := m.clearedFields[question.FieldAudioPath]
	return ok
}

// ResetAudioPath resets all changes to the "audio_path" field.
func (m *QuestionMutation) ResetAudioPath() {
	m.audio_path = nil
	delete(m.clearedFields, question.FieldAudioPath)
}

// SetTtsDegraded sets the "tts_degraded" field.
func (m *QuestionMutation) SetTtsDegraded(b bool) {
	m.tts_degraded = &b
}

// TtsDegraded returns the value of the "tts_degraded" field in the mutation.
func (m *QuestionMutation) TtsDegraded() (r bool, exists bool) {
	v := m.tts_degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldTtsDegraded returns the old "tts_degraded" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTtsDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTtsDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTtsDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTtsDegraded: %w", err)
	}
	return oldValue.TtsDegraded, nil
}

// ResetTtsDegraded resets all changes to the "tts_degraded" field.
func (m *QuestionMutation) ResetTtsDegraded() {
	m.tts_degraded = nil
}

// SetGeneratedFallback sets the "generated_fallback" field.
func (m *QuestionMutation) SetGeneratedFallback(b bool) {
	m.generated_fallback = &b
}

// GeneratedFallback returns the value of the "generated_fallback" field in the mutation.
func (m *QuestionMutation) GeneratedFallback() (r bool, exists bool) {
	v := m.generated_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedFallback returns the old "generated_fallback" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldGeneratedFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedFallback: %w", err)
	}
	return oldValue.GeneratedFallback, nil
}

// ResetGeneratedFallback resets all changes to the "generated_fallback" field.
func (m *QuestionMutation) ResetGeneratedFallback() {
	m.generated_fallback = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *QuestionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[question.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *QuestionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *QuestionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearParent clears the "parent" edge to the Question entity.
func (m *QuestionMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[question.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Question entity was cleared.
func (m *QuestionMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *QuestionMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddFollowUpIDs adds the "follow_ups" edge to the Question entity by ids.
func (m *QuestionMutation) AddFollowUpIDs(ids ...string) {
	if m.follow_ups == nil {
		m.follow_ups = make(map[string]struct{})
	}
	for i := range ids {
		m.follow_ups[ids[i]] = struct{}{}
	}
}

// ClearFollowUps clears the "follow_ups" edge to the Question entity.
func (m *QuestionMutation) ClearFollowUps() {
	m.clearedfollow_ups = true
}

// FollowUpsCleared reports if the "follow_ups" edge to the Question entity was cleared.
func (m *QuestionMutation) FollowUpsCleared() bool {
	return m.clearedfollow_ups
}

// RemoveFollowUpIDs removes the "follow_ups" edge to the Question entity by IDs.
func (m *QuestionMutation) RemoveFollowUpIDs(ids ...string) {
	if m.removedfollow_ups == nil {
		m.removedfollow_ups = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.follow_ups, ids[i])
		m.removedfollow_ups[ids[i]] = struct{}{}
	}
}

// RemovedFollowUps returns the removed IDs of the "follow_ups" edge to the Question entity.
func (m *QuestionMutation) RemovedFollowUpsIDs() (ids []string) {
	for id := range m.removedfollow_ups {
		ids = append(ids, id)
	}
	return
}

// FollowUpsIDs returns the "follow_ups" edge IDs in the mutation.
func (m *QuestionMutation) FollowUpsIDs() (ids []string) {
	for id := range m.follow_ups {
		ids = append(ids, id)
	}
	return
}

// ResetFollowUps resets all changes to the "follow_ups" edge.
func (m *QuestionMutation) ResetFollowUps() {
	m.follow_ups = nil
	m.clearedfollow_ups = false
	m.removedfollow_ups = nil
}

// AddResponseIDs adds the "responses" edge to the Response entity by ids.
func (m *QuestionMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the Response entity.
func (m *QuestionMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the Response entity was cleared.
func (m *QuestionMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the Response entity by IDs.
func (m *QuestionMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the Response entity.
func (m *QuestionMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *QuestionMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *QuestionMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by ids.
func (m *QuestionMutation) AddTestCaseIDs(ids ...string) {
	if m.test_cases == nil {
		m.test_cases = make(map[string]struct{})
	}
	for i := range ids {
		m.test_cases[ids[i]] = struct{}{}
	}
}

// ClearTestCases clears the "test_cases" edge to the TestCase entity.
func (m *QuestionMutation) ClearTestCases() {
	m.clearedtest_cases = true
}

// TestCasesCleared reports if the "test_cases" edge to the TestCase entity was cleared.
func (m *QuestionMutation) TestCasesCleared() bool {
	return m.clearedtest_cases
}

// RemoveTestCaseIDs removes the "test_cases" edge to the TestCase entity by IDs.
func (m *QuestionMutation) RemoveTestCaseIDs(ids ...string) {
	if m.removedtest_cases == nil {
		m.removedtest_cases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.test_cases, ids[i])
		m.removedtest_cases[ids[i]] = struct{}{}
	}
}

// RemovedTestCases returns the removed IDs of the "test_cases" edge to the TestCase entity.
func (m *QuestionMutation) RemovedTestCasesIDs() (ids []string) {
	for id := range m.removedtest_cases {
		ids = append(ids, id)
	}
	return
}

// TestCasesIDs returns the "test_cases" edge IDs in the mutation.
func (m *QuestionMutation) TestCasesIDs() (ids []string) {
	for id := range m.test_cases {
		ids = append(ids, id)
	}
	return
}

// ResetTestCases resets all changes to the "test_cases" edge.
func (m *QuestionMutation) ResetTestCases() {
	m.test_cases = nil
	m.clearedtest_cases = false
	m.removedtest_cases = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session != nil {
		fields = append(fields, question.FieldSessionID)
	}
	if m._order != nil {
		fields = append(fields, question.FieldOrder)
	}
	if m._type != nil {
		fields = append(fields, question.FieldType)
	}
	if m.level != nil {
		fields = append(fields, question.FieldLevel)
	}
	if m.parent != nil {
		fields = append(fields, question.FieldParentID)
	}
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m.coding_language != nil {
		fields = append(fields, question.FieldCodingLanguage)
	}
	if m.audio_path != nil {
		fields = append(fields, question.FieldAudioPath)
	}
	if m.tts_degraded != nil {
		fields = append(fields, question.FieldTtsDegraded)
	}
	if m.generated_fallback != nil {
		fields = append(fields, question.FieldGeneratedFallback)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldSessionID:
		return m.SessionID()
	case question.FieldOrder:
		return m.Order()
	case question.FieldType:
		return m.GetType()
	case question.FieldLevel:
		return m.Level()
	case question.FieldParentID:
		return m.ParentID()
	case question.FieldText:
		return m.Text()
	case question.FieldCodingLanguage:
		return m.CodingLanguage()
	case question.FieldAudioPath:
		return m.AudioPath()
	case question.FieldTtsDegraded:
		return m.TtsDegraded()
	case question.FieldGeneratedFallback:
		return m.GeneratedFallback()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldSessionID:
		return m.OldSessionID(ctx)
	case question.FieldOrder:
		return m.OldOrder(ctx)
	case question.FieldType:
		return m.OldType(ctx)
	case question.FieldLevel:
		return m.OldLevel(ctx)
	case question.FieldParentID:
		return m.OldParentID(ctx)
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldCodingLanguage:
		return m.OldCodingLanguage(ctx)
	case question.FieldAudioPath:
		return m.OldAudioPath(ctx)
	case question.FieldTtsDegraded:
		return m.OldTtsDegraded(ctx)
	case question.FieldGeneratedFallback:
		return m.OldGeneratedFallback(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case question.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case question.FieldType:
		v, ok := value.(question.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case question.FieldLevel:
		v, ok := value.(question.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case question.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldCodingLanguage:
		v, ok := value.(question.CodingLanguage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodingLanguage(v)
		return nil
	case question.FieldAudioPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioPath(v)
		return nil
	case question.FieldTtsDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTtsDegraded(v)
		return nil
	case question.FieldGeneratedFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedFallback(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, question.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldParentID) {
		fields = append(fields, question.FieldParentID)
	}
	if m.FieldCleared(question.FieldCodingLanguage) {
		fields = append(fields, question.FieldCodingLanguage)
	}
	if m.FieldCleared(question.FieldAudioPath) {
		fields = append(fields, question.FieldAudioPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldParentID:
		m.ClearParentID()
		return nil
	case question.FieldCodingLanguage:
		m.ClearCodingLanguage()
		return nil
	case question.FieldAudioPath:
		m.ClearAudioPath()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldSessionID:
		m.ResetSessionID()
		return nil
	case question.FieldOrder:
		m.ResetOrder()
		return nil
	case question.FieldType:
		m.ResetType()
		return nil
	case question.FieldLevel:
		m.ResetLevel()
		return nil
	case question.FieldParentID:
		m.ResetParentID()
		return nil
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldCodingLanguage:
		m.ResetCodingLanguage()
		return nil
	case question.FieldAudioPath:
		m.ResetAudioPath()
		return nil
	case question.FieldTtsDegraded:
		m.ResetTtsDegraded()
		return nil
	case question.FieldGeneratedFallback:
		m.ResetGeneratedFallback()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.session != nil {
		edges = append(edges, question.EdgeSession)
	}
	if m.parent != nil {
		edges = append(edges, question.EdgeParent)
	}
	if m.follow_ups != nil {
		edges = append(edges, question.EdgeFollowUps)
	}
	if m.responses != nil {
		edges = append(edges, question.EdgeResponses)
	}
	if m.test_cases != nil {
		edges = append(edges, question.EdgeTestCases)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeFollowUps:
		ids := make([]ent.Value, 0, len(m.follow_ups))
		for id := range m.follow_ups {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeTestCases:
		ids := make([]ent.Value, 0, len(m.test_cases))
		for id := range m.test_cases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedfollow_ups != nil {
		edges = append(edges, question.EdgeFollowUps)
	}
	if m.removedresponses != nil {
		edges = append(edges, question.EdgeResponses)
	}
	if m.removedtest_cases != nil {
		edges = append(edges, question.EdgeTestCases)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeFollowUps:
		ids := make([]ent.Value, 0, len(m.removedfollow_ups))
		for id := range m.removedfollow_ups {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeTestCases:
		ids := make([]ent.Value, 0, len(m.removedtest_cases))
		for id := range m.removedtest_cases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsession {
		edges = append(edges, question.EdgeSession)
	}
	if m.clearedparent {
		edges = append(edges, question.EdgeParent)
	}
	if m.clearedfollow_ups {
		edges = append(edges, question.EdgeFollowUps)
	}
	if m.clearedresponses {
		edges = append(edges, question.EdgeResponses)
	}
	if m.clearedtest_cases {
		edges = append(edges, question.EdgeTestCases)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeSession:
		return m.clearedsession
	case question.EdgeParent:
		return m.clearedparent
	case question.EdgeFollowUps:
		return m.clearedfollow_ups
	case question.EdgeResponses:
		return m.clearedresponses
	case question.EdgeTestCases:
		return m.clearedtest_cases
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeSession:
		m.ClearSession()
		return nil
	case question.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeSession:
		m.ResetSession()
		return nil
	case question.EdgeParent:
		m.ResetParent()
		return nil
	case question.EdgeFollowUps:
		m.ResetFollowUps()
		return nil
	case question.EdgeResponses:
		m.ResetResponses()
		return nil
	case question.EdgeTestCases:
		m.ResetTestCases()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// ResponseMutation represents an operation that mutates the Response nodes in the graph.
type ResponseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *response.Kind
	content             *string
	audio_path          *string
	duration_seconds    *float64
	addduration_seconds *float64
	filler_count        *int
	addfiller_count     *int
	words_per_minute    *float64
	addwords_per_minute *float64
	sentiment           *float64
	addsentiment        *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	question            *string
	clearedquestion     bool
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*Response, error)
	predicates          []predicate.Response
}

var _ ent.Mutation = (*ResponseMutation)(nil)

// responseOption allows management of the mutation configuration using functional options.
type responseOption func(*ResponseMutation)

// newResponseMutation creates new mutation for the Response entity.
func newResponseMutation(c config, op Op, opts ...responseOption) *ResponseMutation {
	m := &ResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseID sets the ID field of the mutation.
func withResponseID(id string) responseOption {
	return func(m *ResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *Response
		)
		m.oldValue = func(ctx context.Context) (*Response, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Response.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponse sets the old Response of the mutation.
func withResponse(node *Response) responseOption {
	return func(m *ResponseMutation) {
		m.oldValue = func(context.Context) (*Response, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Response entities.
func (m *ResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Response.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *ResponseMutation) SetQuestionID(s string) {
	m.question = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *ResponseMutation) QuestionID() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *ResponseMutation) ResetQuestionID() {
	m.question = nil
}

// SetSessionID sets the "session_id" field.
func (m *ResponseMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResponseMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ResponseMutation) ResetSessionID() {
	m.session = nil
}

// SetKind sets the "kind" field.
func (m *ResponseMutation) SetKind(r response.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ResponseMutation) Kind() (r response.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldKind(ctx context.Context) (v response.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ResponseMutation) ResetKind() {
	m.kind = nil
}

// SetContent sets the "content" field.
func (m *ResponseMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ResponseMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ResponseMutation) ResetContent() {
	m.content = nil
}

// SetAudioPath sets the "audio_path" field.
func (m *ResponseMutation) SetAudioPath(s string) {
	m.audio_path = &s
}

// AudioPath returns the value of the "audio_path" field in the mutation.
func (m *ResponseMutation) AudioPath() (r string, exists bool) {
	v := m.audio_path
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioPath returns the old "audio_path" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldAudioPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioPath: %w", err)
	}
	return oldValue.AudioPath, nil
}

// ClearAudioPath clears the value of the "audio_path" field.
func (m *ResponseMutation) ClearAudioPath() {
	m.audio_path = nil
	m.clearedFields[response.FieldAudioPath] = struct{}{}
}

// AudioPathCleared returns if the "audio_path" field was cleared in this mutation.
func (m *ResponseMutation) AudioPathCleared() bool {
	_, ok := m.clearedFields[response.FieldAudioPath]
	return ok
}

// ResetAudioPath resets all changes to the "audio_path" field.
func (m *ResponseMutation) ResetAudioPath() {
	m.audio_path = nil
	delete(m.clearedFields, response.FieldAudioPath)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *ResponseMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *ResponseMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldDurationSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *ResponseMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *ResponseMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *ResponseMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetFillerCount sets the "filler_count" field.
func (m *ResponseMutation) SetFillerCount(i int) {
	m.filler_count = &i
	m.addfiller_count = nil
}

// FillerCount returns the value of the "filler_count" field in the mutation.
func (m *ResponseMutation) FillerCount() (r int, exists bool) {
	v := m.filler_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFillerCount returns the old "filler_count" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldFillerCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFillerCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFillerCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFillerCount: %w", err)
	}
	return oldValue.FillerCount, nil
}

// AddFillerCount adds i to the "filler_count" field.
func (m *ResponseMutation) AddFillerCount(i int) {
	if m.addfiller_count != nil {
		*m.addfiller_count += i
	} else {
		m.addfiller_count = &i
	}
}

// AddedFillerCount returns the value that was added to the "filler_count" field in this mutation.
func (m *ResponseMutation) AddedFillerCount() (r int, exists bool) {
	v := m.addfiller_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearFillerCount clears the value of the "filler_count" field.
func (m *ResponseMutation) ClearFillerCount() {
	m.filler_count = nil
	m.addfiller_count = nil
	m.clearedFields[response.FieldFillerCount] = struct{}{}
}

// FillerCountCleared returns if the "filler_count" field was cleared in this mutation.
func (m *ResponseMutation) FillerCountCleared() bool {
	_, ok := m.clearedFields[response.FieldFillerCount]
	return ok
}

// ResetFillerCount resets all changes to the "filler_count" field.
func (m *ResponseMutation) ResetFillerCount() {
	m.filler_count = nil
	m.addfiller_count = nil
	delete(m.clearedFields, response.FieldFillerCount)
}

// SetWordsPerMinute sets the "words_per_minute" field.
func (m *ResponseMutation) SetWordsPerMinute(f float64) {
	m.words_per_minute = &f
	m.addwords_per_minute = nil
}

// WordsPerMinute returns the value of the "words_per_minute" field in the mutation.
func (m *ResponseMutation) WordsPerMinute() (r float64, exists bool) {
	v := m.words_per_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldWordsPerMinute returns the old "words_per_minute" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldWordsPerMinute(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordsPerMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordsPerMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordsPerMinute: %w", err)
	}
	return oldValue.WordsPerMinute, nil
}

// AddWordsPerMinute adds f to the "words_per_minute" field.
func (m *ResponseMutation) AddWordsPerMinute(f float64) {
	if m.addwords_per_minute != nil {
		*m.addwords_per_minute += f
	} else {
		m.addwords_per_minute = &f
	}
}

// AddedWordsPerMinute returns the value that was added to the "words_per_minute" field in this mutation.
func (m *ResponseMutation) AddedWordsPerMinute() (r float64, exists bool) {
	v := m.addwords_per_minute
	if v == nil {
		return
	}
	return *v, true
}

// ClearWordsPerMinute clears the value of the "words_per_minute" field.
func (m *ResponseMutation) ClearWordsPerMinute() {
	m.words_per_minute = nil
	m.addwords_per_minute = nil
	m.clearedFields[response.FieldWordsPerMinute] = struct{}{}
}

// WordsPerMinuteCleared returns if the "words_per_minute" field was cleared in this mutation.
func (m *ResponseMutation) WordsPerMinuteCleared() bool {
	_, ok := m.clearedFields[response.FieldWordsPerMinute]
	return ok
}

// ResetWordsPerMinute resets all changes to the "words_per_minute" field.
func (m *ResponseMutation) ResetWordsPerMinute() {
	m.words_per_minute = nil
	m.addwords_per_minute = nil
	delete(m.clearedFields, response.FieldWordsPerMinute)
}

// SetSentiment sets the "sentiment" field.
func (m *ResponseMutation) SetSentiment(f float64) {
	m.sentiment = &f
	m.addsentiment = nil
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *ResponseMutation) Sentiment() (r float64, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldSentiment(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// AddSentiment adds f to the "sentiment" field.
func (m *ResponseMutation) AddSentiment(f float64) {
	if m.addsentiment != nil {
		*m.addsentiment += f
	} else {
		m.addsentiment = &f
	}
}

// AddedSentiment returns the value that was added to the "sentiment" field in this mutation.
func (m *ResponseMutation) AddedSentiment() (r float64, exists bool) {
	v := m.addsentiment
	if v == nil {
		return
	}
	return *v, true
}

// ClearSentiment clears the value of the "sentiment" field.
func (m *ResponseMutation) ClearSentiment() {
	m.sentiment = nil
	m.addsentiment = nil
	m.clearedFields[response.FieldSentiment] = struct{}{}
}

// SentimentCleared returns if the "sentiment" field was cleared in this mutation.
func (m *ResponseMutation) SentimentCleared() bool {
	_, ok := m.clearedFields[response.FieldSentiment]
	return ok
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *ResponseMutation) ResetSentiment() {
	m.sentiment = nil
	m.addsentiment = nil
	delete(m.clearedFields, response.FieldSentiment)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *ResponseMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[response.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *ResponseMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *ResponseMutation) QuestionIDs() (ids []string) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *ResponseMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ResponseMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[response.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ResponseMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ResponseMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ResponseMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ResponseMutation builder.
func (m *ResponseMutation) Where(ps ...predicate.Response) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Response, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Response).
func (m *ResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.question != nil {
		fields = append(fields, response.FieldQuestionID)
	}
	if m.session != nil {
		fields = append(fields, response.FieldSessionID)
	}
	if m.kind != nil {
		fields = append(fields, response.FieldKind)
	}
	if m.content != nil {
		fields = append(fields, response.FieldContent)
	}
	if m.audio_path != nil {
		fields = append(fields, response.FieldAudioPath)
	}
	if m.duration_seconds != nil {
		fields = append(fields, response.FieldDurationSeconds)
	}
	if m.filler_count != nil {
		fields = append(fields, response.FieldFillerCount)
	}
	if m.words_per_minute != nil {
		fields = append(fields, response.FieldWordsPerMinute)
	}
	if m.sentiment != nil {
		fields = append(fields, response.FieldSentiment)
	}
	if m.created_at != nil {
		fields = append(fields, response.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case response.FieldQuestionID:
		return m.QuestionID()
	case response.FieldSessionID:
		return m.SessionID()
	case response.FieldKind:
		return m.Kind()
	case response.FieldContent:
		return m.Content()
	case response.FieldAudioPath:
		return m.AudioPath()
	case response.FieldDurationSeconds:
		return m.DurationSeconds()
	case response.FieldFillerCount:
		return m.FillerCount()
	case response.FieldWordsPerMinute:
		return m.WordsPerMinute()
	case response.FieldSentiment:
		return m.Sentiment()
	case response.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case response.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case response.FieldSessionID:
		return m.OldSessionID(ctx)
	case response.FieldKind:
		return m.OldKind(ctx)
	case response.FieldContent:
		return m.OldContent(ctx)
	case response.FieldAudioPath:
		return m.OldAudioPath(ctx)
	case response.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case response.FieldFillerCount:
		return m.OldFillerCount(ctx)
	case response.FieldWordsPerMinute:
		return m.OldWordsPerMinute(ctx)
	case response.FieldSentiment:
		return m.OldSentiment(ctx)
	case response.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Response field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case response.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case response.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case response.FieldKind:
		v, ok := value.(response.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case response.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case response.FieldAudioPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioPath(v)
		return nil
	case response.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case response.FieldFillerCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFillerCount(v)
		return nil
	case response.FieldWordsPerMinute:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordsPerMinute(v)
		return nil
	case response.FieldSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case response.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, response.FieldDurationSeconds)
	}
	if m.addfiller_count != nil {
		fields = append(fields, response.FieldFillerCount)
	}
	if m.addwords_per_minute != nil {
		fields = append(fields, response.FieldWordsPerMinute)
	}
	if m.addsentiment != nil {
		fields = append(fields, response.FieldSentiment)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case response.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case response.FieldFillerCount:
		return m.AddedFillerCount()
	case response.FieldWordsPerMinute:
		return m.AddedWordsPerMinute()
	case response.FieldSentiment:
		return m.AddedSentiment()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case response.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case response.FieldFillerCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFillerCount(v)
		return nil
	case response.FieldWordsPerMinute:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordsPerMinute(v)
		return nil
	case response.FieldSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentiment(v)
		return nil
	}
	return fmt.Errorf("unknown Response numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(response.FieldAudioPath) {
		fields = append(fields, response.FieldAudioPath)
	}
	if m.FieldCleared(response.FieldFillerCount) {
		fields = append(fields, response.FieldFillerCount)
	}
	if m.FieldCleared(response.FieldWordsPerMinute) {
		fields = append(fields, response.FieldWordsPerMinute)
	}
	if m.FieldCleared(response.FieldSentiment) {
		fields = append(fields, response.FieldSentiment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseMutation) ClearField(name string) error {
	switch name {
	case response.FieldAudioPath:
		m.ClearAudioPath()
		return nil
	case response.FieldFillerCount:
		m.ClearFillerCount()
		return nil
	case response.FieldWordsPerMinute:
		m.ClearWordsPerMinute()
		return nil
	case response.FieldSentiment:
		m.ClearSentiment()
		return nil
	}
	return fmt.Errorf("unknown Response nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseMutation) ResetField(name string) error {
	switch name {
	case response.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case response.FieldSessionID:
		m.ResetSessionID()
		return nil
	case response.FieldKind:
		m.ResetKind()
		return nil
	case response.FieldContent:
		m.ResetContent()
		return nil
	case response.FieldAudioPath:
		m.ResetAudioPath()
		return nil
	case response.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case response.FieldFillerCount:
		m.ResetFillerCount()
		return nil
	case response.FieldWordsPerMinute:
		m.ResetWordsPerMinute()
		return nil
	case response.FieldSentiment:
		m.ResetSentiment()
		return nil
	case response.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.question != nil {
		edges = append(edges, response.EdgeQuestion)
	}
	if m.session != nil {
		edges = append(edges, response.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case response.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	case response.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedquestion {
		edges = append(edges, response.EdgeQuestion)
	}
	if m.clearedsession {
		edges = append(edges, response.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case response.EdgeQuestion:
		return m.clearedquestion
	case response.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseMutation) ClearEdge(name string) error {
	switch name {
	case response.EdgeQuestion:
		m.ClearQuestion()
		return nil
	case response.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Response unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseMutation) ResetEdge(name string) error {
	switch name {
	case response.EdgeQuestion:
		m.ResetQuestion()
		return nil
	case response.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Response edge %s", name)
}

// ScheduleMutation represents an operation that mutates the Schedule nodes in the graph.
type ScheduleMutation struct {
	config
	op               Op
	typ              string
	id               *string
	status           *schedule.Status
	booking_note     *string
	booked_at        *time.Time
	cancelled_at     *time.Time
	clearedFields    map[string]struct{}
	interview        *string
	clearedinterview bool
	slot             *string
	clearedslot      bool
	done             bool
	oldValue         func(context.Context) (*Schedule, error)
	predicates       []predicate.Schedule
}

var _ ent.Mutation = (*ScheduleMutation)(nil)

// scheduleOption allows management of the mutation configuration using functional options.
type scheduleOption func(*ScheduleMutation)

// newScheduleMutation creates new mutation for the Schedule entity.
func newScheduleMutation(c config, op Op, opts ...scheduleOption) *ScheduleMutation {
	m := &ScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleID sets the ID field of the mutation.
func withScheduleID(id string) scheduleOption {
	return func(m *ScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *Schedule
		)
		m.oldValue = func(ctx context.Context) (*Schedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Schedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedule sets the old Schedule of the mutation.
func withSchedule(node *Schedule) scheduleOption {
	return func(m *ScheduleMutation) {
		m.oldValue = func(context.Context) (*Schedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Schedule entities.
func (m *ScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Schedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInterviewID sets the "interview_id" field.
func (m *ScheduleMutation) SetInterviewID(s string) {
	m.interview = &s
}

// InterviewID returns the value of the "interview_id" field in the mutation.
func (m *ScheduleMutation) InterviewID() (r string, exists bool) {
	v := m.interview
	if v == nil {
		return
	}
	return *v, true
}

// OldInterviewID returns the old "interview_id" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldInterviewID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterviewID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterviewID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterviewID: %w", err)
	}
	return oldValue.InterviewID, nil
}

// ResetInterviewID resets all changes to the "interview_id" field.
func (m *ScheduleMutation) ResetInterviewID() {
	m.interview = nil
}

// SetSlotID sets the "slot_id" field.
func (m *ScheduleMutation) SetSlotID(s string) {
	m.slot = &s
}

// SlotID returns the value of the "slot_id" field in the mutation.
func (m *ScheduleMutation) SlotID() (r string, exists bool) {
	v := m.slot
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotID returns the old "slot_id" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldSlotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotID: %w", err)
	}
	return oldValue.SlotID, nil
}

// ResetSlotID resets all changes to the "slot_id" field.
func (m *ScheduleMutation) ResetSlotID() {
	m.slot = nil
}

// SetStatus sets the "status" field.
func (m *ScheduleMutation) SetStatus(s schedule.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduleMutation) Status() (r schedule.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldStatus(ctx context.Context) (v schedule.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduleMutation) ResetStatus() {
	m.status = nil
}

// SetBookingNote sets the "booking_note" field.
func (m *ScheduleMutation) SetBookingNote(s string) {
	m.booking_note = &s
}

// BookingNote returns the value of the "booking_note" field in the mutation.
func (m *ScheduleMutation) BookingNote() (r string, exists bool) {
	v := m.booking_note
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingNote returns the old "booking_note" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldBookingNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingNote: %w", err)
	}
	return oldValue.BookingNote, nil
}

// ClearBookingNote clears the value of the "booking_note" field.
func (m *ScheduleMutation) ClearBookingNote() {
	m.booking_note = nil
	m.clearedFields[schedule.FieldBookingNote] = struct{}{}
}

// BookingNoteCleared returns if the "booking_note" field was cleared in this mutation.
func (m *ScheduleMutation) BookingNoteCleared() bool {
	_, ok := m.clearedFields[schedule.FieldBookingNote]
	return ok
}

// ResetBookingNote resets all changes to the "booking_note" field.
func (m *ScheduleMutation) ResetBookingNote() {
	m.booking_note = nil
	delete(m.clearedFields, schedule.FieldBookingNote)
}

// SetBookedAt sets the "booked_at" field.
func (m *ScheduleMutation) SetBookedAt(t time.Time) {
	m.booked_at = &t
}

// BookedAt returns the value of the "booked_at" field in the mutation.
func (m *ScheduleMutation) BookedAt() (r time.Time, exists bool) {
	v := m.booked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBookedAt returns the old "booked_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldBookedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookedAt: %w", err)
	}
	return oldValue.BookedAt, nil
}

// ResetBookedAt resets all changes to the "booked_at" field.
func (m *ScheduleMutation) ResetBookedAt() {
	m.booked_at = nil
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *ScheduleMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *ScheduleMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *ScheduleMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[schedule.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *ScheduleMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *ScheduleMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, schedule.FieldCancelledAt)
}

// ClearInterview clears the "interview" edge to the Interview entity.
func (m *ScheduleMutation) ClearInterview() {
	m.clearedinterview = true
	m.clearedFields[schedule.FieldInterviewID] = struct{}{}
}

// InterviewCleared reports if the "interview" edge to the Interview entity was cleared.
func (m *ScheduleMutation) InterviewCleared() bool {
	return m.clearedinterview
}

// InterviewIDs returns the "interview" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InterviewID instead. It exists only for internal usage by the builders.
func (m *ScheduleMutation) InterviewIDs() (ids []string) {
	if id := m.interview; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInterview resets all changes to the "interview" edge.
func (m *ScheduleMutation) ResetInterview() {
	m.interview = nil
	m.clearedinterview = false
}

// ClearSlot clears the "slot" edge to the Slot entity.
func (m *ScheduleMutation) ClearSlot() {
	m.clearedslot = true
	m.clearedFields[schedule.FieldSlotID] = struct{}{}
}

// SlotCleared reports if the "slot" edge to the Slot entity was cleared.
func (m *ScheduleMutation) SlotCleared() bool {
	return m.clearedslot
}

// SlotIDs returns the "slot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SlotID instead. It exists only for internal usage by the builders.
func (m *ScheduleMutation) SlotIDs() (ids []string) {
	if id := m.slot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSlot resets all changes to the "slot" edge.
func (m *ScheduleMutation) ResetSlot() {
	m.slot = nil
	m.clearedslot = false
}

// Where appends a list predicates to the ScheduleMutation builder.
func (m *ScheduleMutation) Where(ps ...predicate.Schedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Schedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Schedule).
func (m *ScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.interview != nil {
		fields = append(fields, schedule.FieldInterviewID)
	}
	if m.slot != nil {
		fields = append(fields, schedule.FieldSlotID)
	}
	if m.status != nil {
		fields = append(fields, schedule.FieldStatus)
	}
	if m.booking_note != nil {
		fields = append(fields, schedule.FieldBookingNote)
	}
	if m.booked_at != nil {
		fields = append(fields, schedule.FieldBookedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, schedule.FieldCancelledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldInterviewID:
		return m.InterviewID()
	case schedule.FieldSlotID:
		return m.SlotID()
	case schedule.FieldStatus:
		return m.Status()
	case schedule.FieldBookingNote:
		return m.BookingNote()
	case schedule.FieldBookedAt:
		return m.BookedAt()
	case schedule.FieldCancelledAt:
		return m.CancelledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedule.FieldInterviewID:
		return m.OldInterviewID(ctx)
	case schedule.FieldSlotID:
		return m.OldSlotID(ctx)
	case schedule.FieldStatus:
		return m.OldStatus(ctx)
	case schedule.FieldBookingNote:
		return m.OldBookingNote(ctx)
	case schedule.FieldBookedAt:
		return m.OldBookedAt(ctx)
	case schedule.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	}
	return nil, fmt.Errorf("unknown Schedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldInterviewID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterviewID(v)
		return nil
	case schedule.FieldSlotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotID(v)
		return nil
	case schedule.FieldStatus:
		v, ok := value.(schedule.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case schedule.FieldBookingNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingNote(v)
		return nil
	case schedule.FieldBookedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookedAt(v)
		return nil
	case schedule.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Schedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedule.FieldBookingNote) {
		fields = append(fields, schedule.FieldBookingNote)
	}
	if m.FieldCleared(schedule.FieldCancelledAt) {
		fields = append(fields, schedule.FieldCancelledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleMutation) ClearField(name string) error {
	switch name {
	case schedule.FieldBookingNote:
		m.ClearBookingNote()
		return nil
	case schedule.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleMutation) ResetField(name string) error {
	switch name {
	case schedule.FieldInterviewID:
		m.ResetInterviewID()
		return nil
	case schedule.FieldSlotID:
		m.ResetSlotID()
		return nil
	case schedule.FieldStatus:
		m.ResetStatus()
		return nil
	case schedule.FieldBookingNote:
		m.ResetBookingNote()
		return nil
	case schedule.FieldBookedAt:
		m.ResetBookedAt()
		return nil
	case schedule.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.interview != nil {
		edges = append(edges, schedule.EdgeInterview)
	}
	if m.slot != nil {
		edges = append(edges, schedule.EdgeSlot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schedule.EdgeInterview:
		if id := m.interview; id != nil {
			return []ent.Value{*id}
		}
	case schedule.EdgeSlot:
		if id := m.slot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinterview {
		edges = append(edges, schedule.EdgeInterview)
	}
	if m.clearedslot {
		edges = append(edges, schedule.EdgeSlot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleMutation) EdgeCleared(name string) bool {
	switch name {
	case schedule.EdgeInterview:
		return m.clearedinterview
	case schedule.EdgeSlot:
		return m.clearedslot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleMutation) ClearEdge(name string) error {
	switch name {
	case schedule.EdgeInterview:
		m.ClearInterview()
		return nil
	case schedule.EdgeSlot:
		m.ClearSlot()
		return nil
	}
	return fmt.Errorf("unknown Schedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleMutation) ResetEdge(name string) error {
	switch name {
	case schedule.EdgeInterview:
		m.ResetInterview()
		return nil
	case schedule.EdgeSlot:
		m.ResetSlot()
		return nil
	}
	return fmt.Errorf("unknown Schedule edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	session_key               *string
	candidate_name            *string
	candidate_email           *string
	job_description           *string
	resume_text               *string
	language                  *string
	accent                    *string
	status                    *session.Status
	current_question_index    *int
	addcurrent_question_index *int
	total_questions           *int
	addtotal_questions        *int
	session_started_at        *time.Time
	session_ended_at          *time.Time
	last_interaction_at       *time.Time
	id_verification_status    *session.IDVerificationStatus
	id_details                *string
	model_config              *map[string]interface{}
	is_evaluated              *bool
	evaluation_attempts       *int
	addevaluation_attempts    *int
	claimed_by                *string
	video_path                *string
	error_message             *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	interview                 *string
	clearedinterview          bool
	questions                 map[string]struct{}
	removedquestions          map[string]struct{}
	clearedquestions          bool
	responses                 map[string]struct{}
	removedresponses          map[string]struct{}
	clearedresponses          bool
	code_submissions          map[string]struct{}
	removedcode_submissions   map[string]struct{}
	clearedcode_submissions   bool
	warning_logs              map[string]struct{}
	removedwarning_logs       map[string]struct{}
	clearedwarning_logs       bool
	result                    *string
	clearedresult             bool
	done                      bool
	oldValue                  func(context.Context) (*Session, error)
	predicates                []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionKey sets the "session_key" field.
func (m *SessionMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *SessionMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *SessionMutation) ResetSessionKey() {
	m.session_key = nil
}

// SetInterviewID sets the "interview_id" field.
func (m *SessionMutation) SetInterviewID(s string) {
	m.interview = &s
}

// InterviewID returns the value of the "interview_id" field in the mutation.
func (m *SessionMutation) InterviewID() (r string, exists bool) {
	v := m.interview
	if v == nil {
		return
	}
	return *v, true
}

// OldInterviewID returns the old "interview_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldInterviewID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterviewID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterviewID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterviewID: %w", err)
	}
	return oldValue.InterviewID, nil
}

// ResetInterviewID resets all changes to the "interview_id" field.
func (m *SessionMutation) ResetInterviewID() {
	m.interview = nil
}

// SetCandidateName sets the "candidate_name" field.
func (m *SessionMutation) SetCandidateName(s string) {
	m.candidate_name = &s
}

// CandidateName returns the value of the "candidate_name" field in the mutation.
func (m *SessionMutation) CandidateName() (r string, exists bool) {
	v := m.candidate_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateName returns the old "candidate_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCandidateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateName: %w", err)
	}
	return oldValue.CandidateName, nil
}

// ResetCandidateName resets all changes to the "candidate_name" field.
func (m *SessionMutation) ResetCandidateName() {
	m.candidate_name = nil
}

// SetCandidateEmail sets the "candidate_email" field.
func (m *SessionMutation) SetCandidateEmail(s string) {
	m.candidate_email = &s
}

// CandidateEmail returns the value of the "candidate_email" field in the mutation.
func (m *SessionMutation) CandidateEmail() (r string, exists bool) {
	v := m.candidate_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateEmail returns the old "candidate_email" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCandidateEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateEmail: %w", err)
	}
	return oldValue.CandidateEmail, nil
}

// ResetCandidateEmail resets all changes to the "candidate_email" field.
func (m *SessionMutation) ResetCandidateEmail() {
	m.candidate_email = nil
}

// SetJobDescription sets the "job_description" field.
func (m *SessionMutation) SetJobDescription(s string) {
	m.job_description = &s
}

// JobDescription returns the value of the "job_description" field in the mutation.
func (m *SessionMutation) JobDescription() (r string, exists bool) {
	v := m.job_description
	if v == nil {
		return
	}
	return *v, true
}

// OldJobDescription returns the old "job_description" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldJobDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobDescription: %w", err)
	}
	return oldValue.JobDescription, nil
}

// ResetJobDescription resets all changes to the "job_description" field.
func (m *SessionMutation) ResetJobDescription() {
	m.job_description = nil
}

// SetResumeText sets the "resume_text" field.
func (m *SessionMutation) SetResumeText(s string) {
	m.resume_text = &s
}

// ResumeText returns the value of the "resume_text" field in the mutation.
func (m *SessionMutation) ResumeText() (r string, exists bool) {
	v := m.resume_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeText returns the old "resume_text" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldResumeText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeText: %w", err)
	}
	return oldValue.ResumeText, nil
}

// ClearResumeText clears the value of the "resume_text" field.
func (m *SessionMutation) ClearResumeText() {
	m.resume_text = nil
	m.clearedFields[session.FieldResumeText] = struct{}{}
}

// ResumeTextCleared returns if the "resume_text" field was cleared in this mutation.
func (m *SessionMutation) ResumeTextCleared() bool {
	_, ok := m.clearedFields[session.FieldResumeText]
	return ok
}

// ResetResumeText resets all changes to the "resume_text" field.
func (m *SessionMutation) ResetResumeText() {
	m.resume_text = nil
	delete(m.clearedFields, session.FieldResumeText)
}

// SetLanguage sets the "language" field.
func (m *SessionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SessionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SessionMutation) ResetLanguage() {
	m.language = nil
}

// SetAccent sets the "accent" field.
func (m *SessionMutation) SetAccent(s string) {
	m.accent = &s
}

// Accent returns the value of the "accent" field in the mutation.
func (m *SessionMutation) Accent() (r string, exists bool) {
	v := m.accent
	if v == nil {
		return
	}
	return *v, true
}

// OldAccent returns the old "accent" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAccent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccent: %w", err)
	}
	return oldValue.Accent, nil
}

// ClearAccent clears the value of the "accent" field.
func (m *SessionMutation) ClearAccent() {
	m.accent = nil
	m.clearedFields[session.FieldAccent] = struct{}{}
}

// AccentCleared returns if the "accent" field was cleared in this mutation.
func (m *SessionMutation) AccentCleared() bool {
	_, ok := m.clearedFields[session.FieldAccent]
	return ok
}

// ResetAccent resets all changes to the "accent" field.
func (m *SessionMutation) ResetAccent() {
	m.accent = nil
	delete(m.clearedFields, session.FieldAccent)
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (m *SessionMutation) SetCurrentQuestionIndex(i int) {
	m.current_question_index = &i
	m.addcurrent_question_index = nil
}

// CurrentQuestionIndex returns the value of the "current_question_index" field in the mutation.
func (m *SessionMutation) CurrentQuestionIndex() (r int, exists bool) {
	v := m.current_question_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentQuestionIndex returns the old "current_question_index" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCurrentQuestionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentQuestionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentQuestionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentQuestionIndex: %w", err)
	}
	return oldValue.CurrentQuestionIndex, nil
}

// AddCurrentQuestionIndex adds i to the "current_question_index" field.
func (m *SessionMutation) AddCurrentQuestionIndex(i int) {
	if m.addcurrent_question_index != nil {
		*m.addcurrent_question_index += i
	} else {
		m.addcurrent_question_index = &i
	}
}

// AddedCurrentQuestionIndex returns the value that was added to the "current_question_index" field in this mutation.
func (m *SessionMutation) AddedCurrentQuestionIndex() (r int, exists bool) {
	v := m.addcurrent_question_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentQuestionIndex resets all changes to the "current_question_index" field.
func (m *SessionMutation) ResetCurrentQuestionIndex() {
	m.current_question_index = nil
	m.addcurrent_question_index = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *SessionMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *SessionMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *SessionMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *SessionMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *SessionMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetSessionStartedAt sets the "session_started_at" field.
func (m *SessionMutation) SetSessionStartedAt(t time.Time) {
	m.session_started_at = &t
}

// SessionStartedAt returns the value of the "session_started_at" field in the mutation.
func (m *SessionMutation) SessionStartedAt() (r time.Time, exists bool) {
	v := m.session_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionStartedAt returns the old "session_started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionStartedAt: %w", err)
	}
	return oldValue.SessionStartedAt, nil
}

// ClearSessionStartedAt clears the value of the "session_started_at" field.
func (m *SessionMutation) ClearSessionStartedAt() {
	m.session_started_at = nil
	m.clearedFields[session.FieldSessionStartedAt] = struct{}{}
}

// SessionStartedAtCleared returns if the "session_started_at" field was cleared in this mutation.
func (m *SessionMutation) SessionStartedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldSessionStartedAt]
	return ok
}

// ResetSessionStartedAt resets all changes to the "session_started_at" field.
func (m *SessionMutation) ResetSessionStartedAt() {
	m.session_started_at = nil
	delete(m.clearedFields, session.FieldSessionStartedAt)
}

// SetSessionEndedAt sets the "session_ended_at" field.
func (m *SessionMutation) SetSessionEndedAt(t time.Time) {
	m.session_ended_at = &t
}

// SessionEndedAt returns the value of the "session_ended_at" field in the mutation.
func (m *SessionMutation) SessionEndedAt() (r time.Time, exists bool) {
	v := m.session_ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionEndedAt returns the old "session_ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionEndedAt: %w", err)
	}
	return oldValue.SessionEndedAt, nil
}

// ClearSessionEndedAt clears the value of the "session_ended_at" field.
func (m *SessionMutation) ClearSessionEndedAt() {
	m.session_ended_at = nil
	m.clearedFields[session.FieldSessionEndedAt] = struct{}{}
}

// SessionEndedAtCleared returns if the "session_ended_at" field was cleared in this mutation.
func (m *SessionMutation) SessionEndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldSessionEndedAt]
	return ok
}

// ResetSessionEndedAt resets all changes to the "session_ended_at" field.
func (m *SessionMutation) ResetSessionEndedAt() {
	m.session_ended_at = nil
	delete(m.clearedFields, session.FieldSessionEndedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *SessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *SessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *SessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[session.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *SessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[session.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *SessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, session.FieldLastInteractionAt)
}

// SetIDVerificationStatus sets the "id_verification_status" field.
func (m *SessionMutation) SetIDVerificationStatus(svs session.IDVerificationStatus) {
	m.id_verification_status = &svs
}

// IDVerificationStatus returns the value of the "id_verification_status" field in the mutation.
func (m *SessionMutation) IDVerificationStatus() (r session.IDVerificationStatus, exists bool) {
	v := m.id_verification_status
	if v == nil {
		return
	}
	return *v, true
}

// OldIDVerificationStatus returns the old "id_verification_status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIDVerificationStatus(ctx context.Context) (v session.IDVerificationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDVerificationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDVerificationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDVerificationStatus: %w", err)
	}
	return oldValue.IDVerificationStatus, nil
}

// ResetIDVerificationStatus resets all changes to the "id_verification_status" field.
func (m *SessionMutation) ResetIDVerificationStatus() {
	m.id_verification_status = nil
}

// SetIDDetails sets the "id_details" field.
func (m *SessionMutation) SetIDDetails(s string) {
	m.id_details = &s
}

// IDDetails returns the value of the "id_details" field in the mutation.
func (m *SessionMutation) IDDetails() (r string, exists bool) {
	v := m.id_details
	if v == nil {
		return
	}
	return *v, true
}

// OldIDDetails returns the old "id_details" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIDDetails(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDDetails: %w", err)
	}
	return oldValue.IDDetails, nil
}

// ClearIDDetails clears the value of the "id_details" field.
func (m *SessionMutation) ClearIDDetails() {
	m.id_details = nil
	m.clearedFields[session.FieldIDDetails] = struct{}{}
}

// IDDetailsCleared returns if the "id_details" field was cleared in this mutation.
func (m *SessionMutation) IDDetailsCleared() bool {
	_, ok := m.clearedFields[session.FieldIDDetails]
	return ok
}

// ResetIDDetails resets all changes to the "id_details" field.
func (m *SessionMutation) ResetIDDetails() {
	m.id_details = nil
	delete(m.clearedFields, session.FieldIDDetails)
}

// SetModelConfig sets the "model_config" field.
func (m *SessionMutation) SetModelConfig(value map[string]interface{}) {
	m.model_config = &value
}

// ModelConfig returns the value of the "model_config" field in the mutation.
func (m *SessionMutation) ModelConfig() (r map[string]interface{}, exists bool) {
	v := m.model_config
	if v == nil {
		return
	}
	return *v, true
}

// OldModelConfig returns the old "model_config" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldModelConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelConfig: %w", err)
	}
	return oldValue.ModelConfig, nil
}

// ClearModelConfig clears the value of the "model_config" field.
func (m *SessionMutation) ClearModelConfig() {
	m.model_config = nil
	m.clearedFields[session.FieldModelConfig] = struct{}{}
}

// ModelConfigCleared returns if the "model_config" field was cleared in this mutation.
func (m *SessionMutation) ModelConfigCleared() bool {
	_, ok := m.clearedFields[session.FieldModelConfig]
	return ok
}

// ResetModelConfig resets all changes to the "model_config" field.
func (m *SessionMutation) ResetModelConfig() {
	m.model_config = nil
	delete(m.clearedFields, session.FieldModelConfig)
}

// SetIsEvaluated sets the "is_evaluated" field.
func (m *SessionMutation) SetIsEvaluated(b bool) {
	m.is_evaluated = &b
}

// IsEvaluated returns the value of the "is_evaluated" field in the mutation.
func (m *SessionMutation) IsEvaluated() (r bool, exists bool) {
	v := m.is_evaluated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEvaluated returns the old "is_evaluated" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIsEvaluated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEvaluated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEvaluated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEvaluated: %w", err)
	}
	return oldValue.IsEvaluated, nil
}

// ResetIsEvaluated resets all changes to the "is_evaluated" field.
func (m *SessionMutation) ResetIsEvaluated() {
	m.is_evaluated = nil
}

// SetEvaluationAttempts sets the "evaluation_attempts" field.
func (m *SessionMutation) SetEvaluationAttempts(i int) {
	m.evaluation_attempts = &i
	m.addevaluation_attempts = nil
}

// EvaluationAttempts returns the value of the "evaluation_attempts" field in the mutation.
func (m *SessionMutation) EvaluationAttempts() (r int, exists bool) {
	v := m.evaluation_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationAttempts returns the old "evaluation_attempts" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEvaluationAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationAttempts: %w", err)
	}
	return oldValue.EvaluationAttempts, nil
}

// AddEvaluationAttempts adds i to the "evaluation_attempts" field.
func (m *SessionMutation) AddEvaluationAttempts(i int) {
	if m.addevaluation_attempts != nil {
		*m.addevaluation_attempts += i
	} else {
		m.addevaluation_attempts = &i
	}
}

// AddedEvaluationAttempts returns the value that was added to the "evaluation_attempts" field in this mutation.
func (m *SessionMutation) AddedEvaluationAttempts() (r int, exists bool) {
	v := m.addevaluation_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvaluationAttempts resets all changes to the "evaluation_attempts" field.
func (m *SessionMutation) ResetEvaluationAttempts() {
	m.evaluation_attempts = nil
	m.addevaluation_attempts = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *SessionMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *SessionMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *SessionMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[session.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *SessionMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[session.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *SessionMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, session.FieldClaimedBy)
}

// SetVideoPath sets the "video_path" field.
func (m *SessionMutation) SetVideoPath(s string) {
	m.video_path = &s
}

// VideoPath returns the value of the "video_path" field in the mutation.
func (m *SessionMutation) VideoPath() (r string, exists bool) {
	v := m.video_path
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoPath returns the old "video_path" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldVideoPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoPath: %w", err)
	}
	return oldValue.VideoPath, nil
}

// ClearVideoPath clears the value of the "video_path" field.
func (m *SessionMutation) ClearVideoPath() {
	m.video_path = nil
	m.clearedFields[session.FieldVideoPath] = struct{}{}
}

// VideoPathCleared returns if the "video_path" field was cleared in this mutation.
func (m *SessionMutation) VideoPathCleared() bool {
	_, ok := m.clearedFields[session.FieldVideoPath]
	return ok
}

// ResetVideoPath resets all changes to the "video_path" field.
func (m *SessionMutation) ResetVideoPath() {
	m.video_path = nil
	delete(m.clearedFields, session.FieldVideoPath)
}

// SetErrorMessage sets the "error_message" field.
func (m *SessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[session.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[session.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, session.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInterview clears the "interview" edge to the Interview entity.
func (m *SessionMutation) ClearInterview() {
	m.clearedinterview = true
	m.clearedFields[session.FieldInterviewID] = struct{}{}
}

// InterviewCleared reports if the "interview" edge to the Interview entity was cleared.
func (m *SessionMutation) InterviewCleared() bool {
	return m.clearedinterview
}

// InterviewIDs returns the "interview" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InterviewID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) InterviewIDs() (ids []string) {
	if id := m.interview; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInterview resets all changes to the "interview" edge.
func (m *SessionMutation) ResetInterview() {
	m.interview = nil
	m.clearedinterview = false
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *SessionMutation) AddQuestionIDs(ids ...string) {
	if m.questions == nil {
		m.questions = make(map[string]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *SessionMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *SessionMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *SessionMutation) RemoveQuestionIDs(ids ...string) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *SessionMutation) RemovedQuestionsIDs() (ids []string) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *SessionMutation) QuestionsIDs() (ids []string) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *SessionMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddResponseIDs adds the "responses" edge to the Response entity by ids.
func (m *SessionMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the Response entity.
func (m *SessionMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the Response entity was cleared.
func (m *SessionMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the Response entity by IDs.
func (m *SessionMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the Response entity.
func (m *SessionMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *SessionMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *SessionMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// AddCodeSubmissionIDs adds the "code_submissions" edge to the CodeSubmission entity by ids.
func (m *SessionMutation) AddCodeSubmissionIDs(ids ...string) {
	if m.code_submissions == nil {
		m.code_submissions = make(map[string]struct{})
	}
	for i := range ids {
		m.code_submissions[ids[i]] = struct{}{}
	}
}

// ClearCodeSubmissions clears the "code_submissions" edge to the CodeSubmission entity.
func (m *SessionMutation) ClearCodeSubmissions() {
	m.clearedcode_submissions = true
}

// CodeSubmissionsCleared reports if the "code_submissions" edge to the CodeSubmission entity was cleared.
func (m *SessionMutation) CodeSubmissionsCleared() bool {
	return m.clearedcode_submissions
}

// RemoveCodeSubmissionIDs removes the "code_submissions" edge to the CodeSubmission entity by IDs.
func (m *SessionMutation) RemoveCodeSubmissionIDs(ids ...string) {
	if m.removedcode_submissions == nil {
		m.removedcode_submissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.code_submissions, ids[i])
		m.removedcode_submissions[ids[i]] = struct{}{}
	}
}

// RemovedCodeSubmissions returns the removed IDs of the "code_submissions" edge to the CodeSubmission entity.
func (m *SessionMutation) RemovedCodeSubmissionsIDs() (ids []string) {
	for id := range m.removedcode_submissions {
		ids = append(ids, id)
	}
	return
}

// CodeSubmissionsIDs returns the "code_submissions" edge IDs in the mutation.
func (m *SessionMutation) CodeSubmissionsIDs() (ids []string) {
	for id := range m.code_submissions {
		ids = append(ids, id)
	}
	return
}

// ResetCodeSubmissions resets all changes to the "code_submissions" edge.
func (m *SessionMutation) ResetCodeSubmissions() {
	m.code_submissions = nil
	m.clearedcode_submissions = false
	m.removedcode_submissions = nil
}

// AddWarningLogIDs adds the "warning_logs" edge to the WarningLog entity by ids.
func (m *SessionMutation) AddWarningLogIDs(ids ...string) {
	if m.warning_logs == nil {
		m.warning_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.warning_logs[ids[i]] = struct{}{}
	}
}

// ClearWarningLogs clears the "warning_logs" edge to the WarningLog entity.
func (m *SessionMutation) ClearWarningLogs() {
	m.clearedwarning_logs = true
}

// WarningLogsCleared reports if the "warning_logs" edge to the WarningLog entity was cleared.
func (m *SessionMutation) WarningLogsCleared() bool {
	return m.clearedwarning_logs
}

// RemoveWarningLogIDs removes the "warning_logs" edge to the WarningLog entity by IDs.
func (m *SessionMutation) RemoveWarningLogIDs(ids ...string) {
	if m.removedwarning_logs == nil {
		m.removedwarning_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.warning_logs, ids[i])
		m.removedwarning_logs[ids[i]] = struct{}{}
	}
}

// RemovedWarningLogs returns the removed IDs of the "warning_logs" edge to the WarningLog entity.
func (m *SessionMutation) RemovedWarningLogsIDs() (ids []string) {
	for id := range m.removedwarning_logs {
		ids = append(ids, id)
	}
	return
}

// WarningLogsIDs returns the "warning_logs" edge IDs in the mutation.
func (m *SessionMutation) WarningLogsIDs() (ids []string) {
	for id := range m.warning_logs {
		ids = append(ids, id)
	}
	return
}

// ResetWarningLogs resets all changes to the "warning_logs" edge.
func (m *SessionMutation) ResetWarningLogs() {
	m.warning_logs = nil
	m.clearedwarning_logs = false
	m.removedwarning_logs = nil
}

// SetResultID sets the "result" edge to the EvaluationResult entity by id.
func (m *SessionMutation) SetResultID(id string) {
	m.result = &id
}

// ClearResult clears the "result" edge to the EvaluationResult entity.
func (m *SessionMutation) ClearResult() {
	m.clearedresult = true
}

// ResultCleared reports if the "result" edge to the EvaluationResult entity was cleared.
func (m *SessionMutation) ResultCleared() bool {
	return m.clearedresult
}

// ResultID returns the "result" edge ID in the mutation.
func (m *SessionMutation) ResultID() (id string, exists bool) {
	if m.result != nil {
		return *m.result, true
	}
	return
}

// ResultIDs returns the "result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResultID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) ResultIDs() (ids []string) {
	if id := m.result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResult resets all changes to the "result" edge.
func (m *SessionMutation) ResetResult() {
	m.result = nil
	m.clearedresult = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.session_key != nil {
		fields = append(fields, session.FieldSessionKey)
	}
	if m.interview != nil {
		fields = append(fields, session.FieldInterviewID)
	}
	if m.candidate_name != nil {
		fields = append(fields, session.FieldCandidateName)
	}
	if m.candidate_email != nil {
		fields = append(fields, session.FieldCandidateEmail)
	}
	if m.job_description != nil {
		fields = append(fields, session.FieldJobDescription)
	}
	if m.resume_text != nil {
		fields = append(fields, session.FieldResumeText)
	}
	if m.language != nil {
		fields = append(fields, session.FieldLanguage)
	}
	if m.accent != nil {
		fields = append(fields, session.FieldAccent)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.current_question_index != nil {
		fields = append(fields, session.FieldCurrentQuestionIndex)
	}
	if m.total_questions != nil {
		fields = append(fields, session.FieldTotalQuestions)
	}
	if m.session_started_at != nil {
		fields = append(fields, session.FieldSessionStartedAt)
	}
	if m.session_ended_at != nil {
		fields = append(fields, session.FieldSessionEndedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, session.FieldLastInteractionAt)
	}
	if m.id_verification_status != nil {
		fields = append(fields, session.FieldIDVerificationStatus)
	}
	if m.id_details != nil {
		fields = append(fields, session.FieldIDDetails)
	}
	if m.model_config != nil {
		fields = append(fields, session.FieldModelConfig)
	}
	if m.is_evaluated != nil {
		fields = append(fields, session.FieldIsEvaluated)
	}
	if m.evaluation_attempts != nil {
		fields = append(fields, session.FieldEvaluationAttempts)
	}
	if m.claimed_by != nil {
		fields = append(fields, session.FieldClaimedBy)
	}
	if m.video_path != nil {
		fields = append(fields, session.FieldVideoPath)
	}
	if m.error_message != nil {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionKey:
		return m.SessionKey()
	case session.FieldInterviewID:
		return m.InterviewID()
	case session.FieldCandidateName:
		return m.CandidateName()
	case session.FieldCandidateEmail:
		return m.CandidateEmail()
	case session.FieldJobDescription:
		return m.JobDescription()
	case session.FieldResumeText:
		return m.ResumeText()
	case session.FieldLanguage:
		return m.Language()
	case session.FieldAccent:
		return m.Accent()
	case session.FieldStatus:
		return m.Status()
	case session.FieldCurrentQuestionIndex:
		return m.CurrentQuestionIndex()
	case session.FieldTotalQuestions:
		return m.TotalQuestions()
	case session.FieldSessionStartedAt:
		return m.SessionStartedAt()
	case session.FieldSessionEndedAt:
		return m.SessionEndedAt()
	case session.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case session.FieldIDVerificationStatus:
		return m.IDVerificationStatus()
	case session.FieldIDDetails:
		return m.IDDetails()
	case session.FieldModelConfig:
		return m.ModelConfig()
	case session.FieldIsEvaluated:
		return m.IsEvaluated()
	case session.FieldEvaluationAttempts:
		return m.EvaluationAttempts()
	case session.FieldClaimedBy:
		return m.ClaimedBy()
	case session.FieldVideoPath:
		return m.VideoPath()
	case session.FieldErrorMessage:
		return m.ErrorMessage()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case session.FieldInterviewID:
		return m.OldInterviewID(ctx)
	case session.FieldCandidateName:
		return m.OldCandidateName(ctx)
	case session.FieldCandidateEmail:
		return m.OldCandidateEmail(ctx)
	case session.FieldJobDescription:
		return m.OldJobDescription(ctx)
	case session.FieldResumeText:
		return m.OldResumeText(ctx)
	case session.FieldLanguage:
		return m.OldLanguage(ctx)
	case session.FieldAccent:
		return m.OldAccent(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldCurrentQuestionIndex:
		return m.OldCurrentQuestionIndex(ctx)
	case session.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case session.FieldSessionStartedAt:
		return m.OldSessionStartedAt(ctx)
	case session.FieldSessionEndedAt:
		return m.OldSessionEndedAt(ctx)
	case session.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case session.FieldIDVerificationStatus:
		return m.OldIDVerificationStatus(ctx)
	case session.FieldIDDetails:
		return m.OldIDDetails(ctx)
	case session.FieldModelConfig:
		return m.OldModelConfig(ctx)
	case session.FieldIsEvaluated:
		return m.OldIsEvaluated(ctx)
	case session.FieldEvaluationAttempts:
		return m.OldEvaluationAttempts(ctx)
	case session.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case session.FieldVideoPath:
		return m.OldVideoPath(ctx)
	case session.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case session.FieldInterviewID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterviewID(v)
		return nil
	case session.FieldCandidateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateName(v)
		return nil
	case session.FieldCandidateEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateEmail(v)
		return nil
	case session.FieldJobDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobDescription(v)
		return nil
	case session.FieldResumeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeText(v)
		return nil
	case session.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case session.FieldAccent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccent(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldCurrentQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentQuestionIndex(v)
		return nil
	case session.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case session.FieldSessionStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionStartedAt(v)
		return nil
	case session.FieldSessionEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionEndedAt(v)
		return nil
	case session.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case session.FieldIDVerificationStatus:
		v, ok := value.(session.IDVerificationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDVerificationStatus(v)
		return nil
	case session.FieldIDDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDDetails(v)
		return nil
	case session.FieldModelConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelConfig(v)
		return nil
	case session.FieldIsEvaluated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEvaluated(v)
		return nil
	case session.FieldEvaluationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationAttempts(v)
		return nil
	case session.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case session.FieldVideoPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoPath(v)
		return nil
	case session.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_question_index != nil {
		fields = append(fields, session.FieldCurrentQuestionIndex)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, session.FieldTotalQuestions)
	}
	if m.addevaluation_attempts != nil {
		fields = append(fields, session.FieldEvaluationAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCurrentQuestionIndex:
		return m.AddedCurrentQuestionIndex()
	case session.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case session.FieldEvaluationAttempts:
		return m.AddedEvaluationAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldCurrentQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentQuestionIndex(v)
		return nil
	case session.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case session.FieldEvaluationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvaluationAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldResumeText) {
		fields = append(fields, session.FieldResumeText)
	}
	if m.FieldCleared(session.FieldAccent) {
		fields = append(fields, session.FieldAccent)
	}
	if m.FieldCleared(session.FieldSessionStartedAt) {
		fields = append(fields, session.FieldSessionStartedAt)
	}
	if m.FieldCleared(session.FieldSessionEndedAt) {
		fields = append(fields, session.FieldSessionEndedAt)
	}
	if m.FieldCleared(session.FieldLastInteractionAt) {
		fields = append(fields, session.FieldLastInteractionAt)
	}
	if m.FieldCleared(session.FieldIDDetails) {
		fields = append(fields, session.FieldIDDetails)
	}
	if m.FieldCleared(session.FieldModelConfig) {
		fields = append(fields, session.FieldModelConfig)
	}
	if m.FieldCleared(session.FieldClaimedBy) {
		fields = append(fields, session.FieldClaimedBy)
	}
	if m.FieldCleared(session.FieldVideoPath) {
		fields = append(fields, session.FieldVideoPath)
	}
	if m.FieldCleared(session.FieldErrorMessage) {
		fields = append(fields, session.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldResumeText:
		m.ClearResumeText()
		return nil
	case session.FieldAccent:
		m.ClearAccent()
		return nil
	case session.FieldSessionStartedAt:
		m.ClearSessionStartedAt()
		return nil
	case session.FieldSessionEndedAt:
		m.ClearSessionEndedAt()
		return nil
	case session.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case session.FieldIDDetails:
		m.ClearIDDetails()
		return nil
	case session.FieldModelConfig:
		m.ClearModelConfig()
		return nil
	case session.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case session.FieldVideoPath:
		m.ClearVideoPath()
		return nil
	case session.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case session.FieldInterviewID:
		m.ResetInterviewID()
		return nil
	case session.FieldCandidateName:
		m.ResetCandidateName()
		return nil
	case session.FieldCandidateEmail:
		m.ResetCandidateEmail()
		return nil
	case session.FieldJobDescription:
		m.ResetJobDescription()
		return nil
	case session.FieldResumeText:
		m.ResetResumeText()
		return nil
	case session.FieldLanguage:
		m.ResetLanguage()
		return nil
	case session.FieldAccent:
		m.ResetAccent()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldCurrentQuestionIndex:
		m.ResetCurrentQuestionIndex()
		return nil
	case session.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case session.FieldSessionStartedAt:
		m.ResetSessionStartedAt()
		return nil
	case session.FieldSessionEndedAt:
		m.ResetSessionEndedAt()
		return nil
	case session.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case session.FieldIDVerificationStatus:
		m.ResetIDVerificationStatus()
		return nil
	case session.FieldIDDetails:
		m.ResetIDDetails()
		return nil
	case session.FieldModelConfig:
		m.ResetModelConfig()
		return nil
	case session.FieldIsEvaluated:
		m.ResetIsEvaluated()
		return nil
	case session.FieldEvaluationAttempts:
		m.ResetEvaluationAttempts()
		return nil
	case session.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case session.FieldVideoPath:
		m.ResetVideoPath()
		return nil
	case session.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.interview != nil {
		edges = append(edges, session.EdgeInterview)
	}
	if m.questions != nil {
		edges = append(edges, session.EdgeQuestions)
	}
	if m.responses != nil {
		edges = append(edges, session.EdgeResponses)
	}
	if m.code_submissions != nil {
		edges = append(edges, session.EdgeCodeSubmissions)
	}
	if m.warning_logs != nil {
		edges = append(edges, session.EdgeWarningLogs)
	}
	if m.result != nil {
		edges = append(edges, session.EdgeResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeInterview:
		if id := m.interview; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeCodeSubmissions:
		ids := make([]ent.Value, 0, len(m.code_submissions))
		for id := range m.code_submissions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeWarningLogs:
		ids := make([]ent.Value, 0, len(m.warning_logs))
		for id := range m.warning_logs {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeResult:
		if id := m.result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedquestions != nil {
		edges = append(edges, session.EdgeQuestions)
	}
	if m.removedresponses != nil {
		edges = append(edges, session.EdgeResponses)
	}
	if m.removedcode_submissions != nil {
		edges = append(edges, session.EdgeCodeSubmissions)
	}
	if m.removedwarning_logs != nil {
		edges = append(edges, session.EdgeWarningLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeCodeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedcode_submissions))
		for id := range m.removedcode_submissions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeWarningLogs:
		ids := make([]ent.Value, 0, len(m.removedwarning_logs))
		for id := range m.removedwarning_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedinterview {
		edges = append(edges, session.EdgeInterview)
	}
	if m.clearedquestions {
		edges = append(edges, session.EdgeQuestions)
	}
	if m.clearedresponses {
		edges = append(edges, session.EdgeResponses)
	}
	if m.clearedcode_submissions {
		edges = append(edges, session.EdgeCodeSubmissions)
	}
	if m.clearedwarning_logs {
		edges = append(edges, session.EdgeWarningLogs)
	}
	if m.clearedresult {
		edges = append(edges, session.EdgeResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeInterview:
		return m.clearedinterview
	case session.EdgeQuestions:
		return m.clearedquestions
	case session.EdgeResponses:
		return m.clearedresponses
	case session.EdgeCodeSubmissions:
		return m.clearedcode_submissions
	case session.EdgeWarningLogs:
		return m.clearedwarning_logs
	case session.EdgeResult:
		return m.clearedresult
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeInterview:
		m.ClearInterview()
		return nil
	case session.EdgeResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeInterview:
		m.ResetInterview()
		return nil
	case session.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case session.EdgeResponses:
		m.ResetResponses()
		return nil
	case session.EdgeCodeSubmissions:
		m.ResetCodeSubmissions()
		return nil
	case session.EdgeWarningLogs:
		m.ResetWarningLogs()
		return nil
	case session.EdgeResult:
		m.ResetResult()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SlotMutation represents an operation that mutates the Slot nodes in the graph.
type SlotMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	interview_date      *string
	start_time          *string
	end_time            *string
	duration_minutes    *int
	addduration_minutes *int
	max_candidates      *int
	addmax_candidates   *int
	current_bookings    *int
	addcurrent_bookings *int
	cancelled           *bool
	recurrence          *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	job                 *string
	clearedjob          bool
	schedules           map[string]struct{}
	removedschedules    map[string]struct{}
	clearedschedules    bool
	done                bool
	oldValue            func(context.Context) (*Slot, error)
	predicates          []predicate.Slot
}

var _ ent.Mutation = (*SlotMutation)(nil)

// slotOption allows management of the mutation configuration using functional options.
type slotOption func(*SlotMutation)

// newSlotMutation creates new mutation for the Slot entity.
func newSlotMutation(c config, op Op, opts ...slotOption) *SlotMutation {
	m := &SlotMutation{
		config:        c,
		op:            op,
		typ:           TypeSlot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlotID sets the ID field of the mutation.
func withSlotID(id string) slotOption {
	return func(m *SlotMutation) {
		var (
			err   error
			once  sync.Once
			value *Slot
		)
		m.oldValue = func(ctx context.Context) (*Slot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Slot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlot sets the old Slot of the mutation.
func withSlot(node *Slot) slotOption {
	return func(m *SlotMutation) {
		m.oldValue = func(context.Context) (*Slot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Slot entities.
func (m *SlotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Slot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *SlotMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *SlotMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *SlotMutation) ResetJobID() {
	m.job = nil
}

// SetInterviewDate sets the "interview_date" field.
func (m *SlotMutation) SetInterviewDate(s string) {
	m.interview_date = &s
}

// InterviewDate returns the value of the "interview_date" field in the mutation.
func (m *SlotMutation) InterviewDate() (r string, exists bool) {
	v := m.interview_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInterviewDate returns the old "interview_date" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldInterviewDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterviewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterviewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterviewDate: %w", err)
	}
	return oldValue.InterviewDate, nil
}

// ResetInterviewDate resets all changes to the "interview_date" field.
func (m *SlotMutation) ResetInterviewDate() {
	m.interview_date = nil
}

// SetStartTime sets the "start_time" field.
func (m *SlotMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *SlotMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *SlotMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *SlotMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *SlotMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *SlotMutation) ResetEndTime() {
	m.end_time = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *SlotMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *SlotMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *SlotMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *SlotMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *SlotMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetMaxCandidates sets the "max_candidates" field.
func (m *SlotMutation) SetMaxCandidates(i int) {
	m.max_candidates = &i
	m.addmax_candidates = nil
}

// MaxCandidates returns the value of the "max_candidates" field in the mutation.
func (m *SlotMutation) MaxCandidates() (r int, exists bool) {
	v := m.max_candidates
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxCandidates returns the old "max_candidates" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldMaxCandidates(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxCandidates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxCandidates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxCandidates: %w", err)
	}
	return oldValue.MaxCandidates, nil
}

// AddMaxCandidates adds i to the "max_candidates" field.
func (m *SlotMutation) AddMaxCandidates(i int) {
	if m.addmax_candidates != nil {
		*m.addmax_candidates += i
	} else {
		m.addmax_candidates = &i
	}
}

// AddedMaxCandidates returns the value that was added to the "max_candidates" field in this mutation.
func (m *SlotMutation) AddedMaxCandidates() (r int, exists bool) {
	v := m.addmax_candidates
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxCandidates resets all changes to the "max_candidates" field.
func (m *SlotMutation) ResetMaxCandidates() {
	m.max_candidates = nil
	m.addmax_candidates = nil
}

// SetCurrentBookings sets the "current_bookings" field.
func (m *SlotMutation) SetCurrentBookings(i int) {
	m.current_bookings = &i
	m.addcurrent_bookings = nil
}

// CurrentBookings returns the value of the "current_bookings" field in the mutation.
func (m *SlotMutation) CurrentBookings() (r int, exists bool) {
	v := m.current_bookings
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentBookings returns the old "current_bookings" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldCurrentBookings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentBookings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentBookings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentBookings: %w", err)
	}
	return oldValue.CurrentBookings, nil
}

// AddCurrentBookings adds i to the "current_bookings" field.
func (m *SlotMutation) AddCurrentBookings(i int) {
	if m.addcurrent_bookings != nil {
		*m.addcurrent_bookings += i
	} else {
		m.addcurrent_bookings = &i
	}
}

// AddedCurrentBookings returns the value that was added to the "current_bookings" field in this mutation.
func (m *SlotMutation) AddedCurrentBookings() (r int, exists bool) {
	v := m.addcurrent_bookings
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentBookings resets all changes to the "current_bookings" field.
func (m *SlotMutation) ResetCurrentBookings() {
	m.current_bookings = nil
	m.addcurrent_bookings = nil
}

// SetCancelled sets the "cancelled" field.
func (m *SlotMutation) SetCancelled(b bool) {
	m.cancelled = &b
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *SlotMutation) Cancelled() (r bool, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldCancelled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *SlotMutation) ResetCancelled() {
	m.cancelled = nil
}

// SetRecurrence sets the "recurrence" field.
func (m *SlotMutation) SetRecurrence(s string) {
	m.recurrence = &s
}

// Recurrence returns the value of the "recurrence" field in the mutation.
func (m *SlotMutation) Recurrence() (r string, exists bool) {
	v := m.recurrence
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrence returns the old "recurrence" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldRecurrence(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrence: %w", err)
	}
	return oldValue.Recurrence, nil
}

// ClearRecurrence clears the value of the "recurrence" field.
func (m *SlotMutation) ClearRecurrence() {
	m.recurrence = nil
	m.clearedFields[slot.FieldRecurrence] = struct{}{}
}

// RecurrenceCleared returns if the "recurrence" field was cleared in this mutation.
func (m *SlotMutation) RecurrenceCleared() bool {
	_, ok := m.clearedFields[slot.FieldRecurrence]
	return ok
}

// ResetRecurrence resets all changes to the "recurrence" field.
func (m *SlotMutation) ResetRecurrence() {
	m.recurrence = nil
	delete(m.clearedFields, slot.FieldRecurrence)
}

// SetCreatedAt sets the "created_at" field.
func (m *SlotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SlotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SlotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SlotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SlotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Slot entity.
// If the Slot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SlotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *SlotMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[slot.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *SlotMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *SlotMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *SlotMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by ids.
func (m *SlotMutation) AddScheduleIDs(ids ...string) {
	if m.schedules == nil {
		m.schedules = make(map[string]struct{})
	}
	for i := range ids {
		m.schedules[ids[i]] = struct{}{}
	}
}

// ClearSchedules clears the "schedules" edge to the Schedule entity.
func (m *SlotMutation) ClearSchedules() {
	m.clearedschedules = true
}

// SchedulesCleared reports if the "schedules" edge to the Schedule entity was cleared.
func (m *SlotMutation) SchedulesCleared() bool {
	return m.clearedschedules
}

// RemoveScheduleIDs removes the "schedules" edge to the Schedule entity by IDs.
func (m *SlotMutation) RemoveScheduleIDs(ids ...string) {
	if m.removedschedules == nil {
		m.removedschedules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.schedules, ids[i])
		m.removedschedules[ids[i]] = struct{}{}
	}
}

// RemovedSchedules returns the removed IDs of the "schedules" edge to the Schedule entity.
func (m *SlotMutation) RemovedSchedulesIDs() (ids []string) {
	for id := range m.removedschedules {
		ids = append(ids, id)
	}
	return
}

// SchedulesIDs returns the "schedules" edge IDs in the mutation.
func (m *SlotMutation) SchedulesIDs() (ids []string) {
	for id := range m.schedules {
		ids = append(ids, id)
	}
	return
}

// ResetSchedules resets all changes to the "schedules" edge.
func (m *SlotMutation) ResetSchedules() {
	m.schedules = nil
	m.clearedschedules = false
	m.removedschedules = nil
}

// Where appends a list predicates to the SlotMutation builder.
func (m *SlotMutation) Where(ps ...predicate.Slot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Slot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Slot).
func (m *SlotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlotMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.job != nil {
		fields = append(fields, slot.FieldJobID)
	}
	if m.interview_date != nil {
		fields = append(fields, slot.FieldInterviewDate)
	}
	if m.start_time != nil {
		fields = append(fields, slot.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, slot.FieldEndTime)
	}
	if m.duration_minutes != nil {
		fields = append(fields, slot.FieldDurationMinutes)
	}
	if m.max_candidates != nil {
		fields = append(fields, slot.FieldMaxCandidates)
	}
	if m.current_bookings != nil {
		fields = append(fields, slot.FieldCurrentBookings)
	}
	if m.cancelled != nil {
		fields = append(fields, slot.FieldCancelled)
	}
	if m.recurrence != nil {
		fields = append(fields, slot.FieldRecurrence)
	}
	if m.created_at != nil {
		fields = append(fields, slot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, slot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slot.FieldJobID:
		return m.JobID()
	case slot.FieldInterviewDate:
		return m.InterviewDate()
	case slot.FieldStartTime:
		return m.StartTime()
	case slot.FieldEndTime:
		return m.EndTime()
	case slot.FieldDurationMinutes:
		return m.DurationMinutes()
	case slot.FieldMaxCandidates:
		return m.MaxCandidates()
	case slot.FieldCurrentBookings:
		return m.CurrentBookings()
	case slot.FieldCancelled:
		return m.Cancelled()
	case slot.FieldRecurrence:
		return m.Recurrence()
	case slot.FieldCreatedAt:
		return m.CreatedAt()
	case slot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slot.FieldJobID:
		return m.OldJobID(ctx)
	case slot.FieldInterviewDate:
		return m.OldInterviewDate(ctx)
	case slot.FieldStartTime:
		return m.OldStartTime(ctx)
	case slot.FieldEndTime:
		return m.OldEndTime(ctx)
	case slot.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case slot.FieldMaxCandidates:
		return m.OldMaxCandidates(ctx)
	case slot.FieldCurrentBookings:
		return m.OldCurrentBookings(ctx)
	case slot.FieldCancelled:
		return m.OldCancelled(ctx)
	case slot.FieldRecurrence:
		return m.OldRecurrence(ctx)
	case slot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case slot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Slot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slot.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case slot.FieldInterviewDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterviewDate(v)
		return nil
	case slot.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case slot.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case slot.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case slot.FieldMaxCandidates:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxCandidates(v)
		return nil
	case slot.FieldCurrentBookings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentBookings(v)
		return nil
	case slot.FieldCancelled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case slot.FieldRecurrence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrence(v)
		return nil
	case slot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case slot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Slot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlotMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, slot.FieldDurationMinutes)
	}
	if m.addmax_candidates != nil {
		fields = append(fields, slot.FieldMaxCandidates)
	}
	if m.addcurrent_bookings != nil {
		fields = append(fields, slot.FieldCurrentBookings)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slot.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case slot.FieldMaxCandidates:
		return m.AddedMaxCandidates()
	case slot.FieldCurrentBookings:
		return m.AddedCurrentBookings()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slot.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case slot.FieldMaxCandidates:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxCandidates(v)
		return nil
	case slot.FieldCurrentBookings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentBookings(v)
		return nil
	}
	return fmt.Errorf("unknown Slot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slot.FieldRecurrence) {
		fields = append(fields, slot.FieldRecurrence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlotMutation) ClearField(name string) error {
	switch name {
	case slot.FieldRecurrence:
		m.ClearRecurrence()
		return nil
	}
	return fmt.Errorf("unknown Slot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlotMutation) ResetField(name string) error {
	switch name {
	case slot.FieldJobID:
		m.ResetJobID()
		return nil
	case slot.FieldInterviewDate:
		m.ResetInterviewDate()
		return nil
	case slot.FieldStartTime:
		m.ResetStartTime()
		return nil
	case slot.FieldEndTime:
		m.ResetEndTime()
		return nil
	case slot.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case slot.FieldMaxCandidates:
		m.ResetMaxCandidates()
		return nil
	case slot.FieldCurrentBookings:
		m.ResetCurrentBookings()
		return nil
	case slot.FieldCancelled:
		m.ResetCancelled()
		return nil
	case slot.FieldRecurrence:
		m.ResetRecurrence()
		return nil
	case slot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case slot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Slot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlotMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, slot.EdgeJob)
	}
	if m.schedules != nil {
		edges = append(edges, slot.EdgeSchedules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case slot.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case slot.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.schedules))
		for id := range m.schedules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedschedules != nil {
		edges = append(edges, slot.EdgeSchedules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlotMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case slot.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.removedschedules))
		for id := range m.removedschedules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, slot.EdgeJob)
	}
	if m.clearedschedules {
		edges = append(edges, slot.EdgeSchedules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlotMutation) EdgeCleared(name string) bool {
	switch name {
	case slot.EdgeJob:
		return m.clearedjob
	case slot.EdgeSchedules:
		return m.clearedschedules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlotMutation) ClearEdge(name string) error {
	switch name {
	case slot.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Slot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlotMutation) ResetEdge(name string) error {
	switch name {
	case slot.EdgeJob:
		m.ResetJob()
		return nil
	case slot.EdgeSchedules:
		m.ResetSchedules()
		return nil
	}
	return fmt.Errorf("unknown Slot edge %s", name)
}

// TestCaseMutation represents an operation that mutates the TestCase nodes in the graph.
type TestCaseMutation struct {
	config
	op              Op
	typ             string
	id              *string
	input           *string
	expected_output *string
	is_hidden       *bool
	ordinal         *int
	addordinal      *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	question        *string
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*TestCase, error)
	predicates      []predicate.TestCase
}

var _ ent.Mutation = (*TestCaseMutation)(nil)

// testcaseOption allows management of the mutation configuration using functional options.
type testcaseOption func(*TestCaseMutation)

// newTestCaseMutation creates new mutation for the TestCase entity.
func newTestCaseMutation(c config, op Op, opts ...testcaseOption) *TestCaseMutation {
	m := &TestCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeTestCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestCaseID sets the ID field of the mutation.
func withTestCaseID(id string) testcaseOption {
	return func(m *TestCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *TestCase
		)
		m.oldValue = func(ctx context.Context) (*TestCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestCase sets the old TestCase of the mutation.
func withTestCase(node *TestCase) testcaseOption {
	return func(m *TestCaseMutation) {
		m.oldValue = func(context.Context) (*TestCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestCase entities.
func (m *TestCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *TestCaseMutation) SetQuestionID(s string) {
	m.question = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *TestCaseMutation) QuestionID() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *TestCaseMutation) ResetQuestionID() {
	m.question = nil
}

// SetInput sets the "input" field.
func (m *TestCaseMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *TestCaseMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *TestCaseMutation) ResetInput() {
	m.input = nil
}

// SetExpectedOutput sets the "expected_output" field.
func (m *TestCaseMutation) SetExpectedOutput(s string) {
	m.expected_output = &s
}

// ExpectedOutput returns the value of the "expected_output" field in the mutation.
func (m *TestCaseMutation) ExpectedOutput() (r string, exists bool) {
	v := m.expected_output
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedOutput returns the old "expected_output" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldExpectedOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedOutput: %w", err)
	}
	return oldValue.ExpectedOutput, nil
}

// ResetExpectedOutput resets all changes to the "expected_output" field.
func (m *TestCaseMutation) ResetExpectedOutput() {
	m.expected_output = nil
}

// SetIsHidden sets the "is_hidden" field.
func (m *TestCaseMutation) SetIsHidden(b bool) {
	m.is_hidden = &b
}

// IsHidden returns the value of the "is_hidden" field in the mutation.
func (m *TestCaseMutation) IsHidden() (r bool, exists bool) {
	v := m.is_hidden
	if v == nil {
		return
	}
	return *v, true
}

// OldIsHidden returns the old "is_hidden" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldIsHidden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsHidden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsHidden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsHidden: %w", err)
	}
	return oldValue.IsHidden, nil
}

// ResetIsHidden resets all changes to the "is_hidden" field.
func (m *TestCaseMutation) ResetIsHidden() {
	m.is_hidden = nil
}

// SetOrdinal sets the "ordinal" field.
func (m *TestCaseMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *TestCaseMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *TestCaseMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *TestCaseMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *TestCaseMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TestCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *TestCaseMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[testcase.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *TestCaseMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *TestCaseMutation) QuestionIDs() (ids []string) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *TestCaseMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the TestCaseMutation builder.
func (m *TestCaseMutation) Where(ps ...predicate.TestCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestCase).
func (m *TestCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestCaseMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.question != nil {
		fields = append(fields, testcase.FieldQuestionID)
	}
	if m.input != nil {
		fields = append(fields, testcase.FieldInput)
	}
	if m.expected_output != nil {
		fields = append(fields, testcase.FieldExpectedOutput)
	}
	if m.is_hidden != nil {
		fields = append(fields, testcase.FieldIsHidden)
	}
	if m.ordinal != nil {
		fields = append(fields, testcase.FieldOrdinal)
	}
	if m.created_at != nil {
		fields = append(fields, testcase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldQuestionID:
		return m.QuestionID()
	case testcase.FieldInput:
		return m.Input()
	case testcase.FieldExpectedOutput:
		return m.ExpectedOutput()
	case testcase.FieldIsHidden:
		return m.IsHidden()
	case testcase.FieldOrdinal:
		return m.Ordinal()
	case testcase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testcase.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case testcase.FieldInput:
		return m.OldInput(ctx)
	case testcase.FieldExpectedOutput:
		return m.OldExpectedOutput(ctx)
	case testcase.FieldIsHidden:
		return m.OldIsHidden(ctx)
	case testcase.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case testcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case testcase.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case testcase.FieldExpectedOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedOutput(v)
		return nil
	case testcase.FieldIsHidden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsHidden(v)
		return nil
	case testcase.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case testcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestCaseMutation) AddedFields() []string {
	var fields []string
	if m.addordinal != nil {
		fields = append(fields, testcase.FieldOrdinal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldOrdinal:
		return m.AddedOrdinal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestCaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestCaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TestCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestCaseMutation) ResetField(name string) error {
	switch name {
	case testcase.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case testcase.FieldInput:
		m.ResetInput()
		return nil
	case testcase.FieldExpectedOutput:
		m.ResetExpectedOutput()
		return nil
	case testcase.FieldIsHidden:
		m.ResetIsHidden()
		return nil
	case testcase.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case testcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, testcase.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testcase.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, testcase.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case testcase.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestCaseMutation) ClearEdge(name string) error {
	switch name {
	case testcase.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown TestCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestCaseMutation) ResetEdge(name string) error {
	switch name {
	case testcase.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown TestCase edge %s", name)
}

// WarningLogMutation represents an operation that mutates the WarningLog nodes in the graph.
type WarningLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	warning_type   *warninglog.WarningType
	message        *string
	evidence_path  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*WarningLog, error)
	predicates     []predicate.WarningLog
}

var _ ent.Mutation = (*WarningLogMutation)(nil)

// warninglogOption allows management of the mutation configuration using functional options.
type warninglogOption func(*WarningLogMutation)

// newWarningLogMutation creates new mutation for the WarningLog entity.
func newWarningLogMutation(c config, op Op, opts ...warninglogOption) *WarningLogMutation {
	m := &WarningLogMutation{
		config:        c,
		op:            op,
		typ:           TypeWarningLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWarningLogID sets the ID field of the mutation.
func withWarningLogID(id string) warninglogOption {
	return func(m *WarningLogMutation) {
		var (
			err   error
			once  sync.Once
			value *WarningLog
		)
		m.oldValue = func(ctx context.Context) (*WarningLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WarningLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWarningLog sets the old WarningLog of the mutation.
func withWarningLog(node *WarningLog) warninglogOption {
	return func(m *WarningLogMutation) {
		m.oldValue = func(context.Context) (*WarningLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WarningLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WarningLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WarningLog entities.
func (m *WarningLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WarningLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WarningLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WarningLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *WarningLogMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WarningLogMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the WarningLog entity.
// If the WarningLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WarningLogMutation) ResetSessionID() {
	m.session = nil
}

// SetWarningType sets the "warning_type" field.
func (m *WarningLogMutation) SetWarningType(wt warninglog.WarningType) {
	m.warning_type = &wt
}

// WarningType returns the value of the "warning_type" field in the mutation.
func (m *WarningLogMutation) WarningType() (r warninglog.WarningType, exists bool) {
	v := m.warning_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningType returns the old "warning_type" field's value of the WarningLog entity.
// If the WarningLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningLogMutation) OldWarningType(ctx context.Context) (v warninglog.WarningType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningType: %w", err)
	}
	return oldValue.WarningType, nil
}

// ResetWarningType resets all changes to the "warning_type" field.
func (m *WarningLogMutation) ResetWarningType() {
	m.warning_type = nil
}

// SetMessage sets the "message" field.
func (m *WarningLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *WarningLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the WarningLog entity.
// If the WarningLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *WarningLogMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[warninglog.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *WarningLogMutation) MessageCleared() bool {
	_, ok := m.clearedFields[warninglog.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *WarningLogMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, warninglog.FieldMessage)
}

// SetEvidencePath sets the "evidence_path" field.
func (m *WarningLogMutation) SetEvidencePath(s string) {
	m.evidence_path = &s
}

// EvidencePath returns the value of the "evidence_path" field in the mutation.
func (m *WarningLogMutation) EvidencePath() (r string, exists bool) {
	v := m.evidence_path
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidencePath returns the old "evidence_path" field's value of the WarningLog entity.
// If the WarningLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningLogMutation) OldEvidencePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidencePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidencePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidencePath: %w", err)
	}
	return oldValue.EvidencePath, nil
}

// ClearEvidencePath clears the value of the "evidence_path" field.
func (m *WarningLogMutation) ClearEvidencePath() {
	m.evidence_path = nil
	m.clearedFields[warninglog.FieldEvidencePath] = struct{}{}
}

// EvidencePathCleared returns if the "evidence_path" field was cleared in this mutation.
func (m *WarningLogMutation) EvidencePathCleared() bool {
	_, ok := m.clearedFields[warninglog.FieldEvidencePath]
	return ok
}

// ResetEvidencePath resets all changes to the "evidence_path" field.
func (m *WarningLogMutation) ResetEvidencePath() {
	m.evidence_path = nil
	delete(m.clearedFields, warninglog.FieldEvidencePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *WarningLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WarningLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WarningLog entity.
// If the WarningLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WarningLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *WarningLogMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[warninglog.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *WarningLogMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *WarningLogMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *WarningLogMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the WarningLogMutation builder.
func (m *WarningLogMutation) Where(ps ...predicate.WarningLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WarningLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WarningLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WarningLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WarningLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WarningLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WarningLog).
func (m *WarningLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WarningLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, warninglog.FieldSessionID)
	}
	if m.warning_type != nil {
		fields = append(fields, warninglog.FieldWarningType)
	}
	if m.message != nil {
		fields = append(fields, warninglog.FieldMessage)
	}
	if m.evidence_path != nil {
		fields = append(fields, warninglog.FieldEvidencePath)
	}
	if m.created_at != nil {
		fields = append(fields, warninglog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WarningLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case warninglog.FieldSessionID:
		return m.SessionID()
	case warninglog.FieldWarningType:
		return m.WarningType()
	case warninglog.FieldMessage:
		return m.Message()
	case warninglog.FieldEvidencePath:
		return m.EvidencePath()
	case warninglog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WarningLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case warninglog.FieldSessionID:
		return m.OldSessionID(ctx)
	case warninglog.FieldWarningType:
		return m.OldWarningType(ctx)
	case warninglog.FieldMessage:
		return m.OldMessage(ctx)
	case warninglog.FieldEvidencePath:
		return m.OldEvidencePath(ctx)
	case warninglog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WarningLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarningLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case warninglog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case warninglog.FieldWarningType:
		v, ok := value.(warninglog.WarningType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningType(v)
		return nil
	case warninglog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case warninglog.FieldEvidencePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidencePath(v)
		return nil
	case warninglog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WarningLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WarningLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WarningLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarningLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WarningLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WarningLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(warninglog.FieldMessage) {
		fields = append(fields, warninglog.FieldMessage)
	}
	if m.FieldCleared(warninglog.FieldEvidencePath) {
		fields = append(fields, warninglog.FieldEvidencePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WarningLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WarningLogMutation) ClearField(name string) error {
	switch name {
	case warninglog.FieldMessage:
		m.ClearMessage()
		return nil
	case warninglog.FieldEvidencePath:
		m.ClearEvidencePath()
		return nil
	}
	return fmt.Errorf("unknown WarningLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WarningLogMutation) ResetField(name string) error {
	switch name {
	case warninglog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case warninglog.FieldWarningType:
		m.ResetWarningType()
		return nil
	case warninglog.FieldMessage:
		m.ResetMessage()
		return nil
	case warninglog.FieldEvidencePath:
		m.ResetEvidencePath()
		return nil
	case warninglog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WarningLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WarningLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, warninglog.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WarningLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case warninglog.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WarningLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WarningLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WarningLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, warninglog.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WarningLogMutation) EdgeCleared(name string) bool {
	switch name {
	case warninglog.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WarningLogMutation) ClearEdge(name string) error {
	switch name {
	case warninglog.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown WarningLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WarningLogMutation) ResetEdge(name string) error {
	switch name {
	case warninglog.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown WarningLog edge %s", name)
}
