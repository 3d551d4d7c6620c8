// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/company"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/slot"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *JobCreate) SetTitle(v string) *JobCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *JobCreate) SetCompanyName(v string) *JobCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompanyName(v *string) *JobCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *JobCreate) SetCompanyID(v string) *JobCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompanyID(v *string) *JobCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *JobCreate) SetDomain(v string) *JobCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *JobCreate) SetNillableDomain(v *string) *JobCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *JobCreate) SetDescription(v string) *JobCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetTechStack sets the "tech_stack" field.
func (_c *JobCreate) SetTechStack(v []string) *JobCreate {
	_c.mutation.SetTechStack(v)
	return _c
}

// SetCodingLanguage sets the "coding_language" field.
func (_c *JobCreate) SetCodingLanguage(v job.CodingLanguage) *JobCreate {
	_c.mutation.SetCodingLanguage(v)
	return _c
}

// SetNillableCodingLanguage sets the "coding_language" field if the given value is not nil.
func (_c *JobCreate) SetNillableCodingLanguage(v *job.CodingLanguage) *JobCreate {
	if v != nil {
		_c.SetCodingLanguage(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *JobCreate) SetIsActive(v bool) *JobCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *JobCreate) SetNillableIsActive(v *bool) *JobCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *JobCreate) SetCompany(v *Company) *JobCreate {
	return _c.SetCompanyID(v.ID)
}

// AddSlotIDs adds the "slots" edge to the Slot entity by IDs.
func (_c *JobCreate) AddSlotIDs(ids ...string) *JobCreate {
	_c.mutation.AddSlotIDs(ids...)
	return _c
}

// AddSlots adds the "slots" edges to the Slot entity.
func (_c *JobCreate) AddSlots(v ...*Slot) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSlotIDs(ids...)
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_c *JobCreate) AddInterviewIDs(ids ...string) *JobCreate {
	_c.mutation.AddInterviewIDs(ids...)
	return _c
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_c *JobCreate) AddInterviews(v ...*Interview) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInterviewIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := job.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Job.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Job.description"`)}
	}
	if v, ok := _c.mutation.CodingLanguage(); ok {
		if err := job.CodingLanguageValidator(v); err != nil {
			return &ValidationError{Name: "coding_language", err: fmt.Errorf(`ent: validator failed for field "Job.coding_language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Job.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(job.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(job.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TechStack(); ok {
		_spec.SetField(job.FieldTechStack, field.TypeJSON, value)
		_node.TechStack = value
	}
	if value, ok := _c.mutation.CodingLanguage(); ok {
		_spec.SetField(job.FieldCodingLanguage, field.TypeEnum, value)
		_node.CodingLanguage = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(job.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.CompanyTable,
			Columns: []string{job.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SlotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.SlotsTable,
			Columns: []string{job.SlotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InterviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.InterviewsTable,
			Columns: []string{job.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *JobUpsert) SetTitle(v string) *JobUpsert {
	u.Set(job.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsert) UpdateTitle() *JobUpsert {
	u.SetExcluded(job.FieldTitle)
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *JobUpsert) SetCompanyName(v string) *JobUpsert {
	u.Set(job.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *JobUpsert) UpdateCompanyName() *JobUpsert {
	u.SetExcluded(job.FieldCompanyName)
	return u
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *JobUpsert) ClearCompanyName() *JobUpsert {
	u.SetNull(job.FieldCompanyName)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *JobUpsert) SetCompanyID(v string) *JobUpsert {
	u.Set(job.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateCompanyID() *JobUpsert {
	u.SetExcluded(job.FieldCompanyID)
	return u
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *JobUpsert) ClearCompanyID() *JobUpsert {
	u.SetNull(job.FieldCompanyID)
	return u
}

// SetDomain sets the "domain" field.
func (u *JobUpsert) SetDomain(v string) *JobUpsert {
	u.Set(job.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *JobUpsert) UpdateDomain() *JobUpsert {
	u.SetExcluded(job.FieldDomain)
	return u
}

// ClearDomain clears the value of the "domain" field.
func (u *JobUpsert) ClearDomain() *JobUpsert {
	u.SetNull(job.FieldDomain)
	return u
}

// SetDescription sets the "description" field.
func (u *JobUpsert) SetDescription(v string) *JobUpsert {
	u.Set(job.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *JobUpsert) UpdateDescription() *JobUpsert {
	u.SetExcluded(job.FieldDescription)
	return u
}

// SetTechStack sets the "tech_stack" field.
func (u *JobUpsert) SetTechStack(v []string) *JobUpsert {
	u.Set(job.FieldTechStack, v)
	return u
}

// UpdateTechStack sets the "tech_stack" field to the value that was provided on create.
func (u *JobUpsert) UpdateTechStack() *JobUpsert {
	u.SetExcluded(job.FieldTechStack)
	return u
}

// ClearTechStack clears the value of the "tech_stack" field.
func (u *JobUpsert) ClearTechStack() *JobUpsert {
	u.SetNull(job.FieldTechStack)
	return u
}

// SetCodingLanguage sets the "coding_language" field.
func (u *JobUpsert) SetCodingLanguage(v job.CodingLanguage) *JobUpsert {
	u.Set(job.FieldCodingLanguage, v)
	return u
}

// UpdateCodingLanguage sets the "coding_language" field to the value that was provided on create.
func (u *JobUpsert) UpdateCodingLanguage() *JobUpsert {
	u.SetExcluded(job.FieldCodingLanguage)
	return u
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (u *JobUpsert) ClearCodingLanguage() *JobUpsert {
	u.SetNull(job.FieldCodingLanguage)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *JobUpsert) SetIsActive(v bool) *JobUpsert {
	u.Set(job.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *JobUpsert) UpdateIsActive() *JobUpsert {
	u.SetExcluded(job.FieldIsActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsert) SetUpdatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateUpdatedAt() *JobUpsert {
	u.SetExcluded(job.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *JobUpsertOne) SetTitle(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTitle() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTitle()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *JobUpsertOne) SetCompanyName(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCompanyName() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *JobUpsertOne) ClearCompanyName() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompanyName()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *JobUpsertOne) SetCompanyID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCompanyID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *JobUpsertOne) ClearCompanyID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompanyID()
	})
}

// SetDomain sets the "domain" field.
func (u *JobUpsertOne) SetDomain(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDomain() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDomain()
	})
}

// ClearDomain clears the value of the "domain" field.
func (u *JobUpsertOne) ClearDomain() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearDomain()
	})
}

// SetDescription sets the "description" field.
func (u *JobUpsertOne) SetDescription(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDescription() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDescription()
	})
}

// SetTechStack sets the "tech_stack" field.
func (u *JobUpsertOne) SetTechStack(v []string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTechStack(v)
	})
}

// UpdateTechStack sets the "tech_stack" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTechStack() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTechStack()
	})
}

// ClearTechStack clears the value of the "tech_stack" field.
func (u *JobUpsertOne) ClearTechStack() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearTechStack()
	})
}

// SetCodingLanguage sets the "coding_language" field.
func (u *JobUpsertOne) SetCodingLanguage(v job.CodingLanguage) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCodingLanguage(v)
	})
}

// UpdateCodingLanguage sets the "coding_language" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCodingLanguage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCodingLanguage()
	})
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (u *JobUpsertOne) ClearCodingLanguage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCodingLanguage()
	})
}

// SetIsActive sets the "is_active" field.
func (u *JobUpsertOne) SetIsActive(v bool) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateIsActive() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertOne) SetUpdatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUpdatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *JobUpsertBulk) SetTitle(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTitle() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTitle()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *JobUpsertBulk) SetCompanyName(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCompanyName() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *JobUpsertBulk) ClearCompanyName() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompanyName()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *JobUpsertBulk) SetCompanyID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCompanyID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *JobUpsertBulk) ClearCompanyID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompanyID()
	})
}

// SetDomain sets the "domain" field.
func (u *JobUpsertBulk) SetDomain(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDomain() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDomain()
	})
}

// ClearDomain clears the value of the "domain" field.
func (u *JobUpsertBulk) ClearDomain() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearDomain()
	})
}

// SetDescription sets the "description" field.
func (u *JobUpsertBulk) SetDescription(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDescription() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDescription()
	})
}

// SetTechStack sets the "tech_stack" field.
func (u *JobUpsertBulk) SetTechStack(v []string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTechStack(v)
	})
}

// UpdateTechStack sets the "tech_stack" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTechStack() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTechStack()
	})
}

// ClearTechStack clears the value of the "tech_stack" field.
func (u *JobUpsertBulk) ClearTechStack() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearTechStack()
	})
}

// SetCodingLanguage sets the "coding_language" field.
func (u *JobUpsertBulk) SetCodingLanguage(v job.CodingLanguage) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCodingLanguage(v)
	})
}

// UpdateCodingLanguage sets the "coding_language" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCodingLanguage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCodingLanguage()
	})
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (u *JobUpsertBulk) ClearCodingLanguage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCodingLanguage()
	})
}

// SetIsActive sets the "is_active" field.
func (u *JobUpsertBulk) SetIsActive(v bool) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateIsActive() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertBulk) SetUpdatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUpdatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
