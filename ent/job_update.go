// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hireloop/hireloop/ent/company"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/ent/predicate"
	"github.com/hireloop/hireloop/ent/slot"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobUpdate) SetTitle(v string) *JobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTitle(v *string) *JobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *JobUpdate) SetCompanyName(v string) *JobUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompanyName(v *string) *JobUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *JobUpdate) ClearCompanyName() *JobUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *JobUpdate) SetCompanyID(v string) *JobUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompanyID(v *string) *JobUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *JobUpdate) ClearCompanyID() *JobUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *JobUpdate) SetDomain(v string) *JobUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDomain(v *string) *JobUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *JobUpdate) ClearDomain() *JobUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// SetDescription sets the "description" field.
func (_u *JobUpdate) SetDescription(v string) *JobUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDescription(v *string) *JobUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTechStack sets the "tech_stack" field.
func (_u *JobUpdate) SetTechStack(v []string) *JobUpdate {
	_u.mutation.SetTechStack(v)
	return _u
}

// AppendTechStack appends value to the "tech_stack" field.
func (_u *JobUpdate) AppendTechStack(v []string) *JobUpdate {
	_u.mutation.AppendTechStack(v)
	return _u
}

// ClearTechStack clears the value of the "tech_stack" field.
func (_u *JobUpdate) ClearTechStack() *JobUpdate {
	_u.mutation.ClearTechStack()
	return _u
}

// SetCodingLanguage sets the "coding_language" field.
func (_u *JobUpdate) SetCodingLanguage(v job.CodingLanguage) *JobUpdate {
	_u.mutation.SetCodingLanguage(v)
	return _u
}

// SetNillableCodingLanguage sets the "coding_language" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCodingLanguage(v *job.CodingLanguage) *JobUpdate {
	if v != nil {
		_u.SetCodingLanguage(*v)
	}
	return _u
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (_u *JobUpdate) ClearCodingLanguage() *JobUpdate {
	_u.mutation.ClearCodingLanguage()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *JobUpdate) SetIsActive(v bool) *JobUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *JobUpdate) SetNillableIsActive(v *bool) *JobUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *JobUpdate) SetCompany(v *Company) *JobUpdate {
	return _u.SetCompanyID(v.ID)
}

// AddSlotIDs adds the "slots" edge to the Slot entity by IDs.
func (_u *JobUpdate) AddSlotIDs(ids ...string) *JobUpdate {
	_u.mutation.AddSlotIDs(ids...)
	return _u
}

// AddSlots adds the "slots" edges to the Slot entity.
func (_u *JobUpdate) AddSlots(v ...*Slot) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSlotIDs(ids...)
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_u *JobUpdate) AddInterviewIDs(ids ...string) *JobUpdate {
	_u.mutation.AddInterviewIDs(ids...)
	return _u
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_u *JobUpdate) AddInterviews(v ...*Interview) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterviewIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *JobUpdate) ClearCompany() *JobUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearSlots clears all "slots" edges to the Slot entity.
func (_u *JobUpdate) ClearSlots() *JobUpdate {
	_u.mutation.ClearSlots()
	return _u
}

// RemoveSlotIDs removes the "slots" edge to Slot entities by IDs.
func (_u *JobUpdate) RemoveSlotIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveSlotIDs(ids...)
	return _u
}

// RemoveSlots removes "slots" edges to Slot entities.
func (_u *JobUpdate) RemoveSlots(v ...*Slot) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSlotIDs(ids...)
}

// ClearInterviews clears all "interviews" edges to the Interview entity.
func (_u *JobUpdate) ClearInterviews() *JobUpdate {
	_u.mutation.ClearInterviews()
	return _u
}

// RemoveInterviewIDs removes the "interviews" edge to Interview entities by IDs.
func (_u *JobUpdate) RemoveInterviewIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveInterviewIDs(ids...)
	return _u
}

// RemoveInterviews removes "interviews" edges to Interview entities.
func (_u *JobUpdate) RemoveInterviews(v ...*Interview) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterviewIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.CodingLanguage(); ok {
		if err := job.CodingLanguageValidator(v); err != nil {
			return &ValidationError{Name: "coding_language", err: fmt.Errorf(`ent: validator failed for field "Job.coding_language": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(job.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(job.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(job.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(job.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechStack(); ok {
		_spec.SetField(job.FieldTechStack, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechStack(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldTechStack, value)
		})
	}
	if _u.mutation.TechStackCleared() {
		_spec.ClearField(job.FieldTechStack, field.TypeJSON)
	}
	if value, ok := _u.mutation.CodingLanguage(); ok {
		_spec.SetField(job.FieldCodingLanguage, field.TypeEnum, value)
	}
	if _u.mutation.CodingLanguageCleared() {
		_spec.ClearField(job.FieldCodingLanguage, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(job.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SlotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSlotsIDs(); len(nodes) > 0 && !_u.mutation.SlotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SlotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterviewsIDs(); len(nodes) > 0 && !_u.mutation.InterviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetTitle sets the "title" field.
func (_u *JobUpdateOne) SetTitle(v string) *JobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTitle(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *JobUpdateOne) SetCompanyName(v string) *JobUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompanyName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *JobUpdateOne) ClearCompanyName() *JobUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *JobUpdateOne) SetCompanyID(v string) *JobUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompanyID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *JobUpdateOne) ClearCompanyID() *JobUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *JobUpdateOne) SetDomain(v string) *JobUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDomain(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *JobUpdateOne) ClearDomain() *JobUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// SetDescription sets the "description" field.
func (_u *JobUpdateOne) SetDescription(v string) *JobUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDescription(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTechStack sets the "tech_stack" field.
func (_u *JobUpdateOne) SetTechStack(v []string) *JobUpdateOne {
	_u.mutation.SetTechStack(v)
	return _u
}

// AppendTechStack appends value to the "tech_stack" field.
func (_u *JobUpdateOne) AppendTechStack(v []string) *JobUpdateOne {
	_u.mutation.AppendTechStack(v)
	return _u
}

// ClearTechStack clears the value of the "tech_stack" field.
func (_u *JobUpdateOne) ClearTechStack() *JobUpdateOne {
	_u.mutation.ClearTechStack()
	return _u
}

// SetCodingLanguage sets the "coding_language" field.
func (_u *JobUpdateOne) SetCodingLanguage(v job.CodingLanguage) *JobUpdateOne {
	_u.mutation.SetCodingLanguage(v)
	return _u
}

// SetNillableCodingLanguage sets the "coding_language" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCodingLanguage(v *job.CodingLanguage) *JobUpdateOne {
	if v != nil {
		_u.SetCodingLanguage(*v)
	}
	return _u
}

// ClearCodingLanguage clears the value of the "coding_language" field.
func (_u *JobUpdateOne) ClearCodingLanguage() *JobUpdateOne {
	_u.mutation.ClearCodingLanguage()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *JobUpdateOne) SetIsActive(v bool) *JobUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableIsActive(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *JobUpdateOne) SetCompany(v *Company) *JobUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// AddSlotIDs adds the "slots" edge to the Slot entity by IDs.
func (_u *JobUpdateOne) AddSlotIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddSlotIDs(ids...)
	return _u
}

// AddSlots adds the "slots" edges to the Slot entity.
func (_u *JobUpdateOne) AddSlots(v ...*Slot) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSlotIDs(ids...)
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_u *JobUpdateOne) AddInterviewIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddInterviewIDs(ids...)
	return _u
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_u *JobUpdateOne) AddInterviews(v ...*Interview) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterviewIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *JobUpdateOne) ClearCompany() *JobUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearSlots clears all "slots" edges to the Slot entity.
func (_u *JobUpdateOne) ClearSlots() *JobUpdateOne {
	_u.mutation.ClearSlots()
	return _u
}

// RemoveSlotIDs removes the "slots" edge to Slot entities by IDs.
func (_u *JobUpdateOne) RemoveSlotIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveSlotIDs(ids...)
	return _u
}

// RemoveSlots removes "slots" edges to Slot entities.
func (_u *JobUpdateOne) RemoveSlots(v ...*Slot) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSlotIDs(ids...)
}

// ClearInterviews clears all "interviews" edges to the Interview entity.
func (_u *JobUpdateOne) ClearInterviews() *JobUpdateOne {
	_u.mutation.ClearInterviews()
	return _u
}

// RemoveInterviewIDs removes the "interviews" edge to Interview entities by IDs.
func (_u *JobUpdateOne) RemoveInterviewIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveInterviewIDs(ids...)
	return _u
}

// RemoveInterviews removes "interviews" edges to Interview entities.
func (_u *JobUpdateOne) RemoveInterviews(v ...*Interview) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterviewIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.CodingLanguage(); ok {
		if err := job.CodingLanguageValidator(v); err != nil {
			return &ValidationError{Name: "coding_language", err: fmt.Errorf(`ent: validator failed for field "Job.coding_language": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(job.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(job.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(job.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(job.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechStack(); ok {
		_spec.SetField(job.FieldTechStack, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechStack(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldTechStack, value)
		})
	}
	if _u.mutation.TechStackCleared() {
		_spec.ClearField(job.FieldTechStack, field.TypeJSON)
	}
	if value, ok := _u.mutation.CodingLanguage(); ok {
		_spec.SetField(job.FieldCodingLanguage, field.TypeEnum, value)
	}
	if _u.mutation.CodingLanguageCleared() {
		_spec.ClearField(job.FieldCodingLanguage, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(job.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SlotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSlotsIDs(); len(nodes) > 0 && !_u.mutation.SlotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SlotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterviewsIDs(); len(nodes) > 0 && !_u.mutation.InterviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
