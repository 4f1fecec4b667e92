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
	"github.com/majordomo-io/majordomo/ent/integration"
)

// IntegrationCreate is the builder for creating a Integration entity.
type IntegrationCreate struct {
	config
	mutation *IntegrationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *IntegrationCreate) SetUserID(v string) *IntegrationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *IntegrationCreate) SetProvider(v string) *IntegrationCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *IntegrationCreate) SetAccessToken(v string) *IntegrationCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableAccessToken(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetAccessToken(*v)
	}
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *IntegrationCreate) SetRefreshToken(v string) *IntegrationCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableRefreshToken(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetRefreshToken(*v)
	}
	return _c
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_c *IntegrationCreate) SetTokenExpiresAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetTokenExpiresAt(v)
	return _c
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableTokenExpiresAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetTokenExpiresAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *IntegrationCreate) SetMetadata(v map[string]interface{}) *IntegrationCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *IntegrationCreate) SetIsActive(v bool) *IntegrationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableIsActive(v *bool) *IntegrationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationCreate) SetCreatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableCreatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntegrationCreate) SetUpdatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableUpdatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntegrationCreate) SetID(v string) *IntegrationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IntegrationMutation object of the builder.
func (_c *IntegrationCreate) Mutation() *IntegrationMutation {
	return _c.mutation
}

// Save creates the Integration in the database.
func (_c *IntegrationCreate) Save(ctx context.Context) (*Integration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationCreate) SaveX(ctx context.Context) *Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := integration.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := integration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Integration.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Integration.provider"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Integration.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Integration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Integration.updated_at"`)}
	}
	return nil
}

func (_c *IntegrationCreate) sqlSave(ctx context.Context) (*Integration, error) {
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
			return nil, fmt.Errorf("unexpected Integration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrationCreate) createSpec() (*Integration, *sqlgraph.CreateSpec) {
	var (
		_node = &Integration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integration.Table, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(integration.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(integration.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(integration.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := _c.mutation.TokenExpiresAt(); ok {
		_spec.SetField(integration.FieldTokenExpiresAt, field.TypeTime, value)
		_node.TokenExpiresAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(integration.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(integration.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Integration.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntegrationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntegrationCreate) OnConflict(opts ...sql.ConflictOption) *IntegrationUpsertOne {
	_c.conflict = opts
	return &IntegrationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntegrationCreate) OnConflictColumns(columns ...string) *IntegrationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntegrationUpsertOne{
		create: _c,
	}
}

type (
	// IntegrationUpsertOne is the builder for "upsert"-ing
	//  one Integration node.
	IntegrationUpsertOne struct {
		create *IntegrationCreate
	}

	// IntegrationUpsert is the "OnConflict" setter.
	IntegrationUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *IntegrationUpsert) SetProvider(v string) *IntegrationUpsert {
	u.Set(integration.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateProvider() *IntegrationUpsert {
	u.SetExcluded(integration.FieldProvider)
	return u
}

// SetAccessToken sets the "access_token" field.
func (u *IntegrationUpsert) SetAccessToken(v string) *IntegrationUpsert {
	u.Set(integration.FieldAccessToken, v)
	return u
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateAccessToken() *IntegrationUpsert {
	u.SetExcluded(integration.FieldAccessToken)
	return u
}

// ClearAccessToken clears the value of the "access_token" field.
func (u *IntegrationUpsert) ClearAccessToken() *IntegrationUpsert {
	u.SetNull(integration.FieldAccessToken)
	return u
}

// SetRefreshToken sets the "refresh_token" field.
func (u *IntegrationUpsert) SetRefreshToken(v string) *IntegrationUpsert {
	u.Set(integration.FieldRefreshToken, v)
	return u
}

// UpdateRefreshToken sets the "refresh_token" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateRefreshToken() *IntegrationUpsert {
	u.SetExcluded(integration.FieldRefreshToken)
	return u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (u *IntegrationUpsert) ClearRefreshToken() *IntegrationUpsert {
	u.SetNull(integration.FieldRefreshToken)
	return u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (u *IntegrationUpsert) SetTokenExpiresAt(v time.Time) *IntegrationUpsert {
	u.Set(integration.FieldTokenExpiresAt, v)
	return u
}

// UpdateTokenExpiresAt sets the "token_expires_at" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateTokenExpiresAt() *IntegrationUpsert {
	u.SetExcluded(integration.FieldTokenExpiresAt)
	return u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (u *IntegrationUpsert) ClearTokenExpiresAt() *IntegrationUpsert {
	u.SetNull(integration.FieldTokenExpiresAt)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *IntegrationUpsert) SetMetadata(v map[string]interface{}) *IntegrationUpsert {
	u.Set(integration.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateMetadata() *IntegrationUpsert {
	u.SetExcluded(integration.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *IntegrationUpsert) ClearMetadata() *IntegrationUpsert {
	u.SetNull(integration.FieldMetadata)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *IntegrationUpsert) SetIsActive(v bool) *IntegrationUpsert {
	u.Set(integration.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateIsActive() *IntegrationUpsert {
	u.SetExcluded(integration.FieldIsActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntegrationUpsert) SetUpdatedAt(v time.Time) *IntegrationUpsert {
	u.Set(integration.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateUpdatedAt() *IntegrationUpsert {
	u.SetExcluded(integration.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(integration.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntegrationUpsertOne) UpdateNewValues() *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(integration.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(integration.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(integration.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Integration.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IntegrationUpsertOne) Ignore() *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntegrationUpsertOne) DoNothing() *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntegrationCreate.OnConflict
// documentation for more info.
func (u *IntegrationUpsertOne) Update(set func(*IntegrationUpsert)) *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntegrationUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *IntegrationUpsertOne) SetProvider(v string) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateProvider() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateProvider()
	})
}

// SetAccessToken sets the "access_token" field.
func (u *IntegrationUpsertOne) SetAccessToken(v string) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetAccessToken(v)
	})
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateAccessToken() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateAccessToken()
	})
}

// ClearAccessToken clears the value of the "access_token" field.
func (u *IntegrationUpsertOne) ClearAccessToken() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearAccessToken()
	})
}

// SetRefreshToken sets the "refresh_token" field.
func (u *IntegrationUpsertOne) SetRefreshToken(v string) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetRefreshToken(v)
	})
}

// UpdateRefreshToken sets the "refresh_token" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateRefreshToken() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateRefreshToken()
	})
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (u *IntegrationUpsertOne) ClearRefreshToken() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearRefreshToken()
	})
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (u *IntegrationUpsertOne) SetTokenExpiresAt(v time.Time) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetTokenExpiresAt(v)
	})
}

// UpdateTokenExpiresAt sets the "token_expires_at" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateTokenExpiresAt() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateTokenExpiresAt()
	})
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (u *IntegrationUpsertOne) ClearTokenExpiresAt() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearTokenExpiresAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *IntegrationUpsertOne) SetMetadata(v map[string]interface{}) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateMetadata() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *IntegrationUpsertOne) ClearMetadata() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearMetadata()
	})
}

// SetIsActive sets the "is_active" field.
func (u *IntegrationUpsertOne) SetIsActive(v bool) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateIsActive() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntegrationUpsertOne) SetUpdatedAt(v time.Time) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateUpdatedAt() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IntegrationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntegrationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntegrationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IntegrationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IntegrationUpsertOne.ID is not supported by MySQL driver. Use IntegrationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IntegrationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IntegrationCreateBulk is the builder for creating many Integration entities in bulk.
type IntegrationCreateBulk struct {
	config
	err      error
	builders []*IntegrationCreate
	conflict []sql.ConflictOption
}

// Save creates the Integration entities in the database.
func (_c *IntegrationCreateBulk) Save(ctx context.Context) ([]*Integration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Integration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationMutation)
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
func (_c *IntegrationCreateBulk) SaveX(ctx context.Context) []*Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Integration.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntegrationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntegrationCreateBulk) OnConflict(opts ...sql.ConflictOption) *IntegrationUpsertBulk {
	_c.conflict = opts
	return &IntegrationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntegrationCreateBulk) OnConflictColumns(columns ...string) *IntegrationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntegrationUpsertBulk{
		create: _c,
	}
}

// IntegrationUpsertBulk is the builder for "upsert"-ing
// a bulk of Integration nodes.
type IntegrationUpsertBulk struct {
	create *IntegrationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(integration.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntegrationUpsertBulk) UpdateNewValues() *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(integration.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(integration.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(integration.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IntegrationUpsertBulk) Ignore() *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntegrationUpsertBulk) DoNothing() *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntegrationCreateBulk.OnConflict
// documentation for more info.
func (u *IntegrationUpsertBulk) Update(set func(*IntegrationUpsert)) *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntegrationUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *IntegrationUpsertBulk) SetProvider(v string) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateProvider() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateProvider()
	})
}

// SetAccessToken sets the "access_token" field.
func (u *IntegrationUpsertBulk) SetAccessToken(v string) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetAccessToken(v)
	})
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateAccessToken() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateAccessToken()
	})
}

// ClearAccessToken clears the value of the "access_token" field.
func (u *IntegrationUpsertBulk) ClearAccessToken() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearAccessToken()
	})
}

// SetRefreshToken sets the "refresh_token" field.
func (u *IntegrationUpsertBulk) SetRefreshToken(v string) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetRefreshToken(v)
	})
}

// UpdateRefreshToken sets the "refresh_token" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateRefreshToken() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateRefreshToken()
	})
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (u *IntegrationUpsertBulk) ClearRefreshToken() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearRefreshToken()
	})
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (u *IntegrationUpsertBulk) SetTokenExpiresAt(v time.Time) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetTokenExpiresAt(v)
	})
}

// UpdateTokenExpiresAt sets the "token_expires_at" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateTokenExpiresAt() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateTokenExpiresAt()
	})
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (u *IntegrationUpsertBulk) ClearTokenExpiresAt() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearTokenExpiresAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *IntegrationUpsertBulk) SetMetadata(v map[string]interface{}) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateMetadata() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *IntegrationUpsertBulk) ClearMetadata() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearMetadata()
	})
}

// SetIsActive sets the "is_active" field.
func (u *IntegrationUpsertBulk) SetIsActive(v bool) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateIsActive() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntegrationUpsertBulk) SetUpdatedAt(v time.Time) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateUpdatedAt() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IntegrationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IntegrationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntegrationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntegrationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
