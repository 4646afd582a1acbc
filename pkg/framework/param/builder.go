package param

// Builder provides a fluent API for creating parameters.
type Builder struct {
	param *Parameter
}

// New creates a new parameter builder.
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:   id,
			Name: name,
			Min:  0,
			Max:  1,
		},
	}
}

// Range sets the min and max values.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default value (in the plain range, not normalized).
func (b *Builder) Default(value float64) *Builder {
	b.param.DefaultValue = value
	return b
}

// Unit sets the unit string.
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Steps marks the parameter as discrete with the given number of steps.
func (b *Builder) Steps(count int32) *Builder {
	b.param.StepCount = count
	return b
}

// Build returns the configured parameter, initialized to its default.
func (b *Builder) Build() *Parameter {
	b.param.Set(b.param.DefaultValue)
	return b.param
}
