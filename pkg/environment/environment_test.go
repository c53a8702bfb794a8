package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tedyhy/redux/pkg/environment"
)

func TestSetOverridesCurrent(t *testing.T) {
	defer environment.Set("")

	environment.Set(environment.Production)
	assert.Equal(t, environment.Production, environment.Current())
	assert.True(t, environment.IsProduction())
	assert.False(t, environment.IsDevelopment())

	environment.Set(environment.Staging)
	assert.True(t, environment.IsStaging())

	environment.Set(environment.Development)
	assert.True(t, environment.IsDevelopment())
}

func TestNormalizationOfShortNames(t *testing.T) {
	defer environment.Set("")

	environment.Set("prod")
	assert.Equal(t, environment.Production, environment.Current())

	environment.Set("stage")
	assert.Equal(t, environment.Staging, environment.Current())

	environment.Set("something-else")
	assert.Equal(t, environment.Development, environment.Current())
}

func TestCurrentResolvesToKnownValue(t *testing.T) {
	defer environment.Set("")

	environment.Set("")
	env := environment.Current()
	assert.Contains(t, []environment.Environment{
		environment.Development,
		environment.Staging,
		environment.Production,
	}, env)
}
