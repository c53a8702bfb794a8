// Package environment resolves the application environment (development,
// staging, production) from the process environment.
//
// It defines the typed string alias Environment with predefined constants
// Development, Staging and Production. The current environment is read once
// from the APP_ENV variable through pkg/config and cached; the convenience
// predicates IsDevelopment, IsStaging and IsProduction query it.
//
// The redux core uses IsProduction to gate non-fatal developer diagnostics,
// the same role NODE_ENV plays for the JavaScript ecosystem. Unknown or
// missing values resolve to Development, so diagnostics stay on unless an
// application opts into production explicitly.
//
// # Usage
//
//	if environment.IsProduction() {
//	    // skip expensive diagnostics
//	}
//
// Tests can pin the environment without touching process state:
//
//	environment.Set(environment.Production)
//	defer environment.Set("")
package environment
