// Package version wraps Masterminds/semver with the npm-flavoured helpers the
// preflight checks need: coercing a loose range such as "^16.5.2" into a
// concrete version, and testing a version against a constraint.
package version
