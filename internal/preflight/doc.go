// Package preflight runs the checks that gate a plugin build or dev-server
// start. Each check returns nil or a *Error describing what is wrong with the
// project; the Pipeline runs them in a fixed order, reports findings through a
// Reporter and stops at the first fatal one. Nothing in this package exits the
// process.
//
// The checks, in order:
//
//   - app config: public/appConfig.js must exist
//   - public dir sync: public/index.html is rewritten from the bundled template
//   - external dependencies: react and react-dom must match the versions
//     @twilio/flex-ui declares
//   - plugin count: src/index.* must call loadPlugin exactly once
//   - TypeScript: typed projects need the compiler and a tsconfig.json
//   - registry: the plugin is recorded in the local plugin registry
package preflight
