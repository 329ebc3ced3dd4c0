// Package scaffold holds the files the CLI writes into a plugin project: the
// public/index.html dev host page, refreshed on every start, and the default
// tsconfig.json created for TypeScript projects that lack one. Templates are
// embedded in the binary.
package scaffold
