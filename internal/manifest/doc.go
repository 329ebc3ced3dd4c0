// Package manifest reads npm package.json manifests: the plugin project's
// own manifest, the host @twilio/flex-ui manifest that declares the expected
// peer versions, and the manifests of installed peer packages.
package manifest
