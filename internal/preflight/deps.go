package preflight

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/flex-plugins/flex-plugin/internal/manifest"
	"github.com/flex-plugins/flex-plugin/internal/paths"
	"github.com/flex-plugins/flex-plugin/internal/version"
)

// PackagesToVerify are the peer packages whose installed version must match
// what @twilio/flex-ui declares.
var PackagesToVerify = []string{"react", "react-dom"}

// UnbundledReactMinVersion is the first Flex UI release that supports a
// plugin bringing its own React.
const UnbundledReactMinVersion = ">=1.19.0"

// InstalledVersionFunc returns the installed version of a package.
type InstalledVersionFunc func(name string) (string, error)

// InstalledFrom reads installed versions from the project's node_modules.
func InstalledFrom(fsys afero.Fs, p paths.Project) InstalledVersionFunc {
	return func(name string) (string, error) {
		return manifest.InstalledVersion(fsys, p.PackageManifest(name))
	}
}

// VerifyPackageVersion compares the installed version of name with the
// version host declares for it. The declared range is coerced to a concrete
// version and the two must be equal as strings; range satisfaction is not
// enough.
//
// A nil return means the package passes. A non-nil *Error with Fatal unset
// is a warning the caller should print before moving on.
func VerifyPackageVersion(host *manifest.PackageDescriptor, name string, installed InstalledVersionFunc, allowSkip, allowUnbundledReact bool) error {
	declared, ok := host.Dependency(name)
	if !ok {
		return fatal(DependencyNotFound, "expected %s to declare a dependency on %s", paths.FlexUIPackage, name).
			withSuggestion("Reinstall %s and try again.", paths.FlexUIPackage)
	}

	required, err := version.CoerceString(declared)
	if err != nil {
		required = declared
	}

	got, err := installed(name)
	if err != nil {
		return fatal(ManifestUnreadable, "could not read the installed version of %s", name).
			withDetail("%v", err).
			withSuggestion("Run npm install and try again.").
			wrap(err)
	}

	if required == got {
		return nil
	}

	var e *Error
	if allowUnbundledReact {
		if supportsUnbundledReact(host.Version) {
			return nil
		}
		e = &Error{
			Kind:    UnbundledReactMismatch,
			Message: fmt.Sprintf("%s %s does not support unbundled React, but %s %s is installed", paths.FlexUIPackage, host.Version, name, got),
		}
		e.withSuggestion("Upgrade %s to a version matching %s, or unset UNBUNDLED_REACT.", paths.FlexUIPackage, UnbundledReactMinVersion)
	} else {
		e = &Error{
			Kind:    VersionMismatch,
			Message: fmt.Sprintf("%s %s is installed, but %s requires %s", name, got, paths.FlexUIPackage, required),
		}
		e.withSuggestion("Install %s@%s, or set SKIP_PREFLIGHT_CHECK=true to ignore this check.", name, required)
	}
	e.Fatal = !allowSkip
	return e
}

func supportsUnbundledReact(hostVersion string) bool {
	ok, err := version.Satisfies(hostVersion, UnbundledReactMinVersion)
	return err == nil && ok
}

// CheckExternalDeps verifies every package in PackagesToVerify against the
// installed @twilio/flex-ui manifest. Warnings are sent to r and checking
// continues; the first fatal finding is returned.
func CheckExternalDeps(fsys afero.Fs, s Settings, r Reporter) error {
	host, err := manifest.Read(fsys, s.Project.FlexUIManifest())
	if err != nil {
		return fatal(ManifestUnreadable, "could not read the %s package manifest", paths.FlexUIPackage).
			withDetail("%v", err).
			withSuggestion("Run npm install and try again.").
			wrap(err)
	}

	installed := InstalledFrom(fsys, s.Project)
	for _, name := range PackagesToVerify {
		err := VerifyPackageVersion(host, name, installed, s.AllowSkip, s.AllowUnbundledReact)
		if err == nil {
			continue
		}
		var pe *Error
		if errors.As(err, &pe) && !pe.Fatal {
			r.Report(pe)
			continue
		}
		return err
	}
	return nil
}
