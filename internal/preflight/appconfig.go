package preflight

import (
	"github.com/spf13/afero"
)

// CheckAppConfig fails when public/appConfig.js is missing.
func CheckAppConfig(fsys afero.Fs, s Settings) error {
	ok, err := afero.Exists(fsys, s.Project.AppConfig)
	if err != nil {
		return fatal(ConfigurationMissing, "could not check %s", s.Project.AppConfig).wrap(err)
	}
	if !ok {
		return fatal(ConfigurationMissing, "%s was not found", s.Project.AppConfig).
			withSuggestion("Copy public/appConfig.example.js to public/appConfig.js and set your account details.")
	}
	return nil
}
