package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

// ChooseConfig asks for a config file. Cancelling returns an empty path and
// no error.
func ChooseConfig() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open field config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}

	log.Printf("using config %v", filename)
	return filename, nil
}

// ShowError reports a fatal error in a dialog, for sessions started from a
// desktop launcher where stderr is not visible.
func ShowError(err error) {
	if dialogErr := zenity.Error(err.Error(), zenity.Title("radialfield"), zenity.ErrorIcon); dialogErr != nil {
		log.Printf("error dialog: %v", dialogErr)
	}
}
