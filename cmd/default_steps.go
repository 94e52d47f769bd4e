package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/pelletier/go-toml/v2"
)

// defaultStepsFile is the layout of the default checklist file:
//
//	[[step]]
//	description = "Review order details and requirements"
//
//	[[step]]
//	description = "Send preview to customer"
//	optional = true
type defaultStepsFile struct {
	Steps []services.DefaultStep `toml:"step"`
}

// LoadDefaultSteps reads the fallback checklist from a TOML file. An empty
// path returns nil and the built-in steps apply.
func LoadDefaultSteps(path string) ([]services.DefaultStep, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read default checklist %s: %w", path, err)
	}
	return ParseDefaultSteps(data)
}

func ParseDefaultSteps(data []byte) ([]services.DefaultStep, error) {
	var file defaultStepsFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("default checklist", err)
	}

	if len(file.Steps) == 0 {
		return nil, errs.NewValueIsRequiredError("default checklist steps")
	}
	var stepErrs []error
	for i, step := range file.Steps {
		if strings.TrimSpace(step.Description) == "" {
			stepErrs = append(stepErrs, errs.NewValueIsRequiredError(fmt.Sprintf("step %d description", i+1)))
		}
	}
	if err := errors.Join(stepErrs...); err != nil {
		return nil, err
	}
	return file.Steps, nil
}
