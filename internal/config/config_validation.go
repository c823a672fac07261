// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// requiredSettings lists the keys that have no default and must be supplied
// by the flags, the environment or the config file.
var requiredSettings = []string{"USERNAME", "PASSWORD"}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Every missing required setting is reported, each as an error
// wrapping [ErrMissingRequiredSetting] that names the key and how to set it.
func (cfg *StructuredConfig) validate() error {
	var errs []error
	for _, key := range requiredSettings {
		if _, ok := cfg.Get(key); !ok {
			errs = append(errs, fmt.Errorf("%w: you must set the %s environment variable or add it to %s",
				ErrMissingRequiredSetting, key, DefaultJSONFileName))
		}
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.TokenDuration < 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	return errors.Join(errs...)
}
