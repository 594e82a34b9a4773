package menu

import (
	"errors"
	"fmt"
)

// ErrOutsideMenu is wrapped by every ConfigError.
var ErrOutsideMenu = errors.New("menu components must be used inside a mounted menu")

// ConfigError reports a component used outside its required menu context.
// It is raised with panic: it signals a programming mistake, not a runtime
// condition.
type ConfigError struct {
	Component string
	Reason    string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Component, ErrOutsideMenu)
	}
	return fmt.Sprintf("%s: %v: %s", e.Component, ErrOutsideMenu, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrOutsideMenu }

func configPanic(component, reason string) {
	panic(&ConfigError{Component: component, Reason: reason})
}
