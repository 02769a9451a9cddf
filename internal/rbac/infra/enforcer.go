package infra

import (
	"fmt"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer builds a casbin enforcer from the RBAC model file. Policies
// are not file-backed; the service loads them from the database afterwards.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load rbac model %s: %w", modelPath, err)
	}
	return e, nil
}
