package service

import (
	"context"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/models"
)

// policyService serves a fixed master-password policy decided at startup.
// Per-org policy management would replace the static value with a lookup.
type policyService struct {
	policy models.MasterPasswordPolicy
	logger *logger.Logger
}

// DefaultMasterPasswordPolicy is the policy served when the deployment does
// not override it.
func DefaultMasterPasswordPolicy() models.MasterPasswordPolicy {
	return models.MasterPasswordPolicy{
		MinComplexity: 2,
		MinLength:     12,
	}
}

// NewPolicyService constructs a PolicyService serving the given policy.
func NewPolicyService(policy models.MasterPasswordPolicy, logger *logger.Logger) PolicyService {
	return &policyService{
		policy: policy,
		logger: logger,
	}
}

// GetPolicy returns the org master-password policy.
func (s *policyService) GetPolicy(_ context.Context) models.MasterPasswordPolicy {
	return s.policy
}
