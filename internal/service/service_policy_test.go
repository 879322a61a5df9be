package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/models"
)

func TestPolicyService_GetPolicy_ReturnsConfiguredPolicy(t *testing.T) {
	policy := models.MasterPasswordPolicy{
		MinComplexity: 3,
		MinLength:     16,
	}
	svc := NewPolicyService(policy, logger.Nop())

	got := svc.GetPolicy(context.Background())
	assert.Equal(t, policy, got)
}

func TestDefaultMasterPasswordPolicy(t *testing.T) {
	policy := DefaultMasterPasswordPolicy()

	assert.Equal(t, 2, policy.MinComplexity)
	assert.Equal(t, 12, policy.MinLength)
}
