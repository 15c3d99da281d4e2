// service/access_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	"github.com/rohanverma/dashgate/accesscontrol/provider"
	"github.com/rohanverma/dashgate/audit"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
	"github.com/rohanverma/dashgate/pdp"
)

// IAccessService defines the access-check call site
type IAccessService interface {
	// CheckAccess runs the attribute-retrieval pass for a resource and asks
	// the decision point whether the subject may perform the action. It
	// returns nil on permit, ErrAccessDenied on deny and
	// ErrNoApplicablePolicy when no rule governs the request.
	CheckAccess(ctx context.Context, resource attribute.Resource, subject []attribute.PrincipalAttribute, action string) error
}

// AccessService wires attribute providers to the policy decision point.
type AccessService struct {
	providers     []provider.AttributeProvider
	decisionPoint pdp.PolicyDecisionPoint
	auditService  audit.Service
}

func NewAccessService(providers []provider.AttributeProvider, decisionPoint pdp.PolicyDecisionPoint, auditService audit.Service) *AccessService {
	return &AccessService{
		providers:     providers,
		decisionPoint: decisionPoint,
		auditService:  auditService,
	}
}

func (s *AccessService) CheckAccess(ctx context.Context, resource attribute.Resource, subject []attribute.PrincipalAttribute, action string) error {
	for _, attributeProvider := range s.providers {
		if err := attributeProvider.OnAttributeRetrieval(ctx, resource, subject); err != nil {
			// No partial permission list reaches the decision point: a
			// partial list risks a false deny or a false permit.
			logger.Error("Attribute retrieval failed",
				zap.Error(err),
				zap.String("resource", resource.Name()),
				zap.String("action", action))
			return err
		}
	}

	decision, err := s.decisionPoint.Authorize(ctx, resource, action)
	if err != nil {
		return err
	}

	granted := decision.Applicable && decision.Value == model.StatePermit
	s.logDecision(ctx, resource, subject, action, decision, granted)

	if !decision.Applicable {
		return dashgate_errors.ErrNoApplicablePolicy
	}
	if !granted {
		return dashgate_errors.ErrAccessDenied
	}
	return nil
}

func (s *AccessService) logDecision(ctx context.Context, resource attribute.Resource, subject []attribute.PrincipalAttribute, action string, decision pdp.Decision, granted bool) {
	userID := ""
	for _, principal := range subject {
		if principal.Kind == attribute.KindUser {
			userID = principal.Identifier()
			break
		}
	}

	auditLog := audit.AuditLog{
		Timestamp:     time.Now(),
		UserID:        userID,
		Action:        action,
		ResourceID:    resource.Name(),
		AccessGranted: granted,
		Decision:      decision.Reason,
	}
	if err := s.auditService.LogAccess(ctx, auditLog); err != nil {
		logger.Error("Failed to write access audit log", zap.Error(err))
	}
}

// IsAccessDenied reports whether err is a plain denial rather than a
// configuration or infrastructure failure.
func IsAccessDenied(err error) bool {
	return errors.Is(err, dashgate_errors.ErrAccessDenied)
}
