package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/logger"
)

// InitMessagePermissions installs the conversation visibility rules: clients
// read public messages, admins inherit that and also read internal notes.
func InitMessagePermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		{vo.ViewerClient.String(), string(ticket.AudiencePublic), ActionRead},
		{vo.ViewerAdmin.String(), string(ticket.AudienceInternal), ActionRead},
	}

	for _, policy := range policies {
		if _, err := enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add message permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if _, err := enforcer.AddGroupingPolicy(vo.ViewerAdmin.String(), vo.ViewerClient.String()); err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}

	log.Debugw("message permissions initialized", "policies", len(policies))
	return nil
}
