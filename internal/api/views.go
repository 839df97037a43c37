package api

import (
	"context"
	"time"

	"pagehub/internal/models"
	"pagehub/internal/subscription"
)

// buildUserView assembles the outward serialization of a user: effective
// subscription status (a lapsed paid subscription reads as expired) plus the
// current non-deleted page count. The stored row is never mutated by a read.
func buildUserView(user *models.User, pageCount int, now time.Time) models.UserView {
	return models.UserView{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Role:               user.Role,
		Status:             user.Status,
		SubscriptionStatus: subscription.EffectiveStatus(user.SubscriptionStatus, user.SubscriptionExpiry, now),
		SubscriptionExpiry: user.SubscriptionExpiry,
		PageCount:          pageCount,
		CreatedAt:          user.CreatedAt,
	}
}

func (s *Server) userView(ctx context.Context, user *models.User) (models.UserView, error) {
	count, err := s.store.CountActivePages(ctx, user.ID)
	if err != nil {
		return models.UserView{}, err
	}
	return buildUserView(user, count, time.Now()), nil
}
