package actors

import (
	"fmt"
	"strconv"

	users_middleware "jobtracker/internal/features/users/middleware"
	users_models "jobtracker/internal/features/users/models"
	users_repositories "jobtracker/internal/features/users/repositories"
	cache_utils "jobtracker/internal/util/cache"
	"jobtracker/internal/util/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ActorService struct {
	actorRepository *ActorRepository
	userRepository  *users_repositories.UserRepository

	actorCacheUtil *cache_utils.CacheUtil[ActorContext]
	singleflight   singleflight.Group
}

// ResolveActorContext loads the role and group memberships of userID. Unknown
// and soft-deleted users resolve to the anonymous context.
//
// Cached contexts live under the user's current generation. Invalidate bumps
// it, so a load that raced an invalidation writes under a key nobody reads.
func (s *ActorService) ResolveActorContext(userID *uuid.UUID) (*ActorContext, error) {
	if userID == nil {
		return Anonymous(), nil
	}

	generation, err := s.actorCacheUtil.Generation(userID.String())
	if err != nil {
		logger.GetLogger().Warn("actor cache generation unavailable, loading from database", "error", err)
		return s.loadActorContext(*userID)
	}

	cacheKey := userID.String() + ":" + strconv.FormatInt(generation, 10)

	if cached := s.actorCacheUtil.Get(cacheKey); cached != nil {
		return normalize(cached), nil
	}

	result, err, _ := s.singleflight.Do(cacheKey, func() (any, error) {
		return s.loadActorContext(*userID)
	})
	if err != nil {
		return nil, err
	}

	actor, ok := result.(*ActorContext)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to ActorContext")
	}

	s.actorCacheUtil.Set(cacheKey, actor)

	// singleflight shares the pointer between waiters
	copied := *actor
	copied.GroupIDs = append([]uuid.UUID{}, actor.GroupIDs...)

	return &copied, nil
}

// ResolveForUser resolves the authenticated user set by the auth middleware.
func (s *ActorService) ResolveForUser(user *users_models.User) (*ActorContext, error) {
	if user == nil {
		return Anonymous(), nil
	}

	return s.ResolveActorContext(&user.ID)
}

// ResolveFromContext resolves the user stored on the request by the auth
// middleware. Requests without one resolve to the anonymous context.
func (s *ActorService) ResolveFromContext(ctx *gin.Context) (*ActorContext, error) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	return s.ResolveForUser(user)
}

func (s *ActorService) Invalidate(userIDs ...uuid.UUID) {
	keys := make([]string, len(userIDs))
	for i, userID := range userIDs {
		keys[i] = userID.String()
	}

	if err := s.actorCacheUtil.BumpGeneration(keys...); err != nil {
		logger.GetLogger().Error("failed to invalidate actor contexts", "users", keys, "error", err)
	}
}

func (s *ActorService) loadActorContext(userID uuid.UUID) (*ActorContext, error) {
	user, err := s.userRepository.FindActiveUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return Anonymous(), nil
	}

	groupIDs, err := s.actorRepository.GetGroupIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group memberships: %w", err)
	}

	return &ActorContext{
		UserID:   &user.ID,
		GroupIDs: groupIDs,
		IsAdmin:  user.IsAdmin(),
	}, nil
}

func normalize(actor *ActorContext) *ActorContext {
	if actor.GroupIDs == nil {
		actor.GroupIDs = []uuid.UUID{}
	}

	return actor
}
