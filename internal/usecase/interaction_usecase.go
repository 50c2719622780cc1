package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/repo/persistent"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// LikeCounter is the display counter for likes. It is adjusted in step
// with toggles and not re-verified against the store on every read; the
// interaction rows remain the source of truth.
type LikeCounter interface {
	Get(ctx context.Context, postID string) (count int64, ok bool, err error)
	Set(ctx context.Context, postID string, count int64) error
	Incr(ctx context.Context, postID string) error
	Decr(ctx context.Context, postID string) error
}

type redisLikeCounter struct {
	client *redis.Client
}

func NewRedisLikeCounter(client *redis.Client) LikeCounter {
	return &redisLikeCounter{client: client}
}

func likeCountKey(postID string) string {
	return fmt.Sprintf("post:likes:%s", postID)
}

func (c *redisLikeCounter) Get(ctx context.Context, postID string) (int64, bool, error) {
	val, err := c.client.Get(ctx, likeCountKey(postID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	count, _ := strconv.ParseInt(val, 10, 64)
	return count, true, nil
}

func (c *redisLikeCounter) Set(ctx context.Context, postID string, count int64) error {
	return c.client.Set(ctx, likeCountKey(postID), count, 0).Err()
}

func (c *redisLikeCounter) Incr(ctx context.Context, postID string) error {
	return c.client.Incr(ctx, likeCountKey(postID)).Err()
}

func (c *redisLikeCounter) Decr(ctx context.Context, postID string) error {
	return c.client.Decr(ctx, likeCountKey(postID)).Err()
}

type InteractionUseCase interface {
	GetLikeState(ctx context.Context, postID, viewerID string) (*entity.LikeState, error)
	GetSaveState(ctx context.Context, postID, viewerID string) (*entity.SaveState, error)
	ToggleLike(ctx context.Context, postID, viewerID string) (*entity.LikeState, error)
	ToggleSave(ctx context.Context, postID, viewerID string) (*entity.SaveState, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	postRepo        persistent.PostRepository
	counter         LikeCounter
	queueClient     *queue.Client
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	postRepo persistent.PostRepository,
	counter LikeCounter,
	queueClient *queue.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		counter:         counter,
		queueClient:     queueClient,
		logger:          logger,
	}
}

// GetLikeState reports the viewer-scoped like view of a post. An absent
// viewer always reads liked=false; the count is computed either way.
func (uc *interactionUseCase) GetLikeState(ctx context.Context, postID, viewerID string) (*entity.LikeState, error) {
	count, err := uc.likeCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := false
	if viewerID != "" {
		liked, err = uc.interactionRepo.IsLiked(postID, viewerID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
		}
	}

	return &entity.LikeState{Liked: liked, Count: count}, nil
}

func (uc *interactionUseCase) GetSaveState(ctx context.Context, postID, viewerID string) (*entity.SaveState, error) {
	if viewerID == "" {
		return &entity.SaveState{Saved: false}, nil
	}

	saved, err := uc.interactionRepo.IsSaved(postID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}
	return &entity.SaveState{Saved: saved}, nil
}

// ToggleLike flips the viewer's like on a post. Toggles fired before a
// prior round trip finishes are not serialized; the unique (post, user)
// index rejects the loser, and a rejected insert adjusts neither the
// liked flag nor the counter.
func (uc *interactionUseCase) ToggleLike(ctx context.Context, postID, viewerID string) (*entity.LikeState, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: liking a post needs a signed-in user", entity.ErrAuthRequired)
	}

	liked, err := uc.interactionRepo.IsLiked(postID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	// Warm the counter from the store before adjusting it. An Incr or
	// Decr on a cold key (eviction, restart) would otherwise fabricate a
	// count of 1 or -1 and serve it from then on.
	if _, err := uc.likeCount(ctx, postID); err != nil {
		return nil, err
	}

	if liked {
		if err := uc.interactionRepo.DeleteLike(postID, viewerID); err != nil {
			return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
		}
		if err := uc.counter.Decr(ctx, postID); err != nil {
			uc.logger.Warn("Failed to decrement like counter for post %s: %v", postID, err)
		}

		count, err := uc.likeCount(ctx, postID)
		if err != nil {
			return nil, err
		}
		return &entity.LikeState{Liked: false, Count: count}, nil
	}

	if err := uc.interactionRepo.CreateLike(postID, viewerID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent toggle won the race. The record exists, the
			// counter was already bumped by the winner; leave both alone.
			count, countErr := uc.likeCount(ctx, postID)
			if countErr != nil {
				return nil, countErr
			}
			return &entity.LikeState{Liked: true, Count: count}, nil
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	if err := uc.counter.Incr(ctx, postID); err != nil {
		uc.logger.Warn("Failed to increment like counter for post %s: %v", postID, err)
	}

	uc.notifyLiked(postID, viewerID)

	count, err := uc.likeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &entity.LikeState{Liked: true, Count: count}, nil
}

func (uc *interactionUseCase) ToggleSave(ctx context.Context, postID, viewerID string) (*entity.SaveState, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: saving a post needs a signed-in user", entity.ErrAuthRequired)
	}

	saved, err := uc.interactionRepo.IsSaved(postID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	if saved {
		if err := uc.interactionRepo.DeleteSave(postID, viewerID); err != nil {
			return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
		}
		return &entity.SaveState{Saved: false}, nil
	}

	if err := uc.interactionRepo.CreateSave(postID, viewerID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &entity.SaveState{Saved: true}, nil
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	return &entity.SaveState{Saved: true}, nil
}

// likeCount reads the cached counter, falling back to a store count that
// warms the cache on a miss.
func (uc *interactionUseCase) likeCount(ctx context.Context, postID string) (int64, error) {
	count, ok, err := uc.counter.Get(ctx, postID)
	if err == nil && ok {
		return count, nil
	}
	if err != nil {
		uc.logger.Warn("Like counter read failed for post %s: %v", postID, err)
	}

	count, err = uc.interactionRepo.CountLikes(postID)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	if err := uc.counter.Set(ctx, postID, count); err != nil {
		uc.logger.Warn("Failed to warm like counter for post %s: %v", postID, err)
	}
	return count, nil
}

func (uc *interactionUseCase) notifyLiked(postID, likerID string) {
	if uc.queueClient == nil {
		return
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil || post.UserID == likerID {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":     "like",
			"user_id":  post.UserID,
			"liker_id": likerID,
			"post_id":  postID,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish like notification for post %s: %v", postID, err)
		}
	}()
}
