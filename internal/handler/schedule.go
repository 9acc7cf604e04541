package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

func scheduleCacheKey(date domain.Date) string {
	return fmt.Sprintf("schedule_%s", date)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	date := r.Context().Value(DateCtxKey).(domain.Date)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	// The view is cached per date; any cache failure falls through to the
	// store, the engine itself never caches.
	cached, err := h.redisClient.Get(ctx, scheduleCacheKey(date)).Result()
	if err == nil {
		view := &domain.ScheduleView{}
		if err := json.Unmarshal([]byte(cached), view); err == nil {
			h.successResponse(w, r, "schedule retrieved", view)
			return
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("failed to read schedule view cache", "date", date.String(), "error", err)
	}

	view, err := h.planner.GetSchedule(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if data, err := json.Marshal(view); err == nil {
		ttl := time.Duration(h.config.Redis.ScheduleCacheTTL) * time.Second
		if err := h.redisClient.Set(ctx, scheduleCacheKey(date), data, ttl).Err(); err != nil {
			slog.Warn("failed to cache schedule view", "date", date.String(), "error", err)
		}
	}

	h.successResponse(w, r, "schedule retrieved", view)
}

func (h *Handler) invalidateScheduleCache(date domain.Date) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, scheduleCacheKey(date)).Err(); err != nil {
		slog.Warn("failed to invalidate schedule view cache", "date", date.String(), "error", err)
	}
}
