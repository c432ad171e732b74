package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/engine"
	"github.com/srgjo27/package_pricing/internal/core/ports"
	"github.com/srgjo27/package_pricing/internal/platform/logger"
)

type RuleSetService struct {
	repo  ports.RuleSetRepository
	cache ports.RuleSetCache
	l     *logger.Logger
}

func NewRuleSetService(repo ports.RuleSetRepository, cache ports.RuleSetCache, l *logger.Logger) *RuleSetService {
	return &RuleSetService{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}

func parsePackageID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewInvalidRequest("package_id", "must be a uuid")
	}

	return id, nil
}

// SaveRuleSet normalizes raw and stores the result. Nothing is written when
// the rules do not validate.
func (s *RuleSetService) SaveRuleSet(ctx context.Context, packageIDStr string, raw domain.RawRuleSet) (*domain.RuleSet, error) {
	packageID, err := parsePackageID(packageIDStr)
	if err != nil {
		return nil, err
	}

	rs, err := engine.Normalize(raw)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, packageID, rs); err != nil {
		return nil, fmt.Errorf("save rule set for package %s: %w", packageID, err)
	}

	s.invalidate(ctx, packageID)

	// Reload so the caller sees slot ids and booked counts as stored.
	return s.load(ctx, packageID)
}

func (s *RuleSetService) GetRuleSet(ctx context.Context, packageIDStr string) (*domain.RuleSet, error) {
	packageID, err := parsePackageID(packageIDStr)
	if err != nil {
		return nil, err
	}

	return s.cached(ctx, packageID)
}

func (s *RuleSetService) DeleteRuleSet(ctx context.Context, packageIDStr string) error {
	packageID, err := parsePackageID(packageIDStr)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, packageID); err != nil {
		return fmt.Errorf("delete rule set for package %s: %w", packageID, err)
	}

	s.invalidate(ctx, packageID)

	return nil
}

// cached reads through the cache. Cache failures only cost a trip to the
// repository.
func (s *RuleSetService) cached(ctx context.Context, packageID uuid.UUID) (*domain.RuleSet, error) {
	rs, generation, cacheErr := s.cache.Get(ctx, packageID)
	if cacheErr != nil {
		s.l.LogWarn("Rule set cache read for %s failed: %v", packageID, cacheErr)
	}

	if rs != nil {
		return rs, nil
	}

	rs, err := s.load(ctx, packageID)
	if err != nil {
		return nil, err
	}

	// Without a generation from a successful read there is nothing to fence
	// the write against.
	if cacheErr != nil {
		return rs, nil
	}

	if err := s.cache.Set(ctx, packageID, rs, generation); err != nil {
		s.l.LogWarn("Rule set cache write for %s failed: %v", packageID, err)
	}

	return rs, nil
}

func (s *RuleSetService) load(ctx context.Context, packageID uuid.UUID) (*domain.RuleSet, error) {
	rs, err := s.repo.GetByPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("load rule set for package %s: %w", packageID, err)
	}

	return rs, nil
}

func (s *RuleSetService) invalidate(ctx context.Context, packageID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, packageID); err != nil {
		s.l.LogWarn("Rule set cache invalidation for %s failed: %v", packageID, err)
	}
}
