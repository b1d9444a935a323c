package service

import (
	"context"
	"fmt"

	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/transform"
)

// News returns up to NewsLimit items, newest first.
func (s *dashboardService) News(ctx context.Context) (*models.NewsFeed, error) {
	docs, err := s.news.Latest(ctx, NewsLimit)
	if err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}
	if len(docs) > NewsLimit {
		docs = docs[:NewsLimit]
	}

	feed := transform.News(s.news.Variant(), docs)
	return &feed, nil
}
