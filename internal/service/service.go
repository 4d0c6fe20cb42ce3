package service

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

import (
	"github.com/DanRulev/codehero.git/internal/models"
	"go.uber.org/zap"
)

type CatalogI interface {
	Languages() []models.Language
	Language(id string) (models.Language, error)
	Lesson(language string, lessonID int) (models.Lesson, error)
}

type RepositoryI interface {
	ProgressRI
	StatsRI
	ProfileRI
}

type Service struct {
	*LessonS
	*ProfileS
	*RankingS
}

func InitServices(catalog CatalogI, repo RepositoryI, pointsPerCorrect int, log *zap.Logger) *Service {
	return &Service{
		LessonS:  NewLessonService(catalog, repo, repo, pointsPerCorrect, log),
		ProfileS: NewProfileService(catalog, repo, repo, repo, log),
		RankingS: NewRankingService(repo, repo, log),
	}
}
