package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/progress-analytics-api/internal/models"
	"github.com/noah-isme/progress-analytics-api/internal/stats"
	"github.com/noah-isme/progress-analytics-api/pkg/config"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
)

type courseReader interface {
	Find(ctx context.Context, id int64) (*models.Course, error)
}

type activityLister interface {
	ListByCourse(ctx context.Context, courseID int64) ([]models.Activity, error)
}

type quizReader interface {
	ListVisibleByCourse(ctx context.Context, courseID int64) ([]models.Quiz, error)
	FinishedAttempts(ctx context.Context, quizID, userID int64) ([]models.QuizAttempt, error)
}

type gradebookReader interface {
	QuizGrade(ctx context.Context, quizID, userID int64) (*models.QuizGradeRecord, error)
}

type enrollmentLister interface {
	ListQuizParticipants(ctx context.Context, courseID int64) ([]int64, error)
}

type activityClassifier interface {
	IsComplete(ctx context.Context, activity models.Activity, userID int64) (bool, error)
}

// ProgressService computes per-user and course-wide quiz progress metrics
// with a two-key cache: one entry per (course, user) holding the assembled
// response and one entry per course holding the comparison baseline.
type ProgressService struct {
	courses     courseReader
	activities  activityLister
	quizzes     quizReader
	gradebook   gradebookReader
	enrollments enrollmentLister
	classifier  activityClassifier
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger

	cfg            config.ProgressConfig
	allowedModules map[string]struct{}
}

// NewProgressService constructs the progress service.
func NewProgressService(
	courses courseReader,
	activities activityLister,
	quizzes quizReader,
	gradebook gradebookReader,
	enrollments enrollmentLister,
	classifier activityClassifier,
	cache *CacheService,
	metrics *MetricsService,
	cfg config.ProgressConfig,
	logger *zap.Logger,
) *ProgressService {
	allowed := make(map[string]struct{}, len(cfg.Modules))
	for _, m := range cfg.Modules {
		allowed[m] = struct{}{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{
		courses:        courses,
		activities:     activities,
		quizzes:        quizzes,
		gradebook:      gradebook,
		enrollments:    enrollments,
		classifier:     classifier,
		cache:          cache,
		metrics:        metrics,
		logger:         logger,
		cfg:            cfg,
		allowedModules: allowed,
	}
}

// CourseQuizMetrics returns the full metrics payload for one user in one
// course. The boolean indicates whether data originated from cache.
func (s *ProgressService) CourseQuizMetrics(ctx context.Context, userID, courseID int64) (*models.CourseQuizMetrics, bool, error) {
	course, err := s.courses.Find(ctx, courseID)
	if err != nil {
		return nil, false, err
	}
	if course == nil {
		return nil, false, appErrors.ErrCourseNotFound
	}

	cacheKey := userMetricsKey(courseID, userID)
	var cached models.CourseQuizMetrics
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get user metrics cache: %w", err)
		} else if hit {
			return &cached, true, nil
		}
	}

	quizzes, err := s.quizzes.ListVisibleByCourse(ctx, courseID)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	progress, err := s.aggregateProgress(ctx, userID, courseID)
	if err != nil {
		return nil, false, err
	}

	results, completedQuizzes, err := s.collectQuizResults(ctx, userID, quizzes)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("progress_user_aggregate", time.Since(start))
	}

	// Keep the summary informative when the module allow-list matched
	// nothing: fall back to raw quiz completion counts.
	if progress.Total == 0 {
		progress = progressSummary(completedQuizzes, len(quizzes))
	}

	metrics := &models.CourseQuizMetrics{
		Progress: progress,
		Results:  results,
	}

	if len(results) > 0 {
		grades := make([]float64, len(results))
		for i, r := range results {
			grades[i] = r.Grade
		}
		metrics.Comparison.StudentMean = stats.Round1(stats.Mean(grades))
	}

	baseline, err := s.courseBaseline(ctx, courseID, quizzes)
	if err != nil {
		return nil, false, err
	}

	if baseline.ParticipantCount >= s.cfg.MinParticipants && len(results) > 0 {
		metrics.Comparison.CourseMean = baseline.CourseMean
		metrics.Comparison.Percentile = stats.Percentile(metrics.Comparison.StudentMean, baseline.AllGrades)
		metrics.Comparison.HasComparison = true
	} else if baseline.ParticipantCount > 0 {
		// Comparison is still shown below the participant gate, just
		// without a percentile.
		metrics.Comparison.CourseMean = baseline.CourseMean
		metrics.Comparison.HasComparison = true
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, metrics, s.cfg.UserCacheTTL); err != nil {
			s.logger.Warn("cache user metrics", zap.Error(err))
		}
	}

	return metrics, false, nil
}

// Baseline returns the course comparison baseline, cached course-wide.
func (s *ProgressService) Baseline(ctx context.Context, courseID int64) (*models.CourseBaseline, error) {
	course, err := s.courses.Find(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, appErrors.ErrCourseNotFound
	}

	quizzes, err := s.quizzes.ListVisibleByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return s.courseBaseline(ctx, courseID, quizzes)
}

// Invalidate drops the cached state touched by a data change: the course
// baseline, because it depends on every participant, and every user-scoped
// entry in the course, because each assembled payload embeds that baseline.
func (s *ProgressService) Invalidate(ctx context.Context, userID, courseID int64) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, userMetricsKey(courseID, userID), courseMetricsKey(courseID)); err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, userMetricsPattern(courseID))
}

// aggregateProgress classifies completion across the configured activity
// modules. Activities outside the allow-list, and hidden ones unless
// configured otherwise, are excluded from both counts.
func (s *ProgressService) aggregateProgress(ctx context.Context, userID, courseID int64) (models.ProgressSummary, error) {
	activities, err := s.activities.ListByCourse(ctx, courseID)
	if err != nil {
		return models.ProgressSummary{}, err
	}

	completed := 0
	total := 0
	for _, activity := range activities {
		if !s.cfg.IncludeHidden && !activity.Visible {
			continue
		}
		if _, ok := s.allowedModules[activity.Module]; !ok {
			continue
		}
		total++

		done, err := s.classifier.IsComplete(ctx, activity, userID)
		if err != nil {
			return models.ProgressSummary{}, err
		}
		if done {
			completed++
		}
	}

	return progressSummary(completed, total), nil
}

// collectQuizResults resolves one display grade per quiz the user finished.
// Resolution order: gradebook entry on the item's own scale, then the latest
// attempt's mark ratio, then an explicit zero so completion stays visible.
func (s *ProgressService) collectQuizResults(ctx context.Context, userID int64, quizzes []models.Quiz) ([]models.QuizResult, int, error) {
	results := make([]models.QuizResult, 0, len(quizzes))
	completedQuizzes := 0

	for _, quiz := range quizzes {
		attempts, err := s.quizzes.FinishedAttempts(ctx, quiz.ID, userID)
		if err != nil {
			return nil, 0, err
		}
		if len(attempts) == 0 {
			continue
		}
		completedQuizzes++
		last := attempts[len(attempts)-1]

		record, err := s.gradebook.QuizGrade(ctx, quiz.ID, userID)
		if err != nil {
			return nil, 0, err
		}
		if record != nil {
			// An entry with a null grade is counted complete but
			// produces no result row.
			if record.Grade != nil {
				results = append(results, models.QuizResult{
					QuizID: quiz.ID,
					Name:   quiz.Name,
					Grade:  stats.Round1(stats.NormalizeGrade(*record.Grade, record.GradeMin, record.GradeMax)),
					Date:   last.TimeFinish,
				})
			}
			continue
		}

		if last.SumGrades != nil && quiz.SumGrades > 0 {
			results = append(results, models.QuizResult{
				QuizID: quiz.ID,
				Name:   quiz.Name,
				Grade:  stats.Round1(*last.SumGrades / quiz.SumGrades * 100),
				Date:   last.TimeFinish,
			})
			continue
		}

		results = append(results, models.QuizResult{
			QuizID: quiz.ID,
			Name:   quiz.Name,
			Grade:  0,
			Date:   last.TimeFinish,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date < results[j].Date
	})

	return results, completedQuizzes, nil
}

// courseBaseline returns the cached course-wide aggregate, computing it on
// miss. The computation is O(participants x quizzes) and its cost does not
// depend on which user triggered it, hence the course-scoped cache entry.
func (s *ProgressService) courseBaseline(ctx context.Context, courseID int64, quizzes []models.Quiz) (*models.CourseBaseline, error) {
	cacheKey := courseMetricsKey(courseID)
	var cached models.CourseBaseline
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, fmt.Errorf("get course metrics cache: %w", err)
		} else if hit {
			return &cached, nil
		}
	}

	start := time.Now()
	baseline, err := s.aggregateCourse(ctx, courseID, quizzes)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("progress_course_aggregate", time.Since(start))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, baseline, s.cfg.CourseCacheTTL); err != nil {
			s.logger.Warn("cache course metrics", zap.Error(err))
		}
	}

	return baseline, nil
}

func (s *ProgressService) aggregateCourse(ctx context.Context, courseID int64, quizzes []models.Quiz) (*models.CourseBaseline, error) {
	participants, err := s.enrollments.ListQuizParticipants(ctx, courseID)
	if err != nil {
		return nil, err
	}

	allGrades := make([]float64, 0, len(participants))
	for _, participantID := range participants {
		grades, err := s.participantGrades(ctx, participantID, quizzes)
		if err != nil {
			return nil, err
		}
		if len(grades) > 0 {
			allGrades = append(allGrades, stats.Mean(grades))
		}
	}

	baseline := &models.CourseBaseline{
		AllGrades:        allGrades,
		ParticipantCount: len(allGrades),
	}
	if len(allGrades) > 0 {
		baseline.CourseMean = stats.Round1(stats.Mean(allGrades))
	}
	return baseline, nil
}

// participantGrades mirrors the per-user grade resolution, unrounded, for
// the baseline sample.
func (s *ProgressService) participantGrades(ctx context.Context, userID int64, quizzes []models.Quiz) ([]float64, error) {
	var grades []float64
	for _, quiz := range quizzes {
		attempts, err := s.quizzes.FinishedAttempts(ctx, quiz.ID, userID)
		if err != nil {
			return nil, err
		}
		if len(attempts) == 0 {
			continue
		}
		last := attempts[len(attempts)-1]

		record, err := s.gradebook.QuizGrade(ctx, quiz.ID, userID)
		if err != nil {
			return nil, err
		}
		if record != nil {
			if record.Grade != nil {
				grades = append(grades, stats.NormalizeGrade(*record.Grade, record.GradeMin, record.GradeMax))
			}
			continue
		}

		if last.SumGrades != nil && quiz.SumGrades > 0 {
			grades = append(grades, *last.SumGrades/quiz.SumGrades*100)
			continue
		}

		grades = append(grades, 0)
	}
	return grades, nil
}

func progressSummary(completed, total int) models.ProgressSummary {
	summary := models.ProgressSummary{Completed: completed, Total: total}
	if total > 0 {
		summary.Percentage = stats.Round1(float64(completed) / float64(total) * 100)
	}
	return summary
}

func userMetricsKey(courseID, userID int64) string {
	return fmt.Sprintf("progress:usermetrics:%d:%d", courseID, userID)
}

func userMetricsPattern(courseID int64) string {
	return fmt.Sprintf("progress:usermetrics:%d:*", courseID)
}

func courseMetricsKey(courseID int64) string {
	return fmt.Sprintf("progress:coursemetrics:%d", courseID)
}
