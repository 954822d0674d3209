package story

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dreamtale-api/internal/domain/entity"
	"dreamtale-api/internal/domain/repository"
	redisinfra "dreamtale-api/internal/infrastructure/persistence/redis"
	wfmodel "dreamtale-api/internal/workflow/model"
	"dreamtale-api/pkg/errors"
	"dreamtale-api/pkg/logger"
)

const storyCacheTTL = 10 * time.Minute

// Service 故事应用服务：编排生成流水线、编辑解析与持久化。
type Service struct {
	stories   repository.StoryRepository
	revisions repository.StoryRevisionRepository
	tx        repository.Transactor
	cache     *redisinfra.Cache
	generator *Generator
	resolver  *EditResolver
}

// NewService 创建故事应用服务
func NewService(
	stories repository.StoryRepository,
	revisions repository.StoryRevisionRepository,
	tx repository.Transactor,
	cache *redisinfra.Cache,
	generator *Generator,
	resolver *EditResolver,
) *Service {
	return &Service{
		stories:   stories,
		revisions: revisions,
		tx:        tx,
		cache:     cache,
		generator: generator,
		resolver:  resolver,
	}
}

// Create 生成并持久化一个新故事。
// 生成是同步的：流水线失败则不落库，调用方收到完整错误。
func (s *Service) Create(ctx context.Context, userID string, params wfmodel.StoryParams) (*entity.Story, error) {
	ctx, span := tracer.Start(ctx, "story.Service.Create")
	defer span.End()
	ctx = logger.WithContext(ctx, logger.UserIDKey, userID)

	bundle, err := s.generator.Generate(ctx, params)
	if err != nil {
		return nil, err
	}

	story := entity.NewStory(userID)
	story.Title = bundle.Title
	story.Characters = bundle.Characters
	story.Scenes = bundle.Scenes
	applyParams(story, bundle.Params)
	story.SetContent(bundle.Story)
	story.Status = entity.StoryStatusReady

	if err := s.stories.Create(ctx, story); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to persist story")
	}

	if s.cache != nil {
		_ = s.cache.InvalidateUserStories(ctx, userID)
	}
	return story, nil
}

// Get 获取单个故事（带缓存），并校验归属。
func (s *Service) Get(ctx context.Context, userID, id string) (*entity.Story, error) {
	ctx, span := tracer.Start(ctx, "story.Service.Get")
	defer span.End()

	if s.cache != nil {
		data, err := s.cache.GetOrLoad(ctx, redisinfra.StoryKey(id), storyCacheTTL, func() (interface{}, error) {
			story, err := s.stories.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if story == nil {
				return nil, errors.ErrStoryNotFound
			}
			return story, nil
		})
		if err != nil {
			if appErr, ok := err.(*errors.AppError); ok {
				return nil, appErr
			}
			// 缓存故障时降级直查数据库
			logger.Warn(ctx, "story cache unavailable, falling back to database", "error", err.Error())
		} else {
			var story entity.Story
			if err := json.Unmarshal(data, &story); err == nil {
				return s.checkOwnership(&story, userID)
			}
		}
	}

	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load story")
	}
	if story == nil {
		return nil, errors.ErrStoryNotFound
	}
	return s.checkOwnership(story, userID)
}

// List 获取用户的故事列表
func (s *Service) List(ctx context.Context, userID string, filter *repository.StoryFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Story], error) {
	ctx, span := tracer.Start(ctx, "story.Service.List")
	defer span.End()

	result, err := s.stories.ListByUser(ctx, userID, filter, pagination)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list stories")
	}
	return result, nil
}

// Update 应用一次编辑请求：分类、按需改编、持久化并记录修订。
// no_op 编辑不产生任何写入。
func (s *Service) Update(ctx context.Context, userID, id string, req *wfmodel.StoryEditRequest) (*entity.Story, *wfmodel.EditDecision, error) {
	ctx, span := tracer.Start(ctx, "story.Service.Update")
	defer span.End()
	ctx = logger.WithContext(ctx, logger.StoryIDKey, id)

	story, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	snapshot := &wfmodel.StorySnapshot{
		Title:   story.Title,
		Params:  paramsOf(story),
		Content: story.Content,
	}

	decision := s.resolver.Resolve(ctx, snapshot, req)
	if decision.Classification == wfmodel.EditNoOp {
		return story, decision, nil
	}

	merged := req.MergeParams(snapshot.Params)
	story.Title = decision.FinalTitle
	applyParams(story, merged)
	story.SetContent(decision.FinalContent)
	story.IncrementVersion()

	revision := &entity.StoryRevision{
		ID:                    uuid.NewString(),
		StoryID:               story.ID,
		Version:               story.Version,
		Classification:        string(decision.Classification),
		ChangedFields:         decision.ChangedFields,
		Title:                 decision.FinalTitle,
		Content:               decision.FinalContent,
		RegenerationAttempted: decision.RegenerationAttempted,
		RegenerationSucceeded: decision.RegenerationSucceeded,
		EditedBy:              userID,
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.stories.Update(txCtx, story); err != nil {
			return err
		}
		return s.revisions.Create(txCtx, revision)
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to persist story edit")
	}

	if s.cache != nil {
		_ = s.cache.InvalidateStory(ctx, story.ID)
		_ = s.cache.InvalidateUserStories(ctx, userID)
	}

	logger.Info(ctx, "story updated",
		"classification", string(decision.Classification),
		"version", story.Version,
	)
	return story, decision, nil
}

// Delete 删除故事
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "story.Service.Delete")
	defer span.End()

	story, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.stories.Delete(ctx, story.ID); err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to delete story")
	}

	if s.cache != nil {
		_ = s.cache.InvalidateStory(ctx, story.ID)
		_ = s.cache.InvalidateUserStories(ctx, userID)
	}
	return nil
}

// ListRevisions 获取故事的修订历史
func (s *Service) ListRevisions(ctx context.Context, userID, storyID string, pagination repository.Pagination) (*repository.PagedResult[*entity.StoryRevision], error) {
	ctx, span := tracer.Start(ctx, "story.Service.ListRevisions")
	defer span.End()

	// 先校验归属
	if _, err := s.Get(ctx, userID, storyID); err != nil {
		return nil, err
	}

	result, err := s.revisions.ListByStory(ctx, storyID, pagination)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list story revisions")
	}
	return result, nil
}

func (s *Service) checkOwnership(story *entity.Story, userID string) (*entity.Story, error) {
	if story.UserID != userID {
		// 不区分"不存在"与"无权限"，避免泄露故事 ID 的存在性
		return nil, errors.ErrStoryNotFound
	}
	return story, nil
}

// paramsOf 从实体提取生成参数
func paramsOf(story *entity.Story) wfmodel.StoryParams {
	return wfmodel.StoryParams{
		Title:     story.Title,
		FirstName: story.FirstName,
		Gender:    story.Gender,
		AgeGroup:  story.AgeGroup,
		Language:  story.Language,
		Topic:     story.Topic,
		Subtopic:  story.Subtopic,
		Style:     story.Style,
	}
}

// applyParams 将生效参数写回实体
func applyParams(story *entity.Story, p wfmodel.StoryParams) {
	story.FirstName = p.FirstName
	story.Gender = p.Gender
	story.AgeGroup = p.AgeGroup
	story.Language = p.Language
	story.Topic = p.Topic
	story.Subtopic = p.Subtopic
	story.Style = p.Style
}
