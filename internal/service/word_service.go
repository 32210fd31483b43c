// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_vocab_review/internal/clock"
	"go_vocab_review/internal/middleware"
	"go_vocab_review/internal/model"
	"go_vocab_review/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	PostWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, tenantID, wordID uuid.UUID) (*model.Word, error)
	GetWords(ctx context.Context, tenantID uuid.UUID) ([]*model.Word, error)
	PutWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PutWordRequest) (*model.Word, error)
	PatchWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, tenantID, wordID uuid.UUID) error
	// MarkLearned は学習フロー完了を記録し、単語をノート（復習対象）へ入れます。
	// 段位1・期限即時から復習が始まる。
	MarkLearned(ctx context.Context, tenantID, wordID uuid.UUID) error
	// MarkKnownAlready は「この単語は知っている」の申告を記録します。
	// true なら最高段位に固定して以降の出題対象から外す。
	MarkKnownAlready(ctx context.Context, tenantID, wordID uuid.UUID, known bool) error
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	progRepo repository.ProgressRepository
	clk      clock.Clock
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, progRepo repository.ProgressRepository, clk clock.Clock) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		progRepo: progRepo,
		clk:      clk,
	}
}

func (s *wordService) PostWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	var createdWord *model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.wordRepo.CheckTermExists(ctx, tx, tenantID, req.Term, nil)
		if err != nil {
			logger.Error("Error checking term existence in transaction", "error", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.NewAppError("DUPLICATE_TERM", "その単語は既に登録されています。", "term", model.ErrConflict)
		}

		word := &model.Word{
			WordID:          uuid.New(),
			TenantID:        tenantID,
			Term:            req.Term,
			Definition:      req.Definition,
			ExampleSentence: req.ExampleSentence,
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			logger.Error("Error creating word in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 進捗レコードは登録時に作る。学習フロー完了までノートには入らない (learned=false)。
		progress := &model.LearningProgress{
			ProgressID:     uuid.New(),
			TenantID:       tenantID,
			WordID:         word.WordID,
			Level:          model.Level1,
			Learned:        false,
			NextReviewDate: s.clk.Now(),
		}
		if err := s.progRepo.Create(ctx, tx, progress); err != nil {
			logger.Error("Error creating progress in transaction", "error", err)
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return model.ErrConflict
			}
			return model.ErrInternalServer
		}

		createdWord = word
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for PostWord", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Word created", "word_id", createdWord.WordID)
	return createdWord, nil
}

func (s *wordService) GetWord(ctx context.Context, tenantID, wordID uuid.UUID) (*model.Word, error) {
	return s.wordRepo.FindByID(ctx, s.db, tenantID, wordID)
}

func (s *wordService) GetWords(ctx context.Context, tenantID uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)
	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error listing words", "error", err)
		return nil, model.ErrInternalServer
	}
	return words, nil
}

func (s *wordService) PutWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PutWordRequest) (*model.Word, error) {
	patch := &model.PatchWordRequest{
		Term:            &req.Term,
		Definition:      &req.Definition,
		ExampleSentence: &req.ExampleSentence,
	}
	return s.PatchWord(ctx, tenantID, wordID, patch)
}

func (s *wordService) PatchWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_id", wordID)

	var updatedWord *model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.wordRepo.FindByID(ctx, tx, tenantID, wordID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Term != nil && *req.Term != "" && *req.Term != word.Term {
			exists, err := s.wordRepo.CheckTermExists(ctx, tx, tenantID, *req.Term, &wordID)
			if err != nil {
				logger.Error("Error checking term existence during update", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.NewAppError("DUPLICATE_TERM", "その単語は既に登録されています。", "term", model.ErrConflict)
			}
			updates["term"] = *req.Term
		}
		if req.Definition != nil && *req.Definition != "" && *req.Definition != word.Definition {
			updates["definition"] = *req.Definition
		}
		if req.ExampleSentence != nil && *req.ExampleSentence != word.ExampleSentence {
			updates["example_sentence"] = *req.ExampleSentence
		}

		if len(updates) > 0 {
			if err := s.wordRepo.Update(ctx, tx, tenantID, wordID, updates); err != nil {
				return err
			}
		}

		updatedWord, err = s.wordRepo.FindByID(ctx, tx, tenantID, wordID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updatedWord, nil
}

func (s *wordService) DeleteWord(ctx context.Context, tenantID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_id", wordID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.wordRepo.Delete(ctx, tx, tenantID, wordID); err != nil {
			return err
		}
		// 進捗も同時に消す。残すと統計の母数が狂う。
		if err := s.progRepo.DeleteByWordID(ctx, tx, tenantID, wordID); err != nil {
			logger.Error("Error deleting progress with word", "error", err)
			return model.ErrInternalServer
		}
		logger.Info("Word deleted")
		return nil
	})
}

func (s *wordService) MarkLearned(ctx context.Context, tenantID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_id", wordID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 単語の存在確認（他テナントの単語IDを弾く）
		if _, err := s.wordRepo.FindByID(ctx, tx, tenantID, wordID); err != nil {
			return err
		}

		now := s.clk.Now()
		progress, err := s.progRepo.FindByWordID(ctx, tx, tenantID, wordID)
		if errors.Is(err, model.ErrNotFound) {
			progress = &model.LearningProgress{
				ProgressID:     uuid.New(),
				TenantID:       tenantID,
				WordID:         wordID,
				Level:          model.Level1,
				Learned:        true,
				NextReviewDate: now,
			}
			if createErr := s.progRepo.Create(ctx, tx, progress); createErr != nil {
				logger.Error("Error creating progress on mark learned", "error", createErr)
				return model.ErrInternalServer
			}
			logger.Info("Word marked as learned (new progress)")
			return nil
		}
		if err != nil {
			logger.Error("Error finding progress on mark learned", "error", err)
			return model.ErrInternalServer
		}

		if progress.Learned {
			// 冪等。二重申告はそのまま成功にする。
			return nil
		}
		progress.Learned = true
		progress.Level = model.Level1
		progress.NextReviewDate = now
		if err := s.progRepo.Update(ctx, tx, progress); err != nil {
			logger.Error("Error updating progress on mark learned", "error", err)
			return model.ErrInternalServer
		}
		logger.Info("Word marked as learned")
		return nil
	})
}

func (s *wordService) MarkKnownAlready(ctx context.Context, tenantID, wordID uuid.UUID, known bool) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_id", wordID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, tenantID, wordID); err != nil {
			return err
		}

		progress, err := s.progRepo.FindByWordID(ctx, tx, tenantID, wordID)
		if errors.Is(err, model.ErrNotFound) {
			progress = &model.LearningProgress{
				ProgressID: uuid.New(),
				TenantID:   tenantID,
				WordID:     wordID,
				Level:      model.Level1,
			}
			applyKnownAlready(progress, known, s.clk.Now())
			if createErr := s.progRepo.Create(ctx, tx, progress); createErr != nil {
				logger.Error("Error creating progress on mark known", "error", createErr)
				return model.ErrInternalServer
			}
			return nil
		}
		if err != nil {
			logger.Error("Error finding progress on mark known", "error", err)
			return model.ErrInternalServer
		}

		applyKnownAlready(progress, known, s.clk.Now())
		if err := s.progRepo.Update(ctx, tx, progress); err != nil {
			logger.Error("Error updating progress on mark known", "error", err)
			return model.ErrInternalServer
		}
		logger.Info("Word known-already flag updated", "known", known)
		return nil
	})
}

// applyKnownAlready は「知っている」申告の反映。
// 申告時は最高段位に固定して出題対象から外し、取り消し時は段位1・即時から再開する。
func applyKnownAlready(progress *model.LearningProgress, known bool, now time.Time) {
	progress.KnownAlready = known
	if known {
		progress.Level = model.MaxLevel
		progress.NextReviewDate = model.NeverReviewDate
	} else {
		progress.Level = model.Level1
		progress.NextReviewDate = now
	}
}
